// Package emit converts entity descriptors into artifact AST nodes.
//
// This package holds all per-field decision logic: which schema constructor
// and arguments a field gets, the exact modifier chain order, the validation
// rule text for create and update modes, and the widget kind for generated
// forms. Renderers downstream only format what is decided here.
//
// All three emitters consume the same ordered field list through the same
// injected taxonomy registry, which is what keeps the generated schema,
// validation rules and form widgets mutually consistent.
package emit

import (
	"strings"

	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/naming"
	"github.com/stokaro/anvil/core/taxonomy"
)

// Emitter produces artifact AST nodes from entity descriptors. It is
// stateless apart from the immutable registry and safe for concurrent use.
type Emitter struct {
	reg *taxonomy.Registry
}

// New creates an emitter bound to the given taxonomy registry.
func New(reg *taxonomy.Registry) *Emitter {
	return &Emitter{reg: reg}
}

// APIPath derives the backend collection URL for an entity, including the
// optional API version segment: "/api/v1/products". All generated artifacts
// that reference the URL (frontend components, route registrations, feature
// tests) share this one derivation.
func APIPath(entity fieldspec.EntityDescriptor) string {
	path := "/api"
	if entity.Options.APIVersion != "" {
		path += "/" + entity.Options.APIVersion
	}
	return path + "/" + naming.RouteSegment(entity.CanonicalName)
}

// ForeignTable derives the referenced table name from a foreign-key field
// name: "category_id" -> "categorys" (naive pluralization is deliberate, see
// naming.Plural). A name without the "_id" suffix is pluralized as is.
func ForeignTable(fieldName string) string {
	base := strings.TrimSuffix(fieldName, "_id")
	return naming.Table(base)
}
