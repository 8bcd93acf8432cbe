package emit

import (
	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/naming"
)

// Form converts an entity into the shared widget descriptor sequence consumed
// by every frontend renderer.
//
// The widget kind for a field is decided here, once, from the taxonomy. The
// Vue and React renderers both format the same FormNode, so a boolean field
// is a checkbox in both frontends; the decision is never re-made per target.
func (e *Emitter) Form(entity fieldspec.EntityDescriptor) *ast.FormNode {
	form := &ast.FormNode{
		Entity:  entity.CanonicalName,
		APIPath: APIPath(entity),
		Widgets: make([]*ast.WidgetNode, 0, len(entity.Fields)),
	}

	for _, field := range entity.Fields {
		form.Widgets = append(form.Widgets, &ast.WidgetNode{
			Field:     field.Name,
			InputKind: e.reg.Lookup(field.Type).InputKind,
			Label:     naming.Label(field.Name),
			Binding:   "form." + field.Name,
			Options:   field.Values,
		})
	}

	return form
}
