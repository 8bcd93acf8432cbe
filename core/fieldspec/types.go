// Package fieldspec defines the parsed representation of user-declared entity
// attributes and the parsers that produce it.
//
// A field specification arrives either as the compact text mini-language
// ("name:string,price:decimal:8,2"), as a YAML field file, or interactively
// through the prompt wizard. All three paths produce the same ordered
// []FieldDescriptor, which every emitter consumes via the type taxonomy.
package fieldspec

// FieldDescriptor is one user-declared entity attribute. It is constructed
// once per generation command and immutable thereafter; it is never persisted.
type FieldDescriptor struct {
	// Name is used verbatim as the schema column name and object property
	// name. Lowercase snake_case by convention, not enforced.
	Name string
	// Type is the canonical abstract type from the taxonomy. Unrecognized
	// input types normalize to "string".
	Type string

	// Length applies to string fields only; 0 means the artifact default
	// (255).
	Length int
	// Precision and Scale apply to decimal fields only; both default to
	// 8 and 2 when the type is decimal and neither is supplied.
	Precision int
	Scale     int
	// Values holds the ordered allowed literals for enum fields. The text
	// mini-language cannot express them; the YAML file and the interactive
	// wizard can.
	Values []string

	// Modifier flags, applied to the column definition in a fixed order by
	// the schema emitter.
	Nullable bool
	Unique   bool
	Unsigned bool
	Index    bool
	// Cascade applies to foreignId fields only: appends cascadeOnDelete to
	// the foreign-key constraint. Never implied, only explicitly requested.
	Cascade bool

	// HasDefault distinguishes "default to empty string" from "no default".
	HasDefault   bool
	DefaultValue string

	Comment string
}

// EntityDescriptor aggregates everything the artifact coordinator needs to
// generate one entity's file set.
type EntityDescriptor struct {
	// CanonicalName is the PascalCase entity name as supplied by the user.
	// Every other name form (table, route segment, variable, file name) is
	// derived from it on demand and never stored.
	CanonicalName string
	// Fields in declaration order. The order is preserved end-to-end into
	// every emitted artifact: column order and form-field order match the
	// user's declaration order.
	Fields []FieldDescriptor
	// Options carries per-generator configuration. It never influences
	// field-level emission rules.
	Options Options
}

// Options is the per-generator configuration attached to an entity.
type Options struct {
	// NoTimestamps opts the entity out of the implicit timestamps column
	// pair in the generated migration and model.
	NoTimestamps bool
	// SoftDeletes adds a softDeletes column and the SoftDeletes model trait.
	SoftDeletes bool
	// APIVersion is the route prefix segment for API artifacts ("v1").
	APIVersion string
	// Frontend selects the SPA renderer ("vue" or "react").
	Frontend string
	// Force overwrites existing per-entity artifact files without asking.
	Force bool
}
