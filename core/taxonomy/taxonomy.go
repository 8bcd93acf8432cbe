// Package taxonomy defines the closed mapping from abstract field types to
// their per-artifact representations: schema column constructor, validation
// rule, UI input kind and display cast.
//
// The registry is built once at startup and never mutated afterwards. It is
// passed explicitly to the emitters rather than referenced as ambient global
// state, which keeps the emitters testable without behavior change.
//
// Every lookup is total: an unrecognized abstract type resolves to the
// "string" entry for every artifact kind instead of erroring. This graceful
// default is relied upon throughout the system and is not an oversight.
package taxonomy

// Abstract type names recognized by the registry. Aliases ("bigint",
// "datetime") normalize onto the canonical spelling.
const (
	TypeString      = "string"
	TypeText        = "text"
	TypeInteger     = "integer"
	TypeBigInteger  = "bigInteger"
	TypeTinyInteger = "tinyInteger"
	TypeDecimal     = "decimal"
	TypeFloat       = "float"
	TypeDouble      = "double"
	TypeBoolean     = "boolean"
	TypeDate        = "date"
	TypeDateTime    = "dateTime"
	TypeTimestamp   = "timestamp"
	TypeTime        = "time"
	TypeJSON        = "json"
	TypeEnum        = "enum"
	TypeForeignID   = "foreignId"
	TypeUUID        = "uuid"
)

// Entry holds the per-artifact representations for one abstract type.
type Entry struct {
	// SchemaConstructor is the schema-builder method used for the column
	// definition (e.g. "decimal" for $table->decimal(...)).
	SchemaConstructor string
	// CreateRule is the default validation rule for create operations.
	// The validation emitter substitutes type arguments (length, enum
	// values, foreign table) into it where applicable.
	CreateRule string
	// InputKind is the UI input widget kind shared by every frontend
	// renderer (text, textarea, number, checkbox, date, datetime-local,
	// time, select).
	InputKind string
	// DisplayCast is the model attribute-cast hint; empty means the
	// attribute is not cast.
	DisplayCast string
}

// Registry is the immutable type taxonomy. Construct it with New and share
// it freely: all methods are read-only and safe for concurrent use.
type Registry struct {
	entries map[string]Entry
	aliases map[string]string
}

// New builds the registry with the full closed enumeration of abstract types.
func New() *Registry {
	return &Registry{
		entries: map[string]Entry{
			TypeString:      {SchemaConstructor: "string", CreateRule: "required|string|max:255", InputKind: "text", DisplayCast: ""},
			TypeText:        {SchemaConstructor: "text", CreateRule: "required|string", InputKind: "textarea", DisplayCast: ""},
			TypeInteger:     {SchemaConstructor: "integer", CreateRule: "required|integer", InputKind: "number", DisplayCast: "integer"},
			TypeBigInteger:  {SchemaConstructor: "bigInteger", CreateRule: "required|integer", InputKind: "number", DisplayCast: "integer"},
			TypeTinyInteger: {SchemaConstructor: "tinyInteger", CreateRule: "required|integer", InputKind: "number", DisplayCast: "integer"},
			TypeDecimal:     {SchemaConstructor: "decimal", CreateRule: "required|numeric", InputKind: "number", DisplayCast: "float"},
			TypeFloat:       {SchemaConstructor: "float", CreateRule: "required|numeric", InputKind: "number", DisplayCast: "float"},
			TypeDouble:      {SchemaConstructor: "double", CreateRule: "required|numeric", InputKind: "number", DisplayCast: "float"},
			TypeBoolean:     {SchemaConstructor: "boolean", CreateRule: "required|boolean", InputKind: "checkbox", DisplayCast: "boolean"},
			TypeDate:        {SchemaConstructor: "date", CreateRule: "required|date", InputKind: "date", DisplayCast: "date"},
			TypeDateTime:    {SchemaConstructor: "dateTime", CreateRule: "required|date", InputKind: "datetime-local", DisplayCast: "datetime"},
			TypeTimestamp:   {SchemaConstructor: "timestamp", CreateRule: "required|date", InputKind: "datetime-local", DisplayCast: "datetime"},
			TypeTime:        {SchemaConstructor: "time", CreateRule: "required|date_format:H:i", InputKind: "time", DisplayCast: ""},
			TypeJSON:        {SchemaConstructor: "json", CreateRule: "required|array", InputKind: "textarea", DisplayCast: "array"},
			TypeEnum:        {SchemaConstructor: "enum", CreateRule: "required|string", InputKind: "select", DisplayCast: ""},
			TypeForeignID:   {SchemaConstructor: "foreignId", CreateRule: "required|integer", InputKind: "select", DisplayCast: ""},
			TypeUUID:        {SchemaConstructor: "uuid", CreateRule: "required|uuid", InputKind: "text", DisplayCast: ""},
		},
		aliases: map[string]string{
			"bigint":   TypeBigInteger,
			"datetime": TypeDateTime,
		},
	}
}

// Normalize resolves aliases and maps unknown type names to TypeString.
func (r *Registry) Normalize(abstract string) string {
	if canonical, ok := r.aliases[abstract]; ok {
		return canonical
	}
	if _, ok := r.entries[abstract]; ok {
		return abstract
	}
	return TypeString
}

// Known reports whether the abstract type (or one of its aliases) is part of
// the closed enumeration.
func (r *Registry) Known(abstract string) bool {
	if _, ok := r.aliases[abstract]; ok {
		return true
	}
	_, ok := r.entries[abstract]
	return ok
}

// Lookup returns the entry for the abstract type. Unknown types fall back to
// the string entry; the result is always fully populated.
func (r *Registry) Lookup(abstract string) Entry {
	return r.entries[r.Normalize(abstract)]
}

// Types returns the canonical abstract type names in a stable order, suitable
// for presenting as interactive choices.
func (r *Registry) Types() []string {
	return []string{
		TypeString, TypeText, TypeInteger, TypeBigInteger, TypeTinyInteger,
		TypeDecimal, TypeFloat, TypeDouble, TypeBoolean, TypeDate,
		TypeDateTime, TypeTimestamp, TypeTime, TypeJSON, TypeEnum,
		TypeForeignID, TypeUUID,
	}
}

// UpdateRule derives the update-mode validation rule from a create-mode rule.
// Update rules are never authored separately: prefixing "sometimes|" onto the
// create rule is the single mechanical transform, so the two rule sets cannot
// diverge.
func UpdateRule(createRule string) string {
	return "sometimes|" + createRule
}
