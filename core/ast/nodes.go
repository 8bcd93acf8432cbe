// Package ast defines the structured documents that emitters produce and
// renderers consume.
//
// Each generated artifact is modeled as a small tree of nodes rather than as
// concatenated strings: the emitters make every decision (column order,
// modifier order, rule text, widget kind) and the renderers only format. This
// keeps the decision logic independent of the target language or frontend
// framework, which can vary per renderer without touching the emitters.
package ast

// Node represents any artifact AST node that can be visited by a Visitor.
type Node interface {
	// Accept implements the visitor pattern for rendering.
	Accept(visitor Visitor) error
}

// MigrationNode represents one entity's schema definition: the ordered column
// list of a create-table migration.
type MigrationNode struct {
	// Table is the derived plural snake_case table name.
	Table string
	// Columns in emission order, including the implicit primary key first
	// and the implicit timestamps pair last (unless opted out).
	Columns []*ColumnNode
}

// NewMigration creates a migration node for the given table with no columns.
func NewMigration(table string) *MigrationNode {
	return &MigrationNode{Table: table, Columns: make([]*ColumnNode, 0)}
}

// AddColumn appends a column definition and returns the node for chaining.
func (n *MigrationNode) AddColumn(column *ColumnNode) *MigrationNode {
	n.Columns = append(n.Columns, column)
	return n
}

// Accept implements the Node interface for MigrationNode.
func (n *MigrationNode) Accept(visitor Visitor) error {
	return visitor.VisitMigration(n)
}

// ColumnNode is one column-definition record: constructor, column name,
// arguments and an ordered modifier chain.
//
// Renderers emit it as a single call chain, e.g.
//
//	$table->decimal('price', 8, 2)->nullable()->index();
type ColumnNode struct {
	// Constructor is the schema-builder method name from the taxonomy
	// ("string", "decimal", "foreignId", or the implicit "id"/"timestamps").
	Constructor string
	// Name is the column name; empty for implicit columns like timestamps.
	Name string
	// Args are the pre-formatted constructor arguments after the name.
	Args []string
	// Modifiers in the fixed deterministic order assigned by the schema
	// emitter. Renderers must not reorder them.
	Modifiers []Modifier
}

// Modifier is one chained column modifier; Arg is empty for bare calls like
// nullable().
type Modifier struct {
	Name string
	Arg  string
}

// NewColumn creates a column node with the given constructor, name and args.
func NewColumn(constructor, name string, args ...string) *ColumnNode {
	return &ColumnNode{Constructor: constructor, Name: name, Args: args}
}

// WithModifier appends a modifier call and returns the column for chaining.
func (n *ColumnNode) WithModifier(name string, arg string) *ColumnNode {
	n.Modifiers = append(n.Modifiers, Modifier{Name: name, Arg: arg})
	return n
}

// Accept implements the Node interface for ColumnNode.
func (n *ColumnNode) Accept(visitor Visitor) error {
	return visitor.VisitColumn(n)
}

// RuleSetNode is the ordered validation rule mapping for one entity and one
// operation mode.
type RuleSetNode struct {
	// Entity is the canonical PascalCase entity name.
	Entity string
	// Mode is "create" or "update".
	Mode string
	// Rules hold one entry per declared field, in declaration order.
	Rules []*RuleNode
}

// RuleNode maps one field name to its pipe-delimited rule string.
type RuleNode struct {
	Field string
	Rule  string
}

// Accept implements the Node interface for RuleSetNode.
func (n *RuleSetNode) Accept(visitor Visitor) error {
	return visitor.VisitRuleSet(n)
}

// Accept implements the Node interface for RuleNode.
func (n *RuleNode) Accept(visitor Visitor) error {
	return visitor.VisitRule(n)
}

// FormNode is the shared input-widget sequence for one entity's generated
// form views. Both frontend renderers consume the same FormNode, so the
// widget-kind decision is made exactly once, in the UI form emitter.
type FormNode struct {
	// Entity is the canonical PascalCase entity name.
	Entity string
	// APIPath is the backend collection URL the generated components talk
	// to ("/api/v1/products"). Decided by the emitter so every frontend
	// artifact and the generated feature test reference the same path.
	APIPath string
	// Widgets in field declaration order.
	Widgets []*WidgetNode
}

// WidgetNode describes one form input widget independently of the frontend
// framework that renders it.
type WidgetNode struct {
	// Field is the bound field name.
	Field string
	// InputKind is the taxonomy ui-input kind (text, textarea, number,
	// checkbox, date, datetime-local, time, select).
	InputKind string
	// Label is the human-readable field label.
	Label string
	// Binding is the model property path the input binds to
	// ("form.unit_price").
	Binding string
	// Options holds select choices in declared order (enum values; empty
	// for foreign-key selects, which bind to a fetched collection).
	Options []string
}

// Accept implements the Node interface for FormNode.
func (n *FormNode) Accept(visitor Visitor) error {
	return visitor.VisitForm(n)
}

// Accept implements the Node interface for WidgetNode.
func (n *WidgetNode) Accept(visitor Visitor) error {
	return visitor.VisitWidget(n)
}
