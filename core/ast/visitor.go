package ast

// Visitor renders artifact AST nodes into target-specific text.
//
// Each renderer implements the full interface. A renderer that has no
// representation for a node kind (the frontend renderers never see schema
// nodes, the PHP renderer never sees widgets) emits a target-appropriate
// comment instead of failing, so documents remain renderable by any visitor.
type Visitor interface {
	VisitMigration(node *MigrationNode) error
	VisitColumn(node *ColumnNode) error
	VisitRuleSet(node *RuleSetNode) error
	VisitRule(node *RuleNode) error
	VisitForm(node *FormNode) error
	VisitWidget(node *WidgetNode) error
}
