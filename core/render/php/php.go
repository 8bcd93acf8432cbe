// Package php renders artifact AST nodes into Laravel PHP source text.
//
// The renderer only formats what the emitters decided: it never reorders
// columns or modifiers and never re-derives rule strings or names.
package php

import (
	"strings"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/render/internal/bufwriter"
)

var _ ast.Visitor = (*Renderer)(nil)

// Renderer renders schema and validation nodes as PHP.
type Renderer struct {
	w bufwriter.Writer
}

// New creates a new PHP renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render renders a node to PHP text and returns the result.
func (r *Renderer) Render(node ast.Node) (string, error) {
	r.w.Reset()
	if err := node.Accept(r); err != nil {
		return "", err
	}
	return r.w.String(), nil
}

// VisitMigration renders the Schema::create statement with one column call
// chain per line, in emission order.
func (r *Renderer) VisitMigration(node *ast.MigrationNode) error {
	r.w.WriteLinef("Schema::create('%s', function (Blueprint $table) {", node.Table)
	r.w.Indent()
	for _, col := range node.Columns {
		if err := col.Accept(r); err != nil {
			return err
		}
	}
	r.w.Dedent()
	r.w.WriteLine("});")
	return nil
}

// VisitColumn renders one column definition call chain.
func (r *Renderer) VisitColumn(node *ast.ColumnNode) error {
	var b strings.Builder
	b.WriteString("$table->")
	b.WriteString(node.Constructor)
	b.WriteString("(")

	args := make([]string, 0, len(node.Args)+1)
	if node.Name != "" {
		args = append(args, "'"+node.Name+"'")
	}
	args = append(args, node.Args...)
	b.WriteString(strings.Join(args, ", "))
	b.WriteString(")")

	for _, mod := range node.Modifiers {
		b.WriteString("->")
		b.WriteString(mod.Name)
		b.WriteString("(")
		b.WriteString(mod.Arg)
		b.WriteString(")")
	}
	b.WriteString(";")

	r.w.WriteLine(b.String())
	return nil
}

// VisitRuleSet renders the rule array body of a form request, one field per
// line in declaration order.
func (r *Renderer) VisitRuleSet(node *ast.RuleSetNode) error {
	r.w.WriteLine("return [")
	r.w.Indent()
	for _, rule := range node.Rules {
		if err := rule.Accept(r); err != nil {
			return err
		}
	}
	r.w.Dedent()
	r.w.WriteLine("];")
	return nil
}

// VisitRule renders one field => rule entry.
func (r *Renderer) VisitRule(node *ast.RuleNode) error {
	r.w.WriteLinef("'%s' => '%s',", node.Field, node.Rule)
	return nil
}

// VisitForm is not rendered by the PHP generator; forms belong to the
// frontend renderers.
func (r *Renderer) VisitForm(node *ast.FormNode) error {
	r.w.WriteLinef("// form for %s is rendered by the frontend generators", node.Entity)
	return nil
}

// VisitWidget is not rendered by the PHP generator.
func (r *Renderer) VisitWidget(node *ast.WidgetNode) error {
	r.w.WriteLinef("// widget %s is rendered by the frontend generators", node.Field)
	return nil
}
