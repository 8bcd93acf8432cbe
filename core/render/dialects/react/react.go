// Package react renders form and list components for a React frontend.
//
// Like the Vue renderer it consumes the shared FormNode produced by the UI
// form emitter: widget kinds are decided once, upstream, and a boolean field
// is a checkbox here exactly as it is in Vue.
package react

import (
	"fmt"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/naming"
	"github.com/stokaro/anvil/core/render/internal/bufwriter"
)

var _ ast.Visitor = (*Renderer)(nil)

// Renderer renders form nodes as React function components.
type Renderer struct {
	w bufwriter.Writer
}

// New creates a new React renderer.
func New() *Renderer {
	return &Renderer{}
}

// Dialect returns the frontend dialect name.
func (r *Renderer) Dialect() string {
	return "react"
}

// Render renders a node and returns the result.
func (r *Renderer) Render(node ast.Node) (string, error) {
	r.w.Reset()
	if err := node.Accept(r); err != nil {
		return "", err
	}
	return r.w.String(), nil
}

// VisitForm renders the complete <EntityName>Form.jsx component.
func (r *Renderer) VisitForm(node *ast.FormNode) error {
	r.w.WriteLine("import { useState } from 'react'")
	r.w.WriteLine("import axios from 'axios'")
	r.w.WriteLine("")
	r.w.WriteLinef("export default function %sForm() {", node.Entity)
	r.w.Indent()
	r.w.WriteLine("const [form, setForm] = useState({")
	r.w.Indent()
	for _, widget := range node.Widgets {
		r.w.WriteLinef("%s: %s,", widget.Field, initialValue(widget.InputKind))
	}
	r.w.Dedent()
	r.w.WriteLine("})")
	r.w.WriteLine("")
	r.w.WriteLine("const set = (field) => (event) => {")
	r.w.Indent()
	r.w.WriteLine("const value = event.target.type === 'checkbox' ? event.target.checked : event.target.value")
	r.w.WriteLine("setForm({ ...form, [field]: value })")
	r.w.Dedent()
	r.w.WriteLine("}")
	r.w.WriteLine("")
	r.w.WriteLine("const submit = (event) => {")
	r.w.Indent()
	r.w.WriteLine("event.preventDefault()")
	r.w.WriteLinef("axios.post('%s', form)", node.APIPath)
	r.w.Dedent()
	r.w.WriteLine("}")
	r.w.WriteLine("")
	r.w.WriteLine("return (")
	r.w.Indent()
	r.w.WriteLine("<form onSubmit={submit}>")
	r.w.Indent()
	for _, widget := range node.Widgets {
		if err := widget.Accept(r); err != nil {
			return err
		}
	}
	r.w.WriteLine(`<button type="submit">Save</button>`)
	r.w.Dedent()
	r.w.WriteLine("</form>")
	r.w.Dedent()
	r.w.WriteLine(")")
	r.w.Dedent()
	r.w.WriteLine("}")
	return nil
}

// VisitWidget renders one labeled controlled input.
func (r *Renderer) VisitWidget(node *ast.WidgetNode) error {
	r.w.WriteLine(`<div className="field">`)
	r.w.Indent()
	if node.InputKind != "checkbox" {
		r.w.WriteLinef(`<label htmlFor="%s">%s</label>`, node.Field, node.Label)
	}

	value := fmt.Sprintf("{%s}", node.Binding)
	switch node.InputKind {
	case "textarea":
		r.w.WriteLinef(`<textarea id="%s" value=%s onChange={set('%s')} />`, node.Field, value, node.Field)
	case "checkbox":
		r.w.WriteLinef(`<label><input type="checkbox" checked=%s onChange={set('%s')} /> %s</label>`, value, node.Field, node.Label)
	case "select":
		r.w.WriteLinef(`<select id="%s" value=%s onChange={set('%s')}>`, node.Field, value, node.Field)
		r.w.Indent()
		if len(node.Options) == 0 {
			r.w.WriteLinef(`{/* options for %s are loaded from the related resource */}`, node.Field)
		}
		for _, opt := range node.Options {
			r.w.WriteLinef(`<option value="%s">%s</option>`, opt, opt)
		}
		r.w.Dedent()
		r.w.WriteLine("</select>")
	default:
		r.w.WriteLinef(`<input id="%s" type="%s" value=%s onChange={set('%s')} />`, node.Field, node.InputKind, value, node.Field)
	}

	r.w.Dedent()
	r.w.WriteLine("</div>")
	return nil
}

// VisitMigration is not rendered by the React generator.
func (r *Renderer) VisitMigration(node *ast.MigrationNode) error {
	r.w.WriteLinef("/* schema for %s is rendered by the backend generators */", node.Table)
	return nil
}

// VisitColumn is not rendered by the React generator.
func (r *Renderer) VisitColumn(node *ast.ColumnNode) error {
	r.w.WriteLinef("/* column %s is rendered by the backend generators */", node.Name)
	return nil
}

// VisitRuleSet is not rendered by the React generator.
func (r *Renderer) VisitRuleSet(node *ast.RuleSetNode) error {
	r.w.WriteLinef("/* validation for %s is rendered by the backend generators */", node.Entity)
	return nil
}

// VisitRule is not rendered by the React generator.
func (r *Renderer) VisitRule(node *ast.RuleNode) error {
	r.w.WriteLinef("/* rule %s is rendered by the backend generators */", node.Field)
	return nil
}

// initialValue picks the empty form value for an input kind.
func initialValue(inputKind string) string {
	switch inputKind {
	case "checkbox":
		return "false"
	case "number":
		return "null"
	default:
		return "''"
	}
}

// IndexFile renders the <EntityName>List.jsx component listing the declared
// fields as table columns, using the labels decided by the form emitter.
func IndexFile(form *ast.FormNode) string {
	variable := naming.Variable(form.Entity)

	var w bufwriter.Writer
	w.WriteLine("import { useEffect, useState } from 'react'")
	w.WriteLine("import axios from 'axios'")
	w.WriteLine("")
	w.WriteLinef("export default function %sList() {", form.Entity)
	w.Indent()
	w.WriteLine("const [items, setItems] = useState([])")
	w.WriteLine("")
	w.WriteLine("useEffect(() => {")
	w.Indent()
	w.WriteLinef("axios.get('%s').then((response) => setItems(response.data.data))", form.APIPath)
	w.Dedent()
	w.WriteLine("}, [])")
	w.WriteLine("")
	w.WriteLine("return (")
	w.Indent()
	w.WriteLine("<table>")
	w.Indent()
	w.WriteLine("<thead>")
	w.Indent()
	w.WriteLine("<tr>")
	w.Indent()
	for _, widget := range form.Widgets {
		w.WriteLinef("<th>%s</th>", widget.Label)
	}
	w.Dedent()
	w.WriteLine("</tr>")
	w.Dedent()
	w.WriteLine("</thead>")
	w.WriteLine("<tbody>")
	w.Indent()
	w.WriteLinef("{items.map((%s) => (", variable)
	w.Indent()
	w.WriteLinef("<tr key={%s.id}>", variable)
	w.Indent()
	for _, widget := range form.Widgets {
		w.WriteLinef("<td>{%s.%s}</td>", variable, widget.Field)
	}
	w.Dedent()
	w.WriteLine("</tr>")
	w.Dedent()
	w.WriteLine("))}")
	w.Dedent()
	w.WriteLine("</tbody>")
	w.Dedent()
	w.WriteLine("</table>")
	w.Dedent()
	w.WriteLine(")")
	w.Dedent()
	w.WriteLine("}")
	return w.String()
}

// RouterRegistration renders the route entry appended to the frontend router
// file; the path doubles as the idempotence marker.
func RouterRegistration(entity string) string {
	segment := naming.RouteSegment(entity)
	return fmt.Sprintf("{ path: '/%s', element: <%sList /> },", segment, entity)
}
