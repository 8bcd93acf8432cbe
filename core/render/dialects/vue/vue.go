// Package vue renders form and list components for a Vue 3 frontend.
//
// The renderer consumes the shared FormNode produced by the UI form emitter;
// it never decides widget kinds itself, so a field renders as the same input
// kind in Vue and React.
package vue

import (
	"fmt"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/naming"
	"github.com/stokaro/anvil/core/render/internal/bufwriter"
)

var _ ast.Visitor = (*Renderer)(nil)

// Renderer renders form nodes as Vue single-file components.
type Renderer struct {
	w bufwriter.Writer
}

// New creates a new Vue renderer.
func New() *Renderer {
	return &Renderer{}
}

// Dialect returns the frontend dialect name.
func (r *Renderer) Dialect() string {
	return "vue"
}

// Render renders a node and returns the result.
func (r *Renderer) Render(node ast.Node) (string, error) {
	r.w.Reset()
	if err := node.Accept(r); err != nil {
		return "", err
	}
	return r.w.String(), nil
}

// VisitForm renders the complete <EntityName>Form.vue component.
func (r *Renderer) VisitForm(node *ast.FormNode) error {
	r.w.WriteLine("<template>")
	r.w.Indent()
	r.w.WriteLine(`<form @submit.prevent="submit">`)
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
	r.w.WriteLine("</template>")
	r.w.WriteLine("")
	r.w.WriteLine("<script setup>")
	r.w.WriteLine("import { reactive } from 'vue'")
	r.w.WriteLine("import axios from 'axios'")
	r.w.WriteLine("")
	r.w.WriteLine("const form = reactive({")
	r.w.Indent()
	for _, widget := range node.Widgets {
		r.w.WriteLinef("%s: %s,", widget.Field, initialValue(widget.InputKind))
	}
	r.w.Dedent()
	r.w.WriteLine("})")
	r.w.WriteLine("")
	r.w.WriteLine("function submit() {")
	r.w.Indent()
	r.w.WriteLinef("axios.post('%s', form)", node.APIPath)
	r.w.Dedent()
	r.w.WriteLine("}")
	r.w.WriteLine("</script>")
	return nil
}

// VisitWidget renders one labeled input bound to the shared form object.
func (r *Renderer) VisitWidget(node *ast.WidgetNode) error {
	r.w.WriteLine(`<div class="field">`)
	r.w.Indent()
	if node.InputKind != "checkbox" {
		r.w.WriteLinef(`<label for="%s">%s</label>`, node.Field, node.Label)
	}

	switch node.InputKind {
	case "textarea":
		r.w.WriteLinef(`<textarea id="%s" v-model="%s"></textarea>`, node.Field, node.Binding)
	case "checkbox":
		r.w.WriteLinef(`<label><input type="checkbox" v-model="%s" /> %s</label>`, node.Binding, node.Label)
	case "select":
		r.w.WriteLinef(`<select id="%s" v-model="%s">`, node.Field, node.Binding)
		r.w.Indent()
		if len(node.Options) == 0 {
			r.w.WriteLinef(`<!-- options for %s are loaded from the related resource -->`, node.Field)
		}
		for _, opt := range node.Options {
			r.w.WriteLinef(`<option value="%s">%s</option>`, opt, opt)
		}
		r.w.Dedent()
		r.w.WriteLine("</select>")
	default:
		r.w.WriteLinef(`<input id="%s" type="%s" v-model="%s" />`, node.Field, node.InputKind, node.Binding)
	}

	r.w.Dedent()
	r.w.WriteLine("</div>")
	return nil
}

// VisitMigration is not rendered by the Vue generator.
func (r *Renderer) VisitMigration(node *ast.MigrationNode) error {
	r.w.WriteLinef("<!-- schema for %s is rendered by the backend generators -->", node.Table)
	return nil
}

// VisitColumn is not rendered by the Vue generator.
func (r *Renderer) VisitColumn(node *ast.ColumnNode) error {
	r.w.WriteLinef("<!-- column %s is rendered by the backend generators -->", node.Name)
	return nil
}

// VisitRuleSet is not rendered by the Vue generator.
func (r *Renderer) VisitRuleSet(node *ast.RuleSetNode) error {
	r.w.WriteLinef("<!-- validation for %s is rendered by the backend generators -->", node.Entity)
	return nil
}

// VisitRule is not rendered by the Vue generator.
func (r *Renderer) VisitRule(node *ast.RuleNode) error {
	r.w.WriteLinef("<!-- rule %s is rendered by the backend generators -->", node.Field)
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

// IndexFile renders the <EntityName>List.vue component listing the declared
// fields as table columns, using the labels decided by the form emitter.
func IndexFile(form *ast.FormNode) string {
	variable := naming.Variable(form.Entity)

	var w bufwriter.Writer
	w.WriteLine("<template>")
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
	w.WriteLinef(`<tr v-for="%s in items" :key="%s.id">`, variable, variable)
	w.Indent()
	for _, widget := range form.Widgets {
		w.WriteLinef("<td>{{ %s.%s }}</td>", variable, widget.Field)
	}
	w.Dedent()
	w.WriteLine("</tr>")
	w.Dedent()
	w.WriteLine("</tbody>")
	w.Dedent()
	w.WriteLine("</table>")
	w.Dedent()
	w.WriteLine("</template>")
	w.WriteLine("")
	w.WriteLine("<script setup>")
	w.WriteLine("import { onMounted, ref } from 'vue'")
	w.WriteLine("import axios from 'axios'")
	w.WriteLine("")
	w.WriteLine("const items = ref([])")
	w.WriteLine("")
	w.WriteLine("onMounted(async () => {")
	w.Indent()
	w.WriteLinef("const response = await axios.get('%s')", form.APIPath)
	w.WriteLine("items.value = response.data.data")
	w.Dedent()
	w.WriteLine("})")
	w.WriteLine("</script>")
	return w.String()
}

// RouterRegistration renders the route entry appended to the frontend router
// file; the path doubles as the idempotence marker.
func RouterRegistration(entity string) string {
	segment := naming.RouteSegment(entity)
	return fmt.Sprintf("{ path: '/%s', component: () => import('./components/%sList.vue') },", segment, entity)
}
