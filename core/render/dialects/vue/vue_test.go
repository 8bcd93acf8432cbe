package vue_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/render/dialects/vue"
)

func productForm() *ast.FormNode {
	return &ast.FormNode{
		Entity:  "Product",
		APIPath: "/api/v1/products",
		Widgets: []*ast.WidgetNode{
			{Field: "name", InputKind: "text", Label: "Name", Binding: "form.name"},
			{Field: "active", InputKind: "checkbox", Label: "Active", Binding: "form.active"},
			{Field: "status", InputKind: "select", Label: "Status", Binding: "form.status", Options: []string{"draft", "live"}},
			{Field: "category_id", InputKind: "select", Label: "Category Id", Binding: "form.category_id"},
		},
	}
}

func TestRenderer_VisitForm(t *testing.T) {
	c := qt.New(t)

	out, err := vue.New().Render(productForm())
	c.Assert(err, qt.IsNil)

	c.Assert(out, qt.Contains, "<template>")
	c.Assert(out, qt.Contains, `<form @submit.prevent="submit">`)
	c.Assert(out, qt.Contains, `<input id="name" type="text" v-model="form.name" />`)
	c.Assert(out, qt.Contains, `<label><input type="checkbox" v-model="form.active" /> Active</label>`)
	c.Assert(out, qt.Contains, `<option value="draft">draft</option>`)
	c.Assert(out, qt.Contains, "<!-- options for category_id are loaded from the related resource -->")

	// The component posts to the path decided by the emitter, not one it
	// derives itself.
	c.Assert(out, qt.Contains, "axios.post('/api/v1/products', form)")

	c.Assert(out, qt.Contains, "name: '',")
	c.Assert(out, qt.Contains, "active: false,")
}

func TestIndexFile(t *testing.T) {
	c := qt.New(t)

	out := vue.IndexFile(productForm())
	c.Assert(out, qt.Contains, "<th>Name</th>")
	c.Assert(out, qt.Contains, `<tr v-for="product in items" :key="product.id">`)
	c.Assert(out, qt.Contains, "<td>{{ product.name }}</td>")
	c.Assert(out, qt.Contains, "await axios.get('/api/v1/products')")
}

func TestRouterRegistration(t *testing.T) {
	c := qt.New(t)

	line := vue.RouterRegistration("OrderItem")
	c.Assert(line, qt.Equals, "{ path: '/order-items', component: () => import('./components/OrderItemList.vue') },")
}
