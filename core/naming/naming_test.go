package naming_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/core/naming"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"order_item", "OrderItem"},
		{"order-item", "OrderItem"},
		{"orderItem", "OrderItem"},
		{"OrderItem", "OrderItem"},
		{"APIToken", "ApiToken"},
		{"product", "Product"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(naming.Pascal(tt.input), qt.Equals, tt.expected)
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderItem", "orderItem"},
		{"order_item", "orderItem"},
		{"Product", "product"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(naming.Camel(tt.input), qt.Equals, tt.expected)
		})
	}
}

func TestSnakeAndKebab(t *testing.T) {
	c := qt.New(t)

	c.Assert(naming.Snake("OrderItem"), qt.Equals, "order_item")
	c.Assert(naming.Snake("order-item"), qt.Equals, "order_item")
	c.Assert(naming.Kebab("OrderItem"), qt.Equals, "order-item")
	c.Assert(naming.Kebab("order_item"), qt.Equals, "order-item")
}

func TestPlural_NaiveByDesign(t *testing.T) {
	c := qt.New(t)

	// Irregular plurals are intentionally not handled; derived identifiers
	// must never change shape between tool versions.
	c.Assert(naming.Plural("Category"), qt.Equals, "Categorys")
	c.Assert(naming.Plural("product"), qt.Equals, "products")
}

func TestDerivedNames(t *testing.T) {
	tests := []struct {
		entity       string
		table        string
		routeSegment string
		variable     string
	}{
		{"Product", "products", "products", "product"},
		{"OrderItem", "order_items", "order-items", "orderItem"},
		{"Category", "categorys", "categorys", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			c := qt.New(t)

			c.Assert(naming.Table(tt.entity), qt.Equals, tt.table)
			c.Assert(naming.RouteSegment(tt.entity), qt.Equals, tt.routeSegment)
			c.Assert(naming.Variable(tt.entity), qt.Equals, tt.variable)
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"unit_price", "Unit Price"},
		{"name", "Name"},
		{"category_id", "Category Id"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(naming.Label(tt.field), qt.Equals, tt.expected)
		})
	}
}

func TestConversionsAreIdempotent(t *testing.T) {
	c := qt.New(t)

	for _, input := range []string{"OrderItem", "order_item", "order-item", "Product"} {
		c.Assert(naming.Snake(naming.Snake(input)), qt.Equals, naming.Snake(input))
		c.Assert(naming.Kebab(naming.Kebab(input)), qt.Equals, naming.Kebab(input))
		c.Assert(naming.Pascal(naming.Pascal(input)), qt.Equals, naming.Pascal(input))
	}
}
