package fieldspec_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
)

func TestParse(t *testing.T) {
	reg := taxonomy.New()

	tests := []struct {
		name     string
		spec     string
		expected []fieldspec.FieldDescriptor
	}{
		{
			name: "name only defaults to string",
			spec: "title",
			expected: []fieldspec.FieldDescriptor{
				{Name: "title", Type: taxonomy.TypeString},
			},
		},
		{
			name: "explicit type",
			spec: "body:text",
			expected: []fieldspec.FieldDescriptor{
				{Name: "body", Type: taxonomy.TypeText},
			},
		},
		{
			name: "string with length",
			spec: "title:string:100",
			expected: []fieldspec.FieldDescriptor{
				{Name: "title", Type: taxonomy.TypeString, Length: 100},
			},
		},
		{
			name: "decimal with precision and scale across the comma",
			spec: "price:decimal:8,2",
			expected: []fieldspec.FieldDescriptor{
				{Name: "price", Type: taxonomy.TypeDecimal, Precision: 8, Scale: 2},
			},
		},
		{
			name: "decimal defaults",
			spec: "price:decimal",
			expected: []fieldspec.FieldDescriptor{
				{Name: "price", Type: taxonomy.TypeDecimal, Precision: 8, Scale: 2},
			},
		},
		{
			name: "alias normalizes",
			spec: "views:bigint,published_at:datetime",
			expected: []fieldspec.FieldDescriptor{
				{Name: "views", Type: taxonomy.TypeBigInteger},
				{Name: "published_at", Type: taxonomy.TypeDateTime},
			},
		},
		{
			name: "unknown type defaults to string",
			spec: "title:varchar",
			expected: []fieldspec.FieldDescriptor{
				{Name: "title", Type: taxonomy.TypeString},
			},
		},
		{
			name: "full declaration",
			spec: "name:string,price:decimal:10,3,active:boolean,category_id:foreignId",
			expected: []fieldspec.FieldDescriptor{
				{Name: "name", Type: taxonomy.TypeString},
				{Name: "price", Type: taxonomy.TypeDecimal, Precision: 10, Scale: 3},
				{Name: "active", Type: taxonomy.TypeBoolean},
				{Name: "category_id", Type: taxonomy.TypeForeignID},
			},
		},
		{
			name:     "empty input yields no fields",
			spec:     "",
			expected: []fieldspec.FieldDescriptor{},
		},
		{
			name: "empty clauses and whitespace are skipped",
			spec: " name:string ,, body:text ",
			expected: []fieldspec.FieldDescriptor{
				{Name: "name", Type: taxonomy.TypeString},
				{Name: "body", Type: taxonomy.TypeText},
			},
		},
		{
			name: "malformed numeric arguments keep defaults",
			spec: "title:string:abc,price:decimal:x,y",
			expected: []fieldspec.FieldDescriptor{
				{Name: "title", Type: taxonomy.TypeString},
				{Name: "price", Type: taxonomy.TypeDecimal, Precision: 8, Scale: 2},
				{Name: "y", Type: taxonomy.TypeString},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(fieldspec.Parse(tt.spec, reg), qt.DeepEquals, tt.expected)
		})
	}
}

func TestParse_NeverFails(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	// Garbage input degrades field by field, it never panics or errors.
	fields := fieldspec.Parse(":::,a:b:c:d:e,42", reg)
	c.Assert(len(fields) > 0, qt.IsTrue)
	for _, f := range fields {
		c.Assert(reg.Known(f.Type), qt.IsTrue)
	}
}
