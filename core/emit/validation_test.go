package emit_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/core/emit"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
)

func TestCreateRule(t *testing.T) {
	tests := []struct {
		name     string
		field    fieldspec.FieldDescriptor
		expected string
	}{
		{
			name:     "string without length",
			field:    fieldspec.FieldDescriptor{Name: "name", Type: taxonomy.TypeString},
			expected: "required|string|max:255",
		},
		{
			name:     "string with length",
			field:    fieldspec.FieldDescriptor{Name: "name", Type: taxonomy.TypeString, Length: 100},
			expected: "required|string|max:100",
		},
		{
			name:     "decimal",
			field:    fieldspec.FieldDescriptor{Name: "price", Type: taxonomy.TypeDecimal},
			expected: "required|numeric",
		},
		{
			name:     "boolean",
			field:    fieldspec.FieldDescriptor{Name: "active", Type: taxonomy.TypeBoolean},
			expected: "required|boolean",
		},
		{
			name:     "enum with values",
			field:    fieldspec.FieldDescriptor{Name: "status", Type: taxonomy.TypeEnum, Values: []string{"draft", "live"}},
			expected: "required|in:draft,live",
		},
		{
			name:     "enum without values",
			field:    fieldspec.FieldDescriptor{Name: "status", Type: taxonomy.TypeEnum},
			expected: "required|string",
		},
		{
			name:     "foreign key references the derived table",
			field:    fieldspec.FieldDescriptor{Name: "category_id", Type: taxonomy.TypeForeignID},
			expected: "required|exists:categorys,id",
		},
		{
			name:     "nullable replaces required",
			field:    fieldspec.FieldDescriptor{Name: "notes", Type: taxonomy.TypeText, Nullable: true},
			expected: "nullable|string",
		},
		{
			name:     "nullable string with length",
			field:    fieldspec.FieldDescriptor{Name: "sku", Type: taxonomy.TypeString, Length: 32, Nullable: true},
			expected: "nullable|string|max:32",
		},
	}

	emitter := newEmitter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(emitter.CreateRule(tt.field), qt.Equals, tt.expected)
		})
	}
}

func TestValidation_UpdateDerivesFromCreate(t *testing.T) {
	c := qt.New(t)
	emitter := newEmitter()

	entity := fieldspec.EntityDescriptor{
		CanonicalName: "Product",
		Fields: []fieldspec.FieldDescriptor{
			{Name: "name", Type: taxonomy.TypeString},
			{Name: "price", Type: taxonomy.TypeDecimal},
		},
	}

	create := emitter.Validation(entity, emit.ModeCreate)
	update := emitter.Validation(entity, emit.ModeUpdate)

	c.Assert(create.Mode, qt.Equals, "create")
	c.Assert(update.Mode, qt.Equals, "update")
	c.Assert(create.Rules, qt.HasLen, len(entity.Fields))

	// One rule per field, in declaration order, and every update rule is the
	// create rule behind a "sometimes|" prefix.
	for i, rule := range create.Rules {
		c.Assert(rule.Field, qt.Equals, entity.Fields[i].Name)
		c.Assert(update.Rules[i].Field, qt.Equals, rule.Field)
		c.Assert(update.Rules[i].Rule, qt.Equals, "sometimes|"+rule.Rule)
	}
}
