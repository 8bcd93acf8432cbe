package emit

import (
	"strconv"
	"strings"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
)

// Mode selects which request rule set Validation emits.
type Mode string

// Validation modes. Update rules are always derived from create rules by the
// "sometimes|" prefix transform, never authored independently.
const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// Validation converts an entity into the ordered field-name to rule-string
// mapping for the given mode: exactly one rule per declared field, in
// declaration order.
func (e *Emitter) Validation(entity fieldspec.EntityDescriptor, mode Mode) *ast.RuleSetNode {
	set := &ast.RuleSetNode{
		Entity: entity.CanonicalName,
		Mode:   string(mode),
		Rules:  make([]*ast.RuleNode, 0, len(entity.Fields)),
	}

	for _, field := range entity.Fields {
		rule := e.CreateRule(field)
		if mode == ModeUpdate {
			rule = taxonomy.UpdateRule(rule)
		}
		set.Rules = append(set.Rules, &ast.RuleNode{Field: field.Name, Rule: rule})
	}

	return set
}

// CreateRule builds the create-mode rule string for one field: the taxonomy
// default with the field's type arguments substituted in.
func (e *Emitter) CreateRule(field fieldspec.FieldDescriptor) string {
	entry := e.reg.Lookup(field.Type)
	rule := entry.CreateRule

	switch e.reg.Normalize(field.Type) {
	case taxonomy.TypeString:
		if field.Length > 0 {
			rule = "required|string|max:" + strconv.Itoa(field.Length)
		}
	case taxonomy.TypeEnum:
		if len(field.Values) > 0 {
			rule = "required|in:" + strings.Join(field.Values, ",")
		}
	case taxonomy.TypeForeignID:
		rule = "required|exists:" + ForeignTable(field.Name) + ",id"
	}

	if field.Nullable {
		rule = "nullable" + strings.TrimPrefix(rule, "required")
	}

	return rule
}
