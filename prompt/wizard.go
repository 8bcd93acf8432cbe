package prompt

import (
	"strconv"

	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
)

// Modifier choice labels offered by the field wizard.
var modifierOptions = []string{"nullable", "unique", "unsigned", "index", "default", "comment"}

// CollectEntity asks for the entity name. An empty answer is treated as a
// cancellation: generation without an entity name is meaningless.
func CollectEntity(p Prompter) (string, error) {
	name, err := p.Input("Entity name", "Product")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrCancelled
	}
	return name, nil
}

// CollectFields runs the interactive field wizard: one field per iteration
// until the user submits an empty name. Unlike the text mini-language, the
// wizard can collect enum value lists, so enum fields are fully definable
// here.
//
// Any cancelled prompt aborts the whole collection with ErrCancelled.
func CollectFields(p Prompter, reg *taxonomy.Registry) ([]fieldspec.FieldDescriptor, error) {
	fields := make([]fieldspec.FieldDescriptor, 0)

	for {
		name, err := p.Input("Field name (leave empty to finish)", "unit_price")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return fields, nil
		}

		abstract, err := p.Select("Field type", reg.Types())
		if err != nil {
			return nil, err
		}

		field := fieldspec.FieldDescriptor{Name: name, Type: reg.Normalize(abstract)}

		if err := collectTypeArgs(p, &field); err != nil {
			return nil, err
		}
		if err := collectModifiers(p, &field); err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}
}

// collectTypeArgs asks the type-specific follow-up questions.
func collectTypeArgs(p Prompter, field *fieldspec.FieldDescriptor) error {
	switch field.Type {
	case taxonomy.TypeString:
		raw, err := p.Input("Maximum length (empty for 255)", "255")
		if err != nil {
			return err
		}
		if n, convErr := strconv.Atoi(raw); convErr == nil && n > 0 {
			field.Length = n
		}
	case taxonomy.TypeDecimal:
		field.Precision = fieldspec.DefaultPrecision
		field.Scale = fieldspec.DefaultScale
		raw, err := p.Input("Precision (empty for 8)", "8")
		if err != nil {
			return err
		}
		if n, convErr := strconv.Atoi(raw); convErr == nil && n > 0 {
			field.Precision = n
		}
		raw, err = p.Input("Scale (empty for 2)", "2")
		if err != nil {
			return err
		}
		if n, convErr := strconv.Atoi(raw); convErr == nil && n > 0 {
			field.Scale = n
		}
	case taxonomy.TypeEnum:
		for {
			value, err := p.Input("Enum value (leave empty to finish)", "")
			if err != nil {
				return err
			}
			if value == "" {
				break
			}
			field.Values = append(field.Values, value)
		}
	case taxonomy.TypeForeignID:
		cascade, err := p.Confirm("Cascade on delete?")
		if err != nil {
			return err
		}
		field.Cascade = cascade
	}
	return nil
}

// collectModifiers asks for the modifier set and the values carried by the
// default and comment modifiers.
func collectModifiers(p Prompter, field *fieldspec.FieldDescriptor) error {
	chosen, err := p.MultiSelect("Modifiers", modifierOptions)
	if err != nil {
		return err
	}

	for _, mod := range chosen {
		switch mod {
		case "nullable":
			field.Nullable = true
		case "unique":
			field.Unique = true
		case "unsigned":
			field.Unsigned = true
		case "index":
			field.Index = true
		case "default":
			value, err := p.Input("Default value", "")
			if err != nil {
				return err
			}
			field.HasDefault = true
			field.DefaultValue = value
		case "comment":
			value, err := p.Input("Column comment", "")
			if err != nil {
				return err
			}
			field.Comment = value
		}
	}
	return nil
}
