package fieldspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stokaro/anvil/core/taxonomy"
)

// fileDocument is the YAML shape of a field file.
type fileDocument struct {
	Entity string      `yaml:"entity"`
	Fields []fileField `yaml:"fields"`
}

type fileField struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Length    int      `yaml:"length"`
	Precision int      `yaml:"precision"`
	Scale     int      `yaml:"scale"`
	Values    []string `yaml:"values"`
	Nullable  bool     `yaml:"nullable"`
	Unique    bool     `yaml:"unique"`
	Unsigned  bool     `yaml:"unsigned"`
	Index     bool     `yaml:"index"`
	Cascade   bool     `yaml:"cascade"`
	Default   *string  `yaml:"default"`
	Comment   string   `yaml:"comment"`
}

// LoadFile reads a YAML field file and returns the entity name and its
// ordered field list.
//
// The field file is the non-interactive way to declare what the text
// mini-language cannot: enum value lists, modifiers, defaults and comments.
// Type handling matches the text parser: unknown types normalize to string,
// decimal precision and scale default to 8 and 2.
func LoadFile(path string, reg *taxonomy.Registry) (string, []FieldDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read field file: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("failed to parse field file: %w", err)
	}

	fields := make([]FieldDescriptor, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.Name == "" {
			continue
		}

		field := FieldDescriptor{
			Name:      f.Name,
			Type:      reg.Normalize(f.Type),
			Length:    f.Length,
			Precision: f.Precision,
			Scale:     f.Scale,
			Values:    f.Values,
			Nullable:  f.Nullable,
			Unique:    f.Unique,
			Unsigned:  f.Unsigned,
			Index:     f.Index,
			Cascade:   f.Cascade,
			Comment:   f.Comment,
		}
		if f.Default != nil {
			field.HasDefault = true
			field.DefaultValue = *f.Default
		}
		if field.Type == taxonomy.TypeDecimal {
			if field.Precision <= 0 {
				field.Precision = DefaultPrecision
			}
			if field.Scale <= 0 {
				field.Scale = DefaultScale
			}
		}

		fields = append(fields, field)
	}

	return doc.Entity, fields, nil
}
