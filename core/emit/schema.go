package emit

import (
	"strconv"
	"strings"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/naming"
	"github.com/stokaro/anvil/core/taxonomy"
)

// Schema converts an entity into its migration column-definition sequence.
//
// The column order is fixed: the implicit primary key first, the declared
// fields in declaration order, then the implicit timestamps pair (and the
// soft-delete column when requested) unless the entity opts out.
//
// The modifier chain of each column is built by scanning the field's
// modifier flags in one fixed order: unsigned, nullable, unique, index,
// default, comment, constrained, cascadeOnDelete. Two runs over the same
// descriptor therefore always produce textually identical output, which is
// required for idempotent diffing of regenerated migrations.
func (e *Emitter) Schema(entity fieldspec.EntityDescriptor) *ast.MigrationNode {
	migration := ast.NewMigration(naming.Table(entity.CanonicalName))
	migration.AddColumn(ast.NewColumn("id", ""))

	for _, field := range entity.Fields {
		migration.AddColumn(e.column(field))
	}

	if !entity.Options.NoTimestamps {
		migration.AddColumn(ast.NewColumn("timestamps", ""))
	}
	if entity.Options.SoftDeletes {
		migration.AddColumn(ast.NewColumn("softDeletes", ""))
	}

	return migration
}

// column builds one column-definition record for a declared field.
func (e *Emitter) column(field fieldspec.FieldDescriptor) *ast.ColumnNode {
	entry := e.reg.Lookup(field.Type)
	col := ast.NewColumn(entry.SchemaConstructor, field.Name, e.constructorArgs(field)...)

	if field.Unsigned {
		col.WithModifier("unsigned", "")
	}
	if field.Nullable {
		col.WithModifier("nullable", "")
	}
	if field.Unique {
		col.WithModifier("unique", "")
	}
	if field.Index {
		col.WithModifier("index", "")
	}
	if field.HasDefault {
		col.WithModifier("default", phpLiteral(field.Type, field.DefaultValue))
	}
	if field.Comment != "" {
		col.WithModifier("comment", phpString(field.Comment))
	}
	if e.reg.Normalize(field.Type) == taxonomy.TypeForeignID {
		col.WithModifier("constrained", phpString(ForeignTable(field.Name)))
		if field.Cascade {
			col.WithModifier("cascadeOnDelete", "")
		}
	}

	return col
}

// constructorArgs formats the type-specific constructor arguments that follow
// the column name.
func (e *Emitter) constructorArgs(field fieldspec.FieldDescriptor) []string {
	switch e.reg.Normalize(field.Type) {
	case taxonomy.TypeString:
		if field.Length > 0 {
			return []string{strconv.Itoa(field.Length)}
		}
	case taxonomy.TypeDecimal:
		precision, scale := field.Precision, field.Scale
		if precision <= 0 {
			precision = fieldspec.DefaultPrecision
		}
		if scale <= 0 {
			scale = fieldspec.DefaultScale
		}
		return []string{strconv.Itoa(precision), strconv.Itoa(scale)}
	case taxonomy.TypeEnum:
		if len(field.Values) > 0 {
			quoted := make([]string, len(field.Values))
			for i, v := range field.Values {
				quoted[i] = phpString(v)
			}
			return []string{"[" + strings.Join(quoted, ", ") + "]"}
		}
	}
	return nil
}

// phpString quotes a value as a single-quoted PHP string literal.
func phpString(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return "'" + escaped + "'"
}

// phpLiteral formats a default value for the column's type: numeric and
// boolean defaults stay bare, everything else becomes a string literal.
func phpLiteral(abstractType, value string) string {
	switch abstractType {
	case taxonomy.TypeInteger, taxonomy.TypeBigInteger, taxonomy.TypeTinyInteger,
		taxonomy.TypeDecimal, taxonomy.TypeFloat, taxonomy.TypeDouble:
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return value
		}
	case taxonomy.TypeBoolean:
		if value == "true" || value == "false" {
			return value
		}
	}
	return phpString(value)
}
