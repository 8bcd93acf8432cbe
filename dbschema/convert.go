package dbschema

import (
	"fmt"
	"strings"

	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
	"github.com/stokaro/anvil/dbschema/types"
)

// Columns skipped during reverse mapping: the primary key and the bookkeeping
// columns the generator manages itself.
var skippedColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

// ToFields maps database columns back to field descriptors. The mapping is
// the inverse of schema emission and deliberately lossy: database types with
// no abstract counterpart become string, and id/timestamp columns are
// dropped because generation recreates them.
func ToFields(columns []types.DBColumn, reg *taxonomy.Registry) []fieldspec.FieldDescriptor {
	var fields []fieldspec.FieldDescriptor
	for _, col := range columns {
		if skippedColumns[col.Name] {
			continue
		}

		field := fieldspec.FieldDescriptor{
			Name:     col.Name,
			Type:     abstractType(col),
			Nullable: col.Nullable,
		}

		switch field.Type {
		case taxonomy.TypeString:
			if col.MaxLength > 0 {
				field.Length = col.MaxLength
			} else {
				field.Length = fieldspec.DefaultLength
			}
		case taxonomy.TypeDecimal:
			field.Precision = col.Precision
			field.Scale = col.Scale
			if field.Precision == 0 {
				field.Precision = fieldspec.DefaultPrecision
				field.Scale = fieldspec.DefaultScale
			}
		case taxonomy.TypeEnum:
			field.Values = col.Values
		}

		fields = append(fields, field)
	}
	return fields
}

// abstractType maps a database type name to the abstract field type. The
// column name participates only for foreign keys: integer columns ending in
// _id become foreignId. Unknown database types map to string.
func abstractType(col types.DBColumn) string {
	dataType := strings.ToLower(col.DataType)

	if strings.HasSuffix(col.Name, "_id") {
		switch dataType {
		case "bigint", "int8", "integer", "int", "int4":
			return taxonomy.TypeForeignID
		}
	}

	switch dataType {
	case "character varying", "varchar", "char", "character":
		return taxonomy.TypeString
	case "text", "tinytext", "mediumtext", "longtext":
		return taxonomy.TypeText
	case "integer", "int", "int4", "mediumint":
		return taxonomy.TypeInteger
	case "bigint", "int8":
		return taxonomy.TypeBigInteger
	case "smallint", "int2", "tinyint":
		return taxonomy.TypeTinyInteger
	case "numeric", "decimal":
		return taxonomy.TypeDecimal
	case "real", "float4", "float":
		return taxonomy.TypeFloat
	case "double precision", "double", "float8":
		return taxonomy.TypeDouble
	case "boolean", "bool":
		return taxonomy.TypeBoolean
	case "date":
		return taxonomy.TypeDate
	case "timestamp", "timestamp without time zone", "timestamp with time zone", "datetime":
		return taxonomy.TypeDateTime
	case "time", "time without time zone", "time with time zone":
		return taxonomy.TypeTime
	case "json", "jsonb":
		return taxonomy.TypeJSON
	case "enum":
		return taxonomy.TypeEnum
	case "uuid":
		return taxonomy.TypeUUID
	default:
		return taxonomy.TypeString
	}
}

// SpecString renders fields back into the colon-and-comma field syntax, in a
// form Parse accepts unchanged. Only what the text syntax can express
// survives: enum member values and modifiers like nullable are omitted; use
// a YAML field file when they must be carried.
func SpecString(fields []fieldspec.FieldDescriptor) string {
	clauses := make([]string, 0, len(fields))
	for _, field := range fields {
		clause := field.Name + ":" + field.Type
		switch field.Type {
		case taxonomy.TypeString:
			if field.Length != fieldspec.DefaultLength {
				clause += fmt.Sprintf(":%d", field.Length)
			}
		case taxonomy.TypeDecimal:
			if field.Precision != fieldspec.DefaultPrecision || field.Scale != fieldspec.DefaultScale {
				clause += fmt.Sprintf(":%d,%d", field.Precision, field.Scale)
			}
		}
		clauses = append(clauses, clause)
	}
	return strings.Join(clauses, ",")
}
