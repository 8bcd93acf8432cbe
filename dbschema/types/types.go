// Package types defines the database-side column representation produced by
// the schema readers and consumed by the reverse field mapping.
package types

// DBColumn is one column of an existing database table, as reported by the
// database's information schema.
type DBColumn struct {
	// Name is the column name.
	Name string
	// DataType is the database's own type name ("character varying",
	// "numeric", "tinyint").
	DataType string
	// Nullable reports whether the column accepts NULL.
	Nullable bool
	// Default is the raw default expression; empty when the column has
	// none.
	Default string
	// MaxLength is the character maximum length; 0 when not applicable.
	MaxLength int
	// Precision and Scale describe numeric columns; 0 when not applicable.
	Precision int
	Scale     int
	// Values holds enum member literals for databases that expose them
	// (MySQL column_type).
	Values []string
}
