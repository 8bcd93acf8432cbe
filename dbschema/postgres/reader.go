// Package postgres reads table columns from PostgreSQL databases.
package postgres

import (
	"database/sql"
	"fmt"

	"github.com/stokaro/anvil/dbschema/types"
)

// Reader reads column definitions from a PostgreSQL schema.
type Reader struct {
	db     *sql.DB
	schema string
}

// NewReader creates a reader; an empty schema defaults to "public".
func NewReader(db *sql.DB, schema string) *Reader {
	if schema == "" {
		schema = "public"
	}
	return &Reader{db: db, schema: schema}
}

// ReadColumns returns the table's columns in ordinal position order.
func (r *Reader) ReadColumns(table string) ([]types.DBColumn, error) {
	query := `
		SELECT
			column_name,
			data_type,
			is_nullable,
			COALESCE(column_default, ''),
			COALESCE(character_maximum_length, 0),
			COALESCE(numeric_precision, 0),
			COALESCE(numeric_scale, 0)
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := r.db.Query(query, r.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	defer rows.Close()

	var columns []types.DBColumn
	for rows.Next() {
		var col types.DBColumn
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default,
			&col.MaxLength, &col.Precision, &col.Scale); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns: %w", err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q not found in schema %q", table, r.schema)
	}
	return columns, nil
}

// Close closes the underlying connection.
func (r *Reader) Close() error {
	return r.db.Close()
}
