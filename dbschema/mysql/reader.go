// Package mysql reads table columns from MySQL and MariaDB databases.
package mysql

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/stokaro/anvil/dbschema/types"
)

// Reader reads column definitions from the connected MySQL database.
type Reader struct {
	db *sql.DB
}

// NewReader creates a reader for the connection's current database.
func NewReader(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// ReadColumns returns the table's columns in ordinal position order. Enum
// member values are recovered from the column_type expression, which is the
// only place MySQL exposes them.
func (r *Reader) ReadColumns(table string) ([]types.DBColumn, error) {
	query := `
		SELECT
			column_name,
			data_type,
			is_nullable,
			COALESCE(column_default, ''),
			COALESCE(character_maximum_length, 0),
			COALESCE(numeric_precision, 0),
			COALESCE(numeric_scale, 0),
			column_type
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`

	rows, err := r.db.Query(query, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	defer rows.Close()

	var columns []types.DBColumn
	for rows.Next() {
		var col types.DBColumn
		var nullable, columnType string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default,
			&col.MaxLength, &col.Precision, &col.Scale, &columnType); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		col.Nullable = strings.EqualFold(nullable, "YES")
		if strings.EqualFold(col.DataType, "enum") {
			col.Values = ParseEnumValues(columnType)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns: %w", err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q not found", table)
	}
	return columns, nil
}

// Close closes the underlying connection.
func (r *Reader) Close() error {
	return r.db.Close()
}

// ParseEnumValues extracts the member literals from a MySQL enum column type
// expression such as "enum('pending','active','completed')". Order is
// preserved; malformed input yields nil.
func ParseEnumValues(columnType string) []string {
	open := strings.Index(columnType, "(")
	close := strings.LastIndex(columnType, ")")
	if open < 0 || close <= open {
		return nil
	}

	var values []string
	for _, part := range strings.Split(columnType[open+1:close], ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "'")
		part = strings.TrimSuffix(part, "'")
		if part != "" {
			values = append(values, strings.ReplaceAll(part, "''", "'"))
		}
	}
	return values
}
