package mysql_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/dbschema/mysql"
)

func TestParseEnumValues(t *testing.T) {
	tests := []struct {
		name       string
		columnType string
		expected   []string
	}{
		{
			name:       "simple members",
			columnType: "enum('pending','active','completed')",
			expected:   []string{"pending", "active", "completed"},
		},
		{
			name:       "single member",
			columnType: "enum('only')",
			expected:   []string{"only"},
		},
		{
			name:       "escaped quote",
			columnType: "enum('it''s','other')",
			expected:   []string{"it's", "other"},
		},
		{
			name:       "not an enum expression",
			columnType: "varchar(255",
			expected:   nil,
		},
		{
			name:       "malformed",
			columnType: "enum",
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(mysql.ParseEnumValues(tt.columnType), qt.DeepEquals, tt.expected)
		})
	}
}
