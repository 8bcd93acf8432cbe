package fieldspec_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
)

func writeFieldFile(c *qt.C, content string) string {
	path := filepath.Join(c.TempDir(), "fields.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	c.Assert(err, qt.IsNil)
	return path
}

func TestLoadFile(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	path := writeFieldFile(c, `
entity: Product
fields:
  - name: name
    type: string
    length: 100
    unique: true
  - name: status
    type: enum
    values: [draft, active, archived]
    default: draft
  - name: price
    type: decimal
  - name: category_id
    type: foreignId
    cascade: true
`)

	entity, fields, err := fieldspec.LoadFile(path, reg)
	c.Assert(err, qt.IsNil)
	c.Assert(entity, qt.Equals, "Product")
	c.Assert(fields, qt.HasLen, 4)

	c.Assert(fields[0], qt.DeepEquals, fieldspec.FieldDescriptor{
		Name: "name", Type: taxonomy.TypeString, Length: 100, Unique: true,
	})

	// Enum value lists are exactly what the text mini-language cannot carry.
	c.Assert(fields[1].Type, qt.Equals, taxonomy.TypeEnum)
	c.Assert(fields[1].Values, qt.DeepEquals, []string{"draft", "active", "archived"})
	c.Assert(fields[1].HasDefault, qt.IsTrue)
	c.Assert(fields[1].DefaultValue, qt.Equals, "draft")

	// Decimal defaults match the text parser.
	c.Assert(fields[2].Precision, qt.Equals, 8)
	c.Assert(fields[2].Scale, qt.Equals, 2)

	c.Assert(fields[3].Cascade, qt.IsTrue)
}

func TestLoadFile_DefaultAbsentVsEmpty(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	path := writeFieldFile(c, `
entity: Note
fields:
  - name: body
    type: text
  - name: suffix
    type: string
    default: ""
`)

	_, fields, err := fieldspec.LoadFile(path, reg)
	c.Assert(err, qt.IsNil)
	c.Assert(fields, qt.HasLen, 2)

	// "no default" and "default to empty string" are different declarations.
	c.Assert(fields[0].HasDefault, qt.IsFalse)
	c.Assert(fields[1].HasDefault, qt.IsTrue)
	c.Assert(fields[1].DefaultValue, qt.Equals, "")
}

func TestLoadFile_UnknownTypeDefaultsToString(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	path := writeFieldFile(c, `
entity: Thing
fields:
  - name: blob
    type: varchar
  - name: ""
    type: string
`)

	_, fields, err := fieldspec.LoadFile(path, reg)
	c.Assert(err, qt.IsNil)
	c.Assert(fields, qt.HasLen, 1)
	c.Assert(fields[0].Type, qt.Equals, taxonomy.TypeString)
}

func TestLoadFile_Errors(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	_, _, err := fieldspec.LoadFile(filepath.Join(c.TempDir(), "missing.yaml"), reg)
	c.Assert(err, qt.ErrorMatches, "failed to read field file: .*")

	path := writeFieldFile(c, "entity: [broken")
	_, _, err = fieldspec.LoadFile(path, reg)
	c.Assert(err, qt.ErrorMatches, "failed to parse field file: .*")
}
