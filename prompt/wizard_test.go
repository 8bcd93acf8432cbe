package prompt_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/core/taxonomy"
	"github.com/stokaro/anvil/prompt"
)

func TestCollectEntity(t *testing.T) {
	c := qt.New(t)

	name, err := prompt.CollectEntity(&prompt.Headless{Inputs: []string{"Product"}})
	c.Assert(err, qt.IsNil)
	c.Assert(name, qt.Equals, "Product")

	// An empty answer is a cancellation, not an empty entity.
	_, err = prompt.CollectEntity(&prompt.Headless{Inputs: []string{""}})
	c.Assert(err, qt.Equals, prompt.ErrCancelled)
}

func TestCollectFields(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	p := &prompt.Headless{
		Inputs: []string{
			"name", // field name
			"100",  // string length
			"status", // field name
			"pending", "done", "", // enum values, empty finishes
			"", // empty field name finishes the wizard
		},
		Selections: []string{"string", "enum"},
		Multis:     [][]string{{"unique"}, {"nullable"}},
	}

	fields, err := prompt.CollectFields(p, reg)
	c.Assert(err, qt.IsNil)
	c.Assert(fields, qt.HasLen, 2)

	c.Assert(fields[0].Name, qt.Equals, "name")
	c.Assert(fields[0].Type, qt.Equals, taxonomy.TypeString)
	c.Assert(fields[0].Length, qt.Equals, 100)
	c.Assert(fields[0].Unique, qt.IsTrue)

	// The wizard can collect enum values; the text mini-language cannot.
	c.Assert(fields[1].Type, qt.Equals, taxonomy.TypeEnum)
	c.Assert(fields[1].Values, qt.DeepEquals, []string{"pending", "done"})
	c.Assert(fields[1].Nullable, qt.IsTrue)
}

func TestCollectFields_ForeignKeyAsksForCascade(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	p := &prompt.Headless{
		Inputs:     []string{"category_id", ""},
		Selections: []string{"foreignId"},
		Multis:     [][]string{{}},
		Confirms:   []bool{true},
	}

	fields, err := prompt.CollectFields(p, reg)
	c.Assert(err, qt.IsNil)
	c.Assert(fields, qt.HasLen, 1)
	c.Assert(fields[0].Cascade, qt.IsTrue)
}

func TestCollectFields_DefaultAndComment(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	p := &prompt.Headless{
		Inputs:     []string{"kind", "32", "basic", "lookup code", ""},
		Selections: []string{"string"},
		Multis:     [][]string{{"default", "comment"}},
	}

	fields, err := prompt.CollectFields(p, reg)
	c.Assert(err, qt.IsNil)
	c.Assert(fields[0].HasDefault, qt.IsTrue)
	c.Assert(fields[0].DefaultValue, qt.Equals, "basic")
	c.Assert(fields[0].Comment, qt.Equals, "lookup code")
}

func TestCollectFields_CancellationAbortsTheWholeCollection(t *testing.T) {
	c := qt.New(t)
	reg := taxonomy.New()

	// The select queue is empty, so the type question is dismissed mid-field.
	p := &prompt.Headless{Inputs: []string{"name"}}

	fields, err := prompt.CollectFields(p, reg)
	c.Assert(err, qt.Equals, prompt.ErrCancelled)
	c.Assert(fields, qt.IsNil)
}

func TestHeadless_ExhaustedQueueCancels(t *testing.T) {
	c := qt.New(t)
	p := &prompt.Headless{}

	_, err := p.Input("q", "")
	c.Assert(err, qt.Equals, prompt.ErrCancelled)
	_, err = p.Select("q", nil)
	c.Assert(err, qt.Equals, prompt.ErrCancelled)
	_, err = p.MultiSelect("q", nil)
	c.Assert(err, qt.Equals, prompt.ErrCancelled)
	_, err = p.Confirm("q")
	c.Assert(err, qt.Equals, prompt.ErrCancelled)
}
