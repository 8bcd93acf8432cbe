// Package naming provides the deterministic casing conversions used to derive
// every generated identifier from a single canonical entity name.
//
// All derived name forms (table name, route segment, variable name, file name)
// are computed on demand from the canonical PascalCase entity name and never
// stored independently, so they cannot drift out of sync between artifacts.
//
// Every function in this package is pure, total for non-empty ASCII
// identifier-like input, and idempotent: applying the same conversion twice
// yields the same result as applying it once.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// words splits an identifier into its lowercase word parts. It understands
// snake_case, kebab-case, space-separated and camel/Pascal humps, including
// runs of capitals ("APIToken" -> ["api", "token"]).
func words(s string) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			out = append(out, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && cur.Len() > 0) {
				flush()
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return out
}

// Pascal converts a name to PascalCase ("order_item" -> "OrderItem").
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// Camel converts a name to camelCase ("OrderItem" -> "orderItem").
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// Kebab converts a name to kebab-case ("OrderItem" -> "order-item").
func Kebab(s string) string {
	return strings.Join(words(s), "-")
}

// Snake converts a name to snake_case ("OrderItem" -> "order_item").
func Snake(s string) string {
	return strings.Join(words(s), "_")
}

// Plural appends "s" to a name. Irregular plurals are deliberately not
// handled ("Category" -> "Categorys"): generated identifiers such as table
// names must not change shape between versions of this tool.
func Plural(s string) string {
	return s + "s"
}

// Table derives the database table name: plural snake_case
// ("OrderItem" -> "order_items").
func Table(entity string) string {
	return Plural(Snake(entity))
}

// RouteSegment derives the URL segment used in generated route registrations:
// plural kebab-case ("OrderItem" -> "order-items").
func RouteSegment(entity string) string {
	return Plural(Kebab(entity))
}

// Variable derives the camelCase variable name for one instance of the entity.
func Variable(entity string) string {
	return Camel(entity)
}

// Label derives the human-readable form label for a field name
// ("unit_price" -> "Unit Price").
func Label(field string) string {
	return titleCaser.String(strings.Join(words(field), " "))
}
