package fieldspec

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/stokaro/anvil/core/taxonomy"
)

// Parse converts the compact text mini-language into an ordered field list.
//
// The input is a comma-separated sequence of clauses, each clause
// colon-separated: name[:type[:arg1[,arg2]]]. Splitting is on literal ","
// and ":" with no escaping; a field name or enum value containing either
// character is out of scope.
//
// Because the top-level separator is also the decimal argument separator,
// "price:decimal:8,2" tokenizes as the clause "price:decimal:8" followed by
// the bare token "2". A bare numeric token directly after a decimal clause is
// therefore consumed as that clause's scale.
//
// Parse never fails: an omitted or unrecognized type defaults to "string",
// malformed numeric arguments keep their defaults, unknown trailing clause
// components are ignored, and empty clauses are skipped.
func Parse(spec string, reg *taxonomy.Registry) []FieldDescriptor {
	fields := make([]FieldDescriptor, 0)

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		// Bare numeric token: scale continuation of a preceding decimal
		// clause ("price:decimal:8,2").
		if !strings.Contains(token, ":") {
			if n, err := strconv.Atoi(token); err == nil && len(fields) > 0 {
				last := &fields[len(fields)-1]
				if last.Type == taxonomy.TypeDecimal {
					if n > 0 {
						last.Scale = n
					}
					continue
				}
			}
		}

		parts := strings.Split(token, ":")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}

		field := FieldDescriptor{Name: name, Type: taxonomy.TypeString}

		if len(parts) > 1 {
			rawType := strings.TrimSpace(parts[1])
			if rawType != "" && !reg.Known(rawType) {
				slog.Debug("unknown field type, defaulting to string", "field", name, "type", rawType)
			}
			field.Type = reg.Normalize(rawType)
		}

		switch field.Type {
		case taxonomy.TypeString:
			if len(parts) > 2 {
				if n, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil && n > 0 {
					field.Length = n
				}
			}
		case taxonomy.TypeDecimal:
			field.Precision = DefaultPrecision
			field.Scale = DefaultScale
			if len(parts) > 2 {
				if n, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil && n > 0 {
					field.Precision = n
				}
			}
			if len(parts) > 3 {
				if n, err := strconv.Atoi(strings.TrimSpace(parts[3])); err == nil && n > 0 {
					field.Scale = n
				}
			}
		}
		// Components beyond the recognized type arguments are ignored, not
		// validated.

		fields = append(fields, field)
	}

	return fields
}

// Default type arguments applied when the mini-language omits them.
const (
	DefaultLength    = 255
	DefaultPrecision = 8
	DefaultScale     = 2
)
