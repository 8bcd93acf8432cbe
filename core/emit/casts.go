package emit

import (
	"strconv"

	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
)

// Cast is one model attribute-cast entry.
type Cast struct {
	Field string
	Cast  string
}

// Casts derives the model cast list from the taxonomy display-cast column,
// in field declaration order. Fields whose type carries no cast hint are
// omitted. Decimal fields cast with their scale so serialized values keep a
// stable number of fraction digits.
func (e *Emitter) Casts(entity fieldspec.EntityDescriptor) []Cast {
	casts := make([]Cast, 0, len(entity.Fields))
	for _, field := range entity.Fields {
		hint := e.reg.Lookup(field.Type).DisplayCast
		if hint == "" {
			continue
		}
		if e.reg.Normalize(field.Type) == taxonomy.TypeDecimal {
			scale := field.Scale
			if scale <= 0 {
				scale = fieldspec.DefaultScale
			}
			hint = "decimal:" + strconv.Itoa(scale)
		}
		casts = append(casts, Cast{Field: field.Name, Cast: hint})
	}
	return casts
}
