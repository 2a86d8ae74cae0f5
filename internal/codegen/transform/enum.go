package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Enum transforms an enum type definition. Name and Value start out
// identical for every enum value; value remapping belongs to the renderer.
func Enum(schema *ast.Schema, def *ast.Definition) *tmplctx.Enum {
	values := make([]*tmplctx.EnumValue, 0, len(def.EnumValues))
	for _, v := range def.EnumValues {
		values = append(values, &tmplctx.EnumValue{
			Name:        v.Name,
			Value:       v.Name,
			Description: v.Description,
			Directives:  transformUses(v.Directives),
		})
	}
	return &tmplctx.Enum{
		Name:        def.Name,
		Description: def.Description,
		Values:      values,
		Directives:  transformUses(def.Directives),
	}
}
