package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Interface transforms an interface type definition. Implementing type
// names come from the schema's possible-type index, in index order.
func Interface(schema *ast.Schema, def *ast.Definition) *tmplctx.Interface {
	fields := transformFields(def.Fields)
	directives := transformUses(def.Directives)

	var implementing []string
	for _, possible := range schema.GetPossibleTypes(def) {
		implementing = append(implementing, possible.Name)
	}

	return &tmplctx.Interface{
		Name:                 def.Name,
		Description:          def.Description,
		Fields:               fields,
		ImplementingTypes:    implementing,
		HasFields:            len(fields) > 0,
		HasImplementingTypes: len(implementing) > 0,
		Directives:           directives,
		UsesDirectives:       len(directives) > 0 || fieldsUseDirectives(fields),
	}
}
