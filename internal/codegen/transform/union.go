package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Union transforms a union type definition.
func Union(schema *ast.Schema, def *ast.Definition) *tmplctx.Union {
	return &tmplctx.Union{
		Name:             def.Name,
		Description:      def.Description,
		PossibleTypes:    append([]string(nil), def.Types...),
		HasPossibleTypes: len(def.Types) > 0,
	}
}
