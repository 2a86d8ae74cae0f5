package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Scalar transforms a scalar type definition.
func Scalar(schema *ast.Schema, def *ast.Definition) *tmplctx.Scalar {
	return &tmplctx.Scalar{
		Name:        def.Name,
		Description: def.Description,
		Directives:  transformUses(def.Directives),
	}
}
