package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Directive transforms a directive declaration.
func Directive(schema *ast.Schema, def *ast.DirectiveDefinition) *tmplctx.Directive {
	locations := make([]string, len(def.Locations))
	for i, loc := range def.Locations {
		locations[i] = string(loc)
	}
	args := transformArguments(def.Arguments)
	return &tmplctx.Directive{
		Name:         def.Name,
		Description:  def.Description,
		Locations:    locations,
		Arguments:    args,
		HasArguments: len(args) > 0,
		IsRepeatable: def.IsRepeatable,
	}
}
