package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Object transforms an object type definition.
func Object(schema *ast.Schema, def *ast.Definition) *tmplctx.Object {
	return buildObject(def, false)
}

// InputObject transforms an input object type definition. Input objects
// share the object shape; their fields never carry arguments.
func InputObject(schema *ast.Schema, def *ast.Definition) *tmplctx.Object {
	return buildObject(def, true)
}

func buildObject(def *ast.Definition, isInput bool) *tmplctx.Object {
	fields := transformFields(def.Fields)
	directives := transformUses(def.Directives)
	obj := &tmplctx.Object{
		Name:           def.Name,
		Description:    def.Description,
		Fields:         fields,
		Interfaces:     append([]string(nil), def.Interfaces...),
		IsInputType:    isInput,
		HasFields:      len(fields) > 0,
		Directives:     directives,
		UsesDirectives: len(directives) > 0 || fieldsUseDirectives(fields),
	}
	obj.HasInterfaces = len(obj.Interfaces) > 0
	return obj
}
