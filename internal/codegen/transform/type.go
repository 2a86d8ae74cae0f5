// Package transform holds the default per-kind transformers. Each is a pure
// function of (schema, definition) producing the template-context record for
// that kind; none of them keeps state between invocations, so callers may
// invoke them in any order and still get deterministic output.
package transform

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// ResolveType flattens a wrapped type into the flags templates branch on.
func ResolveType(t *ast.Type) tmplctx.TypeRef {
	ref := tmplctx.TypeRef{
		Raw:        t.String(),
		IsRequired: t.NonNull,
	}
	elem := t
	for elem.Elem != nil {
		ref.DimensionOfArray++
		elem = elem.Elem
	}
	ref.Name = elem.NamedType
	ref.IsArray = ref.DimensionOfArray > 0
	ref.IsNullableArray = ref.IsArray && !t.NonNull
	return ref
}

func transformFields(fields ast.FieldList) []*tmplctx.Field {
	out := make([]*tmplctx.Field, 0, len(fields))
	for _, field := range fields {
		args := transformArguments(field.Arguments)
		out = append(out, &tmplctx.Field{
			Name:         field.Name,
			Description:  field.Description,
			Type:         ResolveType(field.Type),
			Arguments:    args,
			HasArguments: len(args) > 0,
			Directives:   transformUses(field.Directives),
		})
	}
	return out
}

func transformArguments(args ast.ArgumentDefinitionList) []*tmplctx.Argument {
	out := make([]*tmplctx.Argument, 0, len(args))
	for _, arg := range args {
		a := &tmplctx.Argument{
			Name:        arg.Name,
			Description: arg.Description,
			Type:        ResolveType(arg.Type),
			Directives:  transformUses(arg.Directives),
		}
		if arg.DefaultValue != nil {
			a.DefaultValue = arg.DefaultValue.String()
		}
		out = append(out, a)
	}
	return out
}

func transformUses(list ast.DirectiveList) []*tmplctx.DirectiveUse {
	out := make([]*tmplctx.DirectiveUse, 0, len(list))
	for _, d := range list {
		use := &tmplctx.DirectiveUse{
			Name:      d.Name,
			Arguments: make([]*tmplctx.DirectiveArgument, 0, len(d.Arguments)),
		}
		for _, arg := range d.Arguments {
			use.Arguments = append(use.Arguments, &tmplctx.DirectiveArgument{
				Name:  arg.Name,
				Value: arg.Value.String(),
			})
		}
		out = append(out, use)
	}
	return out
}

func fieldsUseDirectives(fields []*tmplctx.Field) bool {
	for _, field := range fields {
		if len(field.Directives) > 0 {
			return true
		}
		for _, arg := range field.Arguments {
			if len(arg.Directives) > 0 {
				return true
			}
		}
	}
	return false
}
