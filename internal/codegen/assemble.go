// Package codegen implements the schema-normalization stage of the
// generation pipeline: it turns a loaded schema plus optional operation
// documents into the canonical template context consumed by rendering.
package codegen

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	cgerrors "github.com/gqlweave/gqlweave/internal/codegen/errors"
	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
	"github.com/gqlweave/gqlweave/internal/codegen/transform"
)

// Transformers bundles the injected per-kind transformer collaborators.
// Each is a pure function of (schema, definition); the assembler invokes
// them in filtered order, so output lists preserve declaration order.
type Transformers struct {
	Object      func(schema *ast.Schema, def *ast.Definition) *tmplctx.Object
	InputObject func(schema *ast.Schema, def *ast.Definition) *tmplctx.Object
	Enum        func(schema *ast.Schema, def *ast.Definition) *tmplctx.Enum
	Union       func(schema *ast.Schema, def *ast.Definition) *tmplctx.Union
	Interface   func(schema *ast.Schema, def *ast.Definition) *tmplctx.Interface
	Scalar      func(schema *ast.Schema, def *ast.Definition) *tmplctx.Scalar
	Directive   func(schema *ast.Schema, def *ast.DirectiveDefinition) *tmplctx.Directive
}

// DefaultTransformers returns the built-in transformer set.
func DefaultTransformers() Transformers {
	return Transformers{
		Object:      transform.Object,
		InputObject: transform.InputObject,
		Enum:        transform.Enum,
		Union:       transform.Union,
		Interface:   transform.Interface,
		Scalar:      transform.Scalar,
		Directive:   transform.Directive,
	}
}

// Assembler aggregates transformer outputs into a TemplateContext. It
// accumulates into local slices and constructs the final record once, so a
// partially-built context can never leak to callers.
type Assembler struct {
	transformers Transformers
	logger       *zap.Logger
}

// NewAssembler creates an Assembler with the given transformers.
func NewAssembler(transformers Transformers, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{transformers: transformers, logger: logger}
}

// Assemble routes every definition to its transformer by structural kind
// and builds the final context. Dispatch is exhaustive over the six kinds;
// any other kind aborts the whole construction with an UnclassifiableType
// error rather than silently dropping the definition, since a dropped type
// would leave the generated context referencing an undefined type.
func (a *Assembler) Assemble(schema *ast.Schema, defs []*ast.Definition) (*tmplctx.TemplateContext, error) {
	var (
		types      []*tmplctx.Object
		inputTypes []*tmplctx.Object
		enums      []*tmplctx.Enum
		unions     []*tmplctx.Union
		interfaces []*tmplctx.Interface
		scalars    []*tmplctx.Scalar
	)

	for _, def := range defs {
		switch def.Kind {
		case ast.Object:
			types = append(types, a.transformers.Object(schema, def))
		case ast.InputObject:
			inputTypes = append(inputTypes, a.transformers.InputObject(schema, def))
		case ast.Enum:
			enums = append(enums, a.transformers.Enum(schema, def))
		case ast.Union:
			unions = append(unions, a.transformers.Union(schema, def))
		case ast.Interface:
			interfaces = append(interfaces, a.transformers.Interface(schema, def))
		case ast.Scalar:
			scalars = append(scalars, a.transformers.Scalar(schema, def))
		default:
			a.logger.Error("unclassifiable type definition",
				zap.String("type", def.Name),
				zap.String("kind", string(def.Kind)))
			return nil, cgerrors.NewUnclassifiableType(def)
		}
	}

	directives := a.transformDirectives(schema)

	ctx := &tmplctx.TemplateContext{
		Types:      types,
		InputTypes: inputTypes,
		Enums:      enums,
		Unions:     unions,
		Interfaces: interfaces,
		Scalars:    scalars,
		Directives: directives,

		HasTypes:      len(types) > 0,
		HasInputTypes: len(inputTypes) > 0,
		HasEnums:      len(enums) > 0,
		HasUnions:     len(unions) > 0,
		HasInterfaces: len(interfaces) > 0,
		HasScalars:    len(scalars) > 0,
		HasDirectives: len(directives) > 0,

		UsesDirectives: schemaUsesDirectives(schema),
		RawSchema:      schema,
	}

	a.logger.Debug("template context assembled",
		zap.Int("types", len(types)),
		zap.Int("inputTypes", len(inputTypes)),
		zap.Int("enums", len(enums)),
		zap.Int("unions", len(unions)),
		zap.Int("interfaces", len(interfaces)),
		zap.Int("scalars", len(scalars)),
		zap.Int("directives", len(directives)))

	return ctx, nil
}

// transformDirectives transforms every declared directive, ordered by
// source position for deterministic output.
func (a *Assembler) transformDirectives(schema *ast.Schema) []*tmplctx.Directive {
	decls := make([]*ast.DirectiveDefinition, 0, len(schema.Directives))
	for _, decl := range schema.Directives {
		decls = append(decls, decl)
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return lessDirective(decls[i], decls[j])
	})

	directives := make([]*tmplctx.Directive, 0, len(decls))
	for _, decl := range decls {
		directives = append(directives, a.transformers.Directive(schema, decl))
	}
	return directives
}

func lessDirective(a, b *ast.DirectiveDefinition) bool {
	ap, bp := a.Position, b.Position
	switch {
	case ap == nil && bp == nil:
		return a.Name < b.Name
	case ap == nil:
		return false
	case bp == nil:
		return true
	}
	an, bn := "", ""
	if ap.Src != nil {
		an = ap.Src.Name
	}
	if bp.Src != nil {
		bn = bp.Src.Name
	}
	if an != bn {
		return an < bn
	}
	if ap.Start != bp.Start {
		return ap.Start < bp.Start
	}
	return a.Name < b.Name
}

// schemaUsesDirectives reports whether any directive is applied anywhere in
// the schema: on a type, field, argument, or enum value. Declaring a
// directive is not using it.
func schemaUsesDirectives(schema *ast.Schema) bool {
	for _, def := range schema.Types {
		if len(def.Directives) > 0 {
			return true
		}
		for _, field := range def.Fields {
			if len(field.Directives) > 0 {
				return true
			}
			for _, arg := range field.Arguments {
				if len(arg.Directives) > 0 {
					return true
				}
			}
		}
		for _, value := range def.EnumValues {
			if len(value.Directives) > 0 {
				return true
			}
		}
	}
	return false
}
