// Package tmplctx defines the canonical template context produced by the
// schema-normalization stage. It is the single intermediate representation
// handed to template rendering: one ordered list per type kind, the
// transformed directive declarations, and derived presence flags.
package tmplctx

import "github.com/vektah/gqlparser/v2/ast"

// TemplateContext is the aggregate consumed by the rendering stage.
// It is constructed once and must not be mutated afterwards. List order
// follows schema declaration order, never alphabetical order.
type TemplateContext struct {
	Types      []*Object    `json:"types"`
	InputTypes []*Object    `json:"inputTypes"`
	Enums      []*Enum      `json:"enums"`
	Unions     []*Union     `json:"unions"`
	Interfaces []*Interface `json:"interfaces"`
	Scalars    []*Scalar    `json:"scalars"`
	Directives []*Directive `json:"directives"`

	HasTypes      bool `json:"hasTypes"`
	HasInputTypes bool `json:"hasInputTypes"`
	HasEnums      bool `json:"hasEnums"`
	HasUnions     bool `json:"hasUnions"`
	HasInterfaces bool `json:"hasInterfaces"`
	HasScalars    bool `json:"hasScalars"`
	HasDirectives bool `json:"hasDirectives"`

	// UsesDirectives reports whether at least one directive is applied
	// somewhere in the schema, as opposed to merely declared.
	UsesDirectives bool `json:"usesDirectives"`

	// RawSchema gives templates read access to the underlying schema.
	// It must not be used to mutate the context.
	RawSchema *ast.Schema `json:"-"`
}
