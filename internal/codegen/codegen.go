package codegen

import (
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/gqlweave/gqlweave/internal/codegen/introspect"
	"github.com/gqlweave/gqlweave/internal/codegen/registry"
	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

// Builder runs the full normalization pipeline: registry construction,
// introspection collection, filtering, and assembly. A Builder is safe for
// reuse across schemas; each Build call allocates an independent result.
type Builder struct {
	transformers Transformers
	logger       *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithTransformers replaces the default transformer set.
func WithTransformers(transformers Transformers) Option {
	return func(b *Builder) {
		b.transformers = transformers
	}
}

// WithLogger installs a structured event sink. The default discards events.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder with the default transformers.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		transformers: DefaultTransformers(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts a loaded schema and optional parsed operation documents
// into the template context. The schema and documents must come from a
// single shared load of the schema library; see package introspect for the
// identity precondition. Build never returns a partial context: on error
// the context is nil.
func (b *Builder) Build(schema *ast.Schema, documents []*ast.QueryDocument) (*tmplctx.TemplateContext, error) {
	reg := registry.New(schema)

	allowed := introspect.Collect(schema, documents)
	if len(allowed) > 0 {
		names := make([]string, len(allowed))
		for i, def := range allowed {
			names[i] = def.Name
		}
		b.logger.Debug("introspection enums allow-listed", zap.Strings("names", names))
	}

	filtered := reg.Filter(registry.NewAllowList(allowed))
	b.logger.Debug("types filtered",
		zap.Int("total", reg.Len()),
		zap.Int("surviving", len(filtered)))

	return NewAssembler(b.transformers, b.logger).Assemble(schema, filtered)
}
