// Package registry owns the name→type map extracted from a loaded schema.
// It fixes a deterministic iteration order (declaration order) that the
// rest of the pipeline inherits, and implements the filtering step that
// decides which type names reach the transformers.
package registry

import (
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// ReservedPrefix marks type names owned by the GraphQL type system.
const ReservedPrefix = "__"

// primitiveScalars are the five built-in scalar names that never reach
// the transformers.
var primitiveScalars = map[string]struct{}{
	"String":  {},
	"Int":     {},
	"Float":   {},
	"Boolean": {},
	"ID":      {},
}

// IsPrimitiveScalar reports whether name is one of the five built-in
// scalar names (String, Int, Float, Boolean, ID).
func IsPrimitiveScalar(name string) bool {
	_, ok := primitiveScalars[name]
	return ok
}

// IsReserved reports whether name carries the type-system prefix.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}

// AllowList is a set of reserved type names permitted through the filter.
// A nil AllowList admits nothing.
type AllowList map[string]struct{}

// NewAllowList builds an AllowList from type definitions.
func NewAllowList(defs []*ast.Definition) AllowList {
	if len(defs) == 0 {
		return nil
	}
	allow := make(AllowList, len(defs))
	for _, def := range defs {
		allow[def.Name] = struct{}{}
	}
	return allow
}

// Has reports whether name is allow-listed. Safe on a nil AllowList.
func (a AllowList) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Registry is the read-only name→type map for one schema. It is built once;
// Types returns definitions in declaration order, which propagates through
// Filter into every per-kind output list.
type Registry struct {
	schema *ast.Schema
	names  []string
	types  map[string]*ast.Definition
}

// New builds a Registry from a loaded schema. Definitions are ordered by
// source position (source name, then byte offset); definitions without a
// position sort last, by name.
func New(schema *ast.Schema) *Registry {
	r := &Registry{
		schema: schema,
		names:  make([]string, 0, len(schema.Types)),
		types:  make(map[string]*ast.Definition, len(schema.Types)),
	}
	for name, def := range schema.Types {
		r.names = append(r.names, name)
		r.types[name] = def
	}
	sort.SliceStable(r.names, func(i, j int) bool {
		return lessDefinition(r.types[r.names[i]], r.types[r.names[j]])
	})
	return r
}

func lessDefinition(a, b *ast.Definition) bool {
	ap, bp := a.Position, b.Position
	switch {
	case ap == nil && bp == nil:
		return a.Name < b.Name
	case ap == nil:
		return false
	case bp == nil:
		return true
	}
	as, bs := sourceName(ap), sourceName(bp)
	if as != bs {
		return as < bs
	}
	if ap.Start != bp.Start {
		return ap.Start < bp.Start
	}
	return a.Name < b.Name
}

func sourceName(pos *ast.Position) string {
	if pos.Src == nil {
		return ""
	}
	return pos.Src.Name
}

// Schema returns the schema this registry was built from.
func (r *Registry) Schema() *ast.Schema {
	return r.schema
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.names)
}

// Lookup returns the definition for name, or nil if unknown.
func (r *Registry) Lookup(name string) *ast.Definition {
	return r.types[name]
}

// Types returns all definitions in registry order.
func (r *Registry) Types() []*ast.Definition {
	defs := make([]*ast.Definition, len(r.names))
	for i, name := range r.names {
		defs[i] = r.types[name]
	}
	return defs
}

// Filter returns the definitions that survive name filtering, in registry
// order. A name survives iff it is not a primitive scalar name and does not
// carry the reserved prefix, unless it is allow-listed. The primitive-scalar
// allow-list escape is unreachable with collected introspection names but is
// kept for compatibility with the filter's contract.
func (r *Registry) Filter(allow AllowList) []*ast.Definition {
	filtered := make([]*ast.Definition, 0, len(r.names))
	for _, name := range r.names {
		if IsPrimitiveScalar(name) && !allow.Has(name) {
			continue
		}
		if IsReserved(name) && !allow.Has(name) {
			continue
		}
		filtered = append(filtered, r.types[name])
	}
	return filtered
}
