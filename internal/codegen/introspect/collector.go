// Package introspect discovers which introspection enum types the supplied
// operation documents actually reach. Reserved-prefixed types are normally
// filtered out of the template context; enums found here (for example
// __TypeKind via a "__schema { types { kind } }" selection) are allow-listed
// so downstream templates can still render them.
//
// Deduplication compares *ast.Definition pointers, so every caller must work
// against a single load of the schema. Loading the same schema twice and
// mixing the resulting definitions breaks identity comparison; this is a
// deployment precondition, not something detected at runtime.
package introspect

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/codegen/registry"
)

// wellKnownTypes are the introspection type names defined by the GraphQL
// specification.
var wellKnownTypes = map[string]struct{}{
	"__Schema":            {},
	"__Type":              {},
	"__TypeKind":          {},
	"__Field":             {},
	"__InputValue":        {},
	"__EnumValue":         {},
	"__Directive":         {},
	"__DirectiveLocation": {},
}

// IsIntrospectionType reports whether name belongs to the introspection
// system: either reserved-prefixed or one of the well-known names.
func IsIntrospectionType(name string) bool {
	if strings.HasPrefix(name, registry.ReservedPrefix) {
		return true
	}
	_, ok := wellKnownTypes[name]
	return ok
}

// Collect walks each document's syntax tree, resolving the named type of
// every field against the schema, and returns the introspection enum types
// encountered, deduplicated, in first-discovery order. Non-enum
// introspection types are never returned: only introspection enums need to
// be rendered as output enums. No documents means an empty result.
func Collect(schema *ast.Schema, documents []*ast.QueryDocument) []*ast.Definition {
	c := &collector{
		schema: schema,
		seen:   make(map[*ast.Definition]struct{}),
	}
	for _, doc := range documents {
		c.walkDocument(doc)
	}
	return c.found
}

// collector tracks the resolved parent type while descending selection
// sets, mirroring how an executor would resolve each field.
type collector struct {
	schema       *ast.Schema
	seen         map[*ast.Definition]struct{}
	found        []*ast.Definition
	visitedFrags map[string]struct{}
}

func (c *collector) walkDocument(doc *ast.QueryDocument) {
	c.visitedFrags = make(map[string]struct{})
	for _, op := range doc.Operations {
		if root := c.rootType(op.Operation); root != nil {
			c.walkSelectionSet(doc, root, op.SelectionSet)
		}
	}
	// Fragments not spread from any walked operation still contribute.
	for _, frag := range doc.Fragments {
		c.walkFragment(doc, frag)
	}
}

func (c *collector) rootType(op ast.Operation) *ast.Definition {
	switch op {
	case ast.Mutation:
		return c.schema.Mutation
	case ast.Subscription:
		return c.schema.Subscription
	default:
		return c.schema.Query
	}
}

func (c *collector) walkFragment(doc *ast.QueryDocument, frag *ast.FragmentDefinition) {
	if _, ok := c.visitedFrags[frag.Name]; ok {
		return
	}
	c.visitedFrags[frag.Name] = struct{}{}
	cond := c.schema.Types[frag.TypeCondition]
	if cond == nil {
		return
	}
	c.walkSelectionSet(doc, cond, frag.SelectionSet)
}

func (c *collector) walkSelectionSet(doc *ast.QueryDocument, parent *ast.Definition, set ast.SelectionSet) {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			fieldType := c.resolveFieldType(parent, sel.Name)
			if fieldType == nil {
				continue
			}
			named := c.schema.Types[fieldType.Name()]
			if named == nil {
				continue
			}
			c.record(named)
			c.walkSelectionSet(doc, named, sel.SelectionSet)
		case *ast.InlineFragment:
			next := parent
			if sel.TypeCondition != "" {
				next = c.schema.Types[sel.TypeCondition]
			}
			if next != nil {
				c.walkSelectionSet(doc, next, sel.SelectionSet)
			}
		case *ast.FragmentSpread:
			if frag := doc.Fragments.ForName(sel.Name); frag != nil {
				c.walkFragment(doc, frag)
			}
		}
	}
}

// resolveFieldType resolves a field name against the parent type using the
// schema's static type information, including the meta-fields the schema
// does not declare explicitly. Unknown fields resolve to nil; rejecting
// them is the validator's job.
func (c *collector) resolveFieldType(parent *ast.Definition, name string) *ast.Type {
	switch name {
	case "__typename":
		return ast.NonNullNamedType("String", nil)
	case "__schema":
		if parent == c.schema.Query {
			return ast.NonNullNamedType("__Schema", nil)
		}
		return nil
	case "__type":
		if parent == c.schema.Query {
			return ast.NamedType("__Type", nil)
		}
		return nil
	}
	field := parent.Fields.ForName(name)
	if field == nil {
		return nil
	}
	return field.Type
}

func (c *collector) record(def *ast.Definition) {
	if def.Kind != ast.Enum || !IsIntrospectionType(def.Name) {
		return
	}
	if _, ok := c.seen[def]; ok {
		return
	}
	c.seen[def] = struct{}{}
	c.found = append(c.found, def)
}
