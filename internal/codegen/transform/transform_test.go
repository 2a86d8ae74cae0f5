package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const testSchema = `
directive @tag(name: String!) on OBJECT | FIELD_DEFINITION | ENUM_VALUE | SCALAR

"""
A node with a globally unique identifier.
"""
interface Node {
  id: ID!
}

type Query {
  node(id: ID!): Node
  feed(first: Int = 10, after: String): [Post!]!
}

"A blog post."
type Post implements Node @tag(name: "content") {
  id: ID!
  title: String!
  tags: [String!]!
  related: [[Post]]
}

type Comment implements Node {
  id: ID!
  body: String @tag(name: "text")
}

input NewPost {
  title: String!
  draft: Boolean = true
}

enum Status {
  "Visible to everyone."
  PUBLISHED
  DRAFT @tag(name: "wip")
}

union SearchResult = Post | Comment

scalar Time @tag(name: "rfc3339")
`

func loadSchema(t *testing.T) *ast.Schema {
	t.Helper()
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: testSchema})
	require.NoError(t, err)
	return schema
}

func definition(t *testing.T, schema *ast.Schema, name string) *ast.Definition {
	t.Helper()
	def := schema.Types[name]
	require.NotNil(t, def, "schema must define %s", name)
	return def
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		name string
		in   *ast.Type
		want typeRefExpect
	}{
		{
			name: "plain nullable",
			in:   ast.NamedType("String", nil),
			want: typeRefExpect{Name: "String", Raw: "String"},
		},
		{
			name: "non-null",
			in:   ast.NonNullNamedType("ID", nil),
			want: typeRefExpect{Name: "ID", Raw: "ID!", IsRequired: true},
		},
		{
			name: "non-null list of non-null",
			in:   ast.NonNullListType(ast.NonNullNamedType("String", nil), nil),
			want: typeRefExpect{Name: "String", Raw: "[String!]!", IsRequired: true, IsArray: true, Dimension: 1},
		},
		{
			name: "nullable nested list",
			in:   ast.ListType(ast.ListType(ast.NamedType("Post", nil), nil), nil),
			want: typeRefExpect{Name: "Post", Raw: "[[Post]]", IsArray: true, IsNullableArray: true, Dimension: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveType(tt.in)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Raw, got.Raw)
			assert.Equal(t, tt.want.IsRequired, got.IsRequired)
			assert.Equal(t, tt.want.IsArray, got.IsArray)
			assert.Equal(t, tt.want.IsNullableArray, got.IsNullableArray)
			assert.Equal(t, tt.want.Dimension, got.DimensionOfArray)
		})
	}
}

// typeRefExpect mirrors the resolved fields under test.
type typeRefExpect struct {
	Name            string
	Raw             string
	IsRequired      bool
	IsArray         bool
	IsNullableArray bool
	Dimension       int
}

func TestObject(t *testing.T) {
	schema := loadSchema(t)
	obj := Object(schema, definition(t, schema, "Post"))

	assert.Equal(t, "Post", obj.Name)
	assert.Equal(t, "A blog post.", obj.Description)
	assert.False(t, obj.IsInputType)
	assert.Equal(t, []string{"Node"}, obj.Interfaces)
	assert.True(t, obj.HasInterfaces)
	assert.True(t, obj.HasFields)
	require.Len(t, obj.Fields, 4)

	assert.Equal(t, "id", obj.Fields[0].Name)
	assert.True(t, obj.Fields[0].Type.IsRequired)

	tags := obj.Fields[2]
	assert.Equal(t, "tags", tags.Name)
	assert.True(t, tags.Type.IsArray)
	assert.Equal(t, 1, tags.Type.DimensionOfArray)
	assert.Equal(t, "String", tags.Type.Name)

	related := obj.Fields[3]
	assert.Equal(t, 2, related.Type.DimensionOfArray)
	assert.True(t, related.Type.IsNullableArray)

	// @tag applied on the type itself.
	require.Len(t, obj.Directives, 1)
	assert.Equal(t, "tag", obj.Directives[0].Name)
	require.Len(t, obj.Directives[0].Arguments, 1)
	assert.Equal(t, "name", obj.Directives[0].Arguments[0].Name)
	assert.True(t, obj.UsesDirectives)
}

func TestObjectFieldArguments(t *testing.T) {
	schema := loadSchema(t)
	obj := Object(schema, definition(t, schema, "Query"))

	feed := obj.Fields[1]
	require.Equal(t, "feed", feed.Name)
	assert.True(t, feed.HasArguments)
	require.Len(t, feed.Arguments, 2)

	first := feed.Arguments[0]
	assert.Equal(t, "first", first.Name)
	assert.Equal(t, "Int", first.Type.Name)
	assert.Equal(t, "10", first.DefaultValue)

	after := feed.Arguments[1]
	assert.Equal(t, "after", after.Name)
	assert.Empty(t, after.DefaultValue)
}

func TestObjectUsesDirectivesFromField(t *testing.T) {
	schema := loadSchema(t)
	obj := Object(schema, definition(t, schema, "Comment"))

	assert.Empty(t, obj.Directives)
	assert.True(t, obj.UsesDirectives, "field-level directive should count")
}

func TestInputObject(t *testing.T) {
	schema := loadSchema(t)
	obj := InputObject(schema, definition(t, schema, "NewPost"))

	assert.True(t, obj.IsInputType)
	assert.True(t, obj.HasFields)
	assert.False(t, obj.HasInterfaces)
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, "title", obj.Fields[0].Name)
	assert.False(t, obj.Fields[0].HasArguments)
	assert.False(t, obj.UsesDirectives)
}

func TestEnum(t *testing.T) {
	schema := loadSchema(t)
	enum := Enum(schema, definition(t, schema, "Status"))

	assert.Equal(t, "Status", enum.Name)
	require.Len(t, enum.Values, 2)

	published := enum.Values[0]
	assert.Equal(t, "PUBLISHED", published.Name)
	assert.Equal(t, "PUBLISHED", published.Value)
	assert.Equal(t, "Visible to everyone.", published.Description)
	assert.Empty(t, published.Directives)

	draft := enum.Values[1]
	assert.Equal(t, "DRAFT", draft.Name)
	require.Len(t, draft.Directives, 1)
	assert.Equal(t, "tag", draft.Directives[0].Name)
}

func TestUnion(t *testing.T) {
	schema := loadSchema(t)
	union := Union(schema, definition(t, schema, "SearchResult"))

	assert.Equal(t, "SearchResult", union.Name)
	assert.Equal(t, []string{"Post", "Comment"}, union.PossibleTypes)
	assert.True(t, union.HasPossibleTypes)
}

func TestInterface(t *testing.T) {
	schema := loadSchema(t)
	iface := Interface(schema, definition(t, schema, "Node"))

	assert.Equal(t, "Node", iface.Name)
	assert.Equal(t, "A node with a globally unique identifier.", iface.Description)
	assert.True(t, iface.HasFields)
	require.Len(t, iface.Fields, 1)
	assert.Equal(t, "id", iface.Fields[0].Name)

	assert.True(t, iface.HasImplementingTypes)
	assert.ElementsMatch(t, []string{"Post", "Comment"}, iface.ImplementingTypes)
	assert.False(t, iface.UsesDirectives)
}

func TestScalar(t *testing.T) {
	schema := loadSchema(t)
	scalar := Scalar(schema, definition(t, schema, "Time"))

	assert.Equal(t, "Time", scalar.Name)
	require.Len(t, scalar.Directives, 1)
	assert.Equal(t, "tag", scalar.Directives[0].Name)
	assert.Equal(t, `"rfc3339"`, scalar.Directives[0].Arguments[0].Value)
}

func TestDirective(t *testing.T) {
	schema := loadSchema(t)
	decl := schema.Directives["tag"]
	require.NotNil(t, decl)

	directive := Directive(schema, decl)
	assert.Equal(t, "tag", directive.Name)
	assert.Equal(t, []string{"OBJECT", "FIELD_DEFINITION", "ENUM_VALUE", "SCALAR"}, directive.Locations)
	assert.True(t, directive.HasArguments)
	require.Len(t, directive.Arguments, 1)
	assert.Equal(t, "name", directive.Arguments[0].Name)
	assert.True(t, directive.Arguments[0].Type.IsRequired)
	assert.False(t, directive.IsRepeatable)
}
