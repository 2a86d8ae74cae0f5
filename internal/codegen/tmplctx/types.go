package tmplctx

// TypeRef is a fully resolved field or argument type: the named type plus
// the list/non-null wrapping flattened into flags templates can branch on.
type TypeRef struct {
	// Name is the innermost named type, with all wrappers stripped.
	Name string `json:"name"`
	// Raw is the type as written in the schema, e.g. "[String!]!".
	Raw              string `json:"raw"`
	IsRequired       bool   `json:"isRequired"`
	IsArray          bool   `json:"isArray"`
	IsNullableArray  bool   `json:"isNullableArray"`
	DimensionOfArray int    `json:"dimensionOfArray"`
}

// Object represents an object or input object type. Input objects reuse the
// same shape with IsInputType set; their fields carry no arguments.
type Object struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Fields         []*Field        `json:"fields"`
	Interfaces     []string        `json:"interfaces"`
	IsInputType    bool            `json:"isInputType"`
	HasFields      bool            `json:"hasFields"`
	HasInterfaces  bool            `json:"hasInterfaces"`
	Directives     []*DirectiveUse `json:"directives"`
	UsesDirectives bool            `json:"usesDirectives"`
}

// Field is a single object, interface, or input object field.
type Field struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Type         TypeRef         `json:"type"`
	Arguments    []*Argument     `json:"arguments"`
	HasArguments bool            `json:"hasArguments"`
	Directives   []*DirectiveUse `json:"directives"`
}

// Argument is a field or directive argument declaration.
type Argument struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Type         TypeRef         `json:"type"`
	DefaultValue string          `json:"defaultValue,omitempty"`
	Directives   []*DirectiveUse `json:"directives"`
}

// Enum represents an enum type and its values.
type Enum struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Values      []*EnumValue    `json:"values"`
	Directives  []*DirectiveUse `json:"directives"`
}

// EnumValue holds both the declared name and the value templates emit.
// The two start out identical; renderers may remap Value.
type EnumValue struct {
	Name        string          `json:"name"`
	Value       string          `json:"value"`
	Description string          `json:"description"`
	Directives  []*DirectiveUse `json:"directives"`
}

// Union represents a union type and its member type names.
type Union struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	PossibleTypes    []string `json:"possibleTypes"`
	HasPossibleTypes bool     `json:"hasPossibleTypes"`
}

// Interface represents an interface type, its fields, and the names of the
// object types implementing it.
type Interface struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Fields               []*Field        `json:"fields"`
	ImplementingTypes    []string        `json:"implementingTypes"`
	HasFields            bool            `json:"hasFields"`
	HasImplementingTypes bool            `json:"hasImplementingTypes"`
	Directives           []*DirectiveUse `json:"directives"`
	UsesDirectives       bool            `json:"usesDirectives"`
}

// Scalar represents a custom scalar declaration.
type Scalar struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Directives  []*DirectiveUse `json:"directives"`
}

// Directive represents a directive declaration from the schema.
type Directive struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Locations    []string    `json:"locations"`
	Arguments    []*Argument `json:"arguments"`
	HasArguments bool        `json:"hasArguments"`
	IsRepeatable bool        `json:"isRepeatable"`
}

// DirectiveUse is a directive applied at a specific schema location.
type DirectiveUse struct {
	Name      string               `json:"name"`
	Arguments []*DirectiveArgument `json:"arguments"`
}

// DirectiveArgument is a name/value pair on an applied directive. Value is
// the literal as written in the schema.
type DirectiveArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
