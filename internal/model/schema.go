package model

// SchemaKind tags how a schema occurrence is declared at its usage
// site. A reference keeps only its target metadata; the structural
// body lives on array/object/primitive kinds.
type SchemaKind string

const (
	KindReference SchemaKind = "reference"
	KindArray     SchemaKind = "array"
	KindObject    SchemaKind = "object"
	KindPrimitive SchemaKind = "primitive"
)

type Schema struct {
	Kind SchemaKind

	// Reference metadata, set when Kind == KindReference. Ref is the
	// raw $ref target string as written in the document; Title then
	// carries the referenced schema's title, if it declares one.
	Ref string

	Title       string
	Description string
	Type        string
	Format      string
	Nullable    bool
	Deprecated  bool
	Default     any
	Example     any

	// Object body
	Properties []Property
	Required   []string

	// Array body
	Items *Schema

	Enum []any

	// Composition
	AllOf []*Schema
	OneOf []*Schema
	AnyOf []*Schema

	AdditionalProperties *Schema

	// Constraints
	Minimum     *float64
	Maximum     *float64
	MinLength   *int64
	MaxLength   *int64
	Pattern     string
	MinItems    *int64
	MaxItems    *int64
	UniqueItems bool
}

// IsReference reports whether the occurrence was declared as a direct
// $ref at its usage site.
func (s *Schema) IsReference() bool {
	return s != nil && s.Kind == KindReference
}

// IsArray reports whether the occurrence is array-typed.
func (s *Schema) IsArray() bool {
	return s != nil && s.Kind == KindArray
}

// RefName returns the final /-delimited segment of the reference
// target, or "" when the schema is not a reference.
func (s *Schema) RefName() string {
	if !s.IsReference() {
		return ""
	}
	ref := s.Ref
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '/' {
			return ref[i+1:]
		}
	}
	return ref
}

type Property struct {
	Name   string
	Schema *Schema
}

// NamedSchema pairs a component schema with its declared name,
// preserving document declaration order.
type NamedSchema struct {
	Name   string
	Schema *Schema
}
