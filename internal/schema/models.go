package schema

// TypeNode is the closed set of schema type variants. Wrapper variants
// (ListType, NonNullType) always wrap exactly one other TypeNode; cycles
// are only possible through named object references, which are shared
// pointers resolved by name.
type TypeNode interface {
	typeNode()
}

// ObjectType is a named record type with an ordered field list
type ObjectType struct {
	Name   string
	Doc    string
	Fields []Field
}

// Field is a single field inside an object or input object type
type Field struct {
	Name string
	Type TypeNode
	Doc  string
}

// ScalarType is a leaf type identified by name. The five built-ins
// (Boolean, Int, Float, String, ID) are pre-registered; any other scalar
// is treated as custom.
type ScalarType struct {
	Name string
}

// Built-in scalar names
const (
	ScalarBoolean = "Boolean"
	ScalarInt     = "Int"
	ScalarFloat   = "Float"
	ScalarString  = "String"
	ScalarID      = "ID"
)

// Builtin reports whether the scalar is one of the five built-ins
func (s *ScalarType) Builtin() bool {
	switch s.Name {
	case ScalarBoolean, ScalarInt, ScalarFloat, ScalarString, ScalarID:
		return true
	}
	return false
}

// EnumType is a named enumeration
type EnumType struct {
	Name   string
	Doc    string
	Values []EnumValue
}

// EnumValue is a single value inside an enum
type EnumValue struct {
	Name string
	Doc  string
}

// InputObjectType is a named input record. Parsed so field references
// resolve, never emitted by the generators.
type InputObjectType struct {
	Name   string
	Doc    string
	Fields []Field
}

// ListType wraps an element type
type ListType struct {
	OfType TypeNode
}

// NonNullType marks its inner type as required
type NonNullType struct {
	OfType TypeNode
}

func (*ObjectType) typeNode()      {}
func (*ScalarType) typeNode()      {}
func (*EnumType) typeNode()        {}
func (*InputObjectType) typeNode() {}
func (*ListType) typeNode()        {}
func (*NonNullType) typeNode()     {}

// NamedTypeName returns the name of a named (non-wrapper) type node, or ""
// for wrapper nodes.
func NamedTypeName(t TypeNode) string {
	switch n := t.(type) {
	case *ObjectType:
		return n.Name
	case *ScalarType:
		return n.Name
	case *EnumType:
		return n.Name
	case *InputObjectType:
		return n.Name
	}
	return ""
}

// Schema is the root of a parsed schema document. The type map preserves
// declaration order; built-in scalars come first, then types in source order.
type Schema struct {
	names []string
	types map[string]TypeNode
}

// NewSchema creates an empty schema with the built-in scalars registered
func NewSchema() *Schema {
	s := &Schema{types: make(map[string]TypeNode)}
	for _, name := range []string{ScalarString, ScalarBoolean, ScalarInt, ScalarFloat, ScalarID} {
		s.register(name, &ScalarType{Name: name})
	}
	return s
}

func (s *Schema) register(name string, t TypeNode) {
	if _, exists := s.types[name]; exists {
		return
	}
	s.names = append(s.names, name)
	s.types[name] = t
}

// AddType registers a named type. The first registration of a name wins;
// wrapper nodes have no name and are ignored.
func (s *Schema) AddType(t TypeNode) {
	if name := NamedTypeName(t); name != "" {
		s.register(name, t)
	}
}

// Type returns the named type, or nil if unknown
func (s *Schema) Type(name string) TypeNode {
	return s.types[name]
}

// TypeNames returns all registered type names in declaration order
func (s *Schema) TypeNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Types returns all registered types in declaration order
func (s *Schema) Types() []TypeNode {
	out := make([]TypeNode, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.types[name])
	}
	return out
}

// ObjectTypes returns the object types in declaration order
func (s *Schema) ObjectTypes() []*ObjectType {
	var out []*ObjectType
	for _, name := range s.names {
		if obj, ok := s.types[name].(*ObjectType); ok {
			out = append(out, obj)
		}
	}
	return out
}
