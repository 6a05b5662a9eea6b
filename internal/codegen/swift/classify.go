package swift

import (
	"github.com/realmgen/realmgen/internal/schema"
)

// typeKind is the terminal classification of a fully unwrapped field type
type typeKind int

const (
	kindObject typeKind = iota
	kindEnum
	kindBool
	kindInt
	kindFloat
	kindString
	kindID
	kindUncaughtScalar
)

// classifiedType is the result of unwrapping a field's type: the innermost
// named type plus the optionality and list flags accumulated on the way in.
// Recomputed per field, never stored.
type classifiedType struct {
	Kind       typeKind
	Type       schema.TypeNode
	IsOptional bool
	IsList     bool
}

// classify unwraps non-null and list layers around t and classifies the
// innermost type. A type is optional unless a non-null wrapper says
// otherwise, and a list once any list wrapper is seen.
func classify(t schema.TypeNode) classifiedType {
	return classifyWrapped(t, true, false)
}

// classifyWrapped strips non-null wrappers first, then recurses through list
// wrappers carrying the accumulated flags, so nested non-null layers inside a
// list are evaluated in the same order as the outermost ones.
func classifyWrapped(t schema.TypeNode, isOptional, isList bool) classifiedType {
	for {
		switch wrapped := t.(type) {
		case *schema.NonNullType:
			isOptional = false
			t = wrapped.OfType
		case *schema.ListType:
			return classifyWrapped(wrapped.OfType, isOptional, true)
		default:
			return classifyTerminal(t, isOptional, isList)
		}
	}
}

func classifyTerminal(t schema.TypeNode, isOptional, isList bool) classifiedType {
	c := classifiedType{Type: t, IsOptional: isOptional, IsList: isList}

	switch named := t.(type) {
	case *schema.ObjectType:
		c.Kind = kindObject
	case *schema.EnumType:
		c.Kind = kindEnum
	case *schema.ScalarType:
		switch named.Name {
		case schema.ScalarBoolean:
			c.Kind = kindBool
		case schema.ScalarInt:
			c.Kind = kindInt
		case schema.ScalarFloat:
			c.Kind = kindFloat
		case schema.ScalarString:
			c.Kind = kindString
		case schema.ScalarID:
			c.Kind = kindID
		default:
			// Custom scalar with no mapping: surfaced as an inline marker
			// in the output, never a generation failure
			c.Kind = kindUncaughtScalar
		}
	default:
		c.Kind = kindUncaughtScalar
	}

	return c
}

// declaredTypeName returns the Swift type name used for the classified
// type when it appears as a collection element
func declaredTypeName(c classifiedType) string {
	switch c.Kind {
	case kindObject:
		return schema.NamedTypeName(c.Type)
	case kindBool:
		return "Bool"
	case kindInt:
		return "Int"
	case kindFloat:
		return "Double"
	case kindString, kindID, kindEnum:
		return "String"
	}
	return schema.NamedTypeName(c.Type)
}
