package schema

import (
	"fmt"

	"github.com/wundergraph/graphql-go-tools/v2/pkg/ast"
	"github.com/wundergraph/graphql-go-tools/v2/pkg/astparser"
)

// Parse parses a GraphQL schema document into the typed schema graph.
//
// Parsing happens in two passes: the first declares every named type so
// forward and cyclic references resolve, the second fills in field lists,
// building wrapper nodes (list, non-null) per field. Named types referenced
// but never declared are registered as custom scalars.
func Parse(input string) (*Schema, error) {
	doc, report := astparser.ParseGraphqlDocumentString(input)
	if report.HasErrors() {
		return nil, fmt.Errorf("failed to parse GraphQL document: %v", report)
	}

	schema := NewSchema()

	// Pass 1: declare named types
	for i := range doc.RootNodes {
		node := &doc.RootNodes[i]
		switch node.Kind {
		case ast.NodeKindObjectTypeDefinition:
			typeDef := doc.ObjectTypeDefinitions[node.Ref]
			schema.register(doc.Input.ByteSliceString(typeDef.Name), &ObjectType{
				Name: doc.Input.ByteSliceString(typeDef.Name),
				Doc:  getDescription(&doc, typeDef.Description),
			})
		case ast.NodeKindScalarTypeDefinition:
			scalarDef := doc.ScalarTypeDefinitions[node.Ref]
			schema.register(doc.Input.ByteSliceString(scalarDef.Name), &ScalarType{
				Name: doc.Input.ByteSliceString(scalarDef.Name),
			})
		case ast.NodeKindEnumTypeDefinition:
			enumType := parseEnumType(&doc, node.Ref)
			schema.register(enumType.Name, enumType)
		case ast.NodeKindInputObjectTypeDefinition:
			inputDef := doc.InputObjectTypeDefinitions[node.Ref]
			schema.register(doc.Input.ByteSliceString(inputDef.Name), &InputObjectType{
				Name: doc.Input.ByteSliceString(inputDef.Name),
				Doc:  getDescription(&doc, inputDef.Description),
			})
		}
	}

	// Pass 2: resolve field lists
	for i := range doc.RootNodes {
		node := &doc.RootNodes[i]
		switch node.Kind {
		case ast.NodeKindObjectTypeDefinition:
			typeDef := doc.ObjectTypeDefinitions[node.Ref]
			obj := schema.Type(doc.Input.ByteSliceString(typeDef.Name)).(*ObjectType)
			for _, fieldRef := range typeDef.FieldsDefinition.Refs {
				fieldDef := doc.FieldDefinitions[fieldRef]
				obj.Fields = append(obj.Fields, Field{
					Name: doc.Input.ByteSliceString(fieldDef.Name),
					Type: resolveType(&doc, fieldDef.Type, schema),
					Doc:  getDescription(&doc, fieldDef.Description),
				})
			}
		case ast.NodeKindInputObjectTypeDefinition:
			inputDef := doc.InputObjectTypeDefinitions[node.Ref]
			input := schema.Type(doc.Input.ByteSliceString(inputDef.Name)).(*InputObjectType)
			for _, valueRef := range inputDef.InputFieldsDefinition.Refs {
				valueDef := doc.InputValueDefinitions[valueRef]
				input.Fields = append(input.Fields, Field{
					Name: doc.Input.ByteSliceString(valueDef.Name),
					Type: resolveType(&doc, valueDef.Type, schema),
					Doc:  getDescription(&doc, valueDef.Description),
				})
			}
		}
	}

	return schema, nil
}

func parseEnumType(doc *ast.Document, ref int) *EnumType {
	enumDef := doc.EnumTypeDefinitions[ref]

	enumType := &EnumType{
		Name: doc.Input.ByteSliceString(enumDef.Name),
		Doc:  getDescription(doc, enumDef.Description),
	}

	for _, valueRef := range enumDef.EnumValuesDefinition.Refs {
		valueDef := doc.EnumValueDefinitions[valueRef]
		enumType.Values = append(enumType.Values, EnumValue{
			Name: doc.Input.ByteSliceString(valueDef.EnumValue),
			Doc:  getDescription(doc, valueDef.Description),
		})
	}

	return enumType
}

// resolveType converts an ast type reference into a TypeNode, building
// wrapper nodes and sharing named nodes through the schema's type map.
func resolveType(doc *ast.Document, typeRef int, schema *Schema) TypeNode {
	switch doc.Types[typeRef].TypeKind {
	case ast.TypeKindNonNull:
		return &NonNullType{OfType: resolveType(doc, doc.Types[typeRef].OfType, schema)}
	case ast.TypeKindList:
		return &ListType{OfType: resolveType(doc, doc.Types[typeRef].OfType, schema)}
	case ast.TypeKindNamed:
		name := doc.Input.ByteSliceString(doc.Types[typeRef].Name)
		if existing := schema.Type(name); existing != nil {
			return existing
		}
		// Referenced but never declared: treat as a custom scalar
		scalar := &ScalarType{Name: name}
		schema.register(name, scalar)
		return scalar
	}
	return nil
}

func getDescription(doc *ast.Document, desc ast.Description) string {
	if !desc.IsDefined {
		return ""
	}

	return doc.Input.ByteSliceString(desc.Content)
}
