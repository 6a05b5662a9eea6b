package codegen

import "github.com/realmgen/realmgen/internal/schema"

// Generator is the interface a target-language code generator implements
type Generator interface {
	// Generate generates code from the schema and returns the generated code as bytes
	Generate(schema *schema.Schema) ([]byte, error)

	// Language returns the name of the target language (e.g., "swift")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".swift")
	FileExtension() string
}

// Options contains generation options shared by all generators
type Options struct {
	// Namespace, when set, wraps all generated declarations in one
	// enclosing namespace scope of that name
	Namespace string

	// PassthroughCustomScalars and CustomScalarsPrefix are accepted for
	// custom-scalar naming but not consulted by the declaration mapping
	PassthroughCustomScalars bool
	CustomScalarsPrefix      string
}
