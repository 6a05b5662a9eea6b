package swift

import (
	"strings"

	"github.com/realmgen/realmgen/internal/schema"
)

// introspectionPrefix marks schema-internal types that never produce a class
const introspectionPrefix = "__"

// Options configures the Swift generator
type Options struct {
	// Namespace, when set, wraps all generated classes in one enclosing
	// public enum of that name
	Namespace string

	// PassthroughCustomScalars and CustomScalarsPrefix are reserved for
	// custom-scalar naming; the declaration mapping does not consult them
	PassthroughCustomScalars bool
	CustomScalarsPrefix      string
}

// Generator generates RealmSwift model classes from a schema graph
type Generator struct {
	opts Options
}

// NewGenerator creates a new Swift code generator
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "swift"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".swift"
}

// Generate emits one Swift source document for the schema: a fixed file
// header, an optional enclosing namespace, and one Realm model class per
// user-visible object type. Output is deterministic for a given schema and
// options.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	p := newPrinter()

	p.fileHeader()

	if g.opts.Namespace != "" {
		p.openNamespace(g.opts.Namespace)
		g.generateTypes(p, s)
		p.closeScope()
	} else {
		g.generateTypes(p, s)
	}

	return p.w.Bytes(), nil
}

// generateTypes walks the full type map in declaration order and emits one
// class per object type. Scalars, enums, input objects, and introspection
// types produce no declaration.
func (g *Generator) generateTypes(p *printer, s *schema.Schema) {
	for _, obj := range s.ObjectTypes() {
		if strings.HasPrefix(obj.Name, introspectionPrefix) {
			continue
		}
		g.generateClass(p, obj)
	}
}

// generateClass emits one model class with one property per field, fields
// in their declared order
func (g *Generator) generateClass(p *printer, obj *schema.ObjectType) {
	p.openClass(obj.Name)

	for _, field := range obj.Fields {
		p.printComment(field.Doc)
		p.printProperty(classify(field.Type), field.Name)
	}

	p.closeScope()
}
