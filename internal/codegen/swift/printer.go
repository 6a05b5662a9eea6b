package swift

import (
	"github.com/realmgen/realmgen/internal/codegen/writer"
	"github.com/realmgen/realmgen/internal/schema"
)

// docMarker is the Swift documentation-comment prefix
const docMarker = "///"

// printer turns declaration requests into indented Swift text. One printer
// per generation run; the scope stack tracks open declaration blocks.
type printer struct {
	w *writer.Scoped
}

func newPrinter() *printer {
	return &printer{w: writer.NewScoped("  ")}
}

// fileHeader prints the auto-generated warning and the fixed import list
func (p *printer) fileHeader() {
	p.w.WriteLine("// This file was automatically generated and should not be edited.")
	p.w.BlankLine()
	p.w.WriteLine("import Foundation")
	p.w.WriteLine("import RealmSwift")
}

// openNamespace opens the enclosing namespace scope, modelled as a caseless
// public enum
func (p *printer) openNamespace(name string) {
	p.w.BlankLine()
	p.w.OpenScope("enum", name, []string{"public"}, nil)
}

func (p *printer) closeScope() {
	p.w.CloseScope()
}

// openClass opens one Realm model class declaration
func (p *printer) openClass(name string) {
	p.w.BlankLine()
	p.w.OpenScope("class", escapeIfReserved(name), []string{"public", "final"}, []string{"Object"})
}

// printComment renders doc as a documentation comment, one line per
// non-empty trimmed input line. Absent docs print nothing.
func (p *printer) printComment(doc string) {
	p.w.WriteDocComment(docMarker, doc)
}

// printProperty emits the stored-property declaration for one classified
// field. This is the generator's declaration decision table: the list flag
// wins over everything, then the terminal kind and optionality select the
// Realm property form.
func (p *printer) printProperty(c classifiedType, name string) {
	display := escapeIfReserved(name)

	if c.IsList {
		p.w.WriteLinef("public let %s = List<%s>()", display, declaredTypeName(c))
		return
	}

	switch c.Kind {
	case kindObject:
		// Object links are always nullable in Realm
		p.w.WriteLinef("@objc public dynamic var %s: %s? = nil", display, schema.NamedTypeName(c.Type))

	case kindBool:
		if c.IsOptional {
			p.w.WriteLinef("public let %s = RealmOptional<Bool>()", display)
		} else {
			p.w.WriteLinef("@objc public dynamic var %s: Bool = false", display)
		}

	case kindInt:
		if c.IsOptional {
			p.w.WriteLinef("public let %s = RealmOptional<Int>()", display)
		} else {
			p.w.WriteLinef("@objc public dynamic var %s: Int = 0", display)
		}

	case kindFloat:
		if c.IsOptional {
			p.w.WriteLinef("public let %s = RealmOptional<Double>()", display)
		} else {
			p.w.WriteLinef("@objc public dynamic var %s: Double = 0.0", display)
		}

	case kindString:
		p.printStringProperty(display, c.IsOptional)

	case kindID:
		p.printStringProperty(display, c.IsOptional)
		p.printPrimaryKey(name)

	case kindEnum:
		// Enum values are stored as raw strings; not type-checked here
		p.w.WriteLinef("@objc public dynamic var %s: String? = nil", display)

	case kindUncaughtScalar:
		p.printUncaughtScalar(schema.NamedTypeName(c.Type))
	}
}

func (p *printer) printStringProperty(display string, optional bool) {
	if optional {
		p.w.WriteLinef("@objc public dynamic var %s: String? = nil", display)
	} else {
		p.w.WriteLinef("@objc public dynamic var %s: String = \"\"", display)
	}
}

// printPrimaryKey emits the identity override marking the field as the
// enclosing type's primary key, regardless of the field's own optionality
func (p *printer) printPrimaryKey(fieldName string) {
	p.w.BlankLine()
	p.w.OpenScope("func", "primaryKey() -> String?", []string{"public", "override", "class"}, nil)
	p.w.WriteLinef("return %q", fieldName)
	p.w.CloseScope()
	p.w.BlankLine()
}

// printUncaughtScalar emits the diagnostic marker in place of a declaration
func (p *printer) printUncaughtScalar(scalarName string) {
	p.w.WriteLinef("/* uncaught scalar type: %s */", scalarName)
}
