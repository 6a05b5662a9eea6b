package swift

// reservedKeywords is the fixed set of Swift identifiers that cannot be used
// as a declaration name without backtick escaping.
var reservedKeywords = map[string]bool{
	// Declaration keywords
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "protocol": true, "public": true,
	"static": true, "struct": true, "subscript": true, "typealias": true,
	"var": true,
	// Statement keywords
	"break": true, "case": true, "continue": true, "default": true,
	"defer": true, "do": true, "else": true, "fallthrough": true, "for": true,
	"guard": true, "if": true, "in": true, "repeat": true, "return": true,
	"switch": true, "where": true, "while": true,
	// Expression and type keywords
	"as": true, "Any": true, "catch": true, "false": true, "is": true,
	"nil": true, "rethrows": true, "super": true, "self": true, "Self": true,
	"throw": true, "throws": true, "true": true, "try": true,
	// Context-sensitive keywords
	"associativity": true, "convenience": true, "dynamic": true,
	"didSet": true, "final": true, "get": true, "infix": true,
	"indirect": true, "lazy": true, "left": true, "mutating": true,
	"none": true, "nonmutating": true, "optional": true, "override": true,
	"postfix": true, "precedence": true, "prefix": true, "Protocol": true,
	"required": true, "right": true, "set": true, "Type": true,
	"unowned": true, "weak": true, "willSet": true,
}

// escapeIfReserved wraps name in backticks when it collides with a Swift
// reserved word, and returns it unchanged otherwise.
func escapeIfReserved(name string) string {
	if reservedKeywords[name] {
		return "`" + name + "`"
	}
	return name
}
