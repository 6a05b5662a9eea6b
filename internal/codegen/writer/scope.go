package writer

import "strings"

// ScopeFrame is one open declaration block (namespace, class, struct,
// protocol). Frames are pushed on OpenScope and popped on CloseScope;
// the stack depth always equals the indentation level it contributes.
type ScopeFrame struct {
	Keyword string
	Name    string
}

// Scoped wraps a Writer with declaration-scope tracking. Scope depth and
// indentation are kept on the same struct so they cannot drift apart.
type Scoped struct {
	*Writer
	frames []ScopeFrame
}

// NewScoped creates a scope-tracking writer with the given indent string
func NewScoped(indentString string) *Scoped {
	return &Scoped{Writer: NewWriter(indentString)}
}

// OpenScope prints the block header `<modifiers> keyword name: a, b {`,
// pushes a frame, and indents. Modifiers and inherited names may be empty.
func (s *Scoped) OpenScope(keyword, name string, modifiers, inherited []string) {
	var header strings.Builder
	for _, mod := range modifiers {
		header.WriteString(mod)
		header.WriteString(" ")
	}
	header.WriteString(keyword)
	if name != "" {
		header.WriteString(" ")
		header.WriteString(name)
	}
	if len(inherited) > 0 {
		header.WriteString(": ")
		header.WriteString(strings.Join(inherited, ", "))
	}
	header.WriteString(" {")

	s.WriteLine(header.String())
	s.frames = append(s.frames, ScopeFrame{Keyword: keyword, Name: name})
	s.Indent()
}

// CloseScope pops the innermost frame, dedents, and prints the closing brace
func (s *Scoped) CloseScope() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
	s.Dedent()
	s.WriteLine("}")
}

// ScopeDepth returns the number of open scopes
func (s *Scoped) ScopeDepth() int {
	return len(s.frames)
}

// CurrentScope returns the innermost open frame, or false when at top level
func (s *Scoped) CurrentScope() (ScopeFrame, bool) {
	if len(s.frames) == 0 {
		return ScopeFrame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// QualifiedName joins the open scope names and leaf with "."
func (s *Scoped) QualifiedName(leaf string) string {
	parts := make([]string, 0, len(s.frames)+1)
	for _, frame := range s.frames {
		if frame.Name != "" {
			parts = append(parts, frame.Name)
		}
	}
	parts = append(parts, leaf)
	return strings.Join(parts, ".")
}

// Reset clears the buffer, indentation, and scope stack
func (s *Scoped) Reset() {
	s.sb.Reset()
	s.indentLevel = 0
	s.linePrefix = ""
	s.needsIndent = true
	s.frames = nil
}
