package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realmgen/realmgen/internal/schema"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	// Test: registered factories resolve with their options
	r := NewRegistry()
	r.Register("swift", func(opts Options) Generator {
		return &stubGenerator{language: "swift"}
	})

	gen, err := r.Get("swift", Options{Namespace: "API"})
	require.NoError(t, err)
	assert.Equal(t, "swift", gen.Language())
}

func TestRegistry_UnknownLanguage(t *testing.T) {
	// Test: unknown languages surface an error
	r := NewRegistry()

	_, err := r.Get("kotlin", Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestRegistry_Languages(t *testing.T) {
	// Test: Languages lists every registration
	r := NewRegistry()
	r.Register("swift", func(opts Options) Generator { return &stubGenerator{} })

	assert.ElementsMatch(t, []string{"swift"}, r.Languages())
}

func TestDefaultRegistry_Swift(t *testing.T) {
	// Test: the default registry pre-registers the Swift generator
	gen, err := DefaultRegistry.Get("swift", Options{Namespace: "API"})
	require.NoError(t, err)

	assert.Equal(t, "swift", gen.Language())
	assert.Equal(t, ".swift", gen.FileExtension())

	code, err := gen.Generate(schema.NewSchema())
	require.NoError(t, err)
	assert.Contains(t, string(code), "import RealmSwift")
}

type stubGenerator struct {
	language string
}

func (s *stubGenerator) Generate(*schema.Schema) ([]byte, error) { return nil, nil }
func (s *stubGenerator) Language() string                        { return s.language }
func (s *stubGenerator) FileExtension() string                   { return "." + s.language }
