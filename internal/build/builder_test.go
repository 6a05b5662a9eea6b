package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realmgen/realmgen/internal/config"
)

func TestModelBuilder_Generate(t *testing.T) {
	// Test plan:
	// - Pipeline reads the schema, generates, and writes the output file
	// - Namespace from config flows into the generated source
	// - Artifacts report the written path and parsed schema

	root := t.TempDir()
	schemaSrc := `
type User {
  id: ID!
  name: String
}`
	require.NoError(t, os.WriteFile(filepath.Join(root, "schema.graphql"), []byte(schemaSrc), 0644))

	cfg := &config.Config{
		Schema:    "./schema.graphql",
		Output:    "./out/Models.generated.swift",
		Namespace: "API",
	}

	builder := NewModelBuilder(cfg, root, zerolog.Nop())
	artifacts, err := builder.Generate()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "out", "Models.generated.swift"), artifacts.OutputPath)
	require.NotNil(t, artifacts.Schema)
	assert.Len(t, artifacts.Schema.ObjectTypes(), 1)

	written, err := os.ReadFile(artifacts.OutputPath)
	require.NoError(t, err)
	result := string(written)

	assert.Contains(t, result, "public enum API {")
	assert.Contains(t, result, "public final class User: Object {")
	assert.Contains(t, result, "public override class func primaryKey() -> String? {")
}

func TestModelBuilder_MissingSchema(t *testing.T) {
	// Test: a missing schema file fails before any output is written
	root := t.TempDir()
	cfg := &config.Config{Schema: "./schema.graphql", Output: "./Models.generated.swift"}

	_, err := NewModelBuilder(cfg, root, zerolog.Nop()).Generate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestModelBuilder_EmptySchemaFile(t *testing.T) {
	// Test: an empty schema file is rejected
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "schema.graphql"), nil, 0644))
	cfg := &config.Config{Schema: "./schema.graphql", Output: "./Models.generated.swift"}

	_, err := NewModelBuilder(cfg, root, zerolog.Nop()).Generate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema file is empty")
}

func TestModelBuilder_InvalidSchema(t *testing.T) {
	// Test: unparsable schema content surfaces a parse error
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "schema.graphql"), []byte("type Broken {"), 0644))
	cfg := &config.Config{Schema: "./schema.graphql", Output: "./Models.generated.swift"}

	_, err := NewModelBuilder(cfg, root, zerolog.Nop()).Generate()
	assert.Error(t, err)
}
