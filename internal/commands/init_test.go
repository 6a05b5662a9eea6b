package commands

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realmgen/realmgen/internal/config"
)

// Test plan:
// 1. Existing realmgen.json aborts init
// 2. Provided options are written as realmgen.json
// 3. Written config round-trips through the config loader

type mockFileSystem struct {
	existing   map[string]bool
	written    map[string][]byte
	writeErr   error
	statCalls  []string
	writeCalls []string
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		existing: map[string]bool{},
		written:  map[string][]byte{},
	}
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.statCalls = append(m.statCalls, name)
	if m.existing[name] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.writeCalls = append(m.writeCalls, name)
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written[name] = data
	return nil
}

func TestInitCommand_ExistingConfig(t *testing.T) {
	fs := newMockFileSystem()
	fs.existing["realmgen.json"] = true

	cmd := &InitCommand{
		filesystem:  fs,
		testOptions: &InitOptions{SchemaPath: "./schema.graphql", OutputPath: "./Models.generated.swift"},
	}

	err := cmd.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, fs.writeCalls)
}

func TestInitCommand_WritesConfig(t *testing.T) {
	fs := newMockFileSystem()

	cmd := &InitCommand{
		filesystem: fs,
		testOptions: &InitOptions{
			SchemaPath: "./api/schema.graphql",
			OutputPath: "./Sources/Models.swift",
			Namespace:  "API",
		},
	}

	err := cmd.Run(context.Background())
	require.NoError(t, err)
	require.Contains(t, fs.written, "realmgen.json")

	var cfg config.Config
	require.NoError(t, json.Unmarshal(fs.written["realmgen.json"], &cfg))
	assert.Equal(t, "./api/schema.graphql", cfg.Schema)
	assert.Equal(t, "./Sources/Models.swift", cfg.Output)
	assert.Equal(t, "API", cfg.Namespace)
}

func TestInitCommand_WriteFailure(t *testing.T) {
	fs := newMockFileSystem()
	fs.writeErr = os.ErrPermission

	cmd := &InitCommand{
		filesystem:  fs,
		testOptions: &InitOptions{SchemaPath: "./schema.graphql", OutputPath: "./Models.generated.swift"},
	}

	err := cmd.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write realmgen.json")
}
