package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, patterns, exclude []string) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(patterns, exclude, zerolog.Nop(), func(string, fsnotify.Op) {})
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })
	return fw
}

func TestFileWatcher_ShouldWatch(t *testing.T) {
	// Test plan:
	// - Plain patterns match by base name
	// - **/*.ext patterns match by extension anywhere
	// - Excludes win over patterns

	fw := newTestWatcher(t, []string{"*.graphql", "**/*.gql"}, []string{"*.tmp"})

	assert.True(t, fw.shouldWatch("schema.graphql"))
	assert.True(t, fw.shouldWatch("api/nested/service.gql"))
	assert.False(t, fw.shouldWatch("main.swift"))
	assert.False(t, fw.shouldWatch("schema.tmp"))
}

func TestFileWatcher_ExcludeBeatsPattern(t *testing.T) {
	// Test: a file matching both patterns and excludes is ignored
	fw := newTestWatcher(t, []string{"*.graphql"}, []string{"draft.graphql"})

	assert.False(t, fw.shouldWatch("draft.graphql"))
	assert.True(t, fw.shouldWatch("schema.graphql"))
}

func TestFileWatcher_AddDirectory(t *testing.T) {
	// Test: directories are added recursively, excluded subtrees skipped
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "api", "v1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0755))

	fw := newTestWatcher(t, []string{"*.graphql"}, []string{"build"})

	err := fw.AddDirectory(root)
	assert.NoError(t, err)
}
