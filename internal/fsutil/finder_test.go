package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, rel := range []string{"b.hcl", "a.YAML", "nested/c.yml", "notes.txt"} {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0600))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl", ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.YAML"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.yml"),
	}, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.Error(t, err)
}

func TestFindFilesByExtension_RequiresExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir())
	})
}
