package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested"), 0o755))
	for _, name := range []string{"a.hcl", "b.txt", "nested/c.hcl", "nested/d.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644))
	}

	t.Run("single extension", func(t *testing.T) {
		files, err := FindFilesByExtension(tmpDir, ".hcl")
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, filepath.Join(tmpDir, "a.hcl"), files[0])
		assert.Equal(t, filepath.Join(tmpDir, "nested", "c.hcl"), files[1])
	})

	t.Run("multiple extensions", func(t *testing.T) {
		files, err := FindFilesByExtension(tmpDir, ".hcl", ".yaml")
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("no matches", func(t *testing.T) {
		files, err := FindFilesByExtension(tmpDir, ".json")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(tmpDir, "does-not-exist"), ".hcl")
		assert.Error(t, err)
	})
}
