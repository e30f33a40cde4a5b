package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadManifests(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, "vertices.hcl", `
vertex "OpenAI" {
  kind        = "llm"
  description = "OpenAI completion model"
  defaults = {
    temperature = 0.7
    model_name  = "gpt-4"
  }
}

vertex "CSVTool" {
  kind      = "tool"
  file_tool = true
}
`)

	r := NewEmpty()
	require.NoError(t, r.LoadManifests(context.Background(), tmpDir))

	assert.Equal(t, KindLLM, r.Resolve("OpenAI", ""))
	assert.Equal(t, map[string]any{"temperature": 0.7, "model_name": "gpt-4"}, r.Defaults("OpenAI"))

	// file_tool = true forces file-tool precedence regardless of kind.
	assert.Equal(t, KindFileTool, r.Resolve("CSVTool", ""))
}

func TestLoadManifests_Errors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeManifest(t, tmpDir, "bad.hcl", `
vertex "X" {
  kind = "does_not_exist"
}
`)
		err := NewEmpty().LoadManifests(context.Background(), tmpDir)
		assert.ErrorContains(t, err, "unknown vertex kind")
	})

	t.Run("malformed hcl", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeManifest(t, tmpDir, "broken.hcl", `vertex "X" {`)
		err := NewEmpty().LoadManifests(context.Background(), tmpDir)
		assert.ErrorContains(t, err, "failed to parse manifest file")
	})

	t.Run("empty directory is not an error", func(t *testing.T) {
		err := NewEmpty().LoadManifests(context.Background(), t.TempDir())
		assert.NoError(t, err)
	})
}
