package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Catalog.File)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Contains(t, cfg.Notes.Path, ".gofcat")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
catalog:
  file: /tmp/team-catalog.yaml
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/team-catalog.yaml", cfg.Catalog.File)
	assert.Equal(t, "json", cfg.Output.Format)
	// Unset keys keep their defaults
	assert.Contains(t, cfg.Notes.Path, "notes.db")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GOFCAT_OUTPUT_FORMAT", "markdown")
	t.Setenv("GOFCAT_NOTES_PATH", "/tmp/alt-notes.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "/tmp/alt-notes.db", cfg.Notes.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
