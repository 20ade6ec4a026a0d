package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `
patterns:
  - name: Singleton Pattern
    category: Creational
    purpose: Guarantee a single instance.
    frequency: Very Frequent
    example_context: Shared logger.
  - name: Adapter Pattern
    category: Structural
    purpose: Wrap an incompatible interface.
    frequency: Very Frequent
`)

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	e, ok := c.FindByName("Adapter Pattern")
	require.True(t, ok)
	assert.Equal(t, CategoryStructural, e.Category)
	assert.Empty(t, e.ExampleContext)
}

func TestLoadFileRejectsBadCategory(t *testing.T) {
	path := writeCatalogFile(t, `
patterns:
  - name: Singleton Pattern
    category: Architectural
    purpose: Guarantee a single instance.
    frequency: Moderate
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoadFileRejectsDuplicates(t *testing.T) {
	path := writeCatalogFile(t, `
patterns:
  - name: Singleton Pattern
    category: Creational
    purpose: One.
    frequency: Moderate
  - name: Singleton Pattern
    category: Creational
    purpose: Two.
    frequency: Moderate
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := writeCatalogFile(t, "patterns: [whoops")

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadDefaultsToBuiltin(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 23, c.Len())
}
