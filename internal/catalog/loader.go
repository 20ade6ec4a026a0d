package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/gofcatalog/gofcat/internal/errors"
)

// catalogFile is the on-disk YAML shape for a catalogue override
type catalogFile struct {
	Patterns []PatternEntry `yaml:"patterns"`
}

// LoadFile reads a YAML catalogue override from path. The file must hold a
// top-level `patterns` list; entries are validated by New, so a file with
// duplicate names or a made-up category is rejected, not silently loaded.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.FileSystemErrorf(err, "read catalogue file %s", path)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.ValidationErrorf("parse catalogue file %s: %v", path, err)
	}

	c, err := New(f.Patterns)
	if err != nil {
		if e, ok := err.(*apperrors.Error); ok {
			return nil, e.WithContext("path", path)
		}
		return nil, err
	}
	return c, nil
}

// Load returns the catalogue for path, falling back to the builtin data
// when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}
