package output

import (
	"encoding/json"
	"io"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

// JSONFormatter outputs machine-readable JSON (for AI assistants and tooling)
type JSONFormatter struct{}

func (f *JSONFormatter) Format(entries []catalog.PatternEntry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Count    int                    `json:"count"`
		Patterns []catalog.PatternEntry `json:"patterns"`
	}{
		Count:    len(entries),
		Patterns: entries,
	})
}
