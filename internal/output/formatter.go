// Package output renders catalogue entries for the terminal, for scripts,
// and back into the markdown-table form the catalogue originated as.
package output

import (
	"io"

	"github.com/gofcatalog/gofcat/internal/catalog"
	apperrors "github.com/gofcatalog/gofcat/internal/errors"
)

// Formatter defines output formatting interface
type Formatter interface {
	Format(entries []catalog.PatternEntry, w io.Writer) error
}

// Known format names, matched against the --format flag and config
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatQuiet    = "quiet"
)

// NewFormatter creates the formatter for a format name
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case FormatTable, "":
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	case FormatQuiet:
		return &QuietFormatter{}, nil
	default:
		return nil, apperrors.ValidationErrorf("unknown output format %q (want table, json, markdown, or quiet)", format)
	}
}
