package output

import (
	"fmt"
	"io"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

// MarkdownFormatter renders the entries as per-category markdown tables,
// the same shape the catalogue is published in as a study document.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(entries []catalog.PatternEntry, w io.Writer) error {
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintf(w, "# Design Patterns\n")

	for _, category := range catalog.Categories() {
		var inCategory []catalog.PatternEntry
		for _, e := range entries {
			if e.Category == category {
				inCategory = append(inCategory, e)
			}
		}
		if len(inCategory) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n## %s Patterns\n\n", category)
		fmt.Fprintln(w, "| Pattern | Purpose | Usage |")
		fmt.Fprintln(w, "|---------|---------|-------|")
		for _, e := range inCategory {
			fmt.Fprintf(w, "| %s | %s | %s |\n", e.Name, e.Purpose, e.Frequency)
		}
	}

	return nil
}
