package output

import (
	"fmt"
	"io"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

// WriteDetail renders a single entry in full, for `gofcat show`
func WriteDetail(w io.Writer, e catalog.PatternEntry) {
	fmt.Fprintf(w, "%s\n", e.Name)
	fmt.Fprintf(w, "Category:  %s\n", e.Category)
	fmt.Fprintf(w, "Usage:     %s\n", e.Frequency)
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	if e.ExampleContext != "" {
		fmt.Fprintf(w, "Example:   %s\n", e.ExampleContext)
	}
}
