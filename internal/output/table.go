package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

// TableFormatter renders aligned columns for interactive terminals (default)
type TableFormatter struct{}

func (f *TableFormatter) Format(entries []catalog.PatternEntry, w io.Writer) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No patterns found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tFREQUENCY\tPURPOSE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Category, e.Frequency, e.Purpose)
	}
	return tw.Flush()
}

// QuietFormatter outputs pattern names only (for scripts and shell completion)
type QuietFormatter struct{}

func (f *QuietFormatter) Format(entries []catalog.PatternEntry, w io.Writer) error {
	for _, e := range entries {
		fmt.Fprintln(w, e.Name)
	}
	return nil
}
