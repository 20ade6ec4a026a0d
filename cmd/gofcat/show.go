package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/catalog"
	"github.com/gofcatalog/gofcat/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <pattern>",
	Short: "Show one pattern in full",
	Long: `Shows a single catalogue entry by its exact name, for example:

  gofcat show "Singleton Pattern"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	name := args[0]
	entry, found := c.FindByName(name)
	if !found {
		return notFoundError(c, name)
	}

	if outputFormat() == output.FormatJSON {
		formatter := &output.JSONFormatter{}
		return formatter.Format([]catalog.PatternEntry{entry}, os.Stdout)
	}

	output.WriteDetail(os.Stdout, entry)
	return nil
}

// notFoundError builds a helpful error for an unknown name, suggesting
// near matches when the query looks like part of a real name
func notFoundError(c *catalog.Catalog, name string) error {
	matches := c.Search(name)
	if len(matches) == 0 {
		return fmt.Errorf("pattern %q not found; run 'gofcat list' to see the catalogue", name)
	}

	suggestions := make([]string, 0, len(matches))
	for _, e := range matches {
		suggestions = append(suggestions, e.Name)
	}
	return fmt.Errorf("pattern %q not found; did you mean: %s", name, strings.Join(suggestions, ", "))
}
