package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List catalogue entries, optionally filtered by category",
	Long: `Lists the pattern catalogue in canonical GoF order. With a category
argument (Creational, Structural, or Behavioral) only that group is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	entries := c.AllEntries()
	if len(args) == 1 {
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		entries = c.ListByCategory(category)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}
	return formatter.Format(entries, os.Stdout)
}

// parseCategory matches a category argument case-insensitively
func parseCategory(arg string) (catalog.PatternCategory, error) {
	for _, category := range catalog.Categories() {
		if strings.EqualFold(arg, string(category)) {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want Creational, Structural, or Behavioral)", arg)
}
