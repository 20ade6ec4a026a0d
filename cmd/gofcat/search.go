package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalogue by keyword",
	Long: `Searches pattern names, purposes, and example contexts for a
case-insensitive substring. Multiple arguments are joined into one query.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	entries := c.Search(query)
	logger.WithField("query", query).Debugf("Search matched %d patterns", len(entries))

	formatter, err := newFormatter()
	if err != nil {
		return err
	}
	return formatter.Format(entries, os.Stdout)
}
