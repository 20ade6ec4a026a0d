package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the three pattern categories with entry counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	counts := c.CountByCategory()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPATTERNS")
	for _, category := range catalog.Categories() {
		fmt.Fprintf(tw, "%s\t%d\n", category, counts[category])
	}
	return tw.Flush()
}
