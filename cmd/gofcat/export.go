package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/storage"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalogue to a SQLite database",
	Long: `Writes the catalogue into a SQLite file with a single patterns table,
so external tooling can query it with plain SQL.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "gofcat.db", "path of the SQLite file to write")
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStore(exportOut, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ExportCatalog(context.Background(), c); err != nil {
		return err
	}

	fmt.Printf("Exported %d patterns to %s\n", c.Len(), exportOut)
	return nil
}
