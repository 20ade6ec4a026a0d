package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/rpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve catalogue queries over JSON-RPC on stdin/stdout",
	Long: `Runs a line-delimited JSON-RPC 2.0 server for AI-assistant
integration. Tools: find_pattern, list_patterns, search_patterns.
Logs go to stderr; stdout carries only responses.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	handler := rpc.NewHandler()
	rpc.RegisterCatalogTools(handler, c)

	logger.WithField("patterns", c.Len()).Info("Serving catalogue on stdio")

	transport := rpc.NewStdioTransport(handler, os.Stdin, os.Stdout)
	return transport.Start()
}
