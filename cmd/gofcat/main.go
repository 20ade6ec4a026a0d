package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/catalog"
	"github.com/gofcatalog/gofcat/internal/config"
	"github.com/gofcatalog/gofcat/internal/output"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile    string
	verbose    bool
	formatFlag string
	logger     *logrus.Logger
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gofcat",
	Short: "gofcat - the Gang-of-Four design pattern catalogue",
	Long: `gofcat answers questions about the 23 classic GoF design patterns:
what each one is for, how it is classified, and how often it shows up
in practice. The catalogue is read-only; your notes are the only state.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger
		logger = logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gofcat/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: table, json, markdown, quiet")

	// Set custom version template
	rootCmd.SetVersionTemplate(`gofcat {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadCatalog opens the configured catalogue (builtin unless overridden)
func loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.File != "" {
		logger.WithFields(logrus.Fields{
			"file":     cfg.Catalog.File,
			"patterns": c.Len(),
		}).Debug("Loaded catalogue override")
	}
	return c, nil
}

// outputFormat resolves the active format: flag first, then config
func outputFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	return cfg.Output.Format
}

func newFormatter() (output.Formatter, error) {
	return output.NewFormatter(outputFormat())
}
