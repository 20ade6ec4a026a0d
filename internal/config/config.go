package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration settings
type Config struct {
	// Catalogue source
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`

	// Personal notes store
	Notes NotesConfig `yaml:"notes" mapstructure:"notes"`

	// Output defaults
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

type CatalogConfig struct {
	// File is an optional YAML catalogue override; empty means builtin data
	File string `yaml:"file" mapstructure:"file"`
}

type NotesConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "table", "json", "markdown", "quiet"
}

// Default returns default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Catalog: CatalogConfig{
			File: "",
		},
		Notes: NotesConfig{
			Path: filepath.Join(homeDir, ".gofcat", "notes.db"),
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	cfg := Default()
	v.SetDefault("catalog", cfg.Catalog)
	v.SetDefault("notes", cfg.Notes)
	v.SetDefault("output", cfg.Output)

	// Load from environment variables
	v.SetEnvPrefix("GOFCAT")
	v.AutomaticEnv()

	// Try to find config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".gofcat")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".gofcat"))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	// Also try loading from home directory
	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".gofcat", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if file := os.Getenv("GOFCAT_CATALOG_FILE"); file != "" {
		cfg.Catalog.File = file
	}
	if path := os.Getenv("GOFCAT_NOTES_PATH"); path != "" {
		cfg.Notes.Path = path
	}
	if format := os.Getenv("GOFCAT_OUTPUT_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
}
