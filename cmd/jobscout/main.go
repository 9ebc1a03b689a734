// Package main provides the entry point for the jobscout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yeonwoo/jobscout/internal/config"
	"github.com/yeonwoo/jobscout/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Job posting scoring and recommendation tool",
	Long:  "jobscout stores scraped job postings in PostgreSQL, scores them against a candidate profile with a deterministic rubric, and reports the best matches.",
}

var (
	configPath string
	verbose    bool
	jsonLogs   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig assembles configuration from the config file, environment,
// and flags, then applies defaults.
func loadConfig() (config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if verbose {
		cfg.Verbose = true
	}
	if jsonLogs {
		cfg.JSONLogs = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.ApplyDefaults(), nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}
