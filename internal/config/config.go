// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultPort        = 8080
	DefaultScoreLimit  = 50
	DefaultConcurrency = 4
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment.
type Config struct {
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // Reporting API port
	ScoreLimit  int    `json:"score_limit,omitempty"`  // Max pending postings per score run
	Concurrency int    `json:"concurrency,omitempty"`  // Parallel evaluations per score run
	Verbose     bool   `json:"verbose,omitempty"`      // Debug-level logging
	JSONLogs    bool   `json:"json_logs,omitempty"`    // JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from the environment. DATABASE_URL is the
// only required setting overall and may come from a .env file.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.ScoreLimit < 0 {
		return fmt.Errorf("config error: 'score_limit' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	return nil
}

// ApplyDefaults returns a copy with zero-valued fields replaced by the
// package defaults. Bool fields are left alone: CLI flags always win for
// bools since unset and false are indistinguishable.
func (c *Config) ApplyDefaults() Config {
	result := *c
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.ScoreLimit == 0 {
		result.ScoreLimit = DefaultScoreLimit
	}
	if result.Concurrency == 0 {
		result.Concurrency = DefaultConcurrency
	}
	return result
}
