// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// the environment.
type Config struct {
	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Stage-1 bounds
	CorpusLimit   int `json:"corpus_limit,omitempty"`   // postings fetched per request
	ShortlistSize int `json:"shortlist_size,omitempty"` // stage-1 shortlist size
	MinComposite  int `json:"min_composite,omitempty"`  // drop stage-1 scores at or below this

	// CurrencyRates overrides entries of the built-in SGD-based rate table,
	// e.g. {"USD": 1.32}.
	CurrencyRates map[string]float64 `json:"currency_rates,omitempty"`
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

// FromEnv builds a Config from environment variables. Used when no config
// file is given; the CLI merges flags on top.
func FromEnv() *Config {
	cfg := &Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if v := os.Getenv("CORPUS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CorpusLimit = n
		}
	}
	return cfg
}

// Merge returns a copy of c with non-zero fields of other applied on top.
func (c *Config) Merge(other *Config) *Config {
	merged := *c
	if other == nil {
		return &merged
	}
	if other.APIKey != "" {
		merged.APIKey = other.APIKey
	}
	if other.DatabaseURL != "" {
		merged.DatabaseURL = other.DatabaseURL
	}
	if other.Verbose {
		merged.Verbose = true
	}
	if other.CorpusLimit > 0 {
		merged.CorpusLimit = other.CorpusLimit
	}
	if other.ShortlistSize > 0 {
		merged.ShortlistSize = other.ShortlistSize
	}
	if other.MinComposite > 0 {
		merged.MinComposite = other.MinComposite
	}
	if len(other.CurrencyRates) > 0 {
		merged.CurrencyRates = other.CurrencyRates
	}
	return &merged
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.CorpusLimit < 0 {
		return fmt.Errorf("config error: 'corpus_limit' must be non-negative")
	}
	if c.ShortlistSize < 0 {
		return fmt.Errorf("config error: 'shortlist_size' must be non-negative")
	}
	if c.MinComposite < 0 || c.MinComposite > 100 {
		return fmt.Errorf("config error: 'min_composite' must be between 0 and 100")
	}
	for code, rate := range c.CurrencyRates {
		if rate <= 0 {
			return fmt.Errorf("config error: currency rate for %q must be positive", code)
		}
	}
	return nil
}
