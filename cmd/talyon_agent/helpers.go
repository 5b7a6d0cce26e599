package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/StevenSLXie/talyon-sub000/internal/config"
	"github.com/StevenSLXie/talyon-sub000/internal/currency"
	"github.com/StevenSLXie/talyon-sub000/internal/recommend"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// newLogger builds a console logger; verbose mode enables debug output.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// resolveConfig loads the config file when given, otherwise reads the
// environment, and validates the result.
func resolveConfig(path string) (*config.Config, error) {
	cfg := config.FromEnv()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildOptions maps config onto engine options, applying rate overrides on
// top of the default currency table.
func buildOptions(cfg *config.Config) recommend.Options {
	return recommend.Options{
		CorpusLimit:   cfg.CorpusLimit,
		ShortlistSize: cfg.ShortlistSize,
		MinComposite:  cfg.MinComposite,
		Rates:         currency.DefaultTable().WithOverrides(cfg.CurrencyRates),
	}
}

// loadProfile reads and validates a CandidateProfile JSON file.
func loadProfile(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile failed validation: %w", err)
	}
	return &profile, nil
}

// fileJobStore serves a corpus loaded from a JSON file, for offline runs
// without a database.
type fileJobStore struct {
	jobs []types.JobPosting
}

// loadJobStore reads a JSON array of postings into a fileJobStore.
func loadJobStore(path string) (*fileJobStore, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.JobPosting
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	return &fileJobStore{jobs: jobs}, nil
}

// FetchJobCorpus returns up to limit postings from the loaded file.
func (s *fileJobStore) FetchJobCorpus(_ context.Context, limit int) ([]types.JobPosting, error) {
	if limit > 0 && len(s.jobs) > limit {
		return s.jobs[:limit], nil
	}
	return s.jobs, nil
}

// printJSON marshals v with indentation to stdout.
func printJSON(v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	fmt.Println(string(jsonOutput))
	return nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory if needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
