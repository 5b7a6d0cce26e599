package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StevenSLXie/talyon-sub000/internal/db"
	"github.com/StevenSLXie/talyon-sub000/internal/recommend"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Run stage-1 rule-based scoring only",
	Long:  "Scores a candidate profile against the job corpus with hard filters, the ten dimension scorers and weighted aggregation, without calling the language model.",
	RunE:  runScore,
}

var (
	scoreProfile string
	scoreJobs    string
	scoreConfig  string
	scoreLimit   int
	scoreOutput  string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobs, "jobs", "j", "", "Path to a JSON array of job postings (default: load corpus from DATABASE_URL)")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to config JSON file")
	scoreCmd.Flags().IntVarP(&scoreLimit, "limit", "n", 10, "Maximum recommendations to return")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(scoreConfig)
	if err != nil {
		return err
	}
	logger := newLogger(scoreVerbose || cfg.Verbose)

	profile, err := loadProfile(scoreProfile)
	if err != nil {
		return err
	}

	var jobStore recommend.JobStore
	if scoreJobs != "" {
		jobStore, err = loadJobStore(scoreJobs)
		if err != nil {
			return err
		}
	} else {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("either --jobs or DATABASE_URL is required")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		jobStore = database
	}

	engine := recommend.NewEngine(jobStore, nil, nil, logger, buildOptions(cfg))
	recs, err := engine.EnhancedRecommendations(ctx, profile, scoreLimit)
	if err != nil {
		return err
	}

	if scoreOutput == "" {
		return printJSON(recs)
	}
	return writeJSON(scoreOutput, recs)
}
