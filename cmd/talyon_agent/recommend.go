package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/StevenSLXie/talyon-sub000/internal/db"
	"github.com/StevenSLXie/talyon-sub000/internal/llm"
	"github.com/StevenSLXie/talyon-sub000/internal/recommend"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the full two-stage recommendation flow",
	Long:  "Runs stage-1 rule-based scoring over the job corpus, then a single batched language-model call that re-ranks the shortlist. Degrades to the stage-1 ranking if the model is unavailable.",
	RunE:  runRecommend,
}

var (
	recommendProfile     string
	recommendCandidateID string
	recommendJobs        string
	recommendConfig      string
	recommendLimit       int
	recommendTimeout     time.Duration
	recommendOutput      string
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to CandidateProfile JSON file (required unless --candidate-id with a database)")
	recommendCmd.Flags().StringVar(&recommendCandidateID, "candidate-id", "", "Candidate ID for DB profile lookup and persistence")
	recommendCmd.Flags().StringVarP(&recommendJobs, "jobs", "j", "", "Path to a JSON array of job postings (default: load corpus from DATABASE_URL)")
	recommendCmd.Flags().StringVarP(&recommendConfig, "config", "c", "", "Path to config JSON file")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 10, "Maximum recommendations to return")
	recommendCmd.Flags().DurationVar(&recommendTimeout, "timeout", 3*time.Minute, "Overall deadline; on expiry the model call is abandoned and stage-1 results are returned")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(recommendConfig)
	if err != nil {
		return err
	}
	logger := newLogger(recommendVerbose || cfg.Verbose)

	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY (or api_key in config) is required for two-stage recommendations")
	}

	// Resolve collaborators: job corpus and profile come from a file or the
	// database, persistence only from the database.
	var (
		jobStore recommend.JobStore
		recStore recommend.RecommendationStore
		profile  *types.CandidateProfile
	)

	var database *db.DB
	if cfg.DatabaseURL != "" && (recommendJobs == "" || recommendCandidateID != "") {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	switch {
	case recommendJobs != "":
		jobStore, err = loadJobStore(recommendJobs)
		if err != nil {
			return err
		}
	case database != nil:
		jobStore = database
		recStore = database
	default:
		return fmt.Errorf("either --jobs or DATABASE_URL is required")
	}

	switch {
	case recommendProfile != "":
		profile, err = loadProfile(recommendProfile)
		if err != nil {
			return err
		}
	case recommendCandidateID != "" && database != nil:
		profile, err = database.FetchCandidateProfile(ctx, recommendCandidateID)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("no profile found for candidate %s", recommendCandidateID)
		}
	default:
		return fmt.Errorf("either --profile or --candidate-id (with a database) is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	engine := recommend.NewEngine(jobStore, llm.NewBatchAnalyzer(client, logger), recStore, logger, buildOptions(cfg))

	runCtx := ctx
	if recommendTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, recommendTimeout)
		defer cancel()
	}

	recs, err := engine.TwoStageRecommendations(runCtx, profile, recommendLimit, recommendCandidateID)
	if err != nil {
		return err
	}

	if recommendOutput == "" {
		return printJSON(recs)
	}
	return writeJSON(recommendOutput, recs)
}
