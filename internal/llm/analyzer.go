package llm

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"github.com/StevenSLXie/talyon-sub000/internal/prompts"
	"github.com/StevenSLXie/talyon-sub000/internal/repair"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

//go:embed analyses_schema.json
var analysesSchema string

// BatchAnalyzer performs the stage-2 fine ranking: one batched model call
// that jointly re-scores a stage-1 shortlist against the candidate profile.
// It performs no retries; retry policy belongs to the caller of the engine.
type BatchAnalyzer struct {
	client Client
	tier   ModelTier
	logger zerolog.Logger
}

// NewBatchAnalyzer creates a BatchAnalyzer on the given client. The advanced
// tier is used: the call reasons over the whole candidate-shortlist context.
func NewBatchAnalyzer(client Client, logger zerolog.Logger) *BatchAnalyzer {
	return &BatchAnalyzer{client: client, tier: TierAdvanced, logger: logger}
}

// Analyze issues exactly one batched model call for the shortlist and decodes
// the response into per-job analyses in strict positional correspondence with
// the input jobs. The raw response is run through tolerant JSON recovery and
// validated against the embedded schema before decoding.
func (a *BatchAnalyzer) Analyze(ctx context.Context, profile *types.CandidateProfile, jobs []types.JobPosting) ([]types.LLMAnalysis, error) {
	if len(jobs) == 0 {
		return nil, &AnalyzeError{Message: "no jobs to analyze"}
	}

	prompt, err := buildBatchPrompt(profile, jobs)
	if err != nil {
		return nil, &AnalyzeError{Message: "failed to build analysis prompt", Cause: err}
	}

	raw, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		return nil, &AnalyzeError{Message: "model call failed", Cause: err}
	}

	recovered := repair.Recover(raw)

	if err := validateAnalyses(recovered); err != nil {
		a.logger.Warn().Err(err).Int("raw_len", len(raw)).Msg("model response failed schema validation")
		return nil, &AnalyzeError{Message: "model response failed schema validation", Cause: err}
	}

	var decoded []batchAnalysis
	if err := json.Unmarshal([]byte(recovered), &decoded); err != nil {
		return nil, &AnalyzeError{Message: "failed to decode model response", Cause: err}
	}

	analyses := make([]types.LLMAnalysis, len(decoded))
	for i, r := range decoded {
		analyses[i] = types.LLMAnalysis{
			FinalScore:             clampFinalScore(r.FinalScore),
			MatchingReasons:        r.MatchingReasons,
			NonMatchingPoints:      r.NonMatchingPoints,
			KeyHighlights:          r.KeyHighlights,
			PersonalizedAssessment: r.PersonalizedAssessment,
			CareerImpact:           r.CareerImpact,
		}
	}
	return analyses, nil
}

// batchAnalysis mirrors types.LLMAnalysis at the wire boundary. The schema
// admits any number for final_score, so it is decoded as a float and rounded;
// rejecting an otherwise healthy batch over a fractional score would needlessly
// degrade the flow to the fallback path.
type batchAnalysis struct {
	FinalScore             float64  `json:"final_score"`
	MatchingReasons        []string `json:"matching_reasons"`
	NonMatchingPoints      []string `json:"non_matching_points"`
	KeyHighlights          []string `json:"key_highlights"`
	PersonalizedAssessment string   `json:"personalized_assessment"`
	CareerImpact           string   `json:"career_impact"`
}

// clampFinalScore rounds a wire score and bounds it to [0,100].
func clampFinalScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// buildBatchPrompt serializes the profile and the shortlist (full
// descriptions included) into the batch analysis template.
func buildBatchPrompt(profile *types.CandidateProfile, jobs []types.JobPosting) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal candidate profile: %w", err)
	}

	jobsJSON, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal shortlist: %w", err)
	}

	template := prompts.MustGet("matching.json", "batch-job-analysis")
	return prompts.Format(template, map[string]string{
		"Profile": string(profileJSON),
		"Jobs":    string(jobsJSON),
		"Count":   strconv.Itoa(len(jobs)),
	}), nil
}

// validateAnalyses checks the recovered JSON against the embedded schema.
func validateAnalyses(doc string) error {
	schemaLoader := gojsonschema.NewStringLoader(analysesSchema)
	docLoader := gojsonschema.NewStringLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		first := ""
		if errs := result.Errors(); len(errs) > 0 {
			first = errs[0].String()
		}
		return fmt.Errorf("response does not match analysis schema: %s", first)
	}
	return nil
}
