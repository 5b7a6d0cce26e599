package recommend

import (
	"context"
	"time"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// persistTimeout bounds the fire-and-forget persistence write.
const persistTimeout = 10 * time.Second

// TwoStageRecommendations runs the full flow: stage-1 coarse ranking, one
// batched model call over the top of the shortlist, positional merge, and
// re-sort by the model's final score. Any stage-2 failure degrades to the
// stage-1 results with synthesized analyses; the only error surfaced is a
// corpus fetch failure. candidateID may be empty to skip persistence.
func (e *Engine) TwoStageRecommendations(ctx context.Context, profile *types.CandidateProfile, limit int, candidateID string) ([]types.AdvancedRecommendation, error) {
	stage1, err := e.coarseRank(ctx, profile)
	if err != nil {
		return nil, err
	}
	if len(stage1) == 0 {
		// Terminal: nothing to re-rank, no model call attempted.
		return []types.AdvancedRecommendation{}, nil
	}

	shortlist := stage1
	if len(shortlist) > e.opts.ShortlistSize {
		shortlist = shortlist[:e.opts.ShortlistSize]
	}

	merged, degraded := e.fineRank(ctx, profile, shortlist)
	if degraded {
		merged = e.fallback(shortlist)
	}

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	e.persistAsync(candidateID, merged)
	return merged, nil
}

// fineRank issues the single batched analysis call and merges the analyses
// into the shortlist positionally. Returns degraded=true when the call fails
// or returns nothing usable; a short response merges what it can, drops the
// unanalyzed tail, and logs a warning.
func (e *Engine) fineRank(ctx context.Context, profile *types.CandidateProfile, shortlist []types.JobRecommendation) ([]types.AdvancedRecommendation, bool) {
	if e.analyzer == nil {
		return nil, true
	}

	jobs := make([]types.JobPosting, len(shortlist))
	for i, rec := range shortlist {
		jobs[i] = rec.Job
	}

	analyses, err := e.analyzer.Analyze(ctx, profile, jobs)
	if err != nil {
		e.logger.Warn().Err(err).Msg("stage-2 analysis failed; falling back to stage-1 ranking")
		return nil, true
	}
	if len(analyses) == 0 {
		e.logger.Warn().Msg("stage-2 returned no analyses; falling back to stage-1 ranking")
		return nil, true
	}

	n := len(shortlist)
	if len(analyses) != n {
		e.logger.Warn().
			Int("expected", n).
			Int("received", len(analyses)).
			Msg("stage-2 analysis count mismatch; merging positionally and truncating")
		if len(analyses) < n {
			n = len(analyses)
		}
	}

	merged := make([]types.AdvancedRecommendation, 0, n)
	for i := 0; i < n; i++ {
		rec := types.AdvancedRecommendation{
			JobRecommendation: shortlist[i],
			Stage1Score:       shortlist[i].Breakdown.CompositeScore,
			Stage2Score:       analyses[i].FinalScore,
			LLM:               analyses[i],
		}
		// The model's final score becomes the effective match score.
		rec.Breakdown.CompositeScore = analyses[i].FinalScore
		merged = append(merged, rec)
	}

	sortByStage2(merged)
	return merged, false
}

// persistAsync writes the final list without blocking the caller or
// propagating failures. The write runs on its own context so a caller
// cancellation after return does not abort it.
func (e *Engine) persistAsync(candidateID string, recs []types.AdvancedRecommendation) {
	if e.store == nil || candidateID == "" || len(recs) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := e.store.PersistRecommendations(ctx, candidateID, recs); err != nil {
			e.logger.Warn().Err(err).Str("candidate_id", candidateID).Msg("failed to persist recommendations")
		}
	}()
}
