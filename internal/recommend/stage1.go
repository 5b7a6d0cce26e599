package recommend

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/StevenSLXie/talyon-sub000/internal/matching"
	"github.com/StevenSLXie/talyon-sub000/internal/narrative"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// stage1Concurrency bounds the scoring fan-out across the corpus.
const stage1Concurrency = 16

// EnhancedRecommendations is the stage-1-only entry point: hard filters,
// dimension scoring and aggregation over a bounded corpus fetch, sorted by
// composite score, truncated to limit.
func (e *Engine) EnhancedRecommendations(ctx context.Context, profile *types.CandidateProfile, limit int) ([]types.JobRecommendation, error) {
	recs, err := e.coarseRank(ctx, profile)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// coarseRank runs stage 1 over the whole corpus. Scoring is pure per job, so
// the corpus is fanned out across workers and fanned in for the sort.
func (e *Engine) coarseRank(ctx context.Context, profile *types.CandidateProfile) ([]types.JobRecommendation, error) {
	corpus, err := e.jobs.FetchJobCorpus(ctx, e.opts.CorpusLimit)
	if err != nil {
		return nil, &Error{Message: "failed to fetch job corpus", Cause: err}
	}

	results := make([]*types.JobRecommendation, len(corpus))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(stage1Concurrency)
	for i := range corpus {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			job := corpus[i]

			if gate := matching.EvaluateHardFilters(profile, &job); !gate.Passed {
				// Excluded with score 0; never re-enters scoring or output.
				return nil
			}

			breakdown := matching.ScoreJob(profile, &job, e.opts.Rates)
			if breakdown.CompositeScore <= e.opts.MinComposite {
				return nil
			}

			results[i] = &types.JobRecommendation{
				Job:       job,
				Breakdown: breakdown,
				Narrative: narrative.BuildNarrative(&breakdown, &job),
				Gaps:      narrative.BuildGapAnalysis(profile, &job, &breakdown),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &Error{Message: "stage-1 scoring interrupted", Cause: err}
	}

	recs := make([]types.JobRecommendation, 0, len(results))
	for _, r := range results {
		if r != nil {
			recs = append(recs, *r)
		}
	}

	// Composite descending; ties broken by skills score, then job ID for
	// deterministic ordering across runs.
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Breakdown.CompositeScore != recs[j].Breakdown.CompositeScore {
			return recs[i].Breakdown.CompositeScore > recs[j].Breakdown.CompositeScore
		}
		if recs[i].Breakdown.Skills.Score != recs[j].Breakdown.Skills.Score {
			return recs[i].Breakdown.Skills.Score > recs[j].Breakdown.Skills.Score
		}
		return recs[i].Job.ID < recs[j].Job.ID
	})

	e.logger.Debug().
		Int("corpus", len(corpus)).
		Int("ranked", len(recs)).
		Msg("stage-1 coarse ranking complete")

	return recs, nil
}
