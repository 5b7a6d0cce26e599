// Package recommend drives the two-stage recommendation flow: a rule-based
// coarse ranking over the job corpus (stage 1) composed with a single batched
// language-model re-ranking call over the shortlist (stage 2), with graceful
// degradation to stage-1 results when the model is unavailable.
package recommend

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/StevenSLXie/talyon-sub000/internal/currency"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// JobStore supplies the job corpus. Fetch failures are the only errors the
// engine surfaces to its callers unchanged.
type JobStore interface {
	FetchJobCorpus(ctx context.Context, limit int) ([]types.JobPosting, error)
}

// Analyzer is the narrow synchronous interface to the external language
// model: exactly one batched call per stage-2 invocation, analyses in strict
// positional correspondence with the input jobs. Implementations own any
// retry policy; the engine performs none.
type Analyzer interface {
	Analyze(ctx context.Context, profile *types.CandidateProfile, jobs []types.JobPosting) ([]types.LLMAnalysis, error)
}

// RecommendationStore persists final recommendations. Persistence is
// fire-and-forget: failures are logged, never propagated.
type RecommendationStore interface {
	PersistRecommendations(ctx context.Context, candidateID string, recs []types.AdvancedRecommendation) error
}

// Options tune the engine's bounds. Zero values select the defaults.
type Options struct {
	CorpusLimit   int              // postings fetched for stage 1 (default 500)
	ShortlistSize int              // stage-1 shortlist handed to stage 2 (default 20)
	MinComposite  int              // stage-1 results at or below this are dropped (default 20)
	Rates         currency.Table   // salary conversion rates (default currency.DefaultTable)
}

const (
	defaultCorpusLimit   = 500
	defaultShortlistSize = 20
	defaultMinComposite  = 20
)

func (o Options) withDefaults() Options {
	if o.CorpusLimit <= 0 {
		o.CorpusLimit = defaultCorpusLimit
	}
	if o.ShortlistSize <= 0 {
		o.ShortlistSize = defaultShortlistSize
	}
	if o.MinComposite <= 0 {
		o.MinComposite = defaultMinComposite
	}
	if o.Rates == nil {
		o.Rates = currency.DefaultTable()
	}
	return o
}

// Engine composes the collaborators into the two-stage flow. It holds no
// mutable state; every request is independent.
type Engine struct {
	jobs     JobStore
	analyzer Analyzer
	store    RecommendationStore // may be nil
	opts     Options
	logger   zerolog.Logger
}

// NewEngine creates an Engine. store may be nil when persistence is not
// wanted; analyzer may be nil to force stage-1-only behavior.
func NewEngine(jobs JobStore, analyzer Analyzer, store RecommendationStore, logger zerolog.Logger, opts Options) *Engine {
	return &Engine{
		jobs:     jobs,
		analyzer: analyzer,
		store:    store,
		opts:     opts.withDefaults(),
		logger:   logger,
	}
}
