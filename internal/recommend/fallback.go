package recommend

import (
	"sort"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// Placeholder text for qualitative fields the model would normally fill.
const (
	fallbackAssessment = "A detailed model assessment is temporarily unavailable; this ranking reflects the rule-based screening."
	fallbackImpact     = "Career impact analysis is temporarily unavailable."
)

// fallback converts stage-1 recommendations into advanced recommendations
// with analyses synthesized from the rule-based reasons, so degraded results
// stay explainable. Scores and ordering are exactly the stage-1 ranking.
func (e *Engine) fallback(stage1 []types.JobRecommendation) []types.AdvancedRecommendation {
	out := make([]types.AdvancedRecommendation, 0, len(stage1))
	for _, rec := range stage1 {
		out = append(out, types.AdvancedRecommendation{
			JobRecommendation: rec,
			Stage1Score:       rec.Breakdown.CompositeScore,
			Stage2Score:       rec.Breakdown.CompositeScore,
			LLM:               synthesizeAnalysis(&rec),
		})
	}
	sortByStage2(out)
	return out
}

// synthesizeAnalysis fills an LLMAnalysis from stage-1 output: strengths
// become matching reasons, concerns become non-matching points.
func synthesizeAnalysis(rec *types.JobRecommendation) types.LLMAnalysis {
	reasons := rec.Narrative.Strengths
	if len(reasons) == 0 {
		for _, dim := range rec.Breakdown.Dimensions() {
			if dim.Score.Score >= 70 {
				reasons = append(reasons, dim.Score.Reason)
			}
		}
	}

	highlights := reasons
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}

	return types.LLMAnalysis{
		FinalScore:             rec.Breakdown.CompositeScore,
		MatchingReasons:        reasons,
		NonMatchingPoints:      rec.Narrative.Concerns,
		KeyHighlights:          highlights,
		PersonalizedAssessment: fallbackAssessment,
		CareerImpact:           fallbackImpact,
	}
}

// sortByStage2 orders recommendations by stage-2 score descending, breaking
// ties by stage-1 score then job ID.
func sortByStage2(recs []types.AdvancedRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Stage2Score != recs[j].Stage2Score {
			return recs[i].Stage2Score > recs[j].Stage2Score
		}
		if recs[i].Stage1Score != recs[j].Stage1Score {
			return recs[i].Stage1Score > recs[j].Stage1Score
		}
		return recs[i].Job.ID < recs[j].Job.ID
	})
}
