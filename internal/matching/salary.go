package matching

import (
	"fmt"
	"math"

	"github.com/StevenSLXie/talyon-sub000/internal/currency"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// ScoreSalary compares the posting's salary range against the candidate's
// expectation, converting the job's currency into the candidate's first.
// Overlapping ranges score 60-100 (proportional to overlap ratio plus up to
// +10 for midpoint alignment); non-overlapping ranges score 0-45, inversely
// proportional to the gap. A job paying above the candidate's range decays
// more gently than one paying below it.
func ScoreSalary(cand *types.CandidateProfile, job *types.JobPosting, rates currency.Table) types.DimensionScore {
	if cand.SalaryRangeMax <= 0 || job.SalaryHigh <= 0 {
		return types.DimensionScore{
			Score:  50,
			Reason: "salary information incomplete on one side; treated as neutral",
		}
	}

	candLow := float64(cand.SalaryRangeMin)
	candHigh := float64(cand.SalaryRangeMax)
	jobLow := rates.Convert(float64(job.SalaryLow), job.SalaryCurrency(), cand.Currency())
	jobHigh := rates.Convert(float64(job.SalaryHigh), job.SalaryCurrency(), cand.Currency())

	overlapLow := math.Max(candLow, jobLow)
	overlapHigh := math.Min(candHigh, jobHigh)

	if overlapHigh >= overlapLow {
		span := math.Min(candHigh-candLow, jobHigh-jobLow)
		ratio := 1.0
		if span > 0 {
			ratio = math.Min((overlapHigh-overlapLow)/span, 1.0)
		}
		base := 60 + 30*ratio

		// Midpoint alignment bonus, up to +10 when the range centers coincide.
		candMid := (candLow + candHigh) / 2
		jobMid := (jobLow + jobHigh) / 2
		bonus := 0.0
		if candMid > 0 {
			drift := math.Abs(candMid-jobMid) / candMid
			bonus = 10 * (1 - math.Min(drift/0.25, 1.0))
		}

		score := clampScore(int(math.Round(base + bonus)))
		return types.DimensionScore{
			Score:  score,
			Reason: fmt.Sprintf("salary ranges overlap (%.0f%% of the narrower range)", ratio*100),
		}
	}

	if jobLow > candHigh {
		// Job pays above the candidate's stated range.
		gap := (jobLow - candHigh) / candHigh
		score := clampScore(int(math.Round(45 * (1 - math.Min(gap/0.6, 1.0)))))
		return types.DimensionScore{
			Score:  score,
			Reason: fmt.Sprintf("job salary range is %.0f%% above the candidate's expectation", gap*100),
		}
	}

	// Job pays below the candidate's minimum; decays faster.
	gap := (candLow - jobHigh) / candLow
	score := clampScore(int(math.Round(40 * (1 - math.Min(gap/0.4, 1.0)))))
	return types.DimensionScore{
		Score:  score,
		Reason: fmt.Sprintf("job salary range is %.0f%% below the candidate's expectation", gap*100),
	}
}

// salaryShortfallPenalty is the additive deduction applied in aggregation when
// the job's maximum salary falls below the candidate's minimum expectation.
func salaryShortfallPenalty(cand *types.CandidateProfile, job *types.JobPosting, rates currency.Table) int {
	if cand.SalaryRangeMin <= 0 || job.SalaryHigh <= 0 {
		return 0
	}
	candMin := float64(cand.SalaryRangeMin)
	jobMax := rates.Convert(float64(job.SalaryHigh), job.SalaryCurrency(), cand.Currency())
	if jobMax >= candMin {
		return 0
	}

	shortfall := (candMin - jobMax) / candMin
	switch {
	case shortfall > 0.30:
		return 50
	case shortfall > 0.20:
		return 30
	case shortfall > 0.10:
		return 15
	default:
		return 5
	}
}

// clampScore bounds a dimension or composite score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
