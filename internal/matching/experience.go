package matching

import (
	"fmt"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// experienceLevelThresholds maps experience-level keywords to the minimum
// years of experience they conventionally imply, checked in order so the most
// demanding keyword present wins.
var experienceLevelThresholds = []struct {
	keyword  string
	minYears int
}{
	{"principal", 10},
	{"staff", 10},
	{"director", 10},
	{"lead", 8},
	{"manager", 8},
	{"senior", 6},
	{"mid", 3},
	{"intermediate", 3},
	{"junior", 0},
	{"entry", 0},
	{"fresh", 0},
	{"graduate", 0},
}

// ScoreExperience scores the candidate's years of experience against the
// posting. A numeric [min,max] requirement scores 100 inside the range, loses
// 15 points per year of deficit (deduction capped at 50) and 10 per year of
// excess (capped at 40). Postings without a numeric range fall back to
// keyword thresholds on the experience-level text.
func ScoreExperience(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	years := cand.ExperienceYears

	if r := job.ExperienceYears; r != nil && r.Max >= r.Min && r.Max > 0 {
		switch {
		case years >= r.Min && years <= r.Max:
			return types.DimensionScore{
				Score:  100,
				Reason: fmt.Sprintf("%d years of experience falls inside the required %d-%d range", years, r.Min, r.Max),
			}
		case years < r.Min:
			deficit := r.Min - years
			deduction := min(deficit*15, 50)
			return types.DimensionScore{
				Score:  clampScore(100 - deduction),
				Reason: fmt.Sprintf("%d years short of the required minimum of %d", deficit, r.Min),
			}
		default:
			excess := years - r.Max
			deduction := min(excess*10, 40)
			return types.DimensionScore{
				Score:  clampScore(100 - deduction),
				Reason: fmt.Sprintf("%d years beyond the stated maximum of %d", excess, r.Max),
			}
		}
	}

	level := strings.ToLower(job.ExperienceLevel)
	if strings.TrimSpace(level) == "" {
		return types.DimensionScore{
			Score:  50,
			Reason: "posting states no experience requirement; treated as neutral",
		}
	}

	for _, threshold := range experienceLevelThresholds {
		if !strings.Contains(level, threshold.keyword) {
			continue
		}
		if years >= threshold.minYears {
			return types.DimensionScore{
				Score:  90,
				Reason: fmt.Sprintf("%d years of experience meets the %q level", years, job.ExperienceLevel),
			}
		}
		deficit := threshold.minYears - years
		deduction := min(deficit*15, 50)
		return types.DimensionScore{
			Score:  clampScore(90 - deduction),
			Reason: fmt.Sprintf("roughly %d years short of the %q level", deficit, job.ExperienceLevel),
		}
	}

	return types.DimensionScore{
		Score:  50,
		Reason: "experience requirement could not be interpreted; treated as neutral",
	}
}
