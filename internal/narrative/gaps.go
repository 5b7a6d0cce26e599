package narrative

import (
	"fmt"

	"github.com/StevenSLXie/talyon-sub000/internal/matching"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// Two generic interview tips appended to every prep list.
var genericPrepTips = []string{
	"Prepare concrete examples with measurable outcomes for each claimed skill.",
	"Research the company's recent products and news before the interview.",
}

// BuildGapAnalysis derives actionable gaps from the scorers' output: leveled
// skill gaps with an action keyed to the size of the gap, an experience gap
// when the posting states a numeric minimum the candidate misses, and
// templated education/certification gaps.
func BuildGapAnalysis(cand *types.CandidateProfile, job *types.JobPosting, breakdown *types.RecommendationBreakdown) types.GapAnalysis {
	gaps := types.GapAnalysis{}

	for _, gap := range matching.SkillGaps(cand, job) {
		gap.Action = skillGapAction(gap)
		gaps.SkillGaps = append(gaps.SkillGaps, gap)
	}

	if r := job.ExperienceYears; r != nil && cand.ExperienceYears < r.Min {
		gaps.ExperienceGap = fmt.Sprintf(
			"The role asks for at least %d years of experience; the candidate has %d. Target roles closer to the current level or highlight equivalent scope.",
			r.Min, cand.ExperienceYears)
	}

	for _, missing := range breakdown.Education.Missing {
		gaps.EducationGaps = append(gaps.EducationGaps,
			fmt.Sprintf("Missing education requirement: %s. Consider a part-time qualification or emphasize equivalent practical experience.", missing))
	}
	for _, missing := range breakdown.Certification.Missing {
		gaps.CertificationGaps = append(gaps.CertificationGaps,
			fmt.Sprintf("Missing certification: %s. Obtaining it would directly satisfy a stated requirement.", missing))
	}

	gaps.InterviewPrep = buildInterviewPrep(breakdown)
	return gaps
}

// skillGapAction keys the recommended action to the size of the level gap.
func skillGapAction(gap types.SkillGap) string {
	switch gap.RequiredLevel - gap.CurrentLevel {
	case 1:
		return fmt.Sprintf("Take a targeted course to raise %s from level %d to %d.", gap.Skill, gap.CurrentLevel, gap.RequiredLevel)
	case 2:
		return fmt.Sprintf("Work through a structured program and a practice project to close the two-level gap in %s.", gap.Skill)
	default:
		return fmt.Sprintf("The gap in %s is substantial (%d levels); reconsider fit or plan a longer-term transition.", gap.Skill, gap.RequiredLevel-gap.CurrentLevel)
	}
}

// buildInterviewPrep templates tips from which dimensions scored well or
// poorly, then appends the fixed generic tips.
func buildInterviewPrep(breakdown *types.RecommendationBreakdown) []string {
	var tips []string

	if breakdown.Skills.Score >= strengthThreshold && len(breakdown.Skills.Matched) > 0 {
		tips = append(tips, fmt.Sprintf("Lead with your matched skills (%s); they are this application's strongest card.",
			joinFirst(breakdown.Skills.Matched, 3)))
	} else if breakdown.Skills.Score < concernThreshold {
		tips = append(tips, "Expect probing questions on the required skills you lack; prepare honest answers with a learning plan.")
	}

	if breakdown.Experience.Score < concernThreshold {
		tips = append(tips, "Be ready to explain how your experience, though shorter, covers the scope the role demands.")
	}
	if breakdown.Leadership.Score < concernThreshold {
		tips = append(tips, "Prepare examples of leadership or ownership even outside formal management roles.")
	}
	if breakdown.Salary.Score < concernThreshold {
		tips = append(tips, "Clarify compensation expectations early; the posted range sits outside your stated band.")
	}

	return append(tips, genericPrepTips...)
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
