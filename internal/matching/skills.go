package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

const (
	skillShortfallPenalty = 20 // per level below the required proficiency
	optionalSkillBonus    = 20 // flat, per optional skill the candidate holds
)

// ScoreSkills scores the candidate's skills against the posting's structured
// requirements. Each required skill earns full credit when the candidate's
// level meets it and loses 20 points per level of shortfall (a missing skill
// is a shortfall from level 0). Each optional skill held adds a flat bonus.
// Postings without structured skill lists fall back to matching candidate
// skill names against the free-text description.
func ScoreSkills(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	if len(cand.Skills) == 0 {
		return types.DimensionScore{
			Score:  45,
			Reason: "candidate profile lists no skills; treated as neutral",
		}
	}

	if len(job.SkillsRequired) == 0 && len(job.SkillsOptional) == 0 {
		return scoreSkillsFreeText(cand, job)
	}

	levels := cand.SkillLevels()

	var matched, missing []string
	total := 0
	reqMet := 0
	for _, req := range job.SkillsRequired {
		have := levels[strings.ToLower(strings.TrimSpace(req.Name))]
		if have >= req.Level {
			total += 100
			reqMet++
			matched = append(matched, req.Name)
			continue
		}
		shortfall := req.Level - have
		total += clampScore(100 - shortfall*skillShortfallPenalty)
		missing = append(missing, req.Name)
	}

	base := 100
	if len(job.SkillsRequired) > 0 {
		base = total / len(job.SkillsRequired)
	}

	optHeld := 0
	for _, opt := range job.SkillsOptional {
		if _, ok := levels[strings.ToLower(strings.TrimSpace(opt))]; ok {
			optHeld++
			matched = append(matched, opt)
		}
	}

	score := clampScore(base + optHeld*optionalSkillBonus)
	reason := fmt.Sprintf("%d of %d required skills met", reqMet, len(job.SkillsRequired))
	if optHeld > 0 {
		reason += fmt.Sprintf(", %d optional skills held", optHeld)
	}

	return types.DimensionScore{Score: score, Reason: reason, Matched: matched, Missing: missing}
}

// scoreSkillsFreeText matches candidate skill names as substrings of the
// posting's description and scores the matched fraction.
func scoreSkillsFreeText(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	text := strings.ToLower(job.Title + " " + job.Description)
	if strings.TrimSpace(text) == "" {
		return types.DimensionScore{
			Score:  45,
			Reason: "posting has no skill requirements or description; treated as neutral",
		}
	}

	var matched []string
	for _, s := range cand.Skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name != "" && strings.Contains(text, name) {
			matched = append(matched, s.Name)
		}
	}

	score := clampScore(int(math.Round(float64(len(matched)) / float64(len(cand.Skills)) * 100)))
	return types.DimensionScore{
		Score:   score,
		Reason:  fmt.Sprintf("%d of %d candidate skills mentioned in the posting text", len(matched), len(cand.Skills)),
		Matched: matched,
	}
}

// SkillGaps lists required skills the candidate is missing or under-leveled
// on, for gap analysis. Returns nil when the posting has no structured
// requirements.
func SkillGaps(cand *types.CandidateProfile, job *types.JobPosting) []types.SkillGap {
	if len(job.SkillsRequired) == 0 {
		return nil
	}
	levels := cand.SkillLevels()

	var gaps []types.SkillGap
	for _, req := range job.SkillsRequired {
		have := levels[strings.ToLower(strings.TrimSpace(req.Name))]
		if have >= req.Level {
			continue
		}
		gaps = append(gaps, types.SkillGap{
			Skill:         req.Name,
			CurrentLevel:  have,
			RequiredLevel: req.Level,
		})
	}
	return gaps
}
