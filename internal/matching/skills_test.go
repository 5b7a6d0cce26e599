package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

func TestScoreSkills_AllRequiredMet(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{
			{Name: "Go", Level: 4},
			{Name: "Kubernetes", Level: 3},
		},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{
			{Name: "Go", Level: 3},
			{Name: "Kubernetes", Level: 3},
		},
	}

	score := ScoreSkills(cand, job)

	assert.Equal(t, 100, score.Score)
	assert.ElementsMatch(t, []string{"Go", "Kubernetes"}, score.Matched)
	assert.Empty(t, score.Missing)
}

func TestScoreSkills_LevelShortfallDeducts(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{
			{Name: "Go", Level: 4},
			{Name: "Python", Level: 2},
		},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{
			{Name: "Go", Level: 3},
			{Name: "Python", Level: 4},
		},
	}

	score := ScoreSkills(cand, job)

	// Go meets (100), Python is two levels short (60); average 80.
	assert.Equal(t, 80, score.Score)
	assert.Contains(t, score.Missing, "Python")
}

func TestScoreSkills_MissingSkillIsShortfallFromZero(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{{Name: "Go", Level: 4}},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{{Name: "Java", Level: 3}},
	}

	score := ScoreSkills(cand, job)

	// Three levels short of Java: 100 - 3*20 = 40.
	assert.Equal(t, 40, score.Score)
	assert.Equal(t, []string{"Java"}, score.Missing)
}

func TestScoreSkills_OptionalSkillBonus(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{
			{Name: "Python", Level: 2},
			{Name: "Docker", Level: 3},
		},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{{Name: "Python", Level: 4}},
		SkillsOptional: []string{"Docker", "Terraform"},
	}

	score := ScoreSkills(cand, job)

	// Base 60 for the under-leveled requirement, +20 for the held optional.
	assert.Equal(t, 80, score.Score)
	assert.Contains(t, score.Matched, "Docker")
}

func TestScoreSkills_BonusIsCappedAtHundred(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{
			{Name: "Go", Level: 5},
			{Name: "Docker", Level: 3},
			{Name: "Terraform", Level: 3},
		},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{{Name: "Go", Level: 3}},
		SkillsOptional: []string{"Docker", "Terraform"},
	}

	score := ScoreSkills(cand, job)

	assert.Equal(t, 100, score.Score)
}

func TestScoreSkills_CaseInsensitiveNames(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{{Name: "kubernetes", Level: 4}},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{{Name: "Kubernetes", Level: 3}},
	}

	assert.Equal(t, 100, ScoreSkills(cand, job).Score)
}

func TestScoreSkills_NoCandidateSkillsIsNeutral(t *testing.T) {
	cand := &types.CandidateProfile{}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{{Name: "Go", Level: 3}},
	}

	assert.Equal(t, 45, ScoreSkills(cand, job).Score)
}

func TestScoreSkills_FreeTextFallback(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{
			{Name: "Go", Level: 4},
			{Name: "Kubernetes", Level: 3},
			{Name: "Terraform", Level: 2},
		},
	}
	job := &types.JobPosting{
		Title:       "Platform Engineer",
		Description: "You will build services in Go and operate our Kubernetes clusters.",
	}

	score := ScoreSkills(cand, job)

	// Two of three skill names appear in the posting text.
	assert.Equal(t, 67, score.Score)
	assert.ElementsMatch(t, []string{"Go", "Kubernetes"}, score.Matched)
}

func TestScoreSkills_FreeTextWithEmptyPostingIsNeutral(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{{Name: "Go", Level: 4}},
	}
	job := &types.JobPosting{}

	assert.Equal(t, 45, ScoreSkills(cand, job).Score)
}

func TestSkillGaps_ListsMissingAndUnderLeveled(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{
			{Name: "Go", Level: 4},
			{Name: "Python", Level: 2},
		},
	}
	job := &types.JobPosting{
		SkillsRequired: []types.SkillRequirement{
			{Name: "Go", Level: 3},
			{Name: "Python", Level: 4},
			{Name: "Rust", Level: 2},
		},
	}

	gaps := SkillGaps(cand, job)

	assert.Len(t, gaps, 2)
	assert.Equal(t, types.SkillGap{Skill: "Python", CurrentLevel: 2, RequiredLevel: 4}, gaps[0])
	assert.Equal(t, types.SkillGap{Skill: "Rust", CurrentLevel: 0, RequiredLevel: 2}, gaps[1])
}

func TestSkillGaps_NilWithoutStructuredRequirements(t *testing.T) {
	cand := &types.CandidateProfile{
		Skills: []types.CandidateSkill{{Name: "Go", Level: 4}},
	}

	assert.Nil(t, SkillGaps(cand, &types.JobPosting{}))
}
