package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

func TestScoreJobFamily_KeywordHit(t *testing.T) {
	cand := &types.CandidateProfile{Titles: []string{"Senior Software Engineer"}}
	job := &types.JobPosting{Title: "Backend Developer", JobFamily: types.FamilySoftware}

	score := ScoreJobFamily(cand, job)

	assert.Equal(t, 100, score.Score)
}

func TestScoreJobFamily_AnyTitleCanHit(t *testing.T) {
	cand := &types.CandidateProfile{Titles: []string{"Project Coordinator", "Data Analyst"}}
	job := &types.JobPosting{Title: "Data Scientist", JobFamily: types.FamilyData}

	assert.Equal(t, 100, ScoreJobFamily(cand, job).Score)
}

func TestScoreJobFamily_TitleOverlapFallback(t *testing.T) {
	cand := &types.CandidateProfile{Titles: []string{"Logistics Planner"}}
	job := &types.JobPosting{Title: "Demand Planner", JobFamily: ""}

	score := ScoreJobFamily(cand, job)

	// One shared token out of a union of three.
	assert.Greater(t, score.Score, 30)
	assert.Less(t, score.Score, 100)
}

func TestScoreJobFamily_FloorsAtThirty(t *testing.T) {
	cand := &types.CandidateProfile{Titles: []string{"Pastry Chef"}}
	job := &types.JobPosting{Title: "Backend Developer", JobFamily: types.FamilySoftware}

	assert.Equal(t, 30, ScoreJobFamily(cand, job).Score)
}
