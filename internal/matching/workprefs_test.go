package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

func TestScoreWorkPrefs_FullAlignment(t *testing.T) {
	cand := &types.CandidateProfile{
		WorkPrefs: types.WorkPrefs{Remote: types.RemoteHybrid, JobType: types.JobTypePermanent},
	}
	job := &types.JobPosting{RemotePolicy: types.RemoteHybrid, JobType: types.JobTypePermanent}

	assert.Equal(t, 100, ScoreWorkPrefs(cand, job).Score)
}

func TestScoreWorkPrefs_HybridAdjacency(t *testing.T) {
	cand := &types.CandidateProfile{
		WorkPrefs: types.WorkPrefs{Remote: types.RemoteHybrid, JobType: types.JobTypePermanent},
	}
	job := &types.JobPosting{RemotePolicy: types.RemoteOnsite, JobType: types.JobTypePermanent}

	// 35 for the adjacent work mode plus 50 for the matching job type.
	assert.Equal(t, 85, ScoreWorkPrefs(cand, job).Score)
}

func TestScoreWorkPrefs_OpposedExtremes(t *testing.T) {
	cand := &types.CandidateProfile{
		WorkPrefs: types.WorkPrefs{Remote: types.RemoteFull, JobType: types.JobTypeContract},
	}
	job := &types.JobPosting{RemotePolicy: types.RemoteOnsite, JobType: types.JobTypePermanent}

	// 10 for the opposed work mode plus 15 for the mismatched job type.
	assert.Equal(t, 25, ScoreWorkPrefs(cand, job).Score)
}

func TestScoreWorkPrefs_UnstatedPreferencesScoreHalf(t *testing.T) {
	cand := &types.CandidateProfile{}
	job := &types.JobPosting{RemotePolicy: types.RemoteHybrid, JobType: types.JobTypePermanent}

	assert.Equal(t, 50, ScoreWorkPrefs(cand, job).Score)
}
