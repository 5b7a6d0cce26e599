package matching

import (
	"fmt"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// ScoreWorkPrefs combines a remote-policy sub-score and a job-type sub-score,
// each worth up to 50. Hybrid earns partial credit against either extreme.
// Unstated preferences score half credit on that sub-score.
func ScoreWorkPrefs(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	remote := remoteSubScore(cand.WorkPrefs.Remote, job.RemotePolicy)
	jobType := jobTypeSubScore(cand.WorkPrefs.JobType, job.JobType)

	return types.DimensionScore{
		Score:  clampScore(remote + jobType),
		Reason: fmt.Sprintf("work mode %d/50, employment type %d/50", remote, jobType),
	}
}

func remoteSubScore(pref, policy types.RemotePolicy) int {
	if pref == "" || policy == "" {
		return 25
	}
	if pref == policy {
		return 50
	}
	// Hybrid is adjacent to both extremes.
	if pref == types.RemoteHybrid || policy == types.RemoteHybrid {
		return 35
	}
	return 10
}

func jobTypeSubScore(pref, jobType types.JobType) int {
	if pref == "" || jobType == "" {
		return 25
	}
	if pref == jobType {
		return 50
	}
	return 15
}
