package matching

import (
	"fmt"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// Keyword buckets for inferring a posting's leadership level from its title
// and description, checked from most to least senior.
var (
	leadPlusKeywords = []string{"head of", "director", "vice president", "vp of", "chief", "cto", "ceo", "coo", "general manager", "managing director"}
	leadKeywords     = []string{"team lead", "tech lead", "engineering manager", "manager", "supervisor", "lead a team", "people management"}
	icKeywords       = []string{"individual contributor", "engineer", "developer", "analyst", "specialist", "consultant", "designer", "scientist"}
)

// InferLeadershipLevel infers a posting's leadership level from its title and
// description. Returns false when no keyword bucket matches.
func InferLeadershipLevel(job *types.JobPosting) (types.LeadershipLevel, bool) {
	if job.LeadershipLevel != nil {
		return *job.LeadershipLevel, true
	}

	text := strings.ToLower(job.Title + " " + job.Description)
	for _, kw := range leadPlusKeywords {
		if strings.Contains(text, kw) {
			return types.LeadershipTeamLeadPlus, true
		}
	}
	for _, kw := range leadKeywords {
		if strings.Contains(text, kw) {
			return types.LeadershipTeamLead, true
		}
	}
	for _, kw := range icKeywords {
		if strings.Contains(text, kw) {
			return types.LeadershipIC, true
		}
	}
	return "", false
}

// leadershipMatrix maps (candidate level, job level) to a score. A step up is
// a promotion and stays strong; a step down is penalized, two steps down
// heavily so.
var leadershipMatrix = map[types.LeadershipLevel]map[types.LeadershipLevel]int{
	types.LeadershipIC: {
		types.LeadershipIC:           100,
		types.LeadershipTeamLead:     70,
		types.LeadershipTeamLeadPlus: 50,
	},
	types.LeadershipTeamLead: {
		types.LeadershipIC:           40,
		types.LeadershipTeamLead:     100,
		types.LeadershipTeamLeadPlus: 80,
	},
	types.LeadershipTeamLeadPlus: {
		types.LeadershipIC:           20,
		types.LeadershipTeamLead:     20,
		types.LeadershipTeamLeadPlus: 100,
	},
}

// ScoreLeadership scores the candidate's leadership level against the
// posting's (stated or inferred) level using a fixed matrix. An uninferrable
// job level is treated as neutral.
func ScoreLeadership(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	candLevel := cand.LeadershipLevel
	if candLevel == "" {
		candLevel = types.LeadershipIC
		if cand.Management != nil && cand.Management.HasManagement {
			candLevel = types.LeadershipTeamLead
		}
	}

	jobLevel, ok := InferLeadershipLevel(job)
	if !ok {
		return types.DimensionScore{
			Score:  75,
			Reason: "posting leadership level could not be inferred; treated as neutral",
		}
	}

	row, ok := leadershipMatrix[candLevel]
	if !ok {
		return types.DimensionScore{
			Score:  50,
			Reason: fmt.Sprintf("unrecognized candidate leadership level %q", candLevel),
		}
	}
	score, ok := row[jobLevel]
	if !ok {
		return types.DimensionScore{
			Score:  50,
			Reason: fmt.Sprintf("unrecognized job leadership level %q", jobLevel),
		}
	}

	return types.DimensionScore{
		Score:  score,
		Reason: fmt.Sprintf("candidate level %s against job level %s", candLevel, jobLevel),
	}
}
