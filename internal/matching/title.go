package matching

import (
	"fmt"

	"github.com/StevenSLXie/talyon-sub000/internal/titles"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// ScoreTitle takes the best normalized token overlap between any candidate
// title and the posting's title.
func ScoreTitle(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	if len(cand.Titles) == 0 || job.Title == "" {
		return types.DimensionScore{
			Score:  40,
			Reason: "title information incomplete on one side; treated as neutral",
		}
	}

	best := 0
	var bestTitle string
	var bestCommon []string
	for _, title := range cand.Titles {
		score, common := titles.Similarity(title, job.Title)
		if score > best || bestTitle == "" {
			best = score
			bestTitle = title
			bestCommon = common
		}
	}

	return types.DimensionScore{
		Score:   best,
		Reason:  fmt.Sprintf("best overlap between %q and %q", bestTitle, job.Title),
		Matched: bestCommon,
	}
}
