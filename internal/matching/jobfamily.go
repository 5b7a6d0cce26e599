package matching

import (
	"fmt"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/titles"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// familyKeywords is the fixed keyword set per job family. A candidate title
// containing any keyword of the posting's family is a full discipline match.
var familyKeywords = map[types.JobFamily][]string{
	types.FamilySoftware:   {"software", "engineer", "developer", "programmer", "backend", "frontend", "fullstack", "full-stack", "mobile", "ios", "android"},
	types.FamilyData:       {"data", "analytics", "scientist", "machine learning", "ml", "ai", "statistician"},
	types.FamilyProduct:    {"product", "pm", "owner"},
	types.FamilyDesign:     {"design", "designer", "ux", "ui", "creative"},
	types.FamilyDevOps:     {"devops", "sre", "infrastructure", "platform", "reliability", "cloud"},
	types.FamilyQA:         {"qa", "quality", "test", "tester", "sdet"},
	types.FamilySales:      {"sales", "account", "business development", "pre-sales"},
	types.FamilyMarketing:  {"marketing", "growth", "brand", "content", "seo"},
	types.FamilyFinance:    {"finance", "accountant", "accounting", "treasury", "audit", "analyst"},
	types.FamilyHR:         {"hr", "human resources", "talent", "recruiter", "recruitment", "people"},
	types.FamilyOperations: {"operations", "ops", "supply chain", "logistics", "procurement"},
}

// ScoreJobFamily checks whether the candidate's titles place them in the
// posting's occupational discipline. A keyword hit scores 100; otherwise the
// best title token overlap is used, floored at 30.
func ScoreJobFamily(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	keywords := familyKeywords[job.JobFamily]

	if len(keywords) > 0 {
		for _, title := range cand.Titles {
			lower := strings.ToLower(title)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					return types.DimensionScore{
						Score:   100,
						Reason:  fmt.Sprintf("title %q matches the %s family keyword %q", title, job.JobFamily, kw),
						Matched: []string{kw},
					}
				}
			}
		}
	}

	best := 0
	var bestCommon []string
	for _, title := range cand.Titles {
		if score, common := titles.Similarity(title, job.Title); score > best {
			best = score
			bestCommon = common
		}
	}

	if best < 30 {
		return types.DimensionScore{
			Score:  30,
			Reason: "no discipline keyword or title overlap; floored",
		}
	}
	return types.DimensionScore{
		Score:   best,
		Reason:  fmt.Sprintf("title token overlap with %q", job.Title),
		Matched: bestCommon,
	}
}
