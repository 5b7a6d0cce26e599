package matching

import (
	"fmt"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// industryGroups is the fixed grouping dictionary: industries in the same
// group are considered adjacent and earn partial credit.
var industryGroups = map[string][]string{
	"technology":   {"software", "information technology", "it", "internet", "saas", "technology", "telecommunications", "cybersecurity"},
	"finance":      {"banking", "finance", "financial services", "insurance", "fintech", "asset management", "investment"},
	"healthcare":   {"healthcare", "pharmaceutical", "biotech", "medical", "hospital", "life sciences"},
	"commerce":     {"retail", "e-commerce", "ecommerce", "consumer goods", "fmcg", "wholesale"},
	"industrial":   {"manufacturing", "engineering", "construction", "logistics", "automotive", "energy", "oil and gas"},
	"services":     {"consulting", "professional services", "legal", "accounting", "outsourcing"},
	"public":       {"government", "public sector", "education", "non-profit", "nonprofit"},
	"media":        {"media", "advertising", "entertainment", "gaming", "publishing"},
	"hospitality":  {"hospitality", "travel", "tourism", "food and beverage", "aviation"},
	"real_estate":  {"real estate", "property", "facilities"},
}

// industryGroup returns the group an industry string belongs to, or "".
func industryGroup(industry string) string {
	lower := strings.ToLower(strings.TrimSpace(industry))
	if lower == "" {
		return ""
	}
	for group, members := range industryGroups {
		for _, member := range members {
			if strings.Contains(lower, member) || strings.Contains(member, lower) {
				return group
			}
		}
	}
	return ""
}

// ScoreIndustry scores the posting's industry against the candidate's
// industry history: exact containment scores 100 with a +20 company-tier
// bonus (capped at 100), same-group adjacency scores up to 42, anything else
// floors at 30.
func ScoreIndustry(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	if job.Industry == "" || len(cand.Industries) == 0 {
		return types.DimensionScore{
			Score:  45,
			Reason: "industry information incomplete on one side; treated as neutral",
		}
	}

	tierBonus := 0
	for _, tier := range cand.CompanyTiers {
		if job.CompanyTier != "" && strings.EqualFold(tier, job.CompanyTier) {
			tierBonus = 20
			break
		}
	}

	for _, industry := range cand.Industries {
		if containsEither(industry, job.Industry) {
			return types.DimensionScore{
				Score:   clampScore(100 + tierBonus),
				Reason:  fmt.Sprintf("direct industry match on %q", job.Industry),
				Matched: []string{industry},
			}
		}
	}

	jobGroup := industryGroup(job.Industry)
	if jobGroup != "" {
		for _, industry := range cand.Industries {
			if industryGroup(industry) == jobGroup {
				return types.DimensionScore{
					Score:   42,
					Reason:  fmt.Sprintf("adjacent industries within the %s group", jobGroup),
					Matched: []string{industry},
				}
			}
		}
	}

	return types.DimensionScore{
		Score:  30,
		Reason: "no industry overlap; floored",
	}
}
