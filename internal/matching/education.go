package matching

import (
	"fmt"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// ScoreEducation scores education requirements by taking the best partial
// match per requirement and averaging: degree or major containment counts as
// a full match, an institution-only match counts 60. Postings with no
// education requirements score 100.
func ScoreEducation(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	if len(job.EducationReq) == 0 {
		return types.DimensionScore{Score: 100, Reason: "no education requirements"}
	}
	if len(cand.Education) == 0 {
		return types.DimensionScore{
			Score:  45,
			Reason: "candidate profile lists no education; treated as neutral",
		}
	}

	total := 0
	var missing []string
	for _, req := range job.EducationReq {
		best := 0
		for _, edu := range cand.Education {
			if score := educationMatch(&req, &edu); score > best {
				best = score
			}
		}
		if best == 0 {
			missing = append(missing, describeEducationReq(&req))
		}
		total += best
	}

	score := total / len(job.EducationReq)
	return types.DimensionScore{
		Score:   clampScore(score),
		Reason:  fmt.Sprintf("best match across %d education requirements", len(job.EducationReq)),
		Missing: missing,
	}
}

// educationMatch returns the partial-match score of one candidate record
// against one requirement.
func educationMatch(req *types.EducationRequirement, edu *types.CandidateEducation) int {
	if containsEither(edu.Degree, req.Degree) || containsEither(edu.Major, req.Major) {
		return 100
	}
	if containsEither(edu.Institution, req.Institution) {
		return 60
	}
	return 0
}

func describeEducationReq(req *types.EducationRequirement) string {
	parts := make([]string, 0, 3)
	if req.Degree != "" {
		parts = append(parts, req.Degree)
	}
	if req.Major != "" {
		parts = append(parts, req.Major)
	}
	if req.Institution != "" {
		parts = append(parts, req.Institution)
	}
	return strings.Join(parts, " in ")
}

// ScoreCertification scores certification requirements analogously: name
// containment is a full match, issuer-only counts 70, averaged across
// requirements. Postings with no certification requirements score 100.
func ScoreCertification(cand *types.CandidateProfile, job *types.JobPosting) types.DimensionScore {
	if len(job.CertReq) == 0 {
		return types.DimensionScore{Score: 100, Reason: "no certification requirements"}
	}
	if len(cand.Certifications) == 0 {
		return types.DimensionScore{
			Score:  45,
			Reason: "candidate profile lists no certifications; treated as neutral",
		}
	}

	total := 0
	var missing []string
	for _, req := range job.CertReq {
		best := 0
		for _, cert := range cand.Certifications {
			if containsEither(cert.Name, req.Name) {
				best = 100
				break
			}
			if containsEither(cert.Issuer, req.Issuer) && best < 70 {
				best = 70
			}
		}
		if best == 0 {
			missing = append(missing, req.Name)
		}
		total += best
	}

	score := total / len(job.CertReq)
	return types.DimensionScore{
		Score:   clampScore(score),
		Reason:  fmt.Sprintf("best match across %d certification requirements", len(job.CertReq)),
		Missing: missing,
	}
}

// containsEither reports case-insensitive substring containment in either
// direction between two non-empty strings.
func containsEither(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
