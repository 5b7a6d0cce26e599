// Package narrative turns a score breakdown into a human-readable match
// narrative and actionable gap analysis.
package narrative

import (
	"fmt"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// Thresholds for classifying a dimension as a strength or a concern.
const (
	strengthThreshold     = 70
	highStrengthThreshold = 80 // experience and job family must clear a higher bar
	concernThreshold      = 50
)

// dimensionLabels maps internal dimension names to reader-facing phrases.
var dimensionLabels = map[string]string{
	"title":         "job title alignment",
	"salary":        "salary expectations",
	"skills":        "skill coverage",
	"experience":    "experience level",
	"education":     "education background",
	"certification": "certifications",
	"job_family":    "occupational discipline",
	"work_prefs":    "work arrangement preferences",
	"industry":      "industry background",
	"leadership":    "leadership fit",
}

// BuildNarrative classifies the breakdown's dimensions into strengths and
// concerns and buckets the mean dimension score into an overall assessment.
func BuildNarrative(breakdown *types.RecommendationBreakdown, job *types.JobPosting) types.MatchNarrative {
	var strengths, concerns []string

	for _, dim := range breakdown.Dimensions() {
		threshold := strengthThreshold
		if dim.Name == "experience" || dim.Name == "job_family" {
			threshold = highStrengthThreshold
		}
		if dim.Score.Score >= threshold {
			strengths = append(strengths, fmt.Sprintf("Strong %s: %s", dimensionLabels[dim.Name], dim.Score.Reason))
		}
	}

	for _, name := range []string{"skills", "experience", "salary"} {
		if dim := findDimension(breakdown, name); dim.Score < concernThreshold {
			concerns = append(concerns, fmt.Sprintf("Weak %s: %s", dimensionLabels[name], dim.Reason))
		}
	}
	if len(job.EducationReq) > 0 && breakdown.Education.Score < concernThreshold {
		concerns = append(concerns, fmt.Sprintf("Weak %s: %s", dimensionLabels["education"], breakdown.Education.Reason))
	}

	return types.MatchNarrative{
		Strengths:         strengths,
		Concerns:          concerns,
		OverallAssessment: overallAssessment(breakdown),
	}
}

// overallAssessment buckets the mean dimension score into a 4-level verdict.
func overallAssessment(breakdown *types.RecommendationBreakdown) string {
	dims := breakdown.Dimensions()
	total := 0
	for _, dim := range dims {
		total += dim.Score.Score
	}
	mean := float64(total) / float64(len(dims))

	switch {
	case mean >= 80:
		return "Excellent match: the candidate aligns with this role across nearly every dimension."
	case mean >= 65:
		return "Good match: the candidate fits this role well with a few areas to strengthen."
	case mean >= 50:
		return "Moderate match: the role is reachable but several dimensions need work."
	default:
		return "Weak match: significant gaps across multiple dimensions."
	}
}

func findDimension(breakdown *types.RecommendationBreakdown, name string) types.DimensionScore {
	for _, dim := range breakdown.Dimensions() {
		if dim.Name == name {
			return dim.Score
		}
	}
	return types.DimensionScore{}
}
