package types

// DimensionScore is one named 0-100 sub-score with a human-readable reason and
// auxiliary match detail for explanation and gap analysis.
type DimensionScore struct {
	Score   int      `json:"score"`
	Reason  string   `json:"reason"`
	Matched []string `json:"matched,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// RecommendationBreakdown carries the ten dimension scores plus the composite.
type RecommendationBreakdown struct {
	Title          DimensionScore `json:"title_match"`
	Salary         DimensionScore `json:"salary_match"`
	Skills         DimensionScore `json:"skills_match"`
	Experience     DimensionScore `json:"experience_match"`
	Education      DimensionScore `json:"education_match"`
	Certification  DimensionScore `json:"certification_match"`
	JobFamily      DimensionScore `json:"job_family_match"`
	WorkPrefs      DimensionScore `json:"work_prefs_match"`
	Industry       DimensionScore `json:"industry_match"`
	Leadership     DimensionScore `json:"leadership_match"`
	CompositeScore int            `json:"match_score"`
}

// Dimensions returns the ten dimension scores keyed by name, in a stable order.
func (b *RecommendationBreakdown) Dimensions() []NamedDimension {
	return []NamedDimension{
		{Name: "title", Score: b.Title},
		{Name: "salary", Score: b.Salary},
		{Name: "skills", Score: b.Skills},
		{Name: "experience", Score: b.Experience},
		{Name: "education", Score: b.Education},
		{Name: "certification", Score: b.Certification},
		{Name: "job_family", Score: b.JobFamily},
		{Name: "work_prefs", Score: b.WorkPrefs},
		{Name: "industry", Score: b.Industry},
		{Name: "leadership", Score: b.Leadership},
	}
}

// NamedDimension pairs a dimension name with its score for iteration.
type NamedDimension struct {
	Name  string
	Score DimensionScore
}

// MatchNarrative is the human-readable summary of a score breakdown.
type MatchNarrative struct {
	Strengths         []string `json:"strengths"`
	Concerns          []string `json:"concerns"`
	OverallAssessment string   `json:"overall_assessment"`
}

// SkillGap describes one skill the candidate is missing or under-leveled on.
type SkillGap struct {
	Skill         string `json:"skill"`
	CurrentLevel  int    `json:"current_level"`
	RequiredLevel int    `json:"required_level"`
	Action        string `json:"action"`
}

// GapAnalysis lists actionable gaps between the candidate and one posting.
type GapAnalysis struct {
	SkillGaps         []SkillGap `json:"skill_gaps"`
	ExperienceGap     string     `json:"experience_gap,omitempty"`
	EducationGaps     []string   `json:"education_gaps,omitempty"`
	CertificationGaps []string   `json:"certification_gaps,omitempty"`
	InterviewPrep     []string   `json:"interview_prep"`
}

// LLMAnalysis is the per-job output of the stage-2 model call.
type LLMAnalysis struct {
	FinalScore             int      `json:"final_score"`
	MatchingReasons        []string `json:"matching_reasons"`
	NonMatchingPoints      []string `json:"non_matching_points"`
	KeyHighlights          []string `json:"key_highlights"`
	PersonalizedAssessment string   `json:"personalized_assessment"`
	CareerImpact           string   `json:"career_impact"`
}

// JobRecommendation is a stage-1 (rule-based) recommendation.
type JobRecommendation struct {
	Job       JobPosting              `json:"job"`
	Breakdown RecommendationBreakdown `json:"breakdown"`
	Narrative MatchNarrative          `json:"narrative"`
	Gaps      GapAnalysis             `json:"gap_analysis"`
}

// AdvancedRecommendation is a stage-2 recommendation: the stage-1 result
// enriched with the model's analysis. Stage2Score mirrors LLM.FinalScore and
// becomes the effective match score; Stage1Score preserves the rule-based
// composite for auditability.
type AdvancedRecommendation struct {
	JobRecommendation
	Stage1Score int         `json:"stage1_score"`
	Stage2Score int         `json:"stage2_score"`
	LLM         LLMAnalysis `json:"llm_analysis"`
}
