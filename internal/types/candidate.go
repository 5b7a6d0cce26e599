// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// LeadershipLevel is the closed set of leadership levels a candidate or job can hold.
type LeadershipLevel string

// Leadership level constants, ordered by scope of responsibility.
const (
	// LeadershipIC is an individual contributor with no direct reports.
	LeadershipIC LeadershipLevel = "ic"
	// LeadershipTeamLead leads a single team.
	LeadershipTeamLead LeadershipLevel = "team_lead"
	// LeadershipTeamLeadPlus leads managers or multiple teams.
	LeadershipTeamLeadPlus LeadershipLevel = "team_lead_plus"
)

// CandidateSkill represents one skill on a candidate profile with a 1-5 proficiency level.
type CandidateSkill struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"min=1,max=5"`
	LastUsed string `json:"last_used,omitempty"` // "YYYY-MM" or empty
	Evidence string `json:"evidence,omitempty"`
}

// CandidateEducation represents one education record.
type CandidateEducation struct {
	Degree      string `json:"degree,omitempty"` // e.g. bachelor, master, phd
	Major       string `json:"major,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// CandidateCertification represents one certification held by the candidate.
type CandidateCertification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
}

// WorkAuth captures the candidate's work authorization status.
type WorkAuth struct {
	CitizenOrPR    bool   `json:"citizen_or_pr"`
	EPNeeded       bool   `json:"ep_needed"`
	WorkPermitType string `json:"work_permit_type,omitempty"`
}

// WorkPrefs captures the candidate's work-mode and employment-type preferences.
type WorkPrefs struct {
	Remote  RemotePolicy `json:"remote,omitempty"`   // preferred remote policy
	JobType JobType      `json:"job_type,omitempty"` // preferred employment type
}

// ManagementExperience captures evidence of people management.
type ManagementExperience struct {
	HasManagement      bool     `json:"has_management"`
	DirectReportsCount int      `json:"direct_reports_count,omitempty"`
	TeamSizeRange      string   `json:"team_size_range,omitempty"`
	ManagementYears    int      `json:"management_years,omitempty"`
	Evidence           []string `json:"evidence,omitempty"`
}

// CandidateProfile represents a structured candidate built once per request by
// an upstream collaborator. It is treated as immutable during a scoring pass.
type CandidateProfile struct {
	Titles             []string                 `json:"titles" validate:"required,min=1"`
	Skills             []CandidateSkill         `json:"skills,omitempty" validate:"dive"`
	ExperienceYears    int                      `json:"experience_years" validate:"min=0"`
	SalaryRangeMin     int                      `json:"salary_range_min" validate:"min=0"`
	SalaryRangeMax     int                      `json:"salary_range_max" validate:"min=0"`
	SalaryCurrency     string                   `json:"salary_currency,omitempty"` // ISO code, defaults to SGD
	Industries         []string                 `json:"industries,omitempty"`
	Education          []CandidateEducation     `json:"education,omitempty"`
	Certifications     []CandidateCertification `json:"certifications,omitempty"`
	CompanyTiers       []string                 `json:"company_tiers,omitempty"`
	WorkAuth           WorkAuth                 `json:"work_auth"`
	WorkPrefs          WorkPrefs                `json:"work_prefs"`
	BlacklistCompanies []string                 `json:"blacklist_companies,omitempty"`
	LeadershipLevel    LeadershipLevel          `json:"leadership_level,omitempty"`
	Management         *ManagementExperience    `json:"management_experience,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SkillLevels returns a map from lowercased skill name to proficiency level.
func (p *CandidateProfile) SkillLevels() map[string]int {
	levels := make(map[string]int, len(p.Skills))
	for _, s := range p.Skills {
		levels[normalizeKey(s.Name)] = s.Level
	}
	return levels
}

// Currency returns the candidate's salary currency, defaulting to SGD.
func (p *CandidateProfile) Currency() string {
	if p.SalaryCurrency == "" {
		return "SGD"
	}
	return p.SalaryCurrency
}
