package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RemotePolicy is the closed set of work-mode policies.
type RemotePolicy string

// Remote policy constants.
const (
	RemoteOnsite RemotePolicy = "onsite"
	RemoteHybrid RemotePolicy = "hybrid"
	RemoteFull   RemotePolicy = "remote"
)

// JobType is the closed set of employment types.
type JobType string

// Job type constants.
const (
	JobTypePermanent JobType = "permanent"
	JobTypeContract  JobType = "contract"
)

// JobFamily is the closed set of occupational disciplines a posting can belong to.
type JobFamily string

// Job family constants.
const (
	FamilySoftware   JobFamily = "software_engineering"
	FamilyData       JobFamily = "data"
	FamilyProduct    JobFamily = "product"
	FamilyDesign     JobFamily = "design"
	FamilyDevOps     JobFamily = "devops"
	FamilyQA         JobFamily = "qa"
	FamilySales      JobFamily = "sales"
	FamilyMarketing  JobFamily = "marketing"
	FamilyFinance    JobFamily = "finance"
	FamilyHR         JobFamily = "hr"
	FamilyOperations JobFamily = "operations"
)

// SkillRequirement represents one skill a posting asks for, with a 1-5 minimum level.
type SkillRequirement struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"min=1,max=5"`
}

// EducationRequirement represents one education requirement on a posting.
type EducationRequirement struct {
	Degree      string `json:"degree,omitempty"`
	Major       string `json:"major,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// CertificationRequirement represents one certification requirement on a posting.
type CertificationRequirement struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
}

// ExperienceRange is an optional numeric [min,max] years requirement.
type ExperienceRange struct {
	Min int `json:"min" validate:"min=0"`
	Max int `json:"max" validate:"min=0"`
}

// VisaRequirement captures a posting's work authorization constraints.
type VisaRequirement struct {
	LocalOnly bool `json:"local_only"`
	EPOK      bool `json:"ep_ok"`
}

// JobPosting represents a structured job posting sourced read-only from the job store.
type JobPosting struct {
	ID              string                     `json:"id" validate:"required"`
	Title           string                     `json:"title" validate:"required"`
	Company         string                     `json:"company"`
	SalaryLow       int                        `json:"salary_low" validate:"min=0"`
	SalaryHigh      int                        `json:"salary_high" validate:"min=0"`
	Currency        string                     `json:"currency,omitempty"` // ISO code, defaults to SGD
	Industry        string                     `json:"industry,omitempty"`
	ExperienceLevel string                     `json:"experience_level,omitempty"` // free text, e.g. "senior", "5+ years"
	ExperienceYears *ExperienceRange           `json:"experience_years_req,omitempty"`
	SkillsRequired  []SkillRequirement         `json:"skills_required,omitempty" validate:"dive"`
	SkillsOptional  []string                   `json:"skills_optional,omitempty"`
	EducationReq    []EducationRequirement     `json:"education_req,omitempty"`
	CertReq         []CertificationRequirement `json:"certifications_req,omitempty"`
	JobFamily       JobFamily                  `json:"job_family,omitempty"`
	RemotePolicy    RemotePolicy               `json:"remote_policy,omitempty"`
	JobType         JobType                    `json:"job_type,omitempty"`
	CompanyTier     string                     `json:"company_tier,omitempty"`
	Visa            VisaRequirement            `json:"visa_requirement"`
	LeadershipLevel *LeadershipLevel           `json:"leadership_level,omitempty"` // inferred from text when nil
	Description     string                     `json:"description,omitempty"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// SalaryCurrency returns the posting's salary currency, defaulting to SGD.
func (j *JobPosting) SalaryCurrency() string {
	if j.Currency == "" {
		return "SGD"
	}
	return j.Currency
}

// normalizeKey lowercases and trims a name for map lookups.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
