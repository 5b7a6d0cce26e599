package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// FetchJobCorpus loads up to limit postings for stage-1 scoring, newest
// first. Scalar attributes live in columns (the scraping pipeline's
// vocabulary); structured requirement lists live in JSONB columns.
func (db *DB) FetchJobCorpus(ctx context.Context, limit int) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, salary_low, salary_high, currency, industry,
		        experience_level, experience_min, experience_max,
		        skills_required, skills_optional, education_req, certifications_req,
		        job_family, remote_policy, job_type, company_tier,
		        local_only, ep_ok, leadership_level, description
		 FROM jobs
		 ORDER BY scraped_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query job corpus: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		var (
			job                      types.JobPosting
			expMin, expMax           *int
			skillsReqJSON            []byte
			skillsOptJSON            []byte
			educationJSON            []byte
			certsJSON                []byte
			leadership               *string
		)

		err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.SalaryLow, &job.SalaryHigh,
			&job.Currency, &job.Industry, &job.ExperienceLevel, &expMin, &expMax,
			&skillsReqJSON, &skillsOptJSON, &educationJSON, &certsJSON,
			&job.JobFamily, &job.RemotePolicy, &job.JobType, &job.CompanyTier,
			&job.Visa.LocalOnly, &job.Visa.EPOK, &leadership, &job.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}

		if expMin != nil && expMax != nil {
			job.ExperienceYears = &types.ExperienceRange{Min: *expMin, Max: *expMax}
		}
		if leadership != nil {
			level := types.LeadershipLevel(*leadership)
			job.LeadershipLevel = &level
		}
		if skillsReqJSON != nil {
			_ = json.Unmarshal(skillsReqJSON, &job.SkillsRequired)
		}
		if skillsOptJSON != nil {
			_ = json.Unmarshal(skillsOptJSON, &job.SkillsOptional)
		}
		if educationJSON != nil {
			_ = json.Unmarshal(educationJSON, &job.EducationReq)
		}
		if certsJSON != nil {
			_ = json.Unmarshal(certsJSON, &job.CertReq)
		}

		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job corpus: %w", err)
	}

	return jobs, nil
}
