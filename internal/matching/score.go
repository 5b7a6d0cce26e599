package matching

import (
	"math"

	"github.com/StevenSLXie/talyon-sub000/internal/currency"
	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// Fixed dimension weights. They sum to 1.0 before additive penalties and
// gates; the tests assert this.
const (
	titleWeight         = 0.15
	salaryWeight        = 0.14
	skillsWeight        = 0.25
	jobFamilyWeight     = 0.20
	experienceWeight    = 0.08
	educationWeight     = 0.04
	certificationWeight = 0.03
	workPrefsWeight     = 0.01
	industryWeight      = 0.01
	leadershipWeight    = 0.10
)

// disciplineGate parameters: when neither the title nor the job family shows
// a shared occupational discipline, a flat deduction keeps unrelated jobs
// from ranking high on salary or leadership coincidence alone.
const (
	disciplineThreshold = 40
	disciplineDeduction = 40
)

// WeightSum returns the sum of all dimension weights; exposed for invariant tests.
func WeightSum() float64 {
	return titleWeight + salaryWeight + skillsWeight + jobFamilyWeight +
		experienceWeight + educationWeight + certificationWeight +
		workPrefsWeight + industryWeight + leadershipWeight
}

// ScoreJob runs all ten dimension scorers and aggregates them into the
// composite. Hard filters are the caller's responsibility; a pair that
// reaches ScoreJob is assumed eligible.
func ScoreJob(cand *types.CandidateProfile, job *types.JobPosting, rates currency.Table) types.RecommendationBreakdown {
	breakdown := types.RecommendationBreakdown{
		Title:         ScoreTitle(cand, job),
		Salary:        ScoreSalary(cand, job, rates),
		Skills:        ScoreSkills(cand, job),
		Experience:    ScoreExperience(cand, job),
		Education:     ScoreEducation(cand, job),
		Certification: ScoreCertification(cand, job),
		JobFamily:     ScoreJobFamily(cand, job),
		WorkPrefs:     ScoreWorkPrefs(cand, job),
		Industry:      ScoreIndustry(cand, job),
		Leadership:    ScoreLeadership(cand, job),
	}

	weighted := float64(breakdown.Title.Score)*titleWeight +
		float64(breakdown.Salary.Score)*salaryWeight +
		float64(breakdown.Skills.Score)*skillsWeight +
		float64(breakdown.JobFamily.Score)*jobFamilyWeight +
		float64(breakdown.Experience.Score)*experienceWeight +
		float64(breakdown.Education.Score)*educationWeight +
		float64(breakdown.Certification.Score)*certificationWeight +
		float64(breakdown.WorkPrefs.Score)*workPrefsWeight +
		float64(breakdown.Industry.Score)*industryWeight +
		float64(breakdown.Leadership.Score)*leadershipWeight

	composite := int(math.Round(weighted))
	composite -= salaryShortfallPenalty(cand, job, rates)

	if max(breakdown.JobFamily.Score, breakdown.Title.Score) < disciplineThreshold {
		composite -= disciplineDeduction
	}

	breakdown.CompositeScore = clampScore(composite)
	return breakdown
}
