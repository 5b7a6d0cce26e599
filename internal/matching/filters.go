// Package matching implements the rule-based candidate-job scoring pass:
// hard eligibility filters, ten independent dimension scorers, and the
// weighted aggregation that produces a 0-100 composite match score.
package matching

import (
	"fmt"
	"strings"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// HardFilterResult reports whether a candidate-job pair passes the binary
// eligibility checks, with a recorded reason per failed check.
type HardFilterResult struct {
	Passed  bool
	Reasons []string
}

// EvaluateHardFilters runs the three binary eligibility checks. All must pass
// or the job is excluded from scoring with a composite of 0.
func EvaluateHardFilters(cand *types.CandidateProfile, job *types.JobPosting) HardFilterResult {
	var reasons []string

	if reason := checkWorkAuth(cand, job); reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := checkBlacklist(cand, job); reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := checkWorkMode(cand, job); reason != "" {
		reasons = append(reasons, reason)
	}

	return HardFilterResult{Passed: len(reasons) == 0, Reasons: reasons}
}

// checkWorkAuth fails when the posting cannot sponsor the pass the candidate needs.
func checkWorkAuth(cand *types.CandidateProfile, job *types.JobPosting) string {
	if !cand.WorkAuth.EPNeeded {
		return ""
	}
	if job.Visa.LocalOnly {
		return "job is open to local candidates only but candidate requires an employment pass"
	}
	if !job.Visa.EPOK {
		return "job does not sponsor employment passes but candidate requires one"
	}
	return ""
}

// checkBlacklist fails on case-insensitive substring containment in either
// direction, so "Acme Corp" blocks "ACME CORP PTE LTD" and vice versa.
func checkBlacklist(cand *types.CandidateProfile, job *types.JobPosting) string {
	company := strings.ToLower(strings.TrimSpace(job.Company))
	if company == "" {
		return ""
	}
	for _, blocked := range cand.BlacklistCompanies {
		b := strings.ToLower(strings.TrimSpace(blocked))
		if b == "" {
			continue
		}
		if strings.Contains(company, b) || strings.Contains(b, company) {
			return fmt.Sprintf("company %q is on the candidate's blacklist", job.Company)
		}
	}
	return ""
}

// checkWorkMode fails on irreconcilable work-mode or employment-type mismatches.
// Hybrid is treated as compatible with everything; only the Remote/Onsite
// extremes and Permanent-vs-Contract conflict are disqualifying.
func checkWorkMode(cand *types.CandidateProfile, job *types.JobPosting) string {
	pref := cand.WorkPrefs

	if job.RemotePolicy == types.RemoteFull && pref.Remote == types.RemoteOnsite {
		return "job is fully remote but candidate prefers onsite work"
	}
	if job.RemotePolicy == types.RemoteOnsite && pref.Remote == types.RemoteFull {
		return "job is onsite only but candidate prefers fully remote work"
	}
	if job.JobType == types.JobTypeContract && pref.JobType == types.JobTypePermanent {
		return "job is a contract role but candidate prefers permanent employment"
	}
	return ""
}
