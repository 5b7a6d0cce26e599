package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// isNoRows reports whether err is pgx.ErrNoRows, including wrapped forms.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// FetchCandidateProfile loads the structured profile for a candidate. The
// profile document is stored as JSONB, built by the upstream extraction
// pipeline. Returns nil when no profile exists.
func (db *DB) FetchCandidateProfile(ctx context.Context, candidateID string) (*types.CandidateProfile, error) {
	var profileJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM candidate_profiles WHERE candidate_id = $1`,
		candidateID,
	).Scan(&profileJSON)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch candidate profile: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse candidate profile: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("stored candidate profile is invalid: %w", err)
	}

	return &profile, nil
}
