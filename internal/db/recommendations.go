package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// PersistRecommendations stores a generated recommendation set for a
// candidate as one JSONB document. The previous set for the candidate is
// replaced; history lives with the caller if they want it.
func (db *DB) PersistRecommendations(ctx context.Context, candidateID string, recs []types.AdvancedRecommendation) error {
	payload, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO recommendations (id, candidate_id, payload, generated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (candidate_id) DO UPDATE SET id = $1, payload = $3, generated_at = NOW()`,
		uuid.New(), candidateID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to persist recommendations: %w", err)
	}
	return nil
}
