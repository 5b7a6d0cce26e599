package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows_DirectSentinel(t *testing.T) {
	assert.True(t, isNoRows(pgx.ErrNoRows))
}

func TestIsNoRows_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("scan failed: %w", pgx.ErrNoRows)

	assert.True(t, isNoRows(wrapped))
}

func TestIsNoRows_OtherErrors(t *testing.T) {
	assert.False(t, isNoRows(errors.New("connection refused")))
	assert.False(t, isNoRows(nil))
}
