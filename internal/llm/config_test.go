package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_ConfiguresAdvancedTier(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestGetModel_UnconfiguredTierIsEmpty(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{}}

	assert.Empty(t, cfg.GetModel(TierAdvanced))
}
