// Package llm provides the language-model client abstraction and the batched
// stage-2 analyzer built on it.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierAdvanced is for complex reasoning: joint candidate-shortlist analysis
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, or "" when unconfigured.
func (c *Config) GetModel(tier ModelTier) string {
	return c.Models[tier]
}
