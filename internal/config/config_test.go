package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_key": "test-key",
		"corpus_limit": 200,
		"shortlist_size": 10,
		"currency_rates": {"USD": 1.32}
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 200, cfg.CorpusLimit)
	assert.Equal(t, 10, cfg.ShortlistSize)
	assert.Equal(t, 1.32, cfg.CurrencyRates["USD"])
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"api_key": `)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestMerge_FileOverridesEnv(t *testing.T) {
	base := &Config{APIKey: "env-key", DatabaseURL: "postgres://env", CorpusLimit: 500}
	file := &Config{APIKey: "file-key", ShortlistSize: 15}

	merged := base.Merge(file)

	assert.Equal(t, "file-key", merged.APIKey)
	assert.Equal(t, "postgres://env", merged.DatabaseURL)
	assert.Equal(t, 500, merged.CorpusLimit)
	assert.Equal(t, 15, merged.ShortlistSize)
}

func TestMerge_NilOther(t *testing.T) {
	base := &Config{APIKey: "env-key"}

	merged := base.Merge(nil)

	assert.Equal(t, "env-key", merged.APIKey)
}

func TestValidate_AcceptsZeroValues(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_RejectsNegativeBounds(t *testing.T) {
	assert.Error(t, (&Config{CorpusLimit: -1}).Validate())
	assert.Error(t, (&Config{ShortlistSize: -1}).Validate())
	assert.Error(t, (&Config{MinComposite: 101}).Validate())
}

func TestValidate_RejectsNonPositiveRates(t *testing.T) {
	cfg := &Config{CurrencyRates: map[string]float64{"USD": 0}}

	assert.Error(t, cfg.Validate())
}

func TestFromEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("CORPUS_LIMIT", "250")

	cfg := FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.Equal(t, 250, cfg.CorpusLimit)
}

func TestFromEnv_IgnoresBadCorpusLimit(t *testing.T) {
	t.Setenv("CORPUS_LIMIT", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, 0, cfg.CorpusLimit)
}
