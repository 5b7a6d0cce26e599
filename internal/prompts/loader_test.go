package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("matching.json", "batch-job-analysis")

	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Profile}}")
	assert.Contains(t, prompt, "{{.Jobs}}")
	assert.Contains(t, prompt, "{{.Count}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("matching.json", "nonexistent-key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent-key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "any")

	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("matching.json", "nonexistent-key")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := "Score {{.Count}} jobs for {{.Name}}."

	result := Format(template, map[string]string{"Count": "5", "Name": "the candidate"})

	assert.Equal(t, "Score 5 jobs for the candidate.", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "value"})

	assert.Equal(t, "value and {{.Unknown}}", result)
}
