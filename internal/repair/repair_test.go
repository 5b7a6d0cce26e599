package repair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_ValidJSONPassesThrough(t *testing.T) {
	raw := `{"final_score": 85, "matching_reasons": ["strong skills"]}`

	assert.Equal(t, raw, Recover(raw))
}

func TestRecover_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n[{\"final_score\": 85}]\n```"

	recovered := Recover(raw)

	var analyses []map[string]any
	require.NoError(t, json.Unmarshal([]byte(recovered), &analyses))
	assert.Len(t, analyses, 1)
	assert.Equal(t, 85.0, analyses[0]["final_score"])
}

func TestRecover_StripsLeadingProseBeforeFence(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n{\"final_score\": 70}\n```"

	recovered := Recover(raw)

	assert.True(t, json.Valid([]byte(recovered)))
	assert.Contains(t, recovered, "final_score")
}

func TestRecover_TrimsSurroundingProse(t *testing.T) {
	raw := `The result is [{"final_score": 60}] as requested.`

	recovered := Recover(raw)

	var analyses []map[string]any
	require.NoError(t, json.Unmarshal([]byte(recovered), &analyses))
	assert.Len(t, analyses, 1)
}

func TestRecover_ClosesTruncatedDocument(t *testing.T) {
	// Cut off mid-array, as when the model hits its output limit.
	raw := `[{"final_score": 90, "matching_reasons": ["a", "b"]}, {"final_score": 75,`

	recovered := Recover(raw)

	var analyses []map[string]any
	require.NoError(t, json.Unmarshal([]byte(recovered), &analyses))
	require.NotEmpty(t, analyses)
	assert.Equal(t, 90.0, analyses[0]["final_score"])
}

func TestRecover_ClosesUnterminatedString(t *testing.T) {
	raw := `{"final_score": 80, "personalized_assessment": "a strong fit beca`

	recovered := Recover(raw)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(recovered), &doc))
	assert.Equal(t, 80.0, doc["final_score"])
}

func TestRecover_UnrecoverableReturnsEmptyObject(t *testing.T) {
	assert.Equal(t, "{}", Recover("the model declined to answer"))
	assert.Equal(t, "{}", Recover(""))
	assert.Equal(t, "{}", Recover("   \n\t  "))
}

func TestRecover_AlwaysReturnsValidJSON(t *testing.T) {
	inputs := []string{
		`{"a": 1}`,
		"```\n{\"a\": 1}\n```",
		`[1, 2, 3`,
		`{"a": {"b": [1, {"c": "d`,
		`}{`,
		`not json at all`,
		`"just a string"`,
	}

	for _, input := range inputs {
		assert.True(t, json.Valid([]byte(Recover(input))), "input: %q", input)
	}
}
