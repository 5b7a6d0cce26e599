package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenSLXie/talyon-sub000/internal/types"
)

// stubClient returns a canned response or error and records prompts.
type stubClient struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Titles:          []string{"Software Engineer"},
		ExperienceYears: 6,
	}
}

func testJobs(n int) []types.JobPosting {
	jobs := make([]types.JobPosting, n)
	for i := range jobs {
		jobs[i] = types.JobPosting{ID: string(rune('a' + i)), Title: "Backend Engineer"}
	}
	return jobs
}

func TestAnalyze_DecodesValidResponse(t *testing.T) {
	client := &stubClient{response: `[
		{"final_score": 88, "matching_reasons": ["strong skill fit"], "personalized_assessment": "Good fit."},
		{"final_score": 72, "non_matching_points": ["salary below expectation"]}
	]`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	analyses, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(2))

	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, 88, analyses[0].FinalScore)
	assert.Equal(t, []string{"strong skill fit"}, analyses[0].MatchingReasons)
	assert.Equal(t, 72, analyses[1].FinalScore)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyze_SingleBatchedCall(t *testing.T) {
	client := &stubClient{response: `[{"final_score": 50}]`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	_, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(1))

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyze_PromptCarriesProfileAndShortlist(t *testing.T) {
	client := &stubClient{response: `[{"final_score": 50}, {"final_score": 40}, {"final_score": 30}]`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	_, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(3))

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Software Engineer")
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "exactly 3 objects")
	assert.NotContains(t, prompt, "{{.")
}

func TestAnalyze_RoundsFractionalScores(t *testing.T) {
	client := &stubClient{response: `[
		{"final_score": 87.5, "matching_reasons": ["close call"]},
		{"final_score": 42.4}
	]`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	analyses, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(2))

	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, 88, analyses[0].FinalScore)
	assert.Equal(t, []string{"close call"}, analyses[0].MatchingReasons)
	assert.Equal(t, 42, analyses[1].FinalScore)
}

func TestAnalyze_RecoversFencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n[{\"final_score\": 64}]\n```"}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	analyses, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(1))

	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, 64, analyses[0].FinalScore)
}

func TestAnalyze_ClientErrorWrapped(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	_, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(1))

	require.Error(t, err)
	var analyzeErr *AnalyzeError
	assert.ErrorAs(t, err, &analyzeErr)
	assert.ErrorContains(t, err, "model call failed")
}

func TestAnalyze_RejectsNonArrayResponse(t *testing.T) {
	client := &stubClient{response: `{"final_score": 90}`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	_, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(1))

	require.Error(t, err)
	assert.ErrorContains(t, err, "schema validation")
}

func TestAnalyze_RejectsOutOfRangeScore(t *testing.T) {
	client := &stubClient{response: `[{"final_score": 150}]`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	_, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(1))

	assert.Error(t, err)
}

func TestAnalyze_RejectsUnrecoverableGarbage(t *testing.T) {
	client := &stubClient{response: "I cannot answer that."}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	// Garbage recovers to "{}", which is not an array.
	_, err := analyzer.Analyze(context.Background(), testProfile(), testJobs(1))

	assert.Error(t, err)
}

func TestAnalyze_EmptyShortlistIsAnError(t *testing.T) {
	client := &stubClient{response: `[]`}
	analyzer := NewBatchAnalyzer(client, zerolog.Nop())

	_, err := analyzer.Analyze(context.Background(), testProfile(), nil)

	require.Error(t, err)
	assert.Equal(t, 0, client.calls)
}
