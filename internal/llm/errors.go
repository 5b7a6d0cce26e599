package llm

import "fmt"

// AnalyzeError represents a failure of the batched stage-2 analysis call.
// The orchestrator converts it into the fallback path; it is never surfaced
// to callers of the public entry points.
type AnalyzeError struct {
	Message string
	Cause   error
}

func (e *AnalyzeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnalyzeError) Unwrap() error {
	return e.Cause
}
