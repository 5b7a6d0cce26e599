package recommend

import "fmt"

// Error represents a recommendation-flow failure the engine cannot recover
// from locally, such as a job corpus fetch failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
