package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a violated precondition on calculation input.
// The caller should re-prompt; nothing was computed.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// ExternalServiceError wraps any failure talking to the explanation backend.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("explanation service: %s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// ErrRateLimitExceeded means the caller used up its quota for the current
// window and must not retry until it resets.
var ErrRateLimitExceeded = errors.New("rate limit exceeded, please try again later")

// IsInvalidInput reports whether err is (or wraps) an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
