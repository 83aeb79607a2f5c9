package cli

import (
	"errors"
	"fmt"

	"pacplan/pkg/plan"
)

// ErrAborted is returned when the user aborts an operation.
var ErrAborted = errors.New("operation aborted by user")

// UsageError marks malformed flags or missing required input. It is
// reported before any backend call and maps to exit code 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// usagef builds a UsageError from a format string.
func usagef(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error from Execute to the process exit code:
// 0 success, 2 usage or selection errors, 1 everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	if errors.Is(err, plan.ErrNoCandidates) || errors.Is(err, plan.ErrNoSelection) {
		return 2
	}

	return 1
}
