package plan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCandidates is returned when a search produced no candidates.
	ErrNoCandidates = errors.New("search returned no candidates")

	// ErrNoSelection is returned when selection rules matched no candidate.
	// Absence of selection is never treated as "select all".
	ErrNoSelection = errors.New("no candidates selected")
)

// UnparsableError reports a probe failure that could not be interpreted as a
// package conflict. The raw diagnostic is surfaced verbatim so the operator
// can triage causes this system never guesses at (disk, network, ...).
type UnparsableError struct {
	Diagnostic string
}

func (e *UnparsableError) Error() string {
	return "probe failed for a reason that is not a package conflict"
}

// IterationLimitError reports that the resolve/probe loop failed to converge
// within the iteration cap. Targets holds the last known target set for
// operator inspection.
type IterationLimitError struct {
	Iterations int
	Targets    []string
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("conflict resolution did not converge after %d iterations (targets: %s)",
		e.Iterations, strings.Join(e.Targets, ", "))
}
