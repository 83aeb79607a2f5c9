package plan

import (
	"context"
	"fmt"

	"pacplan/pkg/backend"
)

// DefaultMaxIterations bounds the resolve/probe loop. The cap guards
// against resolutions that make no progress; exceeding it is an explicit
// error, never a silent no-op exit.
const DefaultMaxIterations = 12

// Loop drives probe, parse and resolve until the probe succeeds or the
// plan is declared unresolvable. It owns the target set and the removal
// queue for the duration of a run.
type Loop struct {
	Backend  backend.Backend
	Resolver *Resolver

	// MaxIterations overrides DefaultMaxIterations when positive.
	MaxIterations int

	// Logf, when set, receives one line per planning step for
	// auditability.
	Logf func(format string, args ...any)
}

// Run converges targets to a complete plan. The returned error is one of:
// a probe execution failure, an UnparsableError, a resolver error, or an
// IterationLimitError carrying the final target state.
func (l *Loop) Run(ctx context.Context, targets *TargetSet) (*Plan, error) {
	p := &Plan{Install: targets}

	// An empty set is trivially a success with a no-op plan.
	if targets.Len() == 0 {
		return p, nil
	}

	max := l.MaxIterations
	if max <= 0 {
		max = DefaultMaxIterations
	}

	queued := make(map[string]bool)

	for iter := 1; iter <= max; iter++ {
		result, err := l.Backend.ProbeInstall(ctx, targets.Names())
		if err != nil {
			return nil, fmt.Errorf("probe could not run: %w", err)
		}
		if result.OK {
			l.logf("probe succeeded after %d conflict resolution(s)", iter-1)
			return p, nil
		}

		report, err := ParseConflict(result.Diagnostic)
		if err != nil {
			return nil, err
		}
		report = NormalizeReport(ctx, l.Backend, report)
		l.logf("iteration %d/%d: %s and %s are in conflict", iter, max, report.PkgA, report.PkgB)

		// A conflict whose proposed removal is already queued will be
		// eliminated when the plan executes; the probe cannot see queued
		// removals, so this is the convergence point for hinted conflicts.
		if report.RemovalHint != "" && queued[report.RemovalHint] {
			l.logf("conflict already covered by queued removal of %s", report.RemovalHint)
			return p, nil
		}

		resolution, err := l.Resolver.Resolve(ctx, report, targets)
		if err != nil {
			return nil, err
		}

		switch resolution.Outcome {
		case OutcomeQueueRemoval:
			if !queued[resolution.Package] {
				queued[resolution.Package] = true
				p.Removals = append(p.Removals, resolution.Package)
				l.logf("queued removal of %s", resolution.Package)
			}
		case OutcomeDropTarget:
			targets.Remove(resolution.Package)
			l.logf("dropped target %s", resolution.Package)
			if targets.Len() == 0 {
				// Every target was dropped during resolution.
				l.logf("all targets dropped; nothing left to install")
				return p, nil
			}
		default:
			l.logf("no resolution for this conflict; re-probing")
		}
	}

	return nil, &IterationLimitError{Iterations: max, Targets: targets.Names()}
}

func (l *Loop) logf(format string, args ...any) {
	if l.Logf != nil {
		l.Logf(format, args...)
	}
}
