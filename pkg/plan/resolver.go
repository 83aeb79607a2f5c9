package plan

import "context"

// Outcome classifies the single action a resolution step decided on.
type Outcome int

const (
	// OutcomeNone means no rule yielded a decision; the conflict is left
	// for the next probe iteration, bounded by the iteration cap.
	OutcomeNone Outcome = iota
	// OutcomeQueueRemoval queues the named installed package for removal.
	OutcomeQueueRemoval
	// OutcomeDropTarget drops the named package from the target set.
	OutcomeDropTarget
)

// Resolution is the decision for one conflict: at most one action on at
// most one package. The plan loop applies it, which keeps each iteration's
// mutation single and traceable.
type Resolution struct {
	Outcome Outcome
	Package string
}

// InstalledChecker is the backend query the installed-preference rule needs.
type InstalledChecker interface {
	IsInstalled(ctx context.Context, name string) (bool, error)
}

// PromptFunc asks the operator whether the named installed package should
// be removed. Used only in prompt conflict mode.
type PromptFunc func(pkg string) (bool, error)

// Resolver decides how a single conflict is handled under a policy.
type Resolver struct {
	installed InstalledChecker
	policy    Policy
	prompt    PromptFunc

	// Hinted packages the operator has already been asked about; each is
	// asked at most once per invocation.
	asked map[string]bool
}

// NewResolver creates a resolver. prompt may be nil, in which case prompt
// mode degrades to answering no.
func NewResolver(installed InstalledChecker, policy Policy, prompt PromptFunc) *Resolver {
	return &Resolver{
		installed: installed,
		policy:    policy,
		prompt:    prompt,
		asked:     make(map[string]bool),
	}
}

// Resolve decides the action for one conflict given the current targets.
// It never mutates the target set itself.
func (r *Resolver) Resolve(ctx context.Context, report ConflictReport, targets *TargetSet) (Resolution, error) {
	if report.RemovalHint != "" {
		return r.resolveHinted(report, targets)
	}
	return r.resolvePairwise(ctx, report, targets)
}

// resolveHinted handles case A: an installed package blocks a new one and
// the backend proposed removing it.
func (r *Resolver) resolveHinted(report ConflictReport, targets *TargetSet) (Resolution, error) {
	mode := r.policy.ConflictMode

	if mode == ConflictPrompt {
		agreed, err := r.promptOnce(report.RemovalHint)
		if err != nil {
			return Resolution{}, err
		}
		if agreed {
			mode = ConflictYes
		} else {
			mode = ConflictNo
		}
	}

	if mode == ConflictYes {
		return Resolution{Outcome: OutcomeQueueRemoval, Package: report.RemovalHint}, nil
	}

	// Mode no: drop whichever side is a requested target and not the hint.
	for _, pkg := range []string{report.PkgA, report.PkgB} {
		if pkg != report.RemovalHint && targets.Contains(pkg) {
			return Resolution{Outcome: OutcomeDropTarget, Package: pkg}, nil
		}
	}

	// Neither side qualifies; defer to the next probe iteration.
	return Resolution{Outcome: OutcomeNone}, nil
}

// promptOnce asks about a hinted package at most once per invocation.
// A repeated conflict over the same package reuses the first answer's
// "no" path rather than re-prompting.
func (r *Resolver) promptOnce(pkg string) (bool, error) {
	if r.prompt == nil || r.asked[pkg] {
		return false, nil
	}
	r.asked[pkg] = true
	return r.prompt(pkg)
}

// resolvePairwise handles case B: two requested packages are mutually
// exclusive and the backend offered no removal. The configured preference
// rule is tried first; on no decision, later rules in the fixed order
// installed, target, first, package are tried in turn.
func (r *Resolver) resolvePairwise(ctx context.Context, report ConflictReport, targets *TargetSet) (Resolution, error) {
	for rule := r.policy.Preference.Rule; rule <= PreferPackage; rule++ {
		keep, err := r.applyRule(ctx, rule, report, targets)
		if err != nil {
			return Resolution{}, err
		}
		if keep == "" {
			continue
		}

		drop := report.PkgA
		if drop == keep {
			drop = report.PkgB
		}
		if !targets.Contains(drop) {
			// The losing side is not a target; dropping it would be
			// vacuous, so defer instead of reporting false progress.
			return Resolution{Outcome: OutcomeNone}, nil
		}
		return Resolution{Outcome: OutcomeDropTarget, Package: drop}, nil
	}

	return Resolution{Outcome: OutcomeNone}, nil
}

// applyRule returns the package to keep, or "" when the rule yields no
// decision.
func (r *Resolver) applyRule(ctx context.Context, rule PreferenceRule, report ConflictReport, targets *TargetSet) (string, error) {
	a, b := report.PkgA, report.PkgB

	switch rule {
	case PreferInstalled:
		aInst, err := r.installed.IsInstalled(ctx, a)
		if err != nil {
			return "", err
		}
		bInst, err := r.installed.IsInstalled(ctx, b)
		if err != nil {
			return "", err
		}
		if aInst != bInst {
			if aInst {
				return a, nil
			}
			return b, nil
		}

	case PreferTarget:
		aTgt, bTgt := targets.Contains(a), targets.Contains(b)
		if aTgt != bTgt {
			if aTgt {
				return a, nil
			}
			return b, nil
		}

	case PreferFirst:
		posA, posB := targets.Position(a), targets.Position(b)
		switch {
		case posA < 0 && posB < 0:
			// Neither is a target; no order to prefer.
		case posB < 0 || (posA >= 0 && posA < posB):
			return a, nil
		default:
			return b, nil
		}

	case PreferPackage:
		if name := r.policy.Preference.Package; name == a || name == b {
			return name, nil
		}
	}

	return "", nil
}
