package plan

import (
	"fmt"
	"strings"
)

// ConflictMode governs conflicts that carry a removal hint (an installed
// package blocking a new one).
type ConflictMode int

const (
	// ConflictPrompt asks the operator once per hinted package.
	ConflictPrompt ConflictMode = iota
	// ConflictYes queues the hinted package for removal.
	ConflictYes
	// ConflictNo drops the conflicting target instead of removing anything.
	ConflictNo
)

// String returns the flag spelling of the mode.
func (m ConflictMode) String() string {
	switch m {
	case ConflictYes:
		return "yes"
	case ConflictNo:
		return "no"
	case ConflictPrompt:
		return "prompt"
	}
	return "unknown"
}

// ParseConflictMode parses a conflict mode flag value. Invalid values are
// rejected here rather than falling through to a default.
func ParseConflictMode(s string) (ConflictMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return ConflictYes, nil
	case "no", "n":
		return ConflictNo, nil
	case "prompt", "ask":
		return ConflictPrompt, nil
	}
	return 0, fmt.Errorf("invalid conflict mode %q (want yes, no or prompt)", s)
}

// PreferenceRule identifies one rule for deciding which of two mutually
// exclusive requested targets to keep.
type PreferenceRule int

const (
	// PreferInstalled keeps whichever package is already installed, if
	// exactly one is.
	PreferInstalled PreferenceRule = iota
	// PreferTarget keeps whichever package is a requested target, if
	// exactly one is.
	PreferTarget
	// PreferFirst keeps whichever package was requested earlier.
	PreferFirst
	// PreferPackage keeps an explicitly named package.
	PreferPackage
)

// String returns the flag spelling of the rule.
func (r PreferenceRule) String() string {
	switch r {
	case PreferInstalled:
		return "installed"
	case PreferTarget:
		return "target"
	case PreferFirst:
		return "first"
	case PreferPackage:
		return "package"
	}
	return "unknown"
}

// Preference is a configured keep-preference. Package is only set for
// PreferPackage.
type Preference struct {
	Rule    PreferenceRule
	Package string
}

// ParsePreference parses a preference flag value: installed, target, first
// or package=<name>.
func ParsePreference(s string) (Preference, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "installed":
		return Preference{Rule: PreferInstalled}, nil
	case "target":
		return Preference{Rule: PreferTarget}, nil
	case "first":
		return Preference{Rule: PreferFirst}, nil
	}
	if name, ok := strings.CutPrefix(strings.TrimSpace(s), "package="); ok {
		if name == "" {
			return Preference{}, fmt.Errorf("invalid preference %q: package name is empty", s)
		}
		return Preference{Rule: PreferPackage, Package: name}, nil
	}
	return Preference{}, fmt.Errorf("invalid preference %q (want installed, target, first or package=<name>)", s)
}

// Policy is the configured rule set for resolving conflicts. It is
// immutable for the duration of one invocation.
type Policy struct {
	ConflictMode ConflictMode
	Preference   Preference
}
