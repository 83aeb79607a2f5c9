// Package backend defines the interface pacplan requires from an external
// package manager, plus the pacman implementation of it.
package backend

import "context"

// Candidate is a package surfaced by a search query. SourceIndex is the
// 1-based position in the backend's result order; selection rules key off it
// and it is never re-sorted.
type Candidate struct {
	Name        string
	Version     string
	Description string
	Installed   bool
	SourceIndex int
}

// ProbeResult is the outcome of a non-committing installability check.
// When OK is false, Diagnostic holds the backend's raw output for the
// conflict parser (or for the operator, if it turns out to be unparsable).
type ProbeResult struct {
	OK         bool
	Diagnostic string
}

// NameResolver is the subset of Backend needed to canonicalize package
// tokens extracted from diagnostics.
type NameResolver interface {
	// ResolveCanonicalName reports whether token names a package the backend
	// recognizes, returning the canonical name if so.
	ResolveCanonicalName(ctx context.Context, token string) (string, bool)
}

// Backend is the external package manager collaborator. Implementations
// must keep Search result order stable for the duration of one invocation,
// and ProbeInstall must never mutate system state.
type Backend interface {
	NameResolver

	// Name returns the short identifier for this backend (e.g., "pacman").
	Name() string

	// IsAvailable returns true if the backend tool is installed and usable.
	IsAvailable() bool

	// Search finds packages matching the given terms, in backend order.
	Search(ctx context.Context, terms []string) ([]Candidate, error)

	// IsInstalled checks whether a package is currently installed.
	IsInstalled(ctx context.Context, name string) (bool, error)

	// ProbeInstall asks, without committing any change, whether installing
	// targets would succeed.
	ProbeInstall(ctx context.Context, targets []string) (ProbeResult, error)

	// Remove uninstalls exactly the named package, never a broader sweep.
	Remove(ctx context.Context, name string) error

	// Install installs all targets in one transaction.
	Install(ctx context.Context, targets []string) error
}
