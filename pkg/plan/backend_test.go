package plan

import (
	"context"
	"fmt"

	"pacplan/pkg/backend"
)

// fakeBackend scripts probe outcomes and records every mutating call, so
// tests can assert on exactly what the planner did.
type fakeBackend struct {
	// known holds names ResolveCanonicalName accepts.
	known map[string]bool

	// installed holds names IsInstalled reports true for.
	installed map[string]bool

	// probes is consumed in order; when exhausted the last entry repeats.
	probes []backend.ProbeResult

	// probeErr, when set, is returned by every probe.
	probeErr error

	probeCalls   int
	probeTargets [][]string
	removed      []string
	installs     [][]string
	removeErr    error
	installErr   error
}

func newFakeBackend(known ...string) *fakeBackend {
	f := &fakeBackend{
		known:     make(map[string]bool),
		installed: make(map[string]bool),
	}
	for _, name := range known {
		f.known[name] = true
	}
	return f
}

func (f *fakeBackend) Name() string      { return "fake" }
func (f *fakeBackend) IsAvailable() bool { return true }

func (f *fakeBackend) Search(ctx context.Context, terms []string) ([]backend.Candidate, error) {
	return nil, nil
}

func (f *fakeBackend) IsInstalled(ctx context.Context, name string) (bool, error) {
	return f.installed[name], nil
}

func (f *fakeBackend) ResolveCanonicalName(ctx context.Context, token string) (string, bool) {
	if f.known[token] {
		return token, true
	}
	return "", false
}

func (f *fakeBackend) ProbeInstall(ctx context.Context, targets []string) (backend.ProbeResult, error) {
	f.probeCalls++
	f.probeTargets = append(f.probeTargets, append([]string(nil), targets...))

	if f.probeErr != nil {
		return backend.ProbeResult{}, f.probeErr
	}
	if len(f.probes) == 0 {
		return backend.ProbeResult{OK: true}, nil
	}

	result := f.probes[0]
	if len(f.probes) > 1 {
		f.probes = f.probes[1:]
	}
	return result, nil
}

func (f *fakeBackend) Remove(ctx context.Context, name string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, name)
	return nil
}

func (f *fakeBackend) Install(ctx context.Context, targets []string) error {
	if f.installErr != nil {
		return f.installErr
	}
	f.installs = append(f.installs, append([]string(nil), targets...))
	return nil
}

// conflictDiag builds a pacman-style conflict diagnostic.
func conflictDiag(a, b, hint string) string {
	diag := fmt.Sprintf("resolving dependencies...\nlooking for conflicting packages...\n:: %s and %s are in conflict", a, b)
	if hint != "" {
		diag += fmt.Sprintf(". Remove %s? [y/N]", hint)
	}
	return diag
}

func failure(diag string) backend.ProbeResult {
	return backend.ProbeResult{OK: false, Diagnostic: diag}
}

func success() backend.ProbeResult {
	return backend.ProbeResult{OK: true}
}
