package plan

import (
	"context"
	"regexp"
	"strings"

	"pacplan/pkg/backend"
)

// ConflictReport is one structured conflict extracted from a failed probe.
// RemovalHint is set when the diagnostic explicitly names the installed
// package the backend proposes to remove; empty means the conflict is
// between two packages neither of which is necessarily installed.
type ConflictReport struct {
	PkgA        string
	PkgB        string
	RemovalHint string
}

var (
	// Matches: ":: pkg and other-pkg are in conflict"
	conflictPattern = regexp.MustCompile(`:: (\S+) and (\S+) are in conflict`)

	// Matches the removal proposal: "Remove other-pkg?"
	removalHintPattern = regexp.MustCompile(`[Rr]emove (\S+)\?`)

	// Leading epoch qualifier on a versioned token, e.g. "1:pkg-2.0".
	epochPrefix = regexp.MustCompile(`^\d+:`)
)

// ParseConflict extracts the first conflict from raw diagnostic text.
// Only one conflict is returned per probe: resolving it may eliminate the
// rest. A diagnostic with no conflict line is an UnparsableError — the
// failure may be unrelated to conflicts entirely.
func ParseConflict(diagnostic string) (ConflictReport, error) {
	m := conflictPattern.FindStringSubmatch(diagnostic)
	if m == nil {
		return ConflictReport{}, &UnparsableError{Diagnostic: diagnostic}
	}

	report := ConflictReport{
		PkgA: trimToken(m[1]),
		PkgB: trimToken(m[2]),
	}

	if h := removalHintPattern.FindStringSubmatch(diagnostic); h != nil {
		report.RemovalHint = trimToken(h[1])
	}

	return report, nil
}

// NormalizeReport normalizes every package token in the report.
func NormalizeReport(ctx context.Context, nr backend.NameResolver, report ConflictReport) ConflictReport {
	out := ConflictReport{
		PkgA: NormalizeName(ctx, nr, report.PkgA),
		PkgB: NormalizeName(ctx, nr, report.PkgB),
	}
	if report.RemovalHint != "" {
		out.RemovalHint = NormalizeName(ctx, nr, report.RemovalHint)
	}
	return out
}

// NormalizeName turns a raw diagnostic token into a package name the
// backend recognizes. The version qualifier is stripped, then trailing
// -suffix segments are trimmed until the remainder resolves. If nothing
// resolves, the original token is returned unchanged.
func NormalizeName(ctx context.Context, nr backend.NameResolver, token string) string {
	name := stripQualifier(token)
	for name != "" {
		if canonical, ok := nr.ResolveCanonicalName(ctx, name); ok {
			return canonical
		}
		i := strings.LastIndex(name, "-")
		if i <= 0 {
			break
		}
		name = name[:i]
	}
	return token
}

// stripQualifier removes the version-qualifier portion of a token:
// a leading epoch ("1:") and anything from the first comparison operator on.
func stripQualifier(token string) string {
	s := trimToken(token)
	s = epochPrefix.ReplaceAllString(s, "")
	if i := strings.IndexAny(s, "<>="); i >= 0 {
		s = s[:i]
	}
	return s
}

// trimToken strips the quoting and punctuation diagnostics wrap tokens in.
func trimToken(token string) string {
	return strings.Trim(token, `'"().,:`)
}
