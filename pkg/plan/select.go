package plan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pacplan/pkg/backend"
)

// Selection holds the active candidate selection rules. Rules are additive:
// a candidate is selected if it matches any of them.
type Selection struct {
	// Indices are 1-based positions into the result list. Out-of-range
	// indices are silently ignored.
	Indices []int

	// Names are literal package names, matched case-sensitively.
	Names []string

	// Pattern is a regular expression matched case-insensitively against
	// candidate names and descriptions.
	Pattern string

	// First selects the first N candidates in result order.
	First int
}

// Empty reports whether no rule is active.
func (s Selection) Empty() bool {
	return len(s.Indices) == 0 && len(s.Names) == 0 && s.Pattern == "" && s.First <= 0
}

// Select narrows candidates to the final target list. The result preserves
// source order and is deduplicated by name. Zero selected candidates is
// ErrNoSelection, whether no rule was given or every rule missed.
func Select(candidates []backend.Candidate, sel Selection) ([]backend.Candidate, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	var pattern *regexp.Regexp
	if sel.Pattern != "" {
		var err error
		pattern, err = regexp.Compile("(?i)" + sel.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid selection pattern %q: %w", sel.Pattern, err)
		}
	}

	wantIndex := make(map[int]bool, len(sel.Indices))
	for _, i := range sel.Indices {
		wantIndex[i] = true
	}
	wantName := make(map[string]bool, len(sel.Names))
	for _, n := range sel.Names {
		wantName[n] = true
	}

	var selected []backend.Candidate
	seen := make(map[string]bool)
	for _, c := range candidates {
		if !matches(c, wantIndex, wantName, pattern, sel.First) {
			continue
		}
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		selected = append(selected, c)
	}

	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return selected, nil
}

func matches(c backend.Candidate, byIndex map[int]bool, byName map[string]bool, pattern *regexp.Regexp, first int) bool {
	if byIndex[c.SourceIndex] {
		return true
	}
	if byName[c.Name] {
		return true
	}
	if pattern != nil && (pattern.MatchString(c.Name) || pattern.MatchString(c.Description)) {
		return true
	}
	if first > 0 && c.SourceIndex <= first {
		return true
	}
	return false
}

// ParseIndexSpec parses an interactive selection string like "1 3 5-7" into
// 1-based indices. Tokens may be separated by spaces or commas; ranges are
// inclusive. Indices must lie within [1, max].
func ParseIndexSpec(spec string, max int) ([]int, error) {
	seen := make(map[int]bool)
	var indices []int

	add := func(i int) error {
		if i < 1 || i > max {
			return fmt.Errorf("index %d out of valid bounds 1-%d", i, max)
		}
		if !seen[i] {
			seen[i] = true
			indices = append(indices, i)
		}
		return nil
	}

	for _, token := range strings.FieldsFunc(spec, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }) {
		if lo, hi, ok := strings.Cut(token, "-"); ok {
			start, err1 := strconv.Atoi(lo)
			end, err2 := strconv.Atoi(hi)
			if err1 != nil || err2 != nil || start > end {
				return nil, fmt.Errorf("invalid range %q", token)
			}
			for i := start; i <= end; i++ {
				if err := add(i); err != nil {
					return nil, err
				}
			}
			continue
		}
		i, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", token)
		}
		if err := add(i); err != nil {
			return nil, err
		}
	}

	return indices, nil
}
