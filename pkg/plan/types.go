// Package plan implements conflict-aware installation planning: candidate
// selection, conflict parsing, policy-driven resolution, the probe loop and
// plan execution.
package plan

// TargetSet is an ordered collection of package names with uniqueness by
// name. Insertion order is significant: several resolution policies use
// first-requested-wins semantics. The plan loop is the only mutator.
type TargetSet struct {
	names []string
	seen  map[string]bool
}

// NewTargetSet creates a target set from names, deduplicating while
// preserving first-occurrence order.
func NewTargetSet(names ...string) *TargetSet {
	s := &TargetSet{seen: make(map[string]bool)}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add appends a name if not already present. Returns true if added.
func (s *TargetSet) Add(name string) bool {
	if name == "" || s.seen[name] {
		return false
	}
	s.seen[name] = true
	s.names = append(s.names, name)
	return true
}

// Remove drops a name, preserving the order of the remainder.
// Returns true if the name was present.
func (s *TargetSet) Remove(name string) bool {
	if !s.seen[name] {
		return false
	}
	delete(s.seen, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether name is in the set.
func (s *TargetSet) Contains(name string) bool {
	return s.seen[name]
}

// Position returns the insertion position of name, or -1 if absent.
func (s *TargetSet) Position(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Names returns the names in insertion order.
func (s *TargetSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names in the set.
func (s *TargetSet) Len() int {
	return len(s.names)
}

// Plan is the finalized ordered action sequence: removals in queued order,
// then a single install of the remaining target set. A plan is only
// considered complete once a probe of Install has succeeded.
type Plan struct {
	Removals []string
	Install  *TargetSet
}

// IsNoop reports whether executing the plan would do nothing.
func (p *Plan) IsNoop() bool {
	return len(p.Removals) == 0 && p.Install.Len() == 0
}
