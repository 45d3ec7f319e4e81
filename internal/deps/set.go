package deps

import "sort"

// Set is an unordered set of catalog libraries. Membership only, no
// multiplicity.
type Set map[Library]struct{}

// NewSet returns a Set holding the given libraries.
func NewSet(libs ...Library) Set {
	s := make(Set, len(libs))
	for _, lib := range libs {
		s.Add(lib)
	}
	return s
}

// Add inserts lib into the set.
func (s Set) Add(lib Library) {
	s[lib] = struct{}{}
}

// Has reports whether lib is in the set.
func (s Set) Has(lib Library) bool {
	_, ok := s[lib]
	return ok
}

// Union adds every member of other to s.
func (s Set) Union(other Set) {
	for lib := range other {
		s.Add(lib)
	}
}

// Links returns the link targets of the set's members, sorted and
// deduplicated. Aliases sharing one underlying library collapse to a
// single entry so the native build links each library exactly once.
func (s Set) Links() []string {
	seen := make(map[string]bool, len(s))
	targets := make([]string, 0, len(s))
	for lib := range s {
		link := lib.Link()
		if seen[link] {
			continue
		}
		seen[link] = true
		targets = append(targets, link)
	}
	sort.Strings(targets)
	return targets
}
