// Package selection tracks which catalog servers are enabled per target tool.
//
// Selections are plain string sets keyed by server name. Persistence is
// one JSON file per target under the selections directory.
package selection

import "sort"

// Set holds the names of selected servers for a single target.
type Set map[string]struct{}

// NewSet creates a Set containing the given server names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts a server name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes a server name from the set.
func (s Set) Remove(name string) {
	delete(s, name)
}

// Has reports whether the set contains the given server name.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of selected servers.
func (s Set) Len() int {
	return len(s)
}

// Empty reports whether no servers are selected.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Union returns a new set containing the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for name := range s {
		out[name] = struct{}{}
	}
	for name := range other {
		out[name] = struct{}{}
	}
	return out
}

// Names returns the server names in lexical order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}
