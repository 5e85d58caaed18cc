package filter

import (
	"maps"
	"slices"
)

// FileSet is a set of slash separated paths relative to the resolver root.
type FileSet map[string]struct{}

func NewFileSet(paths ...string) FileSet {
	set := make(FileSet, len(paths))
	set.Add(paths...)
	return set
}

func (s FileSet) Add(paths ...string) {
	for _, p := range paths {
		s[p] = struct{}{}
	}
}

func (s FileSet) Remove(paths ...string) {
	for _, p := range paths {
		delete(s, p)
	}
}

func (s FileSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

func (s FileSet) Len() int {
	return len(s)
}

func (s FileSet) Clone() FileSet {
	clone := make(FileSet, len(s))
	maps.Copy(clone, s)
	return clone
}

// Sorted returns the members in lexical order.
func (s FileSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
