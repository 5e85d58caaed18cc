package filter

import "strings"

// Filter is a display summary of a pattern list. Patterns keep their
// evaluation order, later ones override earlier ones.
type Filter struct {
	Patterns []Pattern `json:"patterns"`
}

func NewFilter(patterns []Pattern) Filter {
	return Filter{Patterns: patterns}
}

func (f Filter) String() string {
	parts := make([]string, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
