package filter

// Pattern is one entry of an ordered filter list. A leading '!' marks an
// exclusion, the rest of the string is the glob.
type Pattern struct {
	Exclude bool   `json:"exclude,omitempty"`
	Glob    string `json:"glob"`
}

const negationMarker = '!'

func ParsePattern(s string) Pattern {
	if len(s) > 0 && s[0] == negationMarker {
		return Pattern{Exclude: true, Glob: s[1:]}
	}
	return Pattern{Glob: s}
}

// ParsePatterns keeps the input order, which is significant.
func ParsePatterns(patterns []string) []Pattern {
	parsed := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		parsed = append(parsed, ParsePattern(p))
	}
	return parsed
}

func (p Pattern) String() string {
	if p.Exclude {
		return string(negationMarker) + p.Glob
	}
	return p.Glob
}
