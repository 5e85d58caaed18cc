package filter

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core/errs"
)

type Options struct {
	// MatchHidden lets wildcards match names starting with a dot.
	MatchHidden bool
}

// Resolver folds an ordered pattern list into the set of regular files it
// selects under Root.
type Resolver struct {
	Root string

	fsys fs.FS
	opts Options
}

func NewResolver(root string, opts Options) *Resolver {
	return &Resolver{
		Root: root,
		fsys: os.DirFS(root),
		opts: opts,
	}
}

// Resolve applies each pattern in order: inclusions add their matches to the
// working set and exclusions remove theirs, so a later pattern always
// supersedes earlier ones for the paths it matches. Anything that is not a
// regular file is dropped at the end.
func (r *Resolver) Resolve(patterns []Pattern) (FileSet, error) {
	result := NewFileSet()

	for _, p := range patterns {
		matches, err := r.Expand(p.Glob)
		if err != nil {
			return nil, err
		}

		if p.Exclude {
			result.Remove(matches...)
		} else {
			result.Add(matches...)
		}

		log.Debugf("%s matched %d paths, %d in set", p, len(matches), result.Len())
	}

	return r.regularFiles(result), nil
}

// Expand returns every path under Root matching glob. A "**" segment matches
// zero or more directories.
func (r *Resolver) Expand(glob string) ([]string, error) {
	pattern, err := cleanGlob(glob)
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, nil
	}

	matches, err := doublestar.Glob(r.fsys, pattern, doublestar.WithNoFollow())
	if err != nil {
		return nil, errs.Wrapf(errs.KindPattern, err, "Invalid pattern %q", glob)
	}

	if r.opts.MatchHidden {
		return matches, nil
	}

	visible := matches[:0]
	for _, m := range matches {
		if !hiddenByWildcard(pattern, m) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

func (r *Resolver) regularFiles(set FileSet) FileSet {
	files := NewFileSet()
	for p := range set {
		info, err := fs.Stat(r.fsys, p)
		if err != nil {
			log.Debugf("skipping %s: %v", p, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files.Add(p)
	}
	return files
}

// cleanGlob normalises a pattern to the root relative form io/fs expects.
func cleanGlob(glob string) (string, error) {
	if glob == "" {
		return "", nil
	}

	if path.IsAbs(glob) || filepath.IsAbs(glob) {
		return "", errs.New(errs.KindPattern, "Pattern must be relative to the project directory: "+glob)
	}

	cleaned := path.Clean(glob)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errs.New(errs.KindPattern, "Pattern must not leave the project directory: "+glob)
	}

	return cleaned, nil
}

// hiddenByWildcard reports whether match has a dot-prefixed segment that no
// pattern segment starting with a literal dot accounts for.
func hiddenByWildcard(pattern, match string) bool {
	patternSegments := strings.Split(pattern, "/")

	for _, segment := range strings.Split(match, "/") {
		if segment == "." || segment == ".." || !strings.HasPrefix(segment, ".") {
			continue
		}
		if !namedExplicitly(patternSegments, segment) {
			return true
		}
	}

	return false
}

func namedExplicitly(patternSegments []string, name string) bool {
	for _, p := range patternSegments {
		if !strings.HasPrefix(p, ".") {
			continue
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
