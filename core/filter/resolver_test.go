package filter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qumopa/qumopa/core/errs"
	"github.com/stretchr/testify/require"
)

// makeTree creates the given paths under a temp dir. Paths ending in "/" are
// created as directories, everything else as small files.
func makeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0644))
	}
	return root
}

func resolve(t *testing.T, root string, patterns ...string) []string {
	t.Helper()
	files, err := NewResolver(root, Options{}).Resolve(ParsePatterns(patterns))
	require.NoError(t, err)
	return files.Sorted()
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		tree     []string
		patterns []string
		want     []string
	}{
		{
			name:     "include all then exclude top level tmp",
			tree:     []string{"a.txt", "b.tmp", "sub/c.txt"},
			patterns: []string{"**/*", "!*.tmp"},
			want:     []string{"a.txt", "sub/c.txt"},
		},
		{
			name:     "exclusion before any inclusion is a no-op",
			tree:     []string{"demo1.dem", "demo2.dem"},
			patterns: []string{"!*.dem", "demo1.dem"},
			want:     []string{"demo1.dem"},
		},
		{
			name:     "inclusion after exclusion restores",
			tree:     []string{"demo1.dem", "demo12.dem", "intro.dem", "maps/e1m1.bsp"},
			patterns: []string{"**/*", "!*.dem", "demo[0-9].dem"},
			want:     []string{"demo1.dem", "maps/e1m1.bsp"},
		},
		{
			name:     "exclusion after inclusion removes",
			tree:     []string{"a.txt", "b.txt"},
			patterns: []string{"a.txt", "b.txt", "!a.txt"},
			want:     []string{"b.txt"},
		},
		{
			name:     "later exclusion wins over earlier rescue",
			tree:     []string{"demo1.dem"},
			patterns: []string{"**/*", "!*.dem", "demo1.dem", "!demo1.dem"},
			want:     nil,
		},
		{
			name:     "single star does not cross directories",
			tree:     []string{"a.tmp", "sub/b.tmp"},
			patterns: []string{"**/*", "!*.tmp"},
			want:     []string{"sub/b.tmp"},
		},
		{
			name:     "double star excludes whole subtree",
			tree:     []string{"__pycache__/a.pyc", "__pycache__/deep/b.pyc", "main.py"},
			patterns: []string{"**/*", "!__pycache__/**"},
			want:     []string{"main.py"},
		},
		{
			name:     "directory match is stripped",
			tree:     []string{"maps/", "maps/e1m1.bsp", "empty/"},
			patterns: []string{"maps", "empty"},
			want:     nil,
		},
		{
			name:     "pattern matching nothing changes nothing",
			tree:     []string{"a.txt"},
			patterns: []string{"a.txt", "!*.nothing", "missing/**"},
			want:     []string{"a.txt"},
		},
		{
			name:     "empty pattern list",
			tree:     []string{"a.txt"},
			patterns: nil,
			want:     nil,
		},
		{
			name:     "dot slash prefix is cleaned",
			tree:     []string{"sub/c.txt"},
			patterns: []string{"./sub/*"},
			want:     []string{"sub/c.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := makeTree(t, tt.tree...)
			got := resolve(t, root, tt.patterns...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	root := makeTree(t, "a.txt", "b.tmp", "sub/c.txt", "sub/deeper/d.txt")
	patterns := []string{"**/*", "!*.tmp", "!sub/deeper/**", "sub/deeper/d.txt"}

	first := resolve(t, root, patterns...)
	second := resolve(t, root, patterns...)

	require.Equal(t, first, second)
	require.Equal(t, []string{"a.txt", "sub/c.txt", "sub/deeper/d.txt"}, first)
}

func TestResolveHiddenEntries(t *testing.T) {
	root := makeTree(t, ".env", ".git/config", "a.txt", "sub/.hidden", "sub/b.txt")

	t.Run("wildcards skip dot entries", func(t *testing.T) {
		require.Equal(t, []string{"a.txt", "sub/b.txt"}, resolve(t, root, "**/*"))
	})

	t.Run("explicit dot segment matches", func(t *testing.T) {
		require.Equal(t, []string{".env", "sub/.hidden"}, resolve(t, root, ".env", "sub/.hid*"))
	})

	t.Run("dot directory named explicitly", func(t *testing.T) {
		require.Equal(t, []string{".git/config"}, resolve(t, root, ".git/**"))
	})

	t.Run("match hidden option", func(t *testing.T) {
		files, err := NewResolver(root, Options{MatchHidden: true}).Resolve(ParsePatterns([]string{"**/*", "!.git/**"}))
		require.NoError(t, err)
		require.Equal(t, []string{".env", "a.txt", "sub/.hidden", "sub/b.txt"}, files.Sorted())
	})
}

func TestResolveSkipsDanglingSymlinks(t *testing.T) {
	root := makeTree(t, "a.txt")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.txt"), filepath.Join(root, "broken.txt")))

	require.Equal(t, []string{"a.txt"}, resolve(t, root, "*.txt"))
}

func TestResolvePatternErrors(t *testing.T) {
	root := makeTree(t, "a.txt")

	tests := []struct {
		name    string
		pattern string
	}{
		{name: "bad syntax", pattern: "[a-"},
		{name: "absolute", pattern: "/etc/*"},
		{name: "parent", pattern: "../*"},
		{name: "excluded parent", pattern: "!../*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := NewResolver(root, Options{}).Resolve(ParsePatterns([]string{"**/*", tt.pattern}))
			require.Error(t, err)
			require.Nil(t, files)
			require.Equal(t, errs.KindPattern, errs.KindOf(err))
		})
	}
}

func TestExpandIncludesDirectories(t *testing.T) {
	root := makeTree(t, "maps/e1m1.bsp")

	matches, err := NewResolver(root, Options{}).Expand("**/*")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"maps", "maps/e1m1.bsp"}, matches)
}
