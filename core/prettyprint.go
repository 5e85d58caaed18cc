package core

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/qumopa/qumopa/core/archive"
	"github.com/qumopa/qumopa/core/filter"
)

type PrintOptions struct {
	Version   string
	ShowFiles bool
	NoColor   bool
}

type styles struct {
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	file   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		label:  r.NewStyle().Width(10).Foreground(lipgloss.Color("8")),
		value:  r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		file:   r.NewStyle().PaddingLeft(2),
	}
}

func renderer(w io.Writer, opts PrintOptions) *lipgloss.Renderer {
	if opts.NoColor {
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	return lipgloss.NewRenderer(w)
}

func PrettyPrintPackResult(w io.Writer, result *PackResult, opts PrintOptions) {
	fmt.Fprint(w, FormatPackResult(renderer(w, opts), result, opts))
}

func FormatPackResult(r *lipgloss.Renderer, result *PackResult, opts PrintOptions) string {
	s := newStyles(r)
	var out strings.Builder

	out.WriteString(header(s, opts.Version))
	out.WriteString(line(s, "config", configSource(result.ResolveResult)))
	out.WriteString(line(s, "filter", filter.NewFilter(result.Patterns).String()))

	archiveName := result.Name + archive.Extension
	if result.DryRun {
		archiveName += s.muted.Render(" (dry run)")
	}
	out.WriteString(line(s, "archive", archiveName))

	summary := fmt.Sprintf("%d files", len(result.Entries))
	if result.Archive != nil {
		summary += fmt.Sprintf(", %s → %s",
			humanize.Bytes(uint64(result.Archive.Size)),
			humanize.Bytes(uint64(result.Archive.CompressedSize)))
	}
	out.WriteString(line(s, "contents", summary))

	if opts.ShowFiles {
		out.WriteString("\n")
		for _, e := range result.Entries {
			out.WriteString(s.file.Render(e.Name) + "\n")
		}
	}

	return out.String()
}

// FormatFileList renders resolved files one per line, sorted.
func FormatFileList(files filter.FileSet) string {
	var out strings.Builder
	for _, f := range files.Sorted() {
		out.WriteString(f)
		out.WriteString("\n")
	}
	return out.String()
}

func header(s styles, version string) string {
	if version == "" {
		version = "dev"
	}
	return s.header.Render("qumopa") + " " + s.muted.Render(version) + "\n\n"
}

func line(s styles, label, value string) string {
	return s.label.Render(label) + s.value.Render(value) + "\n"
}

func configSource(r *ResolveResult) string {
	if r == nil || r.Config == nil || r.Config.Source == "" {
		return "built-in defaults"
	}
	if rel, err := filepath.Rel(r.Dir, r.Config.Source); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return r.Config.Source
}
