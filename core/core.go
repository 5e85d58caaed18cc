package core

import (
	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core/archive"
	"github.com/qumopa/qumopa/core/config"
	"github.com/qumopa/qumopa/core/filter"
)

type PackOptions struct {
	Version        string
	ConfigFilePath string
	NoSeed         bool

	// ExtraFilter is applied after the config's filter list.
	ExtraFilter []string

	// Rooted forces rooted entry names regardless of the config.
	Rooted bool

	// DryRun plans the archive without writing it.
	DryRun bool
}

type ResolveResult struct {
	Dir      string           `json:"dir"`
	Config   *config.Result   `json:"-"`
	Patterns []filter.Pattern `json:"patterns"`
	Files    filter.FileSet   `json:"-"`
}

type PackResult struct {
	*ResolveResult

	Name    string          `json:"name"`
	Rooted  bool            `json:"rooted"`
	DryRun  bool            `json:"dryRun,omitempty"`
	Entries []archive.Entry `json:"entries"`

	// Archive is nil on a dry run.
	Archive *archive.Result `json:"archive,omitempty"`
}

// ResolveFiles loads the config for dir and resolves its pattern list.
func ResolveFiles(dir string, options *PackOptions) (*ResolveResult, error) {
	cfg, err := config.Load(dir, config.LoadOptions{
		ConfigFilePath: options.ConfigFilePath,
		NoSeed:         options.NoSeed,
		Version:        options.Version,
	})
	if err != nil {
		return nil, err
	}

	patterns := append(cfg.Patterns(), filter.ParsePatterns(options.ExtraFilter)...)
	resolver := filter.NewResolver(dir, filter.Options{MatchHidden: cfg.Config.IncludeHidden})

	files, err := resolver.Resolve(patterns)
	if err != nil {
		return nil, err
	}

	log.Debugf("Resolved %d files in %s", files.Len(), dir)

	return &ResolveResult{
		Dir:      dir,
		Config:   cfg,
		Patterns: patterns,
		Files:    files,
	}, nil
}

// Pack resolves the files of dir and writes them to the project archive.
func Pack(dir string, options *PackOptions) (*PackResult, error) {
	resolved, err := ResolveFiles(dir, options)
	if err != nil {
		return nil, err
	}

	rooted := options.Rooted || resolved.Config.Config.Rooted
	packager := archive.NewPackager(dir, archive.Options{Rooted: rooted})

	result := &PackResult{
		ResolveResult: resolved,
		Rooted:        rooted,
		DryRun:        options.DryRun,
	}

	if options.DryRun {
		name, entries, err := packager.Plan(resolved.Files)
		if err != nil {
			return nil, err
		}
		result.Name = name
		result.Entries = entries
		return result, nil
	}

	archiveResult, err := packager.Package(resolved.Files)
	if err != nil {
		return nil, err
	}

	result.Name = archiveResult.Name
	result.Entries = archiveResult.Entries
	result.Archive = archiveResult

	return result, nil
}
