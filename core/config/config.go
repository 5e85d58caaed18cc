package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core/errs"
	"github.com/qumopa/qumopa/core/filter"
)

//go:embed default.toml
var defaultTemplate []byte

const DefaultConfigFileName = "qumopa.toml"

// CandidateFiles are looked up in the project directory in this order, the
// first one that exists is used.
var CandidateFiles = []string{
	DefaultConfigFileName,
	"qumopa.json",
	"qumopa.yaml",
	"qumopa.yml",
	"qumopa.filter",
}

var defaultFilter = []string{
	"**/*",
	"!qumopa",
	"!qumopa.exe",
	"!qumopa.toml",
	"!qumopa.json",
	"!qumopa.yaml",
	"!qumopa.yml",
	"!qumopa.filter",
	"!config.cfg",
	"!*.sav",
	"!*.dem",
	"!*.tga",
	"!*.jpg",
	"!*.jpeg",
	"!*.png",
	"!__pycache__/**",
	"demo[0-9].dem",
}

type Config struct {
	Schema        string   `json:"$schema,omitempty" toml:"$schema,omitempty" yaml:"$schema,omitempty" jsonschema:"description=Schema reference for editors, ignored by qumopa"`
	Filter        []string `json:"filter" toml:"filter" yaml:"filter" jsonschema:"description=Ordered glob patterns. A leading ! removes matches from the set instead of adding them"`
	Rooted        bool     `json:"rooted,omitempty" toml:"rooted,omitempty" yaml:"rooted,omitempty" jsonschema:"description=Store entries under a folder named after the project directory"`
	IncludeHidden bool     `json:"include_hidden,omitempty" toml:"include_hidden,omitempty" yaml:"include_hidden,omitempty" jsonschema:"description=Let wildcards match names starting with a dot"`
	Requires      string   `json:"requires,omitempty" toml:"requires,omitempty" yaml:"requires,omitempty" jsonschema:"description=Semver constraint on the qumopa version"`
}

// DefaultFilter returns a copy of the built-in pattern list.
func DefaultFilter() []string {
	return slices.Clone(defaultFilter)
}

func DefaultConfig() *Config {
	return &Config{Filter: DefaultFilter()}
}

func (c *Config) Patterns() []filter.Pattern {
	return filter.ParsePatterns(c.Filter)
}

type LoadOptions struct {
	// ConfigFilePath overrides the candidate lookup. Relative paths are
	// resolved against the project directory.
	ConfigFilePath string

	// NoSeed skips writing the default config when none exists.
	NoSeed bool

	// Version is checked against the config's requires constraint.
	Version string
}

type Result struct {
	Config *Config

	// Source is the config file used, empty for the built-in defaults.
	Source string

	// Seeded is the default config file written during this load, if any.
	Seeded string
}

func (r *Result) Patterns() []filter.Pattern {
	return r.Config.Patterns()
}

// Load finds the project's config in dir. When there is none, the default
// template is written to dir for the user to edit and the built-in defaults
// are used for this run.
func Load(dir string, opts LoadOptions) (*Result, error) {
	if opts.ConfigFilePath != "" {
		path := opts.ConfigFilePath
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}

		if !fileExists(path) {
			return nil, errs.Wrapf(errs.KindConfigImport, os.ErrNotExist, "Unable to import configuration %s", opts.ConfigFilePath)
		}

		return loadFile(path, opts)
	}

	for _, name := range CandidateFiles {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return loadFile(path, opts)
		}
	}

	result := &Result{Config: DefaultConfig()}

	if !opts.NoSeed {
		seeded, err := WriteDefault(dir, false)
		if err != nil {
			return nil, errs.Wrap(errs.KindConfigCopy, err, "Unable to use default config")
		}
		log.Infof("Wrote default configuration to %s", seeded)
		result.Seeded = seeded
	}

	return result, nil
}

func loadFile(path string, opts LoadOptions) (*Result, error) {
	log.Debugf("Loading configuration from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(errs.KindConfigImport, err, "Unable to import configuration %s", filepath.Base(path))
	}

	cfg, err := Decode(filepath.Base(path), data)
	if err != nil {
		return nil, errs.Wrapf(errs.KindConfigImport, err, "Unable to import configuration %s", filepath.Base(path))
	}

	if err := checkRequires(cfg.Requires, opts.Version); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Source: path}, nil
}

// WriteDefault writes the default config template into dir and returns its
// path. An existing file is only replaced when force is set.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, DefaultConfigFileName)

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return "", err
	}

	if _, err := f.Write(defaultTemplate); err != nil {
		_ = f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	return path, nil
}

func DefaultTemplate() []byte {
	return slices.Clone(defaultTemplate)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
