package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/moby/patternmatcher/ignorefile"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v2"
)

var errMissingFilter = errors.New("configuration does not define filter")

// Decode parses a config file, choosing the format from the file name's
// extension. Anything that is not toml, json or yaml is read as a plain
// pattern list, one pattern per line.
func Decode(name string, data []byte) (*Config, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return decodeTOML(name, data)
	case ".json", ".jsonc":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodePatternList(data)
	}
}

func decodeTOML(name string, data []byte) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing toml")
	}

	for _, key := range md.Undecoded() {
		log.Warnf("Unknown key %q in %s", key.String(), name)
	}

	if !md.IsDefined("filter") {
		return nil, errMissingFilter
	}

	return cfg, nil
}

// decodeJSON accepts JSON with comments and trailing commas.
func decodeJSON(data []byte) (*Config, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing json")
	}

	cfg := &Config{}
	if err := json.Unmarshal(standard, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing json")
	}

	if cfg.Filter == nil {
		return nil, errMissingFilter
	}

	return cfg, nil
}

func decodeYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing yaml")
	}

	if cfg.Filter == nil {
		return nil, errMissingFilter
	}

	return cfg, nil
}

// decodePatternList reads a .dockerignore style file: one pattern per line,
// '#' comments, blank lines skipped. Unlike .dockerignore, plain lines
// include and '!' lines exclude. As in .dockerignore, patterns are cleaned
// and anchored to the project directory, so "/maps/*" is "maps/*". Patterns
// leaving the project directory are kept and rejected by the resolver.
func decodePatternList(data []byte) (*Config, error) {
	patterns, err := ignorefile.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing pattern list")
	}

	if patterns == nil {
		patterns = []string{}
	}

	return &Config{Filter: patterns}, nil
}
