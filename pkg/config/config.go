// Package config loads the relink configuration: a table of user aliases
// and an ordered list of link declarations.
package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/types"
)

// Config is the loaded configuration. Links keep declaration order so
// report output is deterministic.
type Config struct {
	Aliases map[string]string
	Links   []types.Link
}

// Load reads and validates the configuration file at path. The parser is
// chosen by file extension (.toml, .json, .yaml/.yml).
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "could not parse %s", path)
	}

	cfg := &Config{Aliases: make(map[string]string)}

	if raw := k.Get("aliases"); raw != nil {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse,
				"aliases must be a table of strings in %s", path)
		}
		for name, value := range m {
			s, ok := value.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrConfigParse,
					"alias %q must be a string, got %T", name, value)
			}
			cfg.Aliases[name] = s
		}
	}

	for i, sub := range k.Slices("links") {
		link := types.Link{
			Source:      sub.String("source"),
			Destination: sub.String("destination"),
			Force:       sub.Bool("force"),
		}
		if link.Source == "" {
			return nil, errors.Newf(errors.ErrConfigParse,
				"links[%d]: source is required", i)
		}
		if link.Destination == "" {
			return nil, errors.Newf(errors.ErrConfigParse,
				"links[%d]: destination is required", i)
		}
		cfg.Links = append(cfg.Links, link)
	}

	logger.Debug().
		Str("path", path).
		Int("aliases", len(cfg.Aliases)).
		Int("links", len(cfg.Links)).
		Msg("configuration loaded")

	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config format %q (want .toml, .json or .yaml)", filepath.Ext(path))
	}
}
