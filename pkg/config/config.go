// Package config loads the immutable run configuration: the fixed
// supporting-package list, the theme repository, and the profile source.
//
// Defaults are embedded; an optional user file and PROFLINK_* environment
// variables are layered on top. The resulting Config is constructed once
// and passed into the orchestrators, never mutated afterward.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/pkgmgr"
)

// ProfileConfig configures the profile source file.
type ProfileConfig struct {
	// Source is the profile script that gets linked into place.
	// Empty means the bundled profile under the user config dir.
	Source string `koanf:"source" toml:"source" yaml:"source"`
}

// ThemeConfig configures the theme-repository fetch.
type ThemeConfig struct {
	Repository string `koanf:"repository" toml:"repository" yaml:"repository"`
	// Dir overrides the destination directory; empty uses the default
	// themes directory under the user's documents folder.
	Dir string `koanf:"dir" toml:"dir" yaml:"dir"`
}

// Config is the complete, immutable run configuration.
type Config struct {
	Profile  ProfileConfig        `koanf:"profile" toml:"profile" yaml:"profile"`
	Theme    ThemeConfig          `koanf:"theme" toml:"theme" yaml:"theme"`
	Packages []pkgmgr.PackageSpec `koanf:"packages" toml:"packages" yaml:"packages"`
}

// Dir returns the proflink config directory under the XDG config home.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "proflink")
}

// DefaultProfilePath is where `proflink init` places the bundled profile and
// where an empty profile.source resolves to.
func DefaultProfilePath() string {
	return filepath.Join(Dir(), "Profile.ps1")
}

// userConfigCandidates lists the user config files in load order; the first
// one that exists wins.
func userConfigCandidates() []string {
	return []string{
		filepath.Join(Dir(), "proflink.toml"),
		filepath.Join(Dir(), "proflink.yaml"),
	}
}

// Load builds the Config from embedded defaults, the optional user config
// file and PROFLINK_* environment variables, in that order of precedence.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	for _, path := range userConfigCandidates() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", path)
		}
		break
	}

	if err := k.Load(env.Provider("PROFLINK_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PROFLINK_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if cfg.Profile.Source == "" {
		cfg.Profile.Source = DefaultProfilePath()
	}

	return &cfg, nil
}
