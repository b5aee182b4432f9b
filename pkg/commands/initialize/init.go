// Package initialize scaffolds the user config directory: the bundled
// profile script plus an editable configuration file.
package initialize

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/proflink/pkg/config"
	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/logging"
	"github.com/arthur-debert/proflink/pkg/profile"
)

// Options defines the options for the init command.
type Options struct {
	// Dir overrides the target directory; empty uses the user config dir.
	Dir string
	// Force overwrites an existing config file.
	Force bool
}

// Result lists what was written.
type Result struct {
	ProfilePath string
	ConfigPath  string
	// ConfigExisted is true when the config file was already present and
	// left untouched.
	ConfigExisted bool
}

// Run writes the starter profile and a default config file.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.init")

	dir := opts.Dir
	if dir == "" {
		dir = config.Dir()
	}

	profilePath, err := profile.WriteDefault(dir)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("path", profilePath).Msg("profile scaffolded")

	configPath := filepath.Join(dir, "proflink.toml")
	if _, statErr := os.Stat(configPath); statErr == nil && !opts.Force {
		return &Result{ProfilePath: profilePath, ConfigPath: configPath, ConfigExisted: true}, nil
	}

	content, err := config.GenerateUserConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", configPath)
	}
	logger.Info().Str("path", configPath).Msg("config scaffolded")

	return &Result{ProfilePath: profilePath, ConfigPath: configPath}, nil
}
