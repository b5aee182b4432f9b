package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/proflink/pkg/errors"
)

// GenerateUserConfig renders a Config as a TOML document, used by
// `proflink init` to scaffold an editable user config file.
func GenerateUserConfig(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to serialize configuration")
	}
	return string(out), nil
}
