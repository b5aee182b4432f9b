// Package profile carries the bundled starter profile script.
// Its content is an opaque payload as far as proflink is concerned;
// only its placement matters.
package profile

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/arthur-debert/proflink/pkg/errors"
)

//go:embed Profile.ps1
var bundledProfile []byte

// Content returns the bundled profile script.
func Content() []byte {
	return bundledProfile
}

// WriteDefault writes the bundled profile into dir, creating it if needed.
// An existing file is left untouched; the returned path points at it either
// way.
func WriteDefault(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
	}

	path := filepath.Join(dir, "Profile.ps1")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.WriteFile(path, bundledProfile, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
	}
	return path, nil
}
