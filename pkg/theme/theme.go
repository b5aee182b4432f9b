// Package theme fetches the prompt-theme asset repository.
package theme

import (
	"context"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/logging"
)

// FetchOutcome reports what Ensure did.
type FetchOutcome string

const (
	OutcomePresent FetchOutcome = "present"
	OutcomeCloned  FetchOutcome = "cloned"
	OutcomeDryRun  FetchOutcome = "dry-run"
)

// Fetcher clones the theme repository once. An existing destination is left
// untouched, updates are intentionally out of scope.
type Fetcher struct {
	url    string
	dryRun bool
}

// NewFetcher creates a Fetcher for the given repository URL.
func NewFetcher(url string, dryRun bool) *Fetcher {
	return &Fetcher{url: url, dryRun: dryRun}
}

// Ensure clones the repository into dest unless dest already exists.
// Presence is decided by path existence alone.
func (f *Fetcher) Ensure(ctx context.Context, dest string) (FetchOutcome, error) {
	logger := logging.GetLogger("theme")

	if _, err := os.Stat(dest); err == nil {
		logger.Debug().Str("dest", dest).Msg("theme repository already present")
		return OutcomePresent, nil
	}

	if f.dryRun {
		logger.Info().Str("url", f.url).Str("dest", dest).Msg("dry-run: would clone")
		return OutcomeDryRun, nil
	}

	logger.Info().Str("url", f.url).Str("dest", dest).Msg("cloning theme repository")
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:   f.url,
		Depth: 1,
	})
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrClone, "cannot clone %s", f.url)
	}
	return OutcomeCloned, nil
}
