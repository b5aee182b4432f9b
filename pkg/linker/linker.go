// Package linker reconciles the profile symlink at a computed
// (shell, scope) path against the desired source file.
//
// Machine-wide scopes route the filesystem mutation through an elevated
// child process; its exit code is checked and the target is then re-read,
// because elevation can be silently denied by the OS.
package linker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/proflink/pkg/elevate"
	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/logging"
	"github.com/arthur-debert/proflink/pkg/policy"
	"github.com/arthur-debert/proflink/pkg/profilepath"
	"github.com/arthur-debert/proflink/pkg/prompt"
)

// Kind classifies what currently occupies a profile path.
type Kind int

const (
	KindAbsent Kind = iota
	KindRegularFile
	KindSymlink
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRegularFile:
		return "regular file"
	case KindSymlink:
		return "symlink"
	}
	return "absent"
}

// State is the observable state of a profile path.
type State struct {
	Kind Kind
	// Dest is the link destination, set only for KindSymlink.
	Dest string
}

// Inspect reads the current state of a path without following links.
func Inspect(path string) State {
	info, err := os.Lstat(path)
	if err != nil {
		return State{Kind: KindAbsent}
	}
	if info.Mode()&os.ModeSymlink != 0 {
		dest, _ := os.Readlink(path)
		return State{Kind: KindSymlink, Dest: dest}
	}
	return State{Kind: KindRegularFile}
}

// Outcome is the per-target result of one reconciliation.
type Outcome string

const (
	OutcomeLinked  Outcome = "linked"
	OutcomeSkipped Outcome = "skipped"
	OutcomeRemoved Outcome = "removed"
	OutcomeAbsent  Outcome = "absent"
	OutcomeDryRun  Outcome = "dry-run"
)

// Reconciler transitions profile paths between absent and linked.
type Reconciler struct {
	elevator elevate.Elevator
	confirm  prompt.Confirmer
	exePath  string
	force    bool
	dryRun   bool
}

// Options configures a Reconciler.
type Options struct {
	Elevator elevate.Elevator
	Confirm  prompt.Confirmer
	// ExePath is the executable re-invoked for elevated link operations.
	// Defaults to the current executable.
	ExePath string
	Force   bool
	DryRun  bool
}

// NewReconciler creates a Reconciler.
func NewReconciler(opts Options) (*Reconciler, error) {
	exePath := opts.ExePath
	if exePath == "" {
		var err error
		exePath, err = os.Executable()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot locate own executable")
		}
	}
	return &Reconciler{
		elevator: opts.Elevator,
		confirm:  opts.Confirm,
		exePath:  exePath,
		force:    opts.Force,
		dryRun:   opts.DryRun,
	}, nil
}

// Install places a symlink to source at the profile path for (shell, scope).
// A declined overwrite is a skip, not an error.
func (r *Reconciler) Install(ctx context.Context, source string, shell policy.ShellTarget, scope policy.Scope) (Outcome, error) {
	logger := logging.GetLogger("linker")

	source, err := resolveSource(source)
	if err != nil {
		return "", err
	}
	target, err := profilepath.Profile(shell, scope)
	if err != nil {
		return "", err
	}

	logger.Debug().
		Str("source", source).
		Str("target", target).
		Str("shell", shell.String()).
		Str("scope", scope.String()).
		Msg("Reconciling profile link")

	state := Inspect(target)
	if state.Kind == KindSymlink && state.Dest == source {
		logger.Debug().Str("target", target).Msg("link already in place")
		return OutcomeLinked, nil
	}

	if state.Kind != KindAbsent && !r.force {
		question := fmt.Sprintf("%s already exists as a %s, overwrite?", target, state.Kind)
		if !r.confirm.Confirm(question) {
			logger.Info().Str("target", target).Msg("skipping, existing entry kept")
			return OutcomeSkipped, nil
		}
	}

	if r.dryRun {
		logger.Info().Str("target", target).Msg("dry-run: would link")
		return OutcomeDryRun, nil
	}

	if scope.MachineWide() && !r.elevator.Elevated(ctx) {
		return r.installElevated(ctx, source, target)
	}

	if err := CreateLink(source, target); err != nil {
		return "", err
	}
	return OutcomeLinked, nil
}

// installElevated delegates the mkdir+symlink to an elevated child and
// verifies success by re-reading the target afterward.
func (r *Reconciler) installElevated(ctx context.Context, source, target string) (Outcome, error) {
	logger := logging.GetLogger("linker")

	err := r.elevator.Run(ctx, r.exePath, []string{"linkexec", source, target})
	if err != nil {
		logger.Warn().Err(err).Str("target", target).Msg("elevated link creation reported failure")
	}

	state := Inspect(target)
	if state.Kind != KindSymlink || state.Dest != source {
		if err == nil {
			err = errors.Newf(errors.ErrElevation, "elevated child exited cleanly but %s was not created", target)
		}
		return "", err
	}
	return OutcomeLinked, nil
}

// Remove deletes whatever occupies the profile path for (shell, scope).
// An absent path is a no-op success.
func (r *Reconciler) Remove(ctx context.Context, shell policy.ShellTarget, scope policy.Scope) (Outcome, error) {
	logger := logging.GetLogger("linker")

	target, err := profilepath.Profile(shell, scope)
	if err != nil {
		return "", err
	}

	state := Inspect(target)
	if state.Kind == KindAbsent {
		logger.Debug().Str("target", target).Msg("nothing to remove")
		return OutcomeAbsent, nil
	}

	// Informational only: a foreign regular file is removed the same way.
	if state.Kind == KindRegularFile {
		logger.Info().Str("target", target).Msg("target is a regular file, not a managed link")
	}

	if r.dryRun {
		logger.Info().Str("target", target).Msg("dry-run: would remove")
		return OutcomeDryRun, nil
	}

	if scope.MachineWide() && !r.elevator.Elevated(ctx) {
		return r.removeElevated(ctx, target)
	}

	if err := RemoveLink(target); err != nil {
		return "", err
	}
	return OutcomeRemoved, nil
}

func (r *Reconciler) removeElevated(ctx context.Context, target string) (Outcome, error) {
	err := r.elevator.Run(ctx, r.exePath, []string{"linkexec", "--remove", target})

	if state := Inspect(target); state.Kind != KindAbsent {
		if err == nil {
			err = errors.Newf(errors.ErrElevation, "elevated child exited cleanly but %s still exists", target)
		}
		return "", err
	}
	return OutcomeRemoved, nil
}

// CreateLink ensures the parent directory and creates the symlink,
// replacing whatever occupies the target. Used directly by the elevated
// child, where the overwrite decision was already made by the parent.
func CreateLink(source, target string) error {
	if !filepath.IsAbs(source) {
		return errors.Newf(errors.ErrPathRelative, "link source %s must be absolute", source)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(target))
	}

	if state := Inspect(target); state.Kind != KindAbsent {
		if err := os.Remove(target); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "cannot remove existing %s", target)
		}
	}

	if err := os.Symlink(source, target); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", target, source)
	}
	return nil
}

// RemoveLink deletes the entry at target.
func RemoveLink(target string) error {
	if err := os.Remove(target); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", target)
	}
	return nil
}

// resolveSource turns the configured source into an absolute, existing path.
// Relative sources are resolved eagerly so the link stays valid regardless
// of the working directory it was created from.
func resolveSource(source string) (string, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathRelative, "cannot resolve %s", source)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "profile source %s not found", abs)
	}
	return abs, nil
}
