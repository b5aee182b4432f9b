package pkgmgr

import (
	"context"

	"github.com/arthur-debert/proflink/pkg/logging"
)

// PackageStatus is the per-package outcome of a reconciliation pass.
type PackageStatus string

const (
	StatusPresent   PackageStatus = "present"
	StatusInstalled PackageStatus = "installed"
	StatusRemoved   PackageStatus = "removed"
	StatusSkipped   PackageStatus = "skipped"
	StatusFailed    PackageStatus = "failed"
)

// Result reports what happened to one package.
type Result struct {
	Package PackageSpec
	Status  PackageStatus
	Err     error
}

// Reconciler converges a fixed package list through a Manager.
// Each package is an independent reconciliation unit: one failure is
// recorded and never stops the remaining packages.
type Reconciler struct {
	manager Manager
	dryRun  bool
}

// NewReconciler creates a Reconciler over the given manager.
func NewReconciler(manager Manager, dryRun bool) *Reconciler {
	return &Reconciler{manager: manager, dryRun: dryRun}
}

// EnsureInstalled installs every absent package from the list.
// Already-present packages trigger no install invocation.
func (r *Reconciler) EnsureInstalled(ctx context.Context, packages []PackageSpec) []Result {
	logger := logging.GetLogger("pkgmgr.reconcile")
	results := make([]Result, 0, len(packages))

	for _, spec := range packages {
		installed, err := r.manager.IsInstalled(ctx, spec.ID)
		if err != nil {
			logger.Warn().Err(err).Str("package", spec.ID).Msg("presence check failed")
			results = append(results, Result{Package: spec, Status: StatusFailed, Err: err})
			continue
		}
		if installed {
			logger.Debug().Str("package", spec.ID).Msg("already installed")
			results = append(results, Result{Package: spec, Status: StatusPresent})
			continue
		}
		if r.dryRun {
			results = append(results, Result{Package: spec, Status: StatusSkipped})
			continue
		}
		if err := r.manager.Install(ctx, spec); err != nil {
			logger.Warn().Err(err).Str("package", spec.ID).Msg("install failed, continuing")
			results = append(results, Result{Package: spec, Status: StatusFailed, Err: err})
			continue
		}
		logger.Info().Str("package", spec.ID).Msg("installed")
		results = append(results, Result{Package: spec, Status: StatusInstalled})
	}

	return results
}

// CollectPresent returns the subset of the list that is actually installed.
// Used by the uninstall flow to show the user what removal would touch.
func (r *Reconciler) CollectPresent(ctx context.Context, packages []PackageSpec) []PackageSpec {
	logger := logging.GetLogger("pkgmgr.reconcile")
	present := make([]PackageSpec, 0, len(packages))
	for _, spec := range packages {
		installed, err := r.manager.IsInstalled(ctx, spec.ID)
		if err != nil {
			logger.Warn().Err(err).Str("package", spec.ID).Msg("presence check failed")
			continue
		}
		if installed {
			present = append(present, spec)
		}
	}
	return present
}

// EnsureRemoved uninstalls every package from the list.
// Failures are per-package and non-fatal to siblings.
func (r *Reconciler) EnsureRemoved(ctx context.Context, packages []PackageSpec) []Result {
	logger := logging.GetLogger("pkgmgr.reconcile")
	results := make([]Result, 0, len(packages))

	for _, spec := range packages {
		if r.dryRun {
			results = append(results, Result{Package: spec, Status: StatusSkipped})
			continue
		}
		if err := r.manager.Uninstall(ctx, spec.ID); err != nil {
			logger.Warn().Err(err).Str("package", spec.ID).Msg("uninstall failed, continuing")
			results = append(results, Result{Package: spec, Status: StatusFailed, Err: err})
			continue
		}
		logger.Info().Str("package", spec.ID).Msg("removed")
		results = append(results, Result{Package: spec, Status: StatusRemoved})
	}

	return results
}
