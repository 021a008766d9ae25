package daemon

import (
	"context"
	"log/slog"
	"time"
)

// WindowLister is a function that returns the OS adapter's currently
// live window keys.
type WindowLister func() ([]string, error)

// ReconcilerConfig holds configuration for the reconciler.
type ReconcilerConfig struct {
	Interval        time.Duration
	CleanupOrphaned bool
	Logger          *slog.Logger
}

// Reconciler periodically checks the window registry for drift against
// the adapter's actual window list and corrects it, covering the case
// where an AppTerminated event is dropped or arrives out of order.
type Reconciler struct {
	interval        time.Duration
	cleanupOrphaned bool
	registry        *WindowRegistry
	listWindows     WindowLister
	logger          *slog.Logger
}

// NewReconciler creates a new reconciler with the given configuration.
func NewReconciler(cfg ReconcilerConfig, registry *WindowRegistry, listWindows WindowLister) *Reconciler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &Reconciler{
		interval:        interval,
		cleanupOrphaned: cfg.CleanupOrphaned,
		registry:        registry,
		listWindows:     listWindows,
		logger:          cfg.Logger,
	}
}

// Run starts the reconciliation loop. Blocks until context is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.reconcile()
		}
	}
}

// reconcile performs a single reconciliation pass.
func (r *Reconciler) reconcile() {
	defer func() {
		if err := recover(); err != nil {
			r.logger.Error("reconciler panic recovered", "error", err)
		}
	}()

	if !r.cleanupOrphaned {
		return
	}

	tracked := r.registry.LiveKeys()
	if len(tracked) == 0 {
		return
	}

	actualKeys, err := r.listWindows()
	if err != nil {
		r.logger.Error("reconciler: failed to list windows", "error", err)
		return
	}

	live := make(map[string]bool, len(actualKeys))
	for _, k := range actualKeys {
		live[k] = true
	}

	for _, key := range tracked {
		if live[key] {
			continue
		}
		r.logger.Info("reconciler: orphaned window detected, deleting", "key", key)
		r.registry.Terminated(key)
	}
}

// ReconcileNow triggers an immediate reconciliation pass.
func (r *Reconciler) ReconcileNow() {
	r.reconcile()
}
