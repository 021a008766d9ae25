package daemon

import (
	"log/slog"
	"testing"
)

func TestReconcileNowRemovesOrphanedWindow(t *testing.T) {
	_, r := newTestRegistry(t)
	r.Sync("x11:1")
	r.Sync("x11:2")

	rec := NewReconciler(ReconcilerConfig{
		CleanupOrphaned: true,
		Logger:          slog.Default(),
	}, r, func() ([]string, error) {
		return []string{"x11:1"}, nil // x11:2 has vanished
	})

	rec.ReconcileNow()

	if _, ok := r.WindowForKey("x11:1"); !ok {
		t.Fatal("expected x11:1 to remain tracked")
	}
	if _, ok := r.WindowForKey("x11:2"); ok {
		t.Fatal("expected x11:2 to be reconciled away as orphaned")
	}
}

func TestReconcileNowSkipsWhenCleanupDisabled(t *testing.T) {
	_, r := newTestRegistry(t)
	r.Sync("x11:1")

	rec := NewReconciler(ReconcilerConfig{
		CleanupOrphaned: false,
		Logger:          slog.Default(),
	}, r, func() ([]string, error) {
		return nil, nil
	})

	rec.ReconcileNow()

	if _, ok := r.WindowForKey("x11:1"); !ok {
		t.Fatal("expected x11:1 to survive when cleanup is disabled")
	}
}

func TestReconcileNowSkipsWhenNothingTracked(t *testing.T) {
	_, r := newTestRegistry(t)
	called := false

	rec := NewReconciler(ReconcilerConfig{
		CleanupOrphaned: true,
		Logger:          slog.Default(),
	}, r, func() ([]string, error) {
		called = true
		return nil, nil
	})

	rec.ReconcileNow()

	if called {
		t.Fatal("expected listWindows not to be called when nothing is tracked")
	}
}
