package daemon

import (
	"log/slog"
	"testing"

	"github.com/1broseidon/dome/internal/hub"
)

func newTestRegistry(t *testing.T) (*hub.Hub, *WindowRegistry) {
	t.Helper()
	h := hub.NewHub(hub.DefaultConfig())
	h.AddMonitor("primary", hub.Dimension{Width: 150, Height: 30})
	return h, NewWindowRegistry(h, slog.Default())
}

func TestWindowRegistrySyncInsertsOnce(t *testing.T) {
	_, r := newTestRegistry(t)

	id1 := r.Sync("x11:1")
	id2 := r.Sync("x11:1")
	if id1 != id2 {
		t.Fatalf("expected repeated Sync to return the same WindowID, got %d and %d", id1, id2)
	}
}

func TestWindowRegistryTerminatedForgetsMapping(t *testing.T) {
	h, r := newTestRegistry(t)
	id := r.Sync("x11:1")
	r.SetTitle("x11:1", "shell")

	r.Terminated("x11:1")

	if _, ok := r.WindowForKey("x11:1"); ok {
		t.Fatal("expected mapping to be forgotten after Terminated")
	}
	if title := r.TitleOf(id); title != "" {
		t.Fatalf("expected title to be forgotten, got %q", title)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected the underlying window to be deleted from the hub")
		}
	}()
	h.GetWindow(id)
}

func TestWindowRegistryKeyForWindowRoundTrips(t *testing.T) {
	_, r := newTestRegistry(t)
	id := r.Sync("x11:7")

	key, ok := r.KeyForWindow(id)
	if !ok || key != "x11:7" {
		t.Fatalf("got (%q, %v), want (\"x11:7\", true)", key, ok)
	}
}

func TestWindowRegistryConvertToFloatAndBack(t *testing.T) {
	_, r := newTestRegistry(t)
	r.Sync("x11:1")

	r.ConvertToFloat(0, 3)
	if _, ok := r.KeyForWindow(0); ok {
		t.Fatal("expected the window key to be dropped after converting to a float")
	}
	key, ok := r.KeyForFloat(3)
	if !ok || key != "x11:1" {
		t.Fatalf("got (%q, %v), want (\"x11:1\", true)", key, ok)
	}

	r.ConvertToTiling(5, 3)
	if _, ok := r.KeyForFloat(3); ok {
		t.Fatal("expected the float key to be dropped after converting back to tiling")
	}
	if id, ok := r.WindowForKey("x11:1"); !ok || id != 5 {
		t.Fatalf("got (%d, %v), want (5, true)", id, ok)
	}
}

func TestWindowRegistryLiveKeys(t *testing.T) {
	_, r := newTestRegistry(t)
	r.Sync("x11:1")
	r.Sync("x11:2")

	keys := r.LiveKeys()
	if len(keys) != 2 {
		t.Fatalf("got %d live keys, want 2", len(keys))
	}
}
