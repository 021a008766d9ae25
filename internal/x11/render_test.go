package x11

import (
	"testing"

	"github.com/1broseidon/dome/internal/hub"
)

func TestRendererResolveParsesWindowID(t *testing.T) {
	r := &Renderer{}

	win, ok := r.resolve("x11:4242", true)
	if !ok {
		t.Fatal("expected resolve to succeed for a well-formed key")
	}
	if win != 4242 {
		t.Fatalf("got window %d, want 4242", win)
	}
}

func TestRendererResolveRejectsNotFound(t *testing.T) {
	r := &Renderer{}

	if _, ok := r.resolve("x11:1", false); ok {
		t.Fatal("resolve should fail when found is false regardless of key")
	}
}

func TestRendererResolveRejectsWrongPrefix(t *testing.T) {
	r := &Renderer{}

	if _, ok := r.resolve("wayland:1", true); ok {
		t.Fatal("resolve should reject keys minted by another adapter")
	}
}

func TestRendererResolveRejectsMalformedSuffix(t *testing.T) {
	r := &Renderer{}

	if _, ok := r.resolve("x11:not-a-number", true); ok {
		t.Fatal("resolve should reject a non-numeric suffix")
	}
}

type fakeKeyResolver struct {
	windows map[hub.WindowID]string
	floats  map[hub.FloatWindowID]string
}

func (f *fakeKeyResolver) KeyForWindow(id hub.WindowID) (string, bool) {
	k, ok := f.windows[id]
	return k, ok
}

func (f *fakeKeyResolver) KeyForFloat(id hub.FloatWindowID) (string, bool) {
	k, ok := f.floats[id]
	return k, ok
}

func TestRendererRaiseFocusNilIsNoOp(t *testing.T) {
	r := &Renderer{keys: &fakeKeyResolver{}}
	r.raiseFocus(nil) // must not panic despite a nil conn
}

func TestRendererRaiseFocusUnresolvedTilingIsNoOp(t *testing.T) {
	r := &Renderer{keys: &fakeKeyResolver{}}
	focus := hub.FocusOnTiling(hub.ChildOfWindow(hub.WindowID(7)))
	r.raiseFocus(&focus) // no key registered for window 7; must not panic
}

func TestRendererRaiseFocusUnresolvedFloatIsNoOp(t *testing.T) {
	r := &Renderer{keys: &fakeKeyResolver{}}
	focus := hub.FocusOnFloat(hub.FloatWindowID(3))
	r.raiseFocus(&focus)
}

func TestRendererRaiseFocusUnresolvedFullscreenIsNoOp(t *testing.T) {
	r := &Renderer{keys: &fakeKeyResolver{}}
	focus := hub.FocusOnFullscreen(hub.WindowID(9))
	r.raiseFocus(&focus)
}
