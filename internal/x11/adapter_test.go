package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestProcessKeyFormatsRawWindowID(t *testing.T) {
	got := processKey(xproto.Window(77))
	if got != "x11:77" {
		t.Fatalf("processKey(77) = %q, want %q", got, "x11:77")
	}
}

func TestProcessKeyRoundTripsThroughRendererResolve(t *testing.T) {
	r := &Renderer{}
	key := processKey(xproto.Window(99))

	win, ok := r.resolve(string(key), true)
	if !ok {
		t.Fatalf("resolve(%q) failed, want success", key)
	}
	if win != 99 {
		t.Fatalf("got window %d, want 99", win)
	}
}
