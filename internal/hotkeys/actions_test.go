package hotkeys

import (
	"testing"

	"github.com/1broseidon/dome/internal/daemon"
	"github.com/1broseidon/dome/internal/hub"
)

func TestParseActionKnownName(t *testing.T) {
	a, err := ParseAction("focus_left")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != hub.ActionFocusLeft {
		t.Fatalf("got kind %v, want ActionFocusLeft", a.Kind)
	}
}

func TestParseActionDeleteWindowUsesFocusedSentinel(t *testing.T) {
	a, err := ParseAction("delete_window")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != hub.ActionDeleteWindow {
		t.Fatalf("got kind %v, want ActionDeleteWindow", a.Kind)
	}
	if a.Window != daemon.FocusedWindow {
		t.Fatalf("got window %d, want the FocusedWindow sentinel", a.Window)
	}
}

func TestParseActionUnknownName(t *testing.T) {
	if _, err := ParseAction("not_a_real_action"); err == nil {
		t.Fatal("expected an error for an unrecognized action name")
	}
}
