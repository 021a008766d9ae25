package hub

import "testing"

func TestAddMonitorFirstBecomesFocused(t *testing.T) {
	h := NewHub(DefaultConfig())
	m0 := h.AddMonitor("primary", Dimension{Width: 150, Height: 30})
	if h.FocusedMonitor() != m0 {
		t.Fatalf("expected first monitor to be focused, got %d want %d", h.FocusedMonitor(), m0)
	}

	m1 := h.AddMonitor("secondary", Dimension{Width: 100, Height: 30})
	if h.FocusedMonitor() != m0 {
		t.Fatalf("expected focused monitor to stay on the first one after adding a second")
	}
	h.FocusMonitor(m1)
	if h.FocusedMonitor() != m1 {
		t.Fatalf("expected FocusMonitor to switch focus")
	}
}

func TestFocusWorkspaceCreatesAndPrunes(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	original := h.CurrentWorkspace()

	h.FocusWorkspace(2)
	second := h.CurrentWorkspace()
	if second == original {
		t.Fatalf("expected focus_workspace(2) to switch to a new workspace")
	}
	if h.GetWorkspace(second).Name != 2 {
		t.Fatalf("expected new workspace named 2, got %d", h.GetWorkspace(second).Name)
	}

	// original workspace was empty, so switching away from it should prune it
	_, found := findWorkspace(h, original)
	if found {
		t.Fatalf("expected empty previous workspace to be pruned")
	}
}

func findWorkspace(h *Hub, id WorkspaceID) (*Workspace, bool) {
	return nil, h.workspaces.Valid(int(id))
}

func TestFocusWorkspaceKeepsNonEmptyPrevious(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	original := h.CurrentWorkspace()
	h.InsertTiling()

	h.FocusWorkspace(2)
	_, found := findWorkspace(h, original)
	if !found {
		t.Fatalf("expected non-empty previous workspace to survive")
	}
}

func TestRemoveMonitorReassignsWorkspaces(t *testing.T) {
	h, m0 := newTestHub(Dimension{Width: 150, Height: 30})
	m1 := h.AddMonitor("secondary", Dimension{Width: 100, Height: 30})

	h.FocusMonitor(m1)
	h.InsertTiling()
	ws1 := h.CurrentWorkspace()
	name1 := h.GetWorkspace(ws1).Name

	h.RemoveMonitor(m1, m0)
	if h.FocusedMonitor() != m0 {
		t.Fatalf("expected focus to fall back to m0 after removing the focused monitor")
	}
	moved := h.GetWorkspace(ws1)
	if moved.Monitor != m0 {
		t.Fatalf("expected workspace to be reassigned to fallback monitor, got %d", moved.Monitor)
	}
	if moved.Name != name1 {
		t.Fatalf("expected workspace to keep its name when the colliding workspace is empty, got %d want %d", moved.Name, name1)
	}
}

func TestSnapshotReportsTabTitles(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	h.ToggleContainerLayout()

	titles := map[WindowID]string{w0: "alpha", w1: "beta"}
	snap := h.Snapshot(ws, func(id WindowID) string { return titles[id] })

	if len(snap.Containers) != 1 {
		t.Fatalf("expected one tabbed container in snapshot, got %d", len(snap.Containers))
	}
	got := snap.Containers[0].TabTitles
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Fatalf("expected tab titles [alpha beta], got %v", got)
	}
}
