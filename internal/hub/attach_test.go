package hub

import "testing"

func TestDeleteWindowCollapsesSingleChildContainer(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	w2 := h.InsertTiling()

	root := h.GetWorkspace(ws).Root
	if !root.IsContainer() {
		t.Fatalf("expected a container root with three windows, got %+v", root)
	}
	if n := len(h.GetContainer(root.Container).Children); n != 3 {
		t.Fatalf("expected 3 children, got %d", n)
	}

	h.DeleteWindow(w2)
	assertInvariants(t, h, ws)

	rootAfter := h.GetWorkspace(ws).Root
	if !rootAfter.IsContainer() {
		t.Fatalf("expected container root with two windows remaining, got %+v", rootAfter)
	}
	if n := len(h.GetContainer(rootAfter.Container).Children); n != 2 {
		t.Fatalf("expected 2 children after delete, got %d", n)
	}

	h.DeleteWindow(w1)
	assertInvariants(t, h, ws)
	rootFinal := h.GetWorkspace(ws).Root
	if rootFinal == nil || !rootFinal.IsWindow() || rootFinal.Window != w0 {
		t.Fatalf("expected the lone remaining window promoted to root (I7), got %+v", rootFinal)
	}
}

func TestFocusLeftRightRoundTrip(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	h.InsertTiling()
	w1 := h.InsertTiling()
	h.SetFocus(w1)

	h.FocusLeft()
	focusedAfterLeft := h.GetWorkspace(ws).Focused
	if focusedAfterLeft == nil || focusedAfterLeft.Kind != FocusTiling {
		t.Fatalf("expected tiling focus after focus_left, got %+v", focusedAfterLeft)
	}

	h.FocusRight()
	focusedAfterRight := h.GetWorkspace(ws).Focused
	if focusedAfterRight == nil || *focusedAfterRight != FocusOnTiling(ChildOfWindow(w1)) {
		t.Fatalf("expected focus_left then focus_right to restore original focus, got %+v", focusedAfterRight)
	}
}

func TestToggleContainerLayoutRoundTrip(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	h.InsertTiling()
	h.InsertTiling()
	before := snapshotTilingShape(h, ws)

	h.ToggleContainerLayout()
	assertInvariants(t, h, ws)
	root := h.GetWorkspace(ws).Root
	if !h.GetContainer(root.Container).IsTabbed {
		t.Fatalf("expected container to become tabbed after first toggle")
	}

	h.ToggleContainerLayout()
	assertInvariants(t, h, ws)
	root = h.GetWorkspace(ws).Root
	if h.GetContainer(root.Container).IsTabbed {
		t.Fatalf("expected container to become split again after second toggle")
	}

	after := snapshotTilingShape(h, ws)
	if len(before) != len(after) {
		t.Fatalf("topology changed across toggle_container_layout round trip")
	}
}

func TestMoveLeftSwapsWithinSplit(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	h.SetFocus(w1)

	h.MoveLeft()
	assertInvariants(t, h, ws)

	root := h.GetWorkspace(ws).Root
	c := h.GetContainer(root.Container)
	if c.Children[0].Window != w1 || c.Children[1].Window != w0 {
		t.Fatalf("expected window-1 and window-0 swapped, got %+v", c.Children)
	}
}
