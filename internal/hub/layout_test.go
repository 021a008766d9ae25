package hub

import "testing"

func ptr(v float64) *float64 { return &v }

const layoutEps = 0.01

func approxDim(t *testing.T, label string, got, want Dimension) {
	t.Helper()
	if abs(got.X-want.X) > layoutEps || abs(got.Y-want.Y) > layoutEps ||
		abs(got.Width-want.Width) > layoutEps || abs(got.Height-want.Height) > layoutEps {
		t.Errorf("%s: got %+v, want %+v", label, got, want)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Scenario 1: window-0 clamps to its min, window-1 takes the remainder.
func TestLayoutScenario1MinClamp(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})

	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	h.SetWindowConstraint(w0, ptr(100), nil, nil, nil)

	approxDim(t, "window-0", h.GetWindow(w0).Dimension, Dimension{X: 0, Y: 0, Width: 100, Height: 30})
	approxDim(t, "window-1", h.GetWindow(w1).Dimension, Dimension{X: 100, Y: 0, Width: 50, Height: 30})
}

// Scenario 2: a nested vertical split inherits window-2's min_width and
// reports it as the child container's own min.
func TestLayoutScenario2NestedMinInheritance(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})

	w0 := h.InsertTiling()
	h.InsertTiling()
	h.ToggleSpawnMode() // Horizontal -> Vertical, hints the next sibling of window-1
	w2 := h.InsertTiling()
	h.SetWindowConstraint(w2, ptr(100), nil, nil, nil)

	ws := h.CurrentWorkspace()
	root := h.GetWorkspace(ws).Root
	if root == nil || !root.IsContainer() {
		t.Fatalf("expected root container, got %+v", root)
	}
	rc := h.GetContainer(root.Container)
	if len(rc.Children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(rc.Children))
	}

	w0Child := rc.Children[0]
	if !w0Child.IsWindow() || w0Child.Window != w0 {
		t.Fatalf("expected window-0 as first root child, got %+v", w0Child)
	}
	approxDim(t, "window-0", h.GetWindow(w0Child.Window).Dimension, Dimension{X: 0, Y: 0, Width: 50, Height: 30})

	childContainer := rc.Children[1]
	if !childContainer.IsContainer() {
		t.Fatalf("expected nested container as second root child, got %+v", childContainer)
	}
	cc := h.GetContainer(childContainer.Container)
	approxDim(t, "nested container", cc.Dimension, Dimension{X: 50, Y: 0, Width: 100, Height: 30})
	if len(cc.Children) != 2 {
		t.Fatalf("expected 2 children in nested container, got %d", len(cc.Children))
	}
}

// Scenario 3: sum of mins exceeds screen width, root overflows, and the
// viewport scrolls to keep the focused window visible.
func TestLayoutScenario3OverflowAndScroll(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})

	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	h.SetWindowConstraint(w0, ptr(100), nil, nil, nil)
	h.SetWindowConstraint(w1, ptr(100), nil, nil, nil)

	ws := h.CurrentWorkspace()
	root := h.GetWorkspace(ws).Root
	rc := h.GetContainer(root.Container)
	if rc.Dimension.Width < 199 {
		t.Fatalf("expected root to overflow to ~200 width, got %v", rc.Dimension.Width)
	}

	approxDim(t, "window-0", h.GetWindow(w0).Dimension, Dimension{X: 0, Y: 0, Width: 100, Height: 30})
	approxDim(t, "window-1", h.GetWindow(w1).Dimension, Dimension{X: 100, Y: 0, Width: 100, Height: 30})

	wsObj := h.GetWorkspace(ws)
	if wsObj.ViewportOffsetX <= 0 {
		t.Fatalf("expected viewport to scroll right to follow focused window-1, got offset %v", wsObj.ViewportOffsetX)
	}
}

// Scenario 4: a single window's max constraint centers it within the
// monitor; raising max above the available space fills it instead.
func TestLayoutScenario4MaxConstraintCentering(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})

	w0 := h.InsertTiling()
	h.SetWindowConstraint(w0, nil, nil, ptr(60), ptr(15))
	approxDim(t, "constrained window", h.GetWindow(w0).Dimension, Dimension{X: 45, Y: 7.5, Width: 60, Height: 15})

	h.SetWindowConstraint(w0, nil, nil, ptr(200), ptr(50))
	approxDim(t, "filled window", h.GetWindow(w0).Dimension, Dimension{X: 0, Y: 0, Width: 150, Height: 30})
}

// Scenario 5: two max-constrained windows are centered together as a
// group within the available width.
func TestLayoutScenario5TwoMaxConstraintsCentered(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})

	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	h.SetWindowConstraint(w0, nil, nil, ptr(30), nil)
	h.SetWindowConstraint(w1, nil, nil, ptr(30), nil)

	approxDim(t, "window-0", h.GetWindow(w0).Dimension, Dimension{X: 45, Y: 0, Width: 30, Height: 30})
	approxDim(t, "window-1", h.GetWindow(w1).Dimension, Dimension{X: 75, Y: 0, Width: 30, Height: 30})
}

// Scenario 6: raising min above an existing max raises max per I3;
// clearing max afterward removes the constraint.
func TestLayoutScenario6MinRaisesMaxThenClears(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})

	w0 := h.InsertTiling()
	h.SetWindowConstraint(w0, nil, nil, ptr(50), nil)
	h.SetWindowConstraint(w0, ptr(80), nil, nil, nil)

	w := h.GetWindow(w0)
	if w.MaxWidth != 80 {
		t.Fatalf("expected I3 to raise max_width to 80, got %v", w.MaxWidth)
	}

	h.SetWindowConstraint(w0, nil, nil, ptr(0), nil)
	if h.GetWindow(w0).MaxWidth != 0 {
		t.Fatalf("expected max_width cleared, got %v", h.GetWindow(w0).MaxWidth)
	}
}

func TestLayoutSplitChildrenSumToParentWidth(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	h.InsertTiling()
	h.InsertTiling()
	h.InsertTiling()

	ws := h.CurrentWorkspace()
	root := h.GetWorkspace(ws).Root
	rc := h.GetContainer(root.Container)

	var sum float64
	for _, c := range rc.Children {
		sum += h.childDimension(c).Width
	}
	n := float64(len(rc.Children))
	if abs(sum-rc.Dimension.Width) > 2*0.001*n {
		t.Fatalf("children widths sum to %v, want ~%v", sum, rc.Dimension.Width)
	}
}
