package hub

import "testing"

func TestInsertFloatFocusesIt(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	floatID := h.InsertFloat(Dimension{Width: 20, Height: 10})
	wsObj := h.GetWorkspace(ws)
	if wsObj.Focused == nil || wsObj.Focused.Kind != FocusFloat || wsObj.Focused.Float != floatID {
		t.Fatalf("expected new float window focused, got %+v", wsObj.Focused)
	}
}

func TestDeleteFloatFallsBackToTiling(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	h.InsertTiling()
	floatID := h.InsertFloat(Dimension{Width: 20, Height: 10})

	h.DeleteFloat(floatID)
	wsObj := h.GetWorkspace(ws)
	if wsObj.Focused == nil || wsObj.Focused.Kind != FocusTiling {
		t.Fatalf("expected focus to fall back to the tiling tree, got %+v", wsObj.Focused)
	}
}

func TestToggleFloatTilingToFloatAndBack(t *testing.T) {
	h, _ := newTestHub(Dimension{Width: 150, Height: 30})
	ws := h.CurrentWorkspace()

	w0 := h.InsertTiling()
	oldWindow, newFloat, wasFloat := h.ToggleFloat()
	if wasFloat {
		t.Fatalf("expected wasFloat=false converting tiling to float")
	}
	if oldWindow != w0 {
		t.Fatalf("expected oldWindow=%d, got %d", w0, oldWindow)
	}
	wsObj := h.GetWorkspace(ws)
	if wsObj.Root != nil {
		t.Fatalf("expected empty tiling tree after floating the only window, got %+v", wsObj.Root)
	}
	if len(wsObj.FloatWindows) != 1 || wsObj.FloatWindows[0] != newFloat {
		t.Fatalf("expected the converted window on the float list, got %v", wsObj.FloatWindows)
	}

	h.SetFloatFocus(newFloat)
	_, _, wasFloat2 := h.ToggleFloat()
	if !wasFloat2 {
		t.Fatalf("expected wasFloat=true converting back to tiling")
	}
	wsObj = h.GetWorkspace(ws)
	if wsObj.Root == nil {
		t.Fatalf("expected a tiling root after converting back")
	}
	assertInvariants(t, h, ws)
}
