package hub

// InsertFloat appends a new float window with dimension dim to the
// current workspace's float list and focuses it.
func (h *Hub) InsertFloat(dim Dimension) FloatWindowID {
	ws := h.currentWorkspace()
	id := FloatWindowID(h.floats.Allocate(FloatWindow{Dimension: dim, Workspace: ws}))
	h.floats.Get(int(id)).ID = id
	h.workspaces.Get(int(ws)).FloatWindows = append(h.workspaces.Get(int(ws)).FloatWindows, id)
	f := FocusOnFloat(id)
	h.workspaces.Get(int(ws)).Focused = &f
	return id
}

// DeleteFloat detaches and destroys the float window, fixing focus.
func (h *Hub) DeleteFloat(id FloatWindowID) {
	if !h.floats.Valid(int(id)) {
		panicf("delete_float: unknown float window %d", id)
	}
	h.detachFloatFromWorkspace(id)
	h.floats.Delete(int(id))
}

func (h *Hub) detachFloatFromWorkspace(id FloatWindowID) {
	wsID := h.floats.Get(int(id)).Workspace
	ws := h.workspaces.Get(int(wsID))
	ws.FloatWindows = removeFloat(ws.FloatWindows, id)

	wasFocused := ws.Focused != nil && ws.Focused.Kind == FocusFloat && ws.Focused.Float == id
	if !wasFocused {
		return
	}
	ws.Focused = h.resolveWorkspaceFallbackFocus(wsID)
	if ws.Focused == nil && ws.Root != nil {
		f := FocusOnTiling(h.focusedLeafOf(*ws.Root))
		ws.Focused = &f
	}
}

func removeFloat(list []FloatWindowID, id FloatWindowID) []FloatWindowID {
	out := list[:0]
	for _, f := range list {
		if f != id {
			out = append(out, f)
		}
	}
	return out
}

// ToggleFloat converts the focused tiling window into a float window, or
// the focused float window back into a tiling window, reporting the old
// and new IDs so the external adapter can re-key its OS handle map (the
// entity's ID kind changes, per I8).
func (h *Hub) ToggleFloat() (oldWindow WindowID, newFloat FloatWindowID, wasFloat bool) {
	ws := h.currentWorkspace()
	focus := h.workspaces.Get(int(ws)).Focused
	if focus == nil {
		return 0, 0, false
	}

	switch focus.Kind {
	case FocusTiling:
		if !focus.Tiling.IsWindow() {
			return 0, 0, false
		}
		windowID := focus.Tiling.Window
		dim := h.windows.Get(int(windowID)).Dimension
		h.detachSplitChildFromWorkspace(ChildOfWindow(windowID))
		h.windows.Delete(int(windowID))

		screen := h.monitorDimensionForWorkspace(ws)
		centered := Dimension{
			Width:  dim.Width,
			Height: dim.Height,
			X:      screen.X + (screen.Width-dim.Width)/2,
			Y:      screen.Y + (screen.Height-dim.Height)/2,
		}
		floatID := FloatWindowID(h.floats.Allocate(FloatWindow{Dimension: centered, Workspace: ws}))
		h.floats.Get(int(floatID)).ID = floatID
		h.workspaces.Get(int(ws)).FloatWindows = append(h.workspaces.Get(int(ws)).FloatWindows, floatID)
		f := FocusOnFloat(floatID)
		h.workspaces.Get(int(ws)).Focused = &f
		return windowID, floatID, false

	case FocusFloat:
		floatID := focus.Float
		dim := h.floats.Get(int(floatID)).Dimension
		h.detachFloatFromWorkspace(floatID)
		h.floats.Delete(int(floatID))

		windowID := WindowID(h.windows.Allocate(Window{Workspace: ws, Dimension: dim, SpawnMode: SpawnHorizontal}))
		h.windows.Get(int(windowID)).ID = windowID
		h.attachSplitChildToWorkspace(ChildOfWindow(windowID), ws)
		return windowID, floatID, true

	default:
		return 0, 0, false
	}
}

func (h *Hub) monitorDimensionForWorkspace(ws WorkspaceID) Dimension {
	monitorID := h.workspaces.Get(int(ws)).Monitor
	return h.monitors.Get(int(monitorID)).Dimension
}

// SetFloatFocus focuses float window id directly.
func (h *Hub) SetFloatFocus(id FloatWindowID) {
	if !h.floats.Valid(int(id)) {
		panicf("set_float_focus: unknown float window %d", id)
	}
	ws := h.floats.Get(int(id)).Workspace
	f := FocusOnFloat(id)
	h.workspaces.Get(int(ws)).Focused = &f
}
