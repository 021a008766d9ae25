package hub

// ToggleFullscreen promotes the current workspace's focused window to
// fullscreen, or restores it, depending on its current state.
func (h *Hub) ToggleFullscreen() {
	ws := h.currentWorkspace()
	focus := h.workspaces.Get(int(ws)).Focused
	if focus == nil {
		return
	}

	switch focus.Kind {
	case FocusFullscreen:
		h.unsetFullscreen(focus.Fullscreen)
	case FocusTiling:
		if focus.Tiling.IsWindow() {
			h.setFullscreen(focus.Tiling.Window)
		}
	case FocusFloat:
		h.setFullscreenFromFloat(focus.Float)
	}
}

// setFullscreen detaches a tiling window and pushes it onto the
// workspace's fullscreen stack.
func (h *Hub) setFullscreen(windowID WindowID) {
	w := h.windows.Get(int(windowID))
	if w.fsOrigin != originNone {
		return
	}
	ws := w.Workspace
	h.detachSplitChildFromWorkspace(ChildOfWindow(windowID))

	w = h.windows.Get(int(windowID))
	w.fsOrigin = originTiling
	h.attachFullscreenToWorkspace(ws, windowID)

	wsEntity := h.workspaces.Get(int(ws))
	f := FocusOnFullscreen(windowID)
	wsEntity.Focused = &f
	wsEntity.ViewportOffsetX, wsEntity.ViewportOffsetY = 0, 0
}

// setFullscreenFromFloat converts a float window into a (new-ID)
// fullscreen window, recording its prior dimension so unsetFullscreen
// can restore it as a float.
func (h *Hub) setFullscreenFromFloat(floatID FloatWindowID) {
	fw := h.floats.Get(int(floatID))
	dim := fw.Dimension
	ws := fw.Workspace
	h.detachFloatFromWorkspace(floatID)
	h.floats.Delete(int(floatID))

	windowID := WindowID(h.windows.Allocate(Window{
		Workspace:  ws,
		fsOrigin:   originFloat,
		fsFloatDim: dim,
	}))
	h.windows.Get(int(windowID)).ID = windowID
	h.attachFullscreenToWorkspace(ws, windowID)

	wsEntity := h.workspaces.Get(int(ws))
	f := FocusOnFullscreen(windowID)
	wsEntity.Focused = &f
	wsEntity.ViewportOffsetX, wsEntity.ViewportOffsetY = 0, 0
}

// unsetFullscreen pops windowID from the fullscreen stack and restores
// it to tiling or float according to its recorded origin.
func (h *Hub) unsetFullscreen(windowID WindowID) {
	w := h.windows.Get(int(windowID))
	if w.fsOrigin == originNone {
		return
	}
	ws := w.Workspace
	origin := w.fsOrigin
	floatDim := w.fsFloatDim
	h.detachFullscreenFromWorkspace(windowID)

	switch origin {
	case originTiling:
		w = h.windows.Get(int(windowID))
		w.fsOrigin = originNone
		h.attachSplitChildToWorkspace(ChildOfWindow(windowID), ws)
	default:
		h.windows.Delete(int(windowID))
		floatID := FloatWindowID(h.floats.Allocate(FloatWindow{Dimension: floatDim, Workspace: ws}))
		h.floats.Get(int(floatID)).ID = floatID
		wsEntity := h.workspaces.Get(int(ws))
		wsEntity.FloatWindows = append(wsEntity.FloatWindows, floatID)
		f := FocusOnFloat(floatID)
		wsEntity.Focused = &f
	}

	if top, ok := topFullscreen(h.workspaces.Get(int(ws))); ok {
		f := FocusOnFullscreen(top)
		h.workspaces.Get(int(ws)).Focused = &f
	}
}

func (h *Hub) attachFullscreenToWorkspace(ws WorkspaceID, id WindowID) {
	w := h.windows.Get(int(id))
	w.Workspace = ws
	w.Parent = ParentOfWorkspace(ws)
	wsEntity := h.workspaces.Get(int(ws))
	wsEntity.FullscreenWindows = append(wsEntity.FullscreenWindows, id)
}

func (h *Hub) detachFullscreenFromWorkspace(id WindowID) {
	wsID := h.windows.Get(int(id)).Workspace
	ws := h.workspaces.Get(int(wsID))
	ws.FullscreenWindows = removeWindow(ws.FullscreenWindows, id)

	if ws.Focused == nil || ws.Focused.Kind != FocusFullscreen || ws.Focused.Fullscreen != id {
		return
	}
	ws.Focused = h.resolveWorkspaceFallbackFocus(wsID)
	if ws.Focused == nil && ws.Root != nil {
		f := FocusOnTiling(h.focusedLeafOf(*ws.Root))
		ws.Focused = &f
	}
}

func topFullscreen(ws *Workspace) (WindowID, bool) {
	if n := len(ws.FullscreenWindows); n > 0 {
		return ws.FullscreenWindows[n-1], true
	}
	return 0, false
}

func removeWindow(list []WindowID, id WindowID) []WindowID {
	out := list[:0]
	for _, w := range list {
		if w != id {
			out = append(out, w)
		}
	}
	return out
}
