package hub

// Introspection

func (h *Hub) CurrentWorkspace() WorkspaceID { return h.currentWorkspace() }

func (h *Hub) GetWorkspace(id WorkspaceID) *Workspace {
	if !h.workspaces.Valid(int(id)) {
		panicf("get_workspace: unknown workspace %d", id)
	}
	return h.workspaces.Get(int(id))
}

func (h *Hub) GetWindow(id WindowID) *Window {
	if !h.windows.Valid(int(id)) {
		panicf("get_window: unknown window %d", id)
	}
	return h.windows.Get(int(id))
}

func (h *Hub) GetFloat(id FloatWindowID) *FloatWindow {
	if !h.floats.Valid(int(id)) {
		panicf("get_float: unknown float window %d", id)
	}
	return h.floats.Get(int(id))
}

func (h *Hub) GetContainer(id ContainerID) *Container {
	if !h.containers.Valid(int(id)) {
		panicf("get_container: unknown container %d", id)
	}
	return h.containers.Get(int(id))
}

func (h *Hub) GetMonitor(id MonitorID) *Monitor {
	if !h.monitors.Valid(int(id)) {
		panicf("get_monitor: unknown monitor %d", id)
	}
	return h.monitors.Get(int(id))
}

func (h *Hub) FocusedMonitor() MonitorID { return h.focusedMonitor }

// MonitorCount returns the number of monitors currently registered.
func (h *Hub) MonitorCount() int { return h.monitors.Len() }

// WorkspaceCount returns the number of live workspaces across every
// monitor, including inactive ones kept alive because they still hold
// windows.
func (h *Hub) WorkspaceCount() int { return h.workspaces.Len() }

// Screen returns the work area of the currently focused monitor.
func (h *Hub) Screen() Dimension {
	return h.monitors.Get(int(h.focusedMonitor)).Dimension
}

// VisibleWorkspaces returns the active workspace of every monitor, one
// per monitor.
func (h *Hub) VisibleWorkspaces() []WorkspaceID {
	var out []WorkspaceID
	h.monitors.Each(func(_ int, m *Monitor) {
		out = append(out, m.ActiveWorkspace)
	})
	return out
}

// SetFocus focuses a tiling window directly, descending to it via
// setWorkspaceFocus so all ancestor focus pointers stay consistent.
func (h *Hub) SetFocus(id WindowID) {
	if !h.windows.Valid(int(id)) {
		panicf("set_focus: unknown window %d", id)
	}
	w := h.windows.Get(int(id))
	if w.fsOrigin != originNone {
		ws := h.workspaces.Get(int(w.Workspace))
		f := FocusOnFullscreen(id)
		ws.Focused = &f
		return
	}
	h.setWorkspaceFocus(ChildOfWindow(id))
}

// ToggleSpawnMode cycles the focused entity's spawn mode hint
// Horizontal -> Vertical -> Tab -> Horizontal.
func (h *Hub) ToggleSpawnMode() {
	focused, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	mode := h.childSpawnMode(focused)
	switch mode {
	case SpawnHorizontal:
		h.setChildSpawnMode(focused, SpawnVertical)
	case SpawnVertical:
		h.setChildSpawnMode(focused, SpawnTab)
	default:
		h.setChildSpawnMode(focused, SpawnHorizontal)
	}
}

// SetWindowConstraint applies partial min/max updates to a window. Each
// pointer argument is either a new value (0 clears it) or nil to leave
// unchanged. Negative values are treated as zero. After applying, I3 is
// restored by raising max to min when max would otherwise be smaller.
func (h *Hub) SetWindowConstraint(id WindowID, minW, minH, maxW, maxH *float64) {
	if !h.windows.Valid(int(id)) {
		panicf("set_window_constraint: unknown window %d", id)
	}
	w := h.windows.Get(int(id))
	apply := func(dst *float64, v *float64) {
		if v == nil {
			return
		}
		val := *v
		if val < 0 {
			val = 0
		}
		*dst = val
	}
	apply(&w.MinWidth, minW)
	apply(&w.MinHeight, minH)
	apply(&w.MaxWidth, maxW)
	apply(&w.MaxHeight, maxH)

	if w.MaxWidth > 0 && w.MinWidth > w.MaxWidth {
		w.MaxWidth = w.MinWidth
	}
	if w.MaxHeight > 0 && w.MinHeight > w.MaxHeight {
		w.MaxHeight = w.MinHeight
	}

	h.adjustWorkspace(w.Workspace)
}

// SyncConfig atomically replaces the configuration and recomputes every
// workspace.
func (h *Hub) SyncConfig(config Config) {
	h.config = config
	h.workspaces.Each(func(idx int, _ *Workspace) {
		h.adjustWorkspace(WorkspaceID(idx))
	})
}

// AddMonitor registers a new monitor with a fresh workspace 0 and
// returns its ID. If this is the first monitor, it becomes focused.
func (h *Hub) AddMonitor(name string, dim Dimension) MonitorID {
	wsID := WorkspaceID(h.workspaces.Allocate(Workspace{}))
	monitorID := MonitorID(h.monitors.Allocate(Monitor{Name: name, Dimension: dim, ActiveWorkspace: wsID}))
	m := h.monitors.Get(int(monitorID))
	m.ID = monitorID
	ws := h.workspaces.Get(int(wsID))
	ws.ID = wsID
	ws.Monitor = monitorID

	if h.monitors.Len() == 1 {
		h.focusedMonitor = monitorID
	}
	return monitorID
}

// RemoveMonitor removes monitorID, reassigning its workspaces to
// fallback. See DESIGN.md Open Question decision #3 for the name
// collision policy.
func (h *Hub) RemoveMonitor(monitorID, fallback MonitorID) {
	if !h.monitors.Valid(int(monitorID)) {
		panicf("remove_monitor: unknown monitor %d", monitorID)
	}
	if !h.monitors.Valid(int(fallback)) {
		panicf("remove_monitor: unknown fallback monitor %d", fallback)
	}
	h.reassignWorkspacesToMonitor(monitorID, fallback)

	if h.focusedMonitor == monitorID {
		h.focusedMonitor = fallback
	}
	h.monitors.Delete(int(monitorID))
}

// UpdateMonitorDimension changes a monitor's work area and re-lays out
// every workspace hosted on it, shown or not.
func (h *Hub) UpdateMonitorDimension(id MonitorID, dim Dimension) {
	if !h.monitors.Valid(int(id)) {
		panicf("update_monitor_dimension: unknown monitor %d", id)
	}
	h.monitors.Get(int(id)).Dimension = dim
	h.workspaces.Each(func(idx int, ws *Workspace) {
		if ws.Monitor == id {
			h.adjustWorkspace(WorkspaceID(idx))
		}
	})
}

// FocusWorkspace switches the focused monitor's active workspace to the
// one named name, creating it if it doesn't exist yet, and prunes the
// previously active workspace if it ended up empty (I10).
func (h *Hub) FocusWorkspace(name int) {
	h.focusWorkspaceOnMonitor(h.focusedMonitor, name)
}

func (h *Hub) focusWorkspaceOnMonitor(monitorID MonitorID, name int) WorkspaceID {
	existing, found := h.workspaces.Find(func(ws *Workspace) bool {
		return ws.Monitor == monitorID && ws.Name == name
	})
	var targetID WorkspaceID
	if found {
		targetID = WorkspaceID(existing)
	} else {
		targetID = WorkspaceID(h.workspaces.Allocate(Workspace{Name: name, Monitor: monitorID}))
		h.workspaces.Get(int(targetID)).ID = targetID
	}

	current := h.monitors.Get(int(monitorID)).ActiveWorkspace
	if targetID == current {
		return targetID
	}
	h.monitors.Get(int(monitorID)).ActiveWorkspace = targetID
	h.pruneWorkspace(current)
	return targetID
}

// pruneWorkspace deletes wsID if it holds nothing and is not the active
// workspace of its monitor (I10).
func (h *Hub) pruneWorkspace(wsID WorkspaceID) {
	ws := h.workspaces.Get(int(wsID))
	if ws.Root != nil || len(ws.FloatWindows) > 0 || len(ws.FullscreenWindows) > 0 {
		return
	}
	if h.monitors.Get(int(ws.Monitor)).ActiveWorkspace != wsID {
		h.workspaces.Delete(int(wsID))
	}
}

// FocusMonitor switches the focused monitor.
func (h *Hub) FocusMonitor(target MonitorID) {
	if !h.monitors.Valid(int(target)) {
		panicf("focus_monitor: unknown monitor %d", target)
	}
	h.focusedMonitor = target
}

// MoveFocusedToWorkspace moves the currently focused tiling child to
// workspace name on the current monitor.
func (h *Hub) MoveFocusedToWorkspace(name int) {
	child, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	currentWS := h.currentWorkspace()
	targetWS := h.focusWorkspaceOnMonitorWithoutSwitch(h.focusedMonitor, name)
	if targetWS == currentWS {
		return
	}
	h.detachSplitChildFromWorkspace(child)
	h.attachSplitChildToWorkspace(child, targetWS)
	h.pruneWorkspace(currentWS)
}

func (h *Hub) focusWorkspaceOnMonitorWithoutSwitch(monitorID MonitorID, name int) WorkspaceID {
	existing, found := h.workspaces.Find(func(ws *Workspace) bool {
		return ws.Monitor == monitorID && ws.Name == name
	})
	if found {
		return WorkspaceID(existing)
	}
	id := WorkspaceID(h.workspaces.Allocate(Workspace{Name: name, Monitor: monitorID}))
	h.workspaces.Get(int(id)).ID = id
	return id
}

// MoveToMonitor moves the current workspace's focus to the corresponding
// workspace (by name) on the target monitor.
func (h *Hub) MoveToMonitor(target MonitorID) {
	if !h.monitors.Valid(int(target)) {
		panicf("move_to_monitor: unknown monitor %d", target)
	}
	child, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	currentWS := h.currentWorkspace()
	name := h.workspaces.Get(int(currentWS)).Name
	targetWS := h.focusWorkspaceOnMonitorWithoutSwitch(target, name)

	h.detachSplitChildFromWorkspace(child)
	h.attachSplitChildToWorkspace(child, targetWS)
	h.pruneWorkspace(currentWS)
}
