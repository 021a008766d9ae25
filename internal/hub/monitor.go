package hub

// reassignWorkspacesToMonitor moves every workspace hosted on removed to
// fallback. A workspace keeps its name unless that name is already
// taken by a non-empty workspace on fallback, in which case it is
// renumbered to one past the highest name currently on fallback — this
// never silently merges two non-empty workspaces (DESIGN.md Open
// Question decision #3).
func (h *Hub) reassignWorkspacesToMonitor(removed, fallback MonitorID) {
	var toMove []WorkspaceID
	h.workspaces.Each(func(idx int, ws *Workspace) {
		if ws.Monitor == removed {
			toMove = append(toMove, WorkspaceID(idx))
		}
	})

	for _, wsID := range toMove {
		ws := h.workspaces.Get(int(wsID))
		collidingID, collides := h.workspaces.Find(func(other *Workspace) bool {
			return other.Monitor == fallback && other.Name == ws.Name
		})

		switch {
		case !collides:
			ws.Monitor = fallback
		case h.isWorkspaceEmpty(WorkspaceID(collidingID)):
			h.workspaces.Delete(collidingID)
			ws.Monitor = fallback
		default:
			ws.Name = h.nextWorkspaceName(fallback)
			ws.Monitor = fallback
		}

		if h.monitors.Get(int(removed)).ActiveWorkspace == wsID {
			h.monitors.Get(int(fallback)).ActiveWorkspace = wsID
		}
	}
}

func (h *Hub) isWorkspaceEmpty(id WorkspaceID) bool {
	ws := h.workspaces.Get(int(id))
	return ws.Root == nil && len(ws.FloatWindows) == 0 && len(ws.FullscreenWindows) == 0
}

func (h *Hub) nextWorkspaceName(monitorID MonitorID) int {
	max := -1
	h.workspaces.Each(func(_ int, ws *Workspace) {
		if ws.Monitor == monitorID && ws.Name > max {
			max = ws.Name
		}
	})
	return max + 1
}
