package hub

// Hub owns every arena and is the sole mutable state cursor the rest of
// this package operates on. It performs no I/O, spawns no goroutines,
// and reads no clock; every method is a synchronous, total function over
// its own fields.
type Hub struct {
	windows    *Arena[Window]
	floats     *Arena[FloatWindow]
	containers *Arena[Container]
	workspaces *Arena[Workspace]
	monitors   *Arena[Monitor]

	focusedMonitor MonitorID
	config         Config
}

// NewHub creates an empty Hub with no monitors, workspaces or windows.
// Callers add at least one monitor via AddMonitor before inserting
// windows.
func NewHub(config Config) *Hub {
	return &Hub{
		windows:    NewArena[Window](),
		floats:     NewArena[FloatWindow](),
		containers: NewArena[Container](),
		workspaces: NewArena[Workspace](),
		monitors:   NewArena[Monitor](),
		config:     config,
	}
}

// getParent returns child's forward parent reference.
func (h *Hub) getParent(child Child) Parent {
	switch child.Kind {
	case ChildWindow:
		return h.windows.Get(int(child.Window)).Parent
	default:
		return h.containers.Get(int(child.Container)).Parent
	}
}

// setParent updates child's forward parent reference.
func (h *Hub) setParent(child Child, parent Parent) {
	switch child.Kind {
	case ChildWindow:
		h.windows.Get(int(child.Window)).Parent = parent
	default:
		h.containers.Get(int(child.Container)).Parent = parent
	}
}

// childDimension returns child's last computed rectangle.
func (h *Hub) childDimension(child Child) Dimension {
	switch child.Kind {
	case ChildWindow:
		return h.windows.Get(int(child.Window)).Dimension
	default:
		return h.containers.Get(int(child.Container)).Dimension
	}
}

// childSpawnMode returns the spawn mode hint child carries.
func (h *Hub) childSpawnMode(child Child) SpawnMode {
	switch child.Kind {
	case ChildWindow:
		return h.windows.Get(int(child.Window)).SpawnMode
	default:
		return h.containers.Get(int(child.Container)).SpawnModeOf()
	}
}

// setChildSpawnMode sets child's spawn mode hint.
func (h *Hub) setChildSpawnMode(child Child, mode SpawnMode) {
	switch child.Kind {
	case ChildWindow:
		h.windows.Get(int(child.Window)).SpawnMode = mode
	default:
		h.containers.Get(int(child.Container)).SetSpawnMode(mode)
	}
}

// childWorkspace returns the workspace a child is denormalized against.
func (h *Hub) childWorkspace(child Child) WorkspaceID {
	switch child.Kind {
	case ChildWindow:
		return h.windows.Get(int(child.Window)).Workspace
	default:
		return h.containers.Get(int(child.Container)).Workspace
	}
}

// setWorkspaceRecursive stamps workspace onto child and, if it is a
// container, every descendant — keeping the I2 denormalization in sync
// when a subtree moves to a new workspace.
func (h *Hub) setWorkspaceRecursive(child Child, workspace WorkspaceID) {
	stack := []Child{child}
	tk := h.newTicker()
	for len(stack) > 0 {
		tk.tick()
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch cur.Kind {
		case ChildWindow:
			h.windows.Get(int(cur.Window)).Workspace = workspace
		default:
			c := h.containers.Get(int(cur.Container))
			c.Workspace = workspace
			stack = append(stack, c.Children...)
		}
	}
}

// focusedLeafOf descends a child's focused chain to a leaf: if child is
// a window, child itself; if a container, its focused child's leaf.
func (h *Hub) focusedLeafOf(child Child) Child {
	cur := child
	tk := h.newTicker()
	for cur.IsContainer() {
		tk.tick()
		cur = h.containers.Get(int(cur.Container)).Focused
	}
	return cur
}

// findTabbedAncestor walks up from child (inclusive) looking for the
// nearest tabbed container.
func (h *Hub) findTabbedAncestor(child Child) (ContainerID, bool) {
	cur := child
	tk := h.newTicker()
	for {
		tk.tick()
		if cur.IsContainer() {
			if h.containers.Get(int(cur.Container)).IsTabbed {
				return cur.Container, true
			}
		}
		parent := h.getParent(cur)
		if parent.Kind == ParentWorkspace {
			return 0, false
		}
		cur = ChildOfContainer(parent.Container)
	}
}

// currentWorkspace returns the active workspace of the focused monitor.
func (h *Hub) currentWorkspace() WorkspaceID {
	return h.monitors.Get(int(h.focusedMonitor)).ActiveWorkspace
}

// focusedSplitChildIn returns the workspace's tiling/container focus, or
// false if the workspace's focus is currently a float or fullscreen
// window (or nothing).
func (h *Hub) focusedSplitChildIn(ws WorkspaceID) (Child, bool) {
	focus := h.workspaces.Get(int(ws)).Focused
	if focus == nil || focus.Kind != FocusTiling {
		return Child{}, false
	}
	return focus.Tiling, true
}

// focusedSplitChild is focusedSplitChildIn for the current workspace.
func (h *Hub) focusedSplitChild() (Child, bool) {
	return h.focusedSplitChildIn(h.currentWorkspace())
}
