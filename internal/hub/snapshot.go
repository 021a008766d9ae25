package hub

// TilingPlacement is one visible tiling window's placement, per the
// message-output contract external renderers consume.
type TilingPlacement struct {
	Window              WindowID
	Frame               Dimension
	IsFocused           bool
	SpawnMode           SpawnMode
	ContainerSpawnChain []SpawnMode // ancestor containers' spawn modes, root-to-leaf
}

// ContainerPlacement describes a focused or tabbed container's frame and
// tab bar contents.
type ContainerPlacement struct {
	Container      ContainerID
	Frame          Dimension
	IsTabbed       bool
	ActiveTabIndex int
	TabTitles      []string
	IsFocused      bool
}

// FloatPlacement is one visible float window's placement.
type FloatPlacement struct {
	Float     FloatWindowID
	Frame     Dimension
	IsFocused bool
}

// Snapshot is the per-workspace placement set published after every
// event: everything an external renderer/adapter needs to reposition,
// show, and hide OS windows.
type Snapshot struct {
	Workspace  WorkspaceID
	Tiling     []TilingPlacement
	Containers []ContainerPlacement
	Floats     []FloatPlacement
	Focused    *Focus
}

// Snapshot computes the current placement set for workspaceID. Titles
// for tab bars are supplied by the caller via titleOf, since the core
// has no concept of a window's human-readable label (that comes from
// TitleChanged events tracked by the adapter).
func (h *Hub) Snapshot(workspaceID WorkspaceID, titleOf func(WindowID) string) Snapshot {
	ws := h.workspaces.Get(int(workspaceID))
	snap := Snapshot{Workspace: workspaceID, Focused: ws.Focused}

	if ws.Root != nil {
		h.collectPlacements(*ws.Root, nil, &snap, titleOf)
	}

	for _, fid := range ws.FloatWindows {
		f := h.floats.Get(int(fid))
		isFocused := ws.Focused != nil && ws.Focused.Kind == FocusFloat && ws.Focused.Float == fid
		snap.Floats = append(snap.Floats, FloatPlacement{Float: fid, Frame: f.Dimension, IsFocused: isFocused})
	}

	if top, ok := topFullscreen(ws); ok {
		w := h.windows.Get(int(top))
		snap.Tiling = append(snap.Tiling, TilingPlacement{
			Window:    top,
			Frame:     h.monitorDimensionForWorkspace(workspaceID),
			IsFocused: ws.Focused != nil && ws.Focused.Kind == FocusFullscreen && ws.Focused.Fullscreen == top,
			SpawnMode: w.SpawnMode,
		})
	}

	return snap
}

func (h *Hub) collectPlacements(child Child, spawnChain []SpawnMode, snap *Snapshot, titleOf func(WindowID) string) {
	switch child.Kind {
	case ChildWindow:
		w := h.windows.Get(int(child.Window))
		isFocused := snap.Focused != nil && snap.Focused.Kind == FocusTiling && snap.Focused.Tiling == child
		snap.Tiling = append(snap.Tiling, TilingPlacement{
			Window:              child.Window,
			Frame:               w.Dimension,
			IsFocused:           isFocused,
			SpawnMode:           w.SpawnMode,
			ContainerSpawnChain: append([]SpawnMode(nil), spawnChain...),
		})
	default:
		c := h.containers.Get(int(child.Container))
		isFocusedContainer := snap.Focused != nil && snap.Focused.Kind == FocusTiling && snap.Focused.Tiling == child
		if isFocusedContainer || c.IsTabbed {
			snap.Containers = append(snap.Containers, ContainerPlacement{
				Container:      child.Container,
				Frame:          c.Dimension,
				IsTabbed:       c.IsTabbed,
				ActiveTabIndex: c.ActiveTabIndex(),
				TabTitles:      h.tabTitles(c, titleOf),
				IsFocused:      isFocusedContainer,
			})
		}
		chain := append(append([]SpawnMode(nil), spawnChain...), c.SpawnModeOf())
		for _, grandchild := range c.Children {
			h.collectPlacements(grandchild, chain, snap, titleOf)
		}
	}
}

// tabTitles resolves one title per child of a tabbed container: a
// window's own title, or its focused descendant's title if the child is
// itself a container.
func (h *Hub) tabTitles(c *Container, titleOf func(WindowID) string) []string {
	titles := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		leaf := h.focusedLeafOf(child)
		if leaf.IsWindow() {
			titles = append(titles, titleOf(leaf.Window))
		} else {
			titles = append(titles, "")
		}
	}
	return titles
}
