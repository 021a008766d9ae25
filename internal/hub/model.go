package hub

// Dimension is a rectangle in the shared coordinate system whose origin is
// top-left. Width and height are non-negative; X and Y may be negative to
// express multi-monitor layouts.
type Dimension struct {
	X, Y          float64
	Width, Height float64
}

// Direction is the split axis of a container, or the axis a move/focus
// command travels along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Opposite returns the other axis.
func (d Direction) Opposite() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// SpawnMode hints how a new sibling should be introduced next to an
// entity: as a horizontal split, a vertical split, or a new tab.
type SpawnMode int

const (
	SpawnHorizontal SpawnMode = iota
	SpawnVertical
	SpawnTab
)

// IsTab reports whether m calls for tab insertion rather than a split.
func (m SpawnMode) IsTab() bool {
	return m == SpawnTab
}

// AsDirection returns the split direction implied by m and true, or
// (0, false) when m is SpawnTab.
func (m SpawnMode) AsDirection() (Direction, bool) {
	switch m {
	case SpawnHorizontal:
		return Horizontal, true
	case SpawnVertical:
		return Vertical, true
	default:
		return 0, false
	}
}

// SpawnModeFromDirection maps a split axis to the matching spawn mode.
func SpawnModeFromDirection(d Direction) SpawnMode {
	if d == Horizontal {
		return SpawnHorizontal
	}
	return SpawnVertical
}

// ChildKind tags a Child as holding a window or a container reference.
type ChildKind int

const (
	ChildWindow ChildKind = iota
	ChildContainer
)

// Child is the tagged union of the only two things that may appear in a
// container's children list or as a workspace's tiling root.
type Child struct {
	Kind      ChildKind
	Window    WindowID
	Container ContainerID
}

// ChildOfWindow wraps a tiling window as a Child.
func ChildOfWindow(id WindowID) Child {
	return Child{Kind: ChildWindow, Window: id}
}

// ChildOfContainer wraps a container as a Child.
func ChildOfContainer(id ContainerID) Child {
	return Child{Kind: ChildContainer, Container: id}
}

// IsWindow reports whether c holds a window reference.
func (c Child) IsWindow() bool { return c.Kind == ChildWindow }

// IsContainer reports whether c holds a container reference.
func (c Child) IsContainer() bool { return c.Kind == ChildContainer }

// ParentKind tags a Parent as a container or a workspace.
type ParentKind int

const (
	ParentContainer ParentKind = iota
	ParentWorkspace
)

// Parent is the tagged union every tiling Child points back to: either the
// container that holds it, or — for a workspace root — the workspace
// itself.
type Parent struct {
	Kind      ParentKind
	Container ContainerID
	Workspace WorkspaceID
}

// ParentOfContainer wraps a container as a Parent.
func ParentOfContainer(id ContainerID) Parent {
	return Parent{Kind: ParentContainer, Container: id}
}

// ParentOfWorkspace wraps a workspace as a Parent.
func ParentOfWorkspace(id WorkspaceID) Parent {
	return Parent{Kind: ParentWorkspace, Workspace: id}
}

// FocusKind tags which of the three focus targets a Focus value holds.
type FocusKind int

const (
	FocusTiling FocusKind = iota
	FocusFloat
	FocusFullscreen
)

// Focus is the workspace's single point of attention: a tiling Child, a
// float window, or the top of the fullscreen stack.
type Focus struct {
	Kind       FocusKind
	Tiling     Child
	Float      FloatWindowID
	Fullscreen WindowID
}

// FocusOnTiling wraps a tiling Child as a Focus.
func FocusOnTiling(c Child) Focus { return Focus{Kind: FocusTiling, Tiling: c} }

// FocusOnFloat wraps a float window as a Focus.
func FocusOnFloat(id FloatWindowID) Focus { return Focus{Kind: FocusFloat, Float: id} }

// FocusOnFullscreen wraps a fullscreen window as a Focus.
func FocusOnFullscreen(id WindowID) Focus { return Focus{Kind: FocusFullscreen, Fullscreen: id} }

// fullscreenOrigin records what a window was before it was promoted to
// fullscreen, so unset_fullscreen knows whether to rejoin the tiling tree
// or the float list — WindowID and FloatWindowID are distinct arenas, so
// a floating window that goes fullscreen needs to remember which one to
// return to.
type fullscreenOrigin int

const (
	originNone fullscreenOrigin = iota
	originTiling
	originFloat
)

// Window is a tiling (or fullscreen) window.
type Window struct {
	ID        WindowID
	Dimension Dimension
	Parent    Parent
	Workspace WorkspaceID
	SpawnMode SpawnMode

	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64

	fsOrigin    fullscreenOrigin
	fsFloatDim  Dimension // preserved float geometry while fullscreen, if fsOrigin == originFloat
}

// FloatWindow is a workspace-scoped window with a freely positioned
// dimension, outside the tiling tree.
type FloatWindow struct {
	ID        FloatWindowID
	Dimension Dimension
	Workspace WorkspaceID
}

// Container is an interior tiling node: either a split (Horizontal or
// Vertical) or a tabbed stack.
type Container struct {
	ID        ContainerID
	Parent    Parent
	Workspace WorkspaceID

	IsTabbed  bool
	Direction Direction // meaningful only when !IsTabbed

	Children  []Child // length >= 2 at rest
	Dimension Dimension
	Focused   Child
	ActiveTab Child // meaningful only when IsTabbed

	spawnMode SpawnMode

	MinWidth, MinHeight float64 // cached from last layout pass
}

// SpawnModeOf returns the container's spawn mode hint.
func (c *Container) SpawnModeOf() SpawnMode { return c.spawnMode }

// SetSpawnMode sets the container's spawn mode hint.
func (c *Container) SetSpawnMode(m SpawnMode) { c.spawnMode = m }

// AsDirection returns the container's split direction, or (0, false) when
// the container is tabbed.
func (c *Container) AsDirection() (Direction, bool) {
	if c.IsTabbed {
		return 0, false
	}
	return c.Direction, true
}

// HasDirection reports whether the container is an (untabbed) split on
// the given axis.
func (c *Container) HasDirection(d Direction) bool {
	return !c.IsTabbed && c.Direction == d
}

// ToggleDirection flips a split container's axis. No-op on a tabbed
// container.
func (c *Container) ToggleDirection() {
	if !c.IsTabbed {
		c.Direction = c.Direction.Opposite()
	}
}

// CanAccommodate reports whether inserting a child spawned with mode m
// into this container preserves its invariants: a tabbed container
// accommodates SpawnTab, a Horizontal split accommodates SpawnHorizontal,
// a Vertical split accommodates SpawnVertical.
func (c *Container) CanAccommodate(m SpawnMode) bool {
	if c.IsTabbed {
		return m.IsTab()
	}
	if m.IsTab() {
		return false
	}
	d, _ := m.AsDirection()
	return c.Direction == d
}

// PositionOf returns the index of child within Children, or -1.
func (c *Container) PositionOf(child Child) int {
	for i, ch := range c.Children {
		if ch == child {
			return i
		}
	}
	return -1
}

// ReplaceChild swaps oldChild for newChild in place, preserving order.
func (c *Container) ReplaceChild(oldChild, newChild Child) {
	for i, ch := range c.Children {
		if ch == oldChild {
			c.Children[i] = newChild
			return
		}
	}
}

// RemoveChild deletes child from Children, preserving order of the rest.
func (c *Container) RemoveChild(child Child) {
	for i, ch := range c.Children {
		if ch == child {
			c.Children = append(c.Children[:i], c.Children[i+1:]...)
			return
		}
	}
}

// ActiveTabIndex returns the index of ActiveTab within Children, or -1 if
// not found (e.g. not a tabbed container).
func (c *Container) ActiveTabIndex() int {
	return c.PositionOf(c.ActiveTab)
}

// SetActiveTab sets the active tab, provided child is one of the
// container's children.
func (c *Container) SetActiveTab(child Child) {
	c.ActiveTab = child
}

// SwitchTab rotates the active tab to the previous/next child and returns
// it. Returns the zero Child and false if the container has no children
// (never the case at rest, but guarded for safety).
func (c *Container) SwitchTab(forward bool) (Child, bool) {
	n := len(c.Children)
	if n == 0 {
		return Child{}, false
	}
	idx := c.ActiveTabIndex()
	if idx < 0 {
		idx = 0
	}
	if forward {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	c.ActiveTab = c.Children[idx]
	return c.ActiveTab, true
}

// Workspace is a named slot on a monitor holding one tiling tree, a list
// of float windows, a fullscreen stack, and a viewport scroll offset.
type Workspace struct {
	ID      WorkspaceID
	Name    int
	Monitor MonitorID

	Root *Child // nil when the tiling tree is empty

	FloatWindows      []FloatWindowID
	FullscreenWindows []WindowID // stack; last element is the top/active one

	Focused *Focus // nil when nothing is focused

	ViewportOffsetX, ViewportOffsetY float64
}

// Monitor is a physical or virtual output with a work area and an active
// workspace.
type Monitor struct {
	ID              MonitorID
	Name            string
	Dimension       Dimension
	ActiveWorkspace WorkspaceID
}
