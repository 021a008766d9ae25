package hub

// setWorkspaceFocus updates the primary focus of the whole workspace:
// every ancestor container's Focused (and, for tabbed ancestors,
// ActiveTab) is updated to point down the path to child, then the
// workspace's own Focused is set and the viewport adjusted to keep it
// visible.
func (h *Hub) setWorkspaceFocus(child Child) {
	cur := child
	tk := h.newTicker()
	for {
		tk.tick()
		parent := h.getParent(cur)
		if parent.Kind != ParentContainer {
			ws := h.workspaces.Get(int(parent.Workspace))
			f := FocusOnTiling(child)
			ws.Focused = &f
			h.scrollIntoView(parent.Workspace)
			return
		}
		container := h.containers.Get(int(parent.Container))
		if container.IsTabbed {
			container.SetActiveTab(cur)
		}
		container.Focused = child
		cur = ChildOfContainer(parent.Container)
	}
}

// MoveUp, MoveDown, MoveLeft and MoveRight move the focused tiling child
// one step along the named axis.
func (h *Hub) MoveUp()    { h.moveInDirection(Vertical, false) }
func (h *Hub) MoveDown()  { h.moveInDirection(Vertical, true) }
func (h *Hub) MoveLeft()  { h.moveInDirection(Horizontal, false) }
func (h *Hub) MoveRight() { h.moveInDirection(Horizontal, true) }

// moveInDirection moves the focused tiling child along direction,
// swapping with an adjacent sibling when possible, else re-parenting
// into (or creating) an ancestor split on that axis.
func (h *Hub) moveInDirection(direction Direction, forward bool) {
	currentWS := h.currentWorkspace()
	child, ok := h.focusedSplitChildIn(currentWS)
	if !ok {
		return
	}
	parent := h.getParent(child)
	if parent.Kind != ParentContainer {
		return
	}
	directParentID := parent.Container

	directParent := h.containers.Get(int(directParentID))
	if d, isSplit := directParent.AsDirection(); isSplit && d == direction {
		pos := directParent.PositionOf(child)
		target := pos + 1
		if !forward {
			target = pos - 1
			if target < 0 {
				target = 0
			}
		}
		if target != pos && target < len(directParent.Children) {
			directParent.Children[pos], directParent.Children[target] = directParent.Children[target], directParent.Children[pos]
			h.adjustWorkspace(currentWS)
			return
		}
	}

	currentAnchor := ChildOfContainer(directParentID)
	tk := h.newTicker()
	for {
		tk.tick()
		parent := h.getParent(currentAnchor)
		switch parent.Kind {
		case ParentContainer:
			containerID := parent.Container
			container := h.containers.Get(int(containerID))
			if d, isSplit := container.AsDirection(); !isSplit || d != direction {
				currentAnchor = ChildOfContainer(containerID)
				continue
			}
			pos := container.PositionOf(currentAnchor)
			insertPos := pos
			if forward {
				insertPos = pos + 1
			}
			h.detachSplitChildFromContainer(directParentID, child)
			h.attachSplitChildToContainer(child, containerID, &insertPos)
			h.adjustWorkspace(currentWS)
			h.setWorkspaceFocus(child)
			return
		default:
			workspaceID := parent.Workspace
			h.detachSplitChildFromContainer(directParentID, child)
			ws := h.workspaces.Get(int(workspaceID))
			root := *ws.Root

			var children []Child
			if forward {
				children = []Child{root, child}
			} else {
				children = []Child{child, root}
			}
			newRootID := h.replaceAnchorWithContainer(children, root, SpawnModeFromDirection(direction))
			newRoot := ChildOfContainer(newRootID)
			h.workspaces.Get(int(workspaceID)).Root = &newRoot

			h.adjustWorkspace(currentWS)
			h.setWorkspaceFocus(child)
			return
		}
	}
}

// ToggleDirection flips the split direction of the outermost container
// enclosing the focus: starting from the focus's parent (or the focused
// container itself) it climbs until the next parent is the workspace or
// a tabbed container, then restores I6 afterward.
func (h *Hub) ToggleDirection() {
	h.toggleSplitDirection(h.currentWorkspace())
}

func (h *Hub) toggleSplitDirection(workspaceID WorkspaceID) {
	focused, ok := h.focusedSplitChildIn(workspaceID)
	if !ok {
		return
	}
	var rootID ContainerID
	if focused.IsContainer() {
		rootID = focused.Container
	} else {
		parent := h.getParent(focused)
		if parent.Kind != ParentContainer {
			return
		}
		rootID = parent.Container
	}
	tk := h.newTicker()
	for {
		tk.tick()
		parent := h.containers.Get(int(rootID)).Parent
		if parent.Kind != ParentContainer {
			break
		}
		if h.containers.Get(int(parent.Container)).IsTabbed {
			break
		}
		rootID = parent.Container
	}
	h.containers.Get(int(rootID)).ToggleDirection()
	h.maintainDirectionInvariance(ParentOfContainer(rootID))
	h.adjustWorkspace(workspaceID)
}

// ToggleContainerLayout flips the container ancestor of the focus
// between split and tabbed, preserving the deepest focus path as the
// active tab when going split to tabbed (Open Question decision #2, see
// DESIGN.md).
func (h *Hub) ToggleContainerLayout() {
	child, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	var containerID ContainerID
	if child.IsContainer() {
		containerID = child.Container
	} else {
		parent := h.getParent(child)
		if parent.Kind != ParentContainer {
			return
		}
		containerID = parent.Container
	}
	h.toggleLayoutForContainer(containerID)
}

func (h *Hub) toggleLayoutForContainer(containerID ContainerID) {
	c := h.containers.Get(int(containerID))
	ws := c.Workspace
	parent := c.Parent
	c.IsTabbed = !c.IsTabbed

	if c.IsTabbed {
		container := h.containers.Get(int(containerID))
		var activeTab Child
		for _, child := range container.Children {
			if child == container.Focused {
				activeTab = child
				break
			}
			if child.IsContainer() && h.containers.Get(int(child.Container)).Focused == container.Focused {
				activeTab = child
				break
			}
		}
		h.containers.Get(int(containerID)).SetActiveTab(activeTab)
	} else {
		h.maintainDirectionInvariance(ParentOfContainer(containerID))
	}
	h.maintainDirectionInvariance(parent)
	h.adjustWorkspace(ws)
}
