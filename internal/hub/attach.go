package hub

// InsertTiling attaches a new window to the current workspace's tiling
// tree next to the currently focused tiling child (or as the root, if
// the tree is empty) and focuses it.
func (h *Hub) InsertTiling() WindowID {
	ws := h.currentWorkspace()
	id := WindowID(h.windows.Allocate(Window{Workspace: ws, SpawnMode: SpawnHorizontal}))
	h.windows.Get(int(id)).ID = id
	h.attachSplitChildToWorkspace(ChildOfWindow(id), ws)
	return id
}

// DeleteWindow detaches and destroys window, fixing focus and collapsing
// any container left with one child (I7).
func (h *Hub) DeleteWindow(id WindowID) {
	if !h.windows.Valid(int(id)) {
		panicf("delete_window: unknown window %d", id)
	}
	w := h.windows.Get(int(id))
	switch w.fsOrigin {
	case originNone:
		h.detachSplitChildFromWorkspace(ChildOfWindow(id))
	default:
		h.detachFullscreenFromWorkspace(id)
	}
	h.windows.Delete(int(id))
}

// attachSplitChildToWorkspace attaches child to workspaceID at the
// focused position, or as root if the tree is empty. child must already
// be detached from any previous parent. Sets focus to child.
func (h *Hub) attachSplitChildToWorkspace(child Child, workspaceID WorkspaceID) {
	h.setWorkspaceRecursive(child, workspaceID)

	ws := h.workspaces.Get(int(workspaceID))
	insertAnchor, ok := h.focusedSplitChildIn(workspaceID)
	if !ok {
		if ws.Root != nil {
			insertAnchor, ok = *ws.Root, true
		}
	}
	if !ok {
		h.setParent(child, ParentOfWorkspace(workspaceID))
		ws.Root = &child
		h.setWorkspaceFocus(child)
		h.adjustWorkspace(workspaceID)
		return
	}

	spawnMode := h.childSpawnMode(insertAnchor)

	switch {
	case spawnMode.IsTab():
		if tabbed, found := h.findTabbedAncestor(insertAnchor); found {
			c := h.containers.Get(int(tabbed))
			pos := c.ActiveTabIndex() + 1
			h.attachSplitChildToContainer(child, tabbed, &pos)
			break
		}
		fallthrough
	default:
		if insertAnchor.IsContainer() && h.containers.Get(int(insertAnchor.Container)).CanAccommodate(spawnMode) {
			h.attachSplitChildToContainer(child, insertAnchor.Container, nil)
		} else {
			switch parent := h.getParent(insertAnchor); parent.Kind {
			case ParentContainer:
				h.tryAttachSplitChildToContainerNextTo(child, parent.Container, insertAnchor)
			default:
				h.attachSplitChildNextToWorkspaceRoot(child, parent.Workspace)
			}
		}
	}

	h.setWorkspaceFocus(child)
	h.adjustWorkspace(workspaceID)
}

// detachSplitChildFromWorkspace removes child from the tiling tree,
// collapsing its parent container if needed, and resolves workspace
// focus.
func (h *Hub) detachSplitChildFromWorkspace(child Child) {
	switch parent := h.getParent(child); parent.Kind {
	case ParentContainer:
		ws := h.containers.Get(int(parent.Container)).Workspace
		h.detachSplitChildFromContainer(parent.Container, child)
		h.adjustWorkspace(ws)
	default:
		workspaceID := parent.Workspace
		ws := h.workspaces.Get(int(workspaceID))
		ws.Root = nil
		ws.Focused = h.resolveWorkspaceFallbackFocus(workspaceID)
		h.adjustWorkspace(workspaceID)
	}
}

// resolveWorkspaceFallbackFocus picks the next focus for a workspace
// whose tiling root just became unreachable: top of the fullscreen
// stack, else the most recent float, else nothing.
func (h *Hub) resolveWorkspaceFallbackFocus(workspaceID WorkspaceID) *Focus {
	ws := h.workspaces.Get(int(workspaceID))
	if n := len(ws.FullscreenWindows); n > 0 {
		f := FocusOnFullscreen(ws.FullscreenWindows[n-1])
		return &f
	}
	if n := len(ws.FloatWindows); n > 0 {
		f := FocusOnFloat(ws.FloatWindows[n-1])
		return &f
	}
	return nil
}

// attachSplitChildToContainer attaches child to an existing container,
// at insertPos if given, else appended. Does not change focus.
func (h *Hub) attachSplitChildToContainer(child Child, containerID ContainerID, insertPos *int) {
	parent := h.containers.Get(int(containerID))
	if insertPos != nil {
		pos := *insertPos
		parent.Children = append(parent.Children, Child{})
		copy(parent.Children[pos+1:], parent.Children[pos:])
		parent.Children[pos] = child
	} else {
		parent.Children = append(parent.Children, child)
	}
	h.setChildSpawnMode(child, parent.SpawnModeOf())
	h.setParent(child, ParentOfContainer(containerID))
	h.maintainDirectionInvariance(ParentOfContainer(containerID))
}

// tryAttachSplitChildToContainerNextTo attaches child next to anchor
// inside containerID if the container can accommodate anchor's spawn
// mode, else splices in a new intermediate container housing both.
func (h *Hub) tryAttachSplitChildToContainerNextTo(child Child, containerID ContainerID, anchor Child) {
	spawnMode := h.childSpawnMode(anchor)
	parentContainer := h.containers.Get(int(containerID))
	if parentContainer.CanAccommodate(spawnMode) {
		pos := parentContainer.PositionOf(anchor) + 1
		h.attachSplitChildToContainer(child, containerID, &pos)
		return
	}
	newContainerID := h.replaceAnchorWithContainer([]Child{anchor, child}, anchor, spawnMode)
	h.containers.Get(int(containerID)).ReplaceChild(anchor, ChildOfContainer(newContainerID))
}

// attachSplitChildNextToWorkspaceRoot splices a new container containing
// [root, child] in place of the workspace's tiling root.
func (h *Hub) attachSplitChildNextToWorkspaceRoot(child Child, workspaceID WorkspaceID) {
	ws := h.workspaces.Get(int(workspaceID))
	anchor := *ws.Root
	spawnMode := h.childSpawnMode(anchor)
	newContainerID := h.replaceAnchorWithContainer([]Child{anchor, child}, anchor, spawnMode)
	newRoot := ChildOfContainer(newContainerID)
	h.workspaces.Get(int(workspaceID)).Root = &newRoot
}

// replaceAnchorWithContainer creates a new container housing children
// (which must include anchor), splicing it into anchor's previous slot
// under anchor's parent/workspace root. Takes parent, workspace and
// dimension from anchor.
func (h *Hub) replaceAnchorWithContainer(children []Child, anchor Child, spawnMode SpawnMode) ContainerID {
	parent := h.getParent(anchor)
	workspaceID := h.childWorkspace(anchor)
	dim := h.childDimension(anchor)

	var containerID ContainerID
	if direction, ok := spawnMode.AsDirection(); ok {
		containerID = ContainerID(h.containers.Allocate(Container{
			Parent:    parent,
			Workspace: workspaceID,
			Children:  append([]Child(nil), children...),
			Dimension: dim,
			Focused:   anchor,
			Direction: direction,
		}))
		for _, c := range children {
			h.setChildSpawnMode(c, spawnMode)
			h.setParent(c, ParentOfContainer(containerID))
		}
	} else {
		containerID = ContainerID(h.containers.Allocate(Container{
			Parent:    parent,
			Workspace: workspaceID,
			Children:  append([]Child(nil), children...),
			Dimension: dim,
			Focused:   anchor,
			IsTabbed:  true,
			ActiveTab: anchor,
		}))
		for _, c := range children {
			h.setChildSpawnMode(c, spawnMode)
			h.setParent(c, ParentOfContainer(containerID))
		}
	}
	newContainer := h.containers.Get(int(containerID))
	newContainer.ID = containerID
	h.maintainDirectionInvariance(ParentOfContainer(containerID))
	return containerID
}

// detachSplitChildFromContainer removes child from containerID,
// reassigning focus to a sibling and collapsing the container if it
// would be left with a single child.
func (h *Hub) detachSplitChildFromContainer(containerID ContainerID, child Child) {
	c := h.containers.Get(int(containerID))
	pos := c.PositionOf(child)
	if pos < 0 {
		panicf("detach_split_child_from_container: child not found in container %d", containerID)
	}
	var sibling Child
	if pos > 0 {
		sibling = c.Children[pos-1]
	} else {
		sibling = c.Children[pos+1]
	}
	newFocus := h.focusedLeafOf(sibling)
	h.replaceSplitChildFocus(child, newFocus)

	h.containers.Get(int(containerID)).RemoveChild(child)
	if len(h.containers.Get(int(containerID)).Children) == 1 {
		h.deleteContainer(containerID)
	}
}

// deleteContainer collapses a container with exactly one remaining
// child, promoting that child to the grandparent's slot (I7).
func (h *Hub) deleteContainer(containerID ContainerID) {
	c := h.containers.Get(int(containerID))
	if len(c.Children) != 1 {
		panicf("delete_container: expected exactly one child, got %d", len(c.Children))
	}
	grandparent := c.Parent
	lastChild := c.Children[0]
	c.Children = nil

	h.setParent(lastChild, grandparent)
	switch grandparent.Kind {
	case ParentContainer:
		h.containers.Get(int(grandparent.Container)).ReplaceChild(ChildOfContainer(containerID), lastChild)
	default:
		h.workspaces.Get(int(grandparent.Workspace)).Root = &lastChild
	}

	h.replaceSplitChildFocus(ChildOfContainer(containerID), lastChild)

	h.containers.Delete(int(containerID))
	h.maintainDirectionInvariance(grandparent)
}

// replaceSplitChildFocus retargets every container/workspace focus that
// pointed at oldChild to newChild, without stealing focus for containers
// that merely contained oldChild without focusing it.
func (h *Hub) replaceSplitChildFocus(oldChild, newChild Child) {
	var highestFocusing *ContainerID
	cur := oldChild
	tk := h.newTicker()
	for {
		tk.tick()
		parent := h.getParent(cur)
		if parent.Kind != ParentContainer {
			highestFocusing = nil
			break
		}
		if h.containers.Get(int(parent.Container)).Focused != oldChild {
			break
		}
		id := parent.Container
		highestFocusing = &id
		cur = ChildOfContainer(parent.Container)
	}

	cur = newChild
	tk = h.newTicker()
	for {
		tk.tick()
		parent := h.getParent(cur)
		if parent.Kind != ParentContainer {
			ws := h.workspaces.Get(int(parent.Workspace))
			if ws.Focused != nil && *ws.Focused == FocusOnTiling(oldChild) {
				f := FocusOnTiling(newChild)
				ws.Focused = &f
			}
			break
		}
		container := h.containers.Get(int(parent.Container))
		if container.Focused == oldChild {
			if container.IsTabbed {
				container.SetActiveTab(cur)
			}
			container.Focused = newChild
		}
		if highestFocusing != nil && *highestFocusing == parent.Container {
			break
		}
		cur = ChildOfContainer(parent.Container)
	}
}

// maintainDirectionInvariance restores I6 (no split directly containing
// a same-direction split child) across the subtree rooted at parent's
// container, skipping into tabbed containers opaquely.
func (h *Hub) maintainDirectionInvariance(parent Parent) {
	var containerID ContainerID
	switch parent.Kind {
	case ParentContainer:
		containerID = parent.Container
	default:
		ws := h.workspaces.Get(int(parent.Workspace))
		if ws.Root == nil || !ws.Root.IsContainer() {
			return
		}
		containerID = ws.Root.Container
	}

	stack := []ContainerID{containerID}
	tk := h.newTicker()
	for len(stack) > 0 {
		tk.tick()
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := h.containers.Get(int(id))
		if c.IsTabbed {
			continue
		}
		direction := c.Direction
		for _, child := range append([]Child(nil), c.Children...) {
			if !child.IsContainer() {
				continue
			}
			childContainer := h.containers.Get(int(child.Container))
			if childContainer.HasDirection(direction) {
				childContainer.ToggleDirection()
			}
			stack = append(stack, child.Container)
		}
	}
}
