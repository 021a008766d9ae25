package hub

// FocusUp, FocusDown, FocusLeft and FocusRight move the workspace focus
// to the neighboring tiling child along the named axis, if any.
func (h *Hub) FocusUp()    { h.focusInDirection(Vertical, false) }
func (h *Hub) FocusDown()  { h.focusInDirection(Vertical, true) }
func (h *Hub) FocusLeft()  { h.focusInDirection(Horizontal, false) }
func (h *Hub) FocusRight() { h.focusInDirection(Horizontal, true) }

// focusInDirection walks up from the current focus looking for a split
// ancestor on direction with a sibling on the requested side, then
// descends that sibling's focused chain to a leaf.
func (h *Hub) focusInDirection(direction Direction, forward bool) {
	focused, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	current := focused
	tk := h.newTicker()
	for {
		tk.tick()
		parent := h.getParent(current)
		if parent.Kind != ParentContainer {
			return
		}
		container := h.containers.Get(int(parent.Container))
		if d, isSplit := container.AsDirection(); !isSplit || d != direction {
			current = ChildOfContainer(parent.Container)
			continue
		}
		pos := container.PositionOf(current)
		hasSibling := false
		if forward {
			hasSibling = pos+1 < len(container.Children)
		} else {
			hasSibling = pos > 0
		}
		if hasSibling {
			siblingPos := pos + 1
			if !forward {
				siblingPos = pos - 1
			}
			sibling := container.Children[siblingPos]
			h.setWorkspaceFocus(h.focusedLeafOf(sibling))
			return
		}
		current = ChildOfContainer(parent.Container)
	}
}

// FocusNextTab and FocusPrevTab rotate the active tab of the nearest
// tabbed ancestor of the focus.
func (h *Hub) FocusNextTab() { h.focusTab(true) }
func (h *Hub) FocusPrevTab() { h.focusTab(false) }

func (h *Hub) focusTab(forward bool) {
	focused, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	containerID, found := h.findTabbedAncestor(focused)
	if !found {
		return
	}
	container := h.containers.Get(int(containerID))
	newChild, ok := container.SwitchTab(forward)
	if !ok {
		return
	}
	h.setWorkspaceFocus(h.focusedLeafOf(newChild))
}

// FocusParent sets focus to the focused entity's direct parent
// container. No-op if the focus is a direct child of the workspace.
func (h *Hub) FocusParent() {
	focused, ok := h.focusedSplitChild()
	if !ok {
		return
	}
	parent := h.getParent(focused)
	if parent.Kind != ParentContainer {
		return
	}
	h.setWorkspaceFocus(ChildOfContainer(parent.Container))
}
