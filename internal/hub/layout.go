package hub

import "math"

// adjustWorkspace recomputes the layout of workspaceID: bottom-up
// minimum-size propagation, top-down space distribution, then viewport
// scrolling. Called after every mutation that touches the workspace.
func (h *Hub) adjustWorkspace(workspaceID WorkspaceID) {
	ws := h.workspaces.Get(int(workspaceID))
	if ws.Root == nil {
		return
	}
	root := *ws.Root
	screen := h.monitors.Get(int(ws.Monitor)).Dimension

	if root.IsWindow() {
		h.setRootDimension(root, screen)
		return
	}

	// Step A: preorder traversal from the root container.
	var order []ContainerID
	stack := []ContainerID{root.Container}
	tk := h.newTicker()
	for len(stack) > 0 {
		tk.tick()
		cid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cid)
		for _, child := range h.containers.Get(int(cid)).Children {
			if child.IsContainer() {
				stack = append(stack, child.Container)
			}
		}
	}

	// Step B: bottom-up minimum propagation, reverse preorder.
	for i := len(order) - 1; i >= 0; i-- {
		h.updateContainerMinSize(order[i])
	}

	// Step C: root dimensioning.
	h.setRootDimension(root, screen)

	// Step D: top-down distribution, preorder.
	for _, cid := range order {
		c := h.containers.Get(int(cid))
		dim := c.Dimension
		children := append([]Child(nil), c.Children...)
		direction, isSplit := c.AsDirection()
		var dirPtr *Direction
		if isSplit {
			dirPtr = &direction
		}
		childDims := h.layoutSplitChildren(children, dim, dirPtr)
		for i, child := range children {
			h.setSplitChildDimension(child, childDims[i])
		}
	}

	// Focused child may have gone out of view due to resizing siblings.
	h.scrollIntoView(workspaceID)
}

type constraint struct {
	minW, maxW, minH, maxH float64
}

// collectConstraints gathers each child's effective min/max size.
func (h *Hub) collectConstraints(children []Child) []constraint {
	out := make([]constraint, len(children))
	for i, c := range children {
		minW, minH := h.effectiveMinSize(c)
		maxW, maxH := h.effectiveMaxSize(c)
		out[i] = constraint{minW, maxW, minH, maxH}
	}
	return out
}

// layoutSplitChildren lays out children within dim. direction nil means
// a tabbed container.
func (h *Hub) layoutSplitChildren(children []Child, dim Dimension, direction *Direction) []Dimension {
	constraints := h.collectConstraints(children)
	result := make([]Dimension, len(children))

	if direction == nil {
		contentY := dim.Y + h.config.TabBarHeight
		contentHeight := dim.Height - h.config.TabBarHeight
		for i, c := range constraints {
			w, xOff := applyMaxConstraint(c.maxW, dim.Width)
			hh, yOff := applyMaxConstraint(c.maxH, contentHeight)
			result[i] = Dimension{X: dim.X + xOff, Y: contentY + yOff, Width: w, Height: hh}
		}
		return result
	}

	switch *direction {
	case Horizontal:
		height := dim.Height
		for _, c := range constraints {
			if c.minH > height {
				height = c.minH
			}
		}
		widthConstraints := make([][2]float64, len(constraints))
		for i, c := range constraints {
			widthConstraints[i] = [2]float64{c.minW, c.maxW}
		}
		widths := distributeSpace(widthConstraints, dim.Width)
		sum := 0.0
		for _, w := range widths {
			sum += w
		}
		x := dim.X + (dim.Width-sum)/2
		for i, c := range constraints {
			hh, yOff := applyMaxConstraint(c.maxH, height)
			result[i] = Dimension{X: x, Y: dim.Y + yOff, Width: widths[i], Height: hh}
			x += widths[i]
		}
	default:
		width := dim.Width
		for _, c := range constraints {
			if c.minW > width {
				width = c.minW
			}
		}
		heightConstraints := make([][2]float64, len(constraints))
		for i, c := range constraints {
			heightConstraints[i] = [2]float64{c.minH, c.maxH}
		}
		heights := distributeSpace(heightConstraints, dim.Height)
		sum := 0.0
		for _, hgt := range heights {
			sum += hgt
		}
		y := dim.Y + (dim.Height-sum)/2
		for i, c := range constraints {
			w, xOff := applyMaxConstraint(c.maxW, width)
			result[i] = Dimension{X: dim.X + xOff, Y: y, Width: w, Height: heights[i]}
			y += heights[i]
		}
	}
	return result
}

// scrollIntoView clamps the viewport then shifts it so the focused
// tiling/container entity is fully visible, if possible.
func (h *Hub) scrollIntoView(workspaceID WorkspaceID) {
	h.clampViewportOffset(workspaceID)

	ws := h.workspaces.Get(int(workspaceID))
	monitorID := ws.Monitor
	offsetX, offsetY := ws.ViewportOffsetX, ws.ViewportOffsetY
	focused := ws.Focused

	if focused == nil || focused.Kind != FocusTiling {
		return
	}
	screen := h.monitors.Get(int(monitorID)).Dimension
	focusedDim := h.childDimension(focused.Tiling)

	if focusedDim.X-offsetX+focusedDim.Width > screen.Width {
		offsetX = focusedDim.X + focusedDim.Width - screen.Width
	}
	if focusedDim.X-offsetX < 0 {
		offsetX = focusedDim.X
	}
	if focusedDim.Y-offsetY+focusedDim.Height > screen.Height {
		offsetY = focusedDim.Y + focusedDim.Height - screen.Height
	}
	if focusedDim.Y-offsetY < 0 {
		offsetY = focusedDim.Y
	}

	ws = h.workspaces.Get(int(workspaceID))
	ws.ViewportOffsetX, ws.ViewportOffsetY = offsetX, offsetY
}

func (h *Hub) clampViewportOffset(workspaceID WorkspaceID) {
	ws := h.workspaces.Get(int(workspaceID))
	screen := h.monitors.Get(int(ws.Monitor)).Dimension
	offsetX, offsetY := ws.ViewportOffsetX, ws.ViewportOffsetY

	if ws.Root == nil {
		ws.ViewportOffsetX, ws.ViewportOffsetY = 0, 0
		return
	}
	rootDim := h.childDimension(*ws.Root)

	offsetX = clamp(offsetX, 0, math.Max(rootDim.Width-screen.Width, 0))
	offsetY = clamp(offsetY, 0, math.Max(rootDim.Height-screen.Height, 0))
	ws.ViewportOffsetX, ws.ViewportOffsetY = offsetX, offsetY
}

// setRootDimension sizes the tiling root to the screen, expanded to its
// minimum if larger, with max-size centering applied when the root is a
// single entity smaller than the base box.
func (h *Hub) setRootDimension(root Child, screen Dimension) {
	minW, minH := h.effectiveMinSize(root)
	base := Dimension{
		X:      0,
		Y:      0,
		Width:  math.Max(screen.Width, minW),
		Height: math.Max(screen.Height, minH),
	}

	maxW, maxH := h.effectiveMaxSize(root)
	w, xOff := applyMaxConstraint(maxW, base.Width)
	hh, yOff := applyMaxConstraint(maxH, base.Height)
	dim := Dimension{X: base.X + xOff, Y: base.Y + yOff, Width: w, Height: hh}

	h.setSplitChildDimension(root, dim)
}

func (h *Hub) updateContainerMinSize(containerID ContainerID) {
	c := h.containers.Get(int(containerID))
	children := c.Children
	direction, isSplit := c.AsDirection()

	var minW, minH float64
	switch {
	case isSplit && direction == Horizontal:
		for _, child := range children {
			w, hh := h.effectiveMinSize(child)
			minW += w
			if hh > minH {
				minH = hh
			}
		}
	case isSplit:
		for _, child := range children {
			w, hh := h.effectiveMinSize(child)
			if w > minW {
				minW = w
			}
			minH += hh
		}
	default:
		for _, child := range children {
			w, hh := h.effectiveMinSize(child)
			if w > minW {
				minW = w
			}
			if hh > minH {
				minH = hh
			}
		}
		minH += h.config.TabBarHeight
	}

	c = h.containers.Get(int(containerID))
	c.MinWidth, c.MinHeight = minW, minH
	if c.Dimension.Width < minW {
		c.Dimension.Width = minW
	}
	if c.Dimension.Height < minH {
		c.Dimension.Height = minH
	}
}

// setSplitChildDimension stores child's new rectangle and, when
// auto_tile is enabled, rewrites its spawn mode from the resulting
// aspect ratio (tab spawn mode is preserved).
func (h *Hub) setSplitChildDimension(child Child, dim Dimension) {
	spawnMode := SpawnHorizontal
	if dim.Width < dim.Height {
		spawnMode = SpawnVertical
	}
	switch child.Kind {
	case ChildWindow:
		w := h.windows.Get(int(child.Window))
		w.Dimension = dim
		if h.config.AutoTile && !w.SpawnMode.IsTab() {
			w.SpawnMode = spawnMode
		}
	default:
		c := h.containers.Get(int(child.Container))
		c.Dimension = dim
		if h.config.AutoTile && !c.SpawnModeOf().IsTab() {
			c.SetSpawnMode(spawnMode)
		}
	}
}

// effectiveMinSize returns the per-entity minimum, floored by the global
// configured minimum for windows; containers report their cached size.
func (h *Hub) effectiveMinSize(child Child) (float64, float64) {
	switch child.Kind {
	case ChildWindow:
		w := h.windows.Get(int(child.Window))
		screen := h.monitorDimensionForWorkspace(w.Workspace)
		globalMinW := h.config.MinWidth.Resolve(screen.Width)
		globalMinH := h.config.MinHeight.Resolve(screen.Height)
		return math.Max(w.MinWidth, globalMinW), math.Max(w.MinHeight, globalMinH)
	default:
		c := h.containers.Get(int(child.Container))
		return c.MinWidth, c.MinHeight
	}
}

// effectiveMaxSize returns the per-window maximum if set, else the
// global configured maximum; containers have no maximum of their own.
func (h *Hub) effectiveMaxSize(child Child) (float64, float64) {
	if child.Kind != ChildWindow {
		return 0, 0
	}
	w := h.windows.Get(int(child.Window))
	screen := h.monitorDimensionForWorkspace(w.Workspace)
	globalMaxW := h.config.MaxWidth.Resolve(screen.Width)
	globalMaxH := h.config.MaxHeight.Resolve(screen.Height)
	maxW := w.MaxWidth
	if maxW <= 0 {
		maxW = globalMaxW
	}
	maxH := w.MaxHeight
	if maxH <= 0 {
		maxH = globalMaxH
	}
	return maxW, maxH
}

// applyMaxConstraint returns (size, offset) where offset centers the
// entity within available space when max binds below it.
func applyMaxConstraint(max, available float64) (float64, float64) {
	if max > 0 && max < available {
		return max, (available - max) / 2
	}
	return available, 0
}

// distributeSpace assigns each (min, max) constraint a share of
// containerSize: exact mins if they overflow, exact maxes if they
// underflow, else a binary-searched scalar clamped per constraint so the
// shares sum to containerSize within epsilon.
func distributeSpace(constraints [][2]float64, containerSize float64) []float64 {
	const epsilon = 0.001

	norm := make([][2]float64, len(constraints))
	sumMins := 0.0
	for i, c := range constraints {
		max := c[1]
		if max == 0 {
			max = math.Inf(1)
		}
		norm[i] = [2]float64{c[0], max}
		sumMins += c[0]
	}

	if sumMins >= containerSize {
		out := make([]float64, len(norm))
		for i, c := range norm {
			out[i] = c[0]
		}
		return out
	}

	allFinite := true
	sumMaxes := 0.0
	for _, c := range norm {
		if math.IsInf(c[1], 1) {
			allFinite = false
		}
		sumMaxes += c[1]
	}
	if allFinite && sumMaxes <= containerSize {
		out := make([]float64, len(norm))
		for i, c := range norm {
			out[i] = c[1]
		}
		return out
	}

	low, high := 0.0, containerSize
	for high-low > epsilon {
		mid := (low + high) / 2
		total := 0.0
		for _, c := range norm {
			total += clamp(mid, c[0], c[1])
		}
		if total > containerSize {
			high = mid
		} else {
			low = mid
		}
	}

	out := make([]float64, len(norm))
	for i, c := range norm {
		out[i] = clamp(low, c[0], c[1])
	}
	return out
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
