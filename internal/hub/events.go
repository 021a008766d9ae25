package hub

// ProcessKey and WindowKey are opaque identifiers the external OS
// adapter uses to reference processes and their windows; the core never
// interprets them beyond equality and lookup.
type ProcessKey string
type WindowKey string

// Screen is the OS adapter's view of a physical output. ApplyEvent leaves
// ScreensChanged alone; the daemon's event loop translates the screen
// list into an AddMonitor/UpdateMonitorDimension/RemoveMonitor call
// sequence.
type Screen struct {
	Name      string
	Dimension Dimension
}

// EventKind tags which variant of the external event union a value
// holds.
type EventKind int

const (
	EventSyncApp EventKind = iota
	EventSyncFocus
	EventAppTerminated
	EventTitleChanged
	EventWindowMovedOrResized
	EventAction
	EventConfigChanged
	EventScreensChanged
	EventSync
	EventShutdown
)

// Event is the single tagged union covering everything an external
// collaborator (OS adapter, keybinding/IPC layer) may feed into the Hub.
type Event struct {
	Kind EventKind

	Process ProcessKey  // SyncApp, SyncFocus, AppTerminated, WindowMovedOrResized
	Window  WindowKey   // TitleChanged
	Title   string      // TitleChanged
	Actions []Action    // Action
	Config  Config      // ConfigChanged
	Screens []Screen    // ScreensChanged
}

// ActionKind tags which user action a value holds.
type ActionKind int

const (
	ActionFocusUp ActionKind = iota
	ActionFocusDown
	ActionFocusLeft
	ActionFocusRight
	ActionFocusParent
	ActionFocusNextTab
	ActionFocusPrevTab
	ActionFocusWorkspace
	ActionFocusMonitor
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveFocusedToWorkspace
	ActionMoveToMonitor
	ActionToggleSpawnMode
	ActionToggleDirection
	ActionToggleContainerLayout
	ActionToggleFloat
	ActionToggleFullscreen
	ActionInsertTiling
	ActionInsertFloat
	ActionDeleteWindow
	ActionDeleteFloat
	ActionSetFocus
	ActionSetFloatFocus
	ActionExec
	ActionExit
)

// Action is one user-facing command produced by the keybinding or IPC
// layer. Fields irrelevant to Kind are zero.
type Action struct {
	Kind ActionKind

	WorkspaceName int
	Monitor       MonitorID
	Window        WindowID
	Float         FloatWindowID
	FloatDim      Dimension
	Command       string // ActionExec
}

// ApplyEvent dispatches a single external event to completion, including
// whatever layout recomputation it triggers. Events outside the Hub's
// purview (process/window synchronization, title bookkeeping) are the
// adapter's responsibility to translate into Insert/Delete/Set calls
// before they ever reach here — ApplyEvent only handles the variants the
// core itself can act on directly.
func (h *Hub) ApplyEvent(e Event) {
	switch e.Kind {
	case EventAction:
		for _, a := range e.Actions {
			h.ApplyAction(a)
		}
	case EventConfigChanged:
		h.SyncConfig(e.Config)
	case EventShutdown, EventSync:
		// No core-owned state to flush; the adapter drives the actual
		// reconciliation from its own window list.
	default:
		// SyncApp/SyncFocus/AppTerminated/TitleChanged/WindowMovedOrResized/
		// ScreensChanged carry OS-specific payloads (process handles, raw
		// screen lists) that the daemon's event loop resolves into concrete
		// Insert/Delete/AddMonitor/RemoveMonitor/UpdateMonitorDimension
		// calls before or instead of calling ApplyEvent directly.
	}
}

// ApplyAction dispatches a single user action.
func (h *Hub) ApplyAction(a Action) {
	switch a.Kind {
	case ActionFocusUp:
		h.FocusUp()
	case ActionFocusDown:
		h.FocusDown()
	case ActionFocusLeft:
		h.FocusLeft()
	case ActionFocusRight:
		h.FocusRight()
	case ActionFocusParent:
		h.FocusParent()
	case ActionFocusNextTab:
		h.FocusNextTab()
	case ActionFocusPrevTab:
		h.FocusPrevTab()
	case ActionFocusWorkspace:
		h.FocusWorkspace(a.WorkspaceName)
	case ActionFocusMonitor:
		h.FocusMonitor(a.Monitor)
	case ActionMoveUp:
		h.MoveUp()
	case ActionMoveDown:
		h.MoveDown()
	case ActionMoveLeft:
		h.MoveLeft()
	case ActionMoveRight:
		h.MoveRight()
	case ActionMoveFocusedToWorkspace:
		h.MoveFocusedToWorkspace(a.WorkspaceName)
	case ActionMoveToMonitor:
		h.MoveToMonitor(a.Monitor)
	case ActionToggleSpawnMode:
		h.ToggleSpawnMode()
	case ActionToggleDirection:
		h.ToggleDirection()
	case ActionToggleContainerLayout:
		h.ToggleContainerLayout()
	case ActionToggleFloat:
		h.ToggleFloat()
	case ActionToggleFullscreen:
		h.ToggleFullscreen()
	case ActionInsertTiling:
		h.InsertTiling()
	case ActionInsertFloat:
		h.InsertFloat(a.FloatDim)
	case ActionDeleteWindow:
		h.DeleteWindow(a.Window)
	case ActionDeleteFloat:
		h.DeleteFloat(a.Float)
	case ActionSetFocus:
		h.SetFocus(a.Window)
	case ActionSetFloatFocus:
		h.SetFloatFocus(a.Float)
	case ActionExec, ActionExit:
		// Handled by the daemon, not the core: spawning processes and
		// exiting the event loop are both I/O.
	}
}
