package hotkeys

import (
	"fmt"

	"github.com/1broseidon/dome/internal/daemon"
	"github.com/1broseidon/dome/internal/hub"
)

// actionNames maps a config keymap's action name to the ActionKind it
// requests. Names with a required argument (focus_workspace N,
// focus_monitor N) have no entry here, so ParseAction rejects them.
var actionNames = map[string]hub.ActionKind{
	"focus_up":                hub.ActionFocusUp,
	"focus_down":              hub.ActionFocusDown,
	"focus_left":              hub.ActionFocusLeft,
	"focus_right":             hub.ActionFocusRight,
	"focus_parent":            hub.ActionFocusParent,
	"focus_next_tab":          hub.ActionFocusNextTab,
	"focus_prev_tab":          hub.ActionFocusPrevTab,
	"move_up":                 hub.ActionMoveUp,
	"move_down":               hub.ActionMoveDown,
	"move_left":               hub.ActionMoveLeft,
	"move_right":              hub.ActionMoveRight,
	"toggle_spawn_mode":       hub.ActionToggleSpawnMode,
	"toggle_direction":        hub.ActionToggleDirection,
	"toggle_container_layout": hub.ActionToggleContainerLayout,
	"toggle_float":            hub.ActionToggleFloat,
	"toggle_fullscreen":       hub.ActionToggleFullscreen,
	"insert_tiling":           hub.ActionInsertTiling,
}

// ParseAction resolves a keymap action name into a hub.Action. Names
// not found in actionNames are rejected; parameterized actions
// (focus_workspace, move_to_workspace, focus_monitor, move_to_monitor)
// are not configurable via a bare keymap entry in this release and are
// issued by the CLI/IPC layer directly instead.
func ParseAction(name string) (hub.Action, error) {
	if name == "delete_window" {
		return hub.Action{Kind: hub.ActionDeleteWindow, Window: daemon.FocusedWindow}, nil
	}
	kind, ok := actionNames[name]
	if !ok {
		return hub.Action{}, fmt.Errorf("unknown action %q", name)
	}
	return hub.Action{Kind: kind}, nil
}
