// Package config loads dome's YAML configuration and turns it into the
// hub.Config the daemon feeds to Hub.SyncConfig, plus the keymap and
// logging settings that live outside the core's concern.
package config

import "github.com/1broseidon/dome/internal/hub"

// Keymap maps a chord string (as internal/hotkeys parses it, e.g.
// "super+shift+h") to the action name it triggers.
type Keymap map[string]string

// Config is dome's fully-resolved configuration: the hub.Config the
// layout engine consults, plus the daemon's own concerns.
type Config struct {
	Hub hub.Config

	Keymaps  Keymap
	LogLevel string

	GapSize       int
	ScreenPadding Margins
}

type Margins struct {
	Top, Bottom, Left, Right int
}

// DefaultConfig supplies sane built-in defaults for every daemon-level
// field, plus hub.DefaultConfig for the layout engine.
func DefaultConfig() *Config {
	return &Config{
		Hub:      hub.DefaultConfig(),
		Keymaps:  defaultKeymap(),
		LogLevel: "info",
		GapSize:  0,
	}
}

func defaultKeymap() Keymap {
	return Keymap{
		"super+h":       "focus_left",
		"super+l":       "focus_right",
		"super+k":       "focus_up",
		"super+j":       "focus_down",
		"super+shift+h": "move_left",
		"super+shift+l": "move_right",
		"super+shift+k": "move_up",
		"super+shift+j": "move_down",
		"super+return":  "insert_tiling",
		"super+shift+q": "delete_window",
		"super+space":   "toggle_float",
		"super+f":       "toggle_fullscreen",
		"super+v":       "toggle_direction",
		"super+t":       "toggle_container_layout",
		"super+tab":     "focus_next_tab",
	}
}
