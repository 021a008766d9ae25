package x11

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/1broseidon/dome/internal/hub"
	"github.com/BurntSushi/xgb/xproto"
)

// KeyResolver maps Hub window and float identities back to the OS key
// the Adapter originally minted for them. daemon.WindowRegistry
// satisfies this.
type KeyResolver interface {
	KeyForWindow(hub.WindowID) (string, bool)
	KeyForFloat(hub.FloatWindowID) (string, bool)
}

// Renderer applies a hub.Snapshot's placements to real X11 windows,
// the daemon.SnapshotPublisher this package wires in.
type Renderer struct {
	conn   *Connection
	keys   KeyResolver
	logger *slog.Logger
}

// NewRenderer builds a renderer bound to conn and keys.
func NewRenderer(conn *Connection, keys KeyResolver, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{conn: conn, keys: keys, logger: logger}
}

// Publish satisfies daemon.SnapshotPublisher.
func (r *Renderer) Publish(snap hub.Snapshot) {
	for _, p := range snap.Tiling {
		if win, ok := r.resolve(r.keys.KeyForWindow(p.Window)); ok {
			r.place(win, p.Frame)
		}
	}
	for _, p := range snap.Floats {
		if win, ok := r.resolve(r.keys.KeyForFloat(p.Float)); ok {
			r.place(win, p.Frame)
		}
	}
	r.raiseFocus(snap.Focused)
}

func (r *Renderer) place(win xproto.Window, frame hub.Dimension) {
	x, y, width, height := int(frame.X), int(frame.Y), int(frame.Width), int(frame.Height)
	if left, right, top, bottom, err := r.conn.GetFrameExtents(win); err == nil {
		x += left
		y += top
		width -= left + right
		height -= top + bottom
	}
	if err := r.conn.MoveResizeWindow(win, x, y, width, height); err != nil {
		r.logger.Warn("move/resize window", "window", win, "error", err)
	}
}

// raiseFocus resolves the workspace's focused entity (tiling window,
// float, or fullscreen window) back to its OS key and raises it via
// _NET_ACTIVE_WINDOW. After FocusParent, Focus.Tiling is a container
// rather than a window; a container has no OS window, so nothing is
// raised then.
func (r *Renderer) raiseFocus(focus *hub.Focus) {
	if focus == nil {
		return
	}

	var win xproto.Window
	var ok bool
	switch focus.Kind {
	case hub.FocusTiling:
		if focus.Tiling.IsWindow() {
			win, ok = r.resolve(r.keys.KeyForWindow(focus.Tiling.Window))
		}
	case hub.FocusFloat:
		win, ok = r.resolve(r.keys.KeyForFloat(focus.Float))
	case hub.FocusFullscreen:
		win, ok = r.resolve(r.keys.KeyForWindow(focus.Fullscreen))
	}
	if !ok {
		return
	}
	if err := r.conn.FocusWindow(uint32(win)); err != nil {
		r.logger.Warn("focus window", "window", win, "error", err)
	}
}

func (r *Renderer) resolve(key string, found bool) (xproto.Window, bool) {
	if !found || !strings.HasPrefix(key, "x11:") {
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(key, "x11:"), 10, 32)
	if err != nil {
		return 0, false
	}
	return xproto.Window(n), true
}
