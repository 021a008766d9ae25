package x11

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/1broseidon/dome/internal/hub"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Adapter polls the X11 server for window and monitor changes and
// translates them into hub.Event values, the "out of scope (a)" OS
// collaborator the core expects to sit in front of it. Event-driven
// substructure notification would avoid the poll, but diffing
// _NET_CLIENT_LIST and RandR resources on an interval is the simplest
// adapter that keeps the Hub's pure core decoupled from X11 entirely.
type Adapter struct {
	conn     *Connection
	interval time.Duration
	logger   *slog.Logger

	events chan hub.Event

	knownWindows map[xproto.Window]bool
	knownScreens map[string]hub.Dimension
}

// NewAdapter wraps an established X11 connection.
func NewAdapter(conn *Connection, interval time.Duration, logger *slog.Logger) *Adapter {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		conn:         conn,
		interval:     interval,
		logger:       logger,
		events:       make(chan hub.Event, 32),
		knownWindows: make(map[xproto.Window]bool),
		knownScreens: make(map[string]hub.Dimension),
	}
}

// Events returns the channel daemon.Params.Events should be set to.
func (a *Adapter) Events() <-chan hub.Event { return a.events }

// XUtil satisfies hotkeys' x11Accessor interface.
func (a *Adapter) XUtil() *xgbutil.XUtil { return a.conn.XUtil }

// RootWindow satisfies hotkeys' x11Accessor interface.
func (a *Adapter) RootWindow() xproto.Window { return a.conn.Root }

// Run polls until ctx is cancelled, pushing events to Events(). Run
// closes the events channel on return.
func (a *Adapter) Run(ctx context.Context) {
	defer close(a.events)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.poll()
		}
	}
}

func (a *Adapter) poll() {
	a.pollWindows()
	a.pollScreens()
}

func (a *Adapter) pollWindows() {
	clients, err := a.conn.GetClientList()
	if err != nil {
		a.logger.Warn("poll client list", "error", err)
		return
	}

	seen := make(map[xproto.Window]bool, len(clients))
	for _, win := range clients {
		if !a.conn.IsNormalWindow(win) {
			continue
		}
		seen[win] = true
		if !a.knownWindows[win] {
			a.knownWindows[win] = true
			a.send(hub.Event{Kind: hub.EventSyncApp, Process: processKey(win)})
		}
	}

	for win := range a.knownWindows {
		if seen[win] {
			continue
		}
		delete(a.knownWindows, win)
		a.send(hub.Event{Kind: hub.EventAppTerminated, Process: processKey(win)})
	}

	if active, err := a.conn.GetActiveWindow(); err == nil && active != 0 {
		a.send(hub.Event{Kind: hub.EventSyncFocus, Process: processKey(active)})
	}
}

func (a *Adapter) pollScreens() {
	monitors, err := a.conn.GetMonitors()
	if err != nil {
		a.logger.Warn("poll monitors", "error", err)
		return
	}

	screens := make([]hub.Screen, 0, len(monitors))
	changed := false
	seen := make(map[string]bool, len(monitors))
	for _, m := range monitors {
		dim := hub.Dimension{X: float64(m.X), Y: float64(m.Y), Width: float64(m.Width), Height: float64(m.Height)}
		seen[m.Name] = true
		screens = append(screens, hub.Screen{Name: m.Name, Dimension: dim})
		if prev, ok := a.knownScreens[m.Name]; !ok || prev != dim {
			changed = true
		}
	}
	for name := range a.knownScreens {
		if !seen[name] {
			changed = true
		}
	}
	if !changed {
		return
	}
	a.knownScreens = make(map[string]hub.Dimension, len(screens))
	for _, s := range screens {
		a.knownScreens[s.Name] = s.Dimension
	}
	a.send(hub.Event{Kind: hub.EventScreensChanged, Screens: screens})
}

func (a *Adapter) send(evt hub.Event) {
	select {
	case a.events <- evt:
	default:
		a.logger.Warn("event dropped, channel full", "kind", evt.Kind)
	}
}

// processKey derives the ProcessKey this package's registry keys
// windows by, from the raw X11 window ID.
func processKey(win xproto.Window) hub.ProcessKey {
	return hub.ProcessKey(fmt.Sprintf("x11:%d", win))
}

// GetClientList exposes the root window's EWMH client list, the
// adapter's source of truth for which top-level windows currently exist.
func (c *Connection) GetClientList() ([]xproto.Window, error) {
	return ewmh.ClientListGet(c.XUtil)
}
