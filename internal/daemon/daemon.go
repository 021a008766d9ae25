// Package daemon owns the single long-lived Hub instance and is the
// only goroutine allowed to call into it, serializing OS events, IPC
// commands, and periodic reconciliation through one event loop.
package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/1broseidon/dome/internal/config"
	"github.com/1broseidon/dome/internal/hub"
	"github.com/1broseidon/dome/internal/ipc"
)

// WindowEvents is the OS adapter's only entry point into the Hub: a
// stream of events the daemon drains one at a time.
type WindowEvents <-chan hub.Event

// FocusedWindow is the sentinel Action.Window value meaning "whichever
// window is currently focused," used by callers (hotkeys) that have no
// way to read Hub state themselves. Resolved in handleCommand before
// the action reaches the Hub.
const FocusedWindow hub.WindowID = -1

// SnapshotPublisher is invoked with the focused workspace's freshly
// computed Snapshot after every event, action batch and config reload
// that could have changed it.
type SnapshotPublisher func(hub.Snapshot)

type commandKind int

const (
	cmdApply commandKind = iota
	cmdReload
	cmdStatus
	cmdSnapshot
)

type command struct {
	kind    commandKind
	actions []hub.Action
	reply   chan commandReply
}

type commandReply struct {
	err      error
	status   ipc.StatusData
	snapshot hub.Snapshot
}

// Daemon owns the Hub and the OS-key registry, and
// implements ipc.Dispatcher by round-tripping requests through its own
// event loop instead of touching the Hub directly from IPC goroutines.
type Daemon struct {
	hub      *hub.Hub
	registry *WindowRegistry
	cfg      *config.Config
	logger   *slog.Logger

	events   WindowEvents
	commands chan command
	publish  SnapshotPublisher

	startTime time.Time
}

// Params groups the daemon's construction parameters. Use Registry()
// after New to hand the same WindowRegistry to a Reconciler and an OS
// adapter.
type Params struct {
	Hub     *hub.Hub
	Config  *config.Config
	Events  WindowEvents
	Publish SnapshotPublisher
	Logger  *slog.Logger
}

// New builds a daemon ready to Run. It does not start any goroutines.
func New(p Params) *Daemon {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	publish := p.Publish
	if publish == nil {
		publish = func(hub.Snapshot) {}
	}

	d := &Daemon{
		hub:       p.Hub,
		cfg:       p.Config,
		logger:    logger,
		events:    p.Events,
		commands:  make(chan command),
		publish:   publish,
		startTime: time.Now(),
	}
	d.registry = NewWindowRegistry(p.Hub, logger)
	return d
}

// Registry exposes the window-key registry so an OS adapter and the
// reconciler can be wired to the same daemon instance before Run starts.
func (d *Daemon) Registry() *WindowRegistry { return d.registry }

// Config returns the configuration currently in effect, refreshed on
// every Reload.
func (d *Daemon) Config() *config.Config { return d.cfg }

// Run is the daemon's single event loop. It blocks until ctx is
// cancelled.
func (d *Daemon) Run(ctx context.Context) {
	d.logger.Info("daemon event loop started")
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("daemon event loop stopped")
			return
		case evt, ok := <-d.events:
			if !ok {
				d.events = nil
				continue
			}
			d.handleEvent(evt)
			d.publishCurrent()
		case cmd := <-d.commands:
			d.handleCommand(cmd)
		}
	}
}

func (d *Daemon) recoverPanic(stage string) {
	if r := recover(); r != nil {
		d.logger.Error("daemon recovered from panic", "stage", stage, "panic", r)
	}
}

// handleEvent translates one OS-adapter event into Hub calls. Variants
// carrying OS-specific identifiers (SyncApp, SyncFocus, AppTerminated,
// TitleChanged, WindowMovedOrResized, ScreensChanged) are resolved here, against the
// window registry, before or instead of calling ApplyEvent; the rest are
// handed to the Hub directly.
func (d *Daemon) handleEvent(evt hub.Event) {
	defer d.recoverPanic("event")

	switch evt.Kind {
	case hub.EventSyncApp:
		d.registry.Sync(string(evt.Process))
	case hub.EventAppTerminated:
		d.registry.Terminated(string(evt.Process))
	case hub.EventTitleChanged:
		d.registry.SetTitle(string(evt.Window), evt.Title)
	case hub.EventWindowMovedOrResized:
		// One-window-per-process terminals are tiled by the layout
		// engine, not the user dragging a border; floats could accept a
		// resize here once the adapter reports one, but nothing in the
		// current event payload carries a new dimension to apply.
	case hub.EventScreensChanged:
		d.syncScreens(evt.Screens)
	case hub.EventSyncFocus:
		if id, ok := d.registry.WindowForKey(string(evt.Process)); ok {
			d.hub.SetFocus(id)
		}
	default:
		d.hub.ApplyEvent(evt)
	}
}

// syncScreens reconciles the Hub's monitor set against the adapter's
// latest screen list: new names are added, vanished ones removed
// (falling back to whichever monitor remains focused), and surviving
// ones resized in place.
func (d *Daemon) syncScreens(screens []hub.Screen) {
	seen := make(map[string]bool, len(screens))
	byName := make(map[string]hub.MonitorID)

	for i := 0; i < d.hub.MonitorCount()+len(screens); i++ {
		mid := hub.MonitorID(i)
		if !d.monitorValid(mid) {
			continue
		}
		byName[d.hub.GetMonitor(mid).Name] = mid
	}

	var firstNew hub.MonitorID
	haveFocusTarget := false
	for _, s := range screens {
		seen[s.Name] = true
		if mid, ok := byName[s.Name]; ok {
			d.hub.UpdateMonitorDimension(mid, s.Dimension)
			continue
		}
		mid := d.hub.AddMonitor(s.Name, s.Dimension)
		if !haveFocusTarget {
			firstNew = mid
			haveFocusTarget = true
		}
	}

	for name, mid := range byName {
		if seen[name] {
			continue
		}
		fallback := d.hub.FocusedMonitor()
		if fallback == mid {
			if haveFocusTarget {
				fallback = firstNew
			} else {
				continue // nothing left to fall back to; keep the monitor rather than orphan its workspaces
			}
		}
		d.hub.RemoveMonitor(mid, fallback)
	}
}

func (d *Daemon) monitorValid(id hub.MonitorID) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	d.hub.GetMonitor(id)
	return true
}

// resolveFocusSentinel replaces a FocusedWindow sentinel with the
// concrete WindowID currently focused on the current workspace. Focus
// resting on a container or a float isn't resolvable to a single
// window, so the action is left targeting the sentinel and
// handleCommand skips it instead of passing it to the Hub.
func (d *Daemon) resolveFocusSentinel(a hub.Action) hub.Action {
	if a.Kind != hub.ActionDeleteWindow || a.Window != FocusedWindow {
		return a
	}
	ws := d.hub.GetWorkspace(d.hub.CurrentWorkspace())
	if ws.Focused == nil {
		return a
	}
	switch ws.Focused.Kind {
	case hub.FocusTiling:
		if ws.Focused.Tiling.Kind == hub.ChildWindow {
			a.Window = ws.Focused.Tiling.Window
		}
	case hub.FocusFullscreen:
		a.Window = ws.Focused.Fullscreen
	}
	return a
}

// applyAction dispatches one action to the Hub. ActionToggleFloat is
// special-cased because it changes which arena (WindowID vs
// FloatWindowID) the entity lives in, and only the direct ToggleFloat
// return values carry enough information to re-key the registry.
func (d *Daemon) applyAction(a hub.Action) {
	if a.Kind != hub.ActionToggleFloat || !d.focusTogglesFloat() {
		d.hub.ApplyAction(a)
		return
	}
	oldWindow, newFloat, wasFloat := d.hub.ToggleFloat()
	if wasFloat {
		d.registry.ConvertToTiling(oldWindow, newFloat)
	} else {
		d.registry.ConvertToFloat(oldWindow, newFloat)
	}
}

// focusTogglesFloat reports whether the current focus is on a tiling
// window or a float, the only two cases ToggleFloat actually acts on.
// Checked up front so a no-op toggle (focus on a container, or no focus)
// can't be confused with a real toggle that happens to return a
// zero-valued WindowID or FloatWindowID.
func (d *Daemon) focusTogglesFloat() bool {
	ws := d.hub.GetWorkspace(d.hub.CurrentWorkspace())
	if ws.Focused == nil {
		return false
	}
	switch ws.Focused.Kind {
	case hub.FocusTiling:
		return ws.Focused.Tiling.Kind == hub.ChildWindow
	case hub.FocusFloat:
		return true
	default:
		return false
	}
}

func (d *Daemon) handleCommand(cmd command) {
	defer d.recoverPanic("command")

	switch cmd.kind {
	case cmdApply:
		for _, a := range cmd.actions {
			a = d.resolveFocusSentinel(a)
			if a.Kind == hub.ActionDeleteWindow && a.Window == FocusedWindow {
				continue
			}
			d.applyAction(a)
		}
		d.publishCurrent()
		cmd.reply <- commandReply{}
	case cmdReload:
		cfg, err := config.Load()
		if err != nil {
			cmd.reply <- commandReply{err: err}
			return
		}
		d.cfg = cfg
		d.hub.SyncConfig(cfg.Hub)
		d.publishCurrent()
		cmd.reply <- commandReply{}
	case cmdStatus:
		cmd.reply <- commandReply{status: ipc.StatusData{
			MonitorCount:   d.hub.MonitorCount(),
			WorkspaceCount: d.hub.WorkspaceCount(),
			FocusedMonitor: int(d.hub.FocusedMonitor()),
		}}
	case cmdSnapshot:
		cmd.reply <- commandReply{snapshot: d.currentSnapshot()}
	}
}

func (d *Daemon) currentSnapshot() hub.Snapshot {
	return d.hub.Snapshot(d.hub.CurrentWorkspace(), d.registry.TitleOf)
}

func (d *Daemon) publishCurrent() {
	d.publish(d.currentSnapshot())
}

func (d *Daemon) request(kind commandKind, actions []hub.Action) (commandReply, error) {
	reply := make(chan commandReply, 1)
	d.commands <- command{kind: kind, actions: actions, reply: reply}
	r := <-reply
	return r, r.err
}

// Apply implements ipc.Dispatcher.
func (d *Daemon) Apply(actions []hub.Action) error {
	_, err := d.request(cmdApply, actions)
	return err
}

// Reload implements ipc.Dispatcher.
func (d *Daemon) Reload() error {
	_, err := d.request(cmdReload, nil)
	return err
}

// Status implements ipc.Dispatcher.
func (d *Daemon) Status() ipc.StatusData {
	r, err := d.request(cmdStatus, nil)
	if err != nil {
		return ipc.StatusData{}
	}
	return r.status
}

// Snapshot implements ipc.Dispatcher.
func (d *Daemon) Snapshot() hub.Snapshot {
	r, err := d.request(cmdSnapshot, nil)
	if err != nil {
		return hub.Snapshot{}
	}
	return r.snapshot
}

var _ ipc.Dispatcher = (*Daemon)(nil)
