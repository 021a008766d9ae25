package daemon

import (
	"log/slog"

	"github.com/1broseidon/dome/internal/hub"
)

// WindowRegistry tracks the correspondence between the OS adapter's
// opaque process/window keys and the Hub's own WindowID space. The Hub
// has no notion of OS window identity (spec's core is pure and
// key-agnostic), so the daemon is the layer that remembers which
// WindowID a given ProcessKey's terminal currently occupies.
//
// This repo's adapter treats one process as owning exactly one
// terminal window, so ProcessKey and WindowKey are drawn from the same
// underlying string namespace: looking a window up by either yields
// the same registry entry.
type WindowRegistry struct {
	hub       *hub.Hub
	byKey     map[string]hub.WindowID
	titles    map[hub.WindowID]string
	floatKeys map[hub.FloatWindowID]string
	logger    *slog.Logger
}

// NewWindowRegistry creates a registry bound to h.
func NewWindowRegistry(h *hub.Hub, logger *slog.Logger) *WindowRegistry {
	return &WindowRegistry{
		hub:       h,
		byKey:     make(map[string]hub.WindowID),
		titles:    make(map[hub.WindowID]string),
		floatKeys: make(map[hub.FloatWindowID]string),
		logger:    logger,
	}
}

// Sync ensures a tiling window exists for key, inserting one on first
// sight. Returns the WindowID either way.
func (r *WindowRegistry) Sync(key string) hub.WindowID {
	if id, ok := r.byKey[key]; ok {
		return id
	}
	id := r.hub.InsertTiling()
	r.byKey[key] = id
	r.logger.Debug("window synced", "key", key, "window_id", id)
	return id
}

// Terminated removes key's window from the Hub and forgets its
// mapping, called when the adapter reports the owning process gone.
func (r *WindowRegistry) Terminated(key string) {
	id, ok := r.byKey[key]
	if !ok {
		for fid, k := range r.floatKeys {
			if k == key {
				delete(r.floatKeys, fid)
				r.hub.DeleteFloat(fid)
				r.logger.Debug("float window terminated", "key", key, "float_id", fid)
				return
			}
		}
		return
	}
	r.hub.DeleteWindow(id)
	delete(r.byKey, key)
	delete(r.titles, id)
	r.logger.Debug("window terminated", "key", key, "window_id", id)
}

// SetTitle records key's current title for later tab-bar snapshots.
func (r *WindowRegistry) SetTitle(key, title string) {
	id, ok := r.byKey[key]
	if !ok {
		return
	}
	r.titles[id] = title
}

// TitleOf satisfies hub.Snapshot's titleOf callback.
func (r *WindowRegistry) TitleOf(id hub.WindowID) string {
	return r.titles[id]
}

// WindowForKey looks up the WindowID currently bound to key, if any.
func (r *WindowRegistry) WindowForKey(key string) (hub.WindowID, bool) {
	id, ok := r.byKey[key]
	return id, ok
}

// KeyForWindow reverse-looks-up the OS key bound to id, for a renderer
// that needs to turn a Snapshot's WindowID back into something it can
// move and resize.
func (r *WindowRegistry) KeyForWindow(id hub.WindowID) (string, bool) {
	for k, v := range r.byKey {
		if v == id {
			return k, true
		}
	}
	return "", false
}

// LiveKeys returns every key the registry currently tracks, for the
// reconciler to diff against the adapter's actual window list.
func (r *WindowRegistry) LiveKeys() []string {
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	return keys
}

// ConvertToFloat re-keys a window that ToggleFloat just turned into a
// float: the OS key stays the same, but it now resolves through
// KeyForFloat instead of KeyForWindow since the entity moved to the
// FloatWindowID arena.
func (r *WindowRegistry) ConvertToFloat(oldWindow hub.WindowID, newFloat hub.FloatWindowID) {
	key, ok := r.KeyForWindow(oldWindow)
	if !ok {
		return
	}
	delete(r.byKey, key)
	delete(r.titles, oldWindow)
	r.floatKeys[newFloat] = key
}

// ConvertToTiling is ConvertToFloat's inverse, called when ToggleFloat
// turns a float window back into a tiling one.
func (r *WindowRegistry) ConvertToTiling(newWindow hub.WindowID, oldFloat hub.FloatWindowID) {
	key, ok := r.floatKeys[oldFloat]
	if !ok {
		return
	}
	delete(r.floatKeys, oldFloat)
	r.byKey[key] = newWindow
}

// KeyForFloat reverse-looks-up the OS key bound to a float window, for
// the renderer to resolve float placements back to real windows.
func (r *WindowRegistry) KeyForFloat(id hub.FloatWindowID) (string, bool) {
	key, ok := r.floatKeys[id]
	return key, ok
}
