// Package hotkeys binds global X11 key chords to hub.Action values and
// forwards them to the daemon, built on xgbutil's keybind/xevent
// plumbing.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/dome/internal/hub"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// ActionSink is the daemon-side surface hotkeys dispatches onto; the
// daemon's own Apply method satisfies this.
type ActionSink interface {
	Apply(actions []hub.Action) error
}

// x11Accessor is an optional interface for adapters that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler manages global keyboard shortcuts, translating each
// registered chord into a hub.Action sent to sink.
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	sink   ActionSink
	logger *slog.Logger
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler bound to backend's X11
// connection and sink, which receives every chord's resolved action.
func NewHandler(backend x11Accessor, sink ActionSink, logger *slog.Logger) *Handler {
	xu := backend.XUtil()
	root := backend.RootWindow()

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{xu: xu, root: root, sink: sink, logger: logger}
}

// RegisterKeymap registers every chord -> action name pair in keymap,
// parsing each action name via ParseAction. A chord naming an unknown
// action is skipped with a logged warning rather than failing the
// whole registration pass.
func (h *Handler) RegisterKeymap(keymap map[string]string) error {
	for chord, actionName := range keymap {
		action, err := ParseAction(actionName)
		if err != nil {
			h.logger.Warn("skipping keymap entry", "chord", chord, "error", err)
			continue
		}
		if err := h.register(chord, action); err != nil {
			return fmt.Errorf("register chord %q: %w", chord, err)
		}
	}
	return nil
}

func (h *Handler) register(keySequence string, action hub.Action) error {
	return h.registerFunc(keySequence, func() {
		if err := h.sink.Apply([]hub.Action{action}); err != nil {
			h.logger.Error("apply hotkey action", "chord", keySequence, "error", err)
		}
	})
}

// registerFunc registers an arbitrary callback against a key chord.
func (h *Handler) registerFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
