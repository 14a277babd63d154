// Package inputkit is a cross-platform library for low-level input
// capture and synthesis. It observes every keyboard and pointing-device
// event the host OS delivers, enriches it with a portable semantic
// identity, and can inject events indistinguishable from hardware input.
//
// Three backends back this single API: Windows (Win32 low-level hooks
// plus Raw Input), macOS (a CoreGraphics event tap), and a thin X11-based
// Linux backend. See capture/ for the per-OS engines and simulate/ for
// the per-OS synthesis engines; this file is only the facade spec.md §6
// names.
package inputkit

import (
	"sync"
	"sync/atomic"

	"github.com/inputkit/inputkit/capture"
	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/simulate"
)

var (
	cfgOnce sync.Once
	cfg     Config

	eventPopup    atomic.Bool
	getKeyUnicode atomic.Bool

	facadeMu     sync.Mutex
	activeSess   *capture.Session
	activeMode   capture.Mode
)

func loadConfigOnce() Config {
	cfgOnce.Do(func() {
		c, err := LoadConfig()
		if err != nil {
			logf("inputkit: %v; falling back to defaults", err)
			c = DefaultConfig()
		}
		cfg = c
		eventPopup.Store(cfg.EventPopup)
		getKeyUnicode.Store(cfg.GetKeyUnicode)
	})
	return cfg
}

func currentOptions() capture.Options {
	c := loadConfigOnce()
	return capture.Options{
		KeyboardOnly:  c.KeyboardOnly,
		GetKeyUnicode: getKeyUnicode.Load(),
		EventPopup:    eventPopup.Load(),
	}
}

// Listen starts a passive capture session and returns once the OS hook
// or tap is installed; it does not block until ExitListen is called. cb
// is invoked for every observed event; it cannot suppress anything. At
// most one listen session and one grab session may be active at a time.
func Listen(cb func(event.Event)) error {
	sess, err := capture.Listen(func(e event.Event) *event.Event {
		cb(e)
		return &e
	}, currentOptions())
	if err != nil {
		return classifyListenError(err)
	}
	setActive(sess, capture.ModeListen)
	return nil
}

// ListenRaw is Listen filtered down to only the pre-acceleration *Raw
// event variants — a convenience promoted from the original rdev
// implementation's raw_events.rs example for callers who only want
// device deltas, not OS-cooked absolute/accelerated values.
func ListenRaw(cb func(event.Event)) error {
	return Listen(func(e event.Event) {
		if e.Type.Kind.IsRaw() {
			cb(e)
		}
	})
}

// Grab starts an intercepting capture session and returns once the OS
// hook or tap is installed; it does not block until ExitGrab is called.
// A nil return from cb suppresses the originating native event.
func Grab(cb func(event.Event) *event.Event) error {
	sess, err := capture.Grab(cb, currentOptions())
	if err != nil {
		return classifyGrabError(err)
	}
	setActive(sess, capture.ModeGrab)
	return nil
}

func setActive(sess *capture.Session, mode capture.Mode) {
	facadeMu.Lock()
	activeSess = sess
	activeMode = mode
	facadeMu.Unlock()
}

// ExitListen tears down the active listen session's hook/tap and message
// loop. It waits until the session's thread has stopped, so it must not
// be called from inside the capture callback.
func ExitListen() error {
	return exitSession(capture.ModeListen)
}

// ExitGrab tears down the active grab session's hook/tap and message
// loop. It waits until the session's thread has stopped, so it must not
// be called from inside the capture callback.
func ExitGrab() error {
	return exitSession(capture.ModeGrab)
}

func exitSession(mode capture.Mode) error {
	facadeMu.Lock()
	sess := activeSess
	sessMode := activeMode
	facadeMu.Unlock()
	if sess == nil || sessMode != mode {
		return nil
	}
	sess.Stop()
	facadeMu.Lock()
	if activeSess == sess {
		activeSess = nil
	}
	facadeMu.Unlock()
	return nil
}

// Simulate posts a synthesized event into the OS input queue. Raw-variant
// events are never representable and always return a *SimulateError.
func Simulate(t *event.EventType) error {
	if err := simulate.Simulate(t); err != nil {
		return &SimulateError{Reason: err.Error()}
	}
	return nil
}

// DisplaySize returns the pixel dimensions of the primary display.
func DisplaySize() (uint64, uint64, error) {
	w, h, err := simulate.DisplaySize()
	if err != nil {
		return 0, 0, &DisplayError{Reason: err.Error()}
	}
	return w, h, nil
}

// SetEventPopup toggles the Windows translation mode in which ToUnicodeEx
// is called with its don't-change-state flag, leaving a pending dead key
// in place. It takes effect at the next Listen or Grab. A no-op on
// non-Windows platforms.
func SetEventPopup(on bool) {
	loadConfigOnce()
	eventPopup.Store(on)
}

// SetGetKeyUnicode toggles dead-key-aware Unicode translation of key
// events.
func SetGetKeyUnicode(on bool) {
	loadConfigOnce()
	getKeyUnicode.Store(on)
}

// SetMouseExtraInfo sets the marker word stamped onto every mouse event
// Simulate posts, letting a cooperating capturer classify it synthetic.
func SetMouseExtraInfo(v int64) { simulate.SetMouseExtraInfo(v) }

// SetKeyboardExtraInfo sets the marker word stamped onto every keyboard
// event Simulate posts.
func SetKeyboardExtraInfo(v int64) { simulate.SetKeyboardExtraInfo(v) }

func classifyListenError(err error) error {
	if hie, ok := err.(*capture.HookInstallError); ok {
		switch hie.Stage {
		case "already_listening":
			return ErrAlreadyListening
		case "already_grabbing":
			return &ListenError{Kind: ListenAlreadyListening}
		case "accessibility", "event_tap":
			return &ListenError{Kind: ListenEventTapError}
		case "input_monitoring":
			return &ListenError{Kind: ListenEventTapError}
		case "run_loop_source":
			return &ListenError{Kind: ListenLoopSourceError}
		case "keyboard_hook":
			return &ListenError{Kind: ListenKeyHookError, Code: hie.Code}
		case "mouse_hook":
			return &ListenError{Kind: ListenMouseHookError, Code: hie.Code}
		case "x11_open":
			return &ListenError{Kind: ListenEventTapError}
		}
	}
	return &ListenError{Kind: ListenEventTapError}
}

func classifyGrabError(err error) error {
	if hie, ok := err.(*capture.HookInstallError); ok {
		switch hie.Stage {
		case "already_grabbing":
			return ErrAlreadyGrabbing
		case "already_listening":
			return &GrabError{Kind: GrabAlreadyGrabbing}
		case "accessibility", "event_tap":
			return &GrabError{Kind: GrabEventTapError}
		case "input_monitoring":
			return &GrabError{Kind: GrabEventTapError}
		case "run_loop_source":
			return &GrabError{Kind: GrabLoopSourceError}
		case "keyboard_hook":
			return &GrabError{Kind: GrabKeyHookError, Code: hie.Code}
		case "mouse_hook":
			return &GrabError{Kind: GrabMouseHookError, Code: hie.Code}
		case "x11_open":
			return &GrabError{Kind: GrabEventTapError}
		}
	}
	return &GrabError{Kind: GrabEventTapError}
}
