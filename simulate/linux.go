//go:build linux

package simulate

import (
	"sync"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/x11"
	"github.com/inputkit/inputkit/keycode"
)

var (
	defaultSessionOnce sync.Once
	defaultSession     *x11.Session
	defaultSessionErr  error
)

func sharedSession() (*x11.Session, error) {
	defaultSessionOnce.Do(func() {
		defaultSession, defaultSessionErr = x11.Open(false, func(x11.EventKind, uint, int, int, int) {})
	})
	return defaultSession, defaultSessionErr
}

// Simulate posts a synthesized event into the X11 input queue via
// XTestFake*Event (spec.md §4.E, §6). This is the out-of-primary-scope
// Linux backend (spec.md §1).
func Simulate(t *event.EventType) error {
	if err := validate(t); err != nil {
		return err
	}
	sess, err := sharedSession()
	if err != nil {
		return &Error{Reason: err.Error()}
	}
	switch t.Kind {
	case event.KeyPress, event.KeyRelease:
		return simulateKey(sess, t)
	case event.ButtonPress, event.ButtonRelease:
		return simulateButton(sess, t)
	case event.MouseMove:
		x11.FakeMotion(sess, int(t.X), int(t.Y))
		return nil
	case event.Wheel:
		x11.FakeWheel(sess, int(t.DY))
		return nil
	}
	return &Error{Reason: "unsupported event kind"}
}

func simulateKey(sess *x11.Session, t *event.EventType) error {
	sym, ok := symForKey(t.Key, t.Raw)
	if !ok {
		return &Error{Reason: "key has no X11 keysym representation"}
	}
	kc := x11.KeycodeForKeysym(sess, int(sym))
	if kc == 0 {
		return &Error{Reason: "keysym has no mapped keycode on this layout"}
	}
	x11.FakeKey(sess, kc, t.Kind == event.KeyPress)
	return nil
}

func symForKey(k event.Key, raw event.RawKey) (uint32, bool) {
	if k == event.KeyRaw && raw.Kind == event.RawLinuxKeycode {
		return raw.Code, true
	}
	return keycode.ToX11Keysym(k)
}

func simulateButton(sess *x11.Session, t *event.EventType) error {
	var button uint
	switch t.Button {
	case event.Left:
		button = 1
	case event.Middle:
		button = 2
	case event.Right:
		button = 3
	default:
		return &Error{Reason: "unknown mouse button"}
	}
	x11.FakeButton(sess, button, t.Kind == event.ButtonPress)
	return nil
}

// DisplaySize returns the default screen's pixel dimensions.
func DisplaySize() (uint64, uint64, error) {
	sess, err := sharedSession()
	if err != nil {
		return 0, 0, &Error{Reason: err.Error()}
	}
	w, h := x11.DisplaySize(sess)
	return w, h, nil
}
