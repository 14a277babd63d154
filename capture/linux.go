//go:build linux

package capture

import (
	"time"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/x11"
	"github.com/inputkit/inputkit/kbstate"
	"github.com/inputkit/inputkit/keycode"
)

// linuxSession owns the XRecord context for one Linux capture session.
// X11 core-protocol events carry no injected-event flag the way Windows
// and macOS do, so is_synthetic is always reported false here -- the
// X11 backend is explicitly the out-of-primary-scope one (spec.md §1).
type linuxSession struct {
	session *Session
	opts    Options
	x       *x11.Session
	shadow  kbstate.ShadowModifiers
}

// Listen starts a passive capture session.
func Listen(cb Callback, opts Options) (*Session, error) {
	return startLinuxSession(ModeListen, cb, opts)
}

// Grab starts an intercepting capture session. XRecord has no native
// suppression primitive (unlike WH_KEYBOARD_LL/CGEventTap), so a grab
// callback's suppression request is honored on a best-effort basis: the
// event has already reached other clients by the time this backend sees
// it. Callers needing guaranteed suppression on Linux should prefer a
// compositor-level or XGrabKeyboard-based approach outside this library.
func Grab(cb Callback, opts Options) (*Session, error) {
	return startLinuxSession(ModeGrab, cb, opts)
}

func startLinuxSession(mode Mode, cb Callback, opts Options) (*Session, error) {
	sess, errKind := Begin(mode, false)
	switch errKind {
	case ErrAlreadyListening:
		return nil, &HookInstallError{Stage: "already_listening"}
	case ErrAlreadyGrabbing:
		return nil, &HookInstallError{Stage: "already_grabbing"}
	}
	if sess.callback != nil {
		return sess, nil
	}
	sess.SetCallback(cb, nil)

	ls := &linuxSession{session: sess, opts: opts}
	ready := make(chan error, 1)
	stopped := make(chan struct{})
	go ls.run(ready, stopped)

	if err := <-ready; err != nil {
		sess.Stop()
		return nil, err
	}
	sess.stopFn = func() {
		ls.x.Stop()
		<-stopped
	}
	return sess, nil
}

func (ls *linuxSession) run(ready chan<- error, stopped chan<- struct{}) {
	defer close(stopped)

	x, err := x11.Open(ls.opts.KeyboardOnly, ls.handle)
	if err != nil {
		ready <- &HookInstallError{Stage: "x11_open"}
		return
	}
	ls.x = x
	close(ready)

	x.Run()
	x.Close()
}

func (ls *linuxSession) handle(kind x11.EventKind, rawKeycode uint, rootX, rootY int, button int) {
	now := time.Now()
	switch kind {
	case x11.KeyPress, x11.KeyRelease:
		down := kind == x11.KeyPress
		sym, _ := ls.x.KeysymForKeycode(rawKeycode)
		key, named := keycode.FromX11Keysym(uint32(sym))

		rawKind := event.KeyReleaseRaw
		if down {
			rawKind = event.KeyPressRaw
		}
		var t event.EventType
		if named {
			t = event.EventType{Kind: rawKind, Key: key}
		} else {
			t = event.EventType{Kind: rawKind, Key: event.KeyRaw, Raw: event.RawKey{Kind: event.RawLinuxKeycode, Code: uint32(rawKeycode)}}
		}
		if named {
			ls.shadow.Add(rawKind, key)
		}
		base := event.Event{Time: now, PlatformCode: uint32(sym), PositionCode: uint32(rawKeycode), Modifiers: ls.shadow.Modifiers()}
		raw := base
		raw.Type = t
		ls.session.Dispatch(raw)

		cookedKind := event.KeyRelease
		if down {
			cookedKind = event.KeyPress
		}
		cooked := base
		cooked.Type = t
		cooked.Type.Kind = cookedKind
		ls.session.Dispatch(cooked)
	case x11.ButtonPress, x11.ButtonRelease:
		down := kind == x11.ButtonPress
		switch button {
		case 4, 5:
			dy := 1.0
			if button == 5 {
				dy = -1.0
			}
			if down {
				ls.session.Dispatch(event.Event{Time: now, Modifiers: ls.shadow.Modifiers(), Type: event.NewWheelRaw(0, dy)})
				ls.session.Dispatch(event.Event{Time: now, Modifiers: ls.shadow.Modifiers(), Type: event.NewWheel(0, dy)})
			}
			return
		}
		btn := buttonForX11(button)
		raw := event.Event{Time: now, Modifiers: ls.shadow.Modifiers()}
		if down {
			raw.Type = event.NewButtonPressRaw(btn)
		} else {
			raw.Type = event.NewButtonReleaseRaw(btn)
		}
		ls.session.Dispatch(raw)
		cooked := event.Event{Time: now, Modifiers: ls.shadow.Modifiers()}
		if down {
			cooked.Type = event.NewButtonPress(btn)
		} else {
			cooked.Type = event.NewButtonRelease(btn)
		}
		ls.session.Dispatch(cooked)
	case x11.MotionNotify:
		ls.session.Dispatch(event.Event{Time: now, Modifiers: ls.shadow.Modifiers(), Type: event.NewMouseMove(float64(rootX), float64(rootY))})
	}
}

func buttonForX11(b int) event.Button {
	switch b {
	case 1:
		return event.Left
	case 2:
		return event.Middle
	case 3:
		return event.Right
	default:
		return event.Unknown(uint8(b))
	}
}
