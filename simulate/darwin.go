//go:build darwin

package simulate

import (
	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/cocoa"
	"github.com/inputkit/inputkit/internal/modstate"
	"github.com/inputkit/inputkit/kbstate"
	"github.com/inputkit/inputkit/keycode"
)

// CGEventFlags masks this file strips from function/navigation keys on
// release, avoiding the sticky-Fn bug spec.md §4.E describes: macOS
// occasionally latches SecondaryFn/NumericPad/Help on a synthesized
// key-up for these keycodes unless the mask is cleared explicitly.
const (
	flagMaskHelp        = 0x400000
	flagMaskSecondaryFn = 0x800000
	flagMaskNumericPad  = 0x200000
)

// stickyFnKeys are the keys whose release has the masks above cleared:
// F1-F19, the arrows, Home, End, PageUp, PageDown and forward Delete.
// Numpad clear, Help, brightness, Spotlight and Launchpad are not in the
// set, so their release is posted with the flags unchanged.
var stickyFnKeys = map[event.Key]bool{
	event.KeyF1: true, event.KeyF2: true, event.KeyF3: true, event.KeyF4: true,
	event.KeyF5: true, event.KeyF6: true, event.KeyF7: true, event.KeyF8: true,
	event.KeyF9: true, event.KeyF10: true, event.KeyF11: true, event.KeyF12: true,
	event.KeyF13: true, event.KeyF14: true, event.KeyF15: true, event.KeyF16: true,
	event.KeyF17: true, event.KeyF18: true, event.KeyF19: true,
	event.KeyLeftArrow: true, event.KeyRightArrow: true,
	event.KeyUpArrow: true, event.KeyDownArrow: true,
	event.KeyHome: true, event.KeyEnd: true, event.KeyPageUp: true, event.KeyPageDown: true,
	event.KeyDelete: true,
}

// VirtualInput binds repeat synthesis to a single pre-built CGEventSource,
// avoiding the cost of recreating a source for every call when a caller
// synthesizes many events in a row. It has no tap-location setting:
// events are always posted at the session event tap.
type VirtualInput struct {
	source *cocoa.EventSource
}

// NewVirtualInput creates a VirtualInput bound to a fresh HID event
// source.
func NewVirtualInput() *VirtualInput {
	return &VirtualInput{source: cocoa.NewHIDEventSource()}
}

// Close releases the underlying CGEventSourceRef.
func (v *VirtualInput) Close() {
	v.source.Release()
}

// Simulate posts ev using v's bound source.
func (v *VirtualInput) Simulate(t *event.EventType) error {
	return simulateWith(v.source, t)
}

var defaultSource = cocoa.NewHIDEventSource()

// Simulate posts a synthesized event into the macOS input queue via
// CGEventPost, using a package-level default event source (spec.md
// §4.E, §6).
func Simulate(t *event.EventType) error {
	if err := validate(t); err != nil {
		return err
	}
	return simulateWith(defaultSource, t)
}

func simulateWith(src *cocoa.EventSource, t *event.EventType) error {
	switch t.Kind {
	case event.KeyPress, event.KeyRelease:
		return simulateKey(src, t)
	case event.ButtonPress, event.ButtonRelease:
		return simulateButton(src, t)
	case event.MouseMove:
		return simulateMove(src, t)
	case event.Wheel:
		return simulateWheel(src, t)
	}
	return &Error{Reason: "unsupported event kind"}
}

func simulateKey(src *cocoa.EventSource, t *event.EventType) error {
	vk, ok := vkForKey(t.Key, t.Raw)
	if !ok {
		return &Error{Reason: "key has no macOS virtual-keycode representation"}
	}
	down := t.Kind == event.KeyPress
	flags := modstate.Load()
	if !down && stickyFnKeys[t.Key] {
		flags &^= flagMaskSecondaryFn | flagMaskNumericPad | flagMaskHelp
	}
	cocoa.PostKeyEvent(src, uint16(vk), down, flags, currentKeyboardExtraInfo())
	return nil
}

func vkForKey(k event.Key, raw event.RawKey) (uint32, bool) {
	if k == event.KeyRaw && raw.Kind == event.RawMacVirtualKeycode {
		return raw.Code, true
	}
	return keycode.ToDarwinVK(k, kbstate.IsISOLayout())
}

func simulateButton(src *cocoa.EventSource, t *event.EventType) error {
	down := t.Kind == event.ButtonPress
	x, y := cocoa.CurrentMouseLocation()

	var cgType uint32
	var button uint32
	switch t.Button {
	case event.Left:
		button = 0
		if down {
			cgType = cocoa.CGEventLeftMouseDown
		} else {
			cgType = cocoa.CGEventLeftMouseUp
		}
	case event.Right:
		button = 1
		if down {
			cgType = cocoa.CGEventRightMouseDown
		} else {
			cgType = cocoa.CGEventRightMouseUp
		}
	case event.Middle:
		button = 2
		if down {
			cgType = cocoa.CGEventOtherMouseDown
		} else {
			cgType = cocoa.CGEventOtherMouseUp
		}
	default:
		return &Error{Reason: "unknown mouse button"}
	}
	cocoa.PostMouseEvent(src, cgType, x, y, button, currentMouseExtraInfo())
	return nil
}

func simulateMove(src *cocoa.EventSource, t *event.EventType) error {
	cocoa.PostMouseEvent(src, cocoa.CGEventMouseMoved, t.X, t.Y, 0, currentMouseExtraInfo())
	return nil
}

func simulateWheel(src *cocoa.EventSource, t *event.EventType) error {
	cocoa.PostScrollEvent(src, int32(t.DX), int32(t.DY), currentMouseExtraInfo())
	return nil
}

// DisplaySize returns the main display's pixel dimensions.
func DisplaySize() (uint64, uint64, error) {
	w, h := cocoa.DisplaySize()
	if w == 0 || h == 0 {
		return 0, 0, &Error{Reason: "CGDisplayPixelsWide/High returned 0"}
	}
	return w, h, nil
}
