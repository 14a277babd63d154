//go:build windows

package simulate

import (
	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/winapi"
	"github.com/inputkit/inputkit/keycode"
)

// Simulate posts a synthesized event into the Windows input queue via
// SendInput (spec.md §4.E, §6 "OS primitives consumed").
func Simulate(t *event.EventType) error {
	if err := validate(t); err != nil {
		return err
	}
	switch t.Kind {
	case event.KeyPress, event.KeyRelease:
		return simulateKey(t)
	case event.ButtonPress, event.ButtonRelease:
		return simulateButton(t)
	case event.MouseMove:
		return simulateMove(t)
	case event.Wheel:
		return simulateWheel(t)
	}
	return &Error{Reason: "unsupported event kind"}
}

func simulateKey(t *event.EventType) error {
	vk, ok := vkForKey(t.Key, t.Raw)
	if !ok {
		return &Error{Reason: "key has no Windows virtual-key representation"}
	}
	var flags uint32
	if t.Kind == event.KeyRelease {
		flags |= winapi.KeyEventFKeyUp
	}
	if err := winapi.SendKeyboardInput(uint16(vk), 0, flags, uintptr(currentKeyboardExtraInfo())); err != nil {
		return &Error{Reason: err.Error()}
	}
	return nil
}

func vkForKey(k event.Key, raw event.RawKey) (uint32, bool) {
	if k == event.KeyRaw && raw.Kind == event.RawWinVirtualKeycode {
		return raw.Code, true
	}
	return keycode.ToWindowsVK(k)
}

func simulateButton(t *event.EventType) error {
	down := t.Kind == event.ButtonPress
	var flag uint32
	switch t.Button {
	case event.Left:
		if down {
			flag = winapi.MouseEventFLeftDown
		} else {
			flag = winapi.MouseEventFLeftUp
		}
	case event.Right:
		if down {
			flag = winapi.MouseEventFRightDown
		} else {
			flag = winapi.MouseEventFRightUp
		}
	case event.Middle:
		if down {
			flag = winapi.MouseEventFMiddleDown
		} else {
			flag = winapi.MouseEventFMiddleUp
		}
	default:
		return &Error{Reason: "unknown mouse button"}
	}
	// Reading the current cursor position first and posting with no
	// MOVE flag keeps the button event at wherever the cursor already
	// is, matching spec.md §4.E ("read the current cursor position
	// from the OS, synthesize a button-down/up at that point").
	if _, _, err := winapi.GetCursorPos(); err != nil {
		return &Error{Reason: err.Error()}
	}
	if err := winapi.SendMouseInput(0, 0, 0, flag, uintptr(currentMouseExtraInfo())); err != nil {
		return &Error{Reason: err.Error()}
	}
	return nil
}

func simulateMove(t *event.EventType) error {
	width, height, ok := winapi.PrimaryDisplaySize()
	if !ok || width == 0 || height == 0 {
		return &Error{Reason: "could not read primary display size"}
	}
	nx := int32(t.X * 65535 / float64(width-1))
	ny := int32(t.Y * 65535 / float64(height-1))
	flags := uint32(winapi.MouseEventFMove | winapi.MouseEventFAbsolute)
	if err := winapi.SendMouseInput(nx, ny, 0, flags, uintptr(currentMouseExtraInfo())); err != nil {
		return &Error{Reason: err.Error()}
	}
	return nil
}

func simulateWheel(t *event.EventType) error {
	if t.DY != 0 {
		data := int32(t.DY * 120)
		if err := winapi.SendMouseInput(0, 0, uint32(data), winapi.MouseEventFWheel, uintptr(currentMouseExtraInfo())); err != nil {
			return &Error{Reason: err.Error()}
		}
	}
	if t.DX != 0 {
		data := int32(t.DX * 120)
		if err := winapi.SendMouseInput(0, 0, uint32(data), winapi.MouseEventFHWheel, uintptr(currentMouseExtraInfo())); err != nil {
			return &Error{Reason: err.Error()}
		}
	}
	return nil
}

// DisplaySize returns the primary display's pixel dimensions.
func DisplaySize() (uint64, uint64, error) {
	w, h, ok := winapi.PrimaryDisplaySize()
	if !ok {
		return 0, 0, &Error{Reason: "GetSystemMetrics returned 0"}
	}
	return w, h, nil
}
