//go:build windows

package kbstate

import (
	"sync/atomic"
	"unicode/utf16"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/winapi"
)

// WindowsTranslator wraps GetKeyboardState + ToUnicodeEx. Unlike the
// macOS path, Windows exposes a stateless, thread-safe translation call —
// no main-thread dispatch is needed — but ToUnicodeEx still mutates a
// per-thread dead-key buffer behind the scenes, so a CapsLock/dead-key
// toggle made by one call is visible to the next.
type WindowsTranslator struct {
	// eventPopup mirrors the original's Keyboard::set_event_popup: when
	// set, Translate passes ToUnicodeExDontChangeState so translating a
	// keystroke for on-screen feedback doesn't consume a dead key the
	// real keystroke still needs.
	eventPopup atomic.Bool
}

// NewWindowsTranslator returns a translator; Windows keeps no state of
// its own beyond what the OS already tracks per thread.
func NewWindowsTranslator() *WindowsTranslator {
	return &WindowsTranslator{}
}

// SetEventPopup toggles the dead-key-preserving translation mode.
func (t *WindowsTranslator) SetEventPopup(on bool) {
	t.eventPopup.Store(on)
}

// Translate converts a virtual-key/scancode pair into the Unicode text
// the active keyboard layout produces, honoring whatever modifier keys
// GetKeyboardState currently reports as down.
func (t *WindowsTranslator) Translate(vk uint32, scanCode uint32) *event.UnicodeText {
	var keyState [256]byte
	if err := winapi.GetKeyboardState(&keyState); err != nil {
		return nil
	}

	var flags uint32
	if t.eventPopup.Load() {
		flags = winapi.ToUnicodeExDontChangeState
	}

	layout := winapi.GetKeyboardLayout(0)
	var buf [8]uint16
	n, isDead := winapi.ToUnicodeEx(vk, scanCode, &keyState, buf[:], layout, flags)
	if isDead {
		return &event.UnicodeText{IsDead: true}
	}
	if n <= 0 {
		return nil
	}
	units := buf[:n]
	return &event.UnicodeText{
		Name:       string(utf16.Decode(units)),
		Codepoints: append([]uint16(nil), units...),
	}
}
