// Package keycode converts between this library's portable event.Key and
// the native keycodes each OS hands the capture engine: Windows virtual-key
// codes, macOS virtual keycodes, Linux X11 keysyms, and USB HID usages.
// Every table here is intentionally per-OS rather than one generic map,
// since the native numbering spaces do not coincide.
package keycode

import "github.com/inputkit/inputkit/event"

// FromWindowsVK converts a Win32 virtual-key code to a portable Key. ok is
// false when the code has no named Key; callers fall back to
// event.RawKey{Kind: event.RawWinVirtualKeycode}.
func FromWindowsVK(vk uint32) (event.Key, bool) {
	if k, ok := windowsAlnum(vk); ok {
		return k, true
	}
	k, ok := windowsVKToKey[vk]
	return k, ok
}

// ToWindowsVK is the inverse of FromWindowsVK, used by the synthesis
// engine to build a KEYBDINPUT.wVk. ok is false for keys with no Windows
// representation (e.g. KeyFunction, which Windows never reports).
func ToWindowsVK(k event.Key) (uint32, bool) {
	if vk, ok := windowsAlnumInverse(k); ok {
		return vk, true
	}
	vk, ok := keyToWindowsVK[k]
	return vk, ok
}

func windowsAlnum(vk uint32) (event.Key, bool) {
	switch {
	case vk >= '0' && vk <= '9':
		return event.Key0 + event.Key(vk-'0'), true
	case vk >= 'A' && vk <= 'Z':
		return event.KeyA + event.Key(vk-'A'), true
	default:
		return event.KeyUnknown, false
	}
}

func windowsAlnumInverse(k event.Key) (uint32, bool) {
	switch {
	case k >= event.Key0 && k <= event.Key9:
		return uint32('0' + (k - event.Key0)), true
	case k >= event.KeyA && k <= event.KeyZ:
		return uint32('A' + (k - event.KeyA)), true
	default:
		return 0, false
	}
}

// Win32 VK_* constants, duplicated from golang.org/x/sys/windows so this
// package has no cgo/syscall dependency of its own; values match the
// Platform SDK exactly.
const (
	vkBack       = 0x08
	vkTab        = 0x09
	vkReturn     = 0x0D
	vkShift      = 0x10
	vkControl    = 0x11
	vkMenu       = 0x12
	vkPause      = 0x13
	vkCapital    = 0x14
	vkKana       = 0x15
	vkHanja      = 0x19
	vkEscape     = 0x1B
	vkSpace      = 0x20
	vkPrior      = 0x21
	vkNext       = 0x22
	vkEnd        = 0x23
	vkHome       = 0x24
	vkLeft       = 0x25
	vkUp         = 0x26
	vkRight      = 0x27
	vkDown       = 0x28
	vkPrintScrn  = 0x2C
	vkInsert     = 0x2D
	vkDelete     = 0x2E
	vkLwin       = 0x5B
	vkRwin       = 0x5C
	vkNumpad0    = 0x60
	vkNumpad1    = 0x61
	vkNumpad2    = 0x62
	vkNumpad3    = 0x63
	vkNumpad4    = 0x64
	vkNumpad5    = 0x65
	vkNumpad6    = 0x66
	vkNumpad7    = 0x67
	vkNumpad8    = 0x68
	vkNumpad9    = 0x69
	vkMultiply   = 0x6A
	vkAdd        = 0x6B
	vkSeparator  = 0x6C
	vkSubtract   = 0x6D
	vkDecimal    = 0x6E
	vkDivide     = 0x6F
	vkF1         = 0x70
	vkF2         = 0x71
	vkF3         = 0x72
	vkF4         = 0x73
	vkF5         = 0x74
	vkF6         = 0x75
	vkF7         = 0x76
	vkF8         = 0x77
	vkF9         = 0x78
	vkF10        = 0x79
	vkF11        = 0x7A
	vkF12        = 0x7B
	vkF13        = 0x7C
	vkF14        = 0x7D
	vkF15        = 0x7E
	vkF16        = 0x7F
	vkF17        = 0x80
	vkF18        = 0x81
	vkF19        = 0x82
	vkF20        = 0x83
	vkNumlock    = 0x90
	vkScroll     = 0x91
	vkLshift     = 0xA0
	vkRshift     = 0xA1
	vkLcontrol   = 0xA2
	vkRcontrol   = 0xA3
	vkLmenu      = 0xA4
	vkRmenu      = 0xA5
	vkVolumeMute = 0xAD
	vkVolumeDown = 0xAE
	vkVolumeUp   = 0xAF
	vkMediaNext  = 0xB0
	vkMediaPrev  = 0xB1
	vkMediaPlay  = 0xB3
	vkOem1       = 0xBA
	vkOemPlus    = 0xBB
	vkOemComma   = 0xBC
	vkOemMinus   = 0xBD
	vkOemPeriod  = 0xBE
	vkOem2       = 0xBF
	vkOem3       = 0xC0
	vkOem4       = 0xDB
	vkOem5       = 0xDC
	vkOem6       = 0xDD
	vkOem7       = 0xDE
	vkOem102     = 0xE2
	vkKanji      = 0x19 // shares VK_HANJA with IME mode toggling on JIS layouts
)

var windowsVKToKey = map[uint32]event.Key{
	vkBack:       event.KeyBackspace,
	vkTab:        event.KeyTab,
	vkReturn:     event.KeyReturn,
	vkShift:      event.KeyShiftLeft,
	vkControl:    event.KeyControlLeft,
	vkMenu:       event.KeyAlt,
	vkPause:      event.KeyPause,
	vkCapital:    event.KeyCapsLock,
	vkKana:       event.KeyKanaMode,
	vkHanja:      event.KeyHanja,
	vkEscape:     event.KeyEscape,
	vkSpace:      event.KeySpace,
	vkPrior:      event.KeyPageUp,
	vkNext:       event.KeyPageDown,
	vkEnd:        event.KeyEnd,
	vkHome:       event.KeyHome,
	vkLeft:       event.KeyLeftArrow,
	vkUp:         event.KeyUpArrow,
	vkRight:      event.KeyRightArrow,
	vkDown:       event.KeyDownArrow,
	vkPrintScrn:  event.KeyPrintScreen,
	vkInsert:     event.KeyInsert,
	vkDelete:     event.KeyDelete,
	vkLwin:       event.KeyMetaLeft,
	vkRwin:       event.KeyMetaRight,
	vkNumpad0:    event.KeyKp0,
	vkNumpad1:    event.KeyKp1,
	vkNumpad2:    event.KeyKp2,
	vkNumpad3:    event.KeyKp3,
	vkNumpad4:    event.KeyKp4,
	vkNumpad5:    event.KeyKp5,
	vkNumpad6:    event.KeyKp6,
	vkNumpad7:    event.KeyKp7,
	vkNumpad8:    event.KeyKp8,
	vkNumpad9:    event.KeyKp9,
	vkMultiply:   event.KeyKpMultiply,
	vkAdd:        event.KeyKpPlus,
	vkSubtract:   event.KeyKpMinus,
	vkDecimal:    event.KeyKpDelete,
	vkDivide:     event.KeyKpDivide,
	vkF1:         event.KeyF1,
	vkF2:         event.KeyF2,
	vkF3:         event.KeyF3,
	vkF4:         event.KeyF4,
	vkF5:         event.KeyF5,
	vkF6:         event.KeyF6,
	vkF7:         event.KeyF7,
	vkF8:         event.KeyF8,
	vkF9:         event.KeyF9,
	vkF10:        event.KeyF10,
	vkF11:        event.KeyF11,
	vkF12:        event.KeyF12,
	vkF13:        event.KeyF13,
	vkF14:        event.KeyF14,
	vkF15:        event.KeyF15,
	vkF16:        event.KeyF16,
	vkF17:        event.KeyF17,
	vkF18:        event.KeyF18,
	vkF19:        event.KeyF19,
	vkF20:        event.KeyF20,
	vkNumlock:    event.KeyNumLock,
	vkScroll:     event.KeyScrollLock,
	vkLshift:     event.KeyShiftLeft,
	vkRshift:     event.KeyShiftRight,
	vkLcontrol:   event.KeyControlLeft,
	vkRcontrol:   event.KeyControlRight,
	vkLmenu:      event.KeyAlt,
	vkRmenu:      event.KeyAltGr,
	vkVolumeMute: event.KeyVolumeMute,
	vkVolumeDown: event.KeyVolumeDown,
	vkVolumeUp:   event.KeyVolumeUp,
	vkMediaNext:  event.KeyMediaNextTrack,
	vkMediaPrev:  event.KeyMediaPrevTrack,
	vkMediaPlay:  event.KeyMediaPlayPause,
	vkOem1:       event.KeySemiColon,
	vkOemPlus:    event.KeyEqual,
	vkOemComma:   event.KeyComma,
	vkOemMinus:   event.KeyMinus,
	vkOemPeriod:  event.KeyDot,
	vkOem2:       event.KeySlash,
	vkOem3:       event.KeyBackQuote,
	vkOem4:       event.KeyLeftBracket,
	vkOem5:       event.KeyBackSlash,
	vkOem6:       event.KeyRightBracket,
	vkOem7:       event.KeyQuote,
	vkOem102:     event.KeyIntlBackslash,
}

// keyToWindowsVK is the reverse map, built once at init. Where two VKs map
// to the same Key (e.g. vkShift/vkLshift both -> KeyShiftLeft) the more
// specific left/right VK wins so synthesized events use distinct-side
// codes, matching what Windows itself emits from physical keyboards.
var keyToWindowsVK = buildWindowsInverse()

func buildWindowsInverse() map[event.Key]uint32 {
	m := make(map[event.Key]uint32, len(windowsVKToKey))
	generic := map[uint32]event.Key{
		vkShift:   event.KeyShiftLeft,
		vkControl: event.KeyControlLeft,
	}
	_ = generic
	for vk, k := range windowsVKToKey {
		if _, exists := m[k]; exists {
			// Prefer the left/right-specific code already present.
			if vk == vkShift || vk == vkControl {
				continue
			}
		}
		m[k] = vk
	}
	// Force the unambiguous, most common side for keys with duplicate VKs.
	m[event.KeyShiftLeft] = vkLshift
	m[event.KeyShiftRight] = vkRshift
	m[event.KeyControlLeft] = vkLcontrol
	m[event.KeyControlRight] = vkRcontrol
	m[event.KeyAlt] = vkLmenu
	m[event.KeyAltGr] = vkRmenu
	m[event.KeyKanji] = vkKanji
	return m
}
