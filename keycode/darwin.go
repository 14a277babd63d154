package keycode

import "github.com/inputkit/inputkit/event"

// macOS virtual keycodes, as defined by Carbon's HIToolbox/Events.h
// (kVK_*). CGEventTapCreate delivers these via kCGKeyboardEventKeycode
// regardless of the active keyboard layout; UCKeyTranslate in kbstate
// is what turns them into layout-aware Unicode.
const (
	kVKANSIA            = 0x00
	kVKANSIS            = 0x01
	kVKANSID            = 0x02
	kVKANSIF            = 0x03
	kVKANSIH            = 0x04
	kVKANSIG            = 0x05
	kVKANSIZ            = 0x06
	kVKANSIX            = 0x07
	kVKANSIC            = 0x08
	kVKANSIV            = 0x09
	kVKANSIB            = 0x0B
	kVKANSIQ            = 0x0C
	kVKANSIW            = 0x0D
	kVKANSIE            = 0x0E
	kVKANSIR            = 0x0F
	kVKANSIY            = 0x10
	kVKANSIT            = 0x11
	kVKANSI1            = 0x12
	kVKANSI2            = 0x13
	kVKANSI3            = 0x14
	kVKANSI4            = 0x15
	kVKANSI6            = 0x16
	kVKANSI5            = 0x17
	kVKANSIEqual        = 0x18
	kVKANSI9            = 0x19
	kVKANSI7            = 0x1A
	kVKANSIMinus        = 0x1B
	kVKANSI8            = 0x1C
	kVKANSI0            = 0x1D
	kVKANSIRightBracket = 0x1E
	kVKANSIO            = 0x1F
	kVKANSIU            = 0x20
	kVKANSILeftBracket  = 0x21
	kVKANSII            = 0x22
	kVKANSIP            = 0x23
	kVKReturn           = 0x24
	kVKANSIL            = 0x25
	kVKANSIJ            = 0x26
	kVKANSIQuote        = 0x27
	kVKANSIK            = 0x28
	kVKANSISemicolon    = 0x29
	kVKANSIBackslash    = 0x2A
	kVKANSIComma        = 0x2B
	kVKANSISlash        = 0x2C
	kVKANSIN            = 0x2D
	kVKANSIM            = 0x2E
	kVKANSIPeriod       = 0x2F
	kVKTab              = 0x30
	kVKSpace            = 0x31
	kVKANSIGrave        = 0x32
	kVKDelete           = 0x33
	kVKEscape           = 0x35
	kVKRightCommand     = 0x36
	kVKCommand          = 0x37
	kVKShift            = 0x38
	kVKCapsLock         = 0x39
	kVKOption           = 0x3A
	kVKControl          = 0x3B
	kVKRightShift       = 0x3C
	kVKRightOption      = 0x3D
	kVKRightControl     = 0x3E
	kVKFunction         = 0x3F
	kVKF17              = 0x40
	kVKANSIKeypadDecimal = 0x41
	kVKANSIKeypadMultiply = 0x43
	kVKANSIKeypadPlus   = 0x45
	kVKANSIKeypadClear  = 0x47
	kVKVolumeUp         = 0x48
	kVKVolumeDown       = 0x49
	kVKMute             = 0x4A
	kVKANSIKeypadDivide = 0x4B
	kVKANSIKeypadEnter  = 0x4C
	kVKANSIKeypadMinus  = 0x4E
	kVKF18              = 0x4F
	kVKF19              = 0x50
	kVKANSIKeypadEquals = 0x51
	kVKANSIKeypad0      = 0x52
	kVKANSIKeypad1      = 0x53
	kVKANSIKeypad2      = 0x54
	kVKANSIKeypad3      = 0x55
	kVKANSIKeypad4      = 0x56
	kVKANSIKeypad5      = 0x57
	kVKANSIKeypad6      = 0x58
	kVKANSIKeypad7      = 0x59
	kVKF20              = 0x5A
	kVKANSIKeypad8      = 0x5B
	kVKANSIKeypad9      = 0x5C
	kVKJISYen           = 0x5D
	kVKJISUnderscore    = 0x5E
	kVKJISKeypadComma   = 0x5F
	kVKF5               = 0x60
	kVKF6               = 0x61
	kVKF7               = 0x62
	kVKF3               = 0x63
	kVKF8               = 0x64
	kVKF9               = 0x65
	kVKJISEisu          = 0x66
	kVKF11              = 0x67
	kVKJISKana          = 0x68
	kVKF13              = 0x69
	kVKF16              = 0x6A
	kVKF14              = 0x6B
	kVKF10              = 0x6D
	kVKF12              = 0x6F
	kVKF15              = 0x71
	kVKHelp             = 0x72
	kVKHome             = 0x73
	kVKPageUp           = 0x74
	kVKForwardDelete    = 0x75
	kVKF4               = 0x76
	kVKEnd              = 0x77
	kVKF2               = 0x78
	kVKPageDown         = 0x79
	kVKF1               = 0x7A
	kVKLeftArrow        = 0x7B
	kVKRightArrow       = 0x7C
	kVKDownArrow        = 0x7D
	kVKUpArrow          = 0x7E
)

// darwinKeyToKey is the switch-shaped (here map-shaped) table translating
// virtual keycodes to portable Keys.
var darwinKeyToKey = map[uint32]event.Key{
	kVKANSIA: event.KeyA, kVKANSIB: event.KeyB, kVKANSIC: event.KeyC, kVKANSID: event.KeyD,
	kVKANSIE: event.KeyE, kVKANSIF: event.KeyF, kVKANSIG: event.KeyG, kVKANSIH: event.KeyH,
	kVKANSII: event.KeyI, kVKANSIJ: event.KeyJ, kVKANSIK: event.KeyK, kVKANSIL: event.KeyL,
	kVKANSIM: event.KeyM, kVKANSIN: event.KeyN, kVKANSIO: event.KeyO, kVKANSIP: event.KeyP,
	kVKANSIQ: event.KeyQ, kVKANSIR: event.KeyR, kVKANSIS: event.KeyS, kVKANSIT: event.KeyT,
	kVKANSIU: event.KeyU, kVKANSIV: event.KeyV, kVKANSIW: event.KeyW, kVKANSIX: event.KeyX,
	kVKANSIY: event.KeyY, kVKANSIZ: event.KeyZ,
	kVKANSI0: event.Key0, kVKANSI1: event.Key1, kVKANSI2: event.Key2, kVKANSI3: event.Key3,
	kVKANSI4: event.Key4, kVKANSI5: event.Key5, kVKANSI6: event.Key6, kVKANSI7: event.Key7,
	kVKANSI8: event.Key8, kVKANSI9: event.Key9,
	kVKReturn: event.KeyReturn, kVKTab: event.KeyTab, kVKSpace: event.KeySpace,
	kVKDelete: event.KeyBackspace, kVKForwardDelete: event.KeyDelete, kVKEscape: event.KeyEscape,
	kVKCommand: event.KeyMetaLeft, kVKRightCommand: event.KeyMetaRight,
	kVKShift: event.KeyShiftLeft, kVKRightShift: event.KeyShiftRight,
	kVKOption: event.KeyAlt, kVKRightOption: event.KeyAltGr,
	kVKControl: event.KeyControlLeft, kVKRightControl: event.KeyControlRight,
	kVKCapsLock: event.KeyCapsLock, kVKFunction: event.KeyFunction,
	kVKHome: event.KeyHome, kVKEnd: event.KeyEnd,
	kVKPageUp: event.KeyPageUp, kVKPageDown: event.KeyPageDown,
	kVKLeftArrow: event.KeyLeftArrow, kVKRightArrow: event.KeyRightArrow,
	kVKUpArrow: event.KeyUpArrow, kVKDownArrow: event.KeyDownArrow,
	kVKF1: event.KeyF1, kVKF2: event.KeyF2, kVKF3: event.KeyF3, kVKF4: event.KeyF4,
	kVKF5: event.KeyF5, kVKF6: event.KeyF6, kVKF7: event.KeyF7, kVKF8: event.KeyF8,
	kVKF9: event.KeyF9, kVKF10: event.KeyF10, kVKF11: event.KeyF11, kVKF12: event.KeyF12,
	kVKF13: event.KeyF13, kVKF14: event.KeyF14, kVKF15: event.KeyF15, kVKF16: event.KeyF16,
	kVKF17: event.KeyF17, kVKF18: event.KeyF18, kVKF19: event.KeyF19,
	kVKANSIGrave: event.KeyBackQuote, kVKANSIMinus: event.KeyMinus, kVKANSIEqual: event.KeyEqual,
	kVKANSILeftBracket: event.KeyLeftBracket, kVKANSIRightBracket: event.KeyRightBracket,
	kVKANSIBackslash: event.KeyBackSlash, kVKANSISemicolon: event.KeySemiColon,
	kVKANSIQuote: event.KeyQuote, kVKANSIComma: event.KeyComma, kVKANSIPeriod: event.KeyDot,
	kVKANSISlash: event.KeySlash,
	kVKANSIKeypad0: event.KeyKp0, kVKANSIKeypad1: event.KeyKp1, kVKANSIKeypad2: event.KeyKp2,
	kVKANSIKeypad3: event.KeyKp3, kVKANSIKeypad4: event.KeyKp4, kVKANSIKeypad5: event.KeyKp5,
	kVKANSIKeypad6: event.KeyKp6, kVKANSIKeypad7: event.KeyKp7, kVKANSIKeypad8: event.KeyKp8,
	kVKANSIKeypad9: event.KeyKp9,
	kVKANSIKeypadDecimal: event.KeyKpDelete, kVKANSIKeypadMultiply: event.KeyKpMultiply,
	kVKANSIKeypadPlus: event.KeyKpPlus, kVKANSIKeypadMinus: event.KeyKpMinus,
	kVKANSIKeypadDivide: event.KeyKpDivide, kVKANSIKeypadEnter: event.KeyKpReturn,
	kVKANSIKeypadEquals: event.KeyKpEqual,
	kVKVolumeUp:  event.KeyVolumeUp,
	kVKVolumeDown: event.KeyVolumeDown,
	kVKMute:       event.KeyVolumeMute,
	kVKJISKana:    event.KeyKanaMode,
	kVKJISEisu:    event.KeyHangul,
}

var keyToDarwinVK = buildDarwinInverse()

func buildDarwinInverse() map[event.Key]uint32 {
	m := make(map[event.Key]uint32, len(darwinKeyToKey))
	for vk, k := range darwinKeyToKey {
		if _, exists := m[k]; exists {
			continue
		}
		m[k] = vk
	}
	return m
}

// FromDarwinVK converts a macOS virtual keycode into a portable Key.
// kVK_ISO_Section (keycode 0x0A) is reported differently depending on the
// active keyboard's physical layout, which the caller in kbstate knows:
// on an ISO keyboard it is the extra key next to left Shift and reads as
// BackQuote; on an ANSI keyboard it passes through unchanged as
// IntlBackslash.
func FromDarwinVK(vk uint32, isISOLayout bool) (event.Key, bool) {
	const isoSection = 0x0A
	if vk == isoSection {
		if isISOLayout {
			return event.KeyBackQuote, true
		}
		return event.KeyIntlBackslash, true
	}
	k, ok := darwinKeyToKey[vk]
	return k, ok
}

// ToDarwinVK is the inverse of FromDarwinVK for synthesis.
func ToDarwinVK(k event.Key, isISOLayout bool) (uint32, bool) {
	const isoSection = 0x0A
	switch {
	case k == event.KeyBackQuote && isISOLayout:
		return isoSection, true
	case k == event.KeyIntlBackslash && !isISOLayout:
		return isoSection, true
	}
	vk, ok := keyToDarwinVK[k]
	return vk, ok
}
