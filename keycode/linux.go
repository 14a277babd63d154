package keycode

import "github.com/inputkit/inputkit/event"

// X11 keysyms (X11/keysymdef.h), used by the thin XRecord-based Linux
// capture backend. Unlike Windows/macOS, X11 keycodes are keymap-dependent
// hardware scancodes; capture resolves a keycode to a keysym via
// XkbKeycodeToKeysym before consulting this table, so FromX11Keysym only
// ever sees the layout-independent keysym space.
const (
	xkBackSpace = 0xff08
	xkTab       = 0xff09
	xkReturn    = 0xff0d
	xkEscape    = 0xff1b
	xkDelete    = 0xffff
	xkHome      = 0xff50
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
	xkPageUp    = 0xff55
	xkPageDown  = 0xff56
	xkEnd       = 0xff57
	xkInsert    = 0xff63
	xkNumLock   = 0xff7f
	xkKpEnter   = 0xff8d
	xkKp0       = 0xffb0
	xkKp1       = 0xffb1
	xkKp2       = 0xffb2
	xkKp3       = 0xffb3
	xkKp4       = 0xffb4
	xkKp5       = 0xffb5
	xkKp6       = 0xffb6
	xkKp7       = 0xffb7
	xkKp8       = 0xffb8
	xkKp9       = 0xffb9
	xkKpDecimal = 0xffae
	xkKpDivide  = 0xffaf
	xkKpMultiply = 0xffaa
	xkKpSubtract = 0xffad
	xkKpAdd     = 0xffab
	xkKpEqual   = 0xffbd
	xkF1        = 0xffbe
	xkF2        = 0xffbf
	xkF3        = 0xffc0
	xkF4        = 0xffc1
	xkF5        = 0xffc2
	xkF6        = 0xffc3
	xkF7        = 0xffc4
	xkF8        = 0xffc5
	xkF9        = 0xffc6
	xkF10       = 0xffc7
	xkF11       = 0xffc8
	xkF12       = 0xffc9
	xkF13       = 0xffca
	xkF14       = 0xffcb
	xkF15       = 0xffcc
	xkF16       = 0xffcd
	xkF17       = 0xffce
	xkF18       = 0xffcf
	xkF19       = 0xffd0
	xkShiftL    = 0xffe1
	xkShiftR    = 0xffe2
	xkControlL  = 0xffe3
	xkControlR  = 0xffe4
	xkCapsLock  = 0xffe5
	xkSuperL    = 0xffeb
	xkSuperR    = 0xffec
	xkAltL      = 0xffe9
	xkAltR      = 0xffea
	xkISOLevel3Shift = 0xfe03 // AltGr on most Linux layouts
	xkScrollLock = 0xff14
	xkPause     = 0xff13
	xkSpace     = 0x0020
	xkGrave     = 0x0060
	xkMinus     = 0x002d
	xkEqual     = 0x003d
	xkBracketL  = 0x005b
	xkBracketR  = 0x005d
	xkBackslash = 0x005c
	xkSemicolon = 0x003b
	xkApostrophe = 0x0027
	xkComma     = 0x002c
	xkPeriod    = 0x002e
	xkSlash     = 0x002f
	xkVolumeUp  = 0x1008ff13
	xkVolumeDown = 0x1008ff11
	xkVolumeMute = 0x1008ff12
)

var linuxKeysymToKey = map[uint32]event.Key{
	xkBackSpace: event.KeyBackspace, xkTab: event.KeyTab, xkReturn: event.KeyReturn,
	xkEscape: event.KeyEscape, xkDelete: event.KeyDelete, xkHome: event.KeyHome,
	xkLeft: event.KeyLeftArrow, xkUp: event.KeyUpArrow, xkRight: event.KeyRightArrow,
	xkDown: event.KeyDownArrow, xkPageUp: event.KeyPageUp, xkPageDown: event.KeyPageDown,
	xkEnd: event.KeyEnd, xkInsert: event.KeyInsert, xkNumLock: event.KeyNumLock,
	xkKpEnter: event.KeyKpReturn,
	xkKp0: event.KeyKp0, xkKp1: event.KeyKp1, xkKp2: event.KeyKp2, xkKp3: event.KeyKp3,
	xkKp4: event.KeyKp4, xkKp5: event.KeyKp5, xkKp6: event.KeyKp6, xkKp7: event.KeyKp7,
	xkKp8: event.KeyKp8, xkKp9: event.KeyKp9,
	xkKpDecimal: event.KeyKpDelete, xkKpDivide: event.KeyKpDivide,
	xkKpMultiply: event.KeyKpMultiply, xkKpSubtract: event.KeyKpMinus,
	xkKpAdd: event.KeyKpPlus, xkKpEqual: event.KeyKpEqual,
	xkF1: event.KeyF1, xkF2: event.KeyF2, xkF3: event.KeyF3, xkF4: event.KeyF4,
	xkF5: event.KeyF5, xkF6: event.KeyF6, xkF7: event.KeyF7, xkF8: event.KeyF8,
	xkF9: event.KeyF9, xkF10: event.KeyF10, xkF11: event.KeyF11, xkF12: event.KeyF12,
	xkF13: event.KeyF13, xkF14: event.KeyF14, xkF15: event.KeyF15, xkF16: event.KeyF16,
	xkF17: event.KeyF17, xkF18: event.KeyF18, xkF19: event.KeyF19,
	xkShiftL: event.KeyShiftLeft, xkShiftR: event.KeyShiftRight,
	xkControlL: event.KeyControlLeft, xkControlR: event.KeyControlRight,
	xkCapsLock: event.KeyCapsLock, xkSuperL: event.KeyMetaLeft, xkSuperR: event.KeyMetaRight,
	xkAltL: event.KeyAlt, xkAltR: event.KeyAltGr, xkISOLevel3Shift: event.KeyAltGr,
	xkScrollLock: event.KeyScrollLock, xkPause: event.KeyPause, xkSpace: event.KeySpace,
	xkGrave: event.KeyBackQuote, xkMinus: event.KeyMinus, xkEqual: event.KeyEqual,
	xkBracketL: event.KeyLeftBracket, xkBracketR: event.KeyRightBracket,
	xkBackslash: event.KeyBackSlash, xkSemicolon: event.KeySemiColon,
	xkApostrophe: event.KeyQuote, xkComma: event.KeyComma, xkPeriod: event.KeyDot,
	xkSlash: event.KeySlash,
	xkVolumeUp: event.KeyVolumeUp, xkVolumeDown: event.KeyVolumeDown, xkVolumeMute: event.KeyVolumeMute,
}

var keyToLinuxKeysym = buildLinuxInverse()

func buildLinuxInverse() map[event.Key]uint32 {
	m := make(map[event.Key]uint32, len(linuxKeysymToKey))
	for sym, k := range linuxKeysymToKey {
		if _, exists := m[k]; exists {
			continue
		}
		m[k] = sym
	}
	return m
}

// FromX11Keysym converts an X11 keysym to a portable Key.
func FromX11Keysym(sym uint32) (event.Key, bool) {
	if sym >= 'a' && sym <= 'z' {
		return event.KeyA + event.Key(sym-'a'), true
	}
	if sym >= 'A' && sym <= 'Z' {
		return event.KeyA + event.Key(sym-'A'), true
	}
	if sym >= '0' && sym <= '9' {
		return event.Key0 + event.Key(sym-'0'), true
	}
	k, ok := linuxKeysymToKey[sym]
	return k, ok
}

// ToX11Keysym is the inverse of FromX11Keysym, used by XTestFakeKeyEvent
// synthesis which needs a keysym to resolve (via XKeysymToKeycode) before
// it can fake a key event.
func ToX11Keysym(k event.Key) (uint32, bool) {
	switch {
	case k >= event.KeyA && k <= event.KeyZ:
		return uint32('a' + (k - event.KeyA)), true
	case k >= event.Key0 && k <= event.Key9:
		return uint32('0' + (k - event.Key0)), true
	}
	sym, ok := keyToLinuxKeysym[k]
	return sym, ok
}
