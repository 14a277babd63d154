package event

import "fmt"

// Key is the closed enum over every symbolic key this library names.
// Names outside the enum escape through RawKey.
type Key int

const (
	KeyUnknown Key = iota

	// Alphanumerics.
	KeyKp0
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Modifiers.
	KeyAlt
	KeyAltGr
	KeyBackspace
	KeyCapsLock
	KeyControlLeft
	KeyControlRight
	KeyMetaLeft
	KeyMetaRight
	KeyShiftLeft
	KeyShiftRight

	// Whitespace / editing.
	KeyDelete
	KeyEnd
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyHome
	KeyLeftArrow
	KeyPageDown
	KeyPageUp
	KeyReturn
	KeyRightArrow
	KeySpace
	KeyTab
	KeyUpArrow
	KeyDownArrow
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyNumLock
	KeyBackQuote
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackSlash
	KeySemiColon
	KeyQuote
	KeyComma
	KeyDot
	KeySlash
	KeyIntlBackslash
	KeyInsert
	KeyFunction

	// Numpad.
	KeyKpReturn
	KeyKpMinus
	KeyKpPlus
	KeyKpMultiply
	KeyKpDivide
	KeyKpDelete
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpEqual
	KeyKpComma

	// Media / IME.
	KeyVolumeUp
	KeyVolumeDown
	KeyVolumeMute
	KeyMediaPlayPause
	KeyMediaNextTrack
	KeyMediaPrevTrack
	KeyKanaMode
	KeyHangul
	KeyHanja
	KeyKanji

	// RawKey is the escape hatch for codes outside the enum. RawKind
	// selects which field of the platform union is meaningful.
	KeyRaw
)

// RawKind selects which platform-specific code a RawKey value carries.
type RawKind int

const (
	RawNone RawKind = iota
	RawMacVirtualKeycode
	RawScanCode
	RawLinuxKeycode
	RawWinVirtualKeycode
)

// RawKey is the payload for Key == KeyRaw: a platform-native code that
// has no name in the Key enum.
type RawKey struct {
	Kind RawKind
	Code uint32
}

func (r RawKey) String() string {
	switch r.Kind {
	case RawMacVirtualKeycode:
		return fmt.Sprintf("MacVirtualKeycode(%d)", r.Code)
	case RawScanCode:
		return fmt.Sprintf("ScanCode(%d)", r.Code)
	case RawLinuxKeycode:
		return fmt.Sprintf("LinuxKeycode(%d)", r.Code)
	case RawWinVirtualKeycode:
		return fmt.Sprintf("WinVirtualKeycode(%d)", r.Code)
	default:
		return "RawKey(none)"
	}
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

var keyNames = map[Key]string{
	KeyUnknown: "Unknown", KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD",
	KeyE: "KeyE", KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI",
	KeyJ: "KeyJ", KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN",
	KeyO: "KeyO", KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS",
	KeyT: "KeyT", KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX",
	KeyY: "KeyY", KeyZ: "KeyZ",
	Key0: "Key0", Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4",
	Key5: "Key5", Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9",
	KeyEscape: "Escape", KeyReturn: "Return", KeyTab: "Tab", KeySpace: "Space",
	KeyBackspace: "Backspace", KeyDelete: "Delete",
	KeyLeftArrow: "LeftArrow", KeyRightArrow: "RightArrow",
	KeyUpArrow: "UpArrow", KeyDownArrow: "DownArrow",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyShiftLeft: "ShiftLeft", KeyShiftRight: "ShiftRight",
	KeyControlLeft: "ControlLeft", KeyControlRight: "ControlRight",
	KeyAlt: "Alt", KeyAltGr: "AltGr", KeyMetaLeft: "MetaLeft", KeyMetaRight: "MetaRight",
	KeyCapsLock: "CapsLock",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",
	KeyF16: "F16", KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
	KeyBackQuote: "BackQuote", KeyIntlBackslash: "IntlBackslash",
	KeyMinus: "Minus", KeyEqual: "Equal", KeyLeftBracket: "LeftBracket",
	KeyRightBracket: "RightBracket", KeyBackSlash: "BackSlash",
	KeySemiColon: "SemiColon", KeyQuote: "Quote", KeyComma: "Comma",
	KeyDot: "Dot", KeySlash: "Slash",
	KeyInsert: "Insert", KeyPrintScreen: "PrintScreen", KeyScrollLock: "ScrollLock",
	KeyPause: "Pause", KeyNumLock: "NumLock", KeyFunction: "Function",
	KeyKpReturn: "KpReturn", KeyKpMinus: "KpMinus", KeyKpPlus: "KpPlus",
	KeyKpMultiply: "KpMultiply", KeyKpDivide: "KpDivide", KeyKpDelete: "KpDelete",
	KeyKp0: "Kp0", KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4",
	KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9",
	KeyKpEqual: "KpEqual", KeyKpComma: "KpComma",
	KeyVolumeUp: "VolumeUp", KeyVolumeDown: "VolumeDown", KeyVolumeMute: "VolumeMute",
	KeyMediaPlayPause: "MediaPlayPause", KeyMediaNextTrack: "MediaNextTrack",
	KeyMediaPrevTrack: "MediaPrevTrack",
	KeyKanaMode:       "KanaMode", KeyHangul: "Hangul", KeyHanja: "Hanja", KeyKanji: "Kanji",
	KeyRaw: "Raw",
}
