package keycode

// USBHIDFromPositionCode derives the USB HID Usage Page 0x07 (Keyboard)
// usage from a Windows set-1 scancode (event.Event.PositionCode). Only
// the common keyboard region is covered; ok is false for scancodes this
// library does not recognize, in which case USBHID stays 0 (spec.md §3:
// "when derivable from position_code").
//
// extended reports whether the scancode carries the E0 prefix (arrow
// keys, right-side modifiers, numpad-enter); callers read it off the
// low-level hook's lParam flags and pass it in rather than having this
// function re-derive it from bit patterns that vary by hook type.
func USBHIDFromPositionCode(scanCode uint32, extended bool) (usage uint32, ok bool) {
	if extended {
		if u, ok := extendedScanToHID[scanCode]; ok {
			return u, true
		}
		return 0, false
	}
	u, ok := scanToHID[scanCode]
	return u, ok
}

// scanToHID covers the non-extended (no E0 prefix) set-1 scancode range.
var scanToHID = map[uint32]uint32{
	0x01: 0x29, // Escape
	0x02: 0x1E, // 1
	0x03: 0x1F, // 2
	0x04: 0x20, // 3
	0x05: 0x21, // 4
	0x06: 0x22, // 5
	0x07: 0x23, // 6
	0x08: 0x24, // 7
	0x09: 0x25, // 8
	0x0A: 0x26, // 9
	0x0B: 0x27, // 0
	0x0C: 0x2D, // -
	0x0D: 0x2E, // =
	0x0E: 0x2A, // Backspace
	0x0F: 0x2B, // Tab
	0x10: 0x14, // Q
	0x11: 0x1A, // W
	0x12: 0x08, // E
	0x13: 0x15, // R
	0x14: 0x17, // T
	0x15: 0x1C, // Y
	0x16: 0x18, // U
	0x17: 0x0C, // I
	0x18: 0x12, // O
	0x19: 0x13, // P
	0x1A: 0x2F, // [
	0x1B: 0x30, // ]
	0x1C: 0x28, // Enter
	0x1D: 0xE0, // Left Ctrl
	0x1E: 0x04, // A
	0x1F: 0x16, // S
	0x20: 0x07, // D
	0x21: 0x09, // F
	0x22: 0x0A, // G
	0x23: 0x0B, // H
	0x24: 0x0D, // J
	0x25: 0x0E, // K
	0x26: 0x0F, // L
	0x27: 0x33, // ;
	0x28: 0x34, // '
	0x29: 0x35, // `
	0x2A: 0xE1, // Left Shift
	0x2B: 0x31, // backslash
	0x2C: 0x1D, // Z
	0x2D: 0x1B, // X
	0x2E: 0x06, // C
	0x2F: 0x19, // V
	0x30: 0x05, // B
	0x31: 0x11, // N
	0x32: 0x10, // M
	0x33: 0x36, // ,
	0x34: 0x37, // .
	0x35: 0x38, // /
	0x36: 0xE5, // Right Shift
	0x37: 0x55, // Keypad *
	0x38: 0xE2, // Left Alt
	0x39: 0x2C, // Space
	0x3A: 0x39, // CapsLock
	0x3B: 0x3A, // F1
	0x3C: 0x3B, // F2
	0x3D: 0x3C, // F3
	0x3E: 0x3D, // F4
	0x3F: 0x3E, // F5
	0x40: 0x3F, // F6
	0x41: 0x40, // F7
	0x42: 0x41, // F8
	0x43: 0x42, // F9
	0x44: 0x43, // F10
	0x45: 0x53, // NumLock
	0x46: 0x47, // ScrollLock
	0x47: 0x5F, // Keypad 7
	0x48: 0x60, // Keypad 8
	0x49: 0x61, // Keypad 9
	0x4A: 0x56, // Keypad -
	0x4B: 0x5C, // Keypad 4
	0x4C: 0x5D, // Keypad 5
	0x4D: 0x5E, // Keypad 6
	0x4E: 0x57, // Keypad +
	0x4F: 0x59, // Keypad 1
	0x50: 0x5A, // Keypad 2
	0x51: 0x5B, // Keypad 3
	0x52: 0x62, // Keypad 0
	0x53: 0x63, // Keypad .
	0x57: 0x44, // F11
	0x58: 0x45, // F12
}

// extendedScanToHID covers the E0-prefixed scancodes: navigation cluster,
// right-side modifiers, numpad enter/divide.
var extendedScanToHID = map[uint32]uint32{
	0x1C: 0x58, // Keypad Enter
	0x1D: 0xE4, // Right Ctrl
	0x35: 0x54, // Keypad /
	0x38: 0xE6, // Right Alt
	0x47: 0x4A, // Home
	0x48: 0x52, // Up
	0x49: 0x4B, // PageUp
	0x4B: 0x50, // Left
	0x4D: 0x4F, // Right
	0x4F: 0x4D, // End
	0x50: 0x51, // Down
	0x51: 0x4E, // PageDown
	0x52: 0x49, // Insert
	0x53: 0x4C, // Delete
	0x5B: 0xE3, // Left GUI
	0x5C: 0xE7, // Right GUI
}
