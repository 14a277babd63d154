//go:build windows

package winapi

import "unsafe"

var (
	procSendInput    = user32.NewProc("SendInput")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

// INPUT flag/type constants (winuser.h), only the subset this library's
// synthesis engine needs.
const (
	InputMouse    = 0
	InputKeyboard = 1

	KeyEventFKeyUp    = 0x0002
	KeyEventFExtendedKey = 0x0001

	MouseEventFMove       = 0x0001
	MouseEventFAbsolute   = 0x8000
	MouseEventFLeftDown   = 0x0002
	MouseEventFLeftUp     = 0x0004
	MouseEventFRightDown  = 0x0008
	MouseEventFRightUp    = 0x0010
	MouseEventFMiddleDown = 0x0020
	MouseEventFMiddleUp   = 0x0040
	MouseEventFWheel      = 0x0800
	MouseEventFHWheel     = 0x01000
)

// KEYBDINPUT mirrors the Win32 structure of the same name.
type KEYBDINPUT struct {
	WVk         uint16
	WScan       uint16
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// MOUSEINPUT mirrors the Win32 structure of the same name.
type MOUSEINPUT struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// mouseKeybdInputUnion is sized to the larger of MOUSEINPUT/KEYBDINPUT
// (both well under the full Win32 INPUT union, which also covers
// HARDWAREINPUT; this library never synthesizes hardware-input records).
type mouseKeybdInputUnion [unsafe.Sizeof(MOUSEINPUT{}) / unsafe.Sizeof(uintptr(0))]uintptr

// INPUT mirrors the Win32 INPUT structure, laid out so Go's compiler
// reproduces the same field offsets the Win32 ABI expects: a leading
// DWORD type tag followed by the union, padded by the runtime's own
// struct alignment the same way the C union is padded.
type INPUT struct {
	Type  uint32
	Union mouseKeybdInputUnion
}

func keybdInput(k KEYBDINPUT) INPUT {
	var in INPUT
	in.Type = InputKeyboard
	*(*KEYBDINPUT)(unsafe.Pointer(&in.Union[0])) = k
	return in
}

func mouseInput(m MOUSEINPUT) INPUT {
	var in INPUT
	in.Type = InputMouse
	*(*MOUSEINPUT)(unsafe.Pointer(&in.Union[0])) = m
	return in
}

// SendKeyboardInput synthesizes one keyboard event via SendInput.
func SendKeyboardInput(vk, scan uint16, flags uint32, extraInfo uintptr) error {
	in := keybdInput(KEYBDINPUT{WVk: vk, WScan: scan, DwFlags: flags, DwExtraInfo: extraInfo})
	return sendInputs(in)
}

// SendMouseInput synthesizes one mouse event via SendInput.
func SendMouseInput(dx, dy int32, mouseData uint32, flags uint32, extraInfo uintptr) error {
	in := mouseInput(MOUSEINPUT{Dx: dx, Dy: dy, MouseData: mouseData, DwFlags: flags, DwExtraInfo: extraInfo})
	return sendInputs(in)
}

func sendInputs(inputs ...INPUT) error {
	ret, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if ret != uintptr(len(inputs)) {
		return err
	}
	return nil
}

// GetCursorPos returns the current screen position of the mouse cursor,
// used by the synthesis engine to post button events at the pointer's
// current location (spec.md §4.E "read the current cursor position").
func GetCursorPos() (x, y int32, err error) {
	var pt POINT
	ret, _, e := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, 0, e
	}
	return pt.X, pt.Y, nil
}
