//go:build windows

package winapi

import (
	"syscall"
)

// Hook type identifiers for SetWindowsHookEx.
const (
	WHKeyboardLL = 13
	WHMouseLL    = 14
)

// Hook-chain result for HC_ACTION.
const HCAction = 0

// KBDLLHOOKSTRUCT is the payload lParam points to for WH_KEYBOARD_LL.
type KBDLLHOOKSTRUCT struct {
	VKCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// Flag bits within KBDLLHOOKSTRUCT.Flags.
const (
	LLKHFExtended = 0x01
	LLKHFInjected = 0x10
	LLKHFUp       = 0x80
)

// POINT mirrors the Win32 POINT structure.
type POINT struct {
	X, Y int32
}

// MSLLHOOKSTRUCT is the payload lParam points to for WH_MOUSE_LL.
type MSLLHOOKSTRUCT struct {
	Pt          POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// Flag bits within MSLLHOOKSTRUCT.Flags.
const LLMHFInjected = 0x01

// WM_* message identifiers this library's hooks and window procedure
// switch on.
const (
	WMKeyDown    = 0x0100
	WMKeyUp      = 0x0101
	WMSysKeyDown = 0x0104
	WMSysKeyUp   = 0x0105

	WMMouseMove   = 0x0200
	WMLButtonDown = 0x0201
	WMLButtonUp   = 0x0202
	WMRButtonDown = 0x0204
	WMRButtonUp   = 0x0205
	WMMButtonDown = 0x0207
	WMMButtonUp   = 0x0208
	WMMouseWheel  = 0x020A

	WMInput = 0x00FF
	WMQuit  = 0x0012
	WMUser  = 0x0400
)

// MouseWheelDelta is the WHEEL_DELTA constant: one notch of a standard
// mouse wheel.
const MouseWheelDelta = 120

// HIWORD/LOWORD, used to pull the wheel delta and button-xbutton fields
// out of MSLLHOOKSTRUCT.MouseData.
func HIWORD(v uint32) uint16 { return uint16(v >> 16) }
func LOWORD(v uint32) uint16 { return uint16(v & 0xFFFF) }

// HiddenWindowClassName is the class name used for the hidden Raw Input
// window. Extended styles WS_EX_TOOLWINDOW|WS_EX_NOACTIVATE keep it out
// of the taskbar and z-order without using HWND_MESSAGE, which
// spec.md notes is unreliable for WM_INPUT on some Windows versions.
const HiddenWindowClassName = "InputKitRawInputWindow"

const (
	WSPopup          = 0x80000000
	WSExToolWindow   = 0x00000080
	WSExNoActivate   = 0x08000000
)

// RegisterHiddenWindowClass registers the window class used for the
// hidden Raw Input target window, once per process.
func RegisterHiddenWindowClass(hInstance syscall.Handle, wndProc uintptr) (uint16, error) {
	cls, err := syscall.UTF16PtrFromString(HiddenWindowClassName)
	if err != nil {
		return 0, err
	}
	wcls := WNDCLASSEX{
		LpfnWndProc:   wndProc,
		HInstance:     hInstance,
		LpszClassName: cls,
	}
	return RegisterClassEx(&wcls)
}
