//go:build windows

// Package winapi wraps the Win32 calls this library needs that
// golang.org/x/sys/windows does not already expose: low-level hook
// install/uninstall, Raw Input registration, and keyboard-layout-aware
// Unicode translation. Each wrapper follows the lazy-DLL-proc idiom the
// rest of the x/sys/windows package itself uses internally.
package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetKeyboardState   = user32.NewProc("GetKeyboardState")
	procGetKeyboardLayout  = user32.NewProc("GetKeyboardLayout")
	procToUnicodeEx        = user32.NewProc("ToUnicodeEx")
	procGetKeyState         = user32.NewProc("GetKeyState")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

// GetKeyboardState reads the 256-entry per-thread virtual-key state
// table ToUnicodeEx consumes for its modifier/dead-key logic.
func GetKeyboardState(state *[256]byte) error {
	ret, _, err := procGetKeyboardState.Call(uintptr(unsafe.Pointer(state)))
	if ret == 0 {
		return err
	}
	return nil
}

// GetKeyboardLayout returns the input locale identifier for the thread
// identified by threadID (0 meaning the calling thread).
func GetKeyboardLayout(threadID uint32) syscall.Handle {
	ret, _, _ := procGetKeyboardLayout.Call(uintptr(threadID))
	return syscall.Handle(ret)
}

// ToUnicodeExDontChangeState is wFlags bit 0x2 (Windows 10 1607+): ToUnicodeEx
// reports the translation but leaves the per-thread dead-key buffer
// untouched. Set this while a popup/menu event feedback surface is active
// so peeking at a keystroke's Unicode text doesn't eat a pending dead key
// the real keystroke still needs to compose.
const ToUnicodeExDontChangeState = 0x2

// ToUnicodeEx translates a virtual-key/scancode pair to Unicode text
// under the given keyboard state and layout. flags is typically 0 or
// ToUnicodeExDontChangeState. Returns the character count (possibly 0,
// meaning no translation) and true if the return value was negative,
// meaning a dead key was stored for the next call.
func ToUnicodeEx(vk, scanCode uint32, keyState *[256]byte, buf []uint16, layout syscall.Handle, flags uint32) (count int, isDead bool) {
	ret, _, _ := procToUnicodeEx.Call(
		uintptr(vk),
		uintptr(scanCode),
		uintptr(unsafe.Pointer(keyState)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(flags),
		uintptr(layout),
	)
	n := int32(ret)
	if n < 0 {
		return 0, true
	}
	return int(n), false
}

// GetKeyState reports whether vk is currently down (high bit set),
// sampled at the time of the most recently retrieved message. The
// shadow modifier tracker in kbstate does not use it.
func GetKeyState(vk int32) int16 {
	ret, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(ret)
}

// HookProc is the Go-side low-level hook callback shape, matching
// HOOKPROC in winuser.h.
type HookProc func(code int32, wParam, lParam uintptr) uintptr

// SetWindowsHookEx installs a low-level hook of the given type (e.g.
// WH_KEYBOARD_LL, WH_MOUSE_LL) running proc for every matching message.
func SetWindowsHookEx(idHook int32, proc uintptr, hInstance syscall.Handle, threadID uint32) (syscall.Handle, error) {
	ret, _, err := procSetWindowsHookExW.Call(
		uintptr(idHook), proc, uintptr(hInstance), uintptr(threadID),
	)
	if ret == 0 {
		return 0, err
	}
	return syscall.Handle(ret), nil
}

// CallNextHookEx passes a hook message to the next hook in the chain;
// every WH_KEYBOARD_LL/WH_MOUSE_LL callback that does not suppress the
// event must call this before returning.
func CallNextHookEx(hhk syscall.Handle, nCode int32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallNextHookEx.Call(uintptr(hhk), uintptr(nCode), wParam, lParam)
	return ret
}

// UnhookWindowsHookEx removes a previously installed hook.
func UnhookWindowsHookEx(hhk syscall.Handle) error {
	ret, _, err := procUnhookWindowsHookEx.Call(uintptr(hhk))
	if ret == 0 {
		return err
	}
	return nil
}

// PostThreadMessage posts a message to the message queue of the given
// thread, used to unblock a GetMessage-based hook loop during shutdown.
func PostThreadMessage(threadID uint32, msg uint32, wParam, lParam uintptr) error {
	ret, _, err := procPostThreadMessageW.Call(uintptr(threadID), uintptr(msg), wParam, lParam)
	if ret == 0 {
		return err
	}
	return nil
}
