//go:build windows

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")

	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

// CurrentThreadID returns the Win32 thread identifier of the calling
// thread, used to target PostThreadMessage at the hook-owning thread.
func CurrentThreadID() uint32 {
	ret, _, _ := procGetCurrentThreadId.Call()
	return uint32(ret)
}

// WNDCLASSEX mirrors the fields of the Win32 WNDCLASSEXW structure this
// library populates when registering the hidden Raw Input window class.
type WNDCLASSEX struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     syscall.Handle
	HIcon         syscall.Handle
	HCursor       syscall.Handle
	HbrBackground syscall.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       syscall.Handle
}

// RegisterClassEx registers a window class and returns its atom.
func RegisterClassEx(wc *WNDCLASSEX) (uint16, error) {
	wc.CbSize = uint32(unsafe.Sizeof(*wc))
	ret, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(wc)))
	if ret == 0 {
		return 0, err
	}
	return uint16(ret), nil
}

// GetModuleHandle returns the base address handle of the current
// process's module, used as hInstance for window and hook registration.
func GetModuleHandle() (syscall.Handle, error) {
	ret, _, err := procGetModuleHandleW.Call(0)
	if ret == 0 {
		return 0, err
	}
	return syscall.Handle(ret), nil
}

// CreateWindowEx creates a window; this library only ever creates the
// hidden, unstyled target window WM_INPUT is delivered to.
func CreateWindowEx(exStyle uint32, className, windowName string, style uint32, x, y, w, h int32, parent, menu, instance syscall.Handle) (syscall.Handle, error) {
	cls, err := syscall.UTF16PtrFromString(className)
	if err != nil {
		return 0, err
	}
	name, err := syscall.UTF16PtrFromString(windowName)
	if err != nil {
		return 0, err
	}
	ret, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(cls)),
		uintptr(unsafe.Pointer(name)),
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		uintptr(parent), uintptr(menu), uintptr(instance), 0,
	)
	if ret == 0 {
		return 0, err
	}
	return syscall.Handle(ret), nil
}

// DefWindowProc forwards an unhandled window message to the default
// window procedure.
func DefWindowProc(hwnd syscall.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return ret
}

// DestroyWindow destroys a window created by CreateWindowEx.
func DestroyWindow(hwnd syscall.Handle) error {
	ret, _, err := procDestroyWindow.Call(uintptr(hwnd))
	if ret == 0 {
		return err
	}
	return nil
}

// MSG mirrors the Win32 MSG structure.
type MSG struct {
	Hwnd    syscall.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// GetMessage retrieves the next message for the calling thread, blocking
// until one arrives. It returns false once WM_QUIT has been received.
func GetMessage(msg *MSG) (bool, error) {
	ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	switch int32(ret) {
	case -1:
		return false, err
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

// TranslateMessage translates virtual-key messages into character
// messages, posted back to the calling thread's queue.
func TranslateMessage(msg *MSG) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

// DispatchMessage dispatches msg to the window procedure of its target
// window.
func DispatchMessage(msg *MSG) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

// PostQuitMessage queues WM_QUIT onto the calling thread's message
// queue, unblocking its GetMessage loop.
func PostQuitMessage(exitCode int32) {
	procPostQuitMessage.Call(uintptr(exitCode))
}
