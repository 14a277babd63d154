//go:build windows

package capture

import (
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"unsafe"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/winapi"
	"github.com/inputkit/inputkit/kbstate"
	"github.com/inputkit/inputkit/keycode"
)

func errnoCode(err error) uint32 {
	if errno, ok := err.(syscall.Errno); ok {
		return uint32(errno)
	}
	return 0
}

// windowsSession owns every native handle a Windows capture session
// holds: the two low-level hooks, the hidden Raw Input target window,
// and the message-pump thread they all live on.
type windowsSession struct {
	session    *Session
	opts       Options
	translator *kbstate.WindowsTranslator

	keyHook   syscall.Handle
	mouseHook syscall.Handle
	hwnd      syscall.Handle
	threadID  uint32

	preparsed sync.Map // syscall.Handle -> []byte

	touchTracking          bool
	touchLastX, touchLastY uint32

	shadow kbstate.ShadowModifiers
}

var winActive atomic.Pointer[windowsSession]

// Listen starts a passive capture session.
func Listen(cb Callback, opts Options) (*Session, error) {
	return startWindowsSession(ModeListen, cb, opts)
}

// Grab starts an intercepting capture session.
func Grab(cb Callback, opts Options) (*Session, error) {
	return startWindowsSession(ModeGrab, cb, opts)
}

func startWindowsSession(mode Mode, cb Callback, opts Options) (*Session, error) {
	sess, errKind := Begin(mode, mode == ModeGrab)
	switch errKind {
	case ErrAlreadyListening:
		return nil, &HookInstallError{Stage: "already_listening"}
	case ErrAlreadyGrabbing:
		return nil, &HookInstallError{Stage: "already_grabbing"}
	}
	if sess.callback != nil {
		// Windows' documented second-grab exception: a grab session is
		// already live, and Begin handed back the existing one.
		return sess, nil
	}
	sess.SetCallback(cb, nil)

	translator := kbstate.NewWindowsTranslator()
	translator.SetEventPopup(opts.EventPopup)
	ws := &windowsSession{session: sess, opts: opts, translator: translator}
	ready := make(chan error, 1)
	stopped := make(chan struct{})
	go ws.run(ready, stopped)

	if err := <-ready; err != nil {
		sess.Stop()
		return nil, err
	}

	sess.stopFn = func() {
		winapi.PostThreadMessage(ws.threadID, winapi.WMQuit, 0, 0)
		<-stopped
	}
	return sess, nil
}

// run installs the hooks and hidden window on a dedicated, locked OS
// thread and pumps its message queue until told to stop. Every hook
// callback and the raw-input window procedure below execute on this
// same thread, so the session's mutable fields need no locking.
func (ws *windowsSession) run(ready chan<- error, stopped chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(stopped)

	ws.threadID = winapi.CurrentThreadID()

	hInst, err := winapi.GetModuleHandle()
	if err != nil {
		ready <- err
		return
	}

	if _, err := winapi.RegisterHiddenWindowClass(hInst, syscall.NewCallback(windowProc)); err != nil {
		ready <- err
		return
	}

	hwnd, err := winapi.CreateWindowEx(
		winapi.WSExToolWindow|winapi.WSExNoActivate,
		winapi.HiddenWindowClassName, "",
		winapi.WSPopup,
		0, 0, 0, 0,
		0, 0, hInst,
	)
	if err != nil {
		ready <- err
		return
	}
	ws.hwnd = hwnd

	devices := []winapi.RAWINPUTDEVICE{
		{UsagePage: winapi.HIDUsagePageDigitizer, Usage: winapi.HIDUsageDigitizerTouchPad, Flags: winapi.RIDEVINPUTSINK, Target: hwnd},
	}
	if !ws.opts.KeyboardOnly {
		devices = append(devices, winapi.RAWINPUTDEVICE{UsagePage: winapi.HIDUsagePageGeneric, Usage: winapi.HIDUsageGenericMouse, Flags: winapi.RIDEVINPUTSINK, Target: hwnd})
	}
	if err := winapi.RegisterRawInputDevices(devices); err != nil {
		logf("capture: raw input device registration failed: %v", err)
	}

	keyHook, err := winapi.SetWindowsHookEx(winapi.WHKeyboardLL, syscall.NewCallback(keyboardHookProc), hInst, 0)
	if err != nil {
		winapi.DestroyWindow(hwnd)
		ready <- &HookInstallError{Stage: "keyboard_hook", Code: errnoCode(err)}
		return
	}
	ws.keyHook = keyHook

	if !ws.opts.KeyboardOnly {
		mouseHook, err := winapi.SetWindowsHookEx(winapi.WHMouseLL, syscall.NewCallback(mouseHookProc), hInst, 0)
		if err != nil {
			winapi.UnhookWindowsHookEx(keyHook)
			winapi.DestroyWindow(hwnd)
			ready <- &HookInstallError{Stage: "mouse_hook", Code: errnoCode(err)}
			return
		}
		ws.mouseHook = mouseHook
	}

	winActive.Store(ws)
	close(ready)

	msg := new(winapi.MSG)
	for {
		ok, err := winapi.GetMessage(msg)
		if err != nil {
			logf("capture: GetMessage failed: %v", err)
			break
		}
		if !ok {
			break
		}
		winapi.TranslateMessage(msg)
		winapi.DispatchMessage(msg)
	}

	winActive.Store(nil)
	if ws.mouseHook != 0 {
		winapi.UnhookWindowsHookEx(ws.mouseHook)
	}
	if ws.keyHook != 0 {
		winapi.UnhookWindowsHookEx(ws.keyHook)
	}
	winapi.DestroyWindow(ws.hwnd)
}

func callNextKey(ws *windowsSession, nCode int32, wParam, lParam uintptr) uintptr {
	var h syscall.Handle
	if ws != nil {
		h = ws.keyHook
	}
	return winapi.CallNextHookEx(h, nCode, wParam, lParam)
}

func callNextMouse(ws *windowsSession, nCode int32, wParam, lParam uintptr) uintptr {
	var h syscall.Handle
	if ws != nil {
		h = ws.mouseHook
	}
	return winapi.CallNextHookEx(h, nCode, wParam, lParam)
}

func keyboardHookProc(nCode int32, wParam, lParam uintptr) uintptr {
	ws := winActive.Load()
	if ws == nil || nCode < winapi.HCAction {
		return callNextKey(ws, nCode, wParam, lParam)
	}
	hk := (*winapi.KBDLLHOOKSTRUCT)(unsafe.Pointer(lParam))
	if ws.handleKeyboardMessage(uint32(wParam), hk) && ws.session.mode == ModeGrab {
		return 1
	}
	return callNextKey(ws, nCode, wParam, lParam)
}

func mouseHookProc(nCode int32, wParam, lParam uintptr) uintptr {
	ws := winActive.Load()
	if ws == nil || nCode < winapi.HCAction {
		return callNextMouse(ws, nCode, wParam, lParam)
	}
	ms := (*winapi.MSLLHOOKSTRUCT)(unsafe.Pointer(lParam))
	if ws.handleMouseMessage(uint32(wParam), ms) && ws.session.mode == ModeGrab {
		return 1
	}
	return callNextMouse(ws, nCode, wParam, lParam)
}

func windowProc(hwnd syscall.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	if ws := winActive.Load(); ws != nil && msg == winapi.WMInput {
		ws.handleRawInput(lParam)
		return 0
	}
	return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
}

// handleKeyboardMessage decodes one WH_KEYBOARD_LL message, dispatching
// its raw variant first and then its cooked, Unicode-annotated variant.
// It reports whether either the raw or the cooked dispatch requested
// suppression.
func (ws *windowsSession) handleKeyboardMessage(msg uint32, hk *winapi.KBDLLHOOKSTRUCT) bool {
	down := msg == winapi.WMKeyDown || msg == winapi.WMSysKeyDown
	extended := hk.Flags&winapi.LLKHFExtended != 0
	injected := hk.Flags&winapi.LLKHFInjected != 0
	synthetic := injected || int64(hk.DwExtraInfo) == syntheticMarker

	vk, scanCode := hk.VKCode, hk.ScanCode
	key, named := keycode.FromWindowsVK(vk)

	rawKind := event.KeyReleaseRaw
	if down {
		rawKind = event.KeyPressRaw
	}
	var rawType event.EventType
	if named {
		rawType = event.EventType{Kind: rawKind, Key: key}
	} else {
		rawType = event.EventType{Kind: rawKind, Key: event.KeyRaw, Raw: event.RawKey{Kind: event.RawWinVirtualKeycode, Code: vk}}
	}

	if named {
		ws.shadow.Add(rawKind, key)
	}

	usbHID, _ := keycode.USBHIDFromPositionCode(scanCode, extended)
	now := time.Now()
	base := event.Event{
		Time: now, PlatformCode: vk, PositionCode: scanCode,
		USBHID: usbHID, ExtraData: int64(hk.DwExtraInfo), IsSynthetic: synthetic,
		Modifiers: ws.shadow.Modifiers(),
	}

	raw := base
	raw.Type = rawType
	rawResult := ws.session.Dispatch(raw)

	cookedKind := event.KeyRelease
	if down {
		cookedKind = event.KeyPress
	}
	cooked := base
	cooked.Type = rawType
	cooked.Type.Kind = cookedKind
	if down && ws.opts.GetKeyUnicode {
		cooked.Unicode = ws.translator.Translate(vk, scanCode)
	}

	cookedResult := ws.session.Dispatch(cooked)
	return rawResult == nil || cookedResult == nil
}

func buttonFor(msg uint32) event.Button {
	switch msg {
	case winapi.WMLButtonDown, winapi.WMLButtonUp:
		return event.Left
	case winapi.WMRButtonDown, winapi.WMRButtonUp:
		return event.Right
	case winapi.WMMButtonDown, winapi.WMMButtonUp:
		return event.Middle
	default:
		return event.Unknown(0)
	}
}

// handleMouseMessage decodes one WH_MOUSE_LL message. Movement is
// dispatched only as a cooked MouseMove (the hook's coordinates are
// already cursor-accelerated; pre-acceleration MouseMoveRaw deltas come
// from the Raw Input path in handleRawInput). Wheel and button events
// dispatch raw then cooked, mirroring the keyboard path, and suppress
// when either dispatch requests it.
func (ws *windowsSession) handleMouseMessage(msg uint32, ms *winapi.MSLLHOOKSTRUCT) bool {
	injected := ms.Flags&winapi.LLMHFInjected != 0
	synthetic := injected || int64(ms.DwExtraInfo) == syntheticMarker
	base := event.Event{Time: time.Now(), ExtraData: int64(ms.DwExtraInfo), IsSynthetic: synthetic, Modifiers: ws.shadow.Modifiers()}

	switch msg {
	case winapi.WMMouseMove:
		e := base
		e.Type = event.NewMouseMove(float64(ms.Pt.X), float64(ms.Pt.Y))
		result := ws.session.Dispatch(e)
		return result == nil
	case winapi.WMLButtonDown, winapi.WMLButtonUp, winapi.WMRButtonDown, winapi.WMRButtonUp, winapi.WMMButtonDown, winapi.WMMButtonUp:
		down := msg == winapi.WMLButtonDown || msg == winapi.WMRButtonDown || msg == winapi.WMMButtonDown
		btn := buttonFor(msg)
		raw := base
		if down {
			raw.Type = event.NewButtonPressRaw(btn)
		} else {
			raw.Type = event.NewButtonReleaseRaw(btn)
		}
		rawResult := ws.session.Dispatch(raw)

		cooked := base
		if down {
			cooked.Type = event.NewButtonPress(btn)
		} else {
			cooked.Type = event.NewButtonRelease(btn)
		}
		cookedResult := ws.session.Dispatch(cooked)
		return rawResult == nil || cookedResult == nil
	case winapi.WMMouseWheel:
		delta := int16(winapi.HIWORD(ms.MouseData))
		dy := float64(delta) / float64(winapi.MouseWheelDelta)
		raw := base
		raw.Type = event.NewWheelRaw(0, dy)
		rawResult := ws.session.Dispatch(raw)

		cooked := base
		cooked.Type = event.NewWheel(0, dy)
		cookedResult := ws.session.Dispatch(cooked)
		return rawResult == nil || cookedResult == nil
	}
	return false
}

// handleRawInput decodes a WM_INPUT payload: pre-acceleration mouse
// deltas, and precision-touchpad HID contact reports used to synthesize
// a two-finger-scroll WheelRaw gesture the low-level mouse hook never sees.
func (ws *windowsSession) handleRawInput(lParam uintptr) {
	size := winapi.GetRawInputDataSize(lParam)
	if size == 0 || size > 4096 {
		return
	}
	buf := make([]byte, size)
	if _, err := winapi.GetRawInputData(lParam, buf); err != nil {
		return
	}
	headerSize := int(unsafe.Sizeof(winapi.RAWINPUTHEADER{}))
	if len(buf) < headerSize {
		return
	}
	header := (*winapi.RAWINPUTHEADER)(unsafe.Pointer(&buf[0]))
	payload := buf[headerSize:]

	switch header.Type {
	case winapi.RIMTYPEMOUSE:
		if len(payload) < int(unsafe.Sizeof(winapi.RAWMOUSE{})) {
			return
		}
		m := (*winapi.RAWMOUSE)(unsafe.Pointer(&payload[0]))
		if m.LastX == 0 && m.LastY == 0 {
			return
		}
		ws.session.Dispatch(event.Event{
			Time: time.Now(),
			Type: event.NewMouseMoveRaw(float64(m.LastX), float64(m.LastY)),
		})
	case winapi.RIMTYPEHID:
		ws.handleTouchpadReport(header.Device, payload)
	}
}

func (ws *windowsSession) preparsedFor(device syscall.Handle) ([]byte, bool) {
	if v, ok := ws.preparsed.Load(device); ok {
		return v.([]byte), true
	}
	data, err := winapi.GetRawInputDeviceInfoPreparsedData(device)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	ws.preparsed.Store(device, data)
	return data, true
}

// handleTouchpadReport decodes one precision-touchpad HID report
// (usage page 0x0D, contact-count usage 0x54, X/Y usages 0x30/0x31) and
// turns a sustained two-finger contact into WheelRaw deltas.
func (ws *windowsSession) handleTouchpadReport(device syscall.Handle, payload []byte) {
	hidSize := int(unsafe.Sizeof(winapi.RAWHID{}))
	if len(payload) < hidSize {
		return
	}
	hid := (*winapi.RAWHID)(unsafe.Pointer(&payload[0]))
	if hid.SizeHid == 0 || len(payload) < hidSize+int(hid.SizeHid) {
		return
	}
	report := payload[hidSize : hidSize+int(hid.SizeHid)]

	preparsed, ok := ws.preparsedFor(device)
	if !ok {
		return
	}
	const usageContactCount = 0x54
	const usageX = 0x30
	const usageY = 0x31

	contactCount, ok := winapi.HidPGetUsageValue(preparsed, report, winapi.HIDUsagePageDigitizer, usageContactCount)
	if !ok || contactCount != 2 {
		ws.touchTracking = false
		return
	}
	x, okx := winapi.HidPGetUsageValue(preparsed, report, winapi.HIDUsagePageGeneric, usageX)
	y, oky := winapi.HidPGetUsageValue(preparsed, report, winapi.HIDUsagePageGeneric, usageY)
	if !okx || !oky {
		return
	}
	if ws.touchTracking {
		if t, ok := touchpadScrollDelta(x, y, ws.touchLastX, ws.touchLastY); ok {
			ws.session.Dispatch(event.Event{Time: time.Now(), Type: t})
		}
	}
	ws.touchLastX, ws.touchLastY = x, y
	ws.touchTracking = true
}

// touchpadScrollDelta applies the two-finger-scroll threshold and scale:
// a contact move under 5 units on both axes is noise and produces no
// event; a qualifying move becomes a WheelRaw scaled by 0.01 with Y
// inverted (HID Y increases downward, Wheel's DY increases upward).
func touchpadScrollDelta(x, y, lastX, lastY uint32) (event.EventType, bool) {
	dx := float64(int32(x) - int32(lastX))
	dy := float64(int32(y) - int32(lastY))
	if dx > 5 || dx < -5 || dy > 5 || dy < -5 {
		return event.NewWheelRaw(dx*0.01, -dy*0.01), true
	}
	return event.EventType{}, false
}
