//go:build darwin

package capture

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices

#include <stdint.h>
#include <ApplicationServices/ApplicationServices.h>

extern int inputkitDispatch(uintptr_t handle, CGEventType type, int64_t keycode, uint64_t flags,
                             double x, double y, double dx, double dy, int64_t button,
                             int64_t sourceUserData, int32_t sourceStateID);

static CGEventRef inputkitTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon) {
	if (type == kCGEventTapDisabledByTimeout || type == kCGEventTapDisabledByUserInput) {
		inputkitDispatch((uintptr_t)refcon, type, 0, 0, 0, 0, 0, 0, 0, 0, 0);
		return event;
	}

	int64_t keycode = 0;
	uint64_t flags = (uint64_t)CGEventGetFlags(event);
	double x = 0, y = 0, dx = 0, dy = 0;
	int64_t button = 0;
	int64_t sourceUserData = CGEventGetIntegerValueField(event, kCGEventSourceUserData);
	int32_t sourceStateID = 0;

	CGEventSourceRef src = CGEventCreateSourceFromEvent(event);
	if (src != NULL) {
		sourceStateID = (int32_t)CGEventSourceGetSourceStateID(src);
		CFRelease(src);
	}

	switch (type) {
	case kCGEventKeyDown:
	case kCGEventKeyUp:
	case kCGEventFlagsChanged:
		keycode = CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
		break;
	case kCGEventMouseMoved:
	case kCGEventLeftMouseDragged:
	case kCGEventRightMouseDragged:
	case kCGEventOtherMouseDragged: {
		CGPoint loc = CGEventGetLocation(event);
		x = loc.x;
		y = loc.y;
		dx = (double)CGEventGetIntegerValueField(event, kCGMouseEventDeltaX);
		dy = (double)CGEventGetIntegerValueField(event, kCGMouseEventDeltaY);
		break;
	}
	case kCGEventLeftMouseDown:
	case kCGEventLeftMouseUp:
	case kCGEventRightMouseDown:
	case kCGEventRightMouseUp:
	case kCGEventOtherMouseDown:
	case kCGEventOtherMouseUp: {
		CGPoint loc = CGEventGetLocation(event);
		x = loc.x;
		y = loc.y;
		button = CGEventGetIntegerValueField(event, kCGMouseEventButtonNumber);
		break;
	}
	case kCGEventScrollWheel:
		dx = CGEventGetDoubleValueField(event, kCGScrollWheelEventPointDeltaAxis2);
		dy = CGEventGetDoubleValueField(event, kCGScrollWheelEventPointDeltaAxis1);
		break;
	default:
		break;
	}

	int suppress = inputkitDispatch((uintptr_t)refcon, type, keycode, flags, x, y, dx, dy, button, sourceUserData, sourceStateID);
	if (suppress) {
		return NULL;
	}
	return event;
}

static CFMachPortRef inputkitCreateTap(uintptr_t handle, int keyboardOnly) {
	CGEventMask mask;
	if (keyboardOnly) {
		mask = CGEventMaskBit(kCGEventKeyDown) | CGEventMaskBit(kCGEventKeyUp) | CGEventMaskBit(kCGEventFlagsChanged);
	} else {
		mask = CGEventMaskBit(kCGEventKeyDown) | CGEventMaskBit(kCGEventKeyUp) | CGEventMaskBit(kCGEventFlagsChanged) |
			CGEventMaskBit(kCGEventMouseMoved) | CGEventMaskBit(kCGEventLeftMouseDragged) |
			CGEventMaskBit(kCGEventRightMouseDragged) | CGEventMaskBit(kCGEventOtherMouseDragged) |
			CGEventMaskBit(kCGEventLeftMouseDown) | CGEventMaskBit(kCGEventLeftMouseUp) |
			CGEventMaskBit(kCGEventRightMouseDown) | CGEventMaskBit(kCGEventRightMouseUp) |
			CGEventMaskBit(kCGEventOtherMouseDown) | CGEventMaskBit(kCGEventOtherMouseUp) |
			CGEventMaskBit(kCGEventScrollWheel);
	}
	return CGEventTapCreate(kCGSessionEventTap, kCGHeadInsertEventTap, kCGEventTapOptionDefault,
		mask, inputkitTapCallback, (void *)handle);
}
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync/atomic"
	"time"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/cocoa"
	"github.com/inputkit/inputkit/internal/modstate"
	"github.com/inputkit/inputkit/kbstate"
	"github.com/inputkit/inputkit/keycode"
)

// darwinSession owns the native CGEventTap handles and the modifier
// state machine for one macOS capture session. Every field below is
// only ever touched from the run loop's own thread, except lastFlags
// (compared/updated from the tap callback, which does run on that same
// thread, but kept atomic to match the "LAST_FLAGS is an atomic word"
// contract so a future off-loaded-callback variant stays correct).
type darwinSession struct {
	session    *Session
	opts       Options
	translator *kbstate.DarwinTranslator

	tap     C.CFMachPortRef
	source  C.CFRunLoopSourceRef
	runLoop C.CFRunLoopRef
	handle  cgo.Handle

	lastFlags atomic.Uint64
}

var darwinActive atomic.Pointer[darwinSession]

// Listen starts a passive capture session.
func Listen(cb Callback, opts Options) (*Session, error) {
	return startDarwinSession(ModeListen, cb, opts)
}

// Grab starts an intercepting capture session.
func Grab(cb Callback, opts Options) (*Session, error) {
	return startDarwinSession(ModeGrab, cb, opts)
}

func startDarwinSession(mode Mode, cb Callback, opts Options) (*Session, error) {
	sess, errKind := Begin(mode, false)
	switch errKind {
	case ErrAlreadyListening:
		return nil, &HookInstallError{Stage: "already_listening"}
	case ErrAlreadyGrabbing:
		return nil, &HookInstallError{Stage: "already_grabbing"}
	}
	if sess.callback != nil {
		return sess, nil
	}
	sess.SetCallback(cb, nil)

	if err := cocoa.PreflightAccessibility(); err != nil {
		sess.Stop()
		return nil, &HookInstallError{Stage: "accessibility"}
	}
	if err := cocoa.PreflightInputMonitoring(); err != nil {
		sess.Stop()
		return nil, &HookInstallError{Stage: "input_monitoring"}
	}

	ds := &darwinSession{session: sess, opts: opts, translator: kbstate.NewDarwinTranslator()}
	ready := make(chan error, 1)
	stopped := make(chan struct{})
	go ds.run(ready, stopped)

	if err := <-ready; err != nil {
		sess.Stop()
		return nil, err
	}

	sess.stopFn = func() {
		C.CFRunLoopStop(ds.runLoop)
		<-stopped
	}
	return sess, nil
}

// run installs the event tap on a dedicated, locked OS thread and drives
// its CFRunLoop until stopped. The tap callback, invoked synchronously by
// the run loop, executes on this same thread.
func (ds *darwinSession) run(ready chan<- error, stopped chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(stopped)

	ds.handle = cgo.NewHandle(ds)
	defer ds.handle.Delete()

	keyboardOnly := 0
	if ds.opts.KeyboardOnly {
		keyboardOnly = 1
	}
	tap := C.inputkitCreateTap(C.uintptr_t(ds.handle), C.int(keyboardOnly))
	if tap == nil {
		ready <- &HookInstallError{Stage: "event_tap"}
		return
	}
	ds.tap = tap

	source := C.CFMachPortCreateRunLoopSource(0, tap, 0)
	if source == nil {
		C.CFRelease(C.CFTypeRef(tap))
		ready <- &HookInstallError{Stage: "run_loop_source"}
		return
	}
	ds.source = source

	loop := C.CFRunLoopGetCurrent()
	ds.runLoop = loop
	C.CFRunLoopAddSource(loop, source, C.kCFRunLoopCommonModes)
	C.CGEventTapEnable(tap, C.bool(true))

	darwinActive.Store(ds)
	close(ready)

	C.CFRunLoopRun()

	darwinActive.Store(nil)
	C.CFRunLoopRemoveSource(loop, source, C.kCFRunLoopCommonModes)
	C.CFRelease(C.CFTypeRef(source))
	C.CFRelease(C.CFTypeRef(tap))
}

// hidSystemStateID is kCGEventSourceStateHIDSystemState's numeric value:
// a CGEvent whose source reports a different state id, or whose
// per-event user-data field carries the known marker, did not originate
// from the physical HID system and is flagged synthetic.
const hidSystemStateID = 1

//export inputkitDispatch
func inputkitDispatch(handle C.uintptr_t, cType C.CGEventType, keycode_ C.int64_t, flags C.uint64_t,
	x, y, dx, dy C.double, button C.int64_t, sourceUserData C.int64_t, sourceStateID C.int32_t) C.int {
	h := cgo.Handle(handle)
	ds, ok := h.Value().(*darwinSession)
	if !ok {
		return 0
	}
	return C.int(ds.dispatch(uint32(cType), uint32(keycode_), uint64(flags),
		float64(x), float64(y), float64(dx), float64(dy), int64(button),
		int64(sourceUserData), int32(sourceStateID)))
}

func (ds *darwinSession) dispatch(cType uint32, vk uint32, flags uint64, x, y, dx, dy float64, button int64, sourceUserData int64, sourceStateID int32) int {
	const (
		typeLeftMouseDown      = 1
		typeLeftMouseUp        = 2
		typeRightMouseDown     = 3
		typeRightMouseUp       = 4
		typeMouseMoved         = 5
		typeLeftMouseDragged   = 6
		typeRightMouseDragged  = 7
		typeKeyDown            = 10
		typeKeyUp              = 11
		typeFlagsChanged       = 12
		typeScrollWheel        = 22
		typeOtherMouseDown     = 25
		typeOtherMouseUp       = 26
		typeOtherMouseDragged  = 27
		typeTapDisabledTimeout = 0xFFFFFFFE
		typeTapDisabledInput   = 0xFFFFFFFF
	)

	if cType == typeTapDisabledTimeout || cType == typeTapDisabledInput {
		C.CGEventTapEnable(ds.tap, C.bool(true))
		return 0
	}

	synthetic := sourceStateID != hidSystemStateID || sourceUserData == int64(syntheticMarker)
	now := time.Now()
	base := event.Event{Time: now, ExtraData: sourceUserData, IsSynthetic: synthetic, Modifiers: modifiersFromCGFlags(flags)}

	switch cType {
	case typeKeyDown, typeKeyUp:
		return ds.dispatchKey(base, vk, flags, cType == typeKeyDown)
	case typeFlagsChanged:
		return ds.dispatchFlagsChanged(base, vk, flags)
	case typeMouseMoved, typeLeftMouseDragged, typeRightMouseDragged, typeOtherMouseDragged:
		e := base
		e.Type = event.NewMouseMoveRaw(dx, dy)
		rawResult := ds.session.Dispatch(e)
		e.Type = event.NewMouseMove(x, y)
		cookedResult := ds.session.Dispatch(e)
		return suppressInt(ds, rawResult, cookedResult)
	case typeLeftMouseDown, typeLeftMouseUp, typeRightMouseDown, typeRightMouseUp, typeOtherMouseDown, typeOtherMouseUp:
		down := cType == typeLeftMouseDown || cType == typeRightMouseDown || cType == typeOtherMouseDown
		btn := buttonFromNumber(button)
		raw := base
		if down {
			raw.Type = event.NewButtonPressRaw(btn)
		} else {
			raw.Type = event.NewButtonReleaseRaw(btn)
		}
		rawResult := ds.session.Dispatch(raw)
		cooked := base
		if down {
			cooked.Type = event.NewButtonPress(btn)
		} else {
			cooked.Type = event.NewButtonRelease(btn)
		}
		cookedResult := ds.session.Dispatch(cooked)
		return suppressInt(ds, rawResult, cookedResult)
	case typeScrollWheel:
		raw := base
		raw.Type = event.NewWheelRaw(dx, dy)
		rawResult := ds.session.Dispatch(raw)
		cooked := base
		cooked.Type = event.NewWheel(dx, dy)
		cookedResult := ds.session.Dispatch(cooked)
		return suppressInt(ds, rawResult, cookedResult)
	}
	return 0
}

func (ds *darwinSession) dispatchKey(base event.Event, vk uint32, flags uint64, down bool) int {
	isISO := kbstate.IsISOLayout()
	key, named := keycode.FromDarwinVK(vk, isISO)

	rawKind := event.KeyReleaseRaw
	if down {
		rawKind = event.KeyPressRaw
	}
	var rawType event.EventType
	if named {
		rawType = event.EventType{Kind: rawKind, Key: key}
	} else {
		rawType = event.EventType{Kind: rawKind, Key: event.KeyRaw, Raw: event.RawKey{Kind: event.RawMacVirtualKeycode, Code: vk}}
	}
	base.PlatformCode = vk

	raw := base
	raw.Type = rawType
	rawResult := ds.session.Dispatch(raw)

	cookedKind := event.KeyRelease
	if down {
		cookedKind = event.KeyPress
	}
	cooked := base
	cooked.Type = rawType
	cooked.Type.Kind = cookedKind
	if down && ds.opts.GetKeyUnicode {
		dispatchKind := event.KeyPress
		cooked.Unicode = ds.translator.Add(dispatchKind, key, vk, flags)
	} else if !down {
		ds.translator.Add(event.KeyRelease, key, vk, flags)
	}

	cookedResult := ds.session.Dispatch(cooked)
	return suppressInt(ds, rawResult, cookedResult)
}

// dispatchFlagsChanged implements the documented LAST_FLAGS diff state
// machine: the changed modifier key is identified by keycode, and
// whether the whole flags word increased or decreased decides press
// versus release.
func (ds *darwinSession) dispatchFlagsChanged(base event.Event, vk uint32, flags uint64) int {
	old := ds.lastFlags.Swap(flags)
	down := flags > old
	modstate.Store(flags)

	isISO := kbstate.IsISOLayout()
	key, named := keycode.FromDarwinVK(vk, isISO)
	if !named {
		return 0
	}
	base.PlatformCode = vk

	rawKind := event.KeyReleaseRaw
	if down {
		rawKind = event.KeyPressRaw
	}
	raw := base
	raw.Type = event.EventType{Kind: rawKind, Key: key}
	rawResult := ds.session.Dispatch(raw)

	cookedKind := event.KeyRelease
	if down {
		cookedKind = event.KeyPress
	}
	cooked := base
	cooked.Type = event.EventType{Kind: cookedKind, Key: key}

	if down {
		ds.translator.Add(event.KeyPress, key, vk, flags)
	} else {
		ds.translator.Add(event.KeyRelease, key, vk, flags)
	}

	cookedResult := ds.session.Dispatch(cooked)
	return suppressInt(ds, rawResult, cookedResult)
}

// suppressInt reports suppression (spec.md §8 "suppression monotonicity"):
// a grab session suppresses the originating native event if the callback
// returned none for *any* portable event derived from it, raw or cooked.
func suppressInt(ds *darwinSession, rawResult, cookedResult *event.Event) int {
	if (rawResult == nil || cookedResult == nil) && ds.session.mode == ModeGrab {
		return 1
	}
	return 0
}

// modifiersFromCGFlags renders a CGEventFlags word into the portable
// Modifiers bitmask, using the same Command/Control bits kbstate.Add
// checks before attempting Unicode translation.
func modifiersFromCGFlags(flags uint64) event.Modifiers {
	const (
		flagShift = 1 << 17
		flagAlt   = 1 << 19
	)
	var m event.Modifiers
	if flags&flagShift != 0 {
		m |= event.ModShift
	}
	if flags&flagAlt != 0 {
		m |= event.ModAlt
	}
	if flags&kbstate.FlagControl != 0 {
		m |= event.ModCtrl
	}
	if flags&kbstate.FlagCommand != 0 {
		m |= event.ModSuper
	}
	return m
}

func buttonFromNumber(n int64) event.Button {
	switch n {
	case 0:
		return event.Left
	case 1:
		return event.Right
	case 2:
		return event.Middle
	default:
		return event.Unknown(uint8(n))
	}
}
