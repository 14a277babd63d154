//go:build linux

// Package x11 is the thin, out-of-primary-scope Linux capture and
// synthesis backend (spec.md §1: "implicitly an X11-style Linux backend
// -- out of scope here"). It uses the XRecord extension to observe every
// core-protocol input event across the whole display, and XTest to post
// synthetic ones, the same two extensions every X11 input library in the
// pack's other_examples reaches for.
package x11

/*
#cgo LDFLAGS: -lX11 -lXtst -lXext

#include <stdlib.h>
#include <X11/Xlib.h>
#include <X11/Xutil.h>
#include <X11/XKBlib.h>
#include <X11/extensions/record.h>
#include <X11/extensions/XTest.h>

extern void x11Callback(uintptr_t handle, int type, unsigned int keycode, int rootX, int rootY, int button, int detail);

typedef struct {
	unsigned char type;
	unsigned char detail;
	unsigned short seq;
	unsigned long time;
	int root, event, child;
	int rootX, rootY, eventX, eventY;
	unsigned short state;
	unsigned char sameScreen;
} xEventHeader;

static void x11_recordCallback(XPointer closure, XRecordInterceptData *data) {
	if (data->category != XRecordFromServer) {
		XRecordFreeData(data);
		return;
	}
	xEventHeader *ev = (xEventHeader *)data->data;
	x11Callback((uintptr_t)closure, (int)ev->type, (unsigned int)ev->detail, ev->rootX, ev->rootY, (int)ev->detail, (int)ev->detail);
	XRecordFreeData(data);
}

static Display *x11_openControlDisplay() {
	return XOpenDisplay(NULL);
}

static Display *x11_openDataDisplay() {
	return XOpenDisplay(NULL);
}

static XRecordContext x11_createContext(Display *ctrl, int keyboardOnly) {
	XRecordClientSpec spec = XRecordAllClients;
	XRecordRange *range = XRecordAllocRange();
	range->device_events.first = KeyPress;
	range->device_events.last = keyboardOnly ? KeyRelease : MotionNotify;
	XRecordContext ctx = XRecordCreateContext(ctrl, 0, &spec, 1, &range, 1);
	XFree(range);
	return ctx;
}

static int x11_enableContext(Display *data, XRecordContext ctx, uintptr_t handle) {
	return XRecordEnableContext(data, ctx, x11_recordCallback, (XPointer)handle);
}

static void x11_disableContext(Display *ctrl, XRecordContext ctx) {
	XRecordDisableContext(ctrl, ctx);
	XFlush(ctrl);
}

static void x11_fakeKey(Display *d, unsigned int keycode, int down) {
	XTestFakeKeyEvent(d, keycode, down ? True : False, CurrentTime);
	XFlush(d);
}

static void x11_fakeButton(Display *d, unsigned int button, int down) {
	XTestFakeButtonEvent(d, button, down ? True : False, CurrentTime);
	XFlush(d);
}

static void x11_fakeMotion(Display *d, int x, int y) {
	XTestFakeMotionEvent(d, -1, x, y, CurrentTime);
	XFlush(d);
}

static void x11_fakeWheel(Display *d, int dy) {
	unsigned int button = dy > 0 ? 4 : 5;
	int n = dy > 0 ? dy : -dy;
	for (int i = 0; i < n; i++) {
		XTestFakeButtonEvent(d, button, True, CurrentTime);
		XTestFakeButtonEvent(d, button, False, CurrentTime);
	}
	XFlush(d);
}

static void x11_displaySize(Display *d, unsigned long *w, unsigned long *h) {
	int screen = DefaultScreen(d);
	*w = (unsigned long)DisplayWidth(d, screen);
	*h = (unsigned long)DisplayHeight(d, screen);
}

static int x11_keysymToKeycode(Display *d, unsigned int keycode, int *keysymOut) {
	KeySym sym = XkbKeycodeToKeysym(d, (KeyCode)keycode, 0, 0);
	*keysymOut = (int)sym;
	return sym != NoSymbol;
}

static unsigned int x11_keysymToKeycodeRev(Display *d, int keysym) {
	return XKeysymToKeycode(d, (KeySym)keysym);
}
*/
import "C"

import (
	"errors"
	"runtime/cgo"
)

// ErrUnavailable is returned when the X11 display cannot be opened —
// e.g. no DISPLAY set, or running under Wayland with no XWayland.
var ErrUnavailable = errors.New("x11: could not open X display")

// EventKind mirrors the subset of X11 core-protocol event types this
// backend forwards to capture/linux.go.
type EventKind int

const (
	KeyPress EventKind = iota
	KeyRelease
	ButtonPress
	ButtonRelease
	MotionNotify
)

// Handler receives decoded XRecord events on the context's own thread.
type Handler func(kind EventKind, keycode uint, x, y int, button int)

// Session owns the control/data display connections and the XRecord
// context for one capture session.
type Session struct {
	ctrl    *C.Display
	data    *C.Display
	ctx     C.XRecordContext
	handle  cgo.Handle
}

// Open establishes the control and data X11 connections and an XRecord
// context over the whole display's key/button/motion events.
func Open(keyboardOnly bool, h Handler) (*Session, error) {
	ctrl := C.x11_openControlDisplay()
	if ctrl == nil {
		return nil, ErrUnavailable
	}
	data := C.x11_openDataDisplay()
	if data == nil {
		C.XCloseDisplay(ctrl)
		return nil, ErrUnavailable
	}
	ko := C.int(0)
	if keyboardOnly {
		ko = 1
	}
	ctx := C.x11_createContext(ctrl, ko)
	if ctx == 0 {
		C.XCloseDisplay(data)
		C.XCloseDisplay(ctrl)
		return nil, errors.New("x11: XRecordCreateContext failed")
	}
	s := &Session{ctrl: ctrl, data: data, ctx: ctx}
	s.handle = cgo.NewHandle(h)
	return s, nil
}

// Run blocks, dispatching events to the Handler passed to Open until
// Stop is called from another thread.
func (s *Session) Run() {
	C.x11_enableContext(s.data, s.ctx, C.uintptr_t(s.handle))
}

// Stop disables the XRecord context, unblocking Run.
func (s *Session) Stop() {
	C.x11_disableContext(s.ctrl, s.ctx)
}

// Close tears down both display connections. Call after Run returns.
func (s *Session) Close() {
	s.handle.Delete()
	C.XRecordFreeContext(s.ctrl, s.ctx)
	C.XCloseDisplay(s.data)
	C.XCloseDisplay(s.ctrl)
}

// KeysymForKeycode resolves a hardware keycode to its unshifted keysym,
// the layout-independent identifier keycode.FromX11Keysym consumes.
func (s *Session) KeysymForKeycode(kc uint) (int, bool) {
	var sym C.int
	ok := C.x11_keysymToKeycode(s.data, C.uint(kc), &sym)
	return int(sym), ok != 0
}

//export x11Callback
func x11Callback(handle C.uintptr_t, cType C.int, keycode C.uint, rootX, rootY C.int, button, _ C.int) {
	h := cgo.Handle(handle)
	fn, ok := h.Value().(Handler)
	if !ok {
		return
	}
	const (
		xKeyPress    = 2
		xKeyRelease  = 3
		xButtonPress = 4
		xButtonRelease = 5
		xMotionNotify = 6
	)
	switch int(cType) {
	case xKeyPress:
		fn(KeyPress, uint(keycode), int(rootX), int(rootY), 0)
	case xKeyRelease:
		fn(KeyRelease, uint(keycode), int(rootX), int(rootY), 0)
	case xButtonPress:
		fn(ButtonPress, 0, int(rootX), int(rootY), int(button))
	case xButtonRelease:
		fn(ButtonRelease, 0, int(rootX), int(rootY), int(button))
	case xMotionNotify:
		fn(MotionNotify, 0, int(rootX), int(rootY), 0)
	}
}

// FakeKey posts a synthetic key press/release via XTestFakeKeyEvent.
func FakeKey(d *Session, keycode uint, down bool) {
	v := C.int(0)
	if down {
		v = 1
	}
	C.x11_fakeKey(d.data, C.uint(keycode), v)
}

// FakeButton posts a synthetic mouse button press/release.
func FakeButton(d *Session, button uint, down bool) {
	v := C.int(0)
	if down {
		v = 1
	}
	C.x11_fakeButton(d.data, C.uint(button), v)
}

// FakeMotion posts a synthetic absolute pointer move.
func FakeMotion(d *Session, x, y int) {
	C.x11_fakeMotion(d.data, C.int(x), C.int(y))
}

// FakeWheel posts dy notches of synthetic wheel button clicks (X11 has
// no native pixel-scroll synthesis primitive; XTest models wheel motion
// as button-4/5 clicks, one per notch).
func FakeWheel(d *Session, dy int) {
	C.x11_fakeWheel(d.data, C.int(dy))
}

// DisplaySize returns the default screen's pixel dimensions.
func DisplaySize(d *Session) (uint64, uint64) {
	var w, h C.ulong
	C.x11_displaySize(d.data, &w, &h)
	return uint64(w), uint64(h)
}

// KeycodeForKeysym resolves a keysym back to a hardware keycode for
// synthesis (the inverse of KeysymForKeycode).
func KeycodeForKeysym(d *Session, keysym int) uint {
	return uint(C.x11_keysymToKeycodeRev(d.data, C.int(keysym)))
}
