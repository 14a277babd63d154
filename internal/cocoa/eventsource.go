//go:build darwin

package cocoa

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices

#include <ApplicationServices/ApplicationServices.h>

static CGEventSourceRef cocoa_newHIDSource(void) {
	return CGEventSourceCreate(kCGEventSourceStateHIDSystemState);
}

static CGEventRef cocoa_newKeyEvent(CGEventSourceRef src, CGKeyCode vk, int down) {
	return CGEventCreateKeyboardEvent(src, vk, down ? true : false);
}

static CGEventRef cocoa_newMouseEvent(CGEventSourceRef src, CGEventType type, double x, double y, CGMouseButton button) {
	return CGEventCreateMouseEvent(src, type, CGPointMake(x, y), button);
}

static CGEventRef cocoa_newScrollEvent(CGEventSourceRef src, int32_t dx, int32_t dy) {
	return CGEventCreateScrollWheelEvent(src, kCGScrollEventUnitPixel, 2, dy, dx);
}

static void cocoa_setFlags(CGEventRef ev, CGEventFlags flags) {
	CGEventSetFlags(ev, flags);
}

static void cocoa_setSourceUserData(CGEventRef ev, int64_t v) {
	CGEventSetIntegerValueField(ev, kCGEventSourceUserData, v);
}

static void cocoa_post(CGEventRef ev) {
	CGEventPost(kCGSessionEventTap, ev);
	CFRelease(ev);
}

static void cocoa_currentMouseLocation(double *x, double *y) {
	CGEventRef ev = CGEventCreate(NULL);
	CGPoint pt = CGEventGetLocation(ev);
	CFRelease(ev);
	*x = pt.x;
	*y = pt.y;
}

static void cocoa_displaySize(uint64_t *w, uint64_t *h) {
	CGDirectDisplayID display = CGMainDisplayID();
	*w = (uint64_t)CGDisplayPixelsWide(display);
	*h = (uint64_t)CGDisplayPixelsHigh(display);
}
*/
import "C"

// EventSource wraps a CGEventSourceRef created against the HID system
// state, the source spec.md §4.E names for synthesized keyboard and
// mouse events.
type EventSource struct {
	ref C.CGEventSourceRef
}

// NewHIDEventSource creates a CGEventSource backed by the HID system
// state, matching the state id the capture engine's synthetic-detection
// rule checks events against (spec.md §4.D dispatch rule 1).
func NewHIDEventSource() *EventSource {
	return &EventSource{ref: C.cocoa_newHIDSource()}
}

// Release frees the underlying CGEventSourceRef.
func (s *EventSource) Release() {
	if s.ref != nil {
		C.CFRelease(C.CFTypeRef(s.ref))
		s.ref = nil
	}
}

// PostKeyEvent synthesizes and posts a keyboard event, with flags set to
// the caller's current latched-modifier bitmask and userData stamped so
// a cooperating capturer can classify it as synthetic.
func PostKeyEvent(s *EventSource, keycode uint16, down bool, flags uint64, userData int64) {
	ev := C.cocoa_newKeyEvent(s.ref, C.CGKeyCode(keycode), boolToInt(down))
	if ev == nil {
		return
	}
	C.cocoa_setFlags(ev, C.CGEventFlags(flags))
	C.cocoa_setSourceUserData(ev, C.int64_t(userData))
	C.cocoa_post(ev)
}

// CGEventType values this package's mouse-event helpers need; kept local
// rather than importing from the capture package to avoid a dependency
// cycle between capture and simulate.
const (
	CGEventLeftMouseDown   = 1
	CGEventLeftMouseUp     = 2
	CGEventRightMouseDown  = 3
	CGEventRightMouseUp    = 4
	CGEventMouseMoved      = 5
	CGEventOtherMouseDown  = 25
	CGEventOtherMouseUp    = 26
)

// PostMouseEvent synthesizes and posts a mouse button/move event at
// (x, y) for the given CGMouseButton (0=left, 1=right, 2=other).
func PostMouseEvent(s *EventSource, cgType uint32, x, y float64, button uint32, userData int64) {
	ev := C.cocoa_newMouseEvent(s.ref, C.CGEventType(cgType), C.double(x), C.double(y), C.CGMouseButton(button))
	if ev == nil {
		return
	}
	C.cocoa_setSourceUserData(ev, C.int64_t(userData))
	C.cocoa_post(ev)
}

// PostScrollEvent synthesizes and posts a two-axis pixel-unit scroll.
func PostScrollEvent(s *EventSource, dx, dy int32, userData int64) {
	ev := C.cocoa_newScrollEvent(s.ref, C.int32_t(dx), C.int32_t(dy))
	if ev == nil {
		return
	}
	C.cocoa_setSourceUserData(ev, C.int64_t(userData))
	C.cocoa_post(ev)
}

// CurrentMouseLocation reads the current cursor position from the OS,
// used by button synthesis (spec.md §4.E).
func CurrentMouseLocation() (x, y float64) {
	var cx, cy C.double
	C.cocoa_currentMouseLocation(&cx, &cy)
	return float64(cx), float64(cy)
}

// DisplaySize returns the main display's pixel dimensions.
func DisplaySize() (width, height uint64) {
	var w, h C.uint64_t
	C.cocoa_displaySize(&w, &h)
	return uint64(w), uint64(h)
}

func boolToInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
