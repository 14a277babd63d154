//go:build darwin

package kbstate

/*
#cgo CFLAGS: -Werror -Wno-deprecated-declarations -x objective-c
#cgo LDFLAGS: -framework Carbon -framework ApplicationServices

#include <stdint.h>
#include <Carbon/Carbon.h>
#include <dispatch/dispatch.h>

extern void kbstate_dispatchTrampoline(uintptr_t handle);

static void kbstate_dispatchToMain(uintptr_t handle) {
	dispatch_async(dispatch_get_main_queue(), ^{
		kbstate_dispatchTrampoline(handle);
	});
}

// kbstate_translate runs UCKeyTranslate for the current keyboard layout.
// It must only be called on the main thread: TIS* input-source APIs are
// not thread-safe off it. deadState is read and written in place, exactly
// mirroring UCKeyTranslate's own dead-key-state contract.
static OSStatus kbstate_translate(uint16_t code, uint32_t modifierState, uint32_t *deadState,
                                   UniChar *buf, int bufLen, int *outLen) {
	TISInputSourceRef keyboard = TISCopyCurrentKeyboardInputSource();
	CFDataRef layoutData = NULL;
	if (keyboard) {
		layoutData = (CFDataRef)TISGetInputSourceProperty(keyboard, kTISPropertyUnicodeKeyLayoutData);
	}
	if (!layoutData) {
		if (keyboard) CFRelease(keyboard);
		keyboard = TISCopyCurrentKeyboardLayoutInputSource();
		if (keyboard) {
			layoutData = (CFDataRef)TISGetInputSourceProperty(keyboard, kTISPropertyUnicodeKeyLayoutData);
		}
	}
	if (!layoutData) {
		if (keyboard) CFRelease(keyboard);
		keyboard = TISCopyCurrentASCIICapableKeyboardLayoutInputSource();
		if (keyboard) {
			layoutData = (CFDataRef)TISGetInputSourceProperty(keyboard, kTISPropertyUnicodeKeyLayoutData);
		}
	}
	if (!layoutData) {
		if (keyboard) CFRelease(keyboard);
		return -1;
	}
	const UCKeyboardLayout *layout = (const UCKeyboardLayout *)CFDataGetBytePtr(layoutData);
	UniCharCount actual = 0;
	// Passing 0 (no kUCKeyTranslateNoDeadKeysMask) lets dead-key
	// composition run normally, matching a live keyboard.
	OSStatus status = UCKeyTranslate(layout, code, kUCKeyActionDown, modifierState,
		LMGetKbdType(), 0, deadState,
		(UniCharCount)bufLen, &actual, buf);
	*outLen = (int)actual;
	CFRelease(keyboard);
	return status;
}

// kbstate_isISOKeyboard reports whether the physical keyboard is an ISO
// layout, which is what disambiguates the dual-use keycode 0x0A
// (ANSI grave-quote vs ISO section/plus-minus).
static int kbstate_isISOKeyboard(void) {
	return KBGetLayoutType(LMGetKbdType()) == kKeyboardISO ? 1 : 0;
}
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/inputkit/inputkit/event"
)

// DarwinTranslator reproduces the key-down translation a macOS CGEventTap
// backend needs: accumulated shift/option/caps-lock state feeding
// UCKeyTranslate's modifier-state argument, and a running dead-key state
// word threaded through successive calls so multi-keystroke compositions
// (e.g. Option-E then E -> é) resolve correctly.
type DarwinTranslator struct {
	mu        sync.Mutex
	deadState uint32
	shift     bool
	option    bool
	capsLock  bool
}

// NewDarwinTranslator returns a translator with clean modifier and
// dead-key state, matching a freshly attached session.
func NewDarwinTranslator() *DarwinTranslator {
	return &DarwinTranslator{}
}

// CGEventFlags bits this package needs to decide whether a keypress
// should be translated at all. These mirror Carbon's cmdKey/controlKey
// masks as CGEventGetFlags reports them, not the shifted modifierState
// bits UCKeyTranslate consumes.
const (
	FlagCommand = 1 << 20
	FlagControl = 1 << 18
)

// Add updates tracked shift/option/caps-lock state from a key event and,
// for a plain KeyPress with no Command or Control held, returns the
// Unicode text (or pending dead-key marker) UCKeyTranslate produces for
// the current layout. A chorded Cmd/Ctrl keypress and forward-delete
// never produce translatable text, matching the original's behavior of
// skipping get_unicode for those cases.
func (t *DarwinTranslator) Add(kind event.Kind, key event.Key, platformCode uint32, flags uint64) *event.UnicodeText {
	t.mu.Lock()
	switch key {
	case event.KeyShiftLeft, event.KeyShiftRight:
		t.shift = kind == event.KeyPress
		t.mu.Unlock()
		return nil
	case event.KeyAlt, event.KeyAltGr:
		t.option = kind == event.KeyPress
		t.mu.Unlock()
		return nil
	case event.KeyCapsLock:
		if kind == event.KeyPress {
			t.capsLock = !t.capsLock
		}
		t.mu.Unlock()
		return nil
	case event.KeyDelete:
		t.mu.Unlock()
		return nil
	}
	if kind != event.KeyPress {
		t.mu.Unlock()
		return nil
	}
	if flags&(FlagCommand|FlagControl) != 0 {
		t.mu.Unlock()
		return nil
	}
	modState := modifierState(t.shift, t.option, t.capsLock)
	dead := t.deadState
	t.mu.Unlock()

	text, newDead, ok := translateOnMainThread(platformCode, modState, dead)
	if !ok {
		return nil
	}
	t.mu.Lock()
	t.deadState = newDead
	t.mu.Unlock()
	return text
}

// IsDead reports whether a dead-key composition is currently pending.
func (t *DarwinTranslator) IsDead() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deadState != 0
}

// IsISOLayout reports whether the physical keyboard attached is an ISO
// layout, resolving the keycode-0x0A grave/section ambiguity for
// keycode.FromDarwinVK.
func IsISOLayout() bool {
	return C.kbstate_isISOKeyboard() != 0
}

// modifierState mirrors the original implementation's hand-rolled
// Carbon modifier-bit packing: UCKeyTranslate wants the modifier byte
// shifted into bits 8-15 of its own tiny state space, not the raw
// cmdKey/shiftKey/optionKey/controlKey bit positions.
func modifierState(shift, option, capsLock bool) uint32 {
	const (
		shiftKey  = 1 << 9
		alphaLock = 1 << 10
		optionKey = 1 << 11
	)
	var m uint32
	if option {
		m |= optionKey
	}
	if capsLock || shift {
		m |= shiftKey
		if capsLock {
			m |= alphaLock
		}
	}
	return (m >> 8) & 0xFF
}

var (
	pendingMu      sync.Mutex
	pendingResults = map[cgo.Handle]chan uint32{}
)

// translateOnMainThread dispatches the UCKeyTranslate call to the
// application main thread and waits up to 100ms, matching the bounded
// dead-key-translation timeout used upstream: a hang in the dispatch
// queue must not freeze the capture hot path.
func translateOnMainThread(code, modState, deadState uint32) (*event.UnicodeText, uint32, bool) {
	resultCh := make(chan mainThreadResult, 1)
	req := &mainThreadRequest{code: code, modState: modState, deadState: deadState, result: resultCh}
	h := cgo.NewHandle(req)
	defer h.Delete()

	C.kbstate_dispatchToMain(C.uintptr_t(h))

	select {
	case res := <-resultCh:
		return res.text, res.deadState, true
	case <-time.After(100 * time.Millisecond):
		logf("kbstate: timed out waiting for main-thread Unicode translation")
		return nil, deadState, false
	}
}

type mainThreadRequest struct {
	code      uint32
	modState  uint32
	deadState uint32
	result    chan mainThreadResult
}

type mainThreadResult struct {
	text      *event.UnicodeText
	deadState uint32
}

//export kbstate_dispatchTrampoline
func kbstate_dispatchTrampoline(handle C.uintptr_t) {
	h := cgo.Handle(handle)
	req := h.Value().(*mainThreadRequest)

	var buf [4]C.UniChar
	var outLen C.int
	deadState := C.uint32_t(req.deadState)
	status := C.kbstate_translate(C.uint16_t(req.code), C.uint32_t(req.modState), &deadState, &buf[0], 4, &outLen)

	newDead := uint32(deadState)
	if status != 0 {
		req.result <- mainThreadResult{text: nil, deadState: newDead}
		return
	}
	if outLen == 0 {
		if newDead != 0 {
			req.result <- mainThreadResult{text: &event.UnicodeText{IsDead: true}, deadState: newDead}
		} else {
			req.result <- mainThreadResult{text: nil, deadState: newDead}
		}
		return
	}

	units := make([]uint16, int(outLen))
	for i := range units {
		units[i] = uint16(buf[i])
	}
	// Drop C0 control characters, matching the original's filter against
	// stray control codes UCKeyTranslate occasionally emits for unmapped
	// modifier combinations.
	if len(units) == 1 && units[0] >= 1 && units[0] <= 0x1f {
		req.result <- mainThreadResult{text: nil, deadState: newDead}
		return
	}

	name := string(utf16.Decode(units))
	req.result <- mainThreadResult{
		text:      &event.UnicodeText{Name: name, Codepoints: units, IsDead: false},
		deadState: newDead,
	}
}
