//go:build windows

package capture

import (
	"syscall"
	"testing"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/internal/winapi"
	"github.com/inputkit/inputkit/kbstate"
)

func TestButtonForMapsWin32Messages(t *testing.T) {
	cases := []struct {
		msg  uint32
		want string
	}{
		{winapi.WMLButtonDown, "Left"},
		{winapi.WMLButtonUp, "Left"},
		{winapi.WMRButtonDown, "Right"},
		{winapi.WMRButtonUp, "Right"},
		{winapi.WMMButtonDown, "Middle"},
		{winapi.WMMButtonUp, "Middle"},
	}
	for _, c := range cases {
		if got := buttonFor(c.msg).String(); got != c.want {
			t.Errorf("buttonFor(%#x) = %v, want %v", c.msg, got, c.want)
		}
	}
}

func TestErrnoCodeExtractsSyscallErrno(t *testing.T) {
	if got := errnoCode(syscall.ERROR_ACCESS_DENIED); got != uint32(syscall.ERROR_ACCESS_DENIED) {
		t.Errorf("errnoCode(ERROR_ACCESS_DENIED) = %d, want %d", got, uint32(syscall.ERROR_ACCESS_DENIED))
	}
	if got := errnoCode(nil); got != 0 {
		t.Errorf("errnoCode(nil) = %d, want 0", got)
	}
}

// TestTouchpadScrollThresholdAndScale locks in the spec's two-finger
// scroll rule: a contact move under the +/-5 unit threshold on both axes
// produces no event, and a qualifying move is scaled by 0.01 with the Y
// axis inverted (boundary scenario 4, spec.md §8).
func TestTouchpadScrollThresholdAndScale(t *testing.T) {
	if _, ok := touchpadScrollDelta(103, 104, 100, 100); ok {
		t.Fatal("sub-threshold move produced an event, want none")
	}

	got, ok := touchpadScrollDelta(0, 20, 0, 0)
	if !ok {
		t.Fatal("qualifying move produced no event")
	}
	if got.Kind != event.WheelRaw {
		t.Fatalf("kind = %v, want WheelRaw", got.Kind)
	}
	if got.DX != 0 || got.DY != -0.20 {
		t.Fatalf("delta = (%v, %v), want (0, -0.20)", got.DX, got.DY)
	}
}

func TestTouchpadScrollThresholdBoundaryIsExclusive(t *testing.T) {
	if _, ok := touchpadScrollDelta(5, 0, 0, 0); ok {
		t.Fatal("dx exactly at threshold produced an event, want none (threshold is strict >)")
	}
	if _, ok := touchpadScrollDelta(6, 0, 0, 0); !ok {
		t.Fatal("dx just past threshold produced no event")
	}
}

func newTestWindowsSession(t *testing.T, cb Callback) *windowsSession {
	t.Helper()
	sess, errKind := Begin(ModeGrab, false)
	if errKind != ErrNone {
		t.Fatalf("Begin: %v", errKind)
	}
	t.Cleanup(func() {
		sessionMu.Lock()
		grabLive.Store(false)
		active.Store(nil)
		sessionMu.Unlock()
	})
	sess.SetCallback(cb, nil)
	return &windowsSession{session: sess, translator: kbstate.NewWindowsTranslator()}
}

// TestHandleKeyboardMessageSuppressesWhenOnlyRawVariantReturnsNil locks in
// spec.md §8's suppression monotonicity rule: a grab callback that
// suppresses only the raw KeyPressRaw variant must still suppress the
// underlying native key event, even though the cooked variant passed
// through.
func TestHandleKeyboardMessageSuppressesWhenOnlyRawVariantReturnsNil(t *testing.T) {
	ws := newTestWindowsSession(t, func(e event.Event) *event.Event {
		if e.Type.Kind.IsRaw() {
			return nil
		}
		return &e
	})
	hk := &winapi.KBDLLHOOKSTRUCT{VKCode: 0x41, ScanCode: 0x1E}
	if suppress := ws.handleKeyboardMessage(winapi.WMKeyDown, hk); !suppress {
		t.Error("handleKeyboardMessage() = false, want true (suppress on raw-only nil)")
	}
}

// TestHandleMouseMessageSuppressesWhenOnlyRawVariantReturnsNil mirrors the
// keyboard case for a button message.
func TestHandleMouseMessageSuppressesWhenOnlyRawVariantReturnsNil(t *testing.T) {
	ws := newTestWindowsSession(t, func(e event.Event) *event.Event {
		if e.Type.Kind.IsRaw() {
			return nil
		}
		return &e
	})
	ms := &winapi.MSLLHOOKSTRUCT{}
	if suppress := ws.handleMouseMessage(winapi.WMLButtonDown, ms); !suppress {
		t.Error("handleMouseMessage() = false, want true (suppress on raw-only nil)")
	}
}
