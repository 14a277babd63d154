//go:build darwin

package capture

import (
	"testing"

	"github.com/inputkit/inputkit/event"
	"github.com/inputkit/inputkit/kbstate"
)

func newTestDarwinSession(t *testing.T, mode Mode) (*darwinSession, *[]event.Event) {
	t.Helper()
	sess, errKind := Begin(mode, mode == ModeGrab)
	if errKind != ErrNone {
		t.Fatalf("Begin: %v", errKind)
	}
	t.Cleanup(func() {
		sessionMu.Lock()
		listenLive.Store(false)
		grabLive.Store(false)
		active.Store(nil)
		sessionMu.Unlock()
	})

	var got []event.Event
	sess.SetCallback(func(e event.Event) *event.Event {
		got = append(got, e)
		return &e
	}, nil)

	return &darwinSession{session: sess, translator: kbstate.NewDarwinTranslator()}, &got
}

// TestFlagsChangedPressThenRelease locks in the documented LAST_FLAGS
// state machine: dispatch decides press/release purely by whether the
// whole flags word increased or decreased against the previous value,
// not by inspecting individual bits.
func TestFlagsChangedPressThenRelease(t *testing.T) {
	const kVKShift = 0x38
	ds, got := newTestDarwinSession(t, ModeListen)

	ds.dispatchFlagsChanged(event.Event{}, kVKShift, 0x20000) // flags rose: press
	if len(*got) != 2 {
		t.Fatalf("press: dispatched %d events, want 2 (raw+cooked)", len(*got))
	}
	if (*got)[1].Type.Kind != event.KeyPress {
		t.Errorf("press cooked kind = %v, want KeyPress", (*got)[1].Type.Kind)
	}

	*got = nil
	ds.dispatchFlagsChanged(event.Event{}, kVKShift, 0x0) // flags fell: release
	if len(*got) != 2 {
		t.Fatalf("release: dispatched %d events, want 2", len(*got))
	}
	if (*got)[1].Type.Kind != event.KeyRelease {
		t.Errorf("release cooked kind = %v, want KeyRelease", (*got)[1].Type.Kind)
	}
}

// TestSyntheticMarkerRoundTrip exercises boundary scenario 3 (spec.md
// §8): a CGEvent whose source user-data carries this library's own
// synthetic marker is flagged IsSynthetic even when its source state id
// otherwise matches the physical HID system.
func TestSyntheticMarkerRoundTrip(t *testing.T) {
	const kVKANSIA = 0x00
	ds, got := newTestDarwinSession(t, ModeListen)

	const typeKeyDown = 10
	ds.dispatch(typeKeyDown, kVKANSIA, 0, 0, 0, 0, 0, 0, int64(syntheticMarker), hidSystemStateID)
	if len(*got) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(*got))
	}
	for _, e := range *got {
		if !e.IsSynthetic {
			t.Errorf("event %+v not flagged synthetic despite marker user-data", e)
		}
	}
}

func TestHardwareOriginatedEventIsNotSynthetic(t *testing.T) {
	const kVKANSIA = 0x00
	ds, got := newTestDarwinSession(t, ModeListen)

	const typeKeyDown = 10
	ds.dispatch(typeKeyDown, kVKANSIA, 0, 0, 0, 0, 0, 0, 0, hidSystemStateID)
	for _, e := range *got {
		if e.IsSynthetic {
			t.Errorf("event %+v flagged synthetic for ordinary hardware input", e)
		}
	}
}

// TestGrabSuppressesOnNilCallbackResult exercises Grab-mode suppression:
// when the user callback returns nil, the originating native event must
// be suppressed (dispatch reports 1).
func TestGrabSuppressesOnNilCallbackResult(t *testing.T) {
	sess, errKind := Begin(ModeGrab, false)
	if errKind != ErrNone {
		t.Fatalf("Begin: %v", errKind)
	}
	defer func() {
		sessionMu.Lock()
		grabLive.Store(false)
		active.Store(nil)
		sessionMu.Unlock()
	}()
	sess.SetCallback(func(event.Event) *event.Event { return nil }, nil)

	ds := &darwinSession{session: sess}
	const kVKANSIA, typeKeyDown = 0x00, 10
	if got := ds.dispatch(typeKeyDown, kVKANSIA, 0, 0, 0, 0, 0, 0, 0, hidSystemStateID); got != 1 {
		t.Errorf("dispatch() = %d, want 1 (suppress)", got)
	}
}

// TestGrabSuppressesWhenOnlyRawVariantReturnsNil locks in spec.md §8's
// suppression monotonicity rule: suppression must trigger if the callback
// returns none for *any* portable event derived from one native event,
// including the raw variant, even when the cooked variant passes through.
func TestGrabSuppressesWhenOnlyRawVariantReturnsNil(t *testing.T) {
	sess, errKind := Begin(ModeGrab, false)
	if errKind != ErrNone {
		t.Fatalf("Begin: %v", errKind)
	}
	defer func() {
		sessionMu.Lock()
		grabLive.Store(false)
		active.Store(nil)
		sessionMu.Unlock()
	}()
	sess.SetCallback(func(e event.Event) *event.Event {
		if e.Type.Kind.IsRaw() {
			return nil
		}
		return &e
	}, nil)

	ds := &darwinSession{session: sess}
	const kVKANSIA, typeKeyDown = 0x00, 10
	if got := ds.dispatch(typeKeyDown, kVKANSIA, 0, 0, 0, 0, 0, 0, 0, hidSystemStateID); got != 1 {
		t.Errorf("dispatch() = %d, want 1 (suppress on raw-only nil)", got)
	}
}
