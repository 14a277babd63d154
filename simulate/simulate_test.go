package simulate

import (
	"testing"

	"github.com/inputkit/inputkit/event"
)

func TestValidateRejectsRawVariants(t *testing.T) {
	rawKinds := []event.Kind{
		event.KeyPressRaw, event.KeyReleaseRaw,
		event.ButtonPressRaw, event.ButtonReleaseRaw,
		event.MouseMoveRaw, event.WheelRaw,
	}
	for _, k := range rawKinds {
		if err := validate(&event.EventType{Kind: k}); err == nil {
			t.Errorf("validate(%v) = nil, want errRaw", k)
		}
	}
}

func TestValidateAcceptsCookedVariants(t *testing.T) {
	cookedKinds := []event.Kind{
		event.KeyPress, event.KeyRelease,
		event.ButtonPress, event.ButtonRelease,
		event.MouseMove, event.Wheel,
	}
	for _, k := range cookedKinds {
		if err := validate(&event.EventType{Kind: k}); err != nil {
			t.Errorf("validate(%v) = %v, want nil", k, err)
		}
	}
}

func TestExtraInfoDefaultsToSharedSyntheticMarker(t *testing.T) {
	// Restore whatever a prior test in this binary may have set.
	defer SetMouseExtraInfo(syntheticMarker)
	defer SetKeyboardExtraInfo(syntheticMarker)

	if got := currentMouseExtraInfo(); got != syntheticMarker {
		t.Errorf("currentMouseExtraInfo() = %d, want %d", got, syntheticMarker)
	}
	if got := currentKeyboardExtraInfo(); got != syntheticMarker {
		t.Errorf("currentKeyboardExtraInfo() = %d, want %d", got, syntheticMarker)
	}
}

func TestSetExtraInfoOverridesMarker(t *testing.T) {
	defer SetMouseExtraInfo(syntheticMarker)
	defer SetKeyboardExtraInfo(syntheticMarker)

	SetMouseExtraInfo(42)
	SetKeyboardExtraInfo(7)
	if got := currentMouseExtraInfo(); got != 42 {
		t.Errorf("currentMouseExtraInfo() = %d, want 42", got)
	}
	if got := currentKeyboardExtraInfo(); got != 7 {
		t.Errorf("currentKeyboardExtraInfo() = %d, want 7", got)
	}
}

func TestErrorMessageIncludesReason(t *testing.T) {
	err := &Error{Reason: "no mapping"}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
	if (&Error{}).Error() == err.Error() {
		t.Error("Error() with and without a Reason produced the same message")
	}
}
