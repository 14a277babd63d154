package kbstate

import (
	"testing"

	"github.com/inputkit/inputkit/event"
)

func TestShadowModifiersTracksPressAndRelease(t *testing.T) {
	var s ShadowModifiers

	if got := s.Modifiers(); got != 0 {
		t.Fatalf("initial Modifiers() = %v, want 0", got)
	}

	s.Add(event.KeyPress, event.KeyShiftLeft)
	if got := s.Modifiers(); got&event.ModShift == 0 {
		t.Errorf("after ShiftLeft press, Modifiers() = %v, want ModShift set", got)
	}

	s.Add(event.KeyRelease, event.KeyShiftLeft)
	if got := s.Modifiers(); got&event.ModShift != 0 {
		t.Errorf("after ShiftLeft release, Modifiers() = %v, want ModShift clear", got)
	}
}

func TestShadowModifiersEitherSideHoldsModifier(t *testing.T) {
	var s ShadowModifiers
	s.Add(event.KeyPress, event.KeyControlLeft)
	s.Add(event.KeyPress, event.KeyControlRight)
	s.Add(event.KeyRelease, event.KeyControlLeft)

	if got := s.Modifiers(); got&event.ModCtrl == 0 {
		t.Errorf("right Ctrl still held, Modifiers() = %v, want ModCtrl set", got)
	}

	s.Add(event.KeyRelease, event.KeyControlRight)
	if got := s.Modifiers(); got&event.ModCtrl != 0 {
		t.Errorf("both Ctrls released, Modifiers() = %v, want ModCtrl clear", got)
	}
}

func TestShadowModifiersAltAndAltGrBothSetModAlt(t *testing.T) {
	var s ShadowModifiers
	s.Add(event.KeyPress, event.KeyAltGr)
	if got := s.Modifiers(); got&event.ModAlt == 0 {
		t.Errorf("AltGr press, Modifiers() = %v, want ModAlt set", got)
	}
}

func TestShadowModifiersIgnoresNonModifierKeys(t *testing.T) {
	var s ShadowModifiers
	s.Add(event.KeyPress, event.KeyA)
	if got := s.Modifiers(); got != 0 {
		t.Errorf("non-modifier key press, Modifiers() = %v, want 0", got)
	}
}
