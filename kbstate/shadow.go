package kbstate

import "github.com/inputkit/inputkit/event"

// ShadowModifiers tracks which modifier keys are currently held, purely
// from the press/release events capture observes — independent of
// whatever the OS itself reports via GetKeyState/flags, so a hook that
// starts mid-chord still converges to the correct state once all keys
// involved have been seen at least once.
type ShadowModifiers struct {
	shiftLeft, shiftRight   bool
	ctrlLeft, ctrlRight     bool
	alt, altGr              bool
	metaLeft, metaRight     bool
}

// Add folds a key event into the tracked state.
func (s *ShadowModifiers) Add(kind event.Kind, key event.Key) {
	down := kind == event.KeyPress || kind == event.KeyPressRaw
	switch key {
	case event.KeyShiftLeft:
		s.shiftLeft = down
	case event.KeyShiftRight:
		s.shiftRight = down
	case event.KeyControlLeft:
		s.ctrlLeft = down
	case event.KeyControlRight:
		s.ctrlRight = down
	case event.KeyAlt:
		s.alt = down
	case event.KeyAltGr:
		s.altGr = down
	case event.KeyMetaLeft:
		s.metaLeft = down
	case event.KeyMetaRight:
		s.metaRight = down
	}
}

// Modifiers renders the current shadow state as a portable bitmask.
func (s *ShadowModifiers) Modifiers() event.Modifiers {
	var m event.Modifiers
	if s.shiftLeft || s.shiftRight {
		m |= event.ModShift
	}
	if s.ctrlLeft || s.ctrlRight {
		m |= event.ModCtrl
	}
	if s.alt || s.altGr {
		m |= event.ModAlt
	}
	if s.metaLeft || s.metaRight {
		m |= event.ModSuper
	}
	return m
}
