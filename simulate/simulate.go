// Package simulate is the synthesis engine (spec.md §4.E): it builds a
// native event record from a portable event.EventType and posts it into
// the OS input queue. It is the mirror image of package capture — capture
// decodes native events into portable ones, simulate encodes the reverse
// — and the two share package event, package keycode, package kbstate
// and, on macOS, the modifier-flags word in internal/modstate.
package simulate

import (
	"sync/atomic"

	"github.com/inputkit/inputkit/event"
)

// Error reports that a portable event could not be represented on the
// current OS. No OS call is issued when this is returned (spec.md §7).
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return "simulate: event could not be synthesized on this platform"
	}
	return "simulate: event could not be synthesized on this platform: " + e.Reason
}

// errRaw is returned for any *Raw EventType.Kind: raw variants report
// pre-acceleration device deltas with no OS API to post them back in
// (spec.md §4.E "raw-variant events are never synthesizable").
var errRaw = &Error{Reason: "raw event variants are not synthesizable"}

// mouseExtraInfo and keyboardExtraInfo are the process-wide marker words
// stamped onto every event this package posts, so a cooperating capturer
// in this or another process can classify it as synthetic (spec.md §3
// "two process-wide extra_data words"). They default to the shared
// syntheticMarker capture also recognizes.
var (
	mouseExtraInfo    atomic.Int64
	keyboardExtraInfo atomic.Int64
)

// syntheticMarker is the well-known dwExtraInfo/sourceUserData value the
// capture engine's synthetic-detection rule also checks for (spec.md §9:
// "do not fix it silently — preserve the diff-on-compare semantic").
const syntheticMarker int64 = 100

func init() {
	mouseExtraInfo.Store(syntheticMarker)
	keyboardExtraInfo.Store(syntheticMarker)
}

// SetMouseExtraInfo sets the marker word stamped onto synthesized mouse
// events.
func SetMouseExtraInfo(v int64) { mouseExtraInfo.Store(v) }

// SetKeyboardExtraInfo sets the marker word stamped onto synthesized
// keyboard events.
func SetKeyboardExtraInfo(v int64) { keyboardExtraInfo.Store(v) }

func currentMouseExtraInfo() int64    { return mouseExtraInfo.Load() }
func currentKeyboardExtraInfo() int64 { return keyboardExtraInfo.Load() }

// validate rejects raw variants before any per-OS code runs, matching
// spec.md §7 "no OS call is issued" on an unrepresentable event.
func validate(t *event.EventType) error {
	if t.Kind.IsRaw() {
		return errRaw
	}
	return nil
}
