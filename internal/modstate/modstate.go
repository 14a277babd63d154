// Package modstate holds the single process-wide atomic modifier-flags
// word capture/darwin.go's FlagsChanged handler maintains and
// simulate/darwin.go's key synthesis reads, so a synthesized key event
// carries the same latched Shift/Option/Command/Control state a real
// keystroke would (spec.md §4.E "apply the current latched modifier
// flags on macOS"). A tiny shared package avoids an import cycle between
// capture and simulate.
package modstate

import "sync/atomic"

var flags atomic.Uint64

// Store records the most recently observed raw CGEventFlags word.
func Store(f uint64) { flags.Store(f) }

// Load returns the most recently stored flags word, or 0 before any
// FlagsChanged event has been observed.
func Load() uint64 { return flags.Load() }
