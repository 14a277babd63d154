package modstate

import "testing"

func TestLoadBeforeAnyStoreIsZero(t *testing.T) {
	// Reset to the documented pre-FlagsChanged state.
	Store(0)
	if got := Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}

func TestStoreThenLoadRoundTrips(t *testing.T) {
	Store(0x20106)
	if got := Load(); got != 0x20106 {
		t.Errorf("Load() = %#x, want %#x", got, 0x20106)
	}
	Store(0)
}
