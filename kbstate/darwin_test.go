//go:build darwin

package kbstate

import (
	"testing"

	"github.com/inputkit/inputkit/event"
)

// TestAddSkipsTranslationWithCommandOrControl locks in spec.md §4.C:
// a keypress chorded with Command or Control never produces translated
// Unicode text, matching the original's skip of get_unicode for those
// modifiers.
func TestAddSkipsTranslationWithCommandOrControl(t *testing.T) {
	tr := NewDarwinTranslator()
	const kVKANSIS = 0x01
	if got := tr.Add(event.KeyPress, event.KeyS, kVKANSIS, FlagCommand); got != nil {
		t.Errorf("Add() with Command held = %+v, want nil", got)
	}
	if got := tr.Add(event.KeyPress, event.KeyS, kVKANSIS, FlagControl); got != nil {
		t.Errorf("Add() with Control held = %+v, want nil", got)
	}
}

// TestAddSuppressesForwardDelete locks in spec.md §4.C: forward-delete
// never runs translation.
func TestAddSuppressesForwardDelete(t *testing.T) {
	tr := NewDarwinTranslator()
	const kVKForwardDelete = 0x75
	if got := tr.Add(event.KeyPress, event.KeyDelete, kVKForwardDelete, 0); got != nil {
		t.Errorf("Add(KeyDelete) = %+v, want nil", got)
	}
}
