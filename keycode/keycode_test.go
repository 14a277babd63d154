package keycode

import (
	"testing"

	"github.com/inputkit/inputkit/event"
)

// commonKeys is the subset of the Key enum every per-OS table names,
// used to check each table round-trips without relying on platform-
// specific coverage (e.g. Windows has no KeyFunction, macOS has no
// KeyPrintScreen).
var commonKeys = []event.Key{
	event.KeyA, event.KeyB, event.KeyZ,
	event.Key0, event.Key5, event.Key9,
	event.KeyReturn, event.KeyTab, event.KeySpace, event.KeyEscape,
	event.KeyBackspace, event.KeyDelete,
	event.KeyLeftArrow, event.KeyRightArrow, event.KeyUpArrow, event.KeyDownArrow,
	event.KeyHome, event.KeyEnd, event.KeyPageUp, event.KeyPageDown,
	event.KeyShiftLeft, event.KeyShiftRight,
	event.KeyControlLeft, event.KeyControlRight,
	event.KeyAlt, event.KeyAltGr,
	event.KeyMetaLeft, event.KeyMetaRight,
	event.KeyCapsLock,
	event.KeyF1, event.KeyF5, event.KeyF12, event.KeyF19,
	event.KeyBackQuote, event.KeyMinus, event.KeyEqual,
	event.KeyLeftBracket, event.KeyRightBracket, event.KeyBackSlash,
	event.KeySemiColon, event.KeyQuote, event.KeyComma, event.KeyDot, event.KeySlash,
	event.KeyVolumeUp, event.KeyVolumeDown, event.KeyVolumeMute,
}

func TestWindowsRoundTrip(t *testing.T) {
	for _, k := range commonKeys {
		vk, ok := ToWindowsVK(k)
		if !ok {
			t.Errorf("ToWindowsVK(%v): no mapping", k)
			continue
		}
		got, ok := FromWindowsVK(vk)
		if !ok {
			t.Errorf("FromWindowsVK(%#x): no mapping (from %v)", vk, k)
			continue
		}
		if got != k {
			t.Errorf("round trip %v -> %#x -> %v, want %v", k, vk, got, k)
		}
	}
}

func TestDarwinRoundTrip(t *testing.T) {
	for _, k := range commonKeys {
		vk, ok := ToDarwinVK(k, false)
		if !ok {
			t.Errorf("ToDarwinVK(%v): no mapping", k)
			continue
		}
		got, ok := FromDarwinVK(vk, false)
		if !ok {
			t.Errorf("FromDarwinVK(%#x): no mapping (from %v)", vk, k)
			continue
		}
		if got != k {
			t.Errorf("round trip %v -> %#x -> %v, want %v", k, vk, got, k)
		}
	}
}

func TestLinuxRoundTrip(t *testing.T) {
	for _, k := range commonKeys {
		sym, ok := ToX11Keysym(k)
		if !ok {
			t.Errorf("ToX11Keysym(%v): no mapping", k)
			continue
		}
		got, ok := FromX11Keysym(sym)
		if !ok {
			t.Errorf("FromX11Keysym(%#x): no mapping (from %v)", sym, k)
			continue
		}
		if got != k {
			t.Errorf("round trip %v -> %#x -> %v, want %v", k, sym, got, k)
		}
	}
}

func TestWindowsAlnumRange(t *testing.T) {
	for vk := uint32('A'); vk <= 'Z'; vk++ {
		k, ok := FromWindowsVK(vk)
		if !ok || k < event.KeyA || k > event.KeyZ {
			t.Errorf("FromWindowsVK(%q) = %v, ok=%v", rune(vk), k, ok)
		}
	}
}

// TestDarwinISOGraveSwap locks in spec.md §8 boundary scenario 6: on an
// ISO keyboard kVK_ISO_Section reads as BackQuote; on ANSI it passes
// through unchanged as IntlBackslash (no swap).
func TestDarwinISOGraveSwap(t *testing.T) {
	const isoSection = 0x0A
	ansi, ok := FromDarwinVK(isoSection, false)
	if !ok || ansi != event.KeyIntlBackslash {
		t.Errorf("FromDarwinVK(isoSection, ansi) = %v, ok=%v, want KeyIntlBackslash", ansi, ok)
	}
	iso, ok := FromDarwinVK(isoSection, true)
	if !ok || iso != event.KeyBackQuote {
		t.Errorf("FromDarwinVK(isoSection, iso) = %v, ok=%v, want KeyBackQuote", iso, ok)
	}
}

func TestDarwinISOGraveSwapInverse(t *testing.T) {
	const isoSection = 0x0A
	vk, ok := ToDarwinVK(event.KeyBackQuote, true)
	if !ok || vk != isoSection {
		t.Errorf("ToDarwinVK(BackQuote, iso) = %#x, ok=%v, want %#x", vk, ok, isoSection)
	}
	vk, ok = ToDarwinVK(event.KeyIntlBackslash, false)
	if !ok || vk != isoSection {
		t.Errorf("ToDarwinVK(IntlBackslash, ansi) = %#x, ok=%v, want %#x", vk, ok, isoSection)
	}
}

func TestLinuxLowerAndUpperCaseAlphaMapToSameKey(t *testing.T) {
	lower, ok := FromX11Keysym('a')
	if !ok {
		t.Fatal("FromX11Keysym('a'): no mapping")
	}
	upper, ok := FromX11Keysym('A')
	if !ok {
		t.Fatal("FromX11Keysym('A'): no mapping")
	}
	if lower != upper || lower != event.KeyA {
		t.Errorf("FromX11Keysym('a')=%v FromX11Keysym('A')=%v, want both KeyA", lower, upper)
	}
}

func TestUnknownCodesReportNotOK(t *testing.T) {
	if _, ok := FromWindowsVK(0xFFFF); ok {
		t.Error("FromWindowsVK(0xFFFF) unexpectedly ok")
	}
	if _, ok := FromDarwinVK(0xFF, false); ok {
		t.Error("FromDarwinVK(0xFF) unexpectedly ok")
	}
	if _, ok := FromX11Keysym(0xFFFFFFFF); ok {
		t.Error("FromX11Keysym(0xFFFFFFFF) unexpectedly ok")
	}
}
