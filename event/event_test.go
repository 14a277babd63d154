package event

import "testing"

func TestKindIsRaw(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KeyPress, false},
		{KeyRelease, false},
		{ButtonPress, false},
		{ButtonRelease, false},
		{MouseMove, false},
		{Wheel, false},
		{KeyPressRaw, true},
		{KeyReleaseRaw, true},
		{ButtonPressRaw, true},
		{ButtonReleaseRaw, true},
		{MouseMoveRaw, true},
		{WheelRaw, true},
	}
	for _, c := range cases {
		if got := c.kind.IsRaw(); got != c.want {
			t.Errorf("%v.IsRaw() = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := KeyPress.String(); got != "KeyPress" {
		t.Errorf("KeyPress.String() = %q, want %q", got, "KeyPress")
	}
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("Kind(999).String() = %q, want %q", got, "Unknown")
	}
}

func TestKeyStringFallsBackForUnnamed(t *testing.T) {
	if got := KeyA.String(); got != "KeyA" {
		t.Errorf("KeyA.String() = %q, want %q", got, "KeyA")
	}
	if got := Key(-1).String(); got == "" {
		t.Error("Key(-1).String() returned empty string")
	}
}

func TestRawKeyString(t *testing.T) {
	r := RawKey{Kind: RawLinuxKeycode, Code: 42}
	if got := r.String(); got != "LinuxKeycode(42)" {
		t.Errorf("RawKey.String() = %q, want %q", got, "LinuxKeycode(42)")
	}
	if got := (RawKey{}).String(); got != "RawKey(none)" {
		t.Errorf("zero RawKey.String() = %q, want %q", got, "RawKey(none)")
	}
}
