//go:build linux

package capture

import (
	"testing"

	"github.com/inputkit/inputkit/event"
)

func TestButtonForX11MapsCoreButtons(t *testing.T) {
	cases := []struct {
		code int
		want event.Button
	}{
		{1, event.Left},
		{2, event.Middle},
		{3, event.Right},
	}
	for _, c := range cases {
		if got := buttonForX11(c.code); got != c.want {
			t.Errorf("buttonForX11(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestButtonForX11UnknownCodeIsPreserved(t *testing.T) {
	got := buttonForX11(9)
	if got.Kind() != event.ButtonUnknown {
		t.Errorf("buttonForX11(9).Kind() = %v, want ButtonUnknown", got.Kind())
	}
	if got.Code() != 9 {
		t.Errorf("buttonForX11(9).Code() = %d, want 9", got.Code())
	}
}
