package event

import "strings"

// Modifiers is a bitmask of modifier keys held at the time of an event.
// The bit layout and String rendering follow the teacher's key.Modifiers
// (gioui.org/io/key) almost verbatim.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModSuper // the "windows"/"command" key
)

func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "-")
}
