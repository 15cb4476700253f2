package theory

import (
	"fmt"
	"strings"
)

// Mode is a rotation of the major scale step pattern
type Mode struct {
	Name  string
	Index int // rotation offset into the major step pattern
}

func (m Mode) String() string {
	return m.Name
}

// Modes is ordered brightest to darkest, which is not Index order
var Modes = [7]Mode{
	{Name: "Lydian", Index: 3},
	{Name: "Major / Ionian", Index: 0},
	{Name: "Mixolydian", Index: 4},
	{Name: "Dorian", Index: 1},
	{Name: "N Minor / Aeolian", Index: 5},
	{Name: "Phrygian", Index: 2},
	{Name: "Locrian", Index: 6},
}

// ModeAt returns the mode at table position i (0-6).
// Panics if i is out of range.
func ModeAt(i int) Mode {
	if i < 0 || i >= len(Modes) {
		panic(fmt.Sprintf("theory: mode position %d out of range [0, %d)", i, len(Modes)))
	}
	return Modes[i]
}

// ModeByIndex returns the mode with the given rotation offset.
// Panics if no mode has that offset.
func ModeByIndex(index int) Mode {
	for _, m := range Modes {
		if m.Index == index {
			return m
		}
	}
	panic(fmt.Sprintf("theory: mode index %d out of range [0, %d)", index, len(Modes)))
}

// Position returns the table position of m, or -1
func (m Mode) Position() int {
	for i, other := range Modes {
		if other == m {
			return i
		}
	}
	return -1
}

// ParseMode resolves a mode by full name or by either half of a
// two-part name, so "major", "ionian" and "Major / Ionian" all match
func ParseMode(name string) (Mode, error) {
	name = strings.TrimSpace(name)
	for _, m := range Modes {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
		for _, part := range strings.Split(m.Name, "/") {
			part = strings.TrimSpace(part)
			if strings.EqualFold(part, name) || strings.EqualFold(strings.TrimPrefix(part, "N "), name) {
				return m, nil
			}
		}
	}
	return Mode{}, fmt.Errorf("mode %q: %w", name, ErrUnknownName)
}
