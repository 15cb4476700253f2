package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned when a note or mode name matches no table entry
var ErrUnknownName = errors.New("unknown name")

// PitchClass is one of the 12 chromatic notes, independent of octave
type PitchClass struct {
	Name  string
	Index int
}

func (pc PitchClass) String() string {
	return pc.Name
}

// PitchClasses is the fixed chromatic table, sharps spelling
var PitchClasses = [12]PitchClass{
	{Name: "C", Index: 0},
	{Name: "C#", Index: 1},
	{Name: "D", Index: 2},
	{Name: "D#", Index: 3},
	{Name: "E", Index: 4},
	{Name: "F", Index: 5},
	{Name: "F#", Index: 6},
	{Name: "G", Index: 7},
	{Name: "G#", Index: 8},
	{Name: "A", Index: 9},
	{Name: "A#", Index: 10},
	{Name: "B", Index: 11},
}

// PitchClassAt returns the pitch class at position i (0-11).
// Panics if i is out of range.
func PitchClassAt(i int) PitchClass {
	if i < 0 || i >= len(PitchClasses) {
		panic(fmt.Sprintf("theory: pitch class index %d out of range [0, %d)", i, len(PitchClasses)))
	}
	return PitchClasses[i]
}

// PitchClassOf maps a MIDI note number to its pitch class
func PitchClassOf(note uint8) PitchClass {
	return PitchClasses[int(note)%12]
}

// ParsePitchClass resolves a note name such as "c#" or "F"
func ParsePitchClass(name string) (PitchClass, error) {
	name = strings.TrimSpace(name)
	for _, pc := range PitchClasses {
		if strings.EqualFold(pc.Name, name) {
			return pc, nil
		}
	}
	return PitchClass{}, fmt.Errorf("pitch class %q: %w", name, ErrUnknownName)
}
