package theory

import "fmt"

// major scale steps in semitones
var scaleSteps = [7]int{2, 2, 1, 2, 2, 2, 1}

var romanNumerals = [7]string{"i", "ii", "iii", "iv", "v", "vi", "vii"}

// Scale is the seven pitch classes of a tonic+mode, degree order
type Scale [7]PitchClass

// CircleOfFifths returns all 12 pitch classes, stepping up a fifth from C
func CircleOfFifths() []PitchClass {
	items := make([]PitchClass, 0, len(PitchClasses))
	current := PitchClasses[0]
	for i := 0; i < len(PitchClasses); i++ {
		items = append(items, current)
		current = PitchClasses[(current.Index+7)%12]
	}
	return items
}

// ScaleOf derives the scale of mode starting on tonic.
// Panics if either value is not drawn from the fixed tables.
func ScaleOf(tonic PitchClass, mode Mode) Scale {
	if tonic.Index < 0 || tonic.Index >= len(PitchClasses) {
		panic(fmt.Sprintf("theory: tonic index %d out of range [0, %d)", tonic.Index, len(PitchClasses)))
	}
	if mode.Index < 0 || mode.Index >= len(scaleSteps) {
		panic(fmt.Sprintf("theory: mode index %d out of range [0, %d)", mode.Index, len(scaleSteps)))
	}

	var s Scale
	noteIndex := tonic.Index
	for i := range s {
		s[i] = PitchClasses[noteIndex]
		noteIndex = (noteIndex + scaleSteps[(i+mode.Index)%7]) % 12
	}
	return s
}

// Intervals returns the step pattern of mode
func Intervals(mode Mode) [7]int {
	var steps [7]int
	for i := range steps {
		steps[i] = scaleSteps[(i+mode.Index)%7]
	}
	return steps
}

// DegreeName returns the roman numeral for a 0-based scale degree.
// Panics outside 0-6.
func DegreeName(position int) string {
	if position < 0 || position >= len(romanNumerals) {
		panic(fmt.Sprintf("theory: scale degree %d out of range [0, %d)", position, len(romanNumerals)))
	}
	return romanNumerals[position]
}

// DegreeOf returns the 0-based degree of pc in the scale
func (s Scale) DegreeOf(pc PitchClass) (int, bool) {
	for i, n := range s {
		if n == pc {
			return i, true
		}
	}
	return -1, false
}

func (s Scale) Contains(pc PitchClass) bool {
	_, ok := s.DegreeOf(pc)
	return ok
}

// Tonic is the first degree
func (s Scale) Tonic() PitchClass {
	return s[0]
}
