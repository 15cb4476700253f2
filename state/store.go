package state

import (
	"go-cof/debug"
	"go-cof/theory"
)

// StateChange is the snapshot handed to observers on every broadcast
type StateChange struct {
	Tonic theory.PitchClass
	Mode  theory.Mode
	Scale theory.Scale
}

// Observer receives every broadcast, in registration order
type Observer func(StateChange)

// Store holds the selected tonic and mode and the observers of it.
// It is not safe for concurrent use; the host serialises calls.
type Store struct {
	tonic     theory.PitchClass
	mode      theory.Mode
	observers []Observer

	broadcasts int
}

// New creates a store selecting C and the mode with rotation 0.
// Nothing is broadcast until the first change.
func New() *Store {
	return &Store{
		tonic: theory.PitchClassAt(0),
		mode:  theory.ModeByIndex(0),
	}
}

// AddObserver registers o for all future broadcasts
func (s *Store) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// ChangeTonic selects a new tonic, keeps the mode, then broadcasts
func (s *Store) ChangeTonic(tonic theory.PitchClass) {
	s.tonic = tonic
	s.broadcast()
}

// ChangeMode selects a new mode, keeps the tonic, then broadcasts
func (s *Store) ChangeMode(mode theory.Mode) {
	s.mode = mode
	s.broadcast()
}

// Current returns the committed selection without notifying anyone
func (s *Store) Current() StateChange {
	return StateChange{
		Tonic: s.tonic,
		Mode:  s.mode,
		Scale: theory.ScaleOf(s.tonic, s.mode),
	}
}

// Broadcasts counts broadcasts so far, nested ones included
func (s *Store) Broadcasts() int {
	return s.broadcasts
}

// Observers registered during a broadcast are not called until the next one.
// An observer that changes the selection triggers a nested broadcast which
// completes before the outer one continues with its original snapshot.
func (s *Store) broadcast() {
	s.broadcasts++
	sc := s.Current()
	observers := s.observers

	debug.Log("state", "broadcast #%d tonic=%s mode=%q observers=%d",
		s.broadcasts, sc.Tonic, sc.Mode, len(observers))

	for _, o := range observers {
		o(sc)
	}
}
