package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cof/theory"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	cur := s.Current()
	assert.Equal(t, "C", cur.Tonic.Name)
	assert.Equal(t, 0, cur.Mode.Index)
	assert.Equal(t, theory.ScaleOf(cur.Tonic, cur.Mode), cur.Scale)
	assert.Equal(t, 0, s.Broadcasts())
}

func TestAddObserverDoesNotNotify(t *testing.T) {
	s := New()
	calls := 0
	s.AddObserver(func(StateChange) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestChangeTonicNotifiesInOrder(t *testing.T) {
	s := New()
	var order []string
	var got []StateChange
	s.AddObserver(func(sc StateChange) {
		order = append(order, "first")
		got = append(got, sc)
	})
	s.AddObserver(func(sc StateChange) {
		order = append(order, "second")
		got = append(got, sc)
	})

	g := theory.PitchClassAt(7)
	s.ChangeTonic(g)

	assert.Equal(t, []string{"first", "second"}, order)
	require.Len(t, got, 2)
	for _, sc := range got {
		assert.Equal(t, g, sc.Tonic)
		assert.Equal(t, theory.ModeByIndex(0), sc.Mode)
		assert.Equal(t, theory.ScaleOf(g, theory.ModeByIndex(0)), sc.Scale)
	}
}

func TestChangeModeKeepsTonic(t *testing.T) {
	s := New()
	var last StateChange
	s.AddObserver(func(sc StateChange) { last = sc })

	a := theory.PitchClassAt(9)
	minor := theory.ModeByIndex(5)
	s.ChangeTonic(a)
	s.ChangeMode(minor)

	assert.Equal(t, a, last.Tonic)
	assert.Equal(t, minor, last.Mode)
	assert.Equal(t, theory.ScaleOf(a, minor), last.Scale)
	assert.Equal(t, last, s.Current())
}

func TestNoDeduplication(t *testing.T) {
	s := New()
	calls := 0
	s.AddObserver(func(StateChange) { calls++ })

	dorian := theory.ModeByIndex(1)
	s.ChangeMode(dorian)
	s.ChangeMode(dorian)
	assert.Equal(t, 2, calls)

	s.ChangeTonic(s.Current().Tonic)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, s.Broadcasts())
}

func TestStartupKick(t *testing.T) {
	s := New()
	var got []StateChange
	s.AddObserver(func(sc StateChange) { got = append(got, sc) })

	s.ChangeTonic(theory.PitchClassAt(0))

	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Tonic.Name)
	assert.Equal(t, "Major / Ionian", got[0].Mode.Name)
}

func TestObserverAddedDuringBroadcast(t *testing.T) {
	s := New()
	lateCalls := 0
	added := false
	s.AddObserver(func(StateChange) {
		if !added {
			added = true
			s.AddObserver(func(StateChange) { lateCalls++ })
		}
	})

	s.ChangeTonic(theory.PitchClassAt(2))
	assert.Equal(t, 0, lateCalls)
	s.ChangeTonic(theory.PitchClassAt(4))
	assert.Equal(t, 1, lateCalls)
}

// An observer that changes the mode while handling a tonic change runs a
// nested broadcast. Later observers of the outer broadcast still receive
// the outer snapshot, after the nested one.
func TestReentrantChangeDuringBroadcast(t *testing.T) {
	s := New()
	e := theory.PitchClassAt(4)
	phrygian := theory.ModeByIndex(2)

	type call struct {
		observer string
		sc       StateChange
	}
	var calls []call

	s.AddObserver(func(sc StateChange) {
		calls = append(calls, call{"reentrant", sc})
		if sc.Mode != phrygian {
			s.ChangeMode(phrygian)
		}
	})
	s.AddObserver(func(sc StateChange) {
		calls = append(calls, call{"plain", sc})
	})

	s.ChangeTonic(e)

	require.Len(t, calls, 4)
	assert.Equal(t, "reentrant", calls[0].observer)
	assert.Equal(t, theory.ModeByIndex(0), calls[0].sc.Mode)

	// nested broadcast delivered to both observers first
	assert.Equal(t, "reentrant", calls[1].observer)
	assert.Equal(t, phrygian, calls[1].sc.Mode)
	assert.Equal(t, "plain", calls[2].observer)
	assert.Equal(t, phrygian, calls[2].sc.Mode)

	// then the outer broadcast resumes with its stale snapshot
	assert.Equal(t, "plain", calls[3].observer)
	assert.Equal(t, theory.ModeByIndex(0), calls[3].sc.Mode)
	assert.Equal(t, theory.ScaleOf(e, theory.ModeByIndex(0)), calls[3].sc.Scale)

	// committed state is the nested change
	assert.Equal(t, phrygian, s.Current().Mode)
	assert.Equal(t, e, s.Current().Tonic)
	assert.Equal(t, 2, s.Broadcasts())
}
