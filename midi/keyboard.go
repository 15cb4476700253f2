package midi

import (
	"fmt"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-cof/debug"
)

// KeyboardController handles a standard MIDI keyboard (input only)
type KeyboardController struct {
	id       string
	inPort   drivers.In
	stopFunc func()

	mu       sync.Mutex // guards closed and sends on noteChan
	closed   bool
	noteChan chan NoteEvent
}

// NewKeyboardController starts listening on inPort
func NewKeyboardController(id string, inPort drivers.In) (*KeyboardController, error) {
	kb := &KeyboardController{
		id:       id,
		inPort:   inPort,
		noteChan: make(chan NoteEvent, 32),
	}

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			ev, ok := noteFromMessage(msg)
			if !ok {
				return
			}
			debug.LogEvery(8, "midi", "note-on %s note=%d vel=%d", id, ev.Note, ev.Velocity)
			kb.deliver(ev)
		})
		if err != nil {
			return nil, fmt.Errorf("open input %s: %w", id, err)
		}
		kb.stopFunc = stop
	}

	return kb, nil
}

// noteFromMessage extracts note-ons; velocity 0 counts as a note-off
func noteFromMessage(msg gomidi.Message) (NoteEvent, bool) {
	var channel, note, velocity uint8
	if msg.GetNoteOn(&channel, &note, &velocity) && velocity > 0 {
		return NoteEvent{Note: note, Velocity: velocity, Channel: channel}, true
	}
	return NoteEvent{}, false
}

func (kb *KeyboardController) ID() string {
	return kb.id
}

func (kb *KeyboardController) NoteEvents() <-chan NoteEvent {
	return kb.noteChan
}

// deliver drops the event if the channel is full or the keyboard is closed.
// Driver callbacks may still be running after stopFunc returns.
func (kb *KeyboardController) deliver(ev NoteEvent) bool {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if kb.closed {
		return false
	}
	select {
	case kb.noteChan <- ev:
		return true
	default:
		return false
	}
}

func (kb *KeyboardController) Close() error {
	if kb.stopFunc != nil {
		kb.stopFunc()
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if !kb.closed {
		kb.closed = true
		close(kb.noteChan)
	}
	return nil
}
