package midi

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-cof/debug"
)

// DeviceManager handles hot-plug detection of MIDI keyboards
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration
	timeout     time.Duration
	filter      string

	// swapped out in tests
	listPorts func() []string
	open      func(name string) (Controller, error)
}

// NewDeviceManager creates a device manager that connects every input
// whose name contains filter (case-insensitive, empty matches all)
func NewDeviceManager(filter string) *DeviceManager {
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
		timeout:     3 * time.Second,
		filter:      strings.ToLower(filter),
		listPorts:   InPortNames,
		open:        openKeyboard,
	}
}

// InPortNames lists the names of the current MIDI inputs
func InPortNames() []string {
	var names []string
	for _, in := range gomidi.GetInPorts() {
		names = append(names, in.String())
	}
	return names
}

func openKeyboard(name string) (Controller, error) {
	for _, in := range gomidi.GetInPorts() {
		if in.String() == name {
			return NewKeyboardController(name, in)
		}
	}
	return nil, fmt.Errorf("input port %q not found", name)
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controllers returns a snapshot of connected controllers
func (dm *DeviceManager) Controllers() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	copy := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		copy[k] = v
	}
	return copy
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan(ctx)
		}
	}
}

func (dm *DeviceManager) matches(name string) bool {
	name = strings.ToLower(name)
	if strings.Contains(name, "through") {
		return false
	}
	return dm.filter == "" || strings.Contains(name, dm.filter)
}

// emit blocks until the event is taken or ctx ends. Never call it with mu held.
func (dm *DeviceManager) emit(ctx context.Context, ev DeviceEvent) bool {
	select {
	case dm.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (dm *DeviceManager) scan(ctx context.Context) {
	// port listing can hang on some drivers
	ch := make(chan []string, 1)
	go func() {
		ch <- dm.listPorts()
	}()

	var names []string
	select {
	case names = <-ch:
	case <-ctx.Done():
		return
	case <-time.After(dm.timeout):
		debug.Log("midi", "port scan timed out after %s", dm.timeout)
		return
	}

	seenIDs := make(map[string]bool)

	for _, name := range names {
		if !dm.matches(name) {
			continue
		}
		seenIDs[name] = true

		dm.mu.RLock()
		_, exists := dm.controllers[name]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		kb, err := dm.open(name)
		if err != nil {
			debug.Log("midi", "open %s: %v", name, err)
			continue
		}

		dm.mu.Lock()
		dm.controllers[name] = kb
		dm.mu.Unlock()

		debug.Log("midi", "connected %s", name)
		if !dm.emit(ctx, DeviceEvent{Type: DeviceConnected, Controller: kb, ID: name}) {
			return
		}
	}

	// Check for disconnects
	dm.mu.Lock()
	var removed []string
	for id, c := range dm.controllers {
		if !seenIDs[id] {
			c.Close()
			delete(dm.controllers, id)
			removed = append(removed, id)
		}
	}
	dm.mu.Unlock()

	for _, id := range removed {
		debug.Log("midi", "disconnected %s", id)
		if !dm.emit(ctx, DeviceEvent{Type: DeviceDisconnected, ID: id}) {
			return
		}
	}
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}
