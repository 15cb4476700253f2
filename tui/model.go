package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-cof/debug"
	"go-cof/midi"
	"go-cof/state"
	"go-cof/theme"
	"go-cof/theory"
	"go-cof/widgets"
)

// selection is written by the store observer and read by View
type selection struct {
	change state.StateChange
	seen   bool
}

type Model struct {
	Store     *state.Store
	DeviceMgr *midi.DeviceManager // nil when MIDI input is disabled
	Theme     *theme.Theme

	layout     []theory.PitchClass // circle of fifths, fixed at startup
	current    *selection
	modeCursor int
	radius     int
	devices    map[string]bool
	keys       keyMap
	help       help.Model
	quitting   bool
}

// NoteMsg carries a note-on from a connected keyboard
type NoteMsg struct {
	Controller midi.Controller
	Event      midi.NoteEvent
}

type DeviceEventMsg midi.DeviceEvent

// NewModel builds the UI and registers it as an observer of store.
// The caller announces the initial selection once all observers are in.
func NewModel(store *state.Store, deviceMgr *midi.DeviceManager, th *theme.Theme, radius int) Model {
	m := Model{
		Store:      store,
		DeviceMgr:  deviceMgr,
		Theme:      th,
		layout:     theory.CircleOfFifths(),
		current:    &selection{},
		modeCursor: store.Current().Mode.Position(),
		radius:     radius,
		devices:    make(map[string]bool),
		keys:       newKeyMap(),
		help:       help.New(),
	}
	cur := m.current
	store.AddObserver(func(sc state.StateChange) {
		cur.change = sc
		cur.seen = true
	})
	return m
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	if deviceMgr == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func ListenForNotes(c midi.Controller) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-c.NoteEvents()
		if !ok {
			return nil
		}
		return NoteMsg{Controller: c, Event: ev}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForDevices(m.DeviceMgr)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case NoteMsg:
		pc := theory.PitchClassOf(msg.Event.Note)
		debug.Log("tui", "note %d from %s -> tonic %s", msg.Event.Note, msg.Controller.ID(), pc)
		m.Store.ChangeTonic(pc)
		return m, ListenForNotes(msg.Controller)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		var cmd tea.Cmd
		switch event.Type {
		case midi.DeviceConnected:
			m.devices[event.ID] = true
			cmd = ListenForNotes(event.Controller)
		case midi.DeviceDisconnected:
			delete(m.devices, event.ID)
		}
		return m, tea.Batch(cmd, ListenForDevices(m.DeviceMgr))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tonic := m.Store.Current().Tonic

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.FifthUp):
		m.changeTonic(m.stepFifths(tonic, 1))

	case key.Matches(msg, m.keys.FifthDown):
		m.changeTonic(m.stepFifths(tonic, -1))

	case key.Matches(msg, m.keys.Sharpen):
		m.changeTonic(theory.PitchClassAt((tonic.Index + 1) % 12))

	case key.Matches(msg, m.keys.Natural):
		pc, err := theory.ParsePitchClass(msg.String())
		if err == nil {
			m.changeTonic(pc)
		}

	case key.Matches(msg, m.keys.ModeUp):
		m.modeCursor = (m.modeCursor + len(theory.Modes) - 1) % len(theory.Modes)

	case key.Matches(msg, m.keys.ModeDown):
		m.modeCursor = (m.modeCursor + 1) % len(theory.Modes)

	case key.Matches(msg, m.keys.Select):
		m.changeMode(m.modeCursor)

	case key.Matches(msg, m.keys.ModeN):
		m.changeMode(int(msg.String()[0] - '1'))
	}

	return m, nil
}

func (m *Model) changeTonic(pc theory.PitchClass) {
	debug.Log("tui", "tonic -> %s", pc)
	m.Store.ChangeTonic(pc)
}

func (m *Model) changeMode(position int) {
	mode := theory.ModeAt(position)
	m.modeCursor = position
	debug.Log("tui", "mode -> %s", mode)
	m.Store.ChangeMode(mode)
}

// stepFifths moves n segments around the wheel from pc
func (m Model) stepFifths(pc theory.PitchClass, n int) theory.PitchClass {
	for i, other := range m.layout {
		if other == pc {
			return m.layout[((i+n)%len(m.layout)+len(m.layout))%len(m.layout)]
		}
	}
	return pc
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	if !m.current.seen {
		return dimStyle.Render("waiting for selection...")
	}
	sc := m.current.change

	deviceStatus := ""
	if len(m.devices) > 0 {
		names := make([]string, 0, len(m.devices))
		for id := range m.devices {
			names = append(names, id)
		}
		sort.Strings(names)
		deviceStatus = dimStyle.Render("  kbd: " + strings.Join(names, ", "))
	}

	header := headerStyle.Render(fmt.Sprintf("go-cof  %s %s", sc.Tonic, sc.Mode)) + deviceStatus

	wheel := widgets.RenderWheel(m.layout, sc, m.Theme, m.radius)
	modes := widgets.RenderModes(theory.Modes[:], sc.Mode, m.modeCursor, m.Theme)
	body := lipgloss.JoinHorizontal(lipgloss.Top, wheel, "    ", modes)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(body)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderScaleStrip(sc, m.Theme))
	out.WriteString("\n\n")
	out.WriteString(m.help.View(m.keys))

	return out.String()
}
