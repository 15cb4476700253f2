package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	FifthUp   key.Binding
	FifthDown key.Binding
	ModeUp    key.Binding
	ModeDown  key.Binding
	Select    key.Binding
	ModeN     key.Binding
	Natural   key.Binding
	Sharpen   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		FifthUp:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "fifth up")),
		FifthDown: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "fifth down")),
		ModeUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "mode up")),
		ModeDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "mode down")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select mode")),
		ModeN:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "mode")),
		Natural:   key.NewBinding(key.WithKeys("a", "b", "c", "d", "e", "f", "g"), key.WithHelp("a-g", "tonic")),
		Sharpen:   key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "sharpen tonic")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FifthDown, k.FifthUp, k.ModeN, k.Natural, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FifthDown, k.FifthUp, k.Natural, k.Sharpen},
		{k.ModeUp, k.ModeDown, k.Select, k.ModeN},
		{k.Help, k.Quit},
	}
}
