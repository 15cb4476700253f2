package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Tonic    rune // ◆ tonic segment
	InScale  rune // ● scale member
	OutScale rune // · not in scale

	ModeSelected rune // ▶ current mode
	ModeCursor   rune // ▷ mode under cursor
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Tonic:    '◆',
			InScale:  '●',
			OutScale: '·',

			ModeSelected: '▶',
			ModeCursor:   '▷',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG     = 0.0
	RoleMuted  = 0.2
	RoleFG     = 0.5
	RoleAccent = 0.7
	RoleCursor = 0.85
	RoleTonic  = 1.0
)

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Tonic() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleTonic))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
