package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-cof/state"
	"go-cof/theme"
	"go-cof/theory"
)

// RenderPad renders a single colored pad
func RenderPad(color lipgloss.Color, r rune) string {
	return lipgloss.NewStyle().Foreground(color).Render(string(r))
}

// RenderScaleStrip renders the chromatic pitch classes in a row with the
// scale members lit and degree names underneath
func RenderScaleStrip(sc state.StateChange, th *theme.Theme) string {
	var names, pads, degrees []string
	for _, pc := range theory.PitchClasses {
		degree, ok := sc.Scale.DegreeOf(pc)
		names = append(names, fmt.Sprintf("%-3s", pc.Name))
		switch {
		case degree == 0:
			pads = append(pads, RenderPad(th.Tonic(), th.Symbols.Tonic)+"  ")
		case ok:
			pads = append(pads, RenderPad(th.FG(), th.Symbols.InScale)+"  ")
		default:
			pads = append(pads, RenderPad(th.Muted(), th.Symbols.OutScale)+"  ")
		}
		if ok {
			degrees = append(degrees, fmt.Sprintf("%-3s", theory.DegreeName(degree)))
		} else {
			degrees = append(degrees, "   ")
		}
	}
	dim := lipgloss.NewStyle().Foreground(th.Muted())
	return strings.Join([]string{
		dim.Render(strings.TrimRight(strings.Join(names, ""), " ")),
		strings.Join(pads, ""),
		strings.TrimRight(strings.Join(degrees, ""), " "),
	}, "\n")
}
