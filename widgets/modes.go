package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-cof/theme"
	"go-cof/theory"
)

// RenderModes renders the mode buttons as a column, marking the selected
// mode and the keyboard cursor (a table position)
func RenderModes(modes []theory.Mode, selected theory.Mode, cursor int, th *theme.Theme) string {
	normal := lipgloss.NewStyle().Foreground(th.Muted())
	active := lipgloss.NewStyle().Foreground(th.Tonic()).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(th.Cursor())

	var lines []string
	for i, m := range modes {
		marker := ' '
		style := normal
		if m == selected {
			marker = th.Symbols.ModeSelected
			style = active
		} else if i == cursor {
			marker = th.Symbols.ModeCursor
			style = cursorStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("%c %d %-18s", marker, i+1, m.Name)))
	}
	return strings.Join(lines, "\n")
}
