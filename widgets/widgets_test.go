package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cof/state"
	"go-cof/theme"
	"go-cof/theory"
)

func selection(tonic, mode int) state.StateChange {
	t := theory.PitchClassAt(tonic)
	m := theory.ModeByIndex(mode)
	return state.StateChange{Tonic: t, Mode: m, Scale: theory.ScaleOf(t, m)}
}

func TestRenderWheel(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	out := RenderWheel(theory.CircleOfFifths(), selection(0, 0), th, 8)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 17)
	assert.Contains(t, lines[0], "◆C", "circle starts at the top with the tonic")
	assert.Equal(t, 1, strings.Count(out, "◆"))
	assert.Equal(t, 6, strings.Count(out, "●"))
	assert.Equal(t, 5, strings.Count(out, "·"))
	for _, name := range []string{"vii", "iv", "vi", "iii"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "·F#")
	assert.Contains(t, out, "●G")
}

func TestRenderWheelFollowsSelection(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	out := RenderWheel(theory.CircleOfFifths(), selection(9, 5), th, 8)
	assert.Contains(t, out, "◆A")
	assert.Contains(t, out, "●C")
	assert.Contains(t, out, "·C#")
}

func TestRingPos(t *testing.T) {
	x, y := ringPos(20, 8, 0, 8)
	assert.Equal(t, 20, x)
	assert.Equal(t, 0, y)

	x, y = ringPos(20, 8, 3, 8)
	assert.Equal(t, 36, x)
	assert.Equal(t, 8, y)

	x, y = ringPos(20, 8, 6, 8)
	assert.Equal(t, 20, x)
	assert.Equal(t, 16, y)
}

func TestRenderModes(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	out := RenderModes(theory.Modes[:], theory.ModeByIndex(0), 3, th)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "▶ 2 Major / Ionian")
	assert.Contains(t, lines[3], "▷ 4 Dorian")
	assert.Contains(t, lines[0], "1 Lydian")
}

func TestRenderScaleStrip(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	out := RenderScaleStrip(selection(7, 0), th)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "C")
	assert.Equal(t, 1, strings.Count(lines[1], "◆"))
	assert.Equal(t, 6, strings.Count(lines[1], "●"))
	assert.Contains(t, lines[2], "vii")
}

func TestWheelStylesUseBackground(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	styles := wheelStyles(th)
	for i, st := range styles {
		assert.Equal(t, th.BG(), st.GetBackground(), "style %d", i)
	}
	assert.Equal(t, th.Tonic(), styles[styleTonic].GetForeground())
}

func TestRenderWheelIsRectangular(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	out := RenderWheel(theory.CircleOfFifths(), selection(0, 0), th, 8)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 4*8+7, lipgloss.Width(line))
	}
}
