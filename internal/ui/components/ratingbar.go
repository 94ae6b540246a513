package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/classpick/internal/rating"
	"github.com/abhisek/classpick/internal/ui/theme"
)

// RatingBar renders the four rating buttons in a row, each in its own
// color, with number-key hints. Selection is keyboard-driven by the owning
// screen; the bar itself is display-only.
type RatingBar struct {
	Selected int // index into rating.All(); -1 for none
}

// View renders the bar.
func (rb RatingBar) View() string {
	var buttons []string
	for i, r := range rating.All() {
		color := theme.RatingColor(r)
		label := r.String()

		style := lipgloss.NewStyle().
			Width(8).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Foreground(color).
			Bold(true)
		if i == rb.Selected {
			style = style.
				Background(color).
				Foreground(theme.BgDark)
		}

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(10).
			Align(lipgloss.Center).
			Render("[" + string(rune('1'+i)) + "]")

		buttons = append(buttons, lipgloss.JoinVertical(lipgloss.Center,
			style.Render(label), hint))
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, buttons...), "\n")
}
