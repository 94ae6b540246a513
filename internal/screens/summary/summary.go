package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/classpick/internal/engine"
	"github.com/abhisek/classpick/internal/rating"
	"github.com/abhisek/classpick/internal/router"
	"github.com/abhisek/classpick/internal/screen"
	"github.com/abhisek/classpick/internal/ui/layout"
	"github.com/abhisek/classpick/internal/ui/theme"
)

// SummaryScreen shows the session's grade tally and pick history.
type SummaryScreen struct {
	eng    *engine.Engine
	notice string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen over the shared engine.
func New(eng *engine.Engine) *SummaryScreen {
	return &SummaryScreen{eng: eng}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Grades Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "c", Description: "Clear session"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c":
			if err := s.eng.ClearSession(); err != nil {
				s.notice = err.Error()
			} else {
				s.notice = "Session cleared"
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Grades Summary"))
	b.WriteString("\n\n")

	// Per-rating tally in rating colors.
	sum := s.eng.Summary()
	var tallies []string
	for _, r := range rating.All() {
		tallies = append(tallies, lipgloss.NewStyle().
			Foreground(theme.RatingColor(r)).
			Bold(true).
			Render(fmt.Sprintf("%s: %d", r, sum[r])))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(tallies, "    ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	entries := s.eng.Entries()
	if len(entries) == 0 {
		b.WriteString(theme.Subtitle.Width(width).Render(
			"No grades recorded in this session."))
	} else {
		var lines []string
		for _, o := range entries {
			grade := lipgloss.NewStyle().
				Foreground(theme.RatingColor(o.Rating)).
				Bold(true).
				Render(o.Rating.String())
			lines = append(lines, fmt.Sprintf("%2d. %-20s %s  %s",
				o.Order,
				o.Student,
				grade,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(o.Class)))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			strings.Join(lines, "\n")))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
