package picker

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/classpick/internal/spin"
	"github.com/abhisek/classpick/internal/ui/components"
	"github.com/abhisek/classpick/internal/ui/theme"
)

func (p *PickerScreen) View(width, height int) string {
	var content string
	switch p.stage {
	case stageCommitting:
		content = theme.Subtitle.Width(width).Render("Shuffling...")
	case stageSpinning:
		content = p.renderSpin(width)
	case stageRating:
		content = p.renderRating(width)
	case stageFeedback:
		content = p.renderFeedback(width)
	case stageDone:
		content = p.renderDone(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderReel draws the three-row band: dim neighbours around the big
// center name.
func (p *PickerScreen) renderReel(width int, settled bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Align(lipgloss.Center)

	centerColor := theme.Primary
	if settled {
		centerColor = theme.Success
	}
	center := lipgloss.NewStyle().
		Foreground(centerColor).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)

	band := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(centerColor).
		Width(min(width-4, 50)).
		Align(lipgloss.Center).
		Render(center.Width(min(width-6, 48)).Render(p.reel.Cur))

	rows := []string{
		dim.Render(p.reel.Prev),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, band),
		dim.Render(p.reel.Next),
	}
	if settled {
		// Neighbours disappear once the reel locks.
		rows[0] = ""
		rows[2] = ""
	}
	return strings.Join(rows, "\n")
}

func (p *PickerScreen) renderSpin(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Now Choosing"))
	b.WriteString("\n\n")
	b.WriteString(p.renderReel(width, false))
	b.WriteString("\n\n")

	elapsed := time.Since(p.startTime)
	percent := float64(elapsed) / float64(p.spinFor)
	if percent > 1 {
		percent = 1
	}
	bar := components.NewProgressBar("", percent, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	if p.soundEnabled {
		var cueName string
		switch spin.CueForDuration(p.spinFor) {
		case spin.CueShort:
			cueName = "short loop"
		case spin.CueMedium:
			cueName = "medium loop"
		default:
			cueName = "long loop"
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("♪ " + cueName))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Students left: %d", p.pick.Remaining+1)))

	return b.String()
}

func (p *PickerScreen) renderRating(width int) string {
	var b strings.Builder

	b.WriteString(theme.Winner.Width(width).Align(lipgloss.Center).Render("Selected"))
	b.WriteString("\n\n")
	b.WriteString(p.renderReel(width, true))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Rate the response"))
	b.WriteString("\n\n")

	bar := components.RatingBar{Selected: p.ratingSel}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	if p.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(p.notice))
	}
	return b.String()
}

func (p *PickerScreen) renderFeedback(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Feedback"))
	b.WriteString("\n\n")

	name := lipgloss.NewStyle().
		Foreground(theme.RatingColor(p.rated)).
		Bold(true).
		Render(fmt.Sprintf("%s — %s", p.pick.Student, p.rated))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, name))
	b.WriteString("\n\n")

	msg := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 60)).
		Align(lipgloss.Center).
		Render(p.feedback)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msg))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Students left: %d", p.pick.Remaining)))

	if p.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(p.notice))
	}
	return b.String()
}

func (p *PickerScreen) renderDone(width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(width).
		Align(lipgloss.Center).
		Render(p.notice)
}
