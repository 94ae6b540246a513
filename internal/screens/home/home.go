package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/classpick/internal/engine"
	"github.com/abhisek/classpick/internal/router"
	"github.com/abhisek/classpick/internal/screen"
	"github.com/abhisek/classpick/internal/screens/picker"
	"github.com/abhisek/classpick/internal/screens/summary"
	"github.com/abhisek/classpick/internal/ui/components"
	"github.com/abhisek/classpick/internal/ui/layout"
	"github.com/abhisek/classpick/internal/ui/theme"
)

// Block-letter title for the class selection screen.
const bannerTitle = ` ██████╗██╗      █████╗ ███████╗███████╗██████╗ ██╗ ██████╗██╗  ██╗
██╔════╝██║     ██╔══██╗██╔════╝██╔════╝██╔══██╗██║██╔════╝██║ ██╔╝
██║     ██║     ███████║███████╗███████╗██████╔╝██║██║     █████╔╝
██║     ██║     ██╔══██║╚════██║╚════██║██╔═══╝ ██║██║     ██╔═██╗
╚██████╗███████╗██║  ██║███████║███████║██║     ██║╚██████╗██║  ██╗
 ╚═════╝╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝     ╚═╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "C · L · A · S · S · P · I · C · K"

// HomeScreen lets the teacher choose a class, set the spin length, and
// jump to the session summary.
type HomeScreen struct {
	eng          *engine.Engine
	classes      []string
	menu         components.Menu
	duration     components.TextInput
	editingTimer bool
	spinSeconds  int
	soundEnabled bool
	notice       string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. spinSeconds and soundEnabled come from the
// config file and stay adjustable for the rest of the run.
func New(eng *engine.Engine, spinSeconds int, soundEnabled bool) *HomeScreen {
	h := &HomeScreen{
		eng:          eng,
		classes:      eng.Classes(),
		duration:     components.NewTextInput("seconds", true, 4),
		spinSeconds:  spinSeconds,
		soundEnabled: soundEnabled,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

// menuItems builds one entry per class plus the summary action.
func (h *HomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.classes)+2)
	for _, class := range h.classes {
		class := class
		items = append(items, components.MenuItem{
			Label:  class,
			Action: func() tea.Cmd { return h.startPick(class) },
		})
	}
	items = append(items, components.MenuItem{
		Label: "SESSION SUMMARY",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(h.eng)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return items
}

// startPick launches the picker for the class, unless it is exhausted.
func (h *HomeScreen) startPick(class string) tea.Cmd {
	done, err := h.eng.ClassExhausted(class)
	if err != nil {
		h.notice = err.Error()
		return nil
	}
	if done {
		h.notice = fmt.Sprintf("All students of %s have been picked — press r to reset", class)
		return nil
	}
	h.notice = ""
	spinFor := time.Duration(h.spinSeconds) * time.Second
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: picker.New(h.eng, class, spinFor, h.soundEnabled),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Classes"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.editingTimer {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set spin length"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start pick"},
		{Key: "t", Description: "Timer"},
		{Key: "r", Description: "Reset class"},
		{Key: "m", Description: "Sound"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.editingTimer {
		return h.updateTimerInput(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "t":
			h.editingTimer = true
			h.duration = components.NewTextInput("seconds", true, 4)
			return h, h.duration.Init()
		case "m":
			h.soundEnabled = !h.soundEnabled
			return h, nil
		case "r":
			if class, ok := h.selectedClass(); ok {
				if err := h.eng.ResetClass(class); err != nil {
					h.notice = err.Error()
				} else {
					h.notice = fmt.Sprintf("%s reset — everyone can be picked again", class)
				}
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// updateTimerInput routes keys to the duration field while it has focus.
func (h *HomeScreen) updateTimerInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			secs, err := h.duration.NumericValue()
			if err == nil && secs >= 1 && secs <= 3599 {
				h.spinSeconds = secs
				h.notice = ""
			} else {
				h.notice = "Spin length must be between 1 and 3599 seconds"
			}
			h.editingTimer = false
			return h, nil
		case "esc":
			h.editingTimer = false
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.duration, cmd = h.duration.Update(msg)
	return h, cmd
}

// selectedClass returns the class under the cursor, if the cursor is on a
// class entry rather than an action entry.
func (h *HomeScreen) selectedClass() (string, bool) {
	if h.menu.Selected < len(h.classes) {
		return h.classes[h.menu.Selected], true
	}
	return "", false
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 26 || width < 90

	var sections []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Render(title.Render(bannerCompact)))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Render(title.Render(bannerTitle)))
	}

	// Refresh per-class remaining counts before rendering the menu.
	for i, class := range h.classes {
		n, err := h.eng.RemainingCount(class)
		if err != nil {
			continue
		}
		total := n
		if orig, err := h.eng.OriginalStudents(class); err == nil {
			total = len(orig)
		}
		h.menu.Items[i].Detail = fmt.Sprintf("%d of %d left", n, total)
	}

	if len(h.classes) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No classes loaded — check the roster file"))
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Render(h.menu.View()))

	// Timer / sound status line.
	var status string
	if h.editingTimer {
		status = "Spin length: " + h.duration.View()
	} else {
		sound := "on"
		if !h.soundEnabled {
			sound = "off"
		}
		status = fmt.Sprintf("Spin length: %ds    Sound: %s", h.spinSeconds, sound)
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render(status))

	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Accent).Render(h.notice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
