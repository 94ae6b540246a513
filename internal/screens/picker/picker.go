package picker

import (
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/classpick/internal/engine"
	"github.com/abhisek/classpick/internal/rating"
	"github.com/abhisek/classpick/internal/router"
	"github.com/abhisek/classpick/internal/screen"
	"github.com/abhisek/classpick/internal/screens/summary"
	"github.com/abhisek/classpick/internal/spin"
	"github.com/abhisek/classpick/internal/ui/layout"
)

// stage is the picker's presentation step. It trails the engine phase: the
// engine is already awaiting a rating while the reel is still spinning.
type stage int

const (
	stageCommitting stage = iota // waiting for the engine to commit a pick
	stageSpinning                // reel animation running
	stageRating                  // result revealed, rating buttons active
	stageFeedback                // feedback message shown
	stageDone                    // terminal notice (exhausted class or error)
)

// PickerScreen runs the spin → rate → feedback loop for one class.
type PickerScreen struct {
	eng          *engine.Engine
	class        string
	spinFor      time.Duration
	soundEnabled bool

	stage     stage
	pick      engine.Pick
	reel      *spin.Reel
	startTime time.Time
	phase     float64 // fractional reel rows accumulated
	lastFrame time.Time

	ratingSel int
	feedback  string
	rated     rating.Rating
	notice    string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker for one class. spinFor is how long the reel runs;
// it has no effect on which student is picked.
func New(eng *engine.Engine, class string, spinFor time.Duration, soundEnabled bool) *PickerScreen {
	return &PickerScreen{
		eng:          eng,
		class:        class,
		spinFor:      spinFor,
		soundEnabled: soundEnabled,
		stage:        stageCommitting,
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return p.commitPick()
}

func (p *PickerScreen) Title() string {
	return "Class " + p.class
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	switch p.stage {
	case stageRating:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Rate"},
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Abort"},
		}
	case stageFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next student"},
			{Key: "Esc", Description: "Back to classes"},
		}
	case stageDone:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Abort"},
	}
}

// commitPick asks the engine for the next student. The pick is decided here,
// before the first animation frame, so the spin cannot bias it.
func (p *PickerScreen) commitPick() tea.Cmd {
	return func() tea.Msg {
		pick, err := p.eng.BeginPick(p.class)
		return pickCommittedMsg{Pick: pick, Err: err}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(spin.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pickCommittedMsg:
		return p.handlePickCommitted(msg)
	case frameMsg:
		return p.handleFrame(time.Time(msg))
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PickerScreen) handlePickCommitted(msg pickCommittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Exhaustion or an unknown class both end the run; the engine
		// state is untouched, so the home screen stays consistent.
		p.stage = stageDone
		p.notice = msg.Err.Error()
		return p, nil
	}

	p.pick = msg.Pick

	pool, err := p.eng.OriginalStudents(p.class)
	if err != nil {
		pool = []string{msg.Pick.Student}
	}
	p.reel = spin.NewReel(pool, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	p.startTime = time.Now()
	p.lastFrame = p.startTime
	p.phase = 0
	p.ratingSel = 0
	p.stage = stageSpinning
	return p, frameCmd()
}

func (p *PickerScreen) handleFrame(now time.Time) (screen.Screen, tea.Cmd) {
	if p.stage != stageSpinning {
		return p, nil
	}

	dt := now.Sub(p.lastFrame)
	if dt <= 0 {
		dt = spin.FrameInterval
	}
	p.lastFrame = now
	elapsed := now.Sub(p.startTime)

	if elapsed >= p.spinFor+spin.FinalRollTime {
		p.reel.Finalize(p.pick.Student)
		p.stage = stageRating
		return p, nil
	}

	p.phase += spin.RowsPerSec(elapsed, p.spinFor) * dt.Seconds()
	for p.phase >= 1 {
		p.phase--
		p.reel.Rotate()
	}
	return p, frameCmd()
}

func (p *PickerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.stage {
	case stageDone:
		return p, func() tea.Msg { return router.PopScreenMsg{} }

	case stageCommitting, stageSpinning:
		if key == "esc" {
			return p, p.abortAndPop()
		}

	case stageRating:
		switch key {
		case "esc":
			return p, p.abortAndPop()
		case "left", "h":
			if p.ratingSel > 0 {
				p.ratingSel--
			}
		case "right", "l":
			if p.ratingSel < len(rating.All())-1 {
				p.ratingSel++
			}
		case "enter":
			return p.submitRating(rating.All()[p.ratingSel])
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			p.ratingSel = idx
			return p.submitRating(rating.All()[idx])
		}

	case stageFeedback:
		switch key {
		case "esc":
			// Leave the feedback step cleanly, then back to classes.
			if err := p.eng.Advance(); err != nil {
				p.notice = err.Error()
			}
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter", "n", " ":
			return p.nextStudent()
		}
	}

	return p, nil
}

// abortAndPop cancels the in-flight pick and returns to the class list.
// The picked student stays consumed; only an explicit class reset brings
// them back.
func (p *PickerScreen) abortAndPop() tea.Cmd {
	if err := p.eng.Abort(); err != nil {
		p.notice = err.Error()
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (p *PickerScreen) submitRating(r rating.Rating) (screen.Screen, tea.Cmd) {
	msg, err := p.eng.SubmitRating(r)
	if err != nil {
		p.notice = err.Error()
		return p, nil
	}
	p.feedback = msg
	p.rated = r
	p.stage = stageFeedback
	return p, nil
}

// nextStudent finishes the feedback step and either spins again or, once
// the class is exhausted, hands over to the summary.
func (p *PickerScreen) nextStudent() (screen.Screen, tea.Cmd) {
	if err := p.eng.Advance(); err != nil {
		p.notice = err.Error()
		return p, nil
	}

	done, err := p.eng.ClassExhausted(p.class)
	if err != nil {
		p.notice = err.Error()
		return p, nil
	}
	if done {
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(p.eng)}
		}
	}

	p.stage = stageCommitting
	p.notice = ""
	p.feedback = ""
	return p, p.commitPick()
}
