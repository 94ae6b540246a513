package engine

import (
	"fmt"

	"github.com/abhisek/classpick/internal/rating"
)

// Phase is the current step of the pick cycle.
type Phase int

const (
	PhaseIdle           Phase = iota // Ready to begin a pick
	PhaseSpinning                    // Pick committed, presentation animating (transient)
	PhaseAwaitingRating              // Result revealed, waiting for the teacher's rating
	PhaseFeedback                    // Feedback message shown
)

// String returns the phase name for error messages.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseAwaitingRating:
		return "awaiting-rating"
	case PhaseFeedback:
		return "feedback"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the engine's view of the in-flight pick.
// ActiveStudent is non-empty exactly while a pick is in flight
// (spinning, awaiting-rating, feedback); PendingRating is set only
// during feedback.
type State struct {
	Phase         Phase
	ActiveClass   string
	ActiveStudent string
	PendingRating rating.Rating
	HasRating     bool
}

// clearPick resets the in-flight pick fields and returns to idle.
func (s *State) clearPick() {
	s.Phase = PhaseIdle
	s.ActiveClass = ""
	s.ActiveStudent = ""
	s.PendingRating = 0
	s.HasRating = false
}

// InvalidStateError reports an operation called in the wrong phase.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in phase %s", e.Op, e.Phase)
}
