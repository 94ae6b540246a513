// Package engine holds the pick-rate-feedback state machine and the facade
// the presentation layer drives. All session state (roster, ledger, phase)
// is owned by a single Engine instance; screens never construct their own.
package engine

import (
	"github.com/abhisek/classpick/internal/ledger"
	"github.com/abhisek/classpick/internal/rating"
	"github.com/abhisek/classpick/internal/roster"
)

// Engine is the single authoritative session facade. It is driven
// synchronously from the Bubble Tea update loop; no operation blocks and
// no internal goroutine mutates state.
type Engine struct {
	state   State
	store   *roster.Store
	catalog *rating.Catalog
	ledger  *ledger.Ledger
}

// Pick is the result of a committed pick.
type Pick struct {
	Class     string
	Student   string
	Remaining int // students left after this pick
}

// New wires the engine to its collaborators.
func New(store *roster.Store, catalog *rating.Catalog, led *ledger.Ledger) *Engine {
	return &Engine{
		state:   State{Phase: PhaseIdle},
		store:   store,
		catalog: catalog,
		ledger:  led,
	}
}

// State returns a copy of the current engine state.
func (e *Engine) State() State {
	return e.state
}

// BeginPick commits a random pick from the class. Valid only from idle.
// The roster mutation and the phase transition happen in the same call, so
// a pick can never be returned without being removed. On exhaustion the
// error propagates and the state is untouched, letting the presentation
// show an "all done" view instead of animating.
func (e *Engine) BeginPick(class string) (Pick, error) {
	if e.state.Phase != PhaseIdle {
		return Pick{}, &InvalidStateError{Op: "begin pick", Phase: e.state.Phase}
	}

	student, err := e.store.PickRandom(class)
	if err != nil {
		return Pick{}, err
	}

	// The spinning phase exists for the presentation's timed animation;
	// the engine passes straight through to awaiting-rating.
	e.state.Phase = PhaseSpinning
	e.state.ActiveClass = class
	e.state.ActiveStudent = student
	e.state.Phase = PhaseAwaitingRating

	remaining, err := e.store.RemainingCount(class)
	if err != nil {
		return Pick{}, err
	}
	return Pick{Class: class, Student: student, Remaining: remaining}, nil
}

// SubmitRating records the teacher's rating for the active student and
// returns the feedback message. Valid only while awaiting a rating.
func (e *Engine) SubmitRating(r rating.Rating) (string, error) {
	if e.state.Phase != PhaseAwaitingRating {
		return "", &InvalidStateError{Op: "submit rating", Phase: e.state.Phase}
	}

	msg, err := e.catalog.Message(r)
	if err != nil {
		return "", err
	}

	e.ledger.Record(e.state.ActiveStudent, e.state.ActiveClass, r)
	e.state.PendingRating = r
	e.state.HasRating = true
	e.state.Phase = PhaseFeedback
	return msg, nil
}

// Advance finishes the feedback step and returns to idle, ready for the
// next pick. Valid only from feedback.
func (e *Engine) Advance() error {
	if e.state.Phase != PhaseFeedback {
		return &InvalidStateError{Op: "advance", Phase: e.state.Phase}
	}
	e.state.clearPick()
	return nil
}

// Abort cancels an in-flight pick without recording an outcome. The picked
// student stays removed from the roster, preserving without-replacement
// semantics across a cancelled rating. A no-op error from idle.
func (e *Engine) Abort() error {
	if e.state.Phase == PhaseIdle {
		return &InvalidStateError{Op: "abort", Phase: e.state.Phase}
	}
	e.state.clearPick()
	return nil
}

// ClassExhausted reports whether the class has no students left to pick.
func (e *Engine) ClassExhausted(class string) (bool, error) {
	n, err := e.store.RemainingCount(class)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Classes lists all known classes in load order.
func (e *Engine) Classes() []string {
	return e.store.Classes()
}

// RemainingCount returns the un-picked student count for the class.
func (e *Engine) RemainingCount(class string) (int, error) {
	return e.store.RemainingCount(class)
}

// OriginalStudents returns the full roster of the class, for cosmetic use
// by the spin reel. Picks never consult this list.
func (e *Engine) OriginalStudents(class string) ([]string, error) {
	return e.store.OriginalStudents(class)
}

// ResetClass restores the class's remaining list to the full roster.
// Only this explicit action un-removes students.
func (e *Engine) ResetClass(class string) error {
	return e.store.Reset(class)
}

// Summary returns the per-rating outcome counts for the session.
func (e *Engine) Summary() map[rating.Rating]int {
	return e.ledger.Summary()
}

// Entries returns the session's outcomes in recording order.
func (e *Engine) Entries() []ledger.Outcome {
	return e.ledger.Entries()
}

// ClearSession drops all recorded outcomes. Valid only from idle so a pick
// in flight can never lose its outcome.
func (e *Engine) ClearSession() error {
	if e.state.Phase != PhaseIdle {
		return &InvalidStateError{Op: "clear session", Phase: e.state.Phase}
	}
	e.ledger.Clear()
	return nil
}
