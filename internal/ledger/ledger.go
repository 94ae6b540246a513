package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/classpick/internal/rating"
)

// Outcome is one (student, rating) result recorded during the session.
// Student names are not globally unique; the class disambiguates.
type Outcome struct {
	Student string
	Class   string
	Rating  rating.Rating
	Order   int // monotonic pick sequence number, starting at 1
	At      time.Time
}

// Ledger accumulates outcomes for the duration of one session. It is
// append-only; entries only disappear on an explicit Clear.
type Ledger struct {
	sessionID string
	outcomes  []Outcome
	nextOrder int
}

// New creates an empty ledger with a fresh session ID.
func New() *Ledger {
	return &Ledger{
		sessionID: uuid.New().String(),
		nextOrder: 1,
	}
}

// SessionID returns the identifier of the current session.
func (l *Ledger) SessionID() string {
	return l.sessionID
}

// Record appends an outcome, assigning the next order number.
func (l *Ledger) Record(student, class string, r rating.Rating) Outcome {
	o := Outcome{
		Student: student,
		Class:   class,
		Rating:  r,
		Order:   l.nextOrder,
		At:      time.Now(),
	}
	l.outcomes = append(l.outcomes, o)
	l.nextOrder++
	return o
}

// Entries returns all outcomes in recording order. The slice is a copy;
// callers cannot mutate ledger state through it.
func (l *Ledger) Entries() []Outcome {
	return append([]Outcome(nil), l.outcomes...)
}

// Len returns the number of recorded outcomes.
func (l *Ledger) Len() int {
	return len(l.outcomes)
}

// Summary returns the outcome count per rating.
func (l *Ledger) Summary() map[rating.Rating]int {
	counts := make(map[rating.Rating]int, 4)
	for _, o := range l.outcomes {
		counts[o.Rating]++
	}
	return counts
}

// Clear drops all outcomes and starts a new session ID. Only the explicit
// "clear summary" action reaches here.
func (l *Ledger) Clear() {
	l.outcomes = nil
	l.nextOrder = 1
	l.sessionID = uuid.New().String()
}
