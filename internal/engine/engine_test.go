package engine

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/classpick/internal/ledger"
	"github.com/abhisek/classpick/internal/rating"
	"github.com/abhisek/classpick/internal/roster"
)

func newTestEngine(t *testing.T, classes ...roster.Class) *Engine {
	t.Helper()
	if classes == nil {
		classes = []roster.Class{
			{Name: "IC 1.1", Students: []string{"Anna", "Bob", "Cara"}},
		}
	}
	catalog, err := rating.NewCatalog(map[rating.Rating]string{
		rating.AStar: "Outstanding!",
		rating.A:     "Great job, keep it up.",
		rating.B:     "Good effort.",
		rating.C:     "Let's review this together.",
	})
	if err != nil {
		t.Fatal(err)
	}
	store := roster.NewStore(classes, rand.New(rand.NewPCG(1, 2)))
	return New(store, catalog, ledger.New())
}

func TestBeginPickFromIdle(t *testing.T) {
	e := newTestEngine(t)

	pick, err := e.BeginPick("IC 1.1")
	if err != nil {
		t.Fatal(err)
	}

	valid := map[string]bool{"Anna": true, "Bob": true, "Cara": true}
	if !valid[pick.Student] {
		t.Errorf("picked %q, not on roster", pick.Student)
	}
	if pick.Remaining != 2 {
		t.Errorf("Remaining = %d, want 2", pick.Remaining)
	}

	st := e.State()
	if st.Phase != PhaseAwaitingRating {
		t.Errorf("phase = %v, want awaiting-rating", st.Phase)
	}
	if st.ActiveStudent != pick.Student {
		t.Errorf("ActiveStudent = %q, want %q", st.ActiveStudent, pick.Student)
	}
	if st.ActiveClass != "IC 1.1" {
		t.Errorf("ActiveClass = %q", st.ActiveClass)
	}
}

func TestBeginPickWrongPhase(t *testing.T) {
	e := newTestEngine(t)

	pick, err := e.BeginPick("IC 1.1")
	if err != nil {
		t.Fatal(err)
	}

	_, err = e.BeginPick("IC 1.1")
	var invalid *InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if invalid.Phase != PhaseAwaitingRating {
		t.Errorf("error phase = %v, want awaiting-rating", invalid.Phase)
	}

	// The in-flight pick must be untouched.
	if st := e.State(); st.ActiveStudent != pick.Student {
		t.Errorf("ActiveStudent changed to %q after failed BeginPick", st.ActiveStudent)
	}
}

func TestBeginPickExhaustedLeavesStateAlone(t *testing.T) {
	e := newTestEngine(t, roster.Class{Name: "Empty", Students: nil})

	_, err := e.BeginPick("Empty")
	var exhausted *roster.ClassExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ClassExhaustedError, got %v", err)
	}

	st := e.State()
	if st.Phase != PhaseIdle || st.ActiveStudent != "" {
		t.Errorf("state mutated on failed pick: %+v", st)
	}
}

func TestBeginPickUnknownClass(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.BeginPick("Nope")
	var unknown *roster.UnknownClassError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownClassError, got %v", err)
	}
	if st := e.State(); st.Phase != PhaseIdle {
		t.Errorf("phase = %v after failed pick, want idle", st.Phase)
	}
}

func TestSubmitRatingRecordsOutcome(t *testing.T) {
	e := newTestEngine(t)

	pick, err := e.BeginPick("IC 1.1")
	if err != nil {
		t.Fatal(err)
	}

	msg, err := e.SubmitRating(rating.A)
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Great job, keep it up." {
		t.Errorf("message = %q", msg)
	}

	st := e.State()
	if st.Phase != PhaseFeedback {
		t.Errorf("phase = %v, want feedback", st.Phase)
	}
	if !st.HasRating || st.PendingRating != rating.A {
		t.Errorf("pending rating not set: %+v", st)
	}

	entries := e.Entries()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Student != pick.Student || entries[0].Rating != rating.A || entries[0].Order != 1 {
		t.Errorf("outcome = %+v", entries[0])
	}
}

func TestSubmitRatingWrongPhase(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.SubmitRating(rating.A)
	var invalid *InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError from idle, got %v", err)
	}

	if _, err := e.BeginPick("IC 1.1"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitRating(rating.A); err != nil {
		t.Fatal(err)
	}

	// Feedback phase: a second rating is illegal.
	_, err = e.SubmitRating(rating.B)
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError from feedback, got %v", err)
	}
	if len(e.Entries()) != 1 {
		t.Errorf("rejected rating still recorded: %d entries", len(e.Entries()))
	}
}

func TestSubmitRatingUnknownRating(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.BeginPick("IC 1.1"); err != nil {
		t.Fatal(err)
	}

	_, err := e.SubmitRating(rating.Rating(9))
	var unknown *rating.UnknownRatingError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRatingError, got %v", err)
	}

	// Still awaiting a rating; nothing recorded.
	if st := e.State(); st.Phase != PhaseAwaitingRating {
		t.Errorf("phase = %v, want awaiting-rating", st.Phase)
	}
	if len(e.Entries()) != 0 {
		t.Errorf("entries = %d, want 0", len(e.Entries()))
	}
}

func TestAdvanceOnlyFromFeedback(t *testing.T) {
	e := newTestEngine(t)

	var invalid *InvalidStateError
	if err := e.Advance(); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError from idle, got %v", err)
	}

	if _, err := e.BeginPick("IC 1.1"); err != nil {
		t.Fatal(err)
	}
	if err := e.Advance(); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError from awaiting-rating, got %v", err)
	}

	if _, err := e.SubmitRating(rating.B); err != nil {
		t.Fatal(err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}

	st := e.State()
	if st.Phase != PhaseIdle || st.ActiveStudent != "" || st.HasRating {
		t.Errorf("state not cleared after advance: %+v", st)
	}
}

func TestAbortKeepsStudentRemoved(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.BeginPick("IC 1.1"); err != nil {
		t.Fatal(err)
	}
	if err := e.Abort(); err != nil {
		t.Fatal(err)
	}

	if st := e.State(); st.Phase != PhaseIdle || st.ActiveStudent != "" {
		t.Errorf("state after abort: %+v", st)
	}
	// No outcome recorded, but the pick stays consumed.
	if len(e.Entries()) != 0 {
		t.Errorf("abort recorded an outcome")
	}
	n, _ := e.RemainingCount("IC 1.1")
	if n != 2 {
		t.Errorf("RemainingCount = %d after abort, want 2", n)
	}

	var invalid *InvalidStateError
	if err := e.Abort(); !errors.As(err, &invalid) {
		t.Errorf("expected InvalidStateError aborting from idle, got %v", err)
	}
}

func TestClassExhaustedQuery(t *testing.T) {
	e := newTestEngine(t, roster.Class{Name: "C", Students: []string{"a"}})

	done, err := e.ClassExhausted("C")
	if err != nil || done {
		t.Fatalf("ClassExhausted = %v, %v; want false, nil", done, err)
	}

	if _, err := e.BeginPick("C"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitRating(rating.A); err != nil {
		t.Fatal(err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}

	done, err = e.ClassExhausted("C")
	if err != nil || !done {
		t.Fatalf("ClassExhausted = %v, %v; want true, nil", done, err)
	}

	if _, err := e.ClassExhausted("Nope"); err == nil {
		t.Error("expected error for unknown class")
	}
}

func TestFullSessionUntilExhaustion(t *testing.T) {
	e := newTestEngine(t)

	ratings := []rating.Rating{rating.A, rating.AStar, rating.C}
	picked := make(map[string]bool)

	for i, r := range ratings {
		pick, err := e.BeginPick("IC 1.1")
		if err != nil {
			t.Fatalf("pick %d: %v", i+1, err)
		}
		if picked[pick.Student] {
			t.Fatalf("student %q picked twice", pick.Student)
		}
		picked[pick.Student] = true

		if _, err := e.SubmitRating(r); err != nil {
			t.Fatalf("rate %d: %v", i+1, err)
		}
		if err := e.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i+1, err)
		}
	}

	_, err := e.BeginPick("IC 1.1")
	var exhausted *roster.ClassExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("fourth pick: expected ClassExhaustedError, got %v", err)
	}

	sum := e.Summary()
	if sum[rating.A] != 1 || sum[rating.AStar] != 1 || sum[rating.C] != 1 {
		t.Errorf("summary = %v", sum)
	}
	entries := e.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i, o := range entries {
		if o.Order != i+1 {
			t.Errorf("entry %d order = %d", i, o.Order)
		}
	}
}

func TestResetClassAllowsRepick(t *testing.T) {
	e := newTestEngine(t, roster.Class{Name: "C", Students: []string{"solo"}})

	if _, err := e.BeginPick("C"); err != nil {
		t.Fatal(err)
	}
	if err := e.Abort(); err != nil {
		t.Fatal(err)
	}
	if err := e.ResetClass("C"); err != nil {
		t.Fatal(err)
	}

	pick, err := e.BeginPick("C")
	if err != nil {
		t.Fatal(err)
	}
	if pick.Student != "solo" {
		t.Errorf("picked %q after reset", pick.Student)
	}
}

func TestClearSessionOnlyFromIdle(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.BeginPick("IC 1.1"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitRating(rating.B); err != nil {
		t.Fatal(err)
	}

	var invalid *InvalidStateError
	if err := e.ClearSession(); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}

	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := e.ClearSession(); err != nil {
		t.Fatal(err)
	}
	if len(e.Entries()) != 0 {
		t.Errorf("entries after clear = %d", len(e.Entries()))
	}
}
