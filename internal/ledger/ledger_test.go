package ledger

import (
	"testing"

	"github.com/abhisek/classpick/internal/rating"
)

func TestRecordAssignsMonotonicOrder(t *testing.T) {
	l := New()

	o1 := l.Record("Anna", "IC 1.1", rating.A)
	o2 := l.Record("Bob", "IC 1.1", rating.B)
	o3 := l.Record("Anna", "IC 1.2", rating.AStar) // same name, other class

	if o1.Order != 1 || o2.Order != 2 || o3.Order != 3 {
		t.Errorf("orders = %d, %d, %d; want 1, 2, 3", o1.Order, o2.Order, o3.Order)
	}
}

func TestEntriesInRecordingOrder(t *testing.T) {
	l := New()
	l.Record("Anna", "IC 1.1", rating.A)
	l.Record("Bob", "IC 1.1", rating.C)

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Student != "Anna" || entries[1].Student != "Bob" {
		t.Errorf("entries out of order: %v", entries)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	l := New()
	l.Record("Anna", "IC 1.1", rating.A)

	entries := l.Entries()
	entries[0].Student = "mutated"

	if l.Entries()[0].Student != "Anna" {
		t.Error("Entries() exposes internal storage")
	}
}

func TestSummaryCountsByRating(t *testing.T) {
	l := New()
	l.Record("Anna", "IC 1.1", rating.A)
	l.Record("Bob", "IC 1.1", rating.A)
	l.Record("Cara", "IC 1.1", rating.C)

	sum := l.Summary()
	if sum[rating.A] != 2 {
		t.Errorf("Summary()[A] = %d, want 2", sum[rating.A])
	}
	if sum[rating.C] != 1 {
		t.Errorf("Summary()[C] = %d, want 1", sum[rating.C])
	}
	if sum[rating.AStar] != 0 {
		t.Errorf("Summary()[A*] = %d, want 0", sum[rating.AStar])
	}

	total := 0
	for _, n := range sum {
		total += n
	}
	if total != l.Len() {
		t.Errorf("summary total = %d, want %d", total, l.Len())
	}
}

func TestClearStartsFreshSession(t *testing.T) {
	l := New()
	l.Record("Anna", "IC 1.1", rating.A)
	oldID := l.SessionID()

	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if l.SessionID() == oldID {
		t.Error("Clear did not rotate the session ID")
	}

	o := l.Record("Bob", "IC 1.1", rating.B)
	if o.Order != 1 {
		t.Errorf("order after Clear = %d, want 1", o.Order)
	}
}
