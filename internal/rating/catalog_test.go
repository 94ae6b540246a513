package rating

import (
	"errors"
	"testing"
)

func fullMessages() map[Rating]string {
	return map[Rating]string{
		AStar: "Outstanding!",
		A:     "Great job, keep it up.",
		B:     "Good effort.",
		C:     "Let's review this together.",
	}
}

func TestNewCatalogComplete(t *testing.T) {
	c, err := NewCatalog(fullMessages())
	if err != nil {
		t.Fatal(err)
	}

	msg, err := c.Message(A)
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Great job, keep it up." {
		t.Errorf("Message(A) = %q", msg)
	}
}

func TestNewCatalogMissingRating(t *testing.T) {
	m := fullMessages()
	delete(m, C)

	if _, err := NewCatalog(m); err == nil {
		t.Fatal("expected error for catalog missing rating C")
	}
}

func TestNewCatalogEmptyMessage(t *testing.T) {
	m := fullMessages()
	m[B] = ""

	if _, err := NewCatalog(m); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestMessageOutOfRange(t *testing.T) {
	c, err := NewCatalog(fullMessages())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Message(Rating(42))
	var unknown *UnknownRatingError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRatingError, got %v", err)
	}
}

func TestCatalogCopiesInput(t *testing.T) {
	m := fullMessages()
	c, err := NewCatalog(m)
	if err != nil {
		t.Fatal(err)
	}

	m[A] = "mutated"
	msg, _ := c.Message(A)
	if msg != "Great job, keep it up." {
		t.Errorf("catalog shares storage with caller map: %q", msg)
	}
}
