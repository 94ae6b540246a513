package rating

import "fmt"

// Rating is one of the four discrete grades a teacher can assign after a pick.
type Rating int

const (
	AStar Rating = iota // "A*"
	A
	B
	C
)

// All lists every rating in display order.
func All() []Rating {
	return []Rating{AStar, A, B, C}
}

// String returns the display label for the rating.
func (r Rating) String() string {
	switch r {
	case AStar:
		return "A*"
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// Valid reports whether r is one of the four defined ratings.
func (r Rating) Valid() bool {
	return r >= AStar && r <= C
}

// Parse converts an external label ("A*", "A", "B", "C") into a Rating.
// Labels only enter the system at the data boundary; inside the app the
// closed enum makes an unknown rating structurally impossible.
func Parse(label string) (Rating, error) {
	switch label {
	case "A*":
		return AStar, nil
	case "A":
		return A, nil
	case "B":
		return B, nil
	case "C":
		return C, nil
	}
	return 0, &UnknownRatingError{Label: label}
}

// UnknownRatingError reports a rating label or value outside {A*, A, B, C}.
type UnknownRatingError struct {
	Label string
}

func (e *UnknownRatingError) Error() string {
	return fmt.Sprintf("unknown rating %q", e.Label)
}
