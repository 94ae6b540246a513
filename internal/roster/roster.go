package roster

import (
	"fmt"
	"math/rand/v2"
)

// Class holds one class roster as loaded from the roster file.
// Students keeps the load order and is never mutated after construction.
type Class struct {
	Name     string
	Students []string
}

// UnknownClassError reports a class name the store has never seen.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class %q", e.Class)
}

// ClassExhaustedError reports a pick against a class with no students left.
type ClassExhaustedError struct {
	Class string
}

func (e *ClassExhaustedError) Error() string {
	return fmt.Sprintf("class %q has no students left", e.Class)
}

// classState pairs the immutable original roster with the shrinking
// remaining list for one class.
type classState struct {
	original  []string
	remaining []string
}

// Store holds every class roster and performs uniform without-replacement
// picks. The remaining list of a class only shrinks between resets; a
// removed student cannot reappear until Reset.
type Store struct {
	order   []string
	classes map[string]*classState
	rng     *rand.Rand
}

// NewStore builds a store from loaded classes. The RNG is injected so tests
// can fix the seed; a nil rng falls back to an auto-seeded generator.
func NewStore(classes []Class, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Store{
		classes: make(map[string]*classState, len(classes)),
		rng:     rng,
	}
	for _, c := range classes {
		if _, dup := s.classes[c.Name]; dup {
			continue
		}
		original := append([]string(nil), c.Students...)
		s.order = append(s.order, c.Name)
		s.classes[c.Name] = &classState{
			original:  original,
			remaining: append([]string(nil), original...),
		}
	}
	return s
}

// Classes returns all known class names in load order.
func (s *Store) Classes() []string {
	return append([]string(nil), s.order...)
}

// RemainingCount returns how many students of the class have not been picked.
func (s *Store) RemainingCount(class string) (int, error) {
	cs, ok := s.classes[class]
	if !ok {
		return 0, &UnknownClassError{Class: class}
	}
	return len(cs.remaining), nil
}

// OriginalStudents returns the class roster as loaded, independent of picks.
func (s *Store) OriginalStudents(class string) ([]string, error) {
	cs, ok := s.classes[class]
	if !ok {
		return nil, &UnknownClassError{Class: class}
	}
	return append([]string(nil), cs.original...), nil
}

// PickRandom uniformly selects one remaining student of the class, removes
// them, and returns the name. The removal happens in the same call as the
// selection, so a returned student is always recorded as removed.
func (s *Store) PickRandom(class string) (string, error) {
	cs, ok := s.classes[class]
	if !ok {
		return "", &UnknownClassError{Class: class}
	}
	if len(cs.remaining) == 0 {
		return "", &ClassExhaustedError{Class: class}
	}
	i := s.rng.IntN(len(cs.remaining))
	picked := cs.remaining[i]
	cs.remaining = append(cs.remaining[:i], cs.remaining[i+1:]...)
	return picked, nil
}

// Reset restores the class's remaining list to the original roster.
// Resetting an already-full class is a no-op.
func (s *Store) Reset(class string) error {
	cs, ok := s.classes[class]
	if !ok {
		return &UnknownClassError{Class: class}
	}
	cs.remaining = append(cs.remaining[:0:0], cs.original...)
	return nil
}
