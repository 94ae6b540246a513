package rating

import "fmt"

// Catalog maps each rating to its feedback message. It is immutable after
// construction: a session never starts with a partial catalog.
type Catalog struct {
	messages map[Rating]string
}

// NewCatalog builds a catalog from a complete rating→message table.
// Every one of the four ratings must have a non-empty message; a missing
// message is a data-authoring bug the teacher must fix before any pick.
func NewCatalog(messages map[Rating]string) (*Catalog, error) {
	for _, r := range All() {
		if messages[r] == "" {
			return nil, fmt.Errorf("catalog missing message for rating %s", r)
		}
	}
	copied := make(map[Rating]string, len(messages))
	for r, msg := range messages {
		if !r.Valid() {
			return nil, &UnknownRatingError{Label: r.String()}
		}
		copied[r] = msg
	}
	return &Catalog{messages: copied}, nil
}

// Message returns the feedback message for the given rating.
func (c *Catalog) Message(r Rating) (string, error) {
	msg, ok := c.messages[r]
	if !ok {
		return "", &UnknownRatingError{Label: r.String()}
	}
	return msg, nil
}
