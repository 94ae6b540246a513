package picker

import (
	"time"

	"github.com/abhisek/classpick/internal/engine"
)

// pickCommittedMsg is sent once the engine has committed a pick.
type pickCommittedMsg struct {
	Pick engine.Pick
	Err  error
}

// frameMsg drives the reel animation.
type frameMsg time.Time
