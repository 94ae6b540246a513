// Package spin models the slot-reel animation: easing, frame budget, reel
// rows, and audio cue selection. Everything here is cosmetic: the committed
// pick is decided by the engine before the first frame renders, and nothing
// in this package feeds back into sampling.
package spin

import (
	"math"
	"math/rand/v2"
	"time"
)

// FrameInterval is the animation frame budget (~60 fps).
const FrameInterval = 16 * time.Millisecond

const (
	maxRowsPerSec = 9.5
	minRowsPerSec = 1.5
	easeExponent  = 2.1
)

// FinalRollTime is how long the reel takes to settle on the final name once
// the spin duration has elapsed.
const FinalRollTime = 550 * time.Millisecond

// RowsPerSec returns the reel speed at the given point of the spin. The
// reel starts fast and decelerates toward the end.
func RowsPerSec(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return minRowsPerSec
	}
	t := elapsed.Seconds() / duration.Seconds()
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return minRowsPerSec + (maxRowsPerSec-minRowsPerSec)*math.Pow(1-t, easeExponent)
}

// Cue identifies which looped sound fits a spin of a given length.
type Cue int

const (
	CueShort Cue = iota
	CueMedium
	CueLong
)

const (
	shortMax  = 4990 * time.Millisecond
	mediumMax = 19990 * time.Millisecond
)

// CueForDuration selects the slot loop cue by spin length.
func CueForDuration(d time.Duration) Cue {
	switch {
	case d <= shortMax:
		return CueShort
	case d <= mediumMax:
		return CueMedium
	default:
		return CueLong
	}
}

// Reel is the three-row display band: the previous, current, and next name.
// Rows are cosmetic names drawn from a display pool; only Finalize places a
// name that matters.
type Reel struct {
	Prev, Cur, Next string

	pool    []string
	rng     *rand.Rand
	settled bool
}

// NewReel seeds a reel from the display pool. An empty pool yields a reel
// that only ever shows the final name.
func NewReel(pool []string, rng *rand.Rand) *Reel {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Reel{pool: append([]string(nil), pool...), rng: rng}
	r.Prev = r.randomName()
	r.Cur = r.randomName()
	r.Next = r.randomName()
	return r
}

func (r *Reel) randomName() string {
	if len(r.pool) == 0 {
		return ""
	}
	return r.pool[r.rng.IntN(len(r.pool))]
}

// Rotate shifts the band down one row and feeds a fresh cosmetic name into
// the next slot. No-op once settled.
func (r *Reel) Rotate() {
	if r.settled {
		return
	}
	r.Prev, r.Cur = r.Cur, r.Next
	r.Next = r.randomName()
}

// Finalize locks the reel on the committed pick.
func (r *Reel) Finalize(final string) {
	r.Cur = final
	r.settled = true
}

// Settled reports whether the reel has locked on the final name.
func (r *Reel) Settled() bool {
	return r.settled
}
