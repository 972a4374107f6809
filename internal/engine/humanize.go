package engine

import (
	"math/rand"
	"time"
)

// Pacer injects the humanization delays and pointer jitter inserted between
// primitive interactions. Pulling this behind an interface keeps the
// randomness out of the engine so tests can run with zero jitter.
type Pacer interface {
	// Sleep blocks for a duration sampled uniformly from [min, max].
	Sleep(min, max time.Duration)
	// Offset samples a pointer displacement with each axis in [-max, max].
	Offset(max float64) (x, y float64)
}

// Humanization ranges, mirroring real interaction cadence: a settle pause
// after scrolling, per-character typing delays, and pacing between steps.
const (
	scrollSettleMin = 100 * time.Millisecond
	scrollSettleMax = 300 * time.Millisecond
	focusSettleMin  = 100 * time.Millisecond
	focusSettleMax  = 200 * time.Millisecond
	clearSettleMin  = 50 * time.Millisecond
	clearSettleMax  = 150 * time.Millisecond
	keystrokeMin    = 50 * time.Millisecond
	keystrokeMax    = 150 * time.Millisecond
	stepPauseMin    = 100 * time.Millisecond
	stepPauseMax    = 300 * time.Millisecond

	// clickOffsetMax bounds the randomized click displacement in pixels.
	clickOffsetMax = 5.0
)

type randomPacer struct {
	rng *rand.Rand
}

// NewPacer returns the default jittering pacer. Seed 0 seeds from the clock.
func NewPacer(seed int64) Pacer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomPacer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPacer) Sleep(min, max time.Duration) {
	d := min
	if max > min {
		d += time.Duration(p.rng.Int63n(int64(max - min + 1)))
	}
	time.Sleep(d)
}

func (p *randomPacer) Offset(max float64) (float64, float64) {
	return (p.rng.Float64()*2 - 1) * max, (p.rng.Float64()*2 - 1) * max
}

type noPacer struct{}

// NoPace returns a pacer with zero delays and zero offsets, for tests and
// for callers that want mechanical execution speed.
func NoPace() Pacer { return noPacer{} }

func (noPacer) Sleep(min, max time.Duration) {}

func (noPacer) Offset(max float64) (float64, float64) { return 0, 0 }
