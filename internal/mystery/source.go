package mystery

import (
	"math/rand"
	"time"
)

// Source is the randomness provider for mystery boxes. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// NewSeededSource returns a deterministic Source. The same seed always
// produces the same sequence of boxes and outcomes.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSource returns a Source seeded from the clock.
func NewSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}
