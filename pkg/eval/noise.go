package eval

import "math/rand"

// Noise adds small pseudo-random jitter to a Score so an engine with
// otherwise deterministic evaluation doesn't always pick the same move
// among several that score identically. A limit of 0 disables it.
type Noise struct {
	rand  *rand.Rand
	limit int
}

// NewNoise returns a Noise that perturbs scores by up to limit/2
// centipawns in either direction, seeded by seed.
func NewNoise(limit int, seed int64) Noise {
	return Noise{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Apply adds jitter to s. Safe to call on a zero-value Noise (no-op).
func (n Noise) Apply(s Score) Score {
	if n.limit <= 0 || n.rand == nil {
		return s
	}
	return s + Score(n.rand.Intn(n.limit)-n.limit/2)
}
