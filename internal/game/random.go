package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the single source of randomness an Engine draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a value in [0,n). n is always > 0.
	IntN(n int) int
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

type dice struct {
	rng Rand
}

func (d dice) roll(r IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + d.rng.IntN(r.Max-r.Min+1)
}

// oneIn reports a 1-in-n success. n <= 0 never succeeds.
func (d dice) oneIn(n int) bool {
	if n <= 0 {
		return false
	}
	return d.rng.IntN(n) == 0
}

func (d dice) pick(n int) int {
	if n <= 1 {
		return 0
	}
	return d.rng.IntN(n)
}
