package random

import (
	"math/rand/v2"
	"time"
)

// Source picks uniform integers from a PCG stream.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with seed, or with the clock when seed is 0.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

// PickNumberInRange returns an integer in [min, max]. Swapped bounds are
// accepted; min == max always returns min.
func (s *Source) PickNumberInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}
