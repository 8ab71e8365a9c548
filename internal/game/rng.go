package game

import (
	"hash/fnv"
	"math/rand/v2"
)

// Source is the primitive every random draw in a battle goes through.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	IntN(n int) int
}

// RNG wraps a Source with the draw shapes the rules need and counts draws,
// which makes divergence between two replays easy to spot.
type RNG struct {
	src   Source
	draws int
}

// NewRNG builds a PCG-backed RNG. The same seed always yields the same
// sequence of draws.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	return &RNG{src: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// NewRNGWithSource wraps an arbitrary source, such as a scripted one.
func NewRNGWithSource(src Source) *RNG {
	return &RNG{src: src}
}

// SeedFromString derives a seed from arbitrary text (a room ID, a replay
// name).
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Draws returns how many values have been drawn so far.
func (r *RNG) Draws() int { return r.draws }

// IntN returns a value in [0, n). n <= 1 returns 0 without drawing.
func (r *RNG) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	r.draws++
	v := r.src.IntN(n)
	if v < 0 || v >= n {
		v = ((v % n) + n) % n
	}
	return v
}

// IntRange returns a value in [min, max], both inclusive.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min+1)
}

func (r *RNG) Bool() bool { return r.IntN(2) == 1 }

// Float returns a value in [0, 1).
func (r *RNG) Float() float64 {
	const span = 1 << 53
	return float64(r.IntN(span)) / span
}

// Chance succeeds with probability num/den.
func (r *RNG) Chance(num, den int) bool {
	if num <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return r.IntN(den) < num
}

// WeightedChoice picks one item with probability proportional to its
// weight. Items and weights must have the same length.
func WeightedChoice[T any](r *RNG, items []T, weights []int) T {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := r.IntN(total)
	for i, w := range weights {
		if roll < w {
			return items[i]
		}
		roll -= w
	}
	return items[len(items)-1]
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](r *RNG, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
