package usecase

import (
	"fmt"
	"time"
)

// DateSeed derives the daily seed from a date key of the form
// "{year}-{month}-{day}" without zero padding ("2024-3-15"). It is the
// classic polynomial 31-hash with signed 32-bit wraparound after every
// step; the wraparound is load-bearing, other deployments of the game
// hash the same way and must land on the same seed.
func DateSeed(dateKey string) uint32 {
	var hash int32
	for _, c := range dateKey {
		hash = hash<<5 - hash + int32(c)
	}
	if hash < 0 {
		// int32 negation overflows at MinInt32; widen first
		return uint32(-int64(hash))
	}
	return uint32(hash)
}

// SeedKey formats a time as the unpadded date string DateSeed consumes
func SeedKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// DateKey formats a time as the zero-padded YYYY-MM-DD storage/share key
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Rand is a seeded mulberry32 stream: fast, non-cryptographic, and
// bit-for-bit reproducible across platforms for a given seed and call
// count. Daily product selection depends on that reproducibility.
type Rand struct {
	state uint32
}

// NewRand creates a seeded generator
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 advances the stream and returns the next value in [0, 1)
func (r *Rand) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}

// Shuffle returns a seeded Fisher-Yates permutation of items. The input
// slice is never modified. The floor(random*(i+1)) draw is the classic
// unbiased form; changing it would change every day's permutation.
func Shuffle[T any](items []T, r *Rand) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
