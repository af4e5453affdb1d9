package engine

import (
	"math/rand"
	"time"
)

// Rand is the randomness the simulation draws from
// *rand.Rand satisfies it; tests substitute scripted sequences
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source, seed 0 selects a time-based seed
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
