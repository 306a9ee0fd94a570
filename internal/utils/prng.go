// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService wraps the standard generator so the whole simulation can run
// on a predictable seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a seeded service. A zero seed uses the current
// time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Angle returns a random angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// InRange returns a random float64 in [lo, hi).
func (s *PRNGService) InRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
