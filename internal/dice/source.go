package dice

//go:generate mockgen -destination=mock/mock_source.go -package=mockdice -source=source.go

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform samples in [0,1)
// Tests substitute a deterministic implementation
type Source interface {
	Float64() float64
}

type randomSource struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRandomSource creates a source seeded with seed, or the clock when seed is 0
func NewRandomSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomSource{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 implements Source
func (s *randomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Float64()
}

// IntBetween draws a uniform integer in [minValue, maxValue] from src
func IntBetween(src Source, minValue, maxValue int) int {
	if maxValue <= minValue {
		return minValue
	}

	span := maxValue - minValue + 1
	n := minValue + int(src.Float64()*float64(span))
	if n > maxValue {
		n = maxValue
	}
	return n
}
