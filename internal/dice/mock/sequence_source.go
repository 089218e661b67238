package mockdice

import (
	"fmt"
	"sync"
)

// SequenceSource implements dice.Source with predetermined samples
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	index  int
}

// NewSequenceSource creates a source that returns values in order
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{
		values: values,
	}
}

// SetValues replaces the predetermined samples and resets the index
func (s *SequenceSource) SetValues(values ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	s.index = 0
}

// Used returns how many samples have been drawn
func (s *SequenceSource) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Float64 implements dice.Source
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.values) {
		panic(fmt.Sprintf("no more predetermined samples available (used %d of %d)", s.index, len(s.values)))
	}

	v := s.values[s.index]
	s.index++
	return v
}
