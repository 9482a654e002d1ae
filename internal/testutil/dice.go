package testutil

import (
	"fmt"
	"sync"
)

// SequenceSource is a dice.Source that replays a fixed list of Intn results.
// Each queued value v answers one Intn(n) call and must satisfy 0 <= v < n.
// Once the queue is exhausted it answers 0.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	calls  int
}

// NewSequenceSource returns a SequenceSource replaying values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// Faces returns a SequenceSource whose Intn results make a d6 (or any die)
// show the given faces, i.e. it queues face-1 for each face.
func Faces(faces ...int) *SequenceSource {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return NewSequenceSource(values...)
}

// Intn returns the next queued value.
//
// Precondition: n > 0 and the queued value is in [0, n).
func (s *SequenceSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: queued value %d out of range for Intn(%d)", v, n))
	}
	return v
}

// Calls reports how many Intn calls have been answered.
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
