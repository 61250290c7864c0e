// Package stack provides the bounded operand stack used by the calculator.
package stack

import "errors"

var (
	// ErrOverflow is returned by Push on a full stack.
	ErrOverflow = errors.New("stack overflow")
	// ErrUnderflow is returned when a stack has too few values to remove.
	ErrUnderflow = errors.New("stack underflow")
)

// Bounded is a last-in-first-out stack of int32 that never grows past
// its capacity. The zero value has capacity 0 and rejects every push.
type Bounded struct {
	items    []int32
	capacity int
}

// New returns an empty stack that holds at most capacity values.
func New(capacity int) *Bounded {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded{items: make([]int32, 0, capacity), capacity: capacity}
}

func (s *Bounded) Len() int   { return len(s.items) }
func (s *Bounded) Full() bool { return len(s.items) >= s.capacity }

// Push adds v on top. At capacity it returns ErrOverflow and the stack is
// left as it was.
func (s *Bounded) Push(v int32) error {
	if s.Full() {
		return ErrOverflow
	}
	s.items = append(s.items, v)
	return nil
}

func (s *Bounded) Peek() (int32, error) {
	if len(s.items) == 0 {
		return 0, ErrUnderflow
	}
	return s.items[len(s.items)-1], nil
}

// Pop2 removes the two topmost values, returning them in push order:
// b was on top. With fewer than two values nothing is removed.
func (s *Bounded) Pop2() (a, b int32, err error) {
	if len(s.items) < 2 {
		return 0, 0, ErrUnderflow
	}
	n := len(s.items)
	a, b = s.items[n-2], s.items[n-1]
	s.items = s.items[:n-2]
	return a, b, nil
}

// All returns a copy of the stack, bottom first.
func (s *Bounded) All() []int32 {
	out := make([]int32, len(s.items))
	copy(out, s.items)
	return out
}
