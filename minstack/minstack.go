package minstack

import (
	"github.com/infinivision/linear/errmsg"
	"github.com/infinivision/linear/stack"
	"golang.org/x/exp/constraints"
)

// New returns a stack reporting its minimum in O(1). It holds at most
// capacity elements, a capacity <= 0 gives an unbounded stack.
func New[T constraints.Ordered](capacity int) *minStack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &minStack[T]{
		cap:  capacity,
		mp:   make(map[int]T),
		mins: stack.New[T](0),
	}
}

func (s *minStack[T]) Count() int {
	return s.n
}

func (s *minStack[T]) Capacity() int {
	return s.cap
}

func (s *minStack[T]) IsEmpty() bool {
	return s.n == 0
}

func (s *minStack[T]) Push(v T) (int, error) {
	if s.cap > 0 && s.n == s.cap {
		return s.n, errmsg.CapacityExceeded
	}
	m := v
	if top, ok := s.mins.Peek(); ok && top < v {
		m = top
	}
	if _, err := s.mins.Push(m); err != nil {
		return s.n, err
	}
	s.mp[s.n] = v
	s.n++
	return s.n, nil
}

func (s *minStack[T]) Pop() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, errmsg.EmptyCollection
	}
	if _, err := s.mins.Pop(); err != nil {
		var zero T
		return zero, err
	}
	s.n--
	v := s.mp[s.n]
	delete(s.mp, s.n)
	return v, nil
}

func (s *minStack[T]) Peek() (T, bool) {
	if s.n == 0 {
		var zero T
		return zero, false
	}
	return s.mp[s.n-1], true
}

func (s *minStack[T]) Min() (T, bool) {
	return s.mins.Peek()
}
