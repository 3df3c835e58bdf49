package stack

import "github.com/infinivision/linear/errmsg"

// New returns a stack holding at most capacity elements,
// a capacity <= 0 gives an unbounded stack.
func New[T comparable](capacity int) *stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &stack[T]{cap: capacity, mp: make(map[int]T)}
}

func (s *stack[T]) Count() int {
	return s.n
}

func (s *stack[T]) Capacity() int {
	return s.cap
}

func (s *stack[T]) IsEmpty() bool {
	return s.n == 0
}

func (s *stack[T]) Push(v T) (int, error) {
	if s.cap > 0 && s.n == s.cap {
		return s.n, errmsg.CapacityExceeded
	}
	s.mp[s.n] = v
	s.n++
	return s.n, nil
}

func (s *stack[T]) Pop() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, errmsg.EmptyCollection
	}
	s.n--
	v := s.mp[s.n]
	delete(s.mp, s.n)
	return v, nil
}

func (s *stack[T]) Peek() (T, bool) {
	if s.n == 0 {
		var zero T
		return zero, false
	}
	return s.mp[s.n-1], true
}

func (s *stack[T]) Contains(v T) bool {
	_, ok := s.Until(v)
	return ok
}

// Until returns the number of pops needed to remove the topmost v.
func (s *stack[T]) Until(v T) (int, bool) {
	for i := s.n - 1; i >= 0; i-- {
		if s.mp[i] == v {
			return s.n - i, true
		}
	}
	return 0, false
}
