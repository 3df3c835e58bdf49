package stack

type Stack[T comparable] interface {
	Count() int
	Capacity() int
	IsEmpty() bool
	Push(T) (int, error)
	Pop() (T, error)
	Peek() (T, bool)
	Contains(T) bool
	Until(T) (int, bool)
}

// stack keeps its elements in mp keyed by depth, the bottom element at 0.
type stack[T comparable] struct {
	n   int // live entries
	cap int // 0 is unbounded
	mp  map[int]T
}
