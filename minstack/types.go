package minstack

import (
	"github.com/infinivision/linear/stack"
	"golang.org/x/exp/constraints"
)

type MinStack[T constraints.Ordered] interface {
	Count() int
	Capacity() int
	IsEmpty() bool
	Push(T) (int, error)
	Pop() (T, error)
	Peek() (T, bool)
	Min() (T, bool)
}

// minStack tracks in mins, at each depth i, the minimum of mp[0..i].
type minStack[T constraints.Ordered] struct {
	n    int
	cap  int // 0 is unbounded
	mp   map[int]T
	mins stack.Stack[T]
}
