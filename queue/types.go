package queue

import "github.com/infinivision/linear/stack"

// FIFO is the part of a queue that both queue implementations share.
type FIFO[T comparable] interface {
	Count() int
	IsEmpty() bool
	Enqueue(T) (int, error)
	Dequeue() (T, bool)
	Peek() (T, bool)
}

type Queue[T comparable] interface {
	FIFO[T]
	Capacity() int
	Contains(T) bool
	Until(T) (int, bool)
}

// queue keeps the live elements in mp under the keys [head, tail).
type queue[T comparable] struct {
	cap        int // 0 is unbounded
	head, tail int
	mp         map[int]T
}

// twoStack holds the queue order as out top to bottom followed by in
// bottom to top.
type twoStack[T comparable] struct {
	cap     int
	in, out stack.Stack[T]
}
