package queue

import (
	"github.com/infinivision/linear/errmsg"
	"github.com/infinivision/linear/stack"
)

// NewTwoStack returns a queue built from two stacks, a capacity <= 0
// gives an unbounded queue.
func NewTwoStack[T comparable](capacity int) *twoStack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &twoStack[T]{
		cap: capacity,
		in:  stack.New[T](0),
		out: stack.New[T](0),
	}
}

func (q *twoStack[T]) Count() int {
	return q.in.Count() + q.out.Count()
}

func (q *twoStack[T]) IsEmpty() bool {
	return q.Count() == 0
}

func (q *twoStack[T]) Enqueue(v T) (int, error) {
	if q.cap > 0 && q.Count() == q.cap {
		return q.Count(), errmsg.CapacityExceeded
	}
	if _, err := q.in.Push(v); err != nil {
		return q.Count(), err
	}
	return q.Count(), nil
}

func (q *twoStack[T]) Dequeue() (T, bool) {
	q.transfer()
	v, err := q.out.Pop()
	return v, err == nil
}

func (q *twoStack[T]) Peek() (T, bool) {
	q.transfer()
	return q.out.Peek()
}

// transfer reverses in onto out, only when out is empty.
func (q *twoStack[T]) transfer() {
	if !q.out.IsEmpty() {
		return
	}
	for !q.in.IsEmpty() {
		v, _ := q.in.Pop()
		q.out.Push(v)
	}
}
