package queue

import "github.com/infinivision/linear/errmsg"

// New returns a queue holding at most capacity elements,
// a capacity <= 0 gives an unbounded queue.
func New[T comparable](capacity int) *queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &queue[T]{cap: capacity, mp: make(map[int]T)}
}

func (q *queue[T]) Count() int {
	return q.tail - q.head
}

func (q *queue[T]) Capacity() int {
	return q.cap
}

func (q *queue[T]) IsEmpty() bool {
	return q.head == q.tail
}

func (q *queue[T]) Enqueue(v T) (int, error) {
	if q.cap > 0 && q.Count() == q.cap {
		return q.Count(), errmsg.CapacityExceeded
	}
	q.mp[q.tail] = v
	q.tail++
	return q.Count(), nil
}

// Dequeue removes the oldest element, it reports false if q is empty.
func (q *queue[T]) Dequeue() (T, bool) {
	if q.head == q.tail {
		var zero T
		return zero, false
	}
	v := q.mp[q.head]
	delete(q.mp, q.head)
	if q.head++; q.head == q.tail {
		q.head, q.tail = 0, 0
	}
	return v, true
}

func (q *queue[T]) Peek() (T, bool) {
	if q.head == q.tail {
		var zero T
		return zero, false
	}
	return q.mp[q.head], true
}

func (q *queue[T]) Contains(v T) bool {
	_, ok := q.Until(v)
	return ok
}

// Until returns the number of dequeues needed to remove the oldest v.
func (q *queue[T]) Until(v T) (int, bool) {
	for i := q.head; i < q.tail; i++ {
		if q.mp[i] == v {
			return i - q.head + 1, true
		}
	}
	return 0, false
}
