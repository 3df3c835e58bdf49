package list

const Separator = ", "

type List[T comparable] interface {
	Len() int
	Head() *Node[T]
	Tail() *Node[T]
	String() string
	Values() []T
	ForEach(func(T))
	FindNode(T) *Node[T]

	InsertHead(T) *Node[T]
	RemoveHead() (*Node[T], error)
	AppendToTail(T) *Node[T]
	RemoveTail() (*Node[T], error)

	InsertAfter(*Node[T], T) (*Node[T], error)
	RemoveAfter(*Node[T]) (*Node[T], error)
	InsertBefore(*Node[T], T) (*Node[T], error)
	RemoveBefore(*Node[T]) (*Node[T], error)
}

// Node is an element of a doubly linked list. prev is a back-reference,
// the list owns the chain through next.
type Node[T comparable] struct {
	value      T
	prev, next *Node[T]
	l          *list[T] // nil once the node is removed
}

type list[T comparable] struct {
	n          int
	walked     int // nodes visited by traversals
	head, tail *Node[T]
}

func (nd *Node[T]) Value() T {
	return nd.value
}

// Next returns the successor of nd or nil if nd is the tail.
func (nd *Node[T]) Next() *Node[T] {
	return nd.next
}

// Prev returns the predecessor of nd or nil if nd is the head.
func (nd *Node[T]) Prev() *Node[T] {
	return nd.prev
}
