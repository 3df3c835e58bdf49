package list

import (
	"fmt"
	"strings"

	"github.com/infinivision/linear/errmsg"
)

// New returns a list holding a single node with value v.
// A list is never empty.
func New[T comparable](v T) *list[T] {
	l := new(list[T])
	l.head = &Node[T]{value: v, l: l}
	l.tail = l.head
	l.n = 1
	return l
}

func (l *list[T]) Len() int {
	return l.n
}

func (l *list[T]) Head() *Node[T] {
	return l.head
}

func (l *list[T]) Tail() *Node[T] {
	return l.tail
}

func (l *list[T]) ForEach(f func(T)) {
	for nd := l.head; nd != nil; nd = nd.next {
		l.walked++
		f(nd.value)
	}
}

func (l *list[T]) Values() []T {
	vs := make([]T, 0, l.n)
	l.ForEach(func(v T) {
		vs = append(vs, v)
	})
	return vs
}

func (l *list[T]) String() string {
	var b strings.Builder
	l.ForEach(func(v T) {
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		fmt.Fprint(&b, v)
	})
	return b.String()
}

func (l *list[T]) FindNode(v T) *Node[T] {
	for nd := l.head; nd != nil; nd = nd.next {
		l.walked++
		if nd.value == v {
			return nd
		}
	}
	return nil
}

func (l *list[T]) InsertHead(v T) *Node[T] {
	nd := &Node[T]{value: v, next: l.head, l: l}
	l.head.prev = nd
	l.head = nd
	l.n++
	return nd
}

func (l *list[T]) RemoveHead() (*Node[T], error) {
	if l.head.next == nil {
		return nil, errmsg.EmptyList
	}
	nd := l.head
	l.head = nd.next
	l.head.prev = nil
	return l.release(nd), nil
}

func (l *list[T]) AppendToTail(v T) *Node[T] {
	nd := &Node[T]{value: v, prev: l.tail, l: l}
	l.tail.next = nd
	l.tail = nd
	l.n++
	return nd
}

func (l *list[T]) RemoveTail() (*Node[T], error) {
	if l.tail.prev == nil {
		return nil, errmsg.EmptyList
	}
	nd := l.tail
	l.tail = nd.prev
	l.tail.next = nil
	return l.release(nd), nil
}

func (l *list[T]) InsertAfter(ref *Node[T], v T) (*Node[T], error) {
	if !l.owns(ref) {
		return nil, errmsg.NotMember
	}
	nd := &Node[T]{value: v, prev: ref, next: ref.next, l: l}
	if ref.next != nil {
		ref.next.prev = nd
	}
	ref.next = nd
	if l.tail == ref {
		l.tail = nd
	}
	l.n++
	return nd, nil
}

func (l *list[T]) RemoveAfter(ref *Node[T]) (*Node[T], error) {
	if !l.owns(ref) {
		return nil, errmsg.NotMember
	}
	nd := ref.next
	if nd == nil {
		return nil, errmsg.NoSuchElement
	}
	ref.next = nd.next
	if nd.next != nil {
		nd.next.prev = ref
	}
	if l.tail == nd {
		l.tail = ref
	}
	return l.release(nd), nil
}

func (l *list[T]) InsertBefore(ref *Node[T], v T) (*Node[T], error) {
	if !l.owns(ref) {
		return nil, errmsg.NotMember
	}
	nd := &Node[T]{value: v, prev: ref.prev, next: ref, l: l}
	if ref.prev != nil {
		ref.prev.next = nd
	}
	ref.prev = nd
	if l.head == ref {
		l.head = nd
	}
	l.n++
	return nd, nil
}

func (l *list[T]) RemoveBefore(ref *Node[T]) (*Node[T], error) {
	if !l.owns(ref) {
		return nil, errmsg.NotMember
	}
	nd := ref.prev
	if nd == nil {
		return nil, errmsg.NoSuchElement
	}
	ref.prev = nd.prev
	if nd.prev != nil {
		nd.prev.next = ref
	}
	if l.head == nd {
		l.head = ref
	}
	return l.release(nd), nil
}

func (l *list[T]) owns(nd *Node[T]) bool {
	return nd != nil && nd.l == l
}

// release detaches an already unlinked node from the list.
func (l *list[T]) release(nd *Node[T]) *Node[T] {
	nd.prev, nd.next, nd.l = nil, nil, nil
	l.n--
	return nd
}
