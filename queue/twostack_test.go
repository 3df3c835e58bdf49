package queue

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/infinivision/linear/errmsg"
	"github.com/stretchr/testify/require"
)

func TestTwoStack(t *testing.T) {
	q := NewTwoStack[string](0)
	for _, v := range []string{"a", "b", "c"} {
		q.Enqueue(v)
	}

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 2, q.Count())

	v, ok = q.Peek()
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, 2, q.Count())

	q.Enqueue("d")
	for _, want := range []string{"b", "c", "d"} {
		v, ok = q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok = q.Dequeue()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)
	require.True(t, q.IsEmpty())
}

func TestTwoStackCapacity(t *testing.T) {
	q := NewTwoStack[int](2)
	q.Enqueue(1)
	q.Enqueue(2)
	n, err := q.Enqueue(3)
	require.ErrorIs(t, err, errmsg.CapacityExceeded)
	require.Equal(t, 2, n)

	q.Dequeue()
	n, err = q.Enqueue(3)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestTwoStackLazyTransfer(t *testing.T) {
	q := NewTwoStack[int](0)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Dequeue()
	require.Equal(t, 1, q.out.Count())

	q.Enqueue(3)
	require.Equal(t, 1, q.in.Count())
	require.Equal(t, 1, q.out.Count())

	v, _ := q.Peek()
	require.Equal(t, 2, v)
	require.Equal(t, 1, q.in.Count())
}

func TestTwoStackAgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	var q FIFO[int] = NewTwoStack[int](0)
	ref := arrayqueue.New()

	for i := 0; i < 5000; i++ {
		switch r.Intn(3) {
		case 0, 1:
			q.Enqueue(i)
			ref.Enqueue(i)
		default:
			v, ok := q.Dequeue()
			want, wantOk := ref.Dequeue()
			require.Equal(t, wantOk, ok)
			if ok {
				require.Equal(t, want, v)
			}
		}
		require.Equal(t, ref.Size(), q.Count())
		if want, ok := ref.Peek(); ok {
			v, _ := q.Peek()
			require.Equal(t, want, v)
		}
	}
}
