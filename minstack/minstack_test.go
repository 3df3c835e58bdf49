package minstack

import (
	"math/rand"
	"testing"

	"github.com/infinivision/linear/errmsg"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestMinWithDuplicates(t *testing.T) {
	s := New[int](0)
	steps := []struct {
		push int
		min  int
	}{
		{5, 5}, {3, 3}, {7, 3}, {3, 3}, {1, 1}, {1, 1},
	}
	for i, st := range steps {
		n, err := s.Push(st.push)
		require.NoError(t, err)
		require.Equal(t, i+1, n)
		m, ok := s.Min()
		require.True(t, ok)
		require.Equal(t, st.min, m)
	}
	for i := len(steps) - 1; i > 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, steps[i].push, v)
		m, _ := s.Min()
		require.Equal(t, steps[i-1].min, m)
		require.Equal(t, s.Count(), s.mins.Count())
	}
}

func TestEmpty(t *testing.T) {
	s := New[string](0)
	_, ok := s.Min()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)
	_, err := s.Pop()
	require.ErrorIs(t, err, errmsg.EmptyCollection)
	require.Zero(t, s.mins.Count())
}

func TestCapacity(t *testing.T) {
	s := New[int](2)
	s.Push(2)
	s.Push(1)
	n, err := s.Push(0)
	require.ErrorIs(t, err, errmsg.CapacityExceeded)
	require.Equal(t, 2, n)

	m, _ := s.Min()
	require.Equal(t, 1, m)
	require.Equal(t, 2, s.mins.Count())
	v, _ := s.Peek()
	require.Equal(t, 1, v)
}

func TestRandomMin(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := New[float64](0)
	var present []float64

	for i := 0; i < 5000; i++ {
		if len(present) == 0 || r.Intn(5) < 3 {
			v := float64(r.Intn(20))
			_, err := s.Push(v)
			require.NoError(t, err)
			present = append(present, v)
		} else {
			v, err := s.Pop()
			require.NoError(t, err)
			require.Equal(t, present[len(present)-1], v)
			present = present[:len(present)-1]
		}

		m, ok := s.Min()
		if len(present) == 0 {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)
		require.Equal(t, floats.Min(present), m)
		require.Equal(t, len(present), s.mins.Count())
	}
}
