package orderedset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestSetInsertOrder(t *testing.T) {
	s := New[int](intCmp)
	for _, v := range []int{5, 3, 8, 1, 9, 3, 5} {
		s.Insert(v)
	}
	require.Equal(t, 5, s.Len())

	var got []int
	s.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []int{1, 3, 5, 8, 9}, got)
}

func TestSetContainsAndRemove(t *testing.T) {
	s := New[int](intCmp)
	for _, v := range []int{10, 20, 30} {
		require.True(t, s.Insert(v))
	}
	require.False(t, s.Insert(20))

	require.True(t, s.Contains(20))
	require.False(t, s.Contains(25))

	require.True(t, s.Remove(20))
	require.False(t, s.Remove(20))
	require.False(t, s.Contains(20))
	require.Equal(t, 2, s.Len())
}

func TestSetMinMax(t *testing.T) {
	s := New[int](intCmp)
	_, ok := s.Min()
	require.False(t, ok)

	for _, v := range []int{4, 1, 7, 2} {
		s.Insert(v)
	}
	min, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 1, min)
	max, ok := s.Max()
	require.True(t, ok)
	require.Equal(t, 7, max)
}

func TestSetIterator(t *testing.T) {
	s := New[int](intCmp)
	for _, v := range []int{9, 2, 5, 1} {
		s.Insert(v)
	}
	var got []int
	it := s.Iterator()
	for it.First(); it.Valid(); it.Next() {
		got = append(got, it.Cur())
	}
	require.Equal(t, []int{1, 2, 5, 9}, got)
}

func TestSetRandomizedAgainstReference(t *testing.T) {
	s := New[int](intCmp)
	present := map[int]bool{}
	const n = 1000
	for _, op := range rand.Perm(n) {
		v := op % 200
		if present[v] {
			require.True(t, s.Remove(v))
			delete(present, v)
		} else {
			require.True(t, s.Insert(v))
			present[v] = true
		}
	}
	var expected []int
	for v := range present {
		expected = append(expected, v)
	}
	sort.Ints(expected)

	var got []int
	s.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, expected, got)
	require.Equal(t, len(expected), s.Len())
}
