package poslist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListPushAndAt(t *testing.T) {
	l := New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		l.PushBack(v)
	}
	require.Equal(t, 4, l.Len())
	for i, want := range []string{"a", "b", "c", "d"} {
		require.Equal(t, want, l.At(i))
	}
}

func TestListInsertAtMiddle(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 4, 5} {
		l.PushBack(v)
	}
	l.InsertAt(2, 3)

	var got []int
	l.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestListRemoveAt(t *testing.T) {
	l := New[int]()
	for _, v := range []int{10, 20, 30, 40} {
		l.PushBack(v)
	}
	require.Equal(t, 30, l.RemoveAt(2))
	require.Equal(t, 3, l.Len())

	var got []int
	l.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []int{10, 20, 40}, got)
}

func TestListOutOfRangePanics(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	require.Panics(t, func() { l.At(5) })
	require.Panics(t, func() { l.RemoveAt(-1) })
	require.Panics(t, func() { l.InsertAt(10, 0) })
}

// TestListNth is a randomized insert/remove/query soak test: at every
// step the list is checked against a plain slice doing the same
// operations.
func TestListNth(t *testing.T) {
	l := New[int]()
	var ref []int
	const rounds = 2000
	for i := 0; i < rounds; i++ {
		switch {
		case len(ref) == 0 || rand.Intn(3) != 0:
			k := rand.Intn(len(ref) + 1)
			v := rand.Intn(1 << 30)
			l.InsertAt(k, v)
			ref = append(ref, 0)
			copy(ref[k+1:], ref[k:])
			ref[k] = v
		default:
			k := rand.Intn(len(ref))
			got := l.RemoveAt(k)
			require.Equal(t, ref[k], got)
			ref = append(ref[:k], ref[k+1:]...)
		}
		require.Equal(t, len(ref), l.Len())
	}
	for k, want := range ref {
		require.Equal(t, want, l.At(k), "at rank %d", k)
	}
}
