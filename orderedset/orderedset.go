// Package orderedset implements a sorted set of values over avl.Tree,
// carrying no augmented value at all — the plainest of the three
// consumers layered on the core.
package orderedset

import "github.com/ngavl/avltree"

type node[T any] struct {
	parent, left, right *node[T]
	side                avl.Side
	balance             avl.Balance
	value               T
}

// Set is a sorted set of T, ordered by a caller-supplied comparator.
type Set[T any] struct {
	root, leftmost, rightmost *node[T]
	cmp                       func(a, b T) int
	count                     int
}

// New returns an empty Set ordered by cmp, following the convention of
// slices.SortFunc: cmp(a, b) is negative if a orders before b, zero if
// they're equivalent, positive if a orders after b.
func New[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{cmp: cmp}
}

func (s *Set[T]) Root() *node[T]     { return s.root }
func (s *Set[T]) SetRoot(h *node[T]) { s.root = h }
func (s *Set[T]) Extreme(side avl.Side) *node[T] {
	if side == avl.Left {
		return s.leftmost
	}
	return s.rightmost
}
func (s *Set[T]) SetExtreme(side avl.Side, h *node[T]) {
	if side == avl.Left {
		s.leftmost = h
	} else {
		s.rightmost = h
	}
}
func (s *Set[T]) Address(h *node[T]) *node[T] { return h }

func (s *Set[T]) Parent(n *node[T]) *node[T]     { return n.parent }
func (s *Set[T]) SetParent(n *node[T], h *node[T]) { n.parent = h }
func (s *Set[T]) Child(n *node[T], side avl.Side) *node[T] {
	if side == avl.Left {
		return n.left
	}
	return n.right
}
func (s *Set[T]) SetChild(n *node[T], side avl.Side, h *node[T]) {
	if side == avl.Left {
		n.left = h
	} else {
		n.right = h
	}
}
func (s *Set[T]) Balance(n *node[T]) avl.Balance       { return n.balance }
func (s *Set[T]) SetBalance(n *node[T], b avl.Balance) { n.balance = b }
func (s *Set[T]) Side(n *node[T]) avl.Side             { return n.side }
func (s *Set[T]) SetSide(n *node[T], side avl.Side)    { n.side = side }

func (s *Set[T]) cmpTo(v T) func(*node[T]) avl.CompareResult {
	return func(n *node[T]) avl.CompareResult {
		switch c := s.cmp(v, n.value); {
		case c < 0:
			return avl.Less
		case c > 0:
			return avl.Greater
		default:
			return avl.Equal
		}
	}
}

// Insert adds v to the set, reporting whether it was actually added — an
// equivalent value already present is left untouched.
func (s *Set[T]) Insert(v T) bool {
	_, inserted := avl.TryInsert[*node[T], node[T], *Set[T]](
		s, s.cmpTo(v),
		func(parent *node[T], side avl.Side) *node[T] {
			return &node[T]{value: v}
		},
	)
	if inserted {
		s.count++
	}
	return inserted
}

// Contains reports whether an equivalent value is in the set.
func (s *Set[T]) Contains(v T) bool {
	return avl.BinarySearch[*node[T], node[T], *Set[T]](s, s.cmpTo(v)) != nil
}

// Remove removes an equivalent value from the set, reporting whether
// anything was removed.
func (s *Set[T]) Remove(v T) bool {
	h := avl.BinarySearch[*node[T], node[T], *Set[T]](s, s.cmpTo(v))
	if h == nil {
		return false
	}
	avl.Delete[*node[T], node[T], *Set[T]](s, h)
	s.count--
	return true
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return s.count }

// Min returns the smallest value in the set and true, or the zero value
// and false if the set is empty.
func (s *Set[T]) Min() (v T, ok bool) {
	if s.leftmost == nil {
		return v, false
	}
	return s.leftmost.value, true
}

// Max returns the largest value in the set and true, or the zero value
// and false if the set is empty.
func (s *Set[T]) Max() (v T, ok bool) {
	if s.rightmost == nil {
		return v, false
	}
	return s.rightmost.value, true
}

// ForEach visits every value in ascending order. It stops early if visit
// returns false.
func (s *Set[T]) ForEach(visit func(T) bool) {
	avl.ForEach[*node[T], node[T], *Set[T]](s, func(h *node[T]) bool {
		return visit(h.value)
	})
}

// Iterator walks a Set in ascending order.
type Iterator[T any] struct {
	s   *Set[T]
	cur *node[T]
}

// Iterator returns an Iterator positioned before the first value.
func (s *Set[T]) Iterator() Iterator[T] {
	return Iterator[T]{s: s}
}

// First positions the iterator at the smallest value.
func (it *Iterator[T]) First() { it.cur = it.s.leftmost }

// Next advances the iterator to the next-largest value.
func (it *Iterator[T]) Next() {
	it.cur = avl.Next[*node[T], node[T], *Set[T]](it.s, it.cur)
}

// Valid reports whether the iterator is positioned at a value.
func (it *Iterator[T]) Valid() bool { return it.cur != nil }

// Cur returns the value the iterator is currently positioned at. It
// panics if the iterator is not Valid.
func (it *Iterator[T]) Cur() T { return it.cur.value }
