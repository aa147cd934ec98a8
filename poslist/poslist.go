// Package poslist implements an index-addressable positional list over
// avl.IndexedTree: every element has a 0-based rank that InsertAt, At and
// RemoveAt address directly, in O(log n), instead of by value comparison.
package poslist

import "github.com/ngavl/avltree"

type node[T any] struct {
	parent, left, right *node[T]
	side                avl.Side
	balance             avl.Balance
	index               int
	value               T
}

// List is an index-addressable sequence of T.
type List[T any] struct {
	root, leftmost, rightmost *node[T]
	count                     int
}

// New returns an empty List.
func New[T any]() *List[T] { return &List[T]{} }

func (l *List[T]) Root() *node[T]     { return l.root }
func (l *List[T]) SetRoot(h *node[T]) { l.root = h }
func (l *List[T]) Extreme(side avl.Side) *node[T] {
	if side == avl.Left {
		return l.leftmost
	}
	return l.rightmost
}
func (l *List[T]) SetExtreme(side avl.Side, h *node[T]) {
	if side == avl.Left {
		l.leftmost = h
	} else {
		l.rightmost = h
	}
}
func (l *List[T]) Address(h *node[T]) *node[T] { return h }

func (l *List[T]) Parent(n *node[T]) *node[T]     { return n.parent }
func (l *List[T]) SetParent(n *node[T], h *node[T]) { n.parent = h }
func (l *List[T]) Child(n *node[T], side avl.Side) *node[T] {
	if side == avl.Left {
		return n.left
	}
	return n.right
}
func (l *List[T]) SetChild(n *node[T], side avl.Side, h *node[T]) {
	if side == avl.Left {
		n.left = h
	} else {
		n.right = h
	}
}
func (l *List[T]) Balance(n *node[T]) avl.Balance       { return n.balance }
func (l *List[T]) SetBalance(n *node[T], b avl.Balance) { n.balance = b }
func (l *List[T]) Side(n *node[T]) avl.Side             { return n.side }
func (l *List[T]) SetSide(n *node[T], side avl.Side)    { n.side = side }

func (l *List[T]) Index(n *node[T]) int        { return n.index }
func (l *List[T]) SetIndex(n *node[T], idx int) { n.index = idx }
func (l *List[T]) ZeroIndex() int              { return 0 }
func (l *List[T]) OneIndex() int               { return 1 }
func (l *List[T]) AddIndex(a, b int) int       { return a + b }
func (l *List[T]) SubIndex(a, b int) int       { return a - b }
func (l *List[T]) CompareIndex(a, b int) avl.CompareResult {
	switch {
	case a < b:
		return avl.Less
	case a > b:
		return avl.Greater
	default:
		return avl.Equal
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.count }

// InsertAt inserts v so that it becomes the element at 0-based rank k,
// shifting every element currently at rank k or later up by one. k must
// be in [0, l.Len()]; InsertAt panics otherwise.
func (l *List[T]) InsertAt(k int, v T) {
	if k < 0 || k > l.count {
		panic("poslist: index out of range")
	}
	avl.InsertAtIndex[*node[T], node[T], int, *List[T]](l, &node[T]{value: v}, k)
	l.count++
}

// PushBack appends v to the end of the list.
func (l *List[T]) PushBack(v T) { l.InsertAt(l.count, v) }

// At returns the element at 0-based rank k. It panics if k is out of
// range.
func (l *List[T]) At(k int) T {
	h := l.nodeAt(k)
	return h.value
}

// Set overwrites the value at rank k, leaving its position unchanged.
func (l *List[T]) Set(k int, v T) {
	l.nodeAt(k).value = v
}

func (l *List[T]) nodeAt(k int) *node[T] {
	if k < 0 || k >= l.count {
		panic("poslist: index out of range")
	}
	h := avl.AtIndex[*node[T], node[T], int, *List[T]](l, k)
	if h == nil {
		panic("poslist: index out of range")
	}
	return h
}

// RemoveAt removes and returns the element at 0-based rank k, shifting
// every later element down by one. It panics if k is out of range.
func (l *List[T]) RemoveAt(k int) T {
	h := l.nodeAt(k)
	v := h.value
	avl.DeleteIndexed[*node[T], node[T], int, *List[T]](l, h)
	l.count--
	return v
}

// ForEach visits every element in index order. It stops early if visit
// returns false.
func (l *List[T]) ForEach(visit func(T) bool) {
	avl.ForEach[*node[T], node[T], *List[T]](l, func(h *node[T]) bool {
		return visit(h.value)
	})
}
