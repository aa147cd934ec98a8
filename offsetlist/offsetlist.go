// Package offsetlist implements an offset-addressable spatial list over
// avl.OffsetTree: a sequence of variable-width elements, each occupying a
// span starting where the previous one ends, addressable by absolute
// position rather than index — the shape a text buffer's line table or a
// packed layout needs.
package offsetlist

import "github.com/ngavl/avltree"

type node[T any] struct {
	parent, left, right *node[T]
	side                avl.Side
	balance             avl.Balance
	offset              int
	width               int
	value               T
}

// List is a sequence of variably-sized elements addressed by absolute
// offset.
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

func (l *List[T]) Offset(n *node[T]) int        { return n.offset }
func (l *List[T]) SetOffset(n *node[T], off int) { n.offset = off }
func (l *List[T]) ZeroOffset() int              { return 0 }
func (l *List[T]) AddOffset(a, b int) int       { return a + b }
func (l *List[T]) SubOffset(a, b int) int       { return a - b }
func (l *List[T]) CompareOffset(a, b int) avl.CompareResult {
	switch {
	case a < b:
		return avl.Less
	case a > b:
		return avl.Greater
	default:
		return avl.Equal
	}
}

// Handle names a single element of a List, for use with Start, Width,
// Value, Remove, RemoveWithShift and ShiftFrom.
type Handle[T any] struct{ n *node[T] }

// Valid reports whether h names an element (the zero Handle does not).
func (h Handle[T]) Valid() bool { return h.n != nil }

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.count }

// TotalWidth returns the sum of every element's width — the end position
// of the last element, or zero if the list is empty.
func (l *List[T]) TotalWidth() int {
	if l.rightmost == nil {
		return 0
	}
	return avl.NodeOffset[*node[T], node[T], int, *List[T]](l, l.rightmost)
}

// InsertAt inserts v as a new element of the given width, starting at
// offset: every element previously starting at or after offset shifts
// forward by width. offset must fall on an existing element boundary (0,
// an element's start, or the list's current TotalWidth); InsertAt does
// not split an existing element.
func (l *List[T]) InsertAt(offset, width int, v T) Handle[T] {
	n := &node[T]{width: width, value: v}
	avl.InsertAtOffsetWithShift[*node[T], node[T], int, *List[T]](l, n, offset, width, width)
	l.count++
	return Handle[T]{n}
}

// PushBack appends v, of the given width, to the end of the list.
func (l *List[T]) PushBack(width int, v T) Handle[T] {
	return l.InsertAt(l.TotalWidth(), width, v)
}

// Start returns h's absolute start offset.
func (l *List[T]) Start(h Handle[T]) int {
	return avl.NodeOffset[*node[T], node[T], int, *List[T]](l, h.n) - h.n.width
}

// Width returns h's width.
func (l *List[T]) Width(h Handle[T]) int { return h.n.width }

// Value returns h's value.
func (l *List[T]) Value(h Handle[T]) T { return h.n.value }

// LowerBound returns the first element whose start offset is not less
// than offset, and true — or the zero Handle and false if every element
// starts before offset.
func (l *List[T]) LowerBound(offset int) (Handle[T], bool) {
	h := avl.LowerBoundOffset[*node[T], node[T], int, *List[T]](l, offset)
	if h != nil && l.Start(Handle[T]{h}) < offset {
		h = avl.Next[*node[T], node[T], *List[T]](l, h)
	}
	if h == nil {
		return Handle[T]{}, false
	}
	return Handle[T]{h}, true
}

// Find returns the element whose span covers offset (start <= offset <
// start+width), and true — or the zero Handle and false if offset is
// at or past the end of the list.
func (l *List[T]) Find(offset int) (Handle[T], bool) {
	h := avl.BinarySearchOffset[*node[T], node[T], int, *List[T]](l, func(n *node[T], absoluteEnd int) avl.CompareResult {
		start := absoluteEnd - n.width
		switch {
		case offset < start:
			return avl.Greater
		case offset >= absoluteEnd:
			return avl.Less
		default:
			return avl.Equal
		}
	})
	if h == nil {
		return Handle[T]{}, false
	}
	return Handle[T]{h}, true
}

// Remove removes h's element by a cheap local merge: the element that
// ends up adjacent to where h used to be absorbs h's width, so
// TotalWidth does not necessarily shrink by h's width alone. Use
// RemoveWithShift for exact positions everywhere.
func (l *List[T]) Remove(h Handle[T]) T {
	v := h.n.value
	avl.Erase[*node[T], node[T], int, *List[T]](l, h.n)
	l.count--
	return v
}

// RemoveWithShift removes h's element and shifts every later element
// back by h's width, keeping every other element's absolute position
// exactly correct.
func (l *List[T]) RemoveWithShift(h Handle[T]) T {
	v := h.n.value
	avl.EraseWithShift[*node[T], node[T], int, *List[T]](l, h.n)
	l.count--
	return v
}

// ShiftFrom adjusts the position of every element at or after h by
// delta, the tool for retiring whatever position debt Remove left behind.
// ShiftSuffix alone only reaches ancestors strictly after h's own
// subtree, so h's own offset (covering h and its own right subtree) is
// folded in directly first.
func (l *List[T]) ShiftFrom(h Handle[T], delta int) {
	h.n.offset += delta
	avl.ShiftSuffix[*node[T], node[T], int, *List[T]](l, h.n, delta)
}

// ForEach visits every element in order of increasing start offset. It
// stops early if visit returns false.
func (l *List[T]) ForEach(visit func(h Handle[T]) bool) {
	avl.ForEach[*node[T], node[T], *List[T]](l, func(n *node[T]) bool {
		return visit(Handle[T]{n})
	})
}
