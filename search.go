package avl

// BinarySearch descends the tree guided by cmp, which reports how
// whatever the caller is searching for compares to the node it is given:
// Less descends left, Greater descends right (the convention Insert and
// TryInsert share; LowerBound and UpperBound read cmp the other way
// round). It returns the first node cmp reports Equal for, or the zero H
// if none does.
func BinarySearch[H comparable, N any, T Tree[H, N]](t T, cmp func(*N) CompareResult) H {
	var zero H
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		switch cmp(n) {
		case Equal:
			return h
		case Less:
			h = t.Child(n, Left)
		default:
			h = t.Child(n, Right)
		}
	}
	return zero
}

// LowerBound descends the tree guided by cmp and returns the leftmost
// node for which cmp does not report Less — the conventional first
// element not ordered before the target. It returns the zero H if every
// node compares Less.
func LowerBound[H comparable, N any, T Tree[H, N]](t T, cmp func(*N) CompareResult) H {
	var zero, candidate H
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		if cmp(n) == Less {
			h = t.Child(n, Right)
		} else {
			candidate = h
			h = t.Child(n, Left)
		}
	}
	return candidate
}

// UpperBound descends the tree guided by cmp and returns the leftmost
// node for which cmp reports Greater. It returns the zero H if no node
// compares Greater.
func UpperBound[H comparable, N any, T Tree[H, N]](t T, cmp func(*N) CompareResult) H {
	var zero, candidate H
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		if cmp(n) == Greater {
			candidate = h
			h = t.Child(n, Left)
		} else {
			h = t.Child(n, Right)
		}
	}
	return candidate
}

// AtIndex returns the node whose rank among its in-order position is k,
// where rank 0 is the leftmost node, by descending through Index instead
// of walking. It returns the zero H if k is out of range.
//
// Index(n), like Offset(n) for an OffsetTree, is defined inclusive of n
// itself: it is n's 1-based rank within its own subtree. AtIndex compares
// against k+1 so callers still think in 0-based ranks.
func AtIndex[H comparable, N any, Idx any, T IndexedTree[H, N, Idx]](t T, k Idx) H {
	var zero H
	target := t.AddIndex(k, t.OneIndex())
	base := t.ZeroIndex()
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		running := t.AddIndex(base, t.Index(n))
		switch t.CompareIndex(running, target) {
		case Equal:
			return h
		case Less:
			base = running
			h = t.Child(n, Right)
		default:
			h = t.Child(n, Left)
		}
	}
	return zero
}

// NodeIndex returns h's own 0-based rank: the count of nodes that sort
// before it.
func NodeIndex[H comparable, N any, Idx any, T IndexedTree[H, N, Idx]](t T, h H) Idx {
	var zero H
	base := t.ZeroIndex()
	base = t.AddIndex(base, t.Index(t.Address(h)))
	cur := h
	for {
		curN := t.Address(cur)
		parentH := t.Parent(curN)
		if parentH == zero {
			return t.SubIndex(base, t.OneIndex())
		}
		if t.Side(curN) == Right {
			base = t.AddIndex(base, t.Index(t.Address(parentH)))
		}
		cur = parentH
	}
}

// BinarySearchOffset is BinarySearch's counterpart for an offset-
// maintaining tree: cmp is given each candidate node's absolute offset
// from the start of the tree, not just the node itself.
func BinarySearchOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](
	t T, cmp func(n *N, absolute Off) CompareResult,
) H {
	var zero H
	base := t.ZeroOffset()
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		absolute := t.AddOffset(base, t.Offset(n))
		switch cmp(n, absolute) {
		case Equal:
			return h
		case Less:
			base = absolute
			h = t.Child(n, Right)
		default:
			h = t.Child(n, Left)
		}
	}
	return zero
}

// LowerBoundOffset returns the leftmost node whose absolute offset is not
// less than offset.
func LowerBoundOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, offset Off) H {
	var zero, candidate H
	base := t.ZeroOffset()
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		absolute := t.AddOffset(base, t.Offset(n))
		if t.CompareOffset(absolute, offset) == Less {
			base = absolute
			h = t.Child(n, Right)
		} else {
			candidate = h
			h = t.Child(n, Left)
		}
	}
	return candidate
}

// UpperBoundOffset returns the leftmost node whose absolute offset is
// strictly greater than offset.
func UpperBoundOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, offset Off) H {
	var zero, candidate H
	base := t.ZeroOffset()
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		absolute := t.AddOffset(base, t.Offset(n))
		if t.CompareOffset(absolute, offset) == Greater {
			candidate = h
			h = t.Child(n, Left)
		} else {
			base = absolute
			h = t.Child(n, Right)
		}
	}
	return candidate
}

// NodeOffset returns h's absolute offset from the start of the tree.
func NodeOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H) Off {
	base := t.ZeroOffset()
	n := t.Address(h)
	base = t.AddOffset(base, t.Offset(n))
	cur := h
	for {
		curN := t.Address(cur)
		parentH := t.Parent(curN)
		var zero H
		if parentH == zero {
			return base
		}
		if t.Side(curN) == Right {
			base = t.AddOffset(base, t.Offset(t.Address(parentH)))
		}
		cur = parentH
	}
}
