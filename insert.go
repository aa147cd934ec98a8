package avl

// PushFront attaches h as the new leftmost node in the tree.
func PushFront[H comparable, N any, T Tree[H, N]](t T, h H) {
	attachAndFixUp[H, N, T](t, t.Extreme(Left), h, Left, rotate[H, N, T])
}

// PushBack attaches h as the new rightmost node in the tree.
func PushBack[H comparable, N any, T Tree[H, N]](t T, h H) {
	attachAndFixUp[H, N, T](t, t.Extreme(Right), h, Right, rotate[H, N, T])
}

// PushBackOffset appends h to the end of an offset-maintaining tree. width
// is h's own contribution to the running offset (its length, in whatever
// unit Off measures).
func PushBackOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H, width Off) {
	t.SetOffset(t.Address(h), width)
	attachAndFixUp[H, N, T](t, t.Extreme(Right), h, Right, rotateOffset[H, N, Off, T])
}

// Insert attaches h at the position a descent guided by cmp reaches.
// Equal is treated as "goes before the matching node": later inserts of
// an equal key land to the left of (before) earlier ones, so duplicates
// end up in reverse insertion order without disturbing existing nodes.
func Insert[H comparable, N any, T Tree[H, N]](t T, h H, cmp func(*N) CompareResult) {
	var zero H
	parent, side := zero, Left
	cur := t.Root()
	for cur != zero {
		n := t.Address(cur)
		parent = cur
		if cmp(n) == Greater {
			side = Right
		} else {
			side = Left
		}
		cur = t.Child(n, side)
	}
	attachAndFixUp[H, N, T](t, parent, h, side, rotate[H, N, T])
}

// TryInsert descends guided by cmp. If some node compares Equal, TryInsert
// returns that node and ok false without calling make. Otherwise it calls
// make with the position it found — make must return a ready-to-attach
// handle; there is no failure channel, so a caller needing fallible
// allocation should allocate before calling TryInsert.
func TryInsert[H comparable, N any, T Tree[H, N]](
	t T, cmp func(*N) CompareResult, make func(parent H, side Side) H,
) (h H, inserted bool) {
	var zero H
	parent, side := zero, Left
	cur := t.Root()
	for cur != zero {
		n := t.Address(cur)
		switch cmp(n) {
		case Equal:
			return cur, false
		case Less:
			parent, side = cur, Left
		default:
			parent, side = cur, Right
		}
		cur = t.Child(n, side)
	}
	newH := make(parent, side)
	attachAndFixUp[H, N, T](t, parent, newH, side, rotate[H, N, T])
	return newH, true
}

// InsertAtIndex attaches h so that it becomes the node at 0-based rank k:
// every node currently at rank k or later shifts up by one.
func InsertAtIndex[H comparable, N any, Idx any, T IndexedTree[H, N, Idx]](t T, h H, k Idx) {
	var zero H
	t.SetIndex(t.Address(h), t.OneIndex())
	base := t.ZeroIndex()
	parent, side := zero, Left
	cur := t.Root()
	for cur != zero {
		n := t.Address(cur)
		running := t.AddIndex(base, t.Index(n))
		parent = cur
		if t.CompareIndex(running, k) == Greater {
			t.SetIndex(n, t.AddIndex(t.Index(n), t.OneIndex()))
			side = Left
		} else {
			base = running
			side = Right
		}
		cur = t.Child(n, side)
	}
	attachAndFixUp[H, N, T](t, parent, h, side, rotateIndexed[H, N, Idx, T])
}

// InsertAtOffset attaches h, contributing width of its own, after every
// node that ends at or before offset; h starts where the last of those
// ends (0 if there is none). Nodes the descent passes on its left keep
// their Offset, so nothing already in the tree moves: appending at the
// tree's total extent places h exactly at offset, while inserting before
// an existing node leaves h's span overlapping that node's. Use
// InsertAtOffsetWithShift to push later nodes forward and make room.
func InsertAtOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H, offset, width Off) {
	insertAtOffset[H, N, Off, T](t, h, offset, width, t.ZeroOffset(), false)
}

// InsertAtOffsetWithShift attaches h like InsertAtOffset, but every node
// the descent passes on its left also has shift added to its own Offset:
// offset no longer needs to land on an existing boundary, since
// everything from offset onward — including whatever node the descent
// would otherwise have split — is pushed forward by shift to make room.
func InsertAtOffsetWithShift[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H, offset, width, shift Off) {
	insertAtOffset[H, N, Off, T](t, h, offset, width, shift, true)
}

func insertAtOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](
	t T, h H, offset, width, shift Off, withShift bool,
) {
	var zero H
	t.SetOffset(t.Address(h), width)
	base := t.ZeroOffset()
	parent, side := zero, Left
	cur := t.Root()
	for cur != zero {
		n := t.Address(cur)
		absolute := t.AddOffset(base, t.Offset(n))
		parent = cur
		if t.CompareOffset(offset, absolute) != Less {
			base = absolute
			side = Right
		} else {
			if withShift {
				t.SetOffset(n, t.AddOffset(t.Offset(n), shift))
			}
			side = Left
		}
		cur = t.Child(n, side)
	}
	attachAndFixUp[H, N, T](t, parent, h, side, rotateOffset[H, N, Off, T])
}

// PushFrontOffset prepends h, of the given width, to an offset-
// maintaining tree, shifting every existing node forward by width.
func PushFrontOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H, width Off) {
	InsertAtOffsetWithShift[H, N, Off, T](t, h, t.ZeroOffset(), width, width)
}
