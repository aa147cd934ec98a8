package avl

// detach removes h from the tree. h must have at most one child — the
// two-children deletions below swap their node down to a one-child
// position before calling this.
func detach[H comparable, N any, T Tree[H, N]](t T, h H, rot rotateFunc[H, N, T]) {
	var zero H
	n := t.Address(h)
	child := t.Child(n, Left)
	if child == zero {
		child = t.Child(n, Right)
	}
	parentH := t.Parent(n)
	side := t.Side(n)

	if child != zero {
		c := t.Address(child)
		t.SetParent(c, parentH)
		t.SetSide(c, side)
	}
	if parentH == zero {
		t.SetRoot(child)
	} else {
		t.SetChild(t.Address(parentH), side, child)
	}

	if t.Extreme(Left) == h {
		if child != zero {
			t.SetExtreme(Left, extreme[H, N, T](t, child, Left))
		} else {
			t.SetExtreme(Left, parentH)
		}
	}
	if t.Extreme(Right) == h {
		if child != zero {
			t.SetExtreme(Right, extreme[H, N, T](t, child, Right))
		} else {
			t.SetExtreme(Right, parentH)
		}
	}

	if parentH != zero {
		fixUpDetachment[H, N, T](t, parentH, side, rot)
	}
}

// walkLeftAncestors climbs from h to the root, visiting the node at every
// step taken leftward — exactly the ancestors whose augmented value
// (defined relative to their own left subtree) is affected by a change at
// or below h.
func walkLeftAncestors[H comparable, N any, T Tree[H, N]](t T, h H, visit func(parent *N)) {
	var zero H
	cur := h
	for {
		n := t.Address(cur)
		parentH := t.Parent(n)
		if parentH == zero {
			return
		}
		if t.Side(n) == Left {
			visit(t.Address(parentH))
		}
		cur = parentH
	}
}

// detachSuccessor finds h's in-order successor (the leftmost node of
// rightH's subtree) and, if it is not rightH itself, unlinks it from its
// own position, promoting its right child in its place. It reports the
// successor, and — when a spine walk happened — the node the successor
// was hanging off of and its depth, for callers that need to revisit each
// spine node to correct an augmented value.
func detachSuccessor[H comparable, N any, T Tree[H, N]](t T, rightH H) (succH H, spineParentH H, spineLen int) {
	var zero H
	cur := rightH
	for {
		c := t.Address(cur)
		l := t.Child(c, Left)
		if l == zero {
			break
		}
		spineLen++
		cur = l
	}
	succH = cur
	if succH == rightH {
		return succH, zero, 0
	}
	succ := t.Address(succH)
	succRight := t.Child(succ, Right)
	spineParentH = t.Parent(succ)
	sp := t.Address(spineParentH)
	t.SetChild(sp, Left, succRight)
	if succRight != zero {
		r := t.Address(succRight)
		t.SetParent(r, spineParentH)
		t.SetSide(r, Left)
	}
	return succH, spineParentH, spineLen
}

// walkSpine visits each node from spineParentH up to (but not including)
// stopH — the set detachSuccessor pulled the successor out from under.
func walkSpine[H comparable, N any, T Tree[H, N]](t T, spineParentH, stopH H, visit func(n *N)) {
	cur := spineParentH
	for cur != stopH {
		n := t.Address(cur)
		visit(n)
		cur = t.Parent(n)
	}
}

// placeSuccessor attaches succH in h's old structural position: it takes
// over h's parent/side/balance and h's left child, and — unless succH was
// already rightH (direct adjacency, where its own right child is already
// correct) — h's right child too.
func placeSuccessor[H comparable, N any, T Tree[H, N]](t T, h, succH, leftH, rightH H) {
	var zero H
	n := t.Address(h)
	succ := t.Address(succH)
	parentH := t.Parent(n)
	side := t.Side(n)
	bal := t.Balance(n)

	t.SetParent(succ, parentH)
	t.SetSide(succ, side)
	t.SetBalance(succ, bal)
	if parentH == zero {
		t.SetRoot(succH)
	} else {
		t.SetChild(t.Address(parentH), side, succH)
	}

	t.SetChild(succ, Left, leftH)
	if leftH != zero {
		l := t.Address(leftH)
		t.SetParent(l, succH)
		t.SetSide(l, Left)
	}

	if succH != rightH {
		t.SetChild(succ, Right, rightH)
		if rightH != zero {
			r := t.Address(rightH)
			t.SetParent(r, succH)
			t.SetSide(r, Right)
		}
	}

	if t.Extreme(Left) == h {
		t.SetExtreme(Left, succH)
	}
	if t.Extreme(Right) == h {
		t.SetExtreme(Right, succH)
	}
}

// twoChildren reports whether h currently has both children, along with
// their handles.
func twoChildren[H comparable, N any, T Tree[H, N]](t T, h H) (leftH, rightH H, ok bool) {
	var zero H
	n := t.Address(h)
	leftH = t.Child(n, Left)
	rightH = t.Child(n, Right)
	return leftH, rightH, leftH != zero && rightH != zero
}

// Delete removes h from the tree. If h has two children, its in-order
// successor takes its place first.
func Delete[H comparable, N any, T Tree[H, N]](t T, h H) {
	if leftH, rightH, ok := twoChildren[H, N, T](t, h); ok {
		succH, _, _ := detachSuccessor[H, N, T](t, rightH)
		fixupH, fixupSide := succH, Right
		if succH != rightH {
			fixupH = t.Parent(t.Address(succH))
			fixupSide = Left
		}
		placeSuccessor[H, N, T](t, h, succH, leftH, rightH)
		fixUpDetachment[H, N, T](t, fixupH, fixupSide, rotate[H, N, T])
		return
	}
	detach[H, N, T](t, h, rotate[H, N, T])
}

// DeleteIndexed removes h from an index-maintaining tree, keeping every
// remaining node's Index correct. Every node h's removal passed through —
// the spine between h's right child and the successor, and every ancestor
// whose left subtree h was a part of — loses exactly one from its count.
func DeleteIndexed[H comparable, N any, Idx any, T IndexedTree[H, N, Idx]](t T, h H) {
	if leftH, rightH, ok := twoChildren[H, N, T](t, h); ok {
		succH, spineParentH, spineLen := detachSuccessor[H, N, T](t, rightH)
		if spineLen > 0 {
			walkSpine[H, N, T](t, spineParentH, h, func(n *N) {
				t.SetIndex(n, t.SubIndex(t.Index(n), t.OneIndex()))
			})
		}
		succ := t.Address(succH)
		hIndex := t.Index(t.Address(h))
		fixupH, fixupSide := succH, Right
		if succH != rightH {
			fixupH = spineParentH
			fixupSide = Left
		}
		placeSuccessor[H, N, T](t, h, succH, leftH, rightH)
		t.SetIndex(succ, hIndex)
		walkLeftAncestors[H, N, T](t, succH, func(p *N) {
			t.SetIndex(p, t.SubIndex(t.Index(p), t.OneIndex()))
		})
		fixUpDetachment[H, N, T](t, fixupH, fixupSide, rotateIndexed[H, N, Idx, T])
		return
	}
	var zero H
	n := t.Address(h)
	parentH := t.Parent(n)
	side := t.Side(n)
	if parentH != zero {
		if side == Left {
			pn := t.Address(parentH)
			t.SetIndex(pn, t.SubIndex(t.Index(pn), t.OneIndex()))
		}
		walkLeftAncestors[H, N, T](t, parentH, func(p *N) {
			t.SetIndex(p, t.SubIndex(t.Index(p), t.OneIndex()))
		})
	}
	detach[H, N, T](t, h, rotateIndexed[H, N, Idx, T])
}

// ownOffset extracts h's own contribution to Offset — its width, net of
// whatever its left subtree contributes.
func ownOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H) Off {
	var zero H
	n := t.Address(h)
	width := t.Offset(n)
	// The left subtree's total is the sum of Offset along its right spine.
	for c := t.Child(n, Left); c != zero; {
		cn := t.Address(c)
		width = t.SubOffset(width, t.Offset(cn))
		c = t.Child(cn, Right)
	}
	return width
}

// Erase removes h from an offset-maintaining tree by a cheap, local merge:
// whatever node ends up adjacent to where h used to be absorbs h's own
// width into its own Offset, rather than walking every ancestor. Total
// tree extent is therefore not reduced by this call alone on every code
// path — notably, if h has only a left child, nothing absorbs h's width
// at all, matching the asymmetry of the algorithm this is grounded on. A
// caller that needs exact positions everywhere should use EraseWithShift,
// or follow Erase with a ShiftSuffix once it knows the right delta.
func Erase[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H) {
	var zero H
	n := t.Address(h)
	leftH := t.Child(n, Left)
	rightH := t.Child(n, Right)
	hOffset := t.Offset(n)

	if leftH != zero && rightH != zero {
		succH, spineParentH, spineLen := detachSuccessor[H, N, T](t, rightH)
		succ := t.Address(succH)
		succOldOffset := t.Offset(succ)
		if spineLen > 0 {
			walkSpine[H, N, T](t, spineParentH, h, func(p *N) {
				t.SetOffset(p, t.SubOffset(t.Offset(p), succOldOffset))
			})
		}
		fixupH, fixupSide := succH, Right
		if succH != rightH {
			fixupH = spineParentH
			fixupSide = Left
		}
		placeSuccessor[H, N, T](t, h, succH, leftH, rightH)
		t.SetOffset(succ, t.AddOffset(succOldOffset, hOffset))
		fixUpDetachment[H, N, T](t, fixupH, fixupSide, rotateOffset[H, N, Off, T])
		return
	}

	if rightH != zero {
		r := t.Address(rightH)
		t.SetOffset(r, t.AddOffset(t.Offset(r), hOffset))
	}
	detach[H, N, T](t, h, rotateOffset[H, N, Off, T])
}

// EraseWithShift removes h like Erase, but keeps every node's Offset
// exactly correct instead of merging h's width into a neighbor: the node
// that takes h's place keeps its own real width, and every ancestor that
// had h in its left subtree is corrected on the way up to the root.
func EraseWithShift[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H) {
	var zero H
	n := t.Address(h)
	leftH := t.Child(n, Left)
	rightH := t.Child(n, Right)
	hOffset := t.Offset(n)
	width := ownOffset[H, N, Off, T](t, h)

	if leftH != zero && rightH != zero {
		succH, spineParentH, spineLen := detachSuccessor[H, N, T](t, rightH)
		succ := t.Address(succH)
		succOldOffset := t.Offset(succ)
		if spineLen > 0 {
			walkSpine[H, N, T](t, spineParentH, h, func(p *N) {
				t.SetOffset(p, t.SubOffset(t.Offset(p), succOldOffset))
			})
		}
		fixupH, fixupSide := succH, Right
		if succH != rightH {
			fixupH = spineParentH
			fixupSide = Left
		}
		placeSuccessor[H, N, T](t, h, succH, leftH, rightH)
		t.SetOffset(succ, t.AddOffset(t.SubOffset(hOffset, width), succOldOffset))
		walkLeftAncestors[H, N, T](t, succH, func(p *N) {
			t.SetOffset(p, t.SubOffset(t.Offset(p), width))
		})
		fixUpDetachment[H, N, T](t, fixupH, fixupSide, rotateOffset[H, N, Off, T])
		return
	}

	if rightH != zero {
		// The right child keeps its own Offset: its left subtree and width
		// are unchanged by taking h's place.
		walkLeftAncestors[H, N, T](t, h, func(p *N) {
			t.SetOffset(p, t.SubOffset(t.Offset(p), width))
		})
		detach[H, N, T](t, h, rotateOffset[H, N, Off, T])
		return
	}

	parentH := t.Parent(n)
	side := t.Side(n)
	if parentH != zero {
		if side == Left {
			pn := t.Address(parentH)
			t.SetOffset(pn, t.SubOffset(t.Offset(pn), width))
		}
		walkLeftAncestors[H, N, T](t, parentH, func(p *N) {
			t.SetOffset(p, t.SubOffset(t.Offset(p), width))
		})
	}
	detach[H, N, T](t, h, rotateOffset[H, N, Off, T])
}

// ShiftSuffix adjusts every node strictly after h — not h itself, nor
// anything in h's own right subtree, whose positions are already
// anchored to h's own Offset — by delta, in O(log n): it walks h's
// ancestor chain and patches the Offset of every ancestor reached by a
// leftward step. This is the set Erase otherwise leaves stale when a
// caller needs exact positions restored afterward,
// for instance because it knows a deletion and a same-sized insertion
// will cancel out. A caller that also wants h's own subtree to move
// adds delta to h's Offset directly before calling ShiftSuffix.
func ShiftSuffix[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, h H, delta Off) {
	walkLeftAncestors[H, N, T](t, h, func(p *N) {
		t.SetOffset(p, t.AddOffset(t.Offset(p), delta))
	})
}

// PopFront removes and returns the tree's current leftmost node, or the
// zero H if the tree is empty.
func PopFront[H comparable, N any, T Tree[H, N]](t T) H {
	var zero H
	h := t.Extreme(Left)
	if h == zero {
		return zero
	}
	detach[H, N, T](t, h, rotate[H, N, T])
	return h
}

// PopBack removes and returns the tree's current rightmost node, or the
// zero H if the tree is empty.
func PopBack[H comparable, N any, T Tree[H, N]](t T) H {
	var zero H
	h := t.Extreme(Right)
	if h == zero {
		return zero
	}
	detach[H, N, T](t, h, rotate[H, N, T])
	return h
}

// PopFrontOffset removes and returns the leftmost node of an offset-
// maintaining tree. The leftmost node has no left child, so its own
// Offset field already equals its own width; nothing else needs
// correcting beyond the ancestors it climbs through.
func PopFrontOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T) H {
	var zero H
	h := t.Extreme(Left)
	if h == zero {
		return zero
	}
	width := t.Offset(t.Address(h))
	parentH := t.Parent(t.Address(h))
	if parentH != zero {
		pn := t.Address(parentH)
		t.SetOffset(pn, t.SubOffset(t.Offset(pn), width))
		walkLeftAncestors[H, N, T](t, parentH, func(p *N) {
			t.SetOffset(p, t.SubOffset(t.Offset(p), width))
		})
	}
	detach[H, N, T](t, h, rotateOffset[H, N, Off, T])
	return h
}

// PopBackOffset removes and returns the rightmost node of an offset-
// maintaining tree.
func PopBackOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T) H {
	var zero H
	h := t.Extreme(Right)
	if h == zero {
		return zero
	}
	width := ownOffset[H, N, Off, T](t, h)
	parentH := t.Parent(t.Address(h))
	side := t.Side(t.Address(h))
	if parentH != zero {
		if side == Left {
			pn := t.Address(parentH)
			t.SetOffset(pn, t.SubOffset(t.Offset(pn), width))
		}
		walkLeftAncestors[H, N, T](t, parentH, func(p *N) {
			t.SetOffset(p, t.SubOffset(t.Offset(p), width))
		})
	}
	detach[H, N, T](t, h, rotateOffset[H, N, Off, T])
	return h
}
