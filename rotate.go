package avl

// lean is the Balance a node has when its side subtree is the taller one.
func lean(side Side) Balance {
	if side == Left {
		return OverLeft
	}
	return OverRight
}

// rotateFunc is the shape every flavour of rotation (plain, index-
// maintaining, offset-maintaining) presents to the fixup routines below,
// which are themselves written once against Tree[H, N] and never need to
// know which flavour they were handed.
type rotateFunc[H comparable, N any, T Tree[H, N]] func(t T, pivot H, side Side) H

// rotate performs the purely structural half of an AVL rotation: pivot's
// side child takes pivot's place, and pivot becomes that child's
// side.Opposite() child. It does not touch Balance (the caller always
// rewrites it immediately after) and it does not touch any augmented
// index or offset field.
func rotate[H comparable, N any, T Tree[H, N]](t T, pivotH H, side Side) H {
	var zero H
	pivot := t.Address(pivotH)
	childH := t.Child(pivot, side)
	child := t.Address(childH)

	grandchildH := t.Child(child, side.Opposite())
	t.SetChild(pivot, side, grandchildH)
	if grandchildH != zero {
		gc := t.Address(grandchildH)
		t.SetParent(gc, pivotH)
		t.SetSide(gc, side)
	}

	t.SetChild(child, side.Opposite(), pivotH)

	parentH := t.Parent(pivot)
	pivotSide := t.Side(pivot)
	t.SetParent(child, parentH)
	t.SetSide(child, pivotSide)
	if parentH == zero {
		t.SetRoot(childH)
	} else {
		t.SetChild(t.Address(parentH), pivotSide, childH)
	}

	t.SetParent(pivot, childH)
	t.SetSide(pivot, side.Opposite())
	return childH
}

// rotateIndexed wraps rotate for a tree that also maintains subtree rank.
// Index(n) for either node touched here is defined relative to its own
// left subtree, which rotate leaves intact in content (only reattached,
// not resized) for every node except the one that gains or loses the
// other's whole subtree as a sibling — so only one of pivot or child ever
// needs its Index adjusted, by exactly the other's current value.
func rotateIndexed[H comparable, N any, Idx any, T IndexedTree[H, N, Idx]](t T, pivotH H, side Side) H {
	pivot := t.Address(pivotH)
	childH := rotate[H, N, T](t, pivotH, side)
	child := t.Address(childH)
	if side == Left {
		t.SetIndex(pivot, t.SubIndex(t.Index(pivot), t.Index(child)))
	} else {
		t.SetIndex(child, t.AddIndex(t.Index(child), t.Index(pivot)))
	}
	return childH
}

// rotateOffset is rotateIndexed's counterpart for subtree-relative offset.
func rotateOffset[H comparable, N any, Off any, T OffsetTree[H, N, Off]](t T, pivotH H, side Side) H {
	pivot := t.Address(pivotH)
	childH := rotate[H, N, T](t, pivotH, side)
	child := t.Address(childH)
	if side == Left {
		t.SetOffset(pivot, t.SubOffset(t.Offset(pivot), t.Offset(child)))
	} else {
		t.SetOffset(child, t.AddOffset(t.Offset(child), t.Offset(pivot)))
	}
	return childH
}

// rotateIndexedOffset handles the fourth tree flavour, maintaining both
// augmented values across the same structural rotation.
func rotateIndexedOffset[H comparable, N any, Idx, Off any, T IndexedOffsetTree[H, N, Idx, Off]](t T, pivotH H, side Side) H {
	pivot := t.Address(pivotH)
	childH := rotate[H, N, T](t, pivotH, side)
	child := t.Address(childH)
	if side == Left {
		t.SetIndex(pivot, t.SubIndex(t.Index(pivot), t.Index(child)))
		t.SetOffset(pivot, t.SubOffset(t.Offset(pivot), t.Offset(child)))
	} else {
		t.SetIndex(child, t.AddIndex(t.Index(child), t.Index(pivot)))
		t.SetOffset(child, t.AddOffset(t.Offset(child), t.Offset(pivot)))
	}
	return childH
}

// attachAndFixUp attaches childH as parentH's side child (or as the root,
// if parentH is the zero H), initializes its structural fields, updates
// the tree's extremes if the attachment extends one, and then restores
// the AVL balance invariant up the ancestor chain.
func attachAndFixUp[H comparable, N any, T Tree[H, N]](
	t T, parentH, childH H, side Side, rot rotateFunc[H, N, T],
) {
	var zero H
	child := t.Address(childH)
	t.SetParent(child, parentH)
	t.SetSide(child, side)
	t.SetChild(child, Left, zero)
	t.SetChild(child, Right, zero)
	t.SetBalance(child, Poised)

	if parentH == zero {
		t.SetRoot(childH)
		t.SetExtreme(Left, childH)
		t.SetExtreme(Right, childH)
		return
	}
	t.SetChild(t.Address(parentH), side, childH)
	if parentH == t.Extreme(side) {
		t.SetExtreme(side, childH)
	}
	fixUpAttachment[H, N, T](t, childH, rot)
}

// fixUpAttachment restores the AVL balance invariant after childH has
// just been attached somewhere under the tree (childH itself is already
// balanced; its ancestors may not be).
func fixUpAttachment[H comparable, N any, T Tree[H, N]](t T, childH H, rot rotateFunc[H, N, T]) {
	var zero H
	h := childH
	for {
		n := t.Address(h)
		parentH := t.Parent(n)
		if parentH == zero {
			return
		}
		side := t.Side(n)
		parent := t.Address(parentH)

		switch bal := t.Balance(parent); bal {
		case Poised:
			t.SetBalance(parent, lean(side))
			h = parentH
			continue
		case lean(side.Opposite()):
			t.SetBalance(parent, Poised)
			return
		default:
			if t.Balance(n) == lean(side) {
				rot(t, parentH, side)
				t.SetBalance(t.Address(parentH), Poised)
				t.SetBalance(n, Poised)
				return
			}
			grandchildH := t.Child(n, side.Opposite())
			gB := t.Balance(t.Address(grandchildH))
			rot(t, h, side.Opposite())
			rot(t, parentH, side)
			switch gB {
			case Poised:
				t.SetBalance(t.Address(parentH), Poised)
				t.SetBalance(n, Poised)
			case lean(side):
				t.SetBalance(t.Address(parentH), lean(side.Opposite()))
				t.SetBalance(n, Poised)
			default:
				t.SetBalance(t.Address(parentH), Poised)
				t.SetBalance(n, lean(side))
			}
			t.SetBalance(t.Address(grandchildH), Poised)
			return
		}
	}
}

// fixUpDetachment restores the AVL balance invariant after the subtree
// on side of the node at h has just shrunk by one node (h itself still
// exists; one of its descendants, or h's side child directly, does not).
func fixUpDetachment[H comparable, N any, T Tree[H, N]](t T, startH H, startSide Side, rot rotateFunc[H, N, T]) {
	var zero H
	h, side := startH, startSide
	for h != zero {
		n := t.Address(h)
		switch bal := t.Balance(n); bal {
		case Poised:
			t.SetBalance(n, lean(side.Opposite()))
			return
		case lean(side):
			t.SetBalance(n, Poised)
		default:
			heavy := side.Opposite()
			childH := t.Child(n, heavy)
			child := t.Address(childH)
			childBal := t.Balance(child)
			if childBal != lean(heavy.Opposite()) {
				newH := rot(t, h, heavy)
				if childBal == Poised {
					t.SetBalance(t.Address(h), lean(heavy))
					t.SetBalance(t.Address(newH), lean(heavy.Opposite()))
					return
				}
				t.SetBalance(t.Address(h), Poised)
				t.SetBalance(t.Address(newH), Poised)
				h = newH
			} else {
				grandchildH := t.Child(child, heavy.Opposite())
				gB := t.Balance(t.Address(grandchildH))
				rot(t, childH, heavy.Opposite())
				newH := rot(t, h, heavy)
				switch gB {
				case Poised:
					t.SetBalance(t.Address(h), Poised)
					t.SetBalance(t.Address(childH), Poised)
				case lean(heavy):
					t.SetBalance(t.Address(h), lean(heavy.Opposite()))
					t.SetBalance(t.Address(childH), Poised)
				default:
					t.SetBalance(t.Address(h), Poised)
					t.SetBalance(t.Address(childH), lean(heavy))
				}
				t.SetBalance(t.Address(grandchildH), Poised)
				h = newH
			}
		}
		n = t.Address(h)
		p := t.Parent(n)
		if p == zero {
			return
		}
		side = t.Side(n)
		h = p
	}
}
