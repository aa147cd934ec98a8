package avl

// swapAdjacent handles Swap when childH is a direct child of parentH, at
// childSide. The naive independent-node relink in swapIndependent would
// make parentH its own descendant in this case, so the two nodes'
// respective roles have to be worked out explicitly: childH takes over
// parentH's old outer position (and Balance), parentH drops into the
// slot childH vacated, and parentH's other child moves across to hang
// off childH instead.
func swapAdjacent[H comparable, N any, T Tree[H, N]](t T, parentH, childH H, childSide Side) {
	var zero H
	parent := t.Address(parentH)
	child := t.Address(childH)

	grand := t.Parent(parent)
	gSide := t.Side(parent)
	pBal := t.Balance(parent)
	cBal := t.Balance(child)
	otherH := t.Child(parent, childSide.Opposite())
	cLeft := t.Child(child, Left)
	cRight := t.Child(child, Right)

	t.SetParent(child, grand)
	t.SetSide(child, gSide)
	t.SetBalance(child, pBal)
	if grand == zero {
		t.SetRoot(childH)
	} else {
		t.SetChild(t.Address(grand), gSide, childH)
	}

	t.SetChild(child, childSide.Opposite(), otherH)
	if otherH != zero {
		o := t.Address(otherH)
		t.SetParent(o, childH)
		t.SetSide(o, childSide.Opposite())
	}
	t.SetChild(child, childSide, parentH)
	t.SetParent(parent, childH)
	t.SetSide(parent, childSide)
	t.SetBalance(parent, cBal)

	t.SetChild(parent, Left, cLeft)
	if cLeft != zero {
		l := t.Address(cLeft)
		t.SetParent(l, parentH)
		t.SetSide(l, Left)
	}
	t.SetChild(parent, Right, cRight)
	if cRight != zero {
		r := t.Address(cRight)
		t.SetParent(r, parentH)
		t.SetSide(r, Right)
	}

	if t.Extreme(Left) == parentH {
		t.SetExtreme(Left, childH)
	}
	if t.Extreme(Right) == parentH {
		t.SetExtreme(Right, childH)
	}
}

// swapIndependent handles Swap when neither xH nor yH is the other's
// parent: each simply takes over the other's old external links
// (parent/side/balance) and children, wholesale.
func swapIndependent[H comparable, N any, T Tree[H, N]](t T, xH, yH H) {
	var zero H
	x := t.Address(xH)
	y := t.Address(yH)

	xParent, xSide, xBal := t.Parent(x), t.Side(x), t.Balance(x)
	yParent, ySide, yBal := t.Parent(y), t.Side(y), t.Balance(y)
	xLeft, xRight := t.Child(x, Left), t.Child(x, Right)
	yLeft, yRight := t.Child(y, Left), t.Child(y, Right)

	place := func(h H, parent H, side Side, bal Balance, left, right H) {
		n := t.Address(h)
		t.SetParent(n, parent)
		t.SetSide(n, side)
		t.SetBalance(n, bal)
		if parent == zero {
			t.SetRoot(h)
		} else {
			t.SetChild(t.Address(parent), side, h)
		}
		t.SetChild(n, Left, left)
		if left != zero {
			l := t.Address(left)
			t.SetParent(l, h)
			t.SetSide(l, Left)
		}
		t.SetChild(n, Right, right)
		if right != zero {
			r := t.Address(right)
			t.SetParent(r, h)
			t.SetSide(r, Right)
		}
	}
	place(xH, yParent, ySide, yBal, yLeft, yRight)
	place(yH, xParent, xSide, xBal, xLeft, xRight)

	if t.Extreme(Left) == xH {
		t.SetExtreme(Left, yH)
	} else if t.Extreme(Left) == yH {
		t.SetExtreme(Left, xH)
	}
	if t.Extreme(Right) == xH {
		t.SetExtreme(Right, yH)
	} else if t.Extreme(Right) == yH {
		t.SetExtreme(Right, xH)
	}
}

// swapStructure exchanges xH's and yH's positions in the tree.
func swapStructure[H comparable, N any, T Tree[H, N]](t T, xH, yH H) {
	if xH == yH {
		return
	}
	x := t.Address(xH)
	y := t.Address(yH)
	if t.Parent(y) == xH {
		swapAdjacent[H, N, T](t, xH, yH, t.Side(y))
		return
	}
	if t.Parent(x) == yH {
		swapAdjacent[H, N, T](t, yH, xH, t.Side(x))
		return
	}
	swapIndependent[H, N, T](t, xH, yH)
}

// swapAux exchanges x's and y's non-structural fields, if the tree's node
// type carries any and says so via AuxSwapper.
func swapAux[H comparable, N any, T Tree[H, N]](t T, xH, yH H) {
	if aux, ok := any(t).(AuxSwapper[N]); ok {
		aux.SwapAux(t.Address(xH), t.Address(yH))
	}
}

// Swap exchanges the tree positions of xH and yH: afterward, xH sits
// wherever yH used to be and vice versa. Swap never touches any field
// outside the structural ones Tree exposes, except that it calls SwapAux
// if the tree implements AuxSwapper. It is a no-op if xH == yH.
func Swap[H comparable, N any, T Tree[H, N]](t T, xH, yH H) {
	if xH == yH {
		return
	}
	swapStructure[H, N, T](t, xH, yH)
	swapAux[H, N, T](t, xH, yH)
}
