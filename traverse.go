package avl

// extreme walks from h along side until it runs out of children on that
// side and returns the node it stopped at.
func extreme[H comparable, N any, T Tree[H, N]](t T, h H, side Side) H {
	var zero H
	cur := h
	for {
		n := t.Address(cur)
		c := t.Child(n, side)
		if c == zero {
			return cur
		}
		cur = c
	}
}

// Adjacent returns the node adjacent to h in the direction named by side:
// Right for the in-order successor, Left for the in-order predecessor. It
// returns the zero H if h is already the extreme node in that direction.
func Adjacent[H comparable, N any, T Tree[H, N]](t T, h H, side Side) H {
	var zero H
	n := t.Address(h)
	if c := t.Child(n, side); c != zero {
		return extreme[H, N, T](t, c, side.Opposite())
	}
	curN := n
	for {
		p := t.Parent(curN)
		if p == zero {
			return zero
		}
		if t.Side(curN) == side.Opposite() {
			return p
		}
		curN = t.Address(p)
	}
}

// Next returns the in-order successor of h, or the zero H if h is the
// last node.
func Next[H comparable, N any, T Tree[H, N]](t T, h H) H {
	return Adjacent[H, N, T](t, h, Right)
}

// Previous returns the in-order predecessor of h, or the zero H if h is
// the first node.
func Previous[H comparable, N any, T Tree[H, N]](t T, h H) H {
	return Adjacent[H, N, T](t, h, Left)
}

// ForEach visits every node in ascending order starting from the
// leftmost. It stops early if visit returns false.
func ForEach[H comparable, N any, T Tree[H, N]](t T, visit func(H) bool) {
	var zero H
	for h := t.Extreme(Left); h != zero; h = Next[H, N, T](t, h) {
		if !visit(h) {
			return
		}
	}
}

// ForEachBackward visits every node in descending order starting from the
// rightmost. It stops early if visit returns false.
func ForEachBackward[H comparable, N any, T Tree[H, N]](t T, visit func(H) bool) {
	var zero H
	for h := t.Extreme(Right); h != zero; h = Previous[H, N, T](t, h) {
		if !visit(h) {
			return
		}
	}
}

// Clear walks every node in post-order (children before parent), calling
// destroy on each handle, then empties the tree. It does not recurse, so
// it holds up on trees deeper than the goroutine stack would tolerate.
func Clear[H comparable, N any, T Tree[H, N]](t T, destroy func(H)) {
	var zero H
	h := t.Root()
	for h != zero {
		n := t.Address(h)
		if c := t.Child(n, Left); c != zero {
			h = c
			continue
		}
		if c := t.Child(n, Right); c != zero {
			h = c
			continue
		}
		p := t.Parent(n)
		if p != zero {
			t.SetChild(t.Address(p), t.Side(n), zero)
		}
		destroy(h)
		h = p
	}
	t.SetRoot(zero)
	t.SetExtreme(Left, zero)
	t.SetExtreme(Right, zero)
}
