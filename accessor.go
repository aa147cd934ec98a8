package avl

// Tree is the accessor contract every algorithm in this package is written
// against. H is the handle type a caller uses to name a node — commonly a
// pointer, but Address is the only place the core ever resolves one to
// storage, so an arena index works just as well. N is the node storage
// type; this package never reads or writes an N field directly, only
// through the methods below.
//
// A zero value of H, returned by Root, Extreme or Child, means "no node."
// Implementations pick whatever zero H means for their storage (a nil
// pointer, or an out-of-range index) and must treat it consistently.
type Tree[H comparable, N any] interface {
	Root() H
	SetRoot(h H)
	Extreme(side Side) H
	SetExtreme(side Side, h H)

	// Address resolves a handle to the node it names. The core calls this
	// whenever it needs to read or write node fields; it never retains an
	// *N across a mutation that might invalidate it.
	Address(h H) *N

	Parent(n *N) H
	SetParent(n *N, h H)
	Child(n *N, side Side) H
	SetChild(n *N, side Side, h H)
	Balance(n *N) Balance
	SetBalance(n *N, b Balance)
	// Side reports which child of its parent n is. It is meaningless (and
	// never read) for the root.
	Side(n *N) Side
	SetSide(n *N, s Side)
}

// IndexedTree extends Tree for a node type that maintains a subtree rank:
// Index(n) is one plus the number of nodes in n's left subtree, i.e. n's
// 1-based rank within its own subtree. The core keeps this augmented value
// correct across every mutation and rotation; it never inspects the value
// except through the Zero/One/Add/Sub/Compare methods below.
type IndexedTree[H comparable, N any, Idx any] interface {
	Tree[H, N]

	Index(n *N) Idx
	SetIndex(n *N, idx Idx)
	ZeroIndex() Idx
	OneIndex() Idx
	// AddIndex, SubIndex and CompareIndex are pure value operations on
	// Idx, standing in for the operator+ / operator- / operator< the
	// original algorithm assumes of its Index type; Go generics give no
	// arithmetic on a type parameter, so the accessor supplies it
	// explicitly.
	AddIndex(a, b Idx) Idx
	SubIndex(a, b Idx) Idx
	CompareIndex(a, b Idx) CompareResult
}

// OffsetTree extends Tree for a node type that maintains a subtree-relative
// offset: Offset(n) is where n's own span ends, measured from the start of
// its own subtree rather than from the root — the widths of n's left
// subtree plus n's own width. The core keeps this correct across every
// mutation and rotation.
type OffsetTree[H comparable, N any, Off any] interface {
	Tree[H, N]

	Offset(n *N) Off
	SetOffset(n *N, off Off)
	ZeroOffset() Off
	AddOffset(a, b Off) Off
	SubOffset(a, b Off) Off
	CompareOffset(a, b Off) CompareResult
}

// IndexedOffsetTree is satisfied by a node type that maintains both an
// index and an offset simultaneously — the fourth of the "four tree
// flavours" (none, index-only, offset-only, both) an accessor may
// instantiate. Nothing in this package requires a consumer to use it; it
// exists because the capability composes for free via interface embedding.
type IndexedOffsetTree[H comparable, N any, Idx any, Off any] interface {
	IndexedTree[H, N, Idx]
	OffsetTree[H, N, Off]
}

// AuxSwapper is implemented by a node type carrying payload or other
// auxiliary fields that Swap must exchange along with tree position, since
// the core itself only knows about the structural fields in Tree.
type AuxSwapper[N any] interface {
	SwapAux(x, y *N)
}
