package avl

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// arenaNode is stored by value in a slice; handles are 1-based slice
// indices rather than pointers, with 0 standing in for "no node" — Address
// is the only place this distinction matters to the algorithm.
type arenaNode struct {
	parent, left, right int32
	side                Side
	balance             Balance
	key                 int
}

type arena struct {
	nodes                     []arenaNode
	root, leftmost, rightmost int32
}

func (a *arena) alloc(key int) int32 {
	a.nodes = append(a.nodes, arenaNode{key: key})
	return int32(len(a.nodes))
}

func (a *arena) Root() int32     { return a.root }
func (a *arena) SetRoot(h int32) { a.root = h }
func (a *arena) Extreme(s Side) int32 {
	if s == Left {
		return a.leftmost
	}
	return a.rightmost
}
func (a *arena) SetExtreme(s Side, h int32) {
	if s == Left {
		a.leftmost = h
	} else {
		a.rightmost = h
	}
}

// Address resolves a 1-based arena index to its backing slot. 0 is never
// passed in by the core — every caller first compares a handle to the
// zero int32 before addressing it.
func (a *arena) Address(h int32) *arenaNode { return &a.nodes[h-1] }

func (a *arena) Parent(n *arenaNode) int32       { return n.parent }
func (a *arena) SetParent(n *arenaNode, h int32) { n.parent = h }
func (a *arena) Child(n *arenaNode, s Side) int32 {
	if s == Left {
		return n.left
	}
	return n.right
}
func (a *arena) SetChild(n *arenaNode, s Side, h int32) {
	if s == Left {
		n.left = h
	} else {
		n.right = h
	}
}
func (a *arena) Balance(n *arenaNode) Balance       { return n.balance }
func (a *arena) SetBalance(n *arenaNode, b Balance) { n.balance = b }
func (a *arena) Side(n *arenaNode) Side             { return n.side }
func (a *arena) SetSide(n *arenaNode, s Side)       { n.side = s }

// arenaCmpKey compares the search target against a candidate node, for
// Insert/TryInsert/BinarySearch, which descend right when the target is
// greater than the current node.
func arenaCmpKey(target int) func(*arenaNode) CompareResult {
	return func(n *arenaNode) CompareResult { return compareInts(target, n.key) }
}

// arenaBoundCmp is arenaCmpKey with the operands reversed, the convention
// LowerBound/UpperBound expect: cmp reports how the node itself compares
// to the target, not the other way around.
func arenaBoundCmp(target int) func(*arenaNode) CompareResult {
	return func(n *arenaNode) CompareResult { return compareInts(n.key, target) }
}

func checkArenaStructure(t *testing.T, a *arena) {
	t.Helper()
	var walk func(h, parent int32, side Side) int
	walk = func(h, parent int32, side Side) int {
		if h == 0 {
			return 0
		}
		n := a.Address(h)
		require.Equal(t, parent, n.parent, "parent mismatch at key %d", n.key)
		if parent != 0 {
			require.Equal(t, side, n.side, "side mismatch at key %d", n.key)
		}
		lh := walk(n.left, h, Left)
		rh := walk(n.right, h, Right)
		diff := rh - lh
		require.LessOrEqual(t, diff, 1)
		require.GreaterOrEqual(t, diff, -1)
		switch n.balance {
		case Poised:
			require.Equal(t, 0, diff)
		case OverLeft:
			require.Equal(t, -1, diff)
		case OverRight:
			require.Equal(t, 1, diff)
		}
		height := lh
		if rh > lh {
			height = rh
		}
		return height + 1
	}
	walk(a.root, 0, Left)
	if a.root == 0 {
		require.Zero(t, a.leftmost)
		require.Zero(t, a.rightmost)
		return
	}
	require.Equal(t, a.leftmost, extreme[int32, arenaNode, *arena](a, a.root, Left))
	require.Equal(t, a.rightmost, extreme[int32, arenaNode, *arena](a, a.root, Right))
}

func TestArenaInsertAndTraverse(t *testing.T) {
	a := &arena{}
	keys := rand.Perm(200)
	for _, k := range keys {
		h := a.alloc(k)
		Insert[int32, arenaNode, *arena](a, h, arenaCmpKey(k))
	}
	checkArenaStructure(t, a)

	var got []int
	ForEach[int32, arenaNode, *arena](a, func(h int32) bool {
		got = append(got, a.Address(h).key)
		return true
	})
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
	require.Len(t, got, 200)
}

func TestArenaDeleteByHandle(t *testing.T) {
	a := &arena{}
	handles := map[int]int32{}
	for _, k := range rand.Perm(150) {
		h := a.alloc(k)
		Insert[int32, arenaNode, *arena](a, h, arenaCmpKey(k))
		handles[k] = h
	}
	checkArenaStructure(t, a)

	for _, k := range rand.Perm(150) {
		Delete[int32, arenaNode, *arena](a, handles[k])
		if k%23 == 0 {
			checkArenaStructure(t, a)
		}
	}
	checkArenaStructure(t, a)
	require.Zero(t, a.root)
	require.Zero(t, a.leftmost)
	require.Zero(t, a.rightmost)
}

func TestArenaBinarySearchAndBounds(t *testing.T) {
	a := &arena{}
	for _, k := range []int{10, 20, 30, 40, 50} {
		h := a.alloc(k)
		Insert[int32, arenaNode, *arena](a, h, arenaCmpKey(k))
	}
	found := BinarySearch[int32, arenaNode, *arena](a, arenaCmpKey(30))
	require.NotZero(t, found)
	require.Equal(t, 30, a.Address(found).key)

	missing := BinarySearch[int32, arenaNode, *arena](a, arenaCmpKey(31))
	require.Zero(t, missing)

	lb := LowerBound[int32, arenaNode, *arena](a, arenaBoundCmp(25))
	require.Equal(t, 30, a.Address(lb).key)

	ub := UpperBound[int32, arenaNode, *arena](a, arenaBoundCmp(30))
	require.Equal(t, 40, a.Address(ub).key)
}
