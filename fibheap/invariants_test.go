package fibheap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// ringSlice collects the members of the ring anchored at head, in right
// order, or nil for an empty ring.
func ringSlice[T any](head *Node[T]) []*Node[T] {
	if head == nil {
		return nil
	}
	var out []*Node[T]
	for n := head; ; {
		out = append(out, n)
		n = n.right
		if n == head {
			break
		}
	}

	return out
}

// verifyHeap asserts every structural invariant of the forest: ring
// stitching, parent and degree bookkeeping, heap order, unmarked roots,
// extreme correctness, handle ownership, and size accounting.
func verifyHeap[T any](t *testing.T, h *Heap[T]) {
	t.Helper()
	if h.extreme == nil {
		require.Zero(t, h.size, "empty forest must report size 0")
		return
	}
	require.Nil(t, h.extreme.parent, "extreme must be a root")

	total := 0
	for _, r := range ringSlice(h.extreme) {
		require.Nil(t, r.parent, "root must carry no parent")
		require.False(t, r.marked, "roots are never marked")
		require.False(t, h.better(r.value, h.extreme.value), "extreme must be the best root")
		total += verifySubtree(t, h, r)
	}
	require.Equal(t, h.size, total, "size must count every reachable node")
}

// verifySubtree checks one tree and returns how many nodes it holds.
func verifySubtree[T any](t *testing.T, h *Heap[T], n *Node[T]) int {
	t.Helper()
	require.NotNil(t, n.owner, "stored node must carry an owner")
	require.Same(t, h.id, n.owner.resolve(), "stored node must resolve to its heap")
	require.Same(t, n, n.left.right, "left/right stitching broken")
	require.Same(t, n, n.right.left, "right/left stitching broken")

	if n.child == nil {
		require.Zero(t, n.degree, "childless node must report degree 0")
		return 1
	}
	children := ringSlice(n.child)
	require.Len(t, children, n.degree, "degree must match the child ring")

	count := 1
	for _, c := range children {
		require.Same(t, n, c.parent, "child must point back at its parent")
		require.False(t, h.better(c.value, n.value), "heap order violated")
		count += verifySubtree(t, h, c)
	}

	return count
}

func TestInsert_AllRootsUntilFirstExtraction(t *testing.T) {
	h := New[int](Min)
	for i := 100; i > 0; i-- {
		h.Insert(i)
	}
	verifyHeap(t, h)

	// Insert never restructures: one root per value, no children.
	require.Len(t, ringSlice(h.extreme), 100)
	require.Equal(t, 1, h.extreme.value)
}

func TestConsolidate_BuildsBinomialDegrees(t *testing.T) {
	h := New[int](Min)
	for i := 0; i < 16; i++ {
		h.Insert(i)
	}

	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 0, v)
	verifyHeap(t, h)

	// The 15 surviving singletons pair up into one tree per degree,
	// following the binary decomposition 15 = 1 + 2 + 4 + 8.
	var degrees []int
	for _, r := range ringSlice(h.extreme) {
		degrees = append(degrees, r.degree)
	}
	slices.Sort(degrees)
	require.Equal(t, []int{0, 1, 2, 3}, degrees)
}

func TestCut_FirstLossMarksParent(t *testing.T) {
	h := New[int](Min)
	for i := 0; i < 16; i++ {
		h.Insert(i)
	}
	_, err := h.Pop()
	require.NoError(t, err)

	// Locate the degree-3 tree and its degree-2 child.
	var root *Node[int]
	for _, r := range ringSlice(h.extreme) {
		if r.degree == 3 {
			root = r
			break
		}
	}
	require.NotNil(t, root)

	var mid *Node[int]
	for _, c := range ringSlice(root.child) {
		if c.degree == 2 {
			mid = c
			break
		}
	}
	require.NotNil(t, mid)
	grandchildren := ringSlice(mid.child)
	require.Len(t, grandchildren, 2)

	// First loss: the grandchild is cut to the root list and its parent
	// is marked but stays put.
	require.NoError(t, h.DecreaseKey(grandchildren[0], -1))
	require.Nil(t, grandchildren[0].parent)
	require.False(t, grandchildren[0].marked)
	require.True(t, mid.marked)
	require.Same(t, root, mid.parent)
	verifyHeap(t, h)

	// Second loss: the marked parent is cut loose as well and arrives
	// in the root list unmarked.
	require.NoError(t, h.DecreaseKey(grandchildren[1], -2))
	require.Nil(t, mid.parent)
	require.False(t, mid.marked)
	require.Equal(t, 2, root.degree)
	verifyHeap(t, h)

	got := h.ExtractAllSorted()
	require.Len(t, got, 15)
	require.Equal(t, []int{-2, -1}, got[:2])
	require.True(t, slices.IsSorted(got))
}

func TestConsolidate_DegreeTableHoldsLargeHeaps(t *testing.T) {
	h := New[int](Min)
	for i := 20000; i > 0; i-- {
		h.Insert(i)
	}

	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	verifyHeap(t, h)

	for _, r := range ringSlice(h.extreme) {
		require.LessOrEqual(t, r.degree, maxDegree(h.size))
	}
}

func TestInvariants_RandomizedOperations(t *testing.T) {
	const ops = 4000
	rng := rand.New(rand.NewSource(7))
	h := New[int](Min)
	var live []*Node[int]

	for i := 0; i < ops; i++ {
		switch op := rng.Intn(10); {
		case op < 5: // insert
			live = append(live, h.Insert(rng.Intn(1<<16)))

		case op < 7: // pop
			if len(live) == 0 {
				_, err := h.Pop()
				require.ErrorIs(t, err, ErrEmptyHeap)
				break
			}
			want := live[0].value
			for _, n := range live {
				if n.value < want {
					want = n.value
				}
			}
			got, err := h.Pop()
			require.NoError(t, err)
			require.Equal(t, want, got)

			idx := slices.IndexFunc(live, func(n *Node[int]) bool { return n.owner == nil })
			require.GreaterOrEqual(t, idx, 0, "pop must retire exactly one handle")
			require.Equal(t, got, live[idx].value)
			live = slices.Delete(live, idx, idx+1)

		case op < 9: // decrease-key
			if len(live) == 0 {
				break
			}
			n := live[rng.Intn(len(live))]
			require.NoError(t, h.DecreaseKey(n, n.value-rng.Intn(64)))

		default: // delete
			if len(live) == 0 {
				break
			}
			idx := rng.Intn(len(live))
			n := live[idx]
			require.NoError(t, h.Delete(n))
			require.Nil(t, n.owner, "deleted handle must be stale")
			live = slices.Delete(live, idx, idx+1)
		}

		require.Equal(t, len(live), h.Len())
		if i%97 == 0 {
			verifyHeap(t, h)
		}
	}

	verifyHeap(t, h)
	want := make([]int, 0, len(live))
	for _, n := range live {
		want = append(want, n.value)
	}
	slices.Sort(want)
	require.Equal(t, want, h.ExtractAllSorted())
	require.True(t, h.IsEmpty())
	verifyHeap(t, h)
}

func TestMerge_OwnershipAcrossChains(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	heaps := make([]*Heap[int], 8)
	var handles []*Node[int]
	total := 0
	for i := range heaps {
		heaps[i] = New[int](Min)
		for j := 0; j < 50; j++ {
			handles = append(handles, heaps[i].Insert(rng.Intn(10000)))
			total++
		}
	}

	// Fold the heaps together in random order so ownership identities
	// form chains of varying depth.
	for len(heaps) > 1 {
		i := rng.Intn(len(heaps))
		j := rng.Intn(len(heaps))
		if i == j {
			continue
		}
		require.NoError(t, heaps[i].Merge(heaps[j]))
		heaps = slices.Delete(heaps, j, j+1)
	}

	survivor := heaps[0]
	require.Equal(t, total, survivor.Len())
	verifyHeap(t, survivor)

	// Every handle ever issued answers to the survivor now.
	for _, n := range handles {
		require.NoError(t, survivor.DecreaseKey(n, n.value-1))
	}
	verifyHeap(t, survivor)

	got := survivor.ExtractAllSorted()
	require.Len(t, got, total)
	require.True(t, slices.IsSorted(got))
}
