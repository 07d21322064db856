package fibheap

import "math"

// Pop removes and returns the extreme value: the smallest under Min
// polarity, the largest under Max. Returns ErrEmptyHeap when the heap
// holds no values. The removed node's handle becomes stale.
//
// Complexity: O(log n) amortized, O(n) worst case for one consolidation.
func (h *Heap[T]) Pop() (T, error) {
	if h.extreme == nil {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.removeExtreme(), nil
}

// ExtractMin removes and returns the smallest stored value. It is the
// polarity-checked form of Pop: calling ExtractMin on a Max heap returns
// ErrWrongPolarity, and the polarity check runs before the emptiness
// check.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.polarity != Min {
		var zero T
		return zero, ErrWrongPolarity
	}

	return h.Pop()
}

// ExtractMax removes and returns the largest stored value. It is the
// polarity-checked form of Pop, symmetric to ExtractMin.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) ExtractMax() (T, error) {
	if h.polarity != Max {
		var zero T
		return zero, ErrWrongPolarity
	}

	return h.Pop()
}

// removeExtreme unlinks the extreme node and hands back its value.
// The heap must be non-empty. Steps:
//
//  1. Promote every child of the extreme to the root list. Promoted
//     nodes become unmarked roots; the whole child ring is melded into
//     the root ring at once.
//  2. Unsplice the extreme from the root ring.
//  3. Consolidate the surviving forest, which also re-aims the extreme
//     pointer at the best root.
//  4. Shrink the count and retire the node's handle.
func (h *Heap[T]) removeExtreme() T {
	z := h.extreme

	if z.child != nil {
		c := z.child
		for {
			c.parent = nil
			c.marked = false
			c = c.right
			if c == z.child {
				break
			}
		}
		ringMeld(z, z.child)
		z.child = nil
		z.degree = 0
	}

	h.extreme = ringRemove(z, z)
	if h.extreme != nil {
		h.consolidate()
	}

	h.size--
	z.owner = nil // the handle is stale from here on

	return z.value
}

// consolidate pairs equal-degree roots until at most one tree of each
// degree remains, then rebuilds the root list from the survivors and
// re-aims the extreme pointer. Pairing links the strictly worse root
// beneath the better one; on equal values the newcomer survives, so
// ties terminate like any other pairing.
//
// Complexity: O(r + log n) for r roots; the amortized cost is charged to
// the inserts and cuts that created those roots.
func (h *Heap[T]) consolidate() {
	table := make([]*Node[T], maxDegree(h.size)+1)

	// Snapshot the roots first: pairing splices nodes out of the very
	// ring being walked.
	roots := make([]*Node[T], 0, len(table))
	for r := h.extreme; ; {
		roots = append(roots, r)
		r = r.right
		if r == h.extreme {
			break
		}
	}

	for _, x := range roots {
		for table[x.degree] != nil {
			y := table[x.degree]
			table[x.degree] = nil
			if h.better(y.value, x.value) {
				x, y = y, x
			}
			link(y, x)
		}
		table[x.degree] = x
	}

	h.extreme = nil
	for _, x := range table {
		if x != nil {
			h.rootInsert(x)
		}
	}
}

// maxDegree returns an upper bound on the degree of any node in a heap
// of n values. Subtree sizes grow at least as fast as the Fibonacci
// numbers, bounding the true maximum degree by log_phi(n); the slack
// absorbs float truncation and the transient bump while pairing.
func maxDegree(n int) int {
	return int(math.Log(float64(n))/math.Log(math.Phi)) + 2
}
