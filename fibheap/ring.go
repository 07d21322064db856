package fibheap

// Circular doubly linked sibling rings tie the forest together: the root
// list is a ring, and every node's children form a ring. A lone node is a
// ring of one, linked to itself, so splices never branch on emptiness
// beyond the nil anchor case. All primitives here are O(1).

// ringInsert splices x into the ring anchored at anchor, placing it to
// anchor's left, and returns the ring's anchor. A nil anchor means the
// ring was empty: x becomes a singleton ring and its own anchor.
func ringInsert[T any](anchor, x *Node[T]) *Node[T] {
	if anchor == nil {
		x.left, x.right = x, x
		return x
	}
	x.right = anchor
	x.left = anchor.left
	anchor.left.right = x
	anchor.left = x

	return anchor
}

// ringRemove unsplices x from its ring and clears x's sibling links.
// It returns a surviving member to serve as the ring's anchor: anchor
// itself when it survives, x's former neighbor when anchor was x, or nil
// when x was alone.
func ringRemove[T any](anchor, x *Node[T]) *Node[T] {
	if x.right == x {
		x.left, x.right = nil, nil
		return nil
	}
	next := x.right
	x.left.right = x.right
	x.right.left = x.left
	x.left, x.right = nil, nil
	if anchor == x {
		return next
	}

	return anchor
}

// ringMeld concatenates the rings containing a and b in four pointer
// updates. Both must be non-nil and must belong to distinct rings.
func ringMeld[T any](a, b *Node[T]) {
	a.right.left = b.left
	b.left.right = a.right
	a.right = b
	b.left = a
}

// link demotes child beneath parent after losing a consolidation pairing:
// child leaves the root list, joins parent's child ring with its mark
// cleared, and parent's degree grows by one.
func link[T any](child, parent *Node[T]) {
	ringRemove(child, child)
	child.parent = parent
	child.marked = false
	parent.child = ringInsert(parent.child, child)
	parent.degree++
}

// rootInsert splices x into the root list and lets it take over as the
// extreme when it is strictly better than the incumbent. x must already
// be detached from any ring.
func (h *Heap[T]) rootInsert(x *Node[T]) {
	if h.extreme == nil {
		h.extreme = ringInsert(nil, x)
		return
	}
	ringInsert(h.extreme, x)
	if h.better(x.value, h.extreme.value) {
		h.extreme = x
	}
}
