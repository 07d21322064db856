package fibheap

import "fmt"

// DecreaseKey moves the value stored at n strictly closer to the heap's
// extreme: toward smaller values under Min polarity, toward larger under
// Max (where it acts as the symmetric increase-key). Submitting the
// current value again is accepted as a no-op. A value in the wrong
// direction is rejected with ErrInvalidKeyUpdate before anything is
// mutated, so a failed call leaves the heap untouched; use Delete
// followed by Insert for arbitrary key changes.
//
// Handle misuse returns ErrNilHandle, ErrStaleHandle or
// ErrForeignHandle.
//
// Complexity: O(1) amortized; cascading cuts are prepaid by the marks
// left behind under earlier cuts.
func (h *Heap[T]) DecreaseKey(n *Node[T], value T) error {
	if err := h.checkHandle(n); err != nil {
		return err
	}
	// Nothing may be mutated until the new value is validated.
	if h.better(n.value, value) {
		return fmt.Errorf("%w: %v does not move %v toward the extreme",
			ErrInvalidKeyUpdate, value, n.value)
	}
	n.value = value

	if p := n.parent; p != nil && h.better(n.value, p.value) {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if h.extreme == nil || h.better(n.value, h.extreme.value) {
		h.extreme = n
	}

	return nil
}

// Delete removes the value stored at n, wherever it lives in the forest.
// The node is first promoted to the root list as if it had become the
// new extreme, then the regular extraction body runs. The handle becomes
// stale.
//
// Handle misuse returns ErrNilHandle, ErrStaleHandle or
// ErrForeignHandle.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) Delete(n *Node[T]) error {
	if err := h.checkHandle(n); err != nil {
		return err
	}
	if p := n.parent; p != nil {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	h.extreme = n
	h.removeExtreme()

	return nil
}

// cut promotes node out of parent's child ring and into the root list,
// clearing its mark on arrival. Used when node has come to beat its
// parent, and by Delete to hoist an interior node.
//
// Complexity: O(1).
func (h *Heap[T]) cut(node, parent *Node[T]) {
	parent.child = ringRemove(parent.child, node)
	parent.degree--
	node.parent = nil
	node.marked = false
	h.rootInsert(node)
}

// cascadingCut walks from node toward the root after node lost a child.
// An unmarked ancestor is marked and the walk stops; a marked ancestor
// has now lost a second child, so it is cut to the root list and the
// walk continues from its former parent. Roots are never marked.
func (h *Heap[T]) cascadingCut(node *Node[T]) {
	for {
		p := node.parent
		if p == nil {
			return
		}
		if !node.marked {
			node.marked = true
			return
		}
		h.cut(node, p)
		node = p
	}
}
