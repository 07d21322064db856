package fibheap

// Merge moves every value of other into h and consumes other: afterwards
// other is empty, and every handle other ever issued for a still-stored
// value is owned by h, where DecreaseKey and Delete keep working on it.
// Presenting such a handle back to other reports ErrForeignHandle.
//
// Both heaps must share polarity, or ErrPolarityMismatch is returned and
// neither heap changes. Merging heaps built with NewFunc is only
// meaningful when both use the same ordering; the receiver's comparator
// governs from here on. Merging nil, h itself, or an empty heap is a
// no-op. The consumed heap stays usable as a fresh empty heap.
//
// The root rings are spliced together in four pointer updates and
// ownership transfers by identity forwarding, so no per-node work
// occurs.
//
// Complexity: O(1) worst case.
func (h *Heap[T]) Merge(other *Heap[T]) error {
	if other == nil || other == h {
		return nil
	}
	if other.polarity != h.polarity {
		return ErrPolarityMismatch
	}
	if other.extreme == nil {
		return nil
	}

	// Forward other's identity so every absorbed handle now resolves to h.
	other.id.fwd = h.id

	if h.extreme == nil {
		h.extreme = other.extreme
	} else {
		ringMeld(h.extreme, other.extreme)
		if h.better(other.extreme.value, h.extreme.value) {
			h.extreme = other.extreme
		}
	}
	h.size += other.size

	// other is left empty under a fresh identity; the nodes it
	// surrendered are unreachable through it from here on.
	other.extreme = nil
	other.size = 0
	other.id = &heapIdent{}

	return nil
}
