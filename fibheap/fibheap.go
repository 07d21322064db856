package fibheap

// Insert adds value to the heap and returns its handle for later use
// with DecreaseKey and Delete. The new node starts life as an unmarked,
// childless root; no restructuring happens until the next extraction.
//
// Complexity: O(1) worst case.
func (h *Heap[T]) Insert(value T) *Node[T] {
	n := &Node[T]{value: value, owner: h.id}
	h.rootInsert(n)
	h.size++

	return n
}

// Peek returns the extreme value without removing it: the smallest under
// Min polarity, the largest under Max. Returns ErrEmptyHeap when the
// heap holds no values.
//
// Complexity: O(1) worst case.
func (h *Heap[T]) Peek() (T, error) {
	if h.extreme == nil {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.extreme.value, nil
}

// Min returns the smallest stored value. It is the polarity-checked form
// of Peek: calling Min on a Max heap returns ErrWrongPolarity, and the
// polarity check runs before the emptiness check, so a misdirected call
// is reported as such even on an empty heap.
//
// Complexity: O(1) worst case.
func (h *Heap[T]) Min() (T, error) {
	if h.polarity != Min {
		var zero T
		return zero, ErrWrongPolarity
	}

	return h.Peek()
}

// Max returns the largest stored value. It is the polarity-checked form
// of Peek, symmetric to Min: calling Max on a Min heap returns
// ErrWrongPolarity regardless of emptiness.
//
// Complexity: O(1) worst case.
func (h *Heap[T]) Max() (T, error) {
	if h.polarity != Max {
		var zero T
		return zero, ErrWrongPolarity
	}

	return h.Peek()
}

// Len returns the number of stored values.
//
// Complexity: O(1).
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no values.
//
// Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Polarity returns the polarity fixed at construction.
func (h *Heap[T]) Polarity() Polarity { return h.polarity }

// Clear drops every stored value and invalidates all outstanding
// handles, which will report ErrForeignHandle from then on. No per-node
// work is performed; the forest becomes unreachable in bulk.
//
// Complexity: O(1).
func (h *Heap[T]) Clear() {
	h.extreme = nil
	h.size = 0
	h.id = &heapIdent{}
}
