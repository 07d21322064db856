package fibheap

import "iter"

// Values returns a lazy iterator over every stored value, in no
// particular order. Each range over the sequence walks the forest from
// scratch, so the iterator is freely restartable; stopping a range early
// abandons the walk with no cleanup required. The traversal keeps its
// own explicit stack and never mutates the heap, but the heap must not
// be modified while a walk is in progress.
//
// Complexity: O(n) for a full walk, O(1) amortized per value yielded.
func (h *Heap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if h.extreme == nil {
			return
		}
		stack := make([]*Node[T], 0, h.size)
		for r := h.extreme; ; {
			stack = append(stack, r)
			r = r.right
			if r == h.extreme {
				break
			}
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			if c := n.child; c != nil {
				for s := c; ; {
					stack = append(stack, s)
					s = s.right
					if s == c {
						break
					}
				}
			}
		}
	}
}

// ExtractAllSorted drains the heap by repeated extraction and returns
// every stored value in polarity order: ascending under Min, descending
// under Max. The call is destructive: the heap is empty afterwards and
// every outstanding handle is stale. Use Values when the heap must
// survive the traversal.
//
// Complexity: O(n log n).
func (h *Heap[T]) ExtractAllSorted() []T {
	out := make([]T, 0, h.size)
	for h.extreme != nil {
		out = append(out, h.removeExtreme())
	}

	return out
}
