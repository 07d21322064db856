// Package fibheap implements a mergeable Fibonacci heap: a forest of
// heap-ordered multiway trees tied together by circular doubly linked
// sibling rings, with lazy consolidation and mark-driven cascading cuts.
//
// What:
//
//   - Heap[T] with Min or Max polarity, fixed at construction.
//   - New uses the natural order of T; NewFunc accepts any strict
//     ordering, so one comparator serves both polarities.
//   - Insert returns an opaque *Node handle for DecreaseKey and Delete;
//     stale, nil, and cross-heap handles are rejected, never followed.
//   - Merge consumes another heap of the same polarity in O(1) and takes
//     over its outstanding handles.
//   - Values yields a lazy, restartable iterator over the forest;
//     ExtractAllSorted drains the heap in polarity order.
//
// Why:
//
//   - Priority scheduling: promote urgent work without rebuilding.
//   - Graph workloads: decrease-key-heavy algorithms such as Dijkstra
//     and Prim hit the O(1) amortized DecreaseKey directly.
//   - Stream unions: combine independently built priority sets in O(1).
//
// Complexity:
//
//   - Insert, Peek, Min, Max, Merge, Clear: O(1) worst case.
//   - DecreaseKey: O(1) amortized (cascading cuts prepaid by marks).
//   - Pop, ExtractMin, ExtractMax, Delete: O(log n) amortized.
//   - Values: O(n) per full walk; ExtractAllSorted: O(n log n).
//
// Polarity:
//
//   - Min: Peek/Pop surface the smallest value; DecreaseKey lowers keys.
//   - Max: Peek/Pop surface the largest value; DecreaseKey raises keys.
//
// Errors:
//
//   - ErrEmptyHeap: Peek or Pop on an empty heap.
//   - ErrWrongPolarity: Min/ExtractMin on a Max heap, or vice versa.
//   - ErrInvalidKeyUpdate: DecreaseKey away from the extreme.
//   - ErrPolarityMismatch: Merge between a Min and a Max heap.
//   - ErrNilHandle, ErrStaleHandle, ErrForeignHandle: handle misuse.
//
// Heaps perform no locking; callers serialize concurrent access.
//
// See: docs/FIBONACCI_HEAP.md for a guided tour.
package fibheap
