// Package fibheap defines the heap and node types, polarity, sentinel
// errors, and constructors for the mergeable Fibonacci heap.
package fibheap

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by heap operations.
var (
	// ErrEmptyHeap indicates Peek, Pop, or a polarity accessor was called
	// on an empty heap. Check IsEmpty first to avoid it.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrWrongPolarity indicates a Min-specific accessor was called on a
	// Max heap, or vice versa. This signals a programming error, not a
	// retryable condition.
	ErrWrongPolarity = errors.New("fibheap: accessor does not match heap polarity")

	// ErrInvalidKeyUpdate indicates DecreaseKey was called with a value
	// that does not improve the key under the heap's polarity. Recover by
	// using Delete followed by Insert for arbitrary key changes.
	ErrInvalidKeyUpdate = errors.New("fibheap: new value does not improve the key")

	// ErrPolarityMismatch indicates Merge between a Min and a Max heap.
	ErrPolarityMismatch = errors.New("fibheap: cannot merge heaps of differing polarity")

	// ErrNilHandle indicates a nil *Node was passed where a handle is
	// required.
	ErrNilHandle = errors.New("fibheap: node handle is nil")

	// ErrStaleHandle indicates the handle's node was already extracted or
	// deleted from its heap.
	ErrStaleHandle = errors.New("fibheap: node handle refers to a removed node")

	// ErrForeignHandle indicates the handle was not issued by this heap
	// (nor absorbed into it via Merge).
	ErrForeignHandle = errors.New("fibheap: node handle was not issued by this heap")

	// ErrBadPolarity signals construction with a Polarity other than Min
	// or Max. Surfaced as a panic message, never returned.
	ErrBadPolarity = errors.New("fibheap: polarity must be Min or Max")

	// ErrNilComparator signals NewFunc with a nil ordering function.
	// Surfaced as a panic message, never returned.
	ErrNilComparator = errors.New("fibheap: ordering function must not be nil")
)

// Polarity selects which end of the ordering a heap surfaces first.
// It is fixed at construction for the lifetime of the heap.
type Polarity int

const (
	// Min surfaces the smallest value first.
	Min Polarity = iota
	// Max surfaces the largest value first.
	Max
)

// heapIdent is the ownership identity shared by a heap and the nodes it
// issued. Merge forwards the consumed heap's identity to the receiver's,
// transferring ownership of every absorbed node in O(1); Clear swaps in
// a fresh identity, invalidating all outstanding handles in O(1).
type heapIdent struct {
	// fwd points at the identity that absorbed this one, nil while live.
	fwd *heapIdent
}

// resolve follows the forwarding chain to the current representative,
// compressing the path so later lookups take a single hop.
func (id *heapIdent) resolve() *heapIdent {
	root := id
	for root.fwd != nil {
		root = root.fwd
	}
	for id.fwd != nil {
		next := id.fwd
		id.fwd = root
		id = next
	}
	return root
}

// Node is an opaque handle to a single value stored in a Heap.
//
// A Node is obtained from Insert and is valid only as an argument to
// DecreaseKey and Delete on the heap that issued it (or on the heap that
// absorbed that heap via Merge). Once the value has been extracted or
// deleted the handle is stale, and further use is rejected with
// ErrStaleHandle rather than corrupting the heap.
type Node[T any] struct {
	value T

	parent *Node[T] // nil exactly while this node is a root
	child  *Node[T] // arbitrary entry point into the child ring, nil if childless
	left   *Node[T] // previous sibling in the enclosing ring, self when alone
	right  *Node[T] // next sibling in the enclosing ring, self when alone

	degree int  // number of children in the child ring
	marked bool // lost a child since last becoming a child; roots are never marked

	owner *heapIdent // identity of the owning heap, nil once removed
}

// Value returns the value currently stored at n. After a successful
// DecreaseKey this is the updated value.
func (n *Node[T]) Value() T { return n.value }

// Heap is a mergeable Fibonacci heap over T with Min or Max polarity.
//
// The forest consists of heap-ordered multiway trees whose siblings are
// tied into circular doubly linked rings; extraction consolidates the
// forest lazily, and decrease-key repairs order through mark-driven
// cascading cuts. This is what buys the amortized bounds: O(1) Insert,
// Peek, Merge and DecreaseKey, O(log n) Pop and Delete.
//
// The zero value is not usable; construct heaps with New or NewFunc.
// A Heap is an unshared mutable structure: it performs no locking, and
// callers must serialize access themselves.
type Heap[T any] struct {
	extreme  *Node[T]          // best root per polarity, nil when empty
	size     int               // number of stored values
	polarity Polarity          // fixed at construction
	better   func(a, b T) bool // strict "a beats b" comparator for this polarity
	id       *heapIdent        // ownership identity for handle validation
}

// New returns an empty heap using the natural order of T: under Min the
// smallest value surfaces first, under Max the largest.
//
// New panics with ErrBadPolarity's message when p is not Min or Max.
//
// Complexity: O(1).
func New[T cmp.Ordered](p Polarity) *Heap[T] {
	return NewFunc[T](p, cmp.Less[T])
}

// NewFunc returns an empty heap ordered by less, which must describe a
// strict weak ordering over T (in particular less(a, a) must be false).
// Under Max polarity less is applied with swapped arguments, so a single
// comparator implementation serves both polarities and no polarity branch
// is taken on hot paths.
//
// NewFunc panics with ErrBadPolarity's or ErrNilComparator's message on
// invalid configuration.
//
// Complexity: O(1).
func NewFunc[T any](p Polarity, less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic(ErrNilComparator.Error())
	}
	h := &Heap[T]{polarity: p, id: &heapIdent{}}
	switch p {
	case Min:
		h.better = less
	case Max:
		h.better = func(a, b T) bool { return less(b, a) }
	default:
		panic(ErrBadPolarity.Error())
	}

	return h
}

// checkHandle validates that n is a live handle owned by h.
// Validation order: nil first, then staleness, then ownership.
func (h *Heap[T]) checkHandle(n *Node[T]) error {
	if n == nil {
		return ErrNilHandle
	}
	if n.owner == nil {
		return ErrStaleHandle
	}
	r := n.owner.resolve()
	if r != h.id {
		return ErrForeignHandle
	}
	// Re-tag with the representative so the next lookup is a single hop.
	n.owner = r

	return nil
}
