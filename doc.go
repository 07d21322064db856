// Package datastructures is your in-memory toolbox of classic textbook
// data structures — built around a full-featured mergeable Fibonacci
// heap with O(1) amortized insert and decrease-key.
//
// 🚀 What is in the box?
//
//	A modern, zero-dependency library that currently ships:
//		• Fibonacci heap: mergeable priority structure with Min/Max polarity,
//		  decrease-key, delete-by-handle, O(1) merge and lazy consolidation
//
// ✨ Why choose this library?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Textbook-faithful – amortized bounds and invariants documented in-code
//   - Pure Go – no cgo, no hidden deps, generics throughout
//   - Safe by default – stale and cross-heap handles are detected, not UB
//
// Under the hood, everything is organized under subpackages:
//
//	fibheap/ — mergeable Fibonacci heap (insert, peek, extract, decrease-key,
//	           delete, merge, lazy iteration, destructive sorted drain)
//
// Quick ASCII example:
//
//	    2        root list: 2 → 7
//	   / \
//	  5   9      7
//	  |
//	  8
//
//	a two-tree Min forest; extracting 2 promotes 5, 9 and consolidates.
//
// Next up: linked lists, stacks & queues, hash tables, binary search trees,
// tries, bloom filters, union-find and beyond.
//
//	go get github.com/arcas0803/data-structures-sub000/fibheap
package datastructures
