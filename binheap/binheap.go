// Package binheap implements a minimal array-backed binary heap whose ordering
// is injected at construction time.
//
// The heap stores (item, key) pairs. A single predicate holds(parent, child)
// decides whether a parent key may sit above a child key; the min-heap and the
// max-heap are nothing more than two predicates over the same mechanism:
//
//	NewMin: holds(p, c) = p <= c
//	NewMax: holds(p, c) = p >= c
//
// Complexity:
//
//   - Insert:  O(log n) – append, then sift the new node up.
//   - Extract: O(log n) – move the last node to the root, then sift it down.
//   - Peek:    O(1).
//   - Space:   O(n).
//
// Ties between equal keys are broken by position in the backing array; the
// relative order of equal keys is NOT stable and callers must not rely on it.
//
// A Heap is not safe for concurrent use.
package binheap

import "cmp"

// node is the internal (item, key) record. It never leaves the package.
type node[T any, K cmp.Ordered] struct {
	item T
	key  K
}

// Heap is an array-backed complete binary tree ordered by an injected predicate.
type Heap[T any, K cmp.Ordered] struct {
	nodes []node[T, K]
	holds func(parent, child K) bool
}

// New returns an empty heap ordered by holds. holds(parent, child) must report
// whether parent is allowed to sit above child; it must be a total preorder
// (reflexive and transitive), otherwise the heap invariant is undefined.
// A nil predicate yields a min-heap.
func New[T any, K cmp.Ordered](holds func(parent, child K) bool) *Heap[T, K] {
	if holds == nil {
		holds = lessOrEqual[K]
	}

	return &Heap[T, K]{holds: holds}
}

// NewMin returns an empty heap whose top is always the smallest key.
func NewMin[T any, K cmp.Ordered]() *Heap[T, K] {
	return New[T](lessOrEqual[K])
}

// NewMax returns an empty heap whose top is always the largest key.
func NewMax[T any, K cmp.Ordered]() *Heap[T, K] {
	return New[T](greaterOrEqual[K])
}

func lessOrEqual[K cmp.Ordered](parent, child K) bool    { return parent <= child }
func greaterOrEqual[K cmp.Ordered](parent, child K) bool { return parent >= child }

// Len returns the number of nodes currently held.
func (h *Heap[T, K]) Len() int {
	return len(h.nodes)
}

// Insert adds item with the given ordering key.
// Complexity: O(log n).
func (h *Heap[T, K]) Insert(item T, key K) {
	h.nodes = append(h.nodes, node[T, K]{item: item, key: key})
	h.up(len(h.nodes) - 1)
}

// Peek returns the top item without removing it.
// ok is false when the heap is empty.
func (h *Heap[T, K]) Peek() (item T, ok bool) {
	if len(h.nodes) == 0 {
		return item, false
	}

	return h.nodes[0].item, true
}

// PeekKey returns the ordering key of the top item.
// ok is false when the heap is empty.
func (h *Heap[T, K]) PeekKey() (key K, ok bool) {
	if len(h.nodes) == 0 {
		return key, false
	}

	return h.nodes[0].key, true
}

// Extract removes and returns the top item, restoring the heap invariant.
// ok is false when the heap is empty; the heap is left untouched in that case.
// Complexity: O(log n).
func (h *Heap[T, K]) Extract() (item T, ok bool) {
	n := len(h.nodes)
	if n == 0 {
		return item, false
	}

	item = h.nodes[0].item

	// 1) Move the last node to the root and shrink by one.
	last := n - 1
	h.swap(0, last)
	var zero node[T, K]
	h.nodes[last] = zero // drop the reference so the GC can reclaim the item
	h.nodes = h.nodes[:last]

	// 2) Restore the invariant from the root downward.
	h.down(0)

	return item, true
}

// up sifts node i toward the root while its parent violates the predicate.
func (h *Heap[T, K]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.holds(h.nodes[parent].key, h.nodes[i].key) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down sifts node i toward the leaves. At every level both children are
// inspected; when either one violates the predicate against i, i is swapped
// with whichever child would itself win against its sibling.
func (h *Heap[T, K]) down(i int) {
	n := len(h.nodes)
	for i < n/2 {
		left, right := 2*i+1, 2*i+2
		swapLeft := left < n && !h.holds(h.nodes[i].key, h.nodes[left].key)
		swapRight := right < n && !h.holds(h.nodes[i].key, h.nodes[right].key)
		if !swapLeft && !swapRight {
			return
		}

		child := left
		if swapRight && h.holds(h.nodes[right].key, h.nodes[left].key) {
			child = right
		}
		h.swap(i, child)
		i = child
	}
}

func (h *Heap[T, K]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}
