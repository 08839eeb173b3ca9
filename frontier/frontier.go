// Package frontier provides the priority frontier of a best-first search: a
// queue that orders pending items by a caller-supplied priority function and
// hides the binary heap behind a queue-style contract.
//
// The priority of an item is computed once, when it is enqueued. Items are
// treated as immutable from that point on; mutating an item after Enqueue does
// not reorder the queue.
package frontier

import (
	"cmp"

	"github.com/nadlgit/gridsearch/binheap"
)

// Queue is a min-priority queue over items of type T with priorities of type P.
type Queue[T any, P cmp.Ordered] struct {
	heap     *binheap.Heap[T, P]
	priority func(item T) P
}

// New builds a queue seeded with items, ordered by priority (lowest first).
// The items slice is not retained.
func New[T any, P cmp.Ordered](items []T, priority func(item T) P) *Queue[T, P] {
	q := &Queue[T, P]{
		heap:     binheap.NewMin[T, P](),
		priority: priority,
	}
	q.EnqueueAll(items...)

	return q
}

// Len returns the number of pending items.
func (q *Queue[T, P]) Len() int { return q.heap.Len() }

// Enqueue inserts item using its freshly computed priority.
func (q *Queue[T, P]) Enqueue(item T) {
	q.heap.Insert(item, q.priority(item))
}

// EnqueueAll inserts every item in order.
func (q *Queue[T, P]) EnqueueAll(items ...T) {
	for _, item := range items {
		q.Enqueue(item)
	}
}

// Dequeue removes and returns the lowest-priority item; ok is false when empty.
func (q *Queue[T, P]) Dequeue() (item T, ok bool) {
	return q.heap.Extract()
}

// Peek returns the lowest-priority item without removing it.
func (q *Queue[T, P]) Peek() (item T, ok bool) {
	return q.heap.Peek()
}
