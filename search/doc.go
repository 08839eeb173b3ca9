// Package search provides a generic best-first driver for implicit state
// spaces whose nodes are composite states (a grid position plus facing
// direction, run length, remaining budget, ...) rather than plain vertices.
//
// Overview:
//
//   - The caller supplies policies: a neighbor generator, a composite key,
//     a goal test and, optionally, a priority (cost alone for Dijkstra, cost
//     plus an admissible estimate for A*).
//   - The driver owns a frontier (binary-heap priority queue) and a ledger
//     (best cost per key) for exactly one call; nothing is shared between
//     calls.
//   - Children are enqueued unconditionally; dominance is decided when an
//     entry is dequeued (“lazy decrease-key”). Each key is therefore expanded
//     at most once per strict cost improvement, however many times it was
//     enqueued.
//
// Terminal policies:
//
//   - Shortest:    stop on the first goal extracted from the frontier.
//   - BestOf:      drain the frontier, keep the cheapest goal.
//   - Reachable:   no goal; every expansion spends one step of a budget and
//     the result is the set of keys reached (Unbounded turns it into a
//     cycle-safe flood).
//   - CountLayers: the layered counterpart of Reachable that only counts the
//     states occupied after exactly the budget.
//
// The key function is the single most important contract: if it omits a
// dimension that restricts future moves, distinct states collide in the
// ledger and the search silently under-explores. The driver cannot detect
// this.
//
// Concurrency:
//
//   - A call is synchronous and single-threaded. Independent calls share
//     nothing, so callers may run several of them on separate goroutines.
//
// Performance and complexity:
//
//   - Time:  O(E log E) where E is the number of enqueued entries.
//   - Space: O(E) for the frontier, O(V) for the ledger.
//
// Example usage:
//
//	res, err := search.Shortest(search.Problem[cell, cell, int]{
//	    Expand: neighbors,
//	    Key:    func(c cell) cell { return c },
//	    IsGoal: func(c cell) bool { return c == target },
//	}, search.From[int](origin))
package search
