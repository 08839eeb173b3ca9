// Package ledger records, for every composite key of a search, the best cost
// at which that key has been accepted for expansion.
//
// A frontier may hold many pending entries for the same key at different
// costs; the ledger is what guarantees each key is expanded at most once per
// cost improvement. Keys are comparable values (structs, arrays, scalars),
// never string encodings of states.
//
// The key is the correctness contract of a search: it must contain every
// state dimension that influences which moves are legal next (facing
// direction, run length, remaining budget, ...). Dropping one makes distinct
// states collide and the search silently under-explores.
package ledger

import (
	"cmp"
	"iter"
	"maps"
)

// Ledger maps a composite key to the best cost seen for it. The zero value is
// not usable; call New.
type Ledger[K comparable, C cmp.Ordered] struct {
	best map[K]C
}

// New returns an empty ledger. sizeHint pre-sizes the backing map.
func New[K comparable, C cmp.Ordered](sizeHint int) *Ledger[K, C] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Ledger[K, C]{best: make(map[K]C, sizeHint)}
}

// ShouldExpand reports whether a candidate with the given key and cost beats
// everything recorded so far. When it does, cost is committed as the new best
// for key in the same call, so the check and the commit cannot drift apart.
// Equal cost is dominated.
func (l *Ledger[K, C]) ShouldExpand(key K, cost C) bool {
	if best, seen := l.best[key]; seen && best <= cost {
		return false
	}
	l.best[key] = cost

	return true
}

// Best returns the best cost recorded for key.
func (l *Ledger[K, C]) Best(key K) (cost C, ok bool) {
	cost, ok = l.best[key]
	return cost, ok
}

// Len returns the number of distinct keys recorded.
func (l *Ledger[K, C]) Len() int { return len(l.best) }

// All iterates over every (key, best cost) pair in unspecified order.
func (l *Ledger[K, C]) All() iter.Seq2[K, C] {
	return maps.All(l.best)
}
