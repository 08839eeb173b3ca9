package ledger

import (
	"iter"
	"maps"
	"slices"
)

// Set is a plain membership set, used to project visited states onto a
// coarser value (for example, several facing directions onto one cell).
type Set[T comparable] map[T]struct{}

// SetOf creates a Set holding elems.
func SetOf[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts elem and returns the Set to allow chaining.
func (s Set[T]) Add(elem T) Set[T] {
	s[elem] = struct{}{}
	return s
}

// AddSeq inserts every element of seq.
func (s Set[T]) AddSeq(seq iter.Seq[T]) Set[T] {
	for elem := range seq {
		s.Add(elem)
	}
	return s
}

// Contains reports whether elem is in the Set.
func (s Set[T]) Contains(elem T) bool {
	_, ok := s[elem]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s) }

// All returns the elements in unspecified order.
func (s Set[T]) All() iter.Seq[T] { return maps.Keys(s) }

// SortedValues returns the elements sorted with cmp.
func (s Set[T]) SortedValues(cmp func(l, r T) int) []T {
	return slices.SortedFunc(s.All(), cmp)
}
