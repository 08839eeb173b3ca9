// Package gridsearch is a small engine for best-first search over implicit,
// constrained state spaces, plus the grid puzzles that drive it.
//
// What is in the box?
//
//	A single-threaded, dependency-light toolkit that brings together:
//		• binheap   : array-backed binary heap with an injected ordering predicate
//		• frontier  : priority queue over binheap, driven by a priority function
//		• ledger    : best-cost-per-key record used to prune dominated states
//		• search    : the generic driver: single goal, best of many goals,
//		              budget-bounded reachability
//		• gridgraph : rectangular grids, points, directions and toroidal wrapping
//
// The puzzle packages plug their own policies into the driver:
//
//	crucible/ : least heat loss with turn and run-length constraints
//	hill/     : elevation-capped climbing, A* ordering
//	beam/     : light beams with mirrors and splitters (fan-out, cycles)
//	garden/   : step-bounded reachability on an infinitely repeating map
//
// States are plain value structs; composite keys are comparable values used
// directly as map keys, never serialized strings.
//
// Quick ASCII example of a constrained state:
//
//	(row=4, col=7, facing=→)  ≠  (row=4, col=7, facing=↓)
//
// two states on the same cell that the ledger must keep apart.
//
//	go run ./cmd/gridsearch crucible --part 2 input.txt
package gridsearch
