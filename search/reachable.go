package search

import (
	"fmt"

	"github.com/nadlgit/gridsearch/frontier"
	"github.com/nadlgit/gridsearch/ledger"
)

// Reach is the outcome of Reachable: every key expanded within the budget,
// with the fewest steps needed to reach it.
type Reach[S any, K comparable] struct {
	// Budget is the step budget the search ran with (or Unbounded).
	Budget int
	// Expanded counts states accepted by the ledger.
	Expanded int
	// Dominated counts dequeued entries discarded unexpanded.
	Dominated int

	steps  *ledger.Ledger[K, int]
	states map[K]S
}

// Len returns the number of distinct keys reached within the budget.
func (r *Reach[S, K]) Len() int { return r.steps.Len() }

// Steps returns the fewest steps needed to reach key.
func (r *Reach[S, K]) Steps(key K) (steps int, ok bool) {
	return r.steps.Best(key)
}

// Visited returns one state per key reached in at most Budget steps, in
// unspecified order.
func (r *Reach[S, K]) Visited() []S {
	out := make([]S, 0, len(r.states))
	for _, s := range r.states {
		out = append(out, s)
	}

	return out
}

// Exact returns the states that can be occupied after exactly Budget steps,
// in unspecified order. On a graph where every move can be undone, a state
// first reached in d ≤ Budget steps is occupied again at every d+2k, so the
// answer is the states whose shortest step count shares Budget's parity.
// With an Unbounded budget Exact equals Visited.
func (r *Reach[S, K]) Exact() []S {
	if r.Budget == Unbounded {
		return r.Visited()
	}
	out := make([]S, 0, len(r.states)/2+1)
	for key, steps := range r.steps.All() {
		if (r.Budget-steps)%2 == 0 {
			out = append(out, r.states[key])
		}
	}

	return out
}

// CountExact returns len(Exact()) without building the slice.
func (r *Reach[S, K]) CountExact() int {
	if r.Budget == Unbounded {
		return r.Len()
	}
	n := 0
	for _, steps := range r.steps.All() {
		if (r.Budget-steps)%2 == 0 {
			n++
		}
	}

	return n
}

// budgeted is a frontier record of Reachable.
type budgeted[S any] struct {
	state     S
	steps     int // steps used so far; the frontier priority
	remaining int // steps left, or Unbounded
}

// Reachable explores every state within budget steps of the seeds.
//
// It is the budget-bounded variant of the best-first loop: the frontier is
// ordered by steps used, every expansion hands one step less to its children,
// and a state whose remaining budget is zero is recorded but not expanded.
// Dominance is decided by the ledger at dequeue time exactly as in Shortest,
// so every key is expanded once, at its fewest steps.
//
// With budget == Unbounded the walk never runs out of steps and the ledger
// alone terminates it, which makes Reachable a cycle-safe flood.
func Reachable[S any, K comparable](w Walk[S, K], seeds []S, budget int, opts ...Option) (*Reach[S, K], error) {
	// 1) Build and validate Options and inputs.
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = w.validate(seeds); err != nil {
		return nil, err
	}
	if budget < 0 && budget != Unbounded {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}

	// 2) Seed the frontier; seeds start with the whole budget.
	q := frontier.New(nil, func(b budgeted[S]) int { return b.steps })
	for _, s := range seeds {
		q.Enqueue(budgeted[S]{state: s, remaining: budget})
	}

	reach := &Reach[S, K]{
		Budget: budget,
		steps:  ledger.New[K, int](len(seeds)),
		states: make(map[K]S),
	}

	// 3) Main loop.
	for q.Len() > 0 {
		b, _ := q.Dequeue()
		key := w.Key(b.state)
		if !reach.steps.ShouldExpand(key, b.steps) {
			reach.Dominated++
			continue
		}
		reach.states[key] = b.state
		reach.Expanded++
		if cfg.MaxExpansions > 0 && reach.Expanded > cfg.MaxExpansions {
			return reach, fmt.Errorf("%w: %d states", ErrExpansionLimit, cfg.MaxExpansions)
		}
		if w.OnExpand != nil {
			w.OnExpand(b.state, b.steps)
		}

		// Budget exhausted: recorded, never expanded.
		if b.remaining == 0 {
			continue
		}
		remaining := b.remaining
		if remaining != Unbounded {
			remaining--
		}
		for _, next := range w.Next(b.state) {
			q.Enqueue(budgeted[S]{state: next, steps: b.steps + 1, remaining: remaining})
		}
	}

	return reach, nil
}

// CountLayers counts the states that can be occupied after exactly budget
// steps, with a layer-by-layer flood instead of the best-first loop.
//
// Layer i holds the states first seen after i steps; a global seen set keeps
// every key in the first layer that reaches it. The count is the sum of the
// sizes of every layer whose index has the parity of budget, which is the
// same answer as Reachable(...).CountExact() on graphs where every move can
// be undone, without a heap or per-key step bookkeeping.
func CountLayers[S any, K comparable](w Walk[S, K], seeds []S, budget int) (int, error) {
	if err := w.validate(seeds); err != nil {
		return 0, err
	}
	if budget < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}

	seen := make(ledger.Set[K])
	layer := make([]S, 0, len(seeds))
	for _, s := range seeds {
		key := w.Key(s)
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		layer = append(layer, s)
	}

	count := 0
	if budget%2 == 0 {
		count = len(layer)
	}
	for i := 1; i <= budget && len(layer) > 0; i++ {
		var next []S
		for _, s := range layer {
			if w.OnExpand != nil {
				w.OnExpand(s, i-1)
			}
			for _, n := range w.Next(s) {
				key := w.Key(n)
				if seen.Contains(key) {
					continue
				}
				seen.Add(key)
				next = append(next, n)
			}
		}
		if i%2 == budget%2 {
			count += len(next)
		}
		layer = next
	}

	return count, nil
}

// validate checks the policy bundle of a Walk.
func (w Walk[S, K]) validate(seeds []S) error {
	switch {
	case w.Next == nil:
		return ErrNilExpand
	case w.Key == nil:
		return ErrNilKey
	case len(seeds) == 0:
		return ErrNoSeeds
	}

	return nil
}
