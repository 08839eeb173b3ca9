package search

import (
	"fmt"

	"github.com/nadlgit/gridsearch/frontier"
	"github.com/nadlgit/gridsearch/ledger"
)

// policy selects the terminal condition of a cost-directed run.
type policy int

const (
	// firstGoal stops on the first goal extracted from the frontier.
	firstGoal policy = iota
	// allGoals drains the frontier and keeps the cheapest goal.
	allGoals
)

// Shortest runs a best-first search from seeds and stops as soon as a goal
// state is extracted from the frontier (never on enqueue: a cheaper path to
// the same goal may still be pending). With Priority nil this is Dijkstra;
// with an admissible, consistent heuristic folded into Priority it is A*.
//
// Returns:
//
//   - Result with Found=false if the frontier empties first.
//   - err only for contract violations (nil policies, no seeds, negative
//     costs, invalid options, expansion limit).
//
// Complexity:
//
//   - Time:  O(E log E) where E is the number of enqueued entries.
//   - Space: O(E) for the frontier plus O(V) for the ledger.
func Shortest[S any, K comparable, C Number](p Problem[S, K, C], seeds []Seed[S, C], opts ...Option) (Result[S, C], error) {
	return run(p, seeds, firstGoal, opts)
}

// BestOf runs the same loop as Shortest but does not stop on the first goal:
// it keeps draining the frontier and returns the cheapest goal seen. Entries
// whose cost already reaches the best goal are discarded without expansion.
// Use it when several goal states exist and Priority does not guarantee the
// first extracted goal is the cheapest.
func BestOf[S any, K comparable, C Number](p Problem[S, K, C], seeds []Seed[S, C], opts ...Option) (Result[S, C], error) {
	return run(p, seeds, allGoals, opts)
}

// run validates the inputs, builds a runner and drives it to completion.
func run[S any, K comparable, C Number](p Problem[S, K, C], seeds []Seed[S, C], pol policy, opts []Option) (Result[S, C], error) {
	var res Result[S, C]

	// 1) Build and validate Options.
	cfg, err := buildOptions(opts)
	if err != nil {
		return res, err
	}

	// 2) Validate the policy bundle.
	switch {
	case p.Expand == nil:
		return res, ErrNilExpand
	case p.Key == nil:
		return res, ErrNilKey
	case p.IsGoal == nil:
		return res, ErrNilGoal
	case len(seeds) == 0:
		return res, ErrNoSeeds
	}

	// 3) Default priority is the accumulated cost.
	priority := p.Priority
	if priority == nil {
		priority = func(_ S, cost C) C { return cost }
	}

	r := &runner[S, K, C]{
		p:       p,
		options: cfg,
		policy:  pol,
		ledger:  ledger.New[K, C](len(seeds)),
		frontier: frontier.New(nil, func(e *entry[S, C]) C {
			return priority(e.state, e.cost)
		}),
	}

	// 4) Seed the frontier and run the main loop.
	if err = r.init(seeds); err != nil {
		return res, err
	}
	err = r.process()

	return r.result(), err
}

// entry is a pending frontier record. parent links form the search tree and
// are only walked when a path is requested.
type entry[S any, C Number] struct {
	state  S
	cost   C
	parent *entry[S, C]
}

// runner holds the mutable state of a single search call. Nothing in it
// outlives the call.
type runner[S any, K comparable, C Number] struct {
	p         Problem[S, K, C]
	options   Options
	policy    policy
	frontier  *frontier.Queue[*entry[S, C], C]
	ledger    *ledger.Ledger[K, C]
	best      *entry[S, C] // cheapest goal extracted so far
	expanded  int
	dominated int
}

// init enqueues every seed with its initial cost.
func (r *runner[S, K, C]) init(seeds []Seed[S, C]) error {
	for _, s := range seeds {
		if s.Cost < 0 {
			return fmt.Errorf("%w: seed cost %v", ErrNegativeCost, s.Cost)
		}
		r.frontier.Enqueue(&entry[S, C]{state: s.State, cost: s.Cost})
	}

	return nil
}

// process is the core loop. Each dequeued entry ends up in exactly one of
// three places: discarded as dominated, accepted as a goal, or expanded.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - A goal is extracted and the policy is firstGoal.
//   - The expansion limit is exceeded (error).
func (r *runner[S, K, C]) process() error {
	for r.frontier.Len() > 0 {
		// 1) Pop the cheapest pending entry.
		e, _ := r.frontier.Dequeue()

		// 2) Once a goal is known, nothing at or above its cost can beat it.
		if r.best != nil && e.cost >= r.best.cost {
			r.dominated++
			continue
		}

		// 3) Ledger check-and-commit: stale or equal-cost duplicates stop here.
		if !r.ledger.ShouldExpand(r.p.Key(e.state), e.cost) {
			r.dominated++
			continue
		}

		// 4) Accepted.
		r.expanded++
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return fmt.Errorf("%w: %d states", ErrExpansionLimit, r.options.MaxExpansions)
		}
		if r.p.OnExpand != nil {
			r.p.OnExpand(e.state, e.cost)
		}

		// 5) Goal test on extraction.
		if r.p.IsGoal(e.state) {
			if r.best == nil || e.cost < r.best.cost {
				r.best = e
			}
			if r.policy == firstGoal {
				return nil
			}
			continue
		}

		// 6) Expand.
		if err := r.relax(e); err != nil {
			return err
		}
	}

	return nil
}

// relax enqueues every child of e unconditionally. Dominance is decided when
// the child is dequeued, not here.
func (r *runner[S, K, C]) relax(e *entry[S, C]) error {
	for _, step := range r.p.Expand(e.state) {
		if step.Cost < 0 {
			return fmt.Errorf("%w: step cost %v", ErrNegativeCost, step.Cost)
		}
		r.frontier.Enqueue(&entry[S, C]{
			state:  step.State,
			cost:   e.cost + step.Cost,
			parent: e,
		})
	}

	return nil
}

// result packages the runner state into a Result.
func (r *runner[S, K, C]) result() Result[S, C] {
	res := Result[S, C]{
		Expanded:  r.expanded,
		Dominated: r.dominated,
	}
	if r.best == nil {
		return res
	}

	res.Found = true
	res.Cost = r.best.cost
	res.Goal = r.best.state
	if r.options.ReturnPath {
		for at := r.best; at != nil; at = at.parent {
			res.Path = append(res.Path, at.state)
		}
		for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
			res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
		}
	}

	return res
}
