// Package search defines the policy types, results and configuration options
// of the best-first state-space search driver.
//
// A search is described by a Problem: a neighbor generator, a key function, a
// goal test and an optional priority. The driver owns everything else (the
// frontier, the ledger, the bookkeeping) for the duration of one call.
//
// Errors (sentinel):
//
//	– ErrNilExpand       if the neighbor generator is nil.
//	– ErrNilKey          if the key function is nil.
//	– ErrNilGoal         if the goal test is nil (Shortest, BestOf).
//	– ErrNoSeeds         if no start state was supplied.
//	– ErrNegativeCost    if a seed or a generated step carries a negative cost.
//	– ErrBadBudget       if a step budget is negative and not Unbounded.
//	– ErrOptionViolation if an Option received an invalid argument.
//	– ErrExpansionLimit  if WithMaxExpansions was exceeded.
//
// An unreachable goal is not an error: Result.Found is false.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search drivers.
var (
	// ErrNilExpand indicates that the neighbor generator is missing.
	ErrNilExpand = errors.New("search: expand function is nil")

	// ErrNilKey indicates that the composite key function is missing.
	ErrNilKey = errors.New("search: key function is nil")

	// ErrNilGoal indicates that a goal-directed search has no goal test.
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNoSeeds indicates that the search was started without any state.
	ErrNoSeeds = errors.New("search: at least one seed state is required")

	// ErrNegativeCost indicates a negative seed or step cost; negative
	// weights break the dominance rule of the ledger.
	ErrNegativeCost = errors.New("search: negative cost encountered")

	// ErrBadBudget indicates a negative step budget other than Unbounded.
	ErrBadBudget = errors.New("search: budget must be non-negative or Unbounded")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit indicates that the search expanded more states than
	// allowed by WithMaxExpansions.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Unbounded disables the step budget of Reachable, turning it into an
// exhaustive flood that stops only when every key has been expanded.
const Unbounded = -1

// Number is the set of cost types the driver can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Step is one child produced by a neighbor generator, with the cost of
// moving there from the expanded state (not the accumulated cost).
type Step[S any, C Number] struct {
	State S
	Cost  C
}

// Seed is a start state with the cost it enters the search with.
type Seed[S any, C Number] struct {
	State S
	Cost  C
}

// From turns plain start states into zero-cost seeds.
//
//	seeds := search.From[int](startFacingRight, startFacingDown)
func From[C Number, S any](states ...S) []Seed[S, C] {
	seeds := make([]Seed[S, C], len(states))
	for i, s := range states {
		seeds[i] = Seed[S, C]{State: s}
	}

	return seeds
}

// Problem bundles the per-problem policies of a cost-directed search.
//
// S is the state (a value type), K the composite key that decides dominance
// and C the cost type. Two states with the same key are interchangeable for
// the rest of the search, so K must include every dimension of S that
// restricts future moves.
type Problem[S any, K comparable, C Number] struct {
	// Expand returns the children of state with their incremental costs.
	// It may return zero, one or many children.
	Expand func(state S) []Step[S, C]

	// Key projects a state onto its composite key.
	Key func(state S) K

	// IsGoal reports whether state terminates the search.
	IsGoal func(state S) bool

	// Priority orders the frontier. Nil means the accumulated cost alone
	// (Dijkstra). Adding an admissible, consistent estimate of the remaining
	// cost (A*) keeps results optimal.
	Priority func(state S, cost C) C

	// OnExpand, if set, is called once for every accepted (non-dominated)
	// state, before its goal test.
	OnExpand func(state S, cost C)
}

// Result is the outcome of Shortest or BestOf.
type Result[S any, C Number] struct {
	// Found is false when the frontier emptied without reaching a goal.
	Found bool
	// Cost is the optimal accumulated cost to Goal; zero when !Found.
	Cost C
	// Goal is the goal state reached at Cost.
	Goal S
	// Path lists the states from a seed to Goal, both included.
	// Only filled with WithReturnPath.
	Path []S
	// Expanded counts states accepted by the ledger.
	Expanded int
	// Dominated counts dequeued entries that were discarded unexpanded.
	Dominated int
}

// Walk bundles the policies of a uniform-cost traversal, where every move
// consumes exactly one step of budget.
type Walk[S any, K comparable] struct {
	// Next returns the states reachable in one step.
	Next func(state S) []S

	// Key projects a state onto its composite key.
	Key func(state S) K

	// OnExpand, if set, is called once for every expanded state with the
	// number of steps used to reach it.
	OnExpand func(state S, steps int)
}

// Options configures the drivers.
//
// ReturnPath    – reconstruct Result.Path for the goal (cost-directed drivers).
// MaxExpansions – abort with ErrExpansionLimit after that many expansions.
//
//	0 means no limit. Must be ≥ 0.
type Options struct {
	ReturnPath    bool
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no path reconstruction and no
// expansion limit.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxExpansions: 0,
	}
}

// WithReturnPath enables reconstruction of Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0: abort with ErrExpansionLimit once n states have been expanded
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// buildOptions applies opts over DefaultOptions and surfaces any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}

	return cfg, nil
}
