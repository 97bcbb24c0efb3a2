// Package route defines configuration options and error definitions for
// the shortest-path search engine.
//
// Options:
//
//	– MaxCost:    cap on accumulated path cost; candidates beyond it are
//	              not explored. Must be ≥ 0. Default math.MaxInt64 (no cap).
//	– Impassable: edges with weight ≥ this threshold are treated as walls
//	              and skipped. Must be > 0. Default math.MaxInt64 (no walls).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNilGoal         if the goal predicate is nil.
//	– ErrNilHeuristic    if AStar is invoked with a nil heuristic.
//	– ErrNegativeWeight  if a negative edge weight is encountered.
//	– ErrCostOverflow    if an accumulated cost or frontier priority
//	                     exceeds int64.
//	– ErrBadMaxCost      if WithMaxCost receives a negative cap (panic).
//	– ErrBadImpassable   if WithImpassable receives a non-positive
//	                     threshold (panic).
package route

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil graph was passed to a search.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNilGoal indicates that a nil goal predicate was passed to a search.
	ErrNilGoal = errors.New("route: goal predicate is nil")

	// ErrNilHeuristic indicates that AStar was invoked with a nil heuristic.
	// Use ShortestPath when no heuristic is available.
	ErrNilHeuristic = errors.New("route: heuristic is nil")

	// ErrNegativeWeight indicates a negative edge weight was produced by
	// the graph. Shortest-path search requires non-negative weights;
	// because edges exist only on demand there is no pre-scan, so the
	// violation surfaces during relaxation.
	ErrNegativeWeight = errors.New("route: negative edge weight encountered")

	// ErrCostOverflow indicates an accumulated path cost, or the sum of a
	// cost and a heuristic estimate, exceeded int64. The weight universe
	// is too large for the engine's numeric width.
	ErrCostOverflow = errors.New("route: path cost overflows int64")

	// ErrBadMaxCost indicates WithMaxCost was given a negative cap,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("route: MaxCost must be non-negative")

	// ErrBadImpassable indicates WithImpassable was given a zero or
	// negative threshold, which would treat every edge as a wall.
	ErrBadImpassable = errors.New("route: Impassable threshold must be positive")
)

// Goal decides whether a node satisfies the search target. It is invoked
// once per finalized node, so an expensive predicate directly slows the
// search.
type Goal[N comparable] func(node N) bool

// Heuristic estimates the remaining cost from a node to the nearest goal.
// For AStar to return optimal paths the estimate must be admissible
// (never exceed the true remaining cost); the engine does not validate
// this, and an inadmissible heuristic silently yields a suboptimal path.
type Heuristic[N comparable] func(node N) int64

// Options configures the behavior of a single search invocation.
//
// MaxCost    – maximum accumulated cost to explore; paths beyond it are
// abandoned. Impassable – weight threshold at which an edge counts as a
// wall and is never traversed.
type Options struct {
	MaxCost    int64 // Maximum accumulated path cost to explore
	Impassable int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns an Options struct with no cost cap and no
// impassable threshold. Use this as the base that functional options
// override.
func DefaultOptions() Options {
	return Options{
		MaxCost:    math.MaxInt64,
		Impassable: math.MaxInt64,
	}
}

// WithMaxCost caps the accumulated cost a search will explore. Candidate
// paths whose cost would exceed max are abandoned, bounding the search
// space on large or conceptually infinite graphs.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost)
		}
		o.MaxCost = max
	}
}

// WithImpassable defines a weight threshold at or above which edges are
// treated as impassable walls and skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadImpassable.
func WithImpassable(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadImpassable)
		}
		o.Impassable = threshold
	}
}
