// Package route implements shortest-path search over any graph.Graph:
// Dijkstra's algorithm, A* with a caller-supplied heuristic, and
// all-destinations search from a single start node.
//
// All algorithms share one engine. Nodes are processed in order of
// increasing frontier priority using a min-heap with lazy decrease-key:
// improved routes are pushed as fresh entries and stale entries are
// discarded on pop. Once a node is popped with minimal cost it is
// finalized and never re-expanded.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V reachable nodes and E produced edges.
//   - Space: O(V + E) for the cost map, predecessor map, and frontier.
package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dimo414/pathfinding/graph"
)

// ShortestPath runs Dijkstra's algorithm from start until a node
// satisfying goal is finalized, and returns the minimum-cost path to it.
//
// Returns:
//
//   - (path, true, nil) on success; the empty path if start itself
//     satisfies goal.
//   - (nil, false, nil) if no reachable node satisfies goal; absence of
//     a path is an expected outcome, not an error.
//   - (nil, false, err) for contract violations: ErrNilGraph, ErrNilGoal,
//     ErrNegativeWeight, ErrCostOverflow.
//
// Ties between equal-cost routes are broken by discovery order, so the
// result is stable for a fixed neighbor order; no other ordering among
// equal-cost paths is guaranteed.
func ShortestPath[N comparable](g graph.Graph[N], start N, goal Goal[N], opts ...Option) (graph.Path[N], bool, error) {
	// Dijkstra is A* with a zero heuristic; one engine serves both.
	return search(g, start, goal, func(N) int64 { return 0 }, opts)
}

// AStar runs A* search from start until a node satisfying goal is
// finalized. The frontier is ordered by accumulated cost plus h(node).
//
// Correctness requires h be admissible (never overestimate the true
// remaining cost) and, for the strongest ordering guarantees, consistent.
// The engine does not validate this: an inadmissible heuristic silently
// produces a suboptimal path. With an admissible h the returned path has
// the same cost ShortestPath would find, though not necessarily the same
// edge sequence.
//
// Return semantics match ShortestPath, plus ErrNilHeuristic when h is nil.
func AStar[N comparable](g graph.Graph[N], start N, goal Goal[N], h Heuristic[N], opts ...Option) (graph.Path[N], bool, error) {
	if h == nil {
		return nil, false, ErrNilHeuristic
	}

	return search(g, start, goal, h, opts)
}

// All explores the complete reachable set from start and returns, for
// every reachable node, the best path from start to it. The start node
// maps to the empty path. Nodes that cannot be reached within the
// configured bounds (MaxCost, Impassable) do not appear.
//
// Returns ErrNilGraph, ErrNegativeWeight or ErrCostOverflow for contract
// violations; an unreachable remainder of the graph is not an error.
func All[N comparable](g graph.Graph[N], start N, opts ...Option) (map[N]graph.Path[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := newRunner(g, buildOptions(opts), func(N) int64 { return 0 })

	// Run with no goal: the frontier drains and every node within bounds
	// is finalized.
	if _, _, err := r.run(start, nil); err != nil {
		return nil, err
	}

	paths := make(map[N]graph.Path[N], len(r.visited))
	var node N
	for node = range r.visited {
		paths[node] = r.reconstruct(start, node)
	}

	return paths, nil
}

// search validates inputs, builds the runner, and converts its result
// into the (path, found, err) triple shared by ShortestPath and AStar.
func search[N comparable](g graph.Graph[N], start N, goal Goal[N], h Heuristic[N], opts []Option) (graph.Path[N], bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if goal == nil {
		return nil, false, ErrNilGoal
	}

	r := newRunner(g, buildOptions(opts), h)
	end, found, err := r.run(start, goal)
	if err != nil || !found {
		return nil, false, err
	}

	return r.reconstruct(start, end), true, nil
}

// buildOptions applies functional options over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// runner holds the mutable state for a single search execution. It
// borrows the caller's graph for the duration of the query and never
// mutates it.
type runner[N comparable] struct {
	g       graph.Graph[N]        // the input graph; read-only here
	opts    Options               // cost cap and wall threshold
	h       Heuristic[N]          // never nil; zero function for Dijkstra
	dist    map[N]int64           // node → best known cost from start
	prev    map[N]graph.Edge[N]   // node → edge that reached it on the best route
	visited map[N]bool            // nodes whose cost is finalized
	pq      frontier[N]           // min-heap of discovered candidates
	seq     uint64                // insertion counter for tie-breaking
}

// newRunner allocates the bookkeeping maps and an empty frontier.
func newRunner[N comparable](g graph.Graph[N], cfg Options, h Heuristic[N]) *runner[N] {
	return &runner[N]{
		g:       g,
		opts:    cfg,
		h:       h,
		dist:    make(map[N]int64),
		prev:    make(map[N]graph.Edge[N]),
		visited: make(map[N]bool),
		pq:      make(frontier[N], 0),
	}
}

// run executes the main loop from start. With a non-nil goal it stops at
// the first finalized node satisfying it and returns (node, true, nil);
// with a nil goal it drains the frontier, finalizing every node within
// bounds. The Dijkstra invariant holds throughout: a node popped with
// minimal priority has its final cost and is expanded exactly once.
func (r *runner[N]) run(start N, goal Goal[N]) (N, bool, error) {
	var none N

	heap.Init(&r.pq)
	r.dist[start] = 0
	if err := r.push(start, 0); err != nil {
		return none, false, err
	}

	var item *frontierItem[N]
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*frontierItem[N])

		// Discard stale entries left behind by lazy decrease-key.
		if r.visited[item.node] {
			continue
		}
		r.visited[item.node] = true

		if goal != nil && goal(item.node) {
			return item.node, true, nil
		}

		if err := r.relax(item.node, item.cost); err != nil {
			return none, false, err
		}
	}

	return none, false, nil
}

// relax examines each edge leaving u and attempts to improve the cost of
// its destination. Walls (weight ≥ Impassable) are skipped, negative
// weights and cost overflow abort the search, and candidates beyond
// MaxCost are abandoned. du is u's finalized cost.
func (r *runner[N]) relax(u N, du int64) error {
	var (
		e       graph.Edge[N]
		w       int64
		newCost int64
	)
	for _, e = range r.g.Neighbors(u) {
		w = e.Weight
		if w >= r.opts.Impassable {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.From, e.To, w)
		}
		if r.visited[e.To] {
			continue
		}

		if du > math.MaxInt64-w {
			return fmt.Errorf("%w: at edge %v→%v", ErrCostOverflow, e.From, e.To)
		}
		newCost = du + w

		if newCost > r.opts.MaxCost {
			continue
		}
		// Strict improvement only, to avoid duplicate pushes on equal cost.
		if cur, ok := r.dist[e.To]; ok && newCost >= cur {
			continue
		}

		r.dist[e.To] = newCost
		r.prev[e.To] = e
		if err := r.push(e.To, newCost); err != nil {
			return err
		}
	}

	return nil
}

// push queues node with the given accumulated cost at priority
// cost + h(node), stamping it with the next insertion sequence number.
func (r *runner[N]) push(node N, cost int64) error {
	est := r.h(node)
	if est > 0 && cost > math.MaxInt64-est {
		return fmt.Errorf("%w: cost %d with estimate %d", ErrCostOverflow, cost, est)
	}
	heap.Push(&r.pq, &frontierItem[N]{
		node:     node,
		cost:     cost,
		priority: cost + est,
		seq:      r.seq,
	})
	r.seq++

	return nil
}

// reconstruct walks the predecessor edges from end back to start and
// returns the path in traversal order. end == start yields the empty
// path.
func (r *runner[N]) reconstruct(start, end N) graph.Path[N] {
	if end == start {
		return graph.Path[N]{}
	}

	var rev []graph.Edge[N]
	for cur := end; cur != start; {
		e := r.prev[cur]
		rev = append(rev, e)
		cur = e.From
	}

	path := make(graph.Path[N], len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path
}
