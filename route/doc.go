// Package route provides shortest-path search over any graph.Graph:
// Dijkstra's algorithm, A* with a caller-supplied admissible heuristic,
// all-destinations search, and connected-component grouping.
//
// What
//
//   - ShortestPath(g, start, goal): Dijkstra over non-negative weights,
//     stopping at the first finalized node satisfying the goal predicate.
//   - AStar(g, start, goal, h): the same engine with frontier priority
//     cost + h(node). With h ≡ 0 it is exactly Dijkstra; treat A* as an
//     optimization knob, not a distinct algorithm: it is not always
//     faster, and for some start/goal geometries Dijkstra covers
//     essentially the same search space with less overhead.
//   - All(g, start): best path from start to every reachable node.
//   - ConnectedComponents(g): reachability grouping over a NodeGraph.
//
// Why
//
//	Puzzle and planning graphs rarely share a representation, but they
//	all answer “what are my neighbors and at what cost?”. Writing the
//	search once against that contract lets grids, implicit state spaces
//	and explicit adjacency lists share one tested engine.
//
// Determinism
//
//	Frontier ties are broken by insertion sequence, so for a fixed
//	neighbor order every search is fully reproducible. No guarantee is
//	made about which of several equal-cost paths is returned, only that
//	it is the same one every run.
//
// Failure semantics
//
//	“No path” is not an error: ShortestPath and AStar report it as
//	(nil, false, nil) and All simply omits unreachable nodes. Errors are
//	reserved for contract violations: nil graph or predicate, negative
//	edge weights, cost overflow. A neighbor function that panics or
//	never terminates is a caller bug the engine does not defend against.
//
// Bounding
//
//	There is no cancellation or timeout; the search runs to completion.
//	On large or conceptually infinite graphs, bound exploration with
//	WithMaxCost / WithImpassable or a goal predicate that fails fast.
//
// Complexity (V = reachable nodes, E = produced edges)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
//
// Usage
//
//	g := graph.NewAdjacency[string]()
//	g.AddBoth("A", "B", 1)
//	g.AddBoth("B", "C", 2)
//	g.AddBoth("A", "C", 5)
//
//	path, ok, err := route.ShortestPath[string](g, "A", func(n string) bool { return n == "C" })
//	// ok == true, path.Cost() == 3 via A→B→C
package route
