// Package pathfinding is a small, generic graph traversal toolkit:
// weighted shortest-path search and union-find connectivity over
// arbitrary comparable node types, decoupled from any particular graph
// representation.
//
// It grew out of a pile of puzzle solvers that each modeled a different
// world (pipe mazes, crucible grids, component wiring) yet all needed
// the same two things: “find the cheapest route” and “which things are
// connected”. The toolkit keeps exactly that reusable core and nothing
// else.
//
// Subpackages:
//
//	graph/    — the capability contract (Edge, Graph, NodeGraph, Path)
//	            plus a concrete Adjacency builder and a neighbor-memoizing
//	            Cached decorator.
//	route/    — Dijkstra, A*, all-destinations search, and connected
//	            components, written purely against the graph contract.
//	disjoint/ — union-find with union by size and path compression.
//
// Everything is an in-memory, single-call computation: no I/O, no
// goroutines, no shared state across calls. Callers wanting concurrency
// give each goroutine its own instances or serialize access themselves.
//
// Quick example, the cheapest route across a triangle:
//
//	g := graph.NewAdjacency[string]()
//	g.AddBoth("A", "B", 1)
//	g.AddBoth("B", "C", 2)
//	g.AddBoth("A", "C", 5)
//
//	path, ok, _ := route.ShortestPath[string](g, "A", func(n string) bool { return n == "C" })
//	// ok == true, path.Cost() == 3, path.Nodes() == [A B C]
package pathfinding
