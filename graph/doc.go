// Package graph declares the node-and-edge contract the rest of the
// module builds on.
//
// What
//
//   - Edge[N]: a directed, weighted connection between two nodes of any
//     comparable type N.
//   - Graph[N]: the capability contract, “given a node, list its
//     outbound edges”. Implement this one method and every algorithm in
//     the route package works on your representation.
//   - NodeGraph[N]: Graph plus full node enumeration, for algorithms
//     that must see the whole node set (connected components).
//   - Path[N]: an ordered edge sequence with Cost, Len and Nodes helpers.
//   - Adjacency[N]: a ready-made map-backed NodeGraph for explicit,
//     finite edge lists, with deterministic insertion-order iteration.
//   - Cached[N]: a decorator memoizing Neighbors results per node.
//
// Why
//
//	Search algorithms need nothing from a graph beyond neighbor
//	enumeration. Keeping the contract this small lets grids, implicit
//	state spaces, and ordinary adjacency lists share one engine without
//	ever exposing their internals to it.
//
// Determinism
//
//	Adjacency returns vertices and edges in insertion order, so searches
//	over it are fully reproducible. Implicit Graph implementations get
//	the same guarantee by returning neighbors in a fixed order.
//
// Concurrency
//
//	Nothing in this package synchronizes internally. Adjacency and
//	Cached must not be mutated concurrently; use one instance per
//	goroutine or serialize access externally.
//
// Usage
//
//	g := graph.NewAdjacency[string]()
//	g.AddBoth("A", "B", 1)
//	g.AddBoth("B", "C", 2)
//	g.AddBoth("A", "C", 5)
//	// Hand g to route.ShortestPath, route.All, …
package graph
