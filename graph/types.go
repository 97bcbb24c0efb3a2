// Package graph defines the capability contract every search algorithm in
// this module is written against: a generic weighted Edge, the Graph and
// NodeGraph interfaces, and the Path type produced by searches.
//
// A Graph is not a data structure; it is anything that can answer
// “what edges leave this node?”. Concrete representations (grids, wiring
// diagrams, mazes) implement Neighbors without the algorithms ever seeing
// their internals.
//
// This file declares Edge, Graph, NodeGraph, and Path.
package graph

// Edge represents a single directed, weighted connection between two nodes.
//
// Edges are produced on demand by Graph.Neighbors and are never stored by
// the search algorithms beyond the duration of one query. Weight must be
// non-negative for shortest-path correctness; the route package rejects
// negative weights when it encounters them.
type Edge[N comparable] struct {
	// Weight is the cost of traversing this edge.
	Weight int64

	// From is the source node.
	From N

	// To is the destination node.
	To N
}

// NewEdge constructs an Edge from weight, source and destination.
func NewEdge[N comparable](weight int64, from, to N) Edge[N] {
	return Edge[N]{Weight: weight, From: from, To: to}
}

// Graph is the sole extension point of the search engine: any type that,
// given a node, produces the finite list of outbound edges from that node.
//
// Neighbors must be a pure function of the node (plus any captured
// read-only graph state) and must return a finite slice for every
// reachable node, even if the overall node space is conceptually
// infinite; callers bound exploration via route options or domain logic.
// The returned slice is owned by the caller of Neighbors and must not be
// retained or mutated by the implementation after returning.
type Graph[N comparable] interface {
	// Neighbors returns all directed edges leaving source.
	Neighbors(source N) []Edge[N]
}

// NodeGraph extends Graph with full node enumeration. It is required only
// by algorithms that need the complete node set, such as
// route.ConnectedComponents; plain path queries never call Nodes.
type NodeGraph[N comparable] interface {
	Graph[N]

	// Nodes returns every node in the graph.
	Nodes() []N
}

// Path is an ordered sequence of edges from a start node to a goal node,
// in traversal order. The empty Path is valid and represents a start node
// that already satisfies the goal; its cost is zero.
type Path[N comparable] []Edge[N]

// Len returns the number of edges in the path.
func (p Path[N]) Len() int { return len(p) }

// Cost returns the sum of the constituent edge weights.
//
// Weights on a Path produced by the route package were already
// overflow-checked during the search, so plain summation is safe here.
func (p Path[N]) Cost() int64 {
	var total int64
	for _, e := range p {
		total += e.Weight
	}

	return total
}

// Nodes returns the node sequence the path visits, from the start node
// through every destination in order. An empty path yields nil, since the
// path alone cannot name its start.
func (p Path[N]) Nodes() []N {
	if len(p) == 0 {
		return nil
	}
	nodes := make([]N, 0, len(p)+1)
	nodes = append(nodes, p[0].From)
	for _, e := range p {
		nodes = append(nodes, e.To)
	}

	return nodes
}
