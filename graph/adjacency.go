package graph

// Adjacency is a concrete, map-backed NodeGraph implementation intended
// for callers whose graph is a plain finite edge list rather than an
// implicit rule. It records vertices in insertion order, so Nodes and
// Neighbors are deterministic for a fixed construction sequence.
//
// Adjacency is not safe for concurrent mutation; guard it externally or
// give each goroutine its own instance.
type Adjacency[N comparable] struct {
	order   []N
	present map[N]bool
	adj     map[N][]Edge[N]
}

// NewAdjacency returns an empty Adjacency graph.
func NewAdjacency[N comparable]() *Adjacency[N] {
	return &Adjacency[N]{
		present: make(map[N]bool),
		adj:     make(map[N][]Edge[N]),
	}
}

// AddVertex registers v as a node of the graph.
// Returns true if v was newly added, false if it was already present.
func (a *Adjacency[N]) AddVertex(v N) bool {
	if a.present[v] {
		return false
	}
	a.present[v] = true
	a.order = append(a.order, v)

	return true
}

// AddEdge records a directed edge from→to with the given weight.
// Unknown endpoints are registered as vertices automatically.
func (a *Adjacency[N]) AddEdge(from, to N, weight int64) {
	a.AddVertex(from)
	a.AddVertex(to)
	a.adj[from] = append(a.adj[from], NewEdge(weight, from, to))
}

// AddBoth records the edge in both directions with the same weight,
// the usual encoding of an undirected connection.
func (a *Adjacency[N]) AddBoth(u, v N, weight int64) {
	a.AddEdge(u, v, weight)
	a.AddEdge(v, u, weight)
}

// HasVertex reports whether v has been registered.
func (a *Adjacency[N]) HasVertex(v N) bool { return a.present[v] }

// Neighbors returns the outbound edges of source in insertion order.
// The returned slice is a copy; callers may mutate it freely.
func (a *Adjacency[N]) Neighbors(source N) []Edge[N] {
	edges := a.adj[source]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Edge[N], len(edges))
	copy(out, edges)

	return out
}

// Nodes returns every registered vertex in insertion order.
func (a *Adjacency[N]) Nodes() []N {
	out := make([]N, len(a.order))
	copy(out, a.order)

	return out
}

// VertexCount returns the number of registered vertices.
func (a *Adjacency[N]) VertexCount() int { return len(a.order) }
