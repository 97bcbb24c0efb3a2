package graph

// Cached decorates a Graph with per-node memoization of Neighbors results.
// It suits implicit graphs whose neighbor computation is expensive (e.g.
// segment costs derived from many cells) and revisited across or within
// searches.
//
// The memo is scoped to this one Cached instance. It is not safe for
// concurrent mutation; share it across goroutines only behind external
// synchronization, or give each goroutine its own wrapper.
type Cached[N comparable] struct {
	inner Graph[N]
	memo  map[N][]Edge[N]
}

// WithCache wraps g in a neighbor-memoizing Cached graph.
func WithCache[N comparable](g Graph[N]) *Cached[N] {
	return &Cached[N]{
		inner: g,
		memo:  make(map[N][]Edge[N]),
	}
}

// Neighbors returns the memoized edge list for source, computing and
// storing it on first request. The returned slice is shared between the
// memo and all callers and must be treated as read-only.
func (c *Cached[N]) Neighbors(source N) []Edge[N] {
	if edges, ok := c.memo[source]; ok {
		return edges
	}
	edges := c.inner.Neighbors(source)
	c.memo[source] = edges

	return edges
}

// Reset discards every memoized entry, e.g. after the underlying graph
// state changes between searches.
func (c *Cached[N]) Reset() {
	c.memo = make(map[N][]Edge[N])
}

// Size returns the number of nodes with a memoized neighbor list.
func (c *Cached[N]) Size() int { return len(c.memo) }
