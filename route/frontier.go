package route

// frontierItem is one discovered-but-not-finalized node in the frontier.
//
// cost is the exact accumulated cost from the start; priority is
// cost + heuristic(node) and orders the heap (for Dijkstra the heuristic
// is zero and the two coincide). seq is a monotone insertion counter that
// breaks priority ties, so pop order is a total order independent of
// incidental heap layout and results stay reproducible for a fixed
// neighbor order.
type frontierItem[N comparable] struct {
	node     N
	cost     int64
	priority int64
	seq      uint64
}

// frontier is a min-heap of *frontierItem ordered by (priority, seq)
// ascending. Like the classic lazy decrease-key scheme, a shorter route
// to an already-queued node is pushed as a fresh item; the stale entry
// remains and is discarded on pop via the visited set.
type frontier[N comparable] []*frontierItem[N]

// Len returns the number of items in the heap.
func (f frontier[N]) Len() int { return len(f) }

// Less orders items by priority, then by insertion sequence.
func (f frontier[N]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier[N]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem[N].
func (f *frontier[N]) Push(x interface{}) { *f = append(*f, x.(*frontierItem[N])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier[N]) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
