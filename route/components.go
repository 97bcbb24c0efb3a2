package route

import "github.com/dimo414/pathfinding/graph"

// ConnectedComponents groups the full node set of g by reachability.
// Each component is the set of nodes mutually connected through edges as
// the graph produces them; for undirected semantics the graph must emit
// each connection in both directions (e.g. graph.Adjacency.AddBoth).
//
// Components appear in the order their first member appears in g.Nodes();
// within a component, members appear in discovery order. Edge weights are
// ignored; only connectivity matters here.
//
// Time:   O(V + E). Memory: O(V) for the seen set and queue.
func ConnectedComponents[N comparable](g graph.NodeGraph[N]) [][]N {
	if g == nil {
		return nil
	}

	seen := make(map[N]bool)
	var comps [][]N

	var root N
	for _, root = range g.Nodes() {
		if seen[root] {
			continue
		}
		seen[root] = true

		// Breadth-first sweep collecting everything reachable from root.
		queue := []N{root}
		var comp []N
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, e := range g.Neighbors(u) {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
