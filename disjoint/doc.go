// Package disjoint provides a generic union-find (disjoint-set)
// structure: a connectivity tracker over a fixed roster of comparable
// elements, with weighted union and path-compressed find.
//
// What
//
//   - New(elements...): every element starts as its own singleton group.
//   - Find(e): canonical representative of e's group, compressing the
//     lookup path as it walks.
//   - Union(a, b): merge the two groups by size; false if already merged.
//   - SetSize(e), Roots(), Len(), Count(): group inspection.
//
// Why
//
//	Connectivity queries (“are these two in the same component?”, “how
//	many components remain?”) come up in clustering, Kruskal-style edge
//	processing, and grid region analysis. Union-find answers them in
//	amortized near-constant time per operation.
//
// Invariants
//
//   - The sum of all group sizes always equals Len().
//   - Find is idempotent: Find(Find(x)) == Find(x).
//   - After Union(a, b) returns true, Find(a) == Find(b).
//
// Failure semantics
//
//	Querying an element never given to New, or overflowing the size
//	accumulator, is a programmer error and panics (ErrUnknownElement,
//	ErrSizeOverflow) rather than silently producing wrong answers.
//
// Concurrency
//
//	A Set must not be shared between goroutines without external
//	synchronization; even Find mutates parent links.
//
// Complexity
//
//	Amortized O(α(n)) per Find/Union after repeated use (α = inverse
//	Ackermann), O(n) construction and Roots.
//
// Usage
//
//	s := disjoint.New(1, 2, 3, 4, 5, 6, 7, 8)
//	s.Union(1, 8)            // true
//	s.Union(1, 8)            // false, already joined
//	s.SetSize(8)             // 2
//	len(s.Roots())           // 7
package disjoint
