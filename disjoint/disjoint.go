// Package disjoint implements a union-find (disjoint-set) structure over
// any comparable element type, with union by size and path compression.
package disjoint

import (
	"errors"
	"fmt"
	"math"
)

// Panic values raised for precondition violations. These indicate a
// caller/library contract mismatch, not a runtime condition to recover
// from, so the package fails loudly instead of guessing.
var (
	// ErrUnknownElement is the panic value when an operation references an
	// element that was not part of the construction set.
	ErrUnknownElement = errors.New("disjoint: element not in set")

	// ErrSizeOverflow is the panic value when merged set sizes exceed int.
	ErrSizeOverflow = errors.New("disjoint: set size overflows int")
)

// Set tracks a partition of a fixed element roster into disjoint groups.
//
// Elements are assigned stable internal indices at construction; callers
// interact only through element values, never raw indices. Each tree root
// stores the authoritative size of its group; non-root entries may hold
// stale intermediate parents, flattened lazily as Find walks them.
//
// Set is not safe for concurrent use: even Find mutates parent links
// through path compression.
type Set[E comparable] struct {
	elems   []E       // roster, index-addressed
	reverse map[E]int // element → index
	parent  []int     // forest over indices; parent[i] == i at roots
	size    []int     // group size, authoritative at roots only
	count   int       // number of distinct groups
}

// New builds a Set in which every given element forms its own singleton
// group of size 1. Indices follow argument order. Elements must be
// distinct: duplicates are undefined behavior, not deduplicated.
func New[E comparable](elements ...E) *Set[E] {
	n := len(elements)
	s := &Set[E]{
		elems:   make([]E, n),
		reverse: make(map[E]int, n),
		parent:  make([]int, n),
		size:    make([]int, n),
		count:   n,
	}
	copy(s.elems, elements)
	for i, e := range elements {
		s.reverse[e] = i
		s.parent[i] = i
		s.size[i] = 1
	}

	return s
}

// index resolves an element to its roster index, panicking with
// ErrUnknownElement for anything outside the construction set.
func (s *Set[E]) index(e E) int {
	i, ok := s.reverse[e]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownElement, e))
	}

	return i
}

// findIdx returns the root index of i's tree, repointing every entry on
// the walk at the discovered root so future lookups amortize to near O(1).
func (s *Set[E]) findIdx(i int) int {
	p := s.parent[i]
	if p == i {
		return i
	}
	root := s.findIdx(p)
	s.parent[i] = root

	return root
}

// Find returns the canonical representative of the group containing e.
// Find(root) == root, and two elements share a group exactly when their
// representatives are equal. Panics with ErrUnknownElement for elements
// outside the construction set.
func (s *Set[E]) Find(e E) E {
	return s.elems[s.findIdx(s.index(e))]
}

// Union merges the groups containing a and b. Returns false (a no-op) if
// they already share a group; otherwise the smaller tree's root is
// attached under the larger's, the surviving root's size becomes the sum,
// and Union returns true.
func (s *Set[E]) Union(a, b E) bool {
	ra := s.findIdx(s.index(a))
	rb := s.findIdx(s.index(b))
	if ra == rb {
		return false
	}

	// Union by size: keep ra the larger tree.
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	if s.size[ra] > math.MaxInt-s.size[rb] {
		panic(fmt.Errorf("%w: %d + %d", ErrSizeOverflow, s.size[ra], s.size[rb]))
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	s.count--

	return true
}

// SetSize returns the current size of the group containing e.
func (s *Set[E]) SetSize(e E) int {
	return s.size[s.findIdx(s.index(e))]
}

// Roots returns the canonical representative of every distinct group, one
// per group, in roster-index order.
func (s *Set[E]) Roots() []E {
	roots := make([]E, 0, s.count)
	for i, p := range s.parent {
		if i == p {
			roots = append(roots, s.elems[i])
		}
	}

	return roots
}

// Len returns the total number of elements across all groups. It is
// always equal to the sum of SetSize over Roots.
func (s *Set[E]) Len() int { return len(s.elems) }

// Count returns the number of distinct groups.
func (s *Set[E]) Count() int { return s.count }
