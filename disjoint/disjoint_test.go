// Package disjoint_test contains unit tests for the union-find structure:
// the singleton baseline, union/find semantics, invariants under random
// operation sequences, and precondition panics.
package disjoint_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimo414/pathfinding/disjoint"
)

func TestSet_Singletons(t *testing.T) {
	s := disjoint.New("a", "b", "c")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Count())
	assert.Len(t, s.Roots(), 3)
	for _, e := range []string{"a", "b", "c"} {
		assert.Equal(t, e, s.Find(e), "a singleton is its own representative")
		assert.Equal(t, 1, s.SetSize(e))
	}
}

// TestSet_MergeScenario walks a fixed union sequence over {1..8} and
// checks group counts and sizes at each stage.
func TestSet_MergeScenario(t *testing.T) {
	s := disjoint.New(1, 2, 3, 4, 5, 6, 7, 8)
	require.Len(t, s.Roots(), 8)
	require.Equal(t, 1, s.SetSize(1))

	assert.True(t, s.Union(1, 8))
	assert.False(t, s.Union(1, 8), "repeat union of the same pair is a no-op")
	assert.Equal(t, 2, s.SetSize(1))
	assert.Equal(t, 2, s.SetSize(8))
	assert.Equal(t, 1, s.SetSize(2))

	s.Union(3, 4)
	s.Union(2, 6)
	s.Union(6, 5)
	s.Union(5, 1)

	assert.Len(t, s.Roots(), 3)
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 5, s.SetSize(1))
	assert.Equal(t, 2, s.SetSize(4))
	assert.Equal(t, 1, s.SetSize(7))
}

func TestSet_UnionJoinsRepresentatives(t *testing.T) {
	s := disjoint.New("a", "b", "c", "d")
	require.True(t, s.Union("a", "b"))
	assert.Equal(t, s.Find("a"), s.Find("b"))

	require.True(t, s.Union("c", "d"))
	require.True(t, s.Union("b", "c"))
	root := s.Find("a")
	for _, e := range []string{"b", "c", "d"} {
		assert.Equal(t, root, s.Find(e))
	}
}

func TestSet_FindStability(t *testing.T) {
	// Find must be idempotent and stable even while compression rewrites
	// parent links under the hood.
	s := disjoint.New(0, 1, 2, 3, 4, 5)
	s.Union(0, 1)
	s.Union(1, 2)
	s.Union(3, 4)

	for e := 0; e <= 5; e++ {
		first := s.Find(e)
		assert.Equal(t, first, s.Find(e))
		assert.Equal(t, first, s.Find(first), "Find(Find(x)) == Find(x)")
	}
}

// TestSet_SizeInvariant performs a random union sequence and verifies
// after every step that group sizes over Roots sum to Len.
func TestSet_SizeInvariant(t *testing.T) {
	const n = 64
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	s := disjoint.New(elems...)

	r := rand.New(rand.NewSource(42))
	for step := 0; step < 200; step++ {
		s.Union(r.Intn(n), r.Intn(n))

		total := 0
		for _, root := range s.Roots() {
			total += s.SetSize(root)
		}
		require.Equal(t, n, total, "step %d: sizes must sum to the element count", step)
		require.Equal(t, s.Count(), len(s.Roots()), "step %d", step)
	}
}

func TestSet_UnionEverything(t *testing.T) {
	s := disjoint.New("a", "b", "c", "d", "e")
	s.Union("a", "b")
	s.Union("b", "c")
	s.Union("c", "d")
	s.Union("d", "e")

	assert.Equal(t, 1, s.Count())
	require.Len(t, s.Roots(), 1)
	assert.Equal(t, 5, s.SetSize("a"))
	assert.False(t, s.Union("a", "e"))
}

func TestSet_UnknownElementPanics(t *testing.T) {
	s := disjoint.New(1, 2, 3)
	assert.Panics(t, func() { s.Find(99) })
	assert.Panics(t, func() { s.Union(1, 99) })
	assert.Panics(t, func() { s.SetSize(99) })
}

func TestSet_StructElements(t *testing.T) {
	// Elements only need comparability.
	type point struct{ X, Y int }
	s := disjoint.New(point{0, 0}, point{0, 1}, point{1, 0})
	assert.True(t, s.Union(point{0, 0}, point{1, 0}))
	assert.Equal(t, 2, s.SetSize(point{1, 0}))
	assert.Equal(t, 2, s.Count())
}

func TestSet_Empty(t *testing.T) {
	s := disjoint.New[string]()
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Count())
	assert.Empty(t, s.Roots())
}
