// Package graph_test contains unit tests for the contract types:
// Edge construction and the Path helpers.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dimo414/pathfinding/graph"
)

func TestNewEdge_Fields(t *testing.T) {
	e := graph.NewEdge(7, "A", "B")
	assert.Equal(t, int64(7), e.Weight)
	assert.Equal(t, "A", e.From)
	assert.Equal(t, "B", e.To)
}

func TestPath_Empty(t *testing.T) {
	// The empty path is valid: zero cost, zero length, and no node
	// sequence (the path alone cannot name its start).
	var p graph.Path[string]
	assert.Zero(t, p.Cost())
	assert.Zero(t, p.Len())
	assert.Nil(t, p.Nodes())
}

func TestPath_CostAndNodes(t *testing.T) {
	// A→B(1), B→C(2): cost is the weight sum, nodes run start..end.
	p := graph.Path[string]{
		graph.NewEdge(1, "A", "B"),
		graph.NewEdge(2, "B", "C"),
	}
	assert.Equal(t, int64(3), p.Cost())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"A", "B", "C"}, p.Nodes())
}

func TestPath_StructNodes(t *testing.T) {
	// Node types only need comparability; a struct key works unchanged.
	type cell struct{ X, Y int }
	p := graph.Path[cell]{
		graph.NewEdge(4, cell{0, 0}, cell{0, 1}),
	}
	assert.Equal(t, int64(4), p.Cost())
	assert.Equal(t, []cell{{0, 0}, {0, 1}}, p.Nodes())
}
