package disjoint_test

import (
	"math/rand"
	"testing"

	"github.com/dimo414/pathfinding/disjoint"
)

// BenchmarkUnionFind measures a mixed Union/Find workload over 10k
// elements with a deterministic operation sequence.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10_000
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	ops := make([][2]int, n)
	r := rand.New(rand.NewSource(42))
	for i := range ops {
		ops[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := disjoint.New(elems...)
		for _, op := range ops {
			s.Union(op[0], op[1])
			_ = s.Find(op[0])
		}
	}
}

// BenchmarkFindCompressed measures Find cost after the forest has been
// fully merged, i.e. the path-compressed steady state.
func BenchmarkFindCompressed(b *testing.B) {
	const n = 10_000
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	s := disjoint.New(elems...)
	for i := 1; i < n; i++ {
		s.Union(0, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Find(i % n)
	}
}
