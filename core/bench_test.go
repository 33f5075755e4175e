// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wugraph/core"
)

// BenchmarkAddEdge measures edge insertion on a star centred at vertex 0.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[int](core.WithCapacity(b.N + 1))
	for i := 0; i <= b.N; i++ {
		g.AddVertex(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 1; i <= b.N; i++ {
		g.AddEdge(0, i, int64(i))
	}
}

// BenchmarkRemoveEdge measures O(1) removal from a high-degree hub: each
// removal must not depend on the hub's degree.
func BenchmarkRemoveEdge(b *testing.B) {
	g := core.NewGraph[int](core.WithCapacity(b.N + 1))
	for i := 0; i <= b.N; i++ {
		g.AddVertex(i)
	}
	for i := 1; i <= b.N; i++ {
		g.AddEdge(0, i, int64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := b.N; i >= 1; i-- {
		g.RemoveEdge(i, 0)
	}
}

// BenchmarkNeighbors measures enumeration of a degree-64 vertex.
func BenchmarkNeighbors(b *testing.B) {
	const degree = 64
	g := core.NewGraph[int]()
	for i := 0; i <= degree; i++ {
		g.AddVertex(i)
		g.AddEdge(0, i, int64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(0)
	}
}

// BenchmarkRemoveVertex measures cascade removal of degree-8 vertices.
func BenchmarkRemoveVertex(b *testing.B) {
	const degree = 8
	g := core.NewGraph[int]()
	for i := 0; i < b.N*(degree+1); i++ {
		g.AddVertex(i)
	}
	for i := 0; i < b.N; i++ {
		c := i * (degree + 1)
		for j := 1; j <= degree; j++ {
			g.AddEdge(c, c+j, int64(j))
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RemoveVertex(i * (degree + 1))
	}
}
