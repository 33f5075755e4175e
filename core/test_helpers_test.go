// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wugraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep failure output readable: sequences are compared with go-cmp diffs.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugraph/core"
)

// Common vertex keys used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X" // never added
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0  = 0
	Weight5  = 5
	Weight7  = 7
	Weight10 = 10
	Weight20 = 20
)

// Randomized test sizes.
const (
	NRandomVertices = 40
	NRandomOps      = 4000
	NSerialWorkers  = 8
	NSerialRounds   = 200
)

// newStringGraph returns an empty graph keyed by strings.
func newStringGraph() *core.Graph[string] {
	return core.NewGraph[string]()
}

// mustAddVertices adds every key in order.
func mustAddVertices[K any](g *core.Graph[K], keys ...K) {
	for _, k := range keys {
		g.AddVertex(k)
	}
}

// RequireNeighbors FAILS the test unless Neighbors(k) equals the expected
// parallel sequences, in order. want == nil expects a nil result.
func RequireNeighbors[K any](t *testing.T, g *core.Graph[K], k K, want *core.Neighbors[K]) {
	t.Helper()
	got := g.Neighbors(k)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Neighbors(%v) mismatch (-want +got):\n%s", k, diff)
	}
}

// RequireVertices FAILS the test unless Vertices() equals want in order.
func RequireVertices[K any](t *testing.T, g *core.Graph[K], want []K) {
	t.Helper()
	if diff := cmp.Diff(want, g.Vertices()); diff != "" {
		t.Fatalf("Vertices() mismatch (-want +got):\n%s", diff)
	}
}

// RequireConsistent checks the public-API consequences of the structural
// invariants:
//   - len(Vertices()) == VertexCount(), len(Edges()) == EdgeCount();
//   - Degree(v) == Neighbors(v).Len() for every vertex;
//   - every neighbor relation is symmetric with equal weights;
//   - Σ degree == 2·E − (number of self-edges).
func RequireConsistent[K comparable](t *testing.T, g *core.Graph[K]) {
	t.Helper()
	vertices := g.Vertices()
	require.Len(t, vertices, g.VertexCount())
	edges := g.Edges()
	require.Len(t, edges, g.EdgeCount())

	loops, degreeSum := 0, 0
	for _, e := range edges {
		require.True(t, g.IsVertex(e.U), "edge endpoint %v must be a vertex", e.U)
		require.True(t, g.IsVertex(e.V), "edge endpoint %v must be a vertex", e.V)
		if e.U == e.V {
			loops++
		}
	}
	for _, v := range vertices {
		nb := g.Neighbors(v)
		require.Equal(t, g.Degree(v), nb.Len(), "Degree(%v) vs Neighbors", v)
		degreeSum += g.Degree(v)
		for i := 0; i < nb.Len(); i++ {
			u, w := nb.Vertices[i], nb.Weights[i]
			require.True(t, g.IsEdge(v, u) && g.IsEdge(u, v), "symmetry %v-%v", v, u)
			require.Equal(t, w, g.Weight(u, v), "weight symmetry %v-%v", v, u)
		}
	}
	require.Equal(t, 2*len(edges)-loops, degreeSum, "handshake lemma with loops counted once")
}
