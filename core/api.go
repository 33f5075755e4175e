// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics on top of the core types.
// Policy:
//   - No mutation here.
//   - Stats() walks bucket arrays; keep it off hot paths.

package core

// Stats returns the vertex and edge counts together with the shape of the
// vertex index and the edge index.
//
// Complexity:
//   - Time O(B_v + B_e) for the bucket scans, Space O(1).
//
// AI-Hints:
//   - metrics.Collector calls this on every scrape.
func (g *Graph[K]) Stats() Stats {
	return Stats{
		Vertices:    g.vertices.len(),
		Edges:       g.edges.len(),
		VertexIndex: g.vertices.index.Stats(),
		EdgeIndex:   g.edges.index.Stats(),
	}
}
