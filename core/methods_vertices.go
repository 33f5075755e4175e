// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns keys in insertion order (removals close the gap).
//
// Missing keys:
//   - AddVertex on a present key and RemoveVertex on an absent key are no-ops.
//   - Degree on an absent key returns 0.
package core

import "log/slog"

// AddVertex inserts a vertex with no incident edges (idempotent).
//
// Implementation:
//   - Stage 1: Look the key up in the vertex index; return if present.
//   - Stage 2: Allocate a record, append it to the vertex list, index it.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K]) AddVertex(k K) {
	if g.vertices.lookup(k) != nil {
		return
	}
	g.vertices.add(k)
}

// RemoveVertex deletes a vertex and every edge incident on it. Absent keys
// leave the graph unchanged.
//
// Implementation:
//   - Stage 1: Look the record up; return if absent.
//   - Stage 2: Walk its incident list once; for each edge unlink the
//     reciprocal entry in the other endpoint's list by handle, then drop
//     the edge from the edge list and the edge index.
//   - Stage 3: Drop the record from the vertex list and index.
//
// Complexity:
//   - Time O(d) where d = Degree(k), Space O(1).
func (g *Graph[K]) RemoveVertex(k K) {
	rec := g.vertices.lookup(k)
	if rec == nil {
		return
	}

	degree := rec.incident.Len()
	for e := range rec.incident.All() {
		g.edges.unlink(e)
	}
	g.vertices.remove(rec)

	g.logger.Debug("vertex removed",
		slog.Int("degree", degree),
		slog.Int("vertices", g.vertices.len()),
		slog.Int("edges", g.edges.len()),
	)
}

// IsVertex reports whether k is a vertex. O(1).
func (g *Graph[K]) IsVertex(k K) bool {
	return g.vertices.lookup(k) != nil
}

// Degree returns the number of edges incident on k, counting a self-edge
// once. It returns 0 when k is not a vertex.
//
// Complexity: O(1).
func (g *Graph[K]) Degree(k K) int {
	rec := g.vertices.lookup(k)
	if rec == nil {
		return 0
	}

	return rec.incident.Len()
}

// Vertices returns the vertex keys exactly as passed to AddVertex, in
// insertion order. The slice is newly allocated, never nil, and its length
// equals VertexCount().
//
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	return g.vertices.keys()
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[K]) VertexCount() int { return g.vertices.len() }
