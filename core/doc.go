// Package core provides Graph, a mutable, weighted, undirected graph over
// caller-supplied opaque vertex keys, with O(1) edge operations and O(d)
// vertex removal and neighbor enumeration.
//
// The Graph G = (V,E) is built from two primitives:
//
//   - hashtable.Table - key → record indexes with caller-supplied hashing.
//   - dlist.List      - ordered registries and per-vertex incident lists,
//     whose node handles allow O(1) unlinking without search.
//
// Internal layout:
//
//	vertex index : Table[K, *vertexRecord]           (key → record)
//	vertex list  : List[*vertexRecord]               (insertion order)
//	edge index   : Table[pairKey{u,v}, *edgeRecord]  ((u,v) ≡ (v,u))
//	edge list    : List[*edgeRecord]                 (creation order)
//	incident     : vertexRecord.incident List[*edgeRecord]
//
// Every edgeRecord stores the handle of its node in u's incident list, in
// v's incident list (the same node for a self-edge) and in the edge list, so
// RemoveEdge unlinks all of them directly.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(k)            // O(1), no-op if present
//	RemoveVertex(k)         // O(d), removes incident edges, no-op if absent
//	IsVertex(k) bool        // O(1)
//	Degree(k) int           // O(1), self-edges count once, 0 if absent
//	Vertices() []K          // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(u, v, w)        // O(1), inserts or updates weight; no-op if u or v absent
//	RemoveEdge(u, v)        // O(1), no-op if absent
//	IsEdge(u, v) bool       // O(1), order-independent
//	Weight(u, v) int64      // O(1), 0 if not an edge
//	WeightOK(u, v)          // O(1), comma-ok form of Weight
//	Neighbors(k)            // O(d), nil if absent or isolated
//	Edges() []Edge[K]       // O(E), creation order
//
//	// Counts & maintenance
//	VertexCount(), EdgeCount() int  // O(1)
//	Clear()                         // drop all vertices and edges
//	Clone() *Graph[K]               // O(V+E) structural copy
//	Stats() Stats                   // counts + index shapes
//
// Missing vertices and edges are never errors: mutations become no-ops and
// queries return 0, false or nil. Callers that need to tell a zero-weight
// edge from a missing one use IsEdge or WeightOK.
//
// Concurrency: a Graph performs no locking. Serialize access externally,
// e.g. with one sync.Mutex guarding the whole graph.
package core
