// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/IsEdge/Weight/WeightOK/
//       Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors(v) follows v's incident list: edge creation order.
//   - Edges() follows the global edge list: edge creation order.
//   - Updating a weight never reorders anything.
// Missing keys:
//   - AddEdge/RemoveEdge with an absent endpoint are no-ops.
//   - Weight of a non-edge is 0; use IsEdge or WeightOK to disambiguate.

package core

// AddEdge joins u and v with an edge of the given weight. If the edge
// already exists only its weight is updated. If u or v is not a vertex the
// graph is unchanged. u == v adds a self-edge, which contributes one to
// Degree(u).
//
// Implementation:
//   - Stage 1: Resolve both endpoint records; return if either is missing.
//   - Stage 2: Look the unordered pair up in the edge index; if found,
//     overwrite the weight and return.
//   - Stage 3: Append a record to u's incident list and, unless u == v, to
//     v's; append it to the edge list; index it under the pair.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K]) AddEdge(u, v K, weight int64) {
	ur, vr := g.vertices.lookup(u), g.vertices.lookup(v)
	if ur == nil || vr == nil {
		return
	}
	if e := g.edges.lookup(ur.key, vr.key); e != nil {
		e.weight = weight

		return
	}
	g.edges.link(ur, vr, weight)
}

// RemoveEdge deletes the edge {u,v}. If u or v is not a vertex, or they are
// not adjacent, the graph is unchanged.
//
// Implementation:
//   - Stage 1: Resolve the record through the edge index.
//   - Stage 2: Unlink it from both incident lists (once for a self-edge)
//     using the stored handles, from the edge list, and from the index.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K]) RemoveEdge(u, v K) {
	if e := g.edges.lookup(u, v); e != nil {
		g.edges.unlink(e)
	}
}

// IsEdge reports whether {u,v} is an edge. The argument order does not
// matter; false is returned when u or v is not a vertex. O(1).
func (g *Graph[K]) IsEdge(u, v K) bool {
	return g.edges.lookup(u, v) != nil
}

// Weight returns the weight of {u,v}, or 0 if it is not an edge (including
// when u or v is not a vertex). A zero result is ambiguous by design; check
// IsEdge first or use WeightOK.
//
// Complexity: O(1).
func (g *Graph[K]) Weight(u, v K) int64 {
	w, _ := g.WeightOK(u, v)

	return w
}

// WeightOK returns the weight of {u,v} and whether the edge exists. O(1).
func (g *Graph[K]) WeightOK(u, v K) (int64, bool) {
	e := g.edges.lookup(u, v)
	if e == nil {
		return 0, false
	}

	return e.weight, true
}

// Neighbors returns the vertices adjacent to k with the matching edge
// weights, in incident-list order. A self-edge lists k itself. It returns
// nil when k is not a vertex or has degree 0.
//
// The result and both slices are newly allocated and hold caller keys only.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph[K]) Neighbors(k K) *Neighbors[K] {
	rec := g.vertices.lookup(k)
	if rec == nil || rec.incident.Len() == 0 {
		return nil
	}

	d := rec.incident.Len()
	nb := &Neighbors[K]{
		Vertices: make([]K, 0, d),
		Weights:  make([]int64, 0, d),
	}
	for e := range rec.incident.All() {
		nb.Vertices = append(nb.Vertices, e.other(rec).key)
		nb.Weights = append(nb.Weights, e.weight)
	}

	return nb
}

// Edges returns a copy of every edge in creation order. For each edge U is
// the first argument of the AddEdge call that created it. The slice is
// newly allocated and never nil.
//
// Complexity: O(E).
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.edges.len())
	for e := range g.edges.list.All() {
		out = append(out, Edge[K]{U: e.u.key, V: e.v.key, Weight: e.weight})
	}

	return out
}

// EdgeCount returns the number of distinct edges. O(1).
func (g *Graph[K]) EdgeCount() int { return g.edges.len() }
