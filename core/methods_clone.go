// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone reproduces Vertices(), Edges() and every Neighbors() order.
// AI-HINT (file):
//   - Clone shares vertex keys with the source (keys are caller-owned values);
//     it shares no records, lists or indexes.
//   - Clear() preserves construction options but drops every record.

package core

// Clear removes all vertices and edges. Indexes shrink back to their
// construction-time size. Configuration (hasher, capacity, logger) is kept.
//
// Complexity: O(1) plus the allocation of fresh indexes; old records are
// left to the garbage collector.
func (g *Graph[K]) Clear() {
	g.reset()
}

// Clone returns an independent graph with the same vertices, edges and
// weights, built with the same hasher and options.
//
// Implementation:
//   - Stage 1: Add every vertex in vertex-list order.
//   - Stage 2: Link every edge in edge-list order. Each incident list only
//     ever grows at the back, so replaying creation order rebuilds every
//     incident list in its original order.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph[K]) Clone() *Graph[K] {
	clone := &Graph[K]{hasher: g.hasher, cfg: g.cfg, logger: g.logger}
	clone.resetSized(max(g.cfg.capacity, g.vertices.len(), g.edges.len()))

	for rec := range g.vertices.list.All() {
		clone.vertices.add(rec.key)
	}
	for e := range g.edges.list.All() {
		u := clone.vertices.lookup(e.u.key)
		v := clone.vertices.lookup(e.v.key)
		clone.edges.link(u, v, e.weight)
	}

	return clone
}
