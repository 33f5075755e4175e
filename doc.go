// Package wugraph is an in-memory weighted, undirected graph ADT over opaque
// vertex keys, built from two primitives that are useful on their own.
//
// 🚀 What is in the box?
//
//	• core/      - Graph[K]: vertex/edge mutation and queries with O(1) edge
//	               operations and O(d) vertex removal and neighbor enumeration
//	• hashtable/ - Table[K,V]: chained hash table with caller-supplied
//	               hashing/equality (symmetric pair keys, []byte keys, ...)
//	• dlist/     - List[T]: doubly linked list with stable O(1)-removal handles
//	• metrics/   - Prometheus collector for graph size and index shape
//	• builder/   - deterministic fixture graphs (path, cycle, grid, G(n,p), ...)
//
// ✨ Guarantees
//
//   - Self-edges allowed, counted once toward degree.
//   - Re-adding an edge updates its weight in place.
//   - Missing vertices and edges are no-ops or zero/nil/false results, never errors.
//   - Enumeration follows insertion order.
//   - No locking: serialize access externally.
//
// Quick ASCII example:
//
//	    A──4──B
//	          │ 2
//	     1 ↺  C
//
// is built by
//
//	g := core.NewGraph[string]()
//	g.AddVertex("A"); g.AddVertex("B"); g.AddVertex("C")
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("C", "C", 1)
//
//	go get github.com/katalvlaran/wugraph
package wugraph
