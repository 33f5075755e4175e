// SPDX-License-Identifier: MIT
// File: registry.go
// Role: Vertex registry: vertex records, the global vertex list and the
//       key → record index.
// Invariants:
//   - index and list hold exactly the same set of records.
//   - rec.node.Value == rec for every registered record.

package core

import (
	"log/slog"

	"github.com/katalvlaran/wugraph/dlist"
	"github.com/katalvlaran/wugraph/hashtable"
)

// vertexRecord is the internal representation of one vertex.
type vertexRecord[K any] struct {
	key K

	// node is this record's handle in the global vertex list.
	node *dlist.Node[*vertexRecord[K]]

	// incident holds one entry per incident edge; a self-edge has one entry.
	incident dlist.List[*edgeRecord[K]]
}

type vertexRegistry[K any] struct {
	list  *dlist.List[*vertexRecord[K]]
	index *hashtable.Table[K, *vertexRecord[K]]
}

func newVertexRegistry[K any](h hashtable.Hasher[K], capacity int, logger *slog.Logger) *vertexRegistry[K] {
	return &vertexRegistry[K]{
		list: dlist.New[*vertexRecord[K]](),
		index: hashtable.MustNew[K, *vertexRecord[K]](h,
			hashtable.WithCapacity(capacity),
			hashtable.WithLogger(logger),
		),
	}
}

// lookup returns the record for k, or nil.
func (r *vertexRegistry[K]) lookup(k K) *vertexRecord[K] {
	rec, _ := r.index.Find(k)

	return rec
}

// add registers a new record for k. The caller has checked that k is absent.
func (r *vertexRegistry[K]) add(k K) *vertexRecord[K] {
	rec := &vertexRecord[K]{key: k}
	rec.node = r.list.PushBack(rec)
	r.index.Insert(k, rec)

	return rec
}

// remove unregisters rec. Incident edges must already be unlinked.
func (r *vertexRegistry[K]) remove(rec *vertexRecord[K]) {
	r.list.Remove(rec.node)
	r.index.Remove(rec.key)
	rec.node = nil
}

func (r *vertexRegistry[K]) len() int { return r.list.Len() }

// keys returns the caller keys in list order.
func (r *vertexRegistry[K]) keys() []K {
	out := make([]K, 0, r.list.Len())
	for rec := range r.list.All() {
		out = append(out, rec.key)
	}

	return out
}
