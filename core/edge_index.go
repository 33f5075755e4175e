// SPDX-License-Identifier: MIT
// File: edge_index.go
// Role: Edge records, the symmetric vertex-pair key and the edge index.
// Invariants:
//   - An unordered pair maps to at most one edgeRecord.
//   - uNode lives in u.incident, vNode in v.incident; for a self-edge
//     uNode == vNode and only one incident entry exists.
//   - Every linked record is in index, list and its endpoints' incident
//     lists; unlink removes it from all of them.

package core

import (
	"encoding/binary"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/wugraph/dlist"
	"github.com/katalvlaran/wugraph/hashtable"
)

// edgeRecord is the internal representation of one undirected edge.
type edgeRecord[K any] struct {
	u, v   *vertexRecord[K]
	weight int64

	uNode *dlist.Node[*edgeRecord[K]] // entry in u.incident
	vNode *dlist.Node[*edgeRecord[K]] // entry in v.incident (== uNode for a self-edge)
	node  *dlist.Node[*edgeRecord[K]] // entry in the global edge list
}

func (e *edgeRecord[K]) selfEdge() bool { return e.u == e.v }

// other returns the endpoint opposite to rec; rec itself for a self-edge.
func (e *edgeRecord[K]) other(rec *vertexRecord[K]) *vertexRecord[K] {
	if e.u == rec {
		return e.v
	}

	return e.u
}

// pairKey is an unordered pair of vertex keys: {a,b} ≡ {b,a}.
type pairKey[K any] struct {
	a, b K
}

// pairHasher lifts a vertex-key Hasher to unordered pairs. The two endpoint
// hashes are sorted before mixing, so the result is commutative without the
// XOR pitfall of sending every self-edge to hash 0.
type pairHasher[K any] struct {
	inner hashtable.Hasher[K]
}

func (p pairHasher[K]) Hash(k pairKey[K]) uint64 {
	lo, hi := p.inner.Hash(k.a), p.inner.Hash(k.b)
	if lo > hi {
		lo, hi = hi, lo
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], lo)
	binary.LittleEndian.PutUint64(buf[8:], hi)

	return xxhash.Sum64(buf[:])
}

func (p pairHasher[K]) Equal(x, y pairKey[K]) bool {
	eq := p.inner.Equal

	return (eq(x.a, y.a) && eq(x.b, y.b)) || (eq(x.a, y.b) && eq(x.b, y.a))
}

type edgeIndex[K any] struct {
	list  *dlist.List[*edgeRecord[K]]
	index *hashtable.Table[pairKey[K], *edgeRecord[K]]
}

func newEdgeIndex[K any](h hashtable.Hasher[K], capacity int, logger *slog.Logger) *edgeIndex[K] {
	return &edgeIndex[K]{
		list: dlist.New[*edgeRecord[K]](),
		index: hashtable.MustNew[pairKey[K], *edgeRecord[K]](pairHasher[K]{inner: h},
			hashtable.WithCapacity(capacity),
			hashtable.WithLogger(logger),
		),
	}
}

// lookup returns the record for the unordered pair {u,v}, or nil.
func (x *edgeIndex[K]) lookup(u, v K) *edgeRecord[K] {
	e, _ := x.index.Find(pairKey[K]{a: u, b: v})

	return e
}

// link creates and indexes a new edge between two registered vertices. The
// caller has checked that the pair is not indexed yet.
func (x *edgeIndex[K]) link(u, v *vertexRecord[K], weight int64) *edgeRecord[K] {
	e := &edgeRecord[K]{u: u, v: v, weight: weight}
	e.uNode = u.incident.PushBack(e)
	if e.selfEdge() {
		e.vNode = e.uNode
	} else {
		e.vNode = v.incident.PushBack(e)
	}
	e.node = x.list.PushBack(e)
	x.index.Insert(pairKey[K]{a: u.key, b: v.key}, e)

	return e
}

// unlink removes e from both incident lists, the edge list and the index.
// It is safe to call while iterating one endpoint's incident list with
// dlist.List.All, because only the yielded node is removed from that list.
func (x *edgeIndex[K]) unlink(e *edgeRecord[K]) {
	e.u.incident.Remove(e.uNode)
	if !e.selfEdge() {
		e.v.incident.Remove(e.vNode)
	}
	x.list.Remove(e.node)
	x.index.Remove(pairKey[K]{a: e.u.key, b: e.v.key})
	e.uNode, e.vNode, e.node = nil, nil, nil
}

func (x *edgeIndex[K]) len() int { return x.list.Len() }
