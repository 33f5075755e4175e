// SPDX-License-Identifier: MIT
// Package core defines the Graph type, its public value types (Neighbors,
// Edge, Stats), the functional options and the constructors.
//
// Errors:
//
//	ErrNilHasher - NewGraphWithHasher was given a nil Hasher (panics).
package core

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/wugraph/hashtable"
)

// ErrNilHasher is the panic value of NewGraphWithHasher(nil).
var ErrNilHasher = errors.New("core: nil hasher")

// Neighbors is a snapshot of a vertex's incident edges as two parallel
// slices: Vertices[i] is joined to the queried vertex by an edge of weight
// Weights[i]. Both slices are freshly allocated on every call.
type Neighbors[K any] struct {
	// Vertices holds the other endpoint of each incident edge, or the
	// queried vertex itself for a self-edge.
	Vertices []K

	// Weights holds the matching edge weights.
	Weights []int64
}

// Len returns the number of incident edges; 0 for a nil receiver.
func (n *Neighbors[K]) Len() int {
	if n == nil {
		return 0
	}

	return len(n.Vertices)
}

// Edge is a copy of one stored edge.
type Edge[K any] struct {
	U, V   K
	Weight int64
}

// Stats describes the graph and the shape of its two hash indexes.
type Stats struct {
	Vertices    int
	Edges       int
	VertexIndex hashtable.Stats
	EdgeIndex   hashtable.Stats
}

type config struct {
	capacity int
	logger   *slog.Logger
}

// Option configures a Graph at construction time.
type Option func(*config)

// WithCapacity pre-sizes the vertex and edge indexes for about n entries
// each. Negative n is treated as 0.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = max(n, 0) }
}

// WithLogger routes debug logs of the graph and its indexes to l.
// By default logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is a weighted, undirected graph over vertex keys of type K.
// Self-edges are allowed; parallel edges are not (re-adding updates weight).
//
// A Graph is not safe for concurrent use.
type Graph[K any] struct {
	hasher   hashtable.Hasher[K]
	vertices *vertexRegistry[K]
	edges    *edgeIndex[K]

	// cfg is kept so Clear and Clone rebuild identically configured indexes.
	cfg    config
	logger *slog.Logger
}

// NewGraph returns an empty graph keyed by any comparable K, with equality
// ==, the same semantics as a Go map key.
//
// Complexity: O(1).
func NewGraph[K comparable](opts ...Option) *Graph[K] {
	return NewGraphWithHasher[K](hashtable.NewComparableHasher[K](), opts...)
}

// NewGraphWithHasher returns an empty graph whose vertex keys are hashed and
// compared by h. Use it for keys that are not comparable or that carry their
// own notion of equality. It panics with ErrNilHasher if h is nil.
//
// Complexity: O(1).
func NewGraphWithHasher[K any](h hashtable.Hasher[K], opts ...Option) *Graph[K] {
	if h == nil {
		panic(ErrNilHasher)
	}
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[K]{hasher: h, cfg: cfg, logger: cfg.logger}
	g.reset()

	return g
}

// reset installs fresh, empty registries built from g.cfg.
func (g *Graph[K]) reset() { g.resetSized(g.cfg.capacity) }

func (g *Graph[K]) resetSized(capacity int) {
	g.vertices = newVertexRegistry(g.hasher, capacity, g.logger.With(slog.String("index", "vertex")))
	g.edges = newEdgeIndex(g.hasher, capacity, g.logger.With(slog.String("index", "edge")))
}
