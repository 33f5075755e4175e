// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs on top of
// wugraph/core: paths, cycles, stars, wheels, complete graphs, grids and
// seeded random sparse graphs.
//
// A Constructor is a closure that mutates a *core.Graph[string] using the
// resolved builder options. BuildGraph creates the graph, resolves the
// options once, and runs the constructors in order, so composing several
// constructors is reproducible:
//
//	g, err := builder.BuildGraph(
//		[]core.Option{core.WithCapacity(64)},
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//		builder.Cycle(8),
//		builder.RandomSparse(8, 0.25),
//	)
//
// Vertex keys come from an IDFn (decimal by default, see WithIDScheme). Edge
// weights come from a WeightFn (constant DefaultEdgeWeight by default).
// Because core.Graph keeps at most one edge per unordered pair, a
// constructor that re-emits an existing pair only updates its weight.
//
// Errors:
//
//	ErrTooFewVertices     - a size parameter is below the constructor's minimum.
//	ErrInvalidProbability - RandomSparse probability outside [0,1].
//	ErrNeedRandSource     - a stochastic constructor ran without WithSeed/WithRand.
//	ErrNilConstructor     - BuildGraph was given a nil Constructor.
package builder
