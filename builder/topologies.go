// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// topologies.go - deterministic and seeded topology constructors.
//
// Emission order (stable, relied on by golden tests):
//   - Path:     vertices 0..n-1; edges {i-1,i} for i=1..n-1.
//   - Cycle:    Path(n) plus the closing edge {n-1,0}.
//   - Star:     Center, then leaves 0..n-2; spokes {Center,i} in i order.
//   - Wheel:    Center, ring 0..n-2 as a cycle, then spokes in i order.
//   - Complete: vertices 0..n-1; edges {i,j} for i<j, i then j ascending.
//   - Grid:     keys "r,c" row-major; per cell, right neighbour then down.
//   - RandomSparse: vertices 0..n-1; one Bernoulli(p) trial per pair {i,j},
//     i<j, in ascending order.
//
// Weights are drawn from cfg.weightFn in emission order.

package builder

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wugraph/core"
)

// CenterVertexID is the hub key used by Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes per constructor.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinSparseNodes   = 1
)

func tooFew(method string, n, minimum int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, n, minimum)
}

// Path builds the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if n < MinPathNodes {
			return tooFew("Path", n, MinPathNodes)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, i-1, i)
		}

		return nil
	}
}

// Cycle builds the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if n < MinCycleNodes {
			return tooFew("Cycle", n, MinCycleNodes)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, i-1, i)
		}
		link(g, cfg, n-1, 0)

		return nil
	}
}

// Star builds a star with hub CenterVertexID and n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if n < MinStarNodes {
			return tooFew("Star", n, MinStarNodes)
		}
		g.AddVertex(CenterVertexID)
		addVertices(g, cfg, n-1)
		for i := 0; i < n-1; i++ {
			g.AddEdge(CenterVertexID, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Wheel builds W_n: a cycle over n-1 ring vertices plus a hub joined to
// each of them (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if n < MinWheelNodes {
			return tooFew("Wheel", n, MinWheelNodes)
		}
		g.AddVertex(CenterVertexID)
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			g.AddEdge(CenterVertexID, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1) without self-edges.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if n < MinCompleteNodes {
			return tooFew("Complete", n, MinCompleteNodes)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, i, j)
			}
		}

		return nil
	}
}

// GridID is the key of cell (r, c) in a Grid: "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid builds a rows×cols 4-neighbourhood lattice keyed by GridID. The ID
// scheme option does not apply.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "Grid: rows=%d cols=%d < min=%d", rows, cols, MinGridDim)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.AddEdge(GridID(r, c), GridID(r, c+1), cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					g.AddEdge(GridID(r, c), GridID(r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi G(n, p) graph: each unordered pair
// {i,j}, i<j, becomes an edge independently with probability p. An RNG is
// required unless p is exactly 0 or 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg config) error {
		if n < MinSparseNodes {
			return tooFew("RandomSparse", n, MinSparseNodes)
		}
		// !(p >= 0 && p <= 1) also rejects NaN.
		if !(p >= 0 && p <= 1) {
			return errors.Wrapf(ErrInvalidProbability, "RandomSparse: p=%g not in [0,1]", p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return errors.Wrap(ErrNeedRandSource, "RandomSparse")
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					link(g, cfg, i, j)
				}
			}
		}

		return nil
	}
}
