// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...) creates g, resolves
//     the config once, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs, including vertex and edge creation order.
//   - Constructors validate before mutating; on error the graph may hold the
//     output of earlier constructors and BuildGraph returns nil.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/wugraph/core"
)

// Constructor applies a deterministic mutation to g using cfg.
type Constructor func(g *core.Graph[string], cfg config) error

// BuildGraph creates a core.Graph[string] with gopts, resolves bopts, and
// applies every constructor in order. The first constructor error is
// returned wrapped with "BuildGraph".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.Option, bopts []Option, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, errors.WithMessage(err, "BuildGraph")
	}

	return g, nil
}

// Apply runs cons against an existing graph with the options bopts.
// Vertices already present are reused; existing edges get their weight
// overwritten when a constructor emits the same pair.
func Apply(g *core.Graph[string], bopts []Option, cons ...Constructor) error {
	cfg := newConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return errors.Wrapf(ErrNilConstructor, "constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices inserts idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph[string], cfg config, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// link adds the edge {idFn(i), idFn(j)} with the next generated weight.
func link(g *core.Graph[string], cfg config, i, j int) {
	g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
}
