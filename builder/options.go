// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// options.go - functional options resolved into an immutable config.
//
// Contract:
//   - Options apply in order; later ones win.
//   - Option constructors panic on nil functions (programmer error);
//     constructors themselves never panic and return sentinel errors.
//   - Without WithSeed/WithRand the config carries no RNG and only the
//     deterministic constructors (and RandomSparse with p in {0,1}) succeed.

package builder

import "math/rand/v2"

// config aggregates every knob used by constructors. It is passed by value.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes constructor behaviour.
type Option func(*config)

// newConfig applies opts over the deterministic defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex key generator idx -> key. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithRand supplies the RNG used by stochastic constructors and weight
// functions. Panics on nil; prefer WithSeed for reproducible fixtures.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed installs a PCG generator seeded with seed. Equal seeds and equal
// constructor order give identical graphs.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}
