// SPDX-License-Identifier: MIT

package builder

import "github.com/pkg/errors"

// Sentinel errors. Constructors wrap them with their name and the offending
// parameters; branch with errors.Is.
var (
	// ErrTooFewVertices: n, rows or cols is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability: probability outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource: a stochastic constructor needs WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrNilConstructor: BuildGraph received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
