// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand/v2"
)

// DefaultEdgeWeight is emitted when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces one edge weight from the (possibly nil) RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns w. Any int64, including negatives, is a
// valid weight.
func ConstantWeightFn(w int64) WeightFn {
	return func(_ *rand.Rand) int64 { return w }
}

// UniformWeightFn samples uniformly from [lo, hi]. With a nil RNG it falls
// back to lo. Panics if hi < lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		if span := hi - lo + 1; span > 0 {
			return lo + rng.Int64N(span)
		}
		// span overflowed: the interval covers more than half of int64.
		for {
			if w := int64(rng.Uint64()); w >= lo && w <= hi {
				return w
			}
		}
	}
}

// WithConstantWeight selects ConstantWeightFn(w).
func WithConstantWeight(w int64) Option { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight selects UniformWeightFn(lo, hi).
func WithUniformWeight(lo, hi int64) Option { return WithWeightFn(UniformWeightFn(lo, hi)) }
