// SPDX-License-Identifier: MIT
// File: options.go
// Role: Sentinel errors, defaults and functional options for New.

package hashtable

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidOption is wrapped by every error New returns for a bad option.
var ErrInvalidOption = errors.New("hashtable: invalid option")

// Defaults.
const (
	// DefaultBuckets is the initial bucket count (prime).
	DefaultBuckets = 17

	// DefaultMaxLoadFactor is the entries/buckets ratio above which the table grows.
	DefaultMaxLoadFactor = 1.0

	// maxLoadFactorCeiling bounds WithMaxLoadFactor; longer chains stop being O(1) in practice.
	maxLoadFactorCeiling = 8.0
)

type config struct {
	buckets  int
	capacity int
	maxLoad  float64
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		buckets: DefaultBuckets,
		maxLoad: DefaultMaxLoadFactor,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// initialBuckets resolves the bucket count after all options were applied,
// so WithCapacity and WithMaxLoadFactor commute.
func (c config) initialBuckets() int {
	if c.capacity == 0 {
		return c.buckets
	}
	want := int(math.Ceil(float64(c.capacity) / c.maxLoad))
	if want <= c.buckets {
		return c.buckets
	}

	return nextPrime(want)
}

// Option configures a Table at construction time.
type Option func(*config) error

// WithInitialBuckets sets the minimum initial bucket count. The value is
// rounded up to the next prime. n must be >= 1.
func WithInitialBuckets(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return errors.Wrapf(ErrInvalidOption, "initial buckets %d", n)
		}
		c.buckets = nextPrime(n)

		return nil
	}
}

// WithCapacity sizes the table so that n entries fit without growing.
// Negative n is treated as 0.
func WithCapacity(n int) Option {
	return func(c *config) error {
		c.capacity = max(n, 0)

		return nil
	}
}

// WithMaxLoadFactor sets the load factor that triggers growth.
// f must lie in (0, 8].
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) error {
		if math.IsNaN(f) || f <= 0 || f > maxLoadFactorCeiling {
			return errors.Wrapf(ErrInvalidOption, "max load factor %v", f)
		}
		c.maxLoad = f

		return nil
	}
}

// WithLogger routes debug logs (growth events) to l. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}

		return nil
	}
}
