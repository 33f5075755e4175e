// SPDX-License-Identifier: MIT
// File: table.go
// Role: Table construction, mutation, lookup, enumeration and growth.
// Invariants:
//   - len(buckets) is prime and >= 2.
//   - A key occurs in at most one entry across all chains.
//   - entry.hash == hasher.Hash(entry.key) for every stored entry.
//   - length == total number of entries in all chains.

package hashtable

import (
	"log/slog"
	"math"
)

// entry is one association in a bucket chain. The hash is cached so growth
// never calls back into the Hasher.
type entry[K, V any] struct {
	hash  uint64
	key   K
	value V
}

// Table is a chained hash table from K to V.
type Table[K, V any] struct {
	hasher  Hasher[K]
	buckets [][]entry[K, V]
	length  int
	maxLoad float64
	resizes int

	// initial is the bucket count Clear returns to.
	initial int
	logger  *slog.Logger
}

// Stats is a point-in-time description of a Table's shape.
type Stats struct {
	Len          int     // stored entries
	Buckets      int     // bucket count
	LoadFactor   float64 // Len / Buckets
	LongestChain int     // entries in the fullest bucket
	Resizes      int     // growth events since construction or the last Clear
}

// New returns an empty Table using h for hashing and equality.
//
// Errors:
//   - ErrInvalidOption (wrapped) when an option is out of range.
//
// Complexity: O(B) for B initial buckets.
func New[K, V any](h Hasher[K], opts ...Option) (*Table[K, V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	n := cfg.initialBuckets()

	return &Table[K, V]{
		hasher:  h,
		buckets: make([][]entry[K, V], n),
		maxLoad: cfg.maxLoad,
		initial: n,
		logger:  cfg.logger,
	}, nil
}

// MustNew is like New but panics if an option is invalid.
func MustNew[K, V any](h Hasher[K], opts ...Option) *Table[K, V] {
	t, err := New[K, V](h, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of stored entries. O(1).
func (t *Table[K, V]) Len() int { return t.length }

// Buckets returns the current bucket count. O(1).
func (t *Table[K, V]) Buckets() int { return len(t.buckets) }

// LoadFactor returns Len()/Buckets(). O(1).
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.length) / float64(len(t.buckets))
}

// Insert associates k with v. If k is already present its value is replaced
// in place and the previous value is returned with replaced == true; no second
// entry is ever linked for the same key.
//
// Complexity: O(1) amortized.
func (t *Table[K, V]) Insert(k K, v V) (prev V, replaced bool) {
	h := t.hasher.Hash(k)
	b := t.bucketOf(h)
	chain := t.buckets[b]
	for i := range chain {
		if chain[i].hash == h && t.hasher.Equal(chain[i].key, k) {
			prev = chain[i].value
			chain[i].value = v

			return prev, true
		}
	}

	t.buckets[b] = append(chain, entry[K, V]{hash: h, key: k, value: v})
	t.length++
	if t.LoadFactor() > t.maxLoad {
		t.grow()
	}

	return prev, false
}

// Find returns the value associated with k, or (zero, false).
//
// Complexity: O(1) amortized.
func (t *Table[K, V]) Find(k K) (V, bool) {
	if e := t.lookup(k); e != nil {
		return e.value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether k is present. O(1) amortized.
func (t *Table[K, V]) Contains(k K) bool { return t.lookup(k) != nil }

// Remove deletes the association for k and returns the removed value.
// Removing an absent key is a no-op returning (zero, false).
//
// Complexity: O(1) amortized.
func (t *Table[K, V]) Remove(k K) (V, bool) {
	var zero V
	h := t.hasher.Hash(k)
	b := t.bucketOf(h)
	chain := t.buckets[b]
	for i := range chain {
		if chain[i].hash != h || !t.hasher.Equal(chain[i].key, k) {
			continue
		}
		removed := chain[i].value
		// Chain order carries no meaning: swap the last entry into the hole.
		last := len(chain) - 1
		chain[i] = chain[last]
		chain[last] = entry[K, V]{} // release references for the GC
		if last == 0 {
			t.buckets[b] = nil
		} else {
			t.buckets[b] = chain[:last]
		}
		t.length--

		return removed, true
	}

	return zero, false
}

// Range calls fn for every entry in unspecified order until fn returns false.
// fn must not mutate the table.
//
// Complexity: O(B + N).
func (t *Table[K, V]) Range(fn func(k K, v V) bool) {
	for _, chain := range t.buckets {
		for i := range chain {
			if !fn(chain[i].key, chain[i].value) {
				return
			}
		}
	}
}

// Clear removes every entry and shrinks the table back to its initial
// bucket count.
func (t *Table[K, V]) Clear() {
	t.buckets = make([][]entry[K, V], t.initial)
	t.length = 0
	t.resizes = 0
}

// Stats returns the table's current shape. O(B) for the chain scan.
func (t *Table[K, V]) Stats() Stats {
	longest := 0
	for _, chain := range t.buckets {
		longest = max(longest, len(chain))
	}

	return Stats{
		Len:          t.length,
		Buckets:      len(t.buckets),
		LoadFactor:   t.LoadFactor(),
		LongestChain: longest,
		Resizes:      t.resizes,
	}
}

func (t *Table[K, V]) bucketOf(h uint64) int {
	return int(h % uint64(len(t.buckets)))
}

func (t *Table[K, V]) lookup(k K) *entry[K, V] {
	h := t.hasher.Hash(k)
	chain := t.buckets[t.bucketOf(h)]
	for i := range chain {
		if chain[i].hash == h && t.hasher.Equal(chain[i].key, k) {
			return &chain[i]
		}
	}

	return nil
}

// grow rehashes into the next prime above twice the current bucket count.
// When that would overflow int the table stays as is and chains lengthen.
func (t *Table[K, V]) grow() {
	from := len(t.buckets)
	if from > (math.MaxInt-1)/2 {
		return
	}
	to := nextPrime(2*from + 1)

	next := make([][]entry[K, V], to)
	for _, chain := range t.buckets {
		for _, e := range chain {
			b := int(e.hash % uint64(to))
			next[b] = append(next[b], e)
		}
	}
	t.buckets = next
	t.resizes++

	t.logger.Debug("hashtable grown",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("entries", t.length),
	)
}
