// SPDX-License-Identifier: MIT
// File: hasher.go
// Role: Hasher capability and the stock implementations.
// Contract:
//   - Equal(a, b) == true MUST imply Hash(a) == Hash(b).
//   - Hash must be deterministic for the lifetime of a Table.

package hashtable

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher defines a hash function and an equivalence relation over K.
type Hasher[K any] interface {
	// Hash returns a 64-bit hash of k.
	Hash(k K) uint64
	// Equal reports whether a and b denote the same key.
	Equal(a, b K) bool
}

// ComparableHasher hashes any comparable K with hash/maphash and compares
// with ==. This matches the semantics of a built-in map[K]V.
//
// The zero value is not usable; construct it with NewComparableHasher.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a fresh random seed.
func NewComparableHasher[K comparable]() *ComparableHasher[K] {
	return &ComparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash implements Hasher.
func (h *ComparableHasher[K]) Hash(k K) uint64 { return maphash.Comparable(h.seed, k) }

// Equal implements Hasher.
func (h *ComparableHasher[K]) Equal(a, b K) bool { return a == b }

// StringHasher hashes strings with xxhash. Unlike ComparableHasher it is
// seedless, so hashes are stable across processes.
type StringHasher struct{}

// Hash implements Hasher.
func (StringHasher) Hash(k string) uint64 { return xxhash.Sum64String(k) }

// Equal implements Hasher.
func (StringHasher) Equal(a, b string) bool { return a == b }

// BytesHasher hashes byte slices by content. A []byte key must not be
// mutated while it is stored in a Table.
type BytesHasher struct{}

// Hash implements Hasher.
func (BytesHasher) Hash(k []byte) uint64 { return xxhash.Sum64(k) }

// Equal implements Hasher.
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// HasherFuncs adapts a pair of functions to the Hasher interface.
// Both fields must be non-nil.
type HasherFuncs[K any] struct {
	HashFunc  func(K) uint64
	EqualFunc func(a, b K) bool
}

// Hash implements Hasher.
func (f HasherFuncs[K]) Hash(k K) uint64 { return f.HashFunc(k) }

// Equal implements Hasher.
func (f HasherFuncs[K]) Equal(a, b K) bool { return f.EqualFunc(a, b) }
