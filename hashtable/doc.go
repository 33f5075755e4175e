// SPDX-License-Identifier: MIT

// Package hashtable provides Table, a generic chained hash table whose key
// equality and hashing are supplied by the caller as a Hasher capability
// instead of being tied to Go's built-in == operator.
//
// Why not map[K]V?
//
//   - Keys need not be comparable: BytesHasher keys a table by []byte.
//   - Keys may define their own notion of equality, e.g. an unordered pair
//     where (u,v) and (v,u) must hash and compare equal.
//   - Bucket count, load factor and growth are observable through Stats,
//     which the metrics package exports.
//
// Layout:
//
//	buckets[hash(k) mod len(buckets)] = []entry{hash, key, value}
//
// The bucket count is always prime. When Len()/Buckets() exceeds the maximum
// load factor (default 1.0) the table grows to the next prime above twice the
// current bucket count and redistributes entries using their cached hashes,
// so Insert, Find and Remove run in O(1) amortized time.
//
// Hashers:
//
//	NewComparableHasher[K]()   // hash/maphash over any comparable K, == equality
//	StringHasher{}             // xxhash over string keys
//	BytesHasher{}              // xxhash over []byte keys, bytes.Equal equality
//	HasherFuncs[K]{...}        // adapt two plain functions
//
// Errors:
//
//	ErrInvalidOption - a construction option was out of range.
//
// A Table is not safe for concurrent mutation.
package hashtable
