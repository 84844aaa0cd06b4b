// Package hashutil provides a default 64-bit hash for tests, benchmarks,
// and example callers of the engine. Hash function selection is out of
// scope for the engine itself: it takes a 64-bit hash as an opaque
// input, so this package exists purely to give callers a real, fast,
// non-cryptographic hash instead of a hand-rolled one.
package hashutil

import "github.com/cespare/xxhash/v2"

// Hash returns the xxhash64 digest of b.
func Hash(b []byte) uint64 { return xxhash.Sum64(b) }

// HashString returns the xxhash64 digest of s without allocating a copy.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }
