package chainmap

import (
	"hash/maphash"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/chainkv/chainmap/internal/opt"
)

const (
	// maxLoadFactor is the entries-per-bucket ratio above which the
	// table doubles its bucket count. The check runs before an insert,
	// on the pre-insert size, so the post-insert ratio may exceed the
	// threshold by at most one entry's worth.
	maxLoadFactor = 0.5

	// minBucketLen is the number of buckets in a freshly initialized
	// table.
	minBucketLen = 1

	// maxChainCap caps the capacity hint used for fresh chains.
	maxChainCap = 8
)

// HashFunc hashes a key to a 64-bit value. A hash function must be
// deterministic for the lifetime of the map it serves, and equal keys
// must hash equal. Uniform distribution across all 64 bits keeps chains
// short.
type HashFunc[K comparable] func(key K) uint64

// defaultHasher returns a hasher built on hash/maphash with a fresh
// random seed, so hash values differ between map instances and runs.
func defaultHasher[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// StringHasher hashes string keys with xxHash. It is a drop-in strategy
// for WithKeyHasher when stable, seed-free hashing of string keys is
// wanted:
//
//	m := chainmap.New[string, int](chainmap.WithKeyHasher(chainmap.StringHasher))
func StringHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// calcBucketLen computes the bucket count for a table expected to hold
// capacity entries without growing: the next power of 2 at or above
// capacity/maxLoadFactor.
func calcBucketLen(capacity int) int {
	if capacity <= 0 {
		return minBucketLen
	}
	return nextPowOf2(int(float64(capacity) / maxLoadFactor))
}

// nextPowOf2 calculates the smallest power of 2 that is greater than or
// equal to n. Compatible with both 32-bit and 64-bit systems.
func nextPowOf2(n int) int {
	if n <= 0 {
		return 1
	}
	v := n - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	if intSize == 64 {
		v |= v >> 32
	}
	return v + 1
}

const intSize = 32 << (^uint(0) >> 63) // 32 or 64

// chainCap is the capacity hint for a fresh chain: as many entries as
// fit in one cache line, clamped to [1, maxChainCap].
func chainCap[K comparable, V any]() int {
	sz := unsafe.Sizeof(Entry[K, V]{})
	if sz == 0 {
		return 1
	}
	return min(maxChainCap, max(1, int(opt.CacheLineSize/sz)))
}
