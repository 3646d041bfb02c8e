// Package chainmap implements a generic associative container backed by
// bucketed open hashing with separate chaining.
//
// A Map owns a slice of buckets, each bucket a slice chain of key/value
// entries. Lookup, insertion and deletion are amortized O(1); the table
// doubles its bucket count whenever the load factor (entries per bucket)
// exceeds 0.5 before an insert, relocating only the entries whose bucket
// index changes.
//
// Traversal is forward-only and exposed two ways: range-over-func
// iterators (All, Keys, Values, Range) and an explicit cursor pair
// (Iter, ReadIter) that shares a single traversal core and skips empty
// buckets transparently.
//
// Map is not safe for concurrent use. Distinct Map instances are
// independent and may be used from different goroutines without
// synchronization.
package chainmap
