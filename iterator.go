package chainmap

import "iter"

// cursor is the traversal core shared by Iter and ReadIter. It holds a
// bucket position and a slot position within that bucket's chain; the
// end sentinel is (len(buckets), 0). Construction and every advance
// normalize the position forward past empty buckets, so a live cursor
// always points at an entry.
type cursor[K comparable, V any] struct {
	m         *Map[K, V]
	bucketIdx int
	slot      int
}

func newCursor[K comparable, V any](m *Map[K, V], bucketIdx, slot int) cursor[K, V] {
	c := cursor[K, V]{m: m, bucketIdx: bucketIdx, slot: slot}
	c.normalize()
	return c
}

// normalize advances the cursor to the next live entry, skipping empty
// buckets, or parks it at the end sentinel.
func (c *cursor[K, V]) normalize() {
	for c.bucketIdx < len(c.m.buckets) && c.slot >= len(c.m.buckets[c.bucketIdx]) {
		c.bucketIdx++
		c.slot = 0
	}
	if c.bucketIdx >= len(c.m.buckets) {
		c.bucketIdx = len(c.m.buckets)
		c.slot = 0
	}
}

func (c *cursor[K, V]) valid() bool {
	return c.m != nil && c.bucketIdx < len(c.m.buckets)
}

func (c *cursor[K, V]) next() {
	if !c.valid() {
		return
	}
	c.slot++
	c.normalize()
}

// entry panics with an index error when the cursor is at the end
// sentinel; dereferencing end is a caller bug.
func (c *cursor[K, V]) entry() *Entry[K, V] {
	return &c.m.buckets[c.bucketIdx][c.slot]
}

// equal reports position equality: same map, same bucket, same slot.
// End sentinels of the same map always compare equal.
func (c *cursor[K, V]) equal(o cursor[K, V]) bool {
	return c.m == o.m && c.bucketIdx == o.bucketIdx && c.slot == o.slot
}

// Iter is a forward cursor over a Map with mutable access to the
// referenced entry's value. The zero Iter is invalid.
//
// A cursor is invalidated by a rehash, by deletion of the entry it
// references, and by insertion into the same bucket's chain; inserts
// that do neither preserve it.
type Iter[K comparable, V any] struct {
	cursor[K, V]
}

// Valid reports whether the cursor references a live entry; it is false
// exactly at the end sentinel.
func (it Iter[K, V]) Valid() bool { return it.valid() }

// Next advances to the next entry, crossing bucket boundaries and
// skipping empty buckets. Advancing past the last entry parks the
// cursor at the end sentinel; advancing the end sentinel is a no-op.
func (it *Iter[K, V]) Next() { it.next() }

// Key returns the referenced entry's key.
func (it Iter[K, V]) Key() K { return it.entry().Key }

// Value returns the referenced entry's value.
func (it Iter[K, V]) Value() V { return it.entry().Value }

// Entry returns a copy of the referenced entry.
func (it Iter[K, V]) Entry() Entry[K, V] { return *it.entry() }

// SetValue replaces the referenced entry's value in place.
func (it Iter[K, V]) SetValue(value V) { it.entry().Value = value }

// Ref returns a pointer to the referenced entry's value, valid under
// the same rules as Map.Ref.
func (it Iter[K, V]) Ref() *V { return &it.entry().Value }

// Equal reports whether two cursors reference the same position of the
// same map. End sentinels compare equal to each other.
func (it Iter[K, V]) Equal(other Iter[K, V]) bool {
	return it.equal(other.cursor)
}

// Read converts the cursor to its read-only form at the same position.
func (it Iter[K, V]) Read() ReadIter[K, V] {
	return ReadIter[K, V]{it.cursor}
}

// ReadIter is the read-only instantiation of the same cursor core used
// by Iter: identical traversal, no mutation surface.
type ReadIter[K comparable, V any] struct {
	cursor[K, V]
}

// Valid reports whether the cursor references a live entry.
func (it ReadIter[K, V]) Valid() bool { return it.valid() }

// Next advances to the next entry, skipping empty buckets.
func (it *ReadIter[K, V]) Next() { it.next() }

// Key returns the referenced entry's key.
func (it ReadIter[K, V]) Key() K { return it.entry().Key }

// Value returns the referenced entry's value.
func (it ReadIter[K, V]) Value() V { return it.entry().Value }

// Entry returns a copy of the referenced entry.
func (it ReadIter[K, V]) Entry() Entry[K, V] { return *it.entry() }

// Equal reports whether two cursors reference the same position of the
// same map. End sentinels compare equal to each other.
func (it ReadIter[K, V]) Equal(other ReadIter[K, V]) bool {
	return it.equal(other.cursor)
}

// Begin returns a mutable cursor at the first entry, or the end
// sentinel when the map is empty.
func (m *Map[K, V]) Begin() Iter[K, V] {
	return Iter[K, V]{newCursor(m, 0, 0)}
}

// End returns the end sentinel: the universal "not found" and "stop
// iterating" marker.
func (m *Map[K, V]) End() Iter[K, V] {
	return Iter[K, V]{cursor[K, V]{m: m, bucketIdx: len(m.buckets)}}
}

// Find returns a mutable cursor to the entry for key, or End if the key
// is absent. It never mutates the map.
func (m *Map[K, V]) Find(key K) Iter[K, V] {
	if b, s, ok := m.lookup(key); ok {
		return Iter[K, V]{newCursor(m, b, s)}
	}
	return m.End()
}

// ReadBegin returns a read-only cursor at the first entry.
func (m *Map[K, V]) ReadBegin() ReadIter[K, V] {
	return ReadIter[K, V]{newCursor(m, 0, 0)}
}

// ReadEnd returns the read-only end sentinel.
func (m *Map[K, V]) ReadEnd() ReadIter[K, V] {
	return ReadIter[K, V]{cursor[K, V]{m: m, bucketIdx: len(m.buckets)}}
}

// ReadFind returns a read-only cursor to the entry for key, or ReadEnd
// if the key is absent.
func (m *Map[K, V]) ReadFind(key K) ReadIter[K, V] {
	if b, s, ok := m.lookup(key); ok {
		return ReadIter[K, V]{newCursor(m, b, s)}
	}
	return m.ReadEnd()
}

// Range iterates all entries bucket by bucket, entry by entry.
// Returning false from the callback stops iteration early. The map must
// not be mutated during Range.
func (m *Map[K, V]) Range(yield func(K, V) bool) {
	for _, chain := range m.buckets {
		for i := range chain {
			if !yield(chain[i].Key, chain[i].Value) {
				return
			}
		}
	}
}

// All returns an iterator over all key/value pairs for use with
// range-over-func. It provides the same traversal as Range in iterator
// form.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.Range
}

// Keys returns an iterator over the keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.Range(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// Values returns an iterator over the values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.Range(func(_ K, v V) bool {
			return yield(v)
		})
	}
}
