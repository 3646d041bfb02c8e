package chainmap

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrNotFound is reported by At when the key is absent. It is the only
// failure in the package; every other "key not present" situation is a
// normal return value.
var ErrNotFound = errors.New("key not found")

// Map is a hash map built on bucketed separate chaining.
//
// Core behavior:
//   - Amortized O(1) Insert, Load, Delete.
//   - Doubling growth when the load factor exceeds 0.5, checked before
//     each insert; growth relocates only entries whose bucket changes.
//   - Insert never overwrites: inserting a present key keeps the stored
//     value and reports false.
//   - Zero-value ready: var m Map[string, int] is usable directly.
//
// Map is not safe for concurrent use; see the package documentation.
type Map[K comparable, V any] struct {
	buckets []bucket[K, V]
	keyHash HashFunc[K]
	size    int
}

// bucket is a chain of entries whose keys hash to the same index modulo
// the current bucket count. In-chain order is append order and carries
// no guarantee; it may change across rehashes.
type bucket[K comparable, V any] []Entry[K, V]

// New creates an empty Map with a single bucket, or with the bucket
// count implied by WithCapacity.
//
// Example:
//
//	m := chainmap.New[string, int](chainmap.WithCapacity(1024))
//	m.Insert("a", 1)
//	v, ok := m.Load("a")
func New[K comparable, V any](options ...func(*MapConfig)) *Map[K, V] {
	var cfg MapConfig
	for _, o := range options {
		o(&cfg)
	}
	m := &Map[K, V]{}
	m.init(&cfg)
	return m
}

// Of builds a Map from a literal list of entries. Entries are inserted
// in order, so for duplicate keys the first occurrence wins. The table
// starts with twice as many buckets as entries.
func Of[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		buckets: make([]bucket[K, V], max(minBucketLen, 2*len(entries))),
		keyHash: defaultHasher[K](),
	}
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m
}

// Collect builds a Map from an iterator of key/value pairs, inserting
// in order; for duplicate keys the first occurrence wins.
func Collect[K comparable, V any](
	seq iter.Seq2[K, V],
	options ...func(*MapConfig),
) *Map[K, V] {
	m := New[K, V](options...)
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

func (m *Map[K, V]) init(cfg *MapConfig) {
	m.keyHash = defaultHasher[K]()
	if cfg.keyHash != nil {
		h, ok := cfg.keyHash.(HashFunc[K])
		if !ok {
			panic("chainmap: WithKeyHasher instantiated with a different key type than the map")
		}
		m.keyHash = h
	}
	m.buckets = make([]bucket[K, V], calcBucketLen(cfg.capacity))
}

// lazyInit installs the default state on first mutating use of a
// zero-value Map.
func (m *Map[K, V]) lazyInit() {
	if m.buckets == nil {
		m.init(&MapConfig{})
	}
}

// indexOf maps a key to its bucket index under the current bucket
// count.
func (m *Map[K, V]) indexOf(key K) int {
	return int(m.keyHash(key) % uint64(len(m.buckets)))
}

// loadFactor is the live entry count divided by the bucket count.
// The division is real-valued; integer division would round the ratio
// to 0 or 1 and break the growth trigger.
func (m *Map[K, V]) loadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// rehash doubles the bucket count and repartitions entries in place.
// Under modulo indexing a doubled count sends each entry either to its
// old bucket or to old+oldLen, so a single pass over the original
// buckets suffices: unchanged entries are compacted where they are,
// moved entries append to a fresh bucket in the new half. Cost is
// O(size); the 0.5 trigger guarantees at most one doubling per insert.
func (m *Map[K, V]) rehash() {
	oldLen := len(m.buckets)
	m.buckets = append(m.buckets, make([]bucket[K, V], oldLen)...)
	for i := 0; i < oldLen; i++ {
		chain := m.buckets[i]
		kept := chain[:0]
		for _, e := range chain {
			if idx := m.indexOf(e.Key); idx != i {
				m.buckets[idx] = appendEntry(m.buckets[idx], e)
			} else {
				kept = append(kept, e)
			}
		}
		clear(chain[len(kept):]) // drop moved entries from the old chain
		m.buckets[i] = kept
	}
}

func appendEntry[K comparable, V any](
	chain bucket[K, V],
	e Entry[K, V],
) bucket[K, V] {
	if chain == nil {
		chain = make(bucket[K, V], 0, chainCap[K, V]())
	}
	return append(chain, e)
}

// lookup returns the position of key, if present.
func (m *Map[K, V]) lookup(key K) (bucketIdx, slot int, ok bool) {
	if len(m.buckets) == 0 {
		return 0, 0, false
	}
	bucketIdx = m.indexOf(key)
	chain := m.buckets[bucketIdx]
	for i := range chain {
		if chain[i].Key == key {
			return bucketIdx, i, true
		}
	}
	return 0, 0, false
}

// Insert adds a key/value pair and returns a cursor to the entry along
// with whether an insertion took place.
//
// If the key is already present, the existing entry is left untouched —
// value is discarded, nothing is overwritten — and Insert reports
// false. Use Find plus Iter.SetValue (or Ref) to replace a stored
// value.
//
// The growth check runs before the bucket is chosen, so an Insert that
// triggers a rehash invalidates previously obtained cursors and Ref
// pointers.
func (m *Map[K, V]) Insert(key K, value V) (Iter[K, V], bool) {
	m.lazyInit()
	if m.loadFactor() > maxLoadFactor {
		m.rehash()
	}
	idx := m.indexOf(key)
	chain := m.buckets[idx]
	for i := range chain {
		if chain[i].Key == key {
			return Iter[K, V]{newCursor(m, idx, i)}, false
		}
	}
	m.buckets[idx] = appendEntry(chain, Entry[K, V]{Key: key, Value: value})
	m.size++
	return Iter[K, V]{newCursor(m, idx, len(m.buckets[idx])-1)}, true
}

// Load retrieves the value for a key. It never mutates the map.
func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	if b, s, found := m.lookup(key); found {
		return m.buckets[b][s].Value, true
	}
	return
}

// At is the required-lookup accessor: it returns the value for key, or
// an error wrapping ErrNotFound if the key is absent. It never mutates
// and never grows the table.
func (m *Map[K, V]) At(key K) (V, error) {
	if v, ok := m.Load(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("chainmap: at %v: %w", key, ErrNotFound)
}

// Ref returns a pointer to the value stored for key, inserting a
// zero-value entry first if the key is absent. It is the indexed-access
// form: m.Ref(k) behaves like &map[k] with insert-if-missing semantics,
// including the pre-insert growth check.
//
// The pointer stays valid until the next operation that rehashes the
// table, deletes the entry, or appends to the entry's chain.
func (m *Map[K, V]) Ref(key K) *V {
	var zero V
	it, _ := m.Insert(key, zero)
	return &m.buckets[it.bucketIdx][it.slot].Value
}

// Delete removes the entry for key, if any. Deleting an absent key is a
// no-op, not an error. Delete never triggers growth.
func (m *Map[K, V]) Delete(key K) {
	m.LoadAndDelete(key)
}

// LoadAndDelete deletes the entry for key, returning the previous value
// if the key was present.
func (m *Map[K, V]) LoadAndDelete(key K) (previous V, loaded bool) {
	b, s, ok := m.lookup(key)
	if !ok {
		return
	}
	previous = m.buckets[b][s].Value
	m.buckets[b] = slices.Delete(m.buckets[b], s, s+1)
	m.size--
	return previous, true
}

// Clear removes all entries. The bucket count is retained, so a cleared
// map refills without early rehashes.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		clear(m.buckets[i])
		m.buckets[i] = m.buckets[i][:0]
	}
	m.size = 0
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return m.size
}

// IsZero checks if the map is empty.
func (m *Map[K, V]) IsZero() bool {
	return m.size == 0
}

// Hasher returns the hash function the map was configured with.
func (m *Map[K, V]) Hasher() HashFunc[K] {
	m.lazyInit()
	return m.keyHash
}

// Swap exchanges the full contents of the two maps — buckets, hash
// function and size — in O(1). It is the primitive behind Assign and is
// also useful on its own.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.buckets, other.buckets = other.buckets, m.buckets
	m.keyHash, other.keyHash = other.keyHash, m.keyHash
	m.size, other.size = other.size, m.size
}

// Clone returns a deep copy of the map: all chains are copied, the hash
// function is shared. Mutating either map afterwards leaves the other
// untouched.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{
		keyHash: m.keyHash,
		size:    m.size,
	}
	if m.buckets != nil {
		out.buckets = make([]bucket[K, V], len(m.buckets))
		for i, chain := range m.buckets {
			if len(chain) != 0 {
				out.buckets[i] = slices.Clone(chain)
			}
		}
	}
	return out
}

// Assign replaces the contents of m with a copy of src, using the
// copy-and-swap idiom: the clone is built first, then exchanged with m
// in O(1). src is left untouched; assigning a map to itself is safe.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	tmp := src.Clone()
	m.Swap(tmp)
}
