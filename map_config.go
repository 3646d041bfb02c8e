package chainmap

// MapConfig defines configurable options for Map initialization.
type MapConfig struct {
	// keyHash holds a HashFunc[K] supplied via WithKeyHasher. It is
	// stored untyped so that MapConfig and the option functions stay
	// non-generic; New asserts it back to the map's key type.
	keyHash any

	// capacity is an estimate of the expected number of entries. The
	// table is pre-sized so that capacity entries fit without growing.
	// If zero or negative, the table starts with a single bucket.
	capacity int
}

// WithCapacity configures a new Map instance with enough buckets to
// hold capacity entries under the load-factor threshold, avoiding early
// rehashes while the map fills. If capacity is zero or negative, the
// value is ignored.
func WithCapacity(capacity int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.capacity = capacity
	}
}

// WithKeyHasher sets a custom key hashing function for the map.
// Pass nil to keep the default built-in hasher.
//
// The option must be instantiated with the same key type as the map it
// configures; New panics on a mismatch.
//
// Usage:
//
//	m := chainmap.New[string, int](chainmap.WithKeyHasher(chainmap.StringHasher))
func WithKeyHasher[K comparable](keyHash HashFunc[K]) func(*MapConfig) {
	return func(c *MapConfig) {
		if keyHash != nil {
			c.keyHash = keyHash
		}
	}
}
