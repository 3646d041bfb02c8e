package chainmap

// Equal reports whether two maps contain exactly the same key/value
// pairs. Bucket counts and hash functions are irrelevant: two maps that
// grew differently but hold equal entries are equal.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc is like Equal but compares values with eq, allowing maps
// with non-comparable or differently typed values to be compared.
func EqualFunc[K comparable, V1, V2 any](
	a *Map[K, V1],
	b *Map[K, V2],
	eq func(V1, V2) bool,
) bool {
	if a.Size() != b.Size() {
		return false
	}
	for k, v1 := range a.All() {
		v2, ok := b.Load(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	return true
}
