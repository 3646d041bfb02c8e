package chainmap

// Entry is a key/value pair stored in a Map.
//
// The key is fixed once the entry is inserted; the value may be changed
// in place through Iter.SetValue, Iter.Ref or Map.Ref.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// E is shorthand for constructing an Entry, mainly for use with Of:
//
//	m := chainmap.Of(chainmap.E("a", 1), chainmap.E("b", 2))
func E[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}
