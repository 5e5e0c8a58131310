package pathtree

// Option configures a Tree created by New or NewBytes.
type Option[K comparable, V any] func(t *Tree[K, V])

// WithCapacity presizes the child map of every new node. It has no effect on
// trees using the bitmap index.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *Tree[K, V]) {
		if capacity > 0 {
			t.capacity = capacity
		}
	}
}

// WithBitmapIndex keeps the children of every node in a 256-bit bitmap index
// instead of a map.
func WithBitmapIndex[V any]() Option[byte, V] {
	return func(t *Tree[byte, V]) {
		t.newIndex = newBitmapIndex[V]
	}
}
