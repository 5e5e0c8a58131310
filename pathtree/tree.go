package pathtree

import "io"

// Tree associates values with paths of keys. A lookup returns the value of the
// shortest inserted prefix of the query path (see the package doc).
//
// A Tree is not safe for concurrent use: callers mixing Insert with other calls
// from several goroutines must guard the whole tree, e.g. with a sync.RWMutex.
type Tree[K comparable, V any] struct {
	root     node[K, V]
	size     int
	newIndex func() index[K, V]
	// capacity presizes the child maps, ignored by the bitmap index
	capacity int
}

// New creates an empty tree.
func New[K comparable, V any](opts ...Option[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{}
	t.newIndex = func() index[K, V] { return newMapIndex[K, V](t.capacity) }

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NewBytes creates an empty tree of byte paths where every node keeps its
// children in a 256-bit bitmap index.
func NewBytes[V any](opts ...Option[byte, V]) *Tree[byte, V] {
	return New[byte, V](append([]Option[byte, V]{WithBitmapIndex[V]()}, opts...)...)
}

// Len returns the number of paths holding a value.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Empty reports whether no path holds a value.
func (t *Tree[K, V]) Empty() bool {
	return t.size == 0
}

// Insert associates the value with the path, replacing a previous value of the
// same path. An empty path sets the value of the root.
func (t *Tree[K, V]) Insert(path []K, val V) {
	if t.root.insert(path, val, t.newIndex) {
		t.size++
	}
}

// Find returns the value of the first node holding one on the way from the
// root along the path. A value stored at a shorter prefix shadows the values
// stored deeper in the same branch.
func (t *Tree[K, V]) Find(path []K) (val V, ok bool) {
	if n := t.root.find(path); n != nil {
		val, ok = n.value, true
	}

	return
}

// Has reports whether Find would return a value for the path.
func (t *Tree[K, V]) Has(path []K) bool {
	return t.root.find(path) != nil
}

// DebugDump writes an indented rendering of the nodes, their depths and values.
func (t *Tree[K, V]) DebugDump(w io.Writer) {
	t.root.dump(w, "T:", "")
}
