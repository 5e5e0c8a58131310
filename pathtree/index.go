package pathtree

import (
	"fmt"
	"sort"
)

// index maps a key to an exclusively owned child node.
type index[K comparable, V any] interface {
	get(key K) *node[K, V]
	put(key K, child *node[K, V])
	size() int
	each(fn func(key K, child *node[K, V]))
}

type mapIndex[K comparable, V any] map[K]*node[K, V]

func newMapIndex[K comparable, V any](capacity int) index[K, V] {
	return make(mapIndex[K, V], capacity)
}

func (m mapIndex[K, V]) get(key K) *node[K, V] {
	return m[key]
}

func (m mapIndex[K, V]) put(key K, child *node[K, V]) {
	m[key] = child
}

func (m mapIndex[K, V]) size() int {
	return len(m)
}

type mapEntry[K comparable, V any] struct {
	key   K
	name  string
	child *node[K, V]
}

// each visits the children ordered by their printed keys.
func (m mapIndex[K, V]) each(fn func(key K, child *node[K, V])) {
	// keys not equal to themselves (NaN) cannot be looked up again
	entries := make([]mapEntry[K, V], 0, len(m))

	for key, child := range m {
		entries = append(entries, mapEntry[K, V]{key, fmt.Sprint(key), child})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	for _, e := range entries {
		fn(e.key, e.child)
	}
}
