package pathtree

import (
	"fmt"
	"io"
)

type node[K comparable, V any] struct {
	value    V
	hasValue bool
	// children is nil until the first child is added
	children index[K, V]
	// depth is the number of path keys consumed to reach the node
	depth int
}

// insert stores the value at the node terminating the path, creating the
// missing nodes on the way. Returns true if the terminal node had no value.
func (n *node[K, V]) insert(path []K, val V, newIndex func() index[K, V]) bool {
	if n.depth >= len(path) {
		added := !n.hasValue
		n.value, n.hasValue = val, true

		return added
	}

	key := path[n.depth]

	if n.children == nil {
		n.children = newIndex()
	}

	child := n.children.get(key)
	if child == nil {
		child = &node[K, V]{depth: n.depth + 1}
		n.children.put(key, child)
	}

	return child.insert(path, val, newIndex)
}

// find returns the first node holding a value on the way along the path,
// or nil if there is none.
func (n *node[K, V]) find(path []K) *node[K, V] {
	if n.hasValue {
		return n
	}

	if n.depth >= len(path) || n.children == nil {
		return nil
	}

	child := n.children.get(path[n.depth])
	if child == nil {
		return nil
	}

	return child.find(path)
}

func (n *node[K, V]) dump(w io.Writer, tag, indent string) {
	if n.hasValue {
		fmt.Fprintf(w, "%s%s depth=%d val=%v\n", indent, tag, n.depth, n.value)
	} else {
		fmt.Fprintf(w, "%s%s depth=%d\n", indent, tag, n.depth)
	}

	if n.children == nil {
		return
	}

	n.children.each(func(key K, child *node[K, V]) {
		child.dump(w, fmt.Sprint(key), indent+"  ")
	})
}
