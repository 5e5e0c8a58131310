// Package pathtree defines a generic tree mapping paths (sequences of keys) to
// values with a first-match lookup.
//
// Every node sits at a depth equal to the number of keys consumed from the root
// and uses the key at that depth to pick a child. Insert walks down the path,
// creating the missing nodes, and stores the value at the node terminating the
// path. Find walks down the same way but stops at the first node holding a
// value, so a shorter prefix acts as a fallback for everything beneath it:
//
//	Insert([A B], v1)
//	Insert([A C], v2)
//
//	        [root]
//	          |
//	         [A] ----------------> no value: Find([A]) is absent
//	        +   +
//	        |   |
//	      [B]   [C]
//	      v1    v2 --------------> Find([A C]) == v2
//
//	Insert([A], v0)  -> Find([A]), Find([A B]) and Find([A C]) all return v0.
//
// The deeper values stay in the tree after being shadowed, they are just never
// reached by Find. There is no deletion.
//
// Children of a node are kept in a map by default. Trees of byte paths may use
// a 256-bit bitmap index instead (see NewBytes and WithBitmapIndex).
package pathtree
