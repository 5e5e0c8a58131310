package pathtree

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// bitmapIndex is a child index for byte keys. The bitmap marks which of the
// 256 possible keys are present and children holds only those, in key order.
type bitmapIndex[V any] struct {
	bitmap   [4]uint64 // 256 bits representing 2**8 keys
	children []*node[byte, V]
}

func newBitmapIndex[V any]() index[byte, V] {
	return &bitmapIndex[V]{}
}

// rank returns the position of the key within children and whether it is present.
func (b *bitmapIndex[V]) rank(key byte) (int, bool) {
	var (
		ofs = key >> 6
		idx = key & 0x3F // the lowest 6 bits (2**6 == 64)
		bmp = b.bitmap[ofs]
		cnt = popcount.Count(bmp & (uint64(1)<<idx - 1))
	)

	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(b.bitmap[j])
	}

	return int(cnt), (bmp>>idx)&0x01 != 0
}

func (b *bitmapIndex[V]) get(key byte) *node[byte, V] {
	pos, ok := b.rank(key)
	if !ok {
		return nil
	}

	return b.children[pos]
}

func (b *bitmapIndex[V]) put(key byte, child *node[byte, V]) {
	pos, ok := b.rank(key)
	if ok {
		b.children[pos] = child
		return
	}

	b.bitmap[key>>6] |= uint64(1) << (key & 0x3F)

	b.children = append(b.children, nil)
	copy(b.children[pos+1:], b.children[pos:])
	b.children[pos] = child
}

func (b *bitmapIndex[V]) size() int {
	return len(b.children)
}

func (b *bitmapIndex[V]) each(fn func(key byte, child *node[byte, V])) {
	pos := 0

	for ofs, bmp := range b.bitmap {
		for ; bmp != 0; bmp &= bmp - 1 {
			key := byte(ofs<<6 | bits.TrailingZeros64(bmp))

			fn(key, b.children[pos])
			pos++
		}
	}
}
