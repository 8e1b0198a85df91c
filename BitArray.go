package Go_Utils

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all cleared.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a growable bitmap. The zero value is an empty array.
type BitArray struct {
	bits []uint
}

// Len in bits. Always a multiple of bits.UintSize.
func (u *BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

// Get bit i. Bits beyond Len read as cleared.
func (u *BitArray) Get(i int) bool {
	if w := i / bits.UintSize; w < len(u.bits) {
		return (u.bits[w]>>(i%bits.UintSize))&1 == 1
	}
	return false
}

// Set bit i, growing the array if needed.
func (u *BitArray) Set(i int) {
	u.Grow(i + 1)
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

// Clr bit i. Clearing beyond Len is a no-op.
func (u *BitArray) Clr(i int) {
	if w := i / bits.UintSize; w < len(u.bits) {
		u.bits[w] &^= 1 << (i % bits.UintSize)
	}
}

// Grow the array so that it holds at least size bits. Existing bits keep their positions.
func (u *BitArray) Grow(size int) {
	if n := (size + bits.UintSize - 1) / bits.UintSize; n > len(u.bits) {
		nb := make([]uint, max(n, len(u.bits)<<1))
		copy(nb, u.bits)
		u.bits = nb
	}
}

// Count of set bits.
func (u *BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// First set bit, or -1 if none is set.
func (u *BitArray) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}
