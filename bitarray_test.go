package Go_Utils

import (
	"math/bits"
	"testing"
)

func TestBitArray_SetClr(t *testing.T) {
	var b BitArray
	if b.Len() != 0 || b.First() != -1 {
		t.Errorf("zero value has len %d, first %d", b.Len(), b.First())
	}
	for _, i := range []int{0, 3, 63, 64, 200} {
		b.Set(i)
	}
	if b.Len() < 201 {
		t.Errorf("len is %d, want at least 201", b.Len())
	}
	for _, i := range []int{0, 3, 63, 64, 200} {
		if !b.Get(i) {
			t.Errorf("bit %d not set", i)
		}
	}
	if b.Get(1) || b.Get(1000) {
		t.Error("unset bit reads as set")
	}
	if b.Count() != 5 {
		t.Errorf("count is %d, want 5", b.Count())
	}
	b.Clr(0)
	b.Clr(5000)
	if b.First() != 3 {
		t.Errorf("first is %d, want 3", b.First())
	}
}

func TestBitArray_GrowKeepsBits(t *testing.T) {
	b := NewBitArray(10)
	if b.Len() != bits.UintSize {
		t.Errorf("len is %d, want %d", b.Len(), bits.UintSize)
	}
	b.Set(7)
	b.Grow(10 * bits.UintSize)
	if !b.Get(7) || b.Count() != 1 {
		t.Error("grow lost a bit")
	}
}
