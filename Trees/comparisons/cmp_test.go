package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ordtrees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Compares Add and Contains of the trees with ordered containers from
// https://github.com/google/btree, https://github.com/petar/GoLLRB and
// https://github.com/emirpasic/gods, and membership with the hash maps
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap.
// The trees measure heights on every mutation, so keep bAddN small.

const (
	bAddN     = 1 << 10
	bValRange = bAddN * 4
)

var _R = *rand.New(rand.NewSource(0))

func keys(b *testing.B) []int {
	b.Helper()
	ks := make([]int, bAddN)
	for i := range ks {
		ks[i] = _R.Intn(bValRange)
	}
	return ks
}

var sideEff bool

func BenchmarkAdd_Linked(b *testing.B) {
	ks := keys(b)
	b.ResetTimer()
	for range b.N {
		t := Trees.NewLinked[int]()
		for _, k := range ks {
			t.Add(k)
		}
	}
}

func BenchmarkAdd_Array(b *testing.B) {
	ks := keys(b)
	b.ResetTimer()
	for range b.N {
		t := Trees.NewArray[int]()
		for _, k := range ks {
			t.Add(k)
		}
	}
}

func BenchmarkAdd_BTree(b *testing.B) {
	ks := keys(b)
	b.ResetTimer()
	for range b.N {
		t := btree.NewOrderedG[int](8)
		for _, k := range ks {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkAdd_LLRB(b *testing.B) {
	ks := keys(b)
	b.ResetTimer()
	for range b.N {
		t := llrb.New()
		for _, k := range ks {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkAdd_RedBlack(b *testing.B) {
	ks := keys(b)
	b.ResetTimer()
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, k := range ks {
			t.Put(k, nil)
		}
	}
}

func benchmarkContains(b *testing.B, has func(int) bool) {
	b.Helper()
	b.ResetTimer()
	for range b.N {
		for i := range bValRange {
			sideEff = has(i)
		}
	}
}

func BenchmarkContains_Linked(b *testing.B) {
	t := Trees.NewLinked[int]()
	for _, k := range keys(b) {
		t.Add(k)
	}
	benchmarkContains(b, func(k int) bool {
		in, _ := t.Contains(k)
		return in
	})
}

func BenchmarkContains_Array(b *testing.B) {
	t := Trees.NewArray[int]()
	for _, k := range keys(b) {
		t.Add(k)
	}
	benchmarkContains(b, func(k int) bool {
		in, _ := t.Contains(k)
		return in
	})
}

func BenchmarkContains_BTree(b *testing.B) {
	t := btree.NewOrderedG[int](8)
	for _, k := range keys(b) {
		t.ReplaceOrInsert(k)
	}
	benchmarkContains(b, t.Has)
}

func BenchmarkContains_LLRB(b *testing.B) {
	t := llrb.New()
	for _, k := range keys(b) {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	benchmarkContains(b, func(k int) bool { return t.Has(llrb.Int(k)) })
}

func BenchmarkContains_HaxMap(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, k := range keys(b) {
		m.Set(k, struct{}{})
	}
	benchmarkContains(b, func(k int) bool {
		_, in := m.Get(k)
		return in
	})
}

func BenchmarkContains_HashMap(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, k := range keys(b) {
		m.Set(k, struct{}{})
	}
	benchmarkContains(b, func(k int) bool {
		_, in := m.Get(k)
		return in
	})
}

// TestSameMembership checks that every container benchmarked above agrees with the trees.
func TestSameMembership(t *testing.T) {
	ks := make([]int, bAddN)
	for i := range ks {
		ks[i] = _R.Intn(bValRange)
	}
	lt, at := Trees.NewLinked[int](), Trees.NewArray[int]()
	bt, lr := btree.NewOrderedG[int](8), llrb.New()
	hx, hm := haxmap.New[int, struct{}](), hashmap.New[int, struct{}]()
	for _, k := range ks {
		lt.Add(k)
		at.Add(k)
		bt.ReplaceOrInsert(k)
		lr.ReplaceOrInsert(llrb.Int(k))
		hx.Set(k, struct{}{})
		hm.Set(k, struct{}{})
	}
	if lt.Count() != bt.Len() || at.Count() != lr.Len() {
		t.Errorf("tree sizes %d, %d, want %d", lt.Count(), at.Count(), bt.Len())
	}
	for i := range bValRange {
		want := bt.Has(i)
		a, _ := lt.Contains(i)
		c, _ := at.Contains(i)
		_, d := hx.Get(i)
		_, e := hm.Get(i)
		if a != want || c != want || lr.Has(llrb.Int(i)) != want || d != want || e != want {
			t.Errorf("containers disagree on %d", i)
		}
	}
}
