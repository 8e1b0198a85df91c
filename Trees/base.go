package Trees

import (
	"iter"
	"math/bits"
	"slices"
)

const (
	// maxSkew between the heights of the root's subtrees before a rebuild.
	maxSkew = 1
	// heightSlack over the minimal height ceil(log2(n+1)) before a rebuild.
	heightSlack = 2
)

// needsRebuild of a tree of n elements whose root has subtrees of heights hl and hr.
func needsRebuild(n, hl, hr int) bool {
	if d := hl - hr; d > maxSkew || d < -maxSkew {
		return true
	}
	return 1+max(hl, hr) > bits.Len(uint(n))+heightSlack
}

// sortedValues collects all elements of seq and sorts them by c.
func sortedValues[T any](n int, seq iter.Seq[T], c Comparator[T]) []T {
	vs := make([]T, 0, n)
	for v := range seq {
		vs = append(vs, v)
	}
	slices.SortFunc(vs, c)
	return vs
}

// spread the sorted values into a tree of minimal height: the middle element goes to p,
// place puts it there and returns the positions of p's left and right children, where
// the lower and upper halves are spread recursively.
// Time: O(n); Space: O(log n)
func spread[T, P any](sorted []T, p P, place func(P, T) (P, P)) {
	if len(sorted) == 0 {
		return
	}
	mid := (len(sorted) - 1) >> 1
	l, r := place(p, sorted[mid])
	spread(sorted[:mid], l, place)
	spread(sorted[mid+1:], r, place)
}
