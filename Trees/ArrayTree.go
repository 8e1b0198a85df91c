package Trees

import (
	"cmp"
	"iter"
	"math/bits"
	"slices"
	"strings"

	Go_Utils "github.com/g-m-twostay/ordtrees"
	"github.com/g-m-twostay/ordtrees/Queues"
)

// minSlots is the length of a fresh buffer.
const minSlots = 4

// ArrayTree is a binary search tree laid out in a single slice as an implicit heap:
// the root is at index 0 and the children of index i are at 2i+1 and 2i+2.
// Occupied slots are marked in a BitArray; vs[i] of an unoccupied slot is the zero value.
// The slice doubles in length whenever an index past its end has to be written, and
// growth never moves existing slots.
// Balancing follows the same rebuild policy as LinkedTree.
type ArrayTree[T any] struct {
	vs   []T
	used Go_Utils.BitArray
	sz   int
	cmp  Comparator[T]
}

var _ Tree[int] = (*ArrayTree[int])(nil)

// NewArray tree ordered by cmp.Compare.
func NewArray[T cmp.Ordered]() *ArrayTree[T] {
	return NewArrayFunc(orderedCmp[T]())
}

// NewArrayFunc tree ordered by c. Panics if c is nil.
func NewArrayFunc[T any](c Comparator[T]) *ArrayTree[T] {
	if c == nil {
		panic("Trees: nil Comparator")
	}
	u := &ArrayTree[T]{cmp: c}
	u.reset(minSlots)
	return u
}

func (u *ArrayTree[T]) Count() int {
	return u.sz
}

func (u *ArrayTree[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *ArrayTree[T]) Kind() Kind {
	return KindArray
}

func (u *ArrayTree[T]) Comparator() Comparator[T] {
	return u.cmp
}

// Cap is the current length of the slot buffer.
func (u *ArrayTree[T]) Cap() int {
	return len(u.vs)
}

// reset to an empty tree with a new buffer of n slots.
func (u *ArrayTree[T]) reset(n int) {
	u.vs = make([]T, max(n, minSlots))
	u.used = Go_Utils.NewBitArray(len(u.vs))
	u.sz = 0
}

func (u *ArrayTree[T]) has(i int) bool {
	return i < len(u.vs) && u.used.Get(i)
}

// ensure index i is inside the buffer, doubling its length as many times as needed.
func (u *ArrayTree[T]) ensure(i int) {
	if i < len(u.vs) {
		return
	}
	n := len(u.vs)
	for n <= i {
		n <<= 1
	}
	u.vs = append(u.vs, make([]T, n-len(u.vs))...)
	u.used.Grow(n)
}

func (u *ArrayTree[T]) put(i int, v T) {
	u.ensure(i)
	u.vs[i] = v
	u.used.Set(i)
	u.sz++
}

func (u *ArrayTree[T]) drop(i int) {
	u.vs[i] = *new(T)
	u.used.Clr(i)
	u.sz--
}

// seek returns the index holding v, or the empty index where v would be placed.
// Time: O(D); Space: O(1)
func (u *ArrayTree[T]) seek(v T) (int, bool) {
	i := 0
	for u.has(i) {
		if c := u.cmp(v, u.vs[i]); c < 0 {
			i = 2*i + 1
		} else if c > 0 {
			i = 2*i + 2
		} else {
			return i, true
		}
	}
	return i, false
}

// Add [Tree.Add]
// Time: O(D), or O(n) when it rebuilds.
func (u *ArrayTree[T]) Add(v T) error {
	if IsNil(v) {
		return newError(NullElement, "Add")
	}
	i, found := u.seek(v)
	if found {
		return newError(DuplicateValue, "Add")
	}
	u.put(i, v)
	u.balance()
	return nil
}

// Remove [Tree.Remove]
// Emptying an inner slot would cut its descendants off from the root, so the whole
// subtree under it is taken out and its elements are placed again starting from the
// emptied slot, each range's middle element first. That is the order in which adding
// them back one by one yields a subtree no taller than the one removed.
// Time: O(s log s) where s is the size of the removed subtree, or O(n) when it rebuilds.
func (u *ArrayTree[T]) Remove(v T) error {
	if IsNil(v) {
		return newError(NullElement, "Remove")
	}
	i, found := u.seek(v)
	if !found {
		return newError(ElementNotFound, "Remove")
	}
	sub := u.cut(i)
	slices.SortFunc(sub, u.cmp)
	spread(sub, i, u.place)
	u.balance()
	return nil
}

// cut empties slot i and every slot below it, and returns the values found below i in
// breadth-first order. All values are read before any slot is emptied.
func (u *ArrayTree[T]) cut(i int) []T {
	var idx []int
	q := Queues.MakeArrayQueue[int](uint(bits.Len(uint(u.sz))))
	for q.Push(i); !q.Empty(); {
		j, _ := q.Pop()
		if j != i {
			idx = append(idx, j)
		}
		if l := 2*j + 1; u.has(l) {
			q.Push(l)
		}
		if r := 2*j + 2; u.has(r) {
			q.Push(r)
		}
	}
	sub := make([]T, len(idx))
	for k, j := range idx {
		sub[k] = u.vs[j]
	}
	u.drop(i)
	for _, j := range idx {
		u.drop(j)
	}
	return sub
}

// place v at i and return the indexes of i's children; used with spread.
func (u *ArrayTree[T]) place(i int, v T) (int, int) {
	u.put(i, v)
	return 2*i + 1, 2*i + 2
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *ArrayTree[T]) Contains(v T) (bool, error) {
	if IsNil(v) {
		return false, newError(NullElement, "Contains")
	}
	_, found := u.seek(v)
	return found, nil
}

func (u *ArrayTree[T]) ContainsAll(other Tree[T]) (bool, error) {
	return containsAll[T](u, other)
}

// Clear replaces the buffer with a fresh one of minSlots.
func (u *ArrayTree[T]) Clear() error {
	u.reset(minSlots)
	return nil
}

// Values in ascending order, copied out of the tree.
func (u *ArrayTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.inOrder(0, func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Nodes yields a snapshot taken by Values when the iteration starts, so the tree may be
// modified during the iteration.
func (u *ArrayTree[T]) Nodes() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range u.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// inOrder over the subtree at i. Recursive.
func (u *ArrayTree[T]) inOrder(i int, yield func(T) bool) bool {
	if !u.has(i) {
		return true
	}
	return u.inOrder(2*i+1, yield) && yield(u.vs[i]) && u.inOrder(2*i+2, yield)
}

// height of the subtree at i. Recursive.
func (u *ArrayTree[T]) height(i int) int {
	if !u.has(i) {
		return 0
	}
	return 1 + max(u.height(2*i+1), u.height(2*i+2))
}

func (u *ArrayTree[T]) Height() int {
	return u.height(0)
}

func (u *ArrayTree[T]) balance() {
	if u.sz > 0 && needsRebuild(u.sz, u.height(1), u.height(2)) {
		u.rebuild()
	}
}

// rebuild into a fresh buffer just large enough for a tree of minimal height.
// Time: O(n log n)
func (u *ArrayTree[T]) rebuild() {
	vs := sortedValues(u.sz, u.Nodes(), u.cmp)
	u.reset(1 << bits.Len(uint(len(vs))))
	spread(vs, 0, u.place)
}

func (u *ArrayTree[T]) String() string {
	if u.sz == 0 {
		return emptyRendering
	}
	var b strings.Builder
	render(&b, 0, "", true, func(i int) (T, bool) {
		if !u.has(i) {
			return *new(T), false
		}
		return u.vs[i], true
	}, func(i int) (int, int) {
		return 2*i + 1, 2*i + 2
	})
	return b.String()
}
