package Trees

import (
	"cmp"
	"iter"
	"strings"
)

// LinkedTree is a binary search tree made of linked nodes.
// It keeps no per node balance data. Instead, after every successful Add or Remove
// it compares the heights of the root's subtrees, and rebuilds the whole tree into
// one of minimal height when they differ by more than 1 or when the tree grows
// too tall for its size. Measuring heights costs O(n) per mutation.
type LinkedTree[T any] struct {
	root *node[T]
	sz   int
	cmp  Comparator[T]
}

var _ Tree[int] = (*LinkedTree[int])(nil)

// NewLinked tree ordered by cmp.Compare.
func NewLinked[T cmp.Ordered]() *LinkedTree[T] {
	return NewLinkedFunc(orderedCmp[T]())
}

// NewLinkedFunc tree ordered by c. Panics if c is nil.
func NewLinkedFunc[T any](c Comparator[T]) *LinkedTree[T] {
	if c == nil {
		panic("Trees: nil Comparator")
	}
	return &LinkedTree[T]{cmp: c}
}

func (u *LinkedTree[T]) Count() int {
	return u.sz
}

func (u *LinkedTree[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *LinkedTree[T]) Kind() Kind {
	return KindLinked
}

func (u *LinkedTree[T]) Comparator() Comparator[T] {
	return u.cmp
}

// Nodes are produced lazily by walking the nodes in order, so the tree must not be
// modified while the sequence is consumed.
func (u *LinkedTree[T]) Nodes() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.root.inOrder(yield)
	}
}

// seek returns the slot holding v, or the empty slot where v would be attached.
// Time: O(D); Space: O(1)
func (u *LinkedTree[T]) seek(v T) **node[T] {
	cur := &u.root
	for *cur != nil {
		if c := u.cmp(v, (*cur).v); c < 0 {
			cur = &(*cur).l
		} else if c > 0 {
			cur = &(*cur).r
		} else {
			break
		}
	}
	return cur
}

// Add [Tree.Add]
// Time: O(D), or O(n) when it rebuilds.
func (u *LinkedTree[T]) Add(v T) error {
	if IsNil(v) {
		return newError(NullElement, "Add")
	}
	slot := u.seek(v)
	if *slot != nil {
		return newError(DuplicateValue, "Add")
	}
	*slot = &node[T]{v: v}
	u.sz++
	u.balance()
	return nil
}

// Remove [Tree.Remove]
// A node with two children takes the value of its in-order successor, the leftmost
// node of its right subtree, which is then unlinked in its place.
// Time: O(D), or O(n) when it rebuilds.
func (u *LinkedTree[T]) Remove(v T) error {
	if IsNil(v) {
		return newError(NullElement, "Remove")
	}
	slot := u.seek(v)
	n := *slot
	if n == nil {
		return newError(ElementNotFound, "Remove")
	}
	if n.l == nil {
		*slot = n.r
	} else if n.r == nil {
		*slot = n.l
	} else {
		s := &n.r
		for (*s).l != nil {
			s = &(*s).l
		}
		n.v = (*s).v
		*s = (*s).r
	}
	u.sz--
	u.balance()
	return nil
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *LinkedTree[T]) Contains(v T) (bool, error) {
	if IsNil(v) {
		return false, newError(NullElement, "Contains")
	}
	return *u.seek(v) != nil, nil
}

func (u *LinkedTree[T]) ContainsAll(other Tree[T]) (bool, error) {
	return containsAll[T](u, other)
}

// Clear drops the root; the nodes are left to the garbage collector.
func (u *LinkedTree[T]) Clear() error {
	u.root, u.sz = nil, 0
	return nil
}

func (u *LinkedTree[T]) Height() int {
	return u.root.height()
}

func (u *LinkedTree[T]) balance() {
	if u.root != nil && needsRebuild(u.sz, u.root.l.height(), u.root.r.height()) {
		u.rebuild()
	}
}

// rebuild the tree into one of minimal height.
// Time: O(n log n)
func (u *LinkedTree[T]) rebuild() {
	vs := sortedValues(u.sz, u.Nodes(), u.cmp)
	u.root = nil
	spread(vs, &u.root, placeNode[T])
}

func (u *LinkedTree[T]) String() string {
	if u.root == nil {
		return emptyRendering
	}
	var b strings.Builder
	render(&b, u.root, "", true, func(n *node[T]) (T, bool) {
		if n == nil {
			return *new(T), false
		}
		return n.v, true
	}, func(n *node[T]) (*node[T], *node[T]) {
		return n.l, n.r
	})
	return b.String()
}
