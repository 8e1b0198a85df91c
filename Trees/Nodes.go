package Trees

// A node in the LinkedTree. A node exclusively owns its children; there are no parent pointers.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// height of the subtree rooted at n; 0 for nil.
// Recursive. Time: O(size of subtree)
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.l.height(), n.r.height())
}

// inOrder calls yield on every value of the subtree in ascending order and stops
// as soon as yield returns false, which is then returned.
// Recursive.
func (n *node[T]) inOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.l.inOrder(yield) && yield(n.v) && n.r.inOrder(yield)
}

// placeNode at *p and returns its child slots; used with spread.
func placeNode[T any](p **node[T], v T) (**node[T], **node[T]) {
	*p = &node[T]{v: v}
	return &(*p).l, &(*p).r
}
