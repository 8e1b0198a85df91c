package Trees

import "iter"

// Immutable is a read-only view of another Tree. Reads go to the wrapped tree, and
// Add, Remove and Clear always fail with ErrUnmutableOperation. The wrapped tree can
// still be changed through any other reference to it, and the view reflects that.
type Immutable[T any] struct {
	t Tree[T]
}

var _ Tree[int] = (*Immutable[int])(nil)

// NewImmutable view of t. Fails with ErrNullContainer if t is nil.
func NewImmutable[T any](t Tree[T]) (*Immutable[T], error) {
	if IsNil(t) {
		return nil, newError(NullContainer, "NewImmutable")
	}
	return &Immutable[T]{t}, nil
}

func (u *Immutable[T]) Count() int {
	return u.t.Count()
}

func (u *Immutable[T]) IsEmpty() bool {
	return u.t.IsEmpty()
}

func (u *Immutable[T]) Nodes() iter.Seq[T] {
	return u.t.Nodes()
}

func (u *Immutable[T]) Add(T) error {
	return newError(UnmutableOperation, "Add")
}

func (u *Immutable[T]) Remove(T) error {
	return newError(UnmutableOperation, "Remove")
}

func (u *Immutable[T]) Clear() error {
	return newError(UnmutableOperation, "Clear")
}

func (u *Immutable[T]) Contains(v T) (bool, error) {
	return u.t.Contains(v)
}

func (u *Immutable[T]) ContainsAll(other Tree[T]) (bool, error) {
	return u.t.ContainsAll(other)
}

func (u *Immutable[T]) Height() int {
	return u.t.Height()
}

// Kind is always KindImmutable, whatever the wrapped tree is.
func (u *Immutable[T]) Kind() Kind {
	return KindImmutable
}

func (u *Immutable[T]) Comparator() Comparator[T] {
	return u.t.Comparator()
}

func (u *Immutable[T]) String() string {
	return u.t.String()
}
