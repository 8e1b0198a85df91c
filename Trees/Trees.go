package Trees

import (
	"cmp"
	"iter"
	"reflect"
)

// Comparator is a three-way order on T: negative when a<b, zero when a==b, positive when a>b.
type Comparator[T any] func(a, b T) int

// Kind tags the concrete variant behind a Tree.
type Kind uint8

const (
	KindLinked Kind = iota + 1
	KindArray
	KindImmutable
)

func (k Kind) String() string {
	switch k {
	case KindLinked:
		return "linked"
	case KindArray:
		return "array"
	case KindImmutable:
		return "immutable"
	default:
		return "unknown"
	}
}

// Tree is an ordered set of elements without duplicates.
// Elements are placed only by the Comparator returned by Comparator. A nil
// element (see IsNil) is never accepted. Every mutation either succeeds and
// leaves the tree ordered, or returns an error and leaves the tree untouched.
// Implementations aren't safe for concurrent use.
type Tree[T any] interface {
	//Count of elements. O(1).
	Count() int
	//IsEmpty is Count()==0.
	IsEmpty() bool
	//Nodes gives the elements in ascending order. The sequence can be ranged over
	//more than once. The tree mustn't be modified while a sequence is being consumed
	//unless the implementation says it yields a snapshot.
	Nodes() iter.Seq[T]
	//Add v. Fails with ErrNullElement or ErrDuplicateValue.
	Add(v T) error
	//Remove v. Fails with ErrNullElement or ErrElementNotFound.
	Remove(v T) error
	//Contains v. Fails with ErrNullElement.
	Contains(v T) (bool, error)
	//ContainsAll elements of other. Fails with ErrNullContainer when other is nil.
	ContainsAll(other Tree[T]) (bool, error)
	//Clear all elements.
	Clear() error
	//Height of the tree; 0 when empty.
	Height() int
	//Kind of the variant.
	Kind() Kind
	//Comparator used for placing elements.
	Comparator() Comparator[T]
	//String renders the structure, parents before children.
	String() string
}

// IsNil reports whether v is an absent value: an untyped nil, or a nil pointer,
// interface, map, slice, func or chan.
func IsNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func orderedCmp[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// containsAll is shared by the storage variants.
func containsAll[T any](u Tree[T], other Tree[T]) (bool, error) {
	if IsNil(other) {
		return false, newError(NullContainer, "ContainsAll")
	}
	for v := range other.Nodes() {
		if in, err := u.Contains(v); err != nil || !in {
			return false, err
		}
	}
	return true, nil
}
