package Trees

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

// GodsComparator turns a gods comparator, such as utils.IntComparator, into a Comparator.
// c must accept values of type T.
func GodsComparator[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// Container exposes t as a gods containers.Container.
// Clear errors (from an Immutable) are dropped since the gods interface can't report
// them; check IsEmpty afterward if that matters.
func Container[T any](t Tree[T]) containers.Container {
	return godsContainer[T]{t}
}

type godsContainer[T any] struct {
	t Tree[T]
}

func (c godsContainer[T]) Empty() bool {
	return c.t.IsEmpty()
}

func (c godsContainer[T]) Size() int {
	return c.t.Count()
}

func (c godsContainer[T]) Clear() {
	_ = c.t.Clear()
}

// Values in ascending order.
func (c godsContainer[T]) Values() []interface{} {
	vs := make([]interface{}, 0, c.t.Count())
	for v := range c.t.Nodes() {
		vs = append(vs, v)
	}
	return vs
}

func (c godsContainer[T]) String() string {
	return c.t.Kind().String() + " tree\n" + c.t.String()
}
