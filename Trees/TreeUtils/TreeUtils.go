// Package TreeUtils holds operations that work on any Trees.Tree through its interface alone.
package TreeUtils

import (
	"github.com/g-m-twostay/ordtrees/Trees"
)

// Exists reports whether check holds for at least one element of t. It stops at the first match.
func Exists[T any](t Trees.Tree[T], check func(T) bool) (bool, error) {
	if Trees.IsNil(t) {
		return false, Trees.NewError(Trees.NullContainer, "Exists")
	}
	for v := range t.Nodes() {
		if check(v) {
			return true, nil
		}
	}
	return false, nil
}

// CheckForAll reports whether check holds for every element of t; true when t is empty.
// It stops at the first failure.
func CheckForAll[T any](t Trees.Tree[T], check func(T) bool) (bool, error) {
	if Trees.IsNil(t) {
		return false, Trees.NewError(Trees.NullContainer, "CheckForAll")
	}
	for v := range t.Nodes() {
		if !check(v) {
			return false, nil
		}
	}
	return true, nil
}

// ForEach calls action on every element of t in ascending order.
func ForEach[T any](t Trees.Tree[T], action func(T)) error {
	if Trees.IsNil(t) {
		return Trees.NewError(Trees.NullContainer, "ForEach")
	}
	for v := range t.Nodes() {
		action(v)
	}
	return nil
}

// FindAll returns a new tree of the same kind and order as t holding the elements for
// which check holds. Only KindLinked and KindArray trees can be copied this way; anything
// else, an Immutable view included, fails with ErrUnsupportedKind.
func FindAll[T any](t Trees.Tree[T], check func(T) bool) (Trees.Tree[T], error) {
	if Trees.IsNil(t) {
		return nil, Trees.NewError(Trees.NullContainer, "FindAll")
	}
	var res Trees.Tree[T]
	switch t.Kind() {
	case Trees.KindLinked:
		res = Trees.NewLinkedFunc(t.Comparator())
	case Trees.KindArray:
		res = Trees.NewArrayFunc(t.Comparator())
	default:
		return nil, Trees.NewError(Trees.UnsupportedContainerKind, "FindAll")
	}
	for v := range t.Nodes() {
		if check(v) {
			if err := res.Add(v); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}
