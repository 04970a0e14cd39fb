package Trees

import (
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

// Tree represents an ordered set implemented as a binary search tree with
// parent links. Values are compared with the Comparator given at
// construction; a value equal to one already present is never inserted a
// second time.
// Iterators returned by a Tree stay bound to it: passing one to another
// tree, or using one whose element was removed, gives ErrInvalidIterator.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	Go_Collections.Ordered[T]
	//EraseAt removes the element it points to, and invalidates it.
	//it must come from this tree and be valid.
	EraseAt(it *Iterator[T]) error
	//Find returns an iterator at the element equal to v, or (nil, false).
	Find(v T) (*Iterator[T], bool)
	//Begin returns an iterator at the smallest element. It is invalid if the tree is empty.
	Begin() *Iterator[T]
	//End returns an iterator at the largest element. It is invalid if the tree is empty.
	End() *Iterator[T]
	//Backward is All in reverse order.
	Backward() iter.Seq[T]
	//Values in ascending order.
	Values() []T
	//Height of the tree, 0 when empty.
	Height() int
	//Pretty is a multi-line rendering of the tree for humans.
	Pretty() string
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var (
	_ Tree[int] = (*BinarySearchTree[int])(nil)
	_ Tree[int] = (*AVLTree[int])(nil)
	_ Tree[int] = (*SplayTree[int])(nil)
)
