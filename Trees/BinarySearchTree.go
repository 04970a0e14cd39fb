package Trees

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"golang.org/x/exp/constraints"
)

// BinarySearchTree is an unbalanced binary search tree. Its height depends
// entirely on the insertion order, so the worst case D is n.
type BinarySearchTree[T any] struct {
	base[T]
}

// NewBinarySearchTree ordered by cmp.
func NewBinarySearchTree[T any](cmp Go_Collections.Comparator[T], opts ...Go_Collections.Option) *BinarySearchTree[T] {
	return &BinarySearchTree[T]{makeBase[T](cmp, opts)}
}

// NewOrderedBinarySearchTree ordered by Go_Collections.Compare.
func NewOrderedBinarySearchTree[T constraints.Ordered](opts ...Go_Collections.Option) *BinarySearchTree[T] {
	return NewBinarySearchTree[T](Go_Collections.Compare[T], opts...)
}

// Add [Tree.Add]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Add(v T) bool {
	_, ok := u.insert(v)
	return ok
}

// Erase [Tree.Erase]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Erase(v T) bool {
	if n := u.locate(v); n != nil {
		u.remove(n)
		return true
	}
	return false
}

// EraseAt [Tree.EraseAt]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) EraseAt(it *Iterator[T]) error {
	if e := u.check(it); e != nil {
		return e
	}
	u.remove(it.n)
	it.n = nil
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Find(v T) (*Iterator[T], bool) {
	if n := u.locate(v); n != nil {
		return u.iterAt(n), true
	}
	return nil, false
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Contains(v T) bool {
	return u.locate(v) != nil
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Min() (T, error) {
	n, e := u.minNode()
	if e != nil {
		return *new(T), e
	}
	return n.v, nil
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Max() (T, error) {
	n, e := u.maxNode()
	if e != nil {
		return *new(T), e
	}
	return n.v, nil
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *BinarySearchTree[T]) Corrupt() bool {
	return u.corrupt(nil)
}
