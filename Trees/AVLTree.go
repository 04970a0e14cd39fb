package Trees

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree where the heights of the two subtrees of
// any node differ by at most one. Each node caches the height of its
// subtree, so the additional memory cost is size(int)*n.
// The worst case height of the tree is less than 1.44*log2(n+2), so D is
// O(log n).
type AVLTree[T any] struct {
	base[T]
}

// NewAVLTree ordered by cmp.
func NewAVLTree[T any](cmp Go_Collections.Comparator[T], opts ...Go_Collections.Option) *AVLTree[T] {
	return &AVLTree[T]{makeBase[T](cmp, opts)}
}

// NewOrderedAVLTree ordered by Go_Collections.Compare.
func NewOrderedAVLTree[T constraints.Ordered](opts ...Go_Collections.Option) *AVLTree[T] {
	return NewAVLTree[T](Go_Collections.Compare[T], opts...)
}

func heightOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

func (n *node[T]) updateHeight() {
	n.h = max(heightOf(n.l), heightOf(n.r)) + 1
}

// balance is the height of the right subtree minus the height of the left.
func (n *node[T]) balance() int {
	return heightOf(n.r) - heightOf(n.l)
}

func (u *AVLTree[T]) rotateLeft(n *node[T]) *node[T] {
	s := u.base.rotateLeft(n)
	n.updateHeight()
	s.updateHeight()
	return s
}

func (u *AVLTree[T]) rotateRight(n *node[T]) *node[T] {
	s := u.base.rotateRight(n)
	n.updateHeight()
	s.updateHeight()
	return s
}

// rebalanceAt n, returning the node now at the position of n.
// A child with a balance of 0 is always fixed with a single rotation.
func (u *AVLTree[T]) rebalanceAt(n *node[T]) *node[T] {
	if b := n.balance(); b > 1 {
		if n.r.balance() < 0 {
			u.rotateRight(n.r)
		}
		return u.rotateLeft(n)
	} else if b < -1 {
		if n.l.balance() > 0 {
			u.rotateLeft(n.l)
		}
		return u.rotateRight(n)
	}
	return n
}

// rebalance every node on the path from n to the root. After a removal a
// rotation can shorten a subtree, so the walk never stops early.
// Time: O(D)
func (u *AVLTree[T]) rebalance(n *node[T]) {
	for n != nil {
		s := u.rebalanceAt(n)
		n.updateHeight()
		s.updateHeight()
		n = s.p
	}
}

// Add [Tree.Add]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Add(v T) bool {
	n, ok := u.insert(v)
	if ok {
		u.rebalance(n)
	}
	return ok
}

func (u *AVLTree[T]) erase(n *node[T]) {
	if p := u.remove(n); p != nil {
		u.rebalance(p)
	}
}

// Erase [Tree.Erase]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Erase(v T) bool {
	if n := u.locate(v); n != nil {
		u.erase(n)
		return true
	}
	return false
}

// EraseAt [Tree.EraseAt]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) EraseAt(it *Iterator[T]) error {
	if e := u.check(it); e != nil {
		return e
	}
	u.erase(it.n)
	it.n = nil
	return nil
}

// Find [Tree.Find]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Find(v T) (*Iterator[T], bool) {
	if n := u.locate(v); n != nil {
		return u.iterAt(n), true
	}
	return nil, false
}

// Contains [Tree.Contains]
func (u *AVLTree[T]) Contains(v T) bool {
	return u.locate(v) != nil
}

// Min [Tree.Min]
func (u *AVLTree[T]) Min() (T, error) {
	n, e := u.minNode()
	if e != nil {
		return *new(T), e
	}
	return n.v, nil
}

// Max [Tree.Max]
func (u *AVLTree[T]) Max() (T, error) {
	n, e := u.maxNode()
	if e != nil {
		return *new(T), e
	}
	return n.v, nil
}

// Height [Tree.Height]. Read from the cached height of the root.
// Time: O(1)
func (u *AVLTree[T]) Height() int {
	return heightOf(u.root)
}

// Corrupt [Tree.Corrupt]. Also checks the cached heights and the balance of
// every node.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	return u.corrupt(func(n *node[T]) bool {
		b := n.balance()
		return n.h != max(heightOf(n.l), heightOf(n.r))+1 || b > 1 || b < -1
	})
}
