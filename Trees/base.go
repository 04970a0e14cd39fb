package Trees

import (
	"fmt"
	"iter"
	"strings"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Queues"
	"github.com/xlab/treeprint"
)

// base is the binary search tree engine shared by BinarySearchTree, AVLTree
// and SplayTree. It provides insertion, lookup, removal and rotations, but
// never restructures on its own; the embedding tree runs its own
// rebalancing pass after calling into base.
type base[T any] struct {
	root  *node[T]
	cmp   Go_Collections.Comparator[T]
	sz    uint
	epoch uint64 // nodes stamped with a different epoch are not in the tree.
	log   Go_Collections.Logger
}

func makeBase[T any](cmp Go_Collections.Comparator[T], opts []Go_Collections.Option) base[T] {
	return base[T]{cmp: cmp, epoch: 1, log: Go_Collections.Apply(opts...).Logger}
}

// locate the node holding v, nil if there is none.
// Time: O(D); Space: O(1)
func (u *base[T]) locate(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// insert v as a new leaf. Returns the new node and true, or the node
// already holding an equal value and false.
// Time: O(D); Space: O(1)
func (u *base[T]) insert(v T) (*node[T], bool) {
	if u.root == nil {
		u.root = &node[T]{v: v, h: 1, epoch: u.epoch}
		u.sz++
		return u.root, true
	}
	for cur := u.root; ; {
		if c := u.cmp(v, cur.v); c < 0 {
			if cur.l == nil {
				cur.l = &node[T]{v: v, p: cur, h: 1, epoch: u.epoch}
				u.sz++
				return cur.l, true
			}
			cur = cur.l
		} else if c > 0 {
			if cur.r == nil {
				cur.r = &node[T]{v: v, p: cur, h: 1, epoch: u.epoch}
				u.sz++
				return cur.r, true
			}
			cur = cur.r
		} else {
			return cur, false
		}
	}
}

// splice n out of the tree, putting c, which may be nil, in its place.
func (u *base[T]) splice(n, c *node[T]) {
	if n.p == nil {
		u.root = c
	} else {
		n.p.replaceChild(n, c)
	}
	if c != nil {
		c.p = n.p
	}
	n.l, n.r, n.p, n.epoch = nil, nil, nil, 0
	u.sz--
}

// remove n, which must be in u. When n has two children, its in-order
// successor is unlinked from its own position and takes the place of n, so
// every other node keeps its value. Returns the parent of the position that
// lost a node, nil if that was the root.
// Time: O(D); Space: O(1)
func (u *base[T]) remove(n *node[T]) *node[T] {
	if n.r == nil {
		p := n.p
		u.splice(n, n.l)
		return p
	} else if n.l == nil {
		p := n.p
		u.splice(n, n.r)
		return p
	}
	s := n.r.leftmost()
	p := s
	if s.p != n {
		p = s.p
		p.l = s.r // s is leftmost, but may still have a right child.
		if s.r != nil {
			s.r.p = p
		}
		s.r, n.r.p = n.r, s
	}
	s.l, n.l.p = n.l, s
	s.h = n.h
	u.splice(n, s)
	return p
}

// rotateLeft at n, n.r must exist. Returns the node now at the position of n.
// Time: O(1); Space: O(1)
func (u *base[T]) rotateLeft(n *node[T]) *node[T] {
	rc := n.r
	n.r = rc.l
	if rc.l != nil {
		rc.l.p = n
	}
	rc.p = n.p
	if n.p == nil {
		u.root = rc
	} else {
		n.p.replaceChild(n, rc)
	}
	rc.l, n.p = n, rc
	return rc
}

// rotateRight at n, n.l must exist. Returns the node now at the position of n.
// Time: O(1); Space: O(1)
func (u *base[T]) rotateRight(n *node[T]) *node[T] {
	lc := n.l
	n.l = lc.r
	if lc.r != nil {
		lc.r.p = n
	}
	lc.p = n.p
	if n.p == nil {
		u.root = lc
	} else {
		n.p.replaceChild(n, lc)
	}
	lc.r, n.p = n, lc
	return lc
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

func (u *base[T]) Empty() bool {
	return u.root == nil
}

// Clear the tree. Outstanding iterators become invalid.
// Time: O(1)
func (u *base[T]) Clear() {
	u.root, u.sz = nil, 0
	u.epoch++
}

// Height of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *base[T]) Height() int {
	return u.root.height()
}

func (u *base[T]) minNode() (*node[T], error) {
	if u.root == nil {
		return nil, fmt.Errorf("min: %w", Go_Collections.ErrEmptyCollection)
	}
	return u.root.leftmost(), nil
}

func (u *base[T]) maxNode() (*node[T], error) {
	if u.root == nil {
		return nil, fmt.Errorf("max: %w", Go_Collections.ErrEmptyCollection)
	}
	return u.root.rightmost(), nil
}

func (u *base[T]) iterAt(n *node[T]) *Iterator[T] {
	return &Iterator[T]{u, n}
}

// Begin returns an iterator at the smallest element, invalid if u is empty.
func (u *base[T]) Begin() *Iterator[T] {
	if u.root == nil {
		return u.iterAt(nil)
	}
	return u.iterAt(u.root.leftmost())
}

// End returns an iterator at the largest element, invalid if u is empty.
func (u *base[T]) End() *Iterator[T] {
	if u.root == nil {
		return u.iterAt(nil)
	}
	return u.iterAt(u.root.rightmost())
}

// check that it points to an element of u.
func (u *base[T]) check(it *Iterator[T]) error {
	if it == nil || it.t != u {
		u.log.Warn("rejected iterator", "reason", "foreign")
		return fmt.Errorf("iterator from another tree: %w", Go_Collections.ErrInvalidIterator)
	}
	if !it.Valid() {
		u.log.Warn("rejected iterator", "reason", "not positioned")
		return fmt.Errorf("iterator not positioned at an element: %w", Go_Collections.ErrInvalidIterator)
	}
	return nil
}

// All values in ascending order. Iterative.
// Time: amortized O(1) per value; Space: O(1)
func (u *base[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for cur := u.root.leftmost(); cur != nil; cur = cur.next() {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Backward yields all values in descending order.
func (u *base[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for cur := u.root.rightmost(); cur != nil; cur = cur.prev() {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Values in ascending order.
func (u *base[T]) Values() []T {
	s := make([]T, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

// String returns the structure of the tree in the form <v[left][right]>,
// where left and right are formatted recursively, and an empty subtree is
// empty. The empty tree is <>.
func (u *base[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	if u.root != nil {
		u.root.write(&sb)
	}
	sb.WriteByte('>')
	return sb.String()
}

// Pretty renders the tree with one node per line. Children are tagged L or R.
func (u *base[T]) Pretty() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	var add func(treeprint.Tree, *node[T])
	add = func(b treeprint.Tree, n *node[T]) {
		if n.l != nil {
			add(b.AddMetaBranch("L", n.l.v), n.l)
		}
		if n.r != nil {
			add(b.AddMetaBranch("R", n.r.v), n.r)
		}
	}
	t := treeprint.NewWithRoot(u.root.v)
	add(t, u.root)
	return t.String()
}

// corrupt walks the tree breadth first and reports whether any node breaks
// the binary search tree properties, the parent links, the membership
// stamps or the size counter. extra is applied to every node for additional
// per-node properties.
// Time: O(n); Space: O(n)
func (u *base[T]) corrupt(extra func(*node[T]) bool) bool {
	if u.root == nil {
		return u.sz != 0
	}
	if u.root.p != nil {
		return true
	}
	q := Queues.MakeArrayQueue[*node[T]](u.sz)
	q.Push(u.root)
	var cnt uint
	for !q.Empty() {
		n, _ := q.Pop()
		cnt++
		if n.epoch != u.epoch || (extra != nil && extra(n)) {
			return true
		}
		if n.l != nil {
			if n.l.p != n || u.cmp(n.l.v, n.v) >= 0 {
				return true
			}
			q.Push(n.l)
		}
		if n.r != nil {
			if n.r.p != n || u.cmp(n.r.v, n.v) <= 0 {
				return true
			}
			q.Push(n.r)
		}
	}
	if cnt != u.sz {
		return true
	}
	//local ordering doesn't imply global ordering.
	first, prev := true, *new(T)
	for v := range u.All() {
		if !first && u.cmp(prev, v) >= 0 {
			return true
		}
		first, prev = false, v
	}
	return false
}
