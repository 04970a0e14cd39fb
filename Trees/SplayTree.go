package Trees

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"golang.org/x/exp/constraints"
)

// SplayTree is a self-adjusting binary search tree. Every access moves the
// accessed node to the root with a sequence of splay steps, so recently used
// values are cheap to reach again. Operations take amortized O(log n).
type SplayTree[T any] struct {
	base[T]
}

// NewSplayTree ordered by cmp.
func NewSplayTree[T any](cmp Go_Collections.Comparator[T], opts ...Go_Collections.Option) *SplayTree[T] {
	return &SplayTree[T]{makeBase[T](cmp, opts)}
}

// NewOrderedSplayTree ordered by Go_Collections.Compare.
func NewOrderedSplayTree[T constraints.Ordered](opts ...Go_Collections.Option) *SplayTree[T] {
	return NewSplayTree[T](Go_Collections.Compare[T], opts...)
}

// step moves n up by one or two levels.
func (u *SplayTree[T]) step(n *node[T]) {
	p := n.p
	g := p.p
	rot := func(x *node[T], left bool) {
		if left {
			u.rotateLeft(x)
		} else {
			u.rotateRight(x)
		}
	}
	if g == nil { //zig
		rot(p, n == p.r)
	} else if (n == p.l) == (p == g.l) { //zig-zig
		rot(g, p == g.r)
		rot(p, n == p.r)
	} else { //zig-zag
		rot(p, n == p.r)
		rot(n.p, n == n.p.r)
	}
}

// splay n to the root.
// Time: O(D)
func (u *SplayTree[T]) splay(n *node[T]) {
	for n.p != nil {
		u.step(n)
	}
}

// Add [Tree.Add]. The added value is splayed; adding a duplicate leaves the
// tree untouched.
// Time: amortized O(log n)
func (u *SplayTree[T]) Add(v T) bool {
	n, ok := u.insert(v)
	if ok {
		u.splay(n)
	}
	return ok
}

// erase n and splay the node that was its parent.
func (u *SplayTree[T]) erase(n *node[T]) {
	p := n.p
	u.remove(n)
	if p != nil {
		u.splay(p)
	}
}

// Erase [Tree.Erase]
// Time: amortized O(log n)
func (u *SplayTree[T]) Erase(v T) bool {
	if n := u.locate(v); n != nil {
		u.erase(n)
		return true
	}
	return false
}

// EraseAt [Tree.EraseAt]
func (u *SplayTree[T]) EraseAt(it *Iterator[T]) error {
	if e := u.check(it); e != nil {
		return e
	}
	u.erase(it.n)
	it.n = nil
	return nil
}

// Find [Tree.Find]. A found value is splayed to the root; a missing one
// leaves the tree untouched.
func (u *SplayTree[T]) Find(v T) (*Iterator[T], bool) {
	if n := u.locate(v); n != nil {
		u.splay(n)
		return u.iterAt(n), true
	}
	return nil, false
}

// Contains [Tree.Contains]. Splays like Find.
func (u *SplayTree[T]) Contains(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Min [Tree.Min]. The smallest node is splayed.
func (u *SplayTree[T]) Min() (T, error) {
	n, e := u.minNode()
	if e != nil {
		return *new(T), e
	}
	u.splay(n)
	return n.v, nil
}

// Max [Tree.Max]. The largest node is splayed.
func (u *SplayTree[T]) Max() (T, error) {
	n, e := u.maxNode()
	if e != nil {
		return *new(T), e
	}
	u.splay(n)
	return n.v, nil
}

// Corrupt [Tree.Corrupt]
func (u *SplayTree[T]) Corrupt() bool {
	return u.corrupt(nil)
}
