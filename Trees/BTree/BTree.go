// Package BTree implements an in-memory B-tree ordered set with parent links.
// A tree of minimum degree t keeps between t-1 and 2t-1 values in every node
// except the root, and all leaves at the same depth.
package BTree

import (
	"fmt"
	"iter"
	"strings"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Queues"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

type BTree[T any] struct {
	root    *node[T] // an empty leaf when the tree is empty.
	cmp     Go_Collections.Comparator[T]
	t       int
	sz      uint
	version uint64 // bumped on every modification, iterators holding an older one are stale.
	log     Go_Collections.Logger
}

var _ Go_Collections.Ordered[int] = (*BTree[int])(nil)

// New creates an empty BTree of the given minimum degree, which must be at
// least 2.
func New[T any](minDegree int, cmp Go_Collections.Comparator[T], opts ...Go_Collections.Option) (*BTree[T], error) {
	if minDegree < 2 {
		return nil, fmt.Errorf("minimum degree %d is less than 2: %w", minDegree, Go_Collections.ErrInvalidArgument)
	}
	return &BTree[T]{
		root: &node[T]{leaf: true},
		cmp:  cmp,
		t:    minDegree,
		log:  Go_Collections.Apply(opts...).Logger,
	}, nil
}

// NewOrdered is New ordered by Go_Collections.Compare.
func NewOrdered[T constraints.Ordered](minDegree int, opts ...Go_Collections.Option) (*BTree[T], error) {
	return New[T](minDegree, Go_Collections.Compare[T], opts...)
}

// search n, which mustn't be empty, for v. Returns the index of the match and
// 0, or the index of the last value probed and the result of comparing v to
// it.
// Time: O(log t)
func (u *BTree[T]) search(n *node[T], v T) (int, int) {
	lo, hi, mid, c := 0, len(n.values)-1, 0, 0
	for lo <= hi {
		mid = int(uint(lo+hi) >> 1)
		if c = u.cmp(v, n.values[mid]); c < 0 {
			hi = mid - 1
		} else if c > 0 {
			lo = mid + 1
		} else {
			return mid, 0
		}
	}
	return mid, c
}

// locate the node and index holding v, or (nil, -1).
// Time: O(log n)
func (u *BTree[T]) locate(v T) (*node[T], int) {
	n := u.root
	if len(n.values) == 0 {
		return nil, -1
	}
	for {
		i, c := u.search(n, v)
		if c == 0 {
			return n, i
		} else if n.leaf {
			return nil, -1
		} else if c > 0 {
			i++
		}
		n = n.children[i]
	}
}

// Add v to the tree. Returns false if an equal value is already present.
// Time: O(t*log n)
func (u *BTree[T]) Add(v T) bool {
	n := u.root
	if len(n.values) == 0 {
		n.values = append(n.values, v)
		u.sz++
		u.version++
		return true
	}
	for {
		i, c := u.search(n, v)
		if c == 0 {
			return false
		} else if c > 0 {
			i++
		}
		if n.leaf {
			n.values.insertAt(i, v)
			break
		}
		n = n.children[i]
	}
	u.sz++
	u.version++
	u.splitUp(n)
	return true
}

// splitUp splits n while it holds more than 2t-1 values, moving the middle
// value into the parent and continuing from there.
func (u *BTree[T]) splitUp(n *node[T]) {
	t := u.t
	for len(n.values) > 2*t-1 {
		r := &node[T]{leaf: n.leaf}
		r.values = append(r.values, n.values[t+1:]...)
		sep := n.values[t]
		n.values.truncate(t)
		if !n.leaf {
			r.children = append(r.children, n.children[t+1:]...)
			n.children.truncate(t + 1)
			for _, c := range r.children {
				c.parent = r
			}
		}
		p := n.parent
		if p == nil {
			u.root = &node[T]{values: items[T]{sep}, children: items[*node[T]]{n, r}}
			n.parent, r.parent = u.root, u.root
			u.log.Debug("btree root split", "height", u.Height(), "size", u.sz)
			return
		}
		i := n.index()
		p.values.insertAt(i, sep)
		p.children.insertAt(i+1, r)
		r.parent = p
		n = p
	}
}

// Erase v from the tree. Returns whether v was present.
// Time: O(t*log n)
func (u *BTree[T]) Erase(v T) bool {
	n, i := u.locate(v)
	if n == nil {
		return false
	}
	u.erase(n, i)
	return true
}

// erase the value at n.values[i]. A value in an internal node is replaced by
// its in-order predecessor, which is taken from a leaf.
func (u *BTree[T]) erase(n *node[T], i int) {
	if n.leaf {
		n.values.removeAt(i)
	} else {
		l := n.children[i].rightmost()
		n.values[i] = l.values.pop()
		n = l
	}
	u.sz--
	u.version++
	u.fixUnder(n)
}

// fixUnder restores the minimum capacity of n and its ancestors by borrowing
// from a sibling, or merging with one when neither can spare a value.
func (u *BTree[T]) fixUnder(n *node[T]) {
	for n.parent != nil && len(n.values) < u.t-1 {
		p, i := n.parent, n.index()
		if u.borrowRight(n, p, i) || u.borrowLeft(n, p, i) {
			return
		}
		if i > 0 {
			u.merge(p, i-1)
		} else {
			u.merge(p, i)
		}
		n = p
	}
	if n.parent == nil && len(n.values) == 0 && !n.leaf {
		u.root = n.children[0]
		u.root.parent = nil
		u.log.Debug("btree root collapsed", "height", u.Height(), "size", u.sz)
	}
}

// borrowRight moves the separator p.values[i] down into n, and the smallest
// value of the right sibling of n up in its place.
func (u *BTree[T]) borrowRight(n, p *node[T], i int) bool {
	if i+1 >= len(p.children) {
		return false
	}
	s := p.children[i+1]
	if len(s.values) <= u.t-1 {
		return false
	}
	n.values = append(n.values, p.values[i])
	p.values[i] = s.values.removeAt(0)
	if !n.leaf {
		c := s.children.removeAt(0)
		c.parent = n
		n.children = append(n.children, c)
	}
	return true
}

// borrowLeft is the mirror of borrowRight.
func (u *BTree[T]) borrowLeft(n, p *node[T], i int) bool {
	if i == 0 {
		return false
	}
	s := p.children[i-1]
	if len(s.values) <= u.t-1 {
		return false
	}
	n.values.insertAt(0, p.values[i-1])
	p.values[i-1] = s.values.pop()
	if !n.leaf {
		c := s.children.pop()
		c.parent = n
		n.children.insertAt(0, c)
	}
	return true
}

// merge p.children[i+1] and the separator p.values[i] into p.children[i].
func (u *BTree[T]) merge(p *node[T], i int) {
	l, r := p.children[i], p.children[i+1]
	l.values = append(l.values, p.values.removeAt(i))
	l.values = append(l.values, r.values...)
	for _, c := range r.children {
		c.parent = l
	}
	l.children = append(l.children, r.children...)
	p.children.removeAt(i + 1)
	u.log.Debug("btree nodes merged", "values", len(l.values))
}

// EraseAt removes the value it points to, and invalidates it.
func (u *BTree[T]) EraseAt(it *Iterator[T]) error {
	if it == nil || it.t != u {
		u.log.Warn("rejected iterator", "reason", "foreign")
		return fmt.Errorf("iterator from another tree: %w", Go_Collections.ErrInvalidIterator)
	}
	if !it.Valid() {
		u.log.Warn("rejected iterator", "reason", "not positioned")
		return fmt.Errorf("iterator not positioned at a value: %w", Go_Collections.ErrInvalidIterator)
	}
	u.erase(it.n, it.i)
	it.n = nil
	return nil
}

// Find returns an iterator at the value equal to v, or (nil, false).
func (u *BTree[T]) Find(v T) (*Iterator[T], bool) {
	if n, i := u.locate(v); n != nil {
		return u.iterAt(n, i), true
	}
	return nil, false
}

func (u *BTree[T]) Contains(v T) bool {
	n, _ := u.locate(v)
	return n != nil
}

func (u *BTree[T]) Min() (T, error) {
	if u.sz == 0 {
		return *new(T), fmt.Errorf("min: %w", Go_Collections.ErrEmptyCollection)
	}
	return u.root.leftmost().values[0], nil
}

func (u *BTree[T]) Max() (T, error) {
	if u.sz == 0 {
		return *new(T), fmt.Errorf("max: %w", Go_Collections.ErrEmptyCollection)
	}
	l := u.root.rightmost()
	return l.values[len(l.values)-1], nil
}

// Size of the tree.
// Time: O(1)
func (u *BTree[T]) Size() uint {
	return u.sz
}

func (u *BTree[T]) Empty() bool {
	return u.sz == 0
}

// Clear the tree. Outstanding iterators become invalid.
func (u *BTree[T]) Clear() {
	u.root = &node[T]{leaf: true}
	u.sz = 0
	u.version++
}

// MinDegree is the t given to New.
func (u *BTree[T]) MinDegree() int {
	return u.t
}

// Height is the number of levels, 0 when empty.
// Time: O(log n)
func (u *BTree[T]) Height() int {
	if u.sz == 0 {
		return 0
	}
	h := 1
	for n := u.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}

func (u *BTree[T]) iterAt(n *node[T], i int) *Iterator[T] {
	return &Iterator[T]{t: u, n: n, i: i, version: u.version}
}

// Begin returns an iterator at the smallest value, invalid if u is empty.
func (u *BTree[T]) Begin() *Iterator[T] {
	if u.sz == 0 {
		return u.iterAt(nil, 0)
	}
	return u.iterAt(u.root.leftmost(), 0)
}

// End returns an iterator at the largest value, invalid if u is empty.
func (u *BTree[T]) End() *Iterator[T] {
	if u.sz == 0 {
		return u.iterAt(nil, 0)
	}
	l := u.root.rightmost()
	return u.iterAt(l, len(l.values)-1)
}

// All values in ascending order. Recursive.
func (u *BTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.root.ascend(yield)
	}
}

// Backward yields all values in descending order. Recursive.
func (u *BTree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.root.descend(yield)
	}
}

// Values in ascending order.
func (u *BTree[T]) Values() []T {
	s := make([]T, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

// Levels lists the values of the tree level by level, from the root down,
// each level in ascending order.
// Time: O(n); Space: O(n)
func (u *BTree[T]) Levels() [][]T {
	if u.sz == 0 {
		return nil
	}
	var levels [][]T
	q := Queues.MakeArrayQueue[*node[T]](uint(len(u.root.children)) + 1)
	q.Push(u.root)
	for !q.Empty() {
		var lvl []T
		for k := q.Size(); k > 0; k-- {
			n, _ := q.Pop()
			lvl = append(lvl, n.values...)
			for _, c := range n.children {
				q.Push(c)
			}
		}
		levels = append(levels, lvl)
	}
	return levels
}

// String returns the structure of the tree in the form <(v1,v2,...)[child]...[child]>,
// where each child is formatted recursively. The empty tree is <()>.
func (u *BTree[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	u.root.write(&sb)
	sb.WriteByte('>')
	return sb.String()
}

// Pretty renders the tree with one node per line.
func (u *BTree[T]) Pretty() string {
	label := func(n *node[T]) string {
		var sb strings.Builder
		n.label(&sb)
		return sb.String()
	}
	var add func(treeprint.Tree, *node[T])
	add = func(b treeprint.Tree, n *node[T]) {
		for _, c := range n.children {
			add(b.AddBranch(label(c)), c)
		}
	}
	t := treeprint.NewWithRoot(label(u.root))
	add(t, u.root)
	return t.String()
}

// Corrupt returns whether the tree breaks any of the B-tree properties:
// node capacities, child counts, parent links, equal leaf depth, ordering,
// or the size counter.
// Time: O(n); Space: O(n)
func (u *BTree[T]) Corrupt() bool {
	if u.root.parent != nil || len(u.root.values) > 2*u.t-1 {
		return true
	}
	if len(u.root.values) == 0 {
		return !u.root.leaf || u.sz != 0
	}
	q := Queues.MakeArrayQueue[*node[T]](uint(len(u.root.children)) + 1)
	q.Push(u.root)
	var cnt uint
	leafDepth := -1
	for depth := 0; !q.Empty(); depth++ {
		for k := q.Size(); k > 0; k-- {
			n, _ := q.Pop()
			cnt += uint(len(n.values))
			if n != u.root && (len(n.values) < u.t-1 || len(n.values) > 2*u.t-1) {
				return true
			}
			for i := 1; i < len(n.values); i++ {
				if u.cmp(n.values[i-1], n.values[i]) >= 0 {
					return true
				}
			}
			if n.leaf {
				if len(n.children) != 0 || (leafDepth >= 0 && leafDepth != depth) {
					return true
				}
				leafDepth = depth
				continue
			}
			if len(n.children) != len(n.values)+1 {
				return true
			}
			for _, c := range n.children {
				if c == nil || c.parent != n {
					return true
				}
				q.Push(c)
			}
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
