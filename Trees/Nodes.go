package Trees

import (
	"fmt"
	"strings"
)

// A node in a binary tree.
// p is the parent, nil for the root. h is the height of the subtree rooted
// here (1 for a leaf); only AVLTree keeps it up to date. epoch equals the
// owning tree's epoch while the node is linked into it, and 0 after the node
// has been unlinked.
type node[T any] struct {
	v       T
	l, r, p *node[T]
	h       int
	epoch   uint64
}

// leftmost node in the subtree rooting at n.
// Time: O(D)
func (n *node[T]) leftmost() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node in the subtree rooting at n.
// Time: O(D)
func (n *node[T]) rightmost() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// replaceChild c of n with nc. c must be a direct child of n. The parent
// pointer of nc is not touched.
func (n *node[T]) replaceChild(c, nc *node[T]) {
	if n.l == c {
		n.l = nc
	} else if n.r == c {
		n.r = nc
	} else {
		panic("Trees: replaceChild on a non-child")
	}
}

// next node in in-order, nil if n is the last one.
func (n *node[T]) next() *node[T] {
	if n.r != nil {
		return n.r.leftmost()
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// prev node in in-order, nil if n is the first one.
func (n *node[T]) prev() *node[T] {
	if n.l != nil {
		return n.l.rightmost()
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// height of the subtree rooting at n. Recursive.
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return max(n.l.height(), n.r.height()) + 1
}

// write the subtree rooting at n as v[left][right]. Recursive.
func (n *node[T]) write(sb *strings.Builder) {
	fmt.Fprint(sb, n.v)
	sb.WriteByte('[')
	if n.l != nil {
		n.l.write(sb)
	}
	sb.WriteString("][")
	if n.r != nil {
		n.r.write(sb)
	}
	sb.WriteByte(']')
}
