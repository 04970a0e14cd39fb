package BTree

import (
	"fmt"
	"strings"
)

// items stores values or children in a node.
type items[T any] []T

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func (s *items[T]) insertAt(index int, item T) {
	*s = append(*s, *new(T))
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = item
}

// removeAt removes a value at a given index, pulling all subsequent values
// back.
func (s *items[T]) removeAt(index int) T {
	item := (*s)[index]
	copy((*s)[index:], (*s)[index+1:])
	(*s)[len(*s)-1] = *new(T)
	*s = (*s)[:len(*s)-1]
	return item
}

// pop removes and returns the last element in the list.
func (s *items[T]) pop() T {
	index := len(*s) - 1
	out := (*s)[index]
	(*s)[index] = *new(T)
	*s = (*s)[:index]
	return out
}

// truncate so that only the first index items remain. The dropped slots are
// zeroed for the garbage collector.
func (s *items[T]) truncate(index int) {
	clear((*s)[index:])
	*s = (*s)[:index]
}

// node of a BTree. A leaf never has children; an internal node with k values
// has exactly k+1 children. Only the root may hold fewer than t-1 values.
type node[T any] struct {
	values   items[T]
	children items[*node[T]]
	parent   *node[T]
	leaf     bool
}

func (n *node[T]) leftmost() *node[T] {
	for !n.leaf {
		n = n.children[0]
	}
	return n
}

func (n *node[T]) rightmost() *node[T] {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n
}

// index of n among the children of its parent.
// Time: O(t)
func (n *node[T]) index() int {
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	panic("BTree: node missing from its parent")
}

// label is the value list of n alone, as (v1,v2,...).
func (n *node[T]) label(sb *strings.Builder) {
	sb.WriteByte('(')
	for i, v := range n.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(sb, v)
	}
	sb.WriteByte(')')
}

// write the subtree rooting at n as (values)[child]...[child]. Recursive.
func (n *node[T]) write(sb *strings.Builder) {
	n.label(sb)
	for _, c := range n.children {
		sb.WriteByte('[')
		c.write(sb)
		sb.WriteByte(']')
	}
}

// ascend yields the values of the subtree in order. Recursive.
func (n *node[T]) ascend(yield func(T) bool) bool {
	for i, v := range n.values {
		if !n.leaf && !n.children[i].ascend(yield) {
			return false
		}
		if !yield(v) {
			return false
		}
	}
	return n.leaf || n.children[len(n.values)].ascend(yield)
}

// descend yields the values of the subtree in reverse order. Recursive.
func (n *node[T]) descend(yield func(T) bool) bool {
	for i := len(n.values) - 1; i >= 0; i-- {
		if !n.leaf && !n.children[i+1].descend(yield) {
			return false
		}
		if !yield(n.values[i]) {
			return false
		}
	}
	return n.leaf || n.children[0].descend(yield)
}
