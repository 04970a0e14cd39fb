package BTree

import (
	"fmt"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

// Iterator is a bidirectional in-order cursor over a BTree. Any modification
// of the tree makes every outstanding iterator invalid, since splits, borrows
// and merges move values between nodes.
type Iterator[T any] struct {
	t       *BTree[T]
	n       *node[T] // nil when moved past either end.
	i       int
	version uint64
}

var _ Go_Collections.Iterator[int] = (*Iterator[int])(nil)

// Valid returns whether u points to a value of its tree.
func (u *Iterator[T]) Valid() bool {
	return u.n != nil && u.version == u.t.version
}

// Value at u.
func (u *Iterator[T]) Value() (T, error) {
	if !u.Valid() {
		return *new(T), fmt.Errorf("value: %w", Go_Collections.ErrInvalidIterator)
	}
	return u.n.values[u.i], nil
}

// Forward moves u to the next value. Moving past the largest value leaves u
// invalid.
// Time: O(t*log n)
func (u *Iterator[T]) Forward() error {
	if !u.Valid() {
		return fmt.Errorf("forward: %w", Go_Collections.ErrInvalidIterator)
	}
	if !u.n.leaf {
		u.n, u.i = u.n.children[u.i+1].leftmost(), 0
		return nil
	}
	if u.i+1 < len(u.n.values) {
		u.i++
		return nil
	}
	for u.n.parent != nil {
		j := u.n.index()
		u.n = u.n.parent
		if j < len(u.n.values) {
			u.i = j
			return nil
		}
	}
	u.n = nil
	return nil
}

// Back moves u to the previous value. Moving past the smallest value leaves u
// invalid.
// Time: O(t*log n)
func (u *Iterator[T]) Back() error {
	if !u.Valid() {
		return fmt.Errorf("back: %w", Go_Collections.ErrInvalidIterator)
	}
	if !u.n.leaf {
		u.n = u.n.children[u.i].rightmost()
		u.i = len(u.n.values) - 1
		return nil
	}
	if u.i > 0 {
		u.i--
		return nil
	}
	for u.n.parent != nil {
		j := u.n.index()
		u.n = u.n.parent
		if j > 0 {
			u.i = j - 1
			return nil
		}
	}
	u.n = nil
	return nil
}
