package Trees

import (
	"fmt"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

// Iterator is a bidirectional in-order cursor over a tree of this package.
// It holds a live reference into the tree: rotations keep it valid since they
// preserve the in-order sequence, but removing the node it points to or
// clearing the tree makes it invalid.
type Iterator[T any] struct {
	t *base[T]
	n *node[T] // nil when moved past either end.
}

var _ Go_Collections.Iterator[int] = (*Iterator[int])(nil)

// Valid returns whether u points to an element of its tree.
func (u *Iterator[T]) Valid() bool {
	return u.n != nil && u.n.epoch == u.t.epoch
}

// Value at u.
func (u *Iterator[T]) Value() (T, error) {
	if !u.Valid() {
		return *new(T), fmt.Errorf("value: %w", Go_Collections.ErrInvalidIterator)
	}
	return u.n.v, nil
}

// Forward moves u to the next element. Moving past the largest element
// leaves u invalid.
// Time: amortized O(1)
func (u *Iterator[T]) Forward() error {
	if !u.Valid() {
		return fmt.Errorf("forward: %w", Go_Collections.ErrInvalidIterator)
	}
	u.n = u.n.next()
	return nil
}

// Back moves u to the previous element. Moving past the smallest element
// leaves u invalid.
// Time: amortized O(1)
func (u *Iterator[T]) Back() error {
	if !u.Valid() {
		return fmt.Errorf("back: %w", Go_Collections.ErrInvalidIterator)
	}
	u.n = u.n.prev()
	return nil
}
