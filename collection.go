package Go_Collections

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Comparator returns a negative number if a<b, zero if a==b, and a positive number if a>b.
// It must define a total order.
type Comparator[T any] func(a, b T) int

// Compare is the natural ordering of T.
func Compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Reverse the order defined by c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Collection is the common contract of every container in this module.
// Elements are unique under the container's equality (a comparator result of 0);
// adding an element that is already present does nothing.
type Collection[T any] interface {
	//Add v. Returns false if an equal element is already present.
	Add(v T) bool
	//Erase v. Returns whether v was present.
	Erase(v T) bool
	//Contains v. Self-adjusting containers may restructure on this call.
	Contains(v T) bool
	//Size is the number of elements.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Clear removes all elements. Outstanding iterators become invalid.
	Clear()
	//All elements in order. The collection mustn't be modified during the iteration.
	All() iter.Seq[T]
	//String is the structural fingerprint of the collection.
	String() string
}

// Ordered is a Collection with a total order on its elements.
type Ordered[T any] interface {
	Collection[T]
	//Min returns ErrEmptyCollection if the collection is empty.
	Min() (T, error)
	//Max returns ErrEmptyCollection if the collection is empty.
	Max() (T, error)
}

// Iterator is a bidirectional cursor over an Ordered collection.
// An iterator is invalid once it moved past either end, or once the element
// it points to was removed from the collection. Every method except Valid
// returns ErrInvalidIterator on an invalid iterator.
type Iterator[T any] interface {
	Valid() bool
	Value() (T, error)
	Forward() error
	Back() error
}

// ToSlice collects all elements of c in iteration order.
func ToSlice[T any](c Collection[T]) []T {
	s := make([]T, 0, c.Size())
	for v := range c.All() {
		s = append(s, v)
	}
	return s
}
