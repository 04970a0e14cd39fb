package Go_Collections

import "errors"

var (
	// ErrEmptyCollection is returned when an element is requested from a collection that holds none.
	ErrEmptyCollection = errors.New("collection is empty")
	// ErrInvalidIterator is returned when an iterator is off either end, has gone stale, or belongs to another collection.
	ErrInvalidIterator = errors.New("invalid iterator")
	// ErrInvalidArgument is returned for out-of-domain constructor or parameter values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfBounds is returned by index based accessors.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
