package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns Go_Collections.ErrEmptyCollection when Empty.
	Pop() (T, error)
	//Peek at the oldest item. The zero value if Empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current content.
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}
