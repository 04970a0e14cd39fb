package Queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

func TestArrayQueue(t *testing.T) {
	q := MakeArrayQueue[int](0)
	assert.True(t, q.Empty())
	_, err := q.Pop()
	assert.ErrorIs(t, err, Go_Collections.ErrEmptyCollection)
	assert.Zero(t, q.Peek())

	// interleave pushes and pops so the content wraps around while growing.
	next, want := 0, 0
	for round := range 50 {
		for range round + 3 {
			q.Push(next)
			next++
		}
		for range round + 1 {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
		require.EqualValues(t, next-want, q.Size())
		require.Equal(t, want, q.Peek())
	}
	q.Shrink()
	for !q.Empty() {
		v, _ := q.Pop()
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](2)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Clear()
	assert.True(t, q.Empty())
	assert.Zero(t, q.Size())
	q.Push("d")
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "d", v)
}
