package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueue(t *testing.T) {
	rq := NewRingQueue[int](3)
	assert.True(t, rq.IsEmpty())

	_, err := rq.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	for i := 1; i <= 3; i++ {
		require.NoError(t, rq.Enqueue(i))
	}
	assert.True(t, rq.IsFull())
	assert.ErrorIs(t, rq.Enqueue(4), ErrQueueFull)

	front, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	v, err := rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, rq.Items())
}

func TestRingQueuePush(t *testing.T) {
	rq := NewRingQueue[string](2)
	rq.Push("a")
	rq.Push("b")
	rq.Push("c")
	assert.Equal(t, 2, rq.Len())
	assert.Equal(t, []string{"b", "c"}, rq.Items())

	empty := NewRingQueue[string](0)
	empty.Push("x")
	assert.Equal(t, 0, empty.Len())
}
