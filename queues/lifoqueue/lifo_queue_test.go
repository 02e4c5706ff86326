package lifoqueue

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_pop_empty_queue_returns_nil(t *testing.T) {
	var expected *interface{}
	queue := NewLIFOQueue[interface{}]()
	latest, present := queue.Pop()
	require.Equal(t, expected, latest)
	require.Equal(t, false, present)

	oldest, present := queue.PopBack()
	require.Equal(t, expected, oldest)
	require.Equal(t, false, present)
}

func Test_queue_is_LIFO(t *testing.T) {
	queue := NewLIFOQueue[[]byte]()
	messages := [][]byte{
		[]byte("first in"),
		[]byte("last in"),
	}
	for _, msg := range messages {
		queue.Push(msg)
	}
	firstOut, _ := queue.Pop()
	lastOut, _ := queue.Pop()
	require.Equal(t, []byte("last in"), *firstOut)
	require.Equal(t, []byte("first in"), *lastOut)
}

func Test_pop_back_takes_oldest(t *testing.T) {
	queue := NewLIFOQueue[string]()
	for _, s := range []string{"a", "b", "c"} {
		queue.PushFront(s)
	}

	oldest, ok := queue.PopBack()
	require.True(t, ok)
	require.Equal(t, "a", *oldest)
	require.Equal(t, 2, queue.Len())

	newest, ok := queue.Pop()
	require.True(t, ok)
	require.Equal(t, "c", *newest)
}

func Test_empty_drains_newest_first(t *testing.T) {
	var (
		queue = NewLIFOQueue[uuid.UUID]()
		ids   = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	)
	for _, id := range ids {
		queue.Push(id)
	}

	require.Equal(t, []uuid.UUID{ids[2], ids[1], ids[0]}, queue.Empty())
	require.Equal(t, 0, queue.Len())
	require.Empty(t, queue.Empty())
}

func Test_concurrent_pushes_are_all_kept(t *testing.T) {
	var (
		wg    sync.WaitGroup
		queue = NewLIFOQueue[int]()
		n     = 50
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			queue.Push(i)
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, queue.Len())
	require.ElementsMatch(t, func() []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}(), queue.Empty())
}
