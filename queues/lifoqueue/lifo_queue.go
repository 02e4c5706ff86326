package lifoqueue

import (
	"sync"

	"github.com/mstreet3/linked-list/dbllist"
	"github.com/mstreet3/linked-list/utils"
)

type Emptier[T any] interface {
	Empty() []T
}

type Stack[T any] interface {
	Len() int
	Pop() (*T, bool)     // remove top item from stack
	PopBack() (*T, bool) // remove bottom item from stack
	PushFront(T)         // place item on top of stack
}

var (
	_ Stack[int]   = (*LIFOQueue[int])(nil)
	_ Emptier[int] = (*LIFOQueue[int])(nil)
)

// LIFOQueue guards a linked list with a mutex so it can be shared between
// goroutines. The top of the stack is the head of the list.
type LIFOQueue[T any] struct {
	mu    sync.Mutex
	queue *dbllist.LinkedList[T]
}

func NewLIFOQueue[T any]() *LIFOQueue[T] {
	return &LIFOQueue[T]{
		mu:    sync.Mutex{},
		queue: dbllist.New[T](),
	}
}

func (q *LIFOQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.queue.Len()
}

func (q *LIFOQueue[T]) PushFront(msg T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.queue.PushFront(msg)
}

func (q *LIFOQueue[T]) Push(msg T) {
	q.PushFront(msg)
}

func (q *LIFOQueue[T]) Pop() (*T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pop()
}

func (q *LIFOQueue[T]) pop() (*T, bool) {
	return q.queue.RemoveAt(0)
}

// PopBack removes the oldest item.
func (q *LIFOQueue[T]) PopBack() (*T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	val, ok := q.queue.RemoveAt(q.queue.Len() - 1)
	if !ok {
		utils.DPrintf("pop back: queue is empty")
	}
	return val, ok
}

func (q *LIFOQueue[T]) Empty() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	vals := make([]T, 0)
	for val, ok := q.pop(); ok; val, ok = q.pop() {
		vals = append(vals, *val)
	}

	return vals
}
