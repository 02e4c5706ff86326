package dbllist

import (
	"fmt"
	"iter"

	"github.com/mstreet3/linked-list/utils"
)

// LinkedList owns only its head. Every other node is reachable through the
// owning next links, so dropping the head releases the whole chain.
//
// A LinkedList is not safe for concurrent use. The zero value is an empty
// list ready to use.
type LinkedList[T any] struct {
	head *Node[T]
}

func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// NewFromHeadNode adopts an existing chain. head must have no predecessor.
func NewFromHeadNode[T any](head *Node[T]) *LinkedList[T] {
	return &LinkedList[T]{head: head}
}

// MoveFrom takes over the chain owned by src and leaves src empty.
func MoveFrom[T any](src *LinkedList[T]) *LinkedList[T] {
	l := &LinkedList[T]{head: src.head}
	src.head = nil
	return l
}

func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

func (l *LinkedList[T]) PushFront(value T) {
	n := NewNode(nil, value, l.head)
	if l.head != nil {
		l.head.SetPrev(n)
	}
	l.head = n
}

func (l *LinkedList[T]) PushBack(value T) {
	last, ok := l.NodeIter().Last()
	if !ok {
		l.head = NewNode[T](nil, value, nil)
		return
	}
	last.next = NewNode(last, value, nil)
}

// InsertAfter places value directly after the node at index. If there is no
// node at index the value is appended.
func (l *LinkedList[T]) InsertAfter(index int, value T) {
	node, ok := l.NodeIter().Nth(index)
	if !ok {
		utils.DPrintf("insert after %d: no such node, appending\n", index)
		l.PushBack(value)
		return
	}

	n := NewNode(node, value, node.next)
	if node.next != nil {
		node.next.SetPrev(n)
	}
	node.next = n
}

// InsertBefore places value directly before the node at index. The head has
// no predecessor so inserting before it pushes to the front; a missing index
// appends.
func (l *LinkedList[T]) InsertBefore(index int, value T) {
	node, ok := l.NodeIter().Nth(index)
	if !ok {
		utils.DPrintf("insert before %d: no such node, appending\n", index)
		l.PushBack(value)
		return
	}

	prev := node.Prev()
	if prev == nil {
		utils.DPrintf("insert before %d: no predecessor, pushing front\n", index)
		l.PushFront(value)
		return
	}

	n := NewNode(prev, value, node)
	prev.next = n
	node.SetPrev(n)
}

// RemoveAt unlinks the node at index and returns its value cell. The cell
// outlives the node for as long as the caller holds it.
func (l *LinkedList[T]) RemoveAt(index int) (*T, bool) {
	node, ok := l.NodeIter().Nth(index)
	if !ok {
		utils.DPrintf("remove at %d: no such node\n", index)
		return nil, false
	}

	if prev := node.Prev(); prev != nil {
		prev.next = node.next
		if node.next != nil {
			node.next.SetPrev(prev)
		}
	} else {
		// the old head may still be live, drop the stale back-reference
		l.head = node.next
		if l.head != nil {
			l.head.SetPrev(nil)
		}
	}

	return node.value, true
}

// Len counts the nodes reachable from head. It walks the list on every call.
func (l *LinkedList[T]) Len() int {
	ret := 0
	for it := l.Iter(); ; ret++ {
		if _, ok := it.Next(); !ok {
			return ret
		}
	}
}

func (l *LinkedList[T]) Iter() *ValueIterator[T] {
	return &ValueIterator[T]{nodes: NodeIterator[T]{current: l.head}}
}

func (l *LinkedList[T]) NodeIter() *NodeIterator[T] {
	return &NodeIterator[T]{current: l.head}
}

// All yields each position and value cell in forward order.
func (l *LinkedList[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		it := l.Iter()
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0)
	for _, v := range l.All() {
		out = append(out, *v)
	}
	return out
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

// Clone builds a new chain holding copies of the values. Values are copied
// by assignment; use CloneFunc for deep copies.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	return l.CloneFunc(func(v T) T { return v })
}

func (l *LinkedList[T]) CloneFunc(clone func(T) T) *LinkedList[T] {
	var (
		ret  = New[T]()
		tail *Node[T]
	)

	for _, v := range l.All() {
		n := NewNode(tail, clone(*v), nil)
		if tail == nil {
			ret.head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	return ret
}
