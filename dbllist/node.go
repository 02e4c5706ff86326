package dbllist

import "weak"

// Node is a single list cell. next owns the following node; prev is a weak
// back-reference and never keeps the predecessor alive.
type Node[T any] struct {
	prev  weak.Pointer[Node[T]]
	value *T
	next  *Node[T]
}

// NewNode wraps value in a new shared cell. No validation is performed: the
// caller is responsible for keeping prev and next consistent.
func NewNode[T any](prev *Node[T], value T, next *Node[T]) *Node[T] {
	n := &Node[T]{
		value: &value,
		next:  next,
	}
	n.SetPrev(prev)
	return n
}

// Value returns the shared value cell. It stays valid after the node is
// unlinked.
func (n *Node[T]) Value() *T {
	return n.value
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev resolves the back-reference, returning nil if there is none or the
// predecessor is gone.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev.Value()
}

func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

func (n *Node[T]) SetPrev(prev *Node[T]) {
	if prev == nil {
		n.prev = weak.Pointer[Node[T]]{}
		return
	}
	n.prev = weak.Make(prev)
}
