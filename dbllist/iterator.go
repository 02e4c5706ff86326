package dbllist

// NodeIterator walks nodes in forward order. Once exhausted it stays
// exhausted.
type NodeIterator[T any] struct {
	current *Node[T]
}

func (it *NodeIterator[T]) Next() (*Node[T], bool) {
	n := it.current
	if n == nil {
		return nil, false
	}
	it.current = n.next
	return n, true
}

func (it *NodeIterator[T]) Peek() (*Node[T], bool) {
	return it.current, it.current != nil
}

// Nth consumes n+1 nodes and returns the last one consumed.
func (it *NodeIterator[T]) Nth(n int) (*Node[T], bool) {
	if n < 0 {
		return nil, false
	}
	for ; n > 0; n-- {
		if _, ok := it.Next(); !ok {
			return nil, false
		}
	}
	return it.Next()
}

// Last drains the iterator and returns the final node.
func (it *NodeIterator[T]) Last() (*Node[T], bool) {
	var last *Node[T]
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		last = n
	}
	return last, last != nil
}

// ValueIterator is a NodeIterator projected onto the value cells.
type ValueIterator[T any] struct {
	nodes NodeIterator[T]
}

func (it *ValueIterator[T]) Next() (*T, bool) {
	n, ok := it.nodes.Next()
	if !ok {
		return nil, false
	}
	return n.value, true
}

func (it *ValueIterator[T]) Peek() (*T, bool) {
	n, ok := it.nodes.Peek()
	if !ok {
		return nil, false
	}
	return n.value, true
}

func (it *ValueIterator[T]) PeekNode() (*Node[T], bool) {
	return it.nodes.Peek()
}
