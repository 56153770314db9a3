package seq

// An element of a List. prev is a back-link only; the list owns the chain
// through head and next.
type Node[T any] struct {
	Value  T
	next   *Node[T]
	prev   *Node[T]
	linked bool
}

// The following node, or nil for the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// The preceding node, or nil for the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Linked reports whether the node still belongs to a list. Erased and
// cleared nodes are unlinked.
func (n *Node[T]) Linked() bool {
	return n.linked
}

func (n *Node[T]) unlink() {
	n.next = nil
	n.prev = nil
	n.linked = false
}

// An element of a SinglyList.
type SinglyNode[T any] struct {
	Value  T
	next   *SinglyNode[T]
	linked bool
}

func (n *SinglyNode[T]) Next() *SinglyNode[T] {
	return n.next
}

func (n *SinglyNode[T]) Linked() bool {
	return n.linked
}

func (n *SinglyNode[T]) unlink() {
	n.next = nil
	n.linked = false
}
