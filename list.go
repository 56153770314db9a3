package seq

import (
	"fmt"
	"iter"
	"strings"
)

// A doubly linked list. Ends are O(1); indexed operations walk from
// whichever end is nearer. Must not be copied; use Move or Clone.
type List[T any] struct {
	noCopy noCopy
	head   *Node[T]
	tail   *Node[T]
	length int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Create a list holding values, in order.
func ListFrom[T any](values ...T) *List[T] {
	l := NewList[T]()
	for _, value := range values {
		l.PushBack(value)
	}
	return l
}

func (l *List[T]) Size() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// The first node, or nil.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// The last node, or nil.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{Value: value, linked: true}
	tail := l.tail
	l.tail = node
	if tail == nil {
		l.head = node
	} else {
		node.prev = tail
		tail.next = node
	}
	l.length++
	return node
}

func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{Value: value, linked: true}
	head := l.head
	l.head = node
	if head == nil {
		l.tail = node
	} else {
		node.next = head
		head.prev = node
	}
	l.length++
	return node
}

// Place value at index. 0 behaves like PushFront, Size() like PushBack.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return ErrOutOfRange
	}
	if index == 0 {
		l.PushFront(value)
		return nil
	}
	if index == l.length {
		l.PushBack(value)
		return nil
	}

	current, _ := l.locate(index)
	node := &Node[T]{Value: value, linked: true}
	node.prev = current.prev
	node.next = current
	current.prev.next = node
	current.prev = node
	l.length++
	return nil
}

func (l *List[T]) Erase(index int) error {
	node, err := l.NodeAt(index)
	if err != nil {
		return err
	}
	l.remove(node)
	return nil
}

func (l *List[T]) At(index int) (T, error) {
	node, err := l.NodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return node.Value, nil
}

func (l *List[T]) Set(index int, value T) error {
	node, err := l.NodeAt(index)
	if err != nil {
		return err
	}
	node.Value = value
	return nil
}

// The node at index, found by walking from the nearer end.
func (l *List[T]) NodeAt(index int) (*Node[T], error) {
	if index < 0 || index >= l.length {
		return nil, ErrOutOfRange
	}
	node, _ := l.locate(index)
	return node, nil
}

// index must be in range. backward reports whether the walk started
// from the tail.
func (l *List[T]) locate(index int) (node *Node[T], backward bool) {
	if index < l.length/2 {
		node = l.head
		for i := 0; i < index; i++ {
			node = node.next
		}
		return node, false
	}
	node = l.tail
	for i := l.length - 1; i > index; i-- {
		node = node.prev
	}
	return node, true
}

func (l *List[T]) remove(node *Node[T]) {
	next := node.next
	prev := node.prev

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	node.unlink()
	l.length--
}

// Unlink every node and reset the list.
func (l *List[T]) Clear() {
	node := l.head
	for node != nil {
		next := node.next
		node.unlink()
		node = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Transfer the chain to a new list, leaving the receiver empty. Nodes and
// cursors keep referring to the same elements, now owned by the new list.
func (l *List[T]) Move() *List[T] {
	moved := &List[T]{head: l.head, tail: l.tail, length: l.length}
	l.head = nil
	l.tail = nil
	l.length = 0
	return moved
}

// Replace the receiver's content with src's chain, leaving src empty.
// The receiver's previous nodes are unlinked.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.head = src.head
	l.tail = src.tail
	l.length = src.length
	src.head = nil
	src.tail = nil
	src.length = 0
}

func (l *List[T]) Clone() *List[T] {
	clone := NewList[T]()
	for node := l.head; node != nil; node = node.next {
		clone.PushBack(node.Value)
	}
	return clone
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for node := l.head; node != nil; node = node.next {
			if !yield(i, node.Value) {
				return
			}
			i++
		}
	}
}

// Values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	var sb strings.Builder
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, node.Value)
	}
	return sb.String()
}

// A bidirectional position within a List. The zero value, and End(), is
// the end position. A cursor is invalidated when its node is erased or
// the list is cleared.
type ListCursor[T any] struct {
	node *Node[T]
}

func (l *List[T]) Begin() ListCursor[T] {
	return ListCursor[T]{node: l.head}
}

func (l *List[T]) End() ListCursor[T] {
	return ListCursor[T]{}
}

// A cursor on the last element.
func (l *List[T]) RBegin() ListCursor[T] {
	return ListCursor[T]{node: l.tail}
}

func (c ListCursor[T]) Node() *Node[T] {
	return c.node
}

func (c ListCursor[T]) Valid() bool {
	return c.node == nil || c.node.linked
}

func (c ListCursor[T]) Value() (T, error) {
	var zero T
	if c.node == nil {
		return zero, ErrOutOfRange
	}
	if !c.node.linked {
		return zero, ErrInvalidCursor
	}
	return c.node.Value, nil
}

func (c ListCursor[T]) Set(value T) error {
	if c.node == nil {
		return ErrOutOfRange
	}
	if !c.node.linked {
		return ErrInvalidCursor
	}
	c.node.Value = value
	return nil
}

// Move towards the tail. No-op on the end cursor.
func (c *ListCursor[T]) Next() ListCursor[T] {
	if c.node != nil {
		c.node = c.node.next
	}
	return *c
}

func (c *ListCursor[T]) PostNext() ListCursor[T] {
	previous := *c
	c.Next()
	return previous
}

// Move towards the head. No-op on the end cursor.
func (c *ListCursor[T]) Prev() ListCursor[T] {
	if c.node != nil {
		c.node = c.node.prev
	}
	return *c
}

func (c *ListCursor[T]) PostPrev() ListCursor[T] {
	previous := *c
	c.Prev()
	return previous
}

func (c ListCursor[T]) Equal(other ListCursor[T]) bool {
	return c.node == other.node
}
