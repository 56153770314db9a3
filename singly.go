package seq

import (
	"fmt"
	"iter"
	"strings"
)

// A singly linked list with O(1) push at both ends. Indexed operations
// always walk from the head. Must not be copied; use Move or Clone.
type SinglyList[T any] struct {
	noCopy noCopy
	head   *SinglyNode[T]
	tail   *SinglyNode[T]
	length int
}

func NewSinglyList[T any]() *SinglyList[T] {
	return &SinglyList[T]{}
}

func SinglyListFrom[T any](values ...T) *SinglyList[T] {
	l := NewSinglyList[T]()
	for _, value := range values {
		l.PushBack(value)
	}
	return l
}

func (l *SinglyList[T]) Size() int {
	return l.length
}

func (l *SinglyList[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *SinglyList[T]) Front() *SinglyNode[T] {
	return l.head
}

func (l *SinglyList[T]) Back() *SinglyNode[T] {
	return l.tail
}

func (l *SinglyList[T]) PushBack(value T) *SinglyNode[T] {
	node := &SinglyNode[T]{Value: value, linked: true}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.length++
	return node
}

func (l *SinglyList[T]) PushFront(value T) *SinglyNode[T] {
	node := &SinglyNode[T]{Value: value, linked: true, next: l.head}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.length++
	return node
}

// Place value at index. Interior positions are spliced in after the
// predecessor node.
func (l *SinglyList[T]) Insert(index int, value T) error {
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

	prev := l.locate(index - 1)
	prev.next = &SinglyNode[T]{Value: value, linked: true, next: prev.next}
	l.length++
	return nil
}

func (l *SinglyList[T]) Erase(index int) error {
	if index < 0 || index >= l.length {
		return ErrOutOfRange
	}

	var node *SinglyNode[T]
	if index == 0 {
		node = l.head
		l.head = node.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.locate(index - 1)
		node = prev.next
		prev.next = node.next
		if node == l.tail {
			l.tail = prev
		}
	}
	node.unlink()
	l.length--
	return nil
}

func (l *SinglyList[T]) At(index int) (T, error) {
	node, err := l.NodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return node.Value, nil
}

func (l *SinglyList[T]) Set(index int, value T) error {
	node, err := l.NodeAt(index)
	if err != nil {
		return err
	}
	node.Value = value
	return nil
}

func (l *SinglyList[T]) NodeAt(index int) (*SinglyNode[T], error) {
	if index < 0 || index >= l.length {
		return nil, ErrOutOfRange
	}
	return l.locate(index), nil
}

// index must be in range
func (l *SinglyList[T]) locate(index int) *SinglyNode[T] {
	node := l.head
	for i := 0; i < index; i++ {
		node = node.next
	}
	return node
}

func (l *SinglyList[T]) Clear() {
	for l.head != nil {
		node := l.head
		l.head = node.next
		node.unlink()
	}
	l.tail = nil
	l.length = 0
}

// Transfer the chain to a new list, leaving the receiver empty.
func (l *SinglyList[T]) Move() *SinglyList[T] {
	moved := &SinglyList[T]{head: l.head, tail: l.tail, length: l.length}
	l.head = nil
	l.tail = nil
	l.length = 0
	return moved
}

// Replace the receiver's content with src's chain, leaving src empty.
func (l *SinglyList[T]) MoveFrom(src *SinglyList[T]) {
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

func (l *SinglyList[T]) Clone() *SinglyList[T] {
	clone := NewSinglyList[T]()
	for node := l.head; node != nil; node = node.next {
		clone.PushBack(node.Value)
	}
	return clone
}

func (l *SinglyList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

func (l *SinglyList[T]) All() iter.Seq2[int, T] {
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

func (l *SinglyList[T]) String() string {
	var sb strings.Builder
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, node.Value)
	}
	return sb.String()
}

// A forward position within a SinglyList. End() is the zero cursor.
type SinglyCursor[T any] struct {
	node *SinglyNode[T]
}

func (l *SinglyList[T]) Begin() SinglyCursor[T] {
	return SinglyCursor[T]{node: l.head}
}

func (l *SinglyList[T]) End() SinglyCursor[T] {
	return SinglyCursor[T]{}
}

func (c SinglyCursor[T]) Node() *SinglyNode[T] {
	return c.node
}

func (c SinglyCursor[T]) Valid() bool {
	return c.node == nil || c.node.linked
}

func (c SinglyCursor[T]) Value() (T, error) {
	var zero T
	if c.node == nil {
		return zero, ErrOutOfRange
	}
	if !c.node.linked {
		return zero, ErrInvalidCursor
	}
	return c.node.Value, nil
}

func (c SinglyCursor[T]) Set(value T) error {
	if c.node == nil {
		return ErrOutOfRange
	}
	if !c.node.linked {
		return ErrInvalidCursor
	}
	c.node.Value = value
	return nil
}

func (c *SinglyCursor[T]) Next() SinglyCursor[T] {
	if c.node != nil {
		c.node = c.node.next
	}
	return *c
}

func (c *SinglyCursor[T]) PostNext() SinglyCursor[T] {
	previous := *c
	c.Next()
	return previous
}

func (c SinglyCursor[T]) Equal(other SinglyCursor[T]) bool {
	return c.node == other.node
}
