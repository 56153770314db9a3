package seq

import (
	"testing"

	"github.com/karlseguin/seq/assert"
)

func Test_SinglyList_Push(t *testing.T) {
	l := NewSinglyList[int]()
	assertSingly(t, l)

	l.PushBack(2)
	assertSingly(t, l, 2)

	l.PushFront(1)
	assertSingly(t, l, 1, 2)

	l.PushBack(3)
	assertSingly(t, l, 1, 2, 3)

	e := NewSinglyList[int]()
	e.PushFront(1)
	assertSingly(t, e, 1)
}

func Test_SinglyList_Insert(t *testing.T) {
	l := SinglyListFrom(1, 2, 3)
	assert.NoError(t, l.Insert(1, 9))
	assertSingly(t, l, 1, 9, 2, 3)

	assert.NoError(t, l.Insert(3, 8))
	assertSingly(t, l, 1, 9, 2, 8, 3)

	assert.NoError(t, l.Insert(0, 7))
	assertSingly(t, l, 7, 1, 9, 2, 8, 3)

	assert.NoError(t, l.Insert(l.Size(), 6))
	assertSingly(t, l, 7, 1, 9, 2, 8, 3, 6)

	assert.Error(t, l.Insert(8, 0), ErrOutOfRange)
	assert.Error(t, l.Insert(-1, 0), ErrOutOfRange)
	assertSingly(t, l, 7, 1, 9, 2, 8, 3, 6)
}

func Test_SinglyList_Erase(t *testing.T) {
	l := SinglyListFrom(1, 2, 3, 4)

	// tail removal moves the tail back
	assert.NoError(t, l.Erase(3))
	assertSingly(t, l, 1, 2, 3)

	assert.NoError(t, l.Erase(1))
	assertSingly(t, l, 1, 3)

	assert.NoError(t, l.Erase(0))
	assertSingly(t, l, 3)

	assert.NoError(t, l.Erase(0))
	assertSingly(t, l)

	assert.Error(t, l.Erase(0), ErrOutOfRange)
	assertSingly(t, l)

	// the list is still usable once emptied
	l.PushBack(5)
	assertSingly(t, l, 5)
}

func Test_SinglyList_EraseOutOfRange(t *testing.T) {
	l := SinglyListFrom(1, 2)
	assert.Error(t, l.Erase(2), ErrOutOfRange)
	assert.Error(t, l.Erase(-1), ErrOutOfRange)
	assertSingly(t, l, 1, 2)
}

func Test_SinglyList_AtAndSet(t *testing.T) {
	l := SinglyListFrom(10, 20, 30)
	v, err := l.At(2)
	assert.NoError(t, err)
	assert.Equal(t, v, 30)

	_, err = l.At(3)
	assert.Error(t, err, ErrOutOfRange)

	assert.NoError(t, l.Set(1, 21))
	assertSingly(t, l, 10, 21, 30)
	assert.Error(t, l.Set(3, 0), ErrOutOfRange)

	node, err := l.NodeAt(1)
	assert.NoError(t, err)
	assert.Equal(t, node.Value, 21)
	_, err = l.NodeAt(3)
	assert.Error(t, err, ErrOutOfRange)
}

func Test_SinglyList_Clear(t *testing.T) {
	l := SinglyListFrom(1, 2, 3)
	node := l.Back()
	l.Clear()
	assertSingly(t, l)
	assert.False(t, node.Linked())
}

func Test_SinglyList_Move(t *testing.T) {
	a := SinglyListFrom(1, 2, 3)
	b := a.Move()
	assertSingly(t, b, 1, 2, 3)
	assertSingly(t, a)

	c := SinglyListFrom(7)
	old := c.Front()
	c.MoveFrom(b)
	assertSingly(t, c, 1, 2, 3)
	assertSingly(t, b)
	assert.False(t, old.Linked())

	c.MoveFrom(c)
	assertSingly(t, c, 1, 2, 3)
}

func Test_SinglyList_Clone(t *testing.T) {
	a := SinglyListFrom("x", "y")
	b := a.Clone()
	b.PushBack("z")
	assertSingly(t, a, "x", "y")
	assertSingly(t, b, "x", "y", "z")
}

func Test_SinglyList_AllAndString(t *testing.T) {
	l := SinglyListFrom(4, 5, 6)
	var seen []int
	for i, v := range l.All() {
		assert.Equal(t, v, i+4)
		seen = append(seen, v)
	}
	assert.List(t, seen, []int{4, 5, 6})
	assert.Equal(t, l.String(), "4 5 6")
	assert.Equal(t, NewSinglyList[int]().String(), "")
}

func Test_SinglyCursor_Iterates(t *testing.T) {
	l := SinglyListFrom(1, 2, 3)
	var seen []int
	for c := l.Begin(); !c.Equal(l.End()); c.Next() {
		v, err := c.Value()
		assert.NoError(t, err)
		seen = append(seen, v)
	}
	assert.List(t, seen, []int{1, 2, 3})
}

func Test_SinglyCursor_EndIsSticky(t *testing.T) {
	l := SinglyListFrom(1)
	c := l.Begin()
	previous := c.PostNext()
	assert.Equal(t, previous.Node(), l.Front())
	assert.True(t, c.Equal(l.End()))
	c.Next()
	assert.True(t, c.Equal(l.End()))
	_, err := c.Value()
	assert.Error(t, err, ErrOutOfRange)
}

func Test_SinglyCursor_SetAndInvalidation(t *testing.T) {
	l := SinglyListFrom(1, 2)
	c := l.Begin()
	assert.NoError(t, c.Set(3))
	assertSingly(t, l, 3, 2)

	l.Erase(0)
	assert.False(t, c.Valid())
	_, err := c.Value()
	assert.Error(t, err, ErrInvalidCursor)
	assert.Error(t, c.Set(4), ErrInvalidCursor)
	assert.Error(t, l.End().Set(4), ErrOutOfRange)
}

func assertSingly[T comparable](t *testing.T, list *SinglyList[T], expected ...T) {
	t.Helper()
	assert.Equal(t, list.Size(), len(expected))
	assert.Equal(t, list.IsEmpty(), len(expected) == 0)

	if len(expected) == 0 {
		assert.Nil(t, list.head)
		assert.Nil(t, list.tail)
		return
	}

	node := list.head
	for _, expected := range expected {
		assert.Equal(t, node.Value, expected)
		if node.next == nil {
			assert.Equal(t, node, list.tail)
		}
		node = node.next
	}
	assert.Nil(t, list.tail.next)
}
