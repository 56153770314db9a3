package seq

// A forward position within an Array.
//
// A cursor is invalidated by any operation that replaces or releases the
// array's buffer: PushBack or Insert past capacity, Reserve, ShrinkToFit,
// Clear, Move and MoveFrom. Value and Set on such a cursor return
// ErrInvalidCursor. Insert and Erase that don't reallocate shift the
// elements at or after the affected index; cursors there still
// dereference but may observe a different element.
type ArrayCursor[T any] struct {
	array      *Array[T]
	position   int
	generation uint64
}

func (a *Array[T]) Begin() ArrayCursor[T] {
	return a.cursor(0)
}

// One past the last element. Dereferencing it returns ErrOutOfRange.
func (a *Array[T]) End() ArrayCursor[T] {
	return a.cursor(a.length)
}

func (a *Array[T]) cursor(position int) ArrayCursor[T] {
	return ArrayCursor[T]{
		array:      a,
		position:   position,
		generation: a.generation,
	}
}

// Valid reports whether the cursor still refers to a slot of the buffer it
// was created on. End cursors are valid.
func (c ArrayCursor[T]) Valid() bool {
	return c.array != nil && c.generation == c.array.generation && c.position <= c.array.length
}

func (c ArrayCursor[T]) Position() int {
	return c.position
}

func (c ArrayCursor[T]) Value() (T, error) {
	var zero T
	if !c.Valid() {
		return zero, ErrInvalidCursor
	}
	if c.position == c.array.length {
		return zero, ErrOutOfRange
	}
	return c.array.data[c.position], nil
}

func (c ArrayCursor[T]) Set(value T) error {
	if !c.Valid() {
		return ErrInvalidCursor
	}
	if c.position == c.array.length {
		return ErrOutOfRange
	}
	c.array.data[c.position] = value
	return nil
}

// Advance and return the advanced cursor.
func (c *ArrayCursor[T]) Next() ArrayCursor[T] {
	c.position++
	return *c
}

// Advance and return the cursor as it was before advancing.
func (c *ArrayCursor[T]) PostNext() ArrayCursor[T] {
	previous := *c
	c.position++
	return previous
}

// Two cursors are equal when they point at the same position of the same
// array. Equal doesn't look at validity: a cursor invalidated by a
// reallocation still equals a fresh cursor at the same position. Use Valid
// for that.
func (c ArrayCursor[T]) Equal(other ArrayCursor[T]) bool {
	return c.array == other.array && c.position == other.position
}
