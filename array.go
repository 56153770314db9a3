// Generic sequence containers: a growable array and singly/doubly linked
// lists. None of the containers are thread safe.
package seq

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// A contiguous, index-addressable sequence with amortized O(1) appends.
// An Array owns its buffer. It must not be copied; use Move to transfer
// ownership or Clone to duplicate it.
type Array[T any] struct {
	noCopy noCopy
	data   []T
	length int

	// bumped whenever data is replaced or released
	generation uint64
}

// Create an empty array. Nothing is allocated until the first insert.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// Create an array holding n zero values.
func NewSized[T any](n int) *Array[T] {
	if n <= 0 {
		return &Array[T]{}
	}
	return &Array[T]{
		data:   make([]T, n),
		length: n,
	}
}

// Create an array from the given values. The capacity is exactly len(values).
func From[T any](values ...T) *Array[T] {
	a := &Array[T]{}
	if len(values) == 0 {
		return a
	}
	a.data = make([]T, len(values))
	copy(a.data, values)
	a.length = len(values)
	return a
}

func (a *Array[T]) Size() int {
	return a.length
}

func (a *Array[T]) Capacity() int {
	return len(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// Bounds-checked read. Identical to Get.
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, ErrOutOfRange
	}
	return a.data[index], nil
}

func (a *Array[T]) Get(index int) (T, error) {
	return a.At(index)
}

// Bounds-checked write.
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.length {
		return ErrOutOfRange
	}
	a.data[index] = value
	return nil
}

// Append value, doubling the capacity when the array is full.
func (a *Array[T]) PushBack(value T) error {
	if err := a.ensureRoom(); err != nil {
		return err
	}
	a.data[a.length] = value
	a.length++
	return nil
}

// Place value at index, shifting [index, Size()) one slot to the right.
// index == Size() appends.
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.length {
		return ErrOutOfRange
	}
	if err := a.ensureRoom(); err != nil {
		return err
	}
	copy(a.data[index+1:a.length+1], a.data[index:a.length])
	a.data[index] = value
	a.length++
	return nil
}

// Remove the element at index, shifting the tail one slot to the left.
func (a *Array[T]) Erase(index int) error {
	if index < 0 || index >= a.length {
		return ErrOutOfRange
	}
	copy(a.data[index:a.length-1], a.data[index+1:a.length])
	a.vacateLast()
	return nil
}

func (a *Array[T]) PopBack() error {
	if a.length == 0 {
		return ErrEmpty
	}
	a.vacateLast()
	return nil
}

// Grow the buffer to hold at least capacity elements. Existing elements
// are kept in order. Asking for less than the current capacity does nothing.
func (a *Array[T]) Reserve(capacity int) error {
	return a.grow(capacity)
}

// Reduce the capacity to Size(). An empty array releases its buffer.
func (a *Array[T]) ShrinkToFit() {
	if a.length == 0 {
		a.release()
		return
	}
	if a.length == len(a.data) {
		return
	}
	data := make([]T, a.length)
	copy(data, a.data[:a.length])
	a.data = data
	a.generation++
}

// Remove every element and release the buffer.
func (a *Array[T]) Clear() {
	a.release()
}

// Transfer the buffer to a new array. The receiver is left empty with
// no buffer.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{data: a.data, length: a.length}
	a.data = nil
	a.length = 0
	a.generation++
	return moved
}

// Replace the receiver's content with src's buffer, leaving src empty.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.data = src.data
	a.length = src.length
	a.generation++
	src.data = nil
	src.length = 0
	src.generation++
}

// Deep copy. The clone's capacity equals its size.
func (a *Array[T]) Clone() *Array[T] {
	return From(a.data[:a.length]...)
}

// Copy of the live elements.
func (a *Array[T]) Values() []T {
	values := make([]T, a.length)
	copy(values, a.data[:a.length])
	return values
}

func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Space separated elements.
func (a *Array[T]) String() string {
	var sb strings.Builder
	for i := 0; i < a.length; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, a.data[i])
	}
	return sb.String()
}

func (a *Array[T]) ensureRoom() error {
	if a.length < len(a.data) {
		return nil
	}
	capacity := len(a.data)
	if capacity == 0 {
		return a.grow(1)
	}
	if capacity > math.MaxInt/2 {
		return ErrCapacityOverflow
	}
	return a.grow(capacity * 2)
}

// The only place a larger buffer is created. The new buffer is allocated
// and filled before the array switches to it, so a failure leaves the
// array untouched.
func (a *Array[T]) grow(capacity int) error {
	if capacity <= len(a.data) {
		return nil
	}
	data, err := allocate[T](capacity)
	if err != nil {
		return err
	}
	copy(data, a.data[:a.length])
	a.data = data
	a.generation++
	return nil
}

func (a *Array[T]) vacateLast() {
	a.length--
	var zero T
	a.data[a.length] = zero
}

func (a *Array[T]) release() {
	a.data = nil
	a.length = 0
	a.generation++
}

// make panics when the requested size can't be represented for T.
func allocate[T any](capacity int) (data []T, err error) {
	defer func() {
		if recover() != nil {
			data = nil
			err = ErrCapacityOverflow
		}
	}()
	return make([]T, capacity), nil
}
