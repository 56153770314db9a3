package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karlseguin/seq"
)

var errUnsupported = errors.New("operation not supported by this container")

// What the demo needs from a container. Each adapter maps the demo's
// operations onto the container's own API.
type sequence interface {
	apply(op operation) error
	// transfers ownership, the receiver is left empty
	move() sequence
	// values visited with the container's cursor, Begin to End
	walk() string
	Size() int
	String() string
}

var containerKinds = map[string]func(values []int) sequence{
	"array": func(values []int) sequence {
		return &arraySequence{seq.From(values...)}
	},
	"list": func(values []int) sequence {
		return &listSequence{seq.ListFrom(values...)}
	},
	"singly": func(values []int) sequence {
		return &singlySequence{seq.SinglyListFrom(values...)}
	},
}

type arraySequence struct {
	*seq.Array[int]
}

func (s *arraySequence) apply(op operation) error {
	switch op.kind {
	case opPushBack:
		return s.PushBack(op.value)
	case opPushFront:
		return s.Insert(0, op.value)
	case opInsert:
		return s.Insert(op.index, op.value)
	case opErase:
		return s.Erase(op.index)
	case opPopBack:
		return s.PopBack()
	case opShrink:
		s.ShrinkToFit()
	case opClear:
		s.Clear()
	default:
		return errUnsupported
	}
	return nil
}

func (s *arraySequence) move() sequence {
	return &arraySequence{s.Move()}
}

type listSequence struct {
	*seq.List[int]
}

func (s *listSequence) apply(op operation) error {
	switch op.kind {
	case opPushBack:
		s.PushBack(op.value)
	case opPushFront:
		s.PushFront(op.value)
	case opInsert:
		return s.Insert(op.index, op.value)
	case opErase:
		return s.Erase(op.index)
	case opPopBack:
		if s.IsEmpty() {
			return seq.ErrEmpty
		}
		return s.Erase(s.Size() - 1)
	case opClear:
		s.Clear()
	default:
		return errUnsupported
	}
	return nil
}

func (s *listSequence) move() sequence {
	return &listSequence{s.Move()}
}

type singlySequence struct {
	*seq.SinglyList[int]
}

func (s *singlySequence) apply(op operation) error {
	switch op.kind {
	case opPushBack:
		s.PushBack(op.value)
	case opPushFront:
		s.PushFront(op.value)
	case opInsert:
		return s.Insert(op.index, op.value)
	case opErase:
		return s.Erase(op.index)
	case opPopBack:
		if s.IsEmpty() {
			return seq.ErrEmpty
		}
		return s.Erase(s.Size() - 1)
	case opClear:
		s.Clear()
	default:
		return errUnsupported
	}
	return nil
}

func (s *singlySequence) move() sequence {
	return &singlySequence{s.Move()}
}

func (s *arraySequence) walk() string {
	var sb strings.Builder
	for c := s.Begin(); !c.Equal(s.End()); c.Next() {
		v, _ := c.Value()
		fmt.Fprintf(&sb, "%d ", v)
	}
	return strings.TrimSuffix(sb.String(), " ")
}

func (s *listSequence) walk() string {
	var sb strings.Builder
	for c := s.Begin(); !c.Equal(s.End()); c.Next() {
		v, _ := c.Value()
		fmt.Fprintf(&sb, "%d ", v)
	}
	return strings.TrimSuffix(sb.String(), " ")
}

func (s *singlySequence) walk() string {
	var sb strings.Builder
	for c := s.Begin(); !c.Equal(s.End()); c.Next() {
		v, _ := c.Value()
		fmt.Fprintf(&sb, "%d ", v)
	}
	return strings.TrimSuffix(sb.String(), " ")
}
