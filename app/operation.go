package main

import "fmt"

type opKind int32

const (
	opPushBack opKind = iota
	opPushFront
	opInsert
	opErase
	opPopBack
	opShrink
	opClear
	opMove
	opIterate
)

var opKinds = map[string]opKind{
	"push_back":  opPushBack,
	"push_front": opPushFront,
	"insert":     opInsert,
	"erase":      opErase,
	"pop_back":   opPopBack,
	"shrink":     opShrink,
	"clear":      opClear,
	"move":       opMove,
	"iterate":    opIterate,
}

type operation struct {
	kind  opKind
	index int
	value int
}

func parseOperation(s step) (operation, error) {
	kind, ok := opKinds[s.Op]
	if !ok {
		return operation{}, fmt.Errorf("unknown operation %q", s.Op)
	}
	return operation{kind: kind, index: s.Index, value: s.Value}, nil
}

func (o operation) String() string {
	switch o.kind {
	case opPushBack:
		return fmt.Sprintf("push_back(%d)", o.value)
	case opPushFront:
		return fmt.Sprintf("push_front(%d)", o.value)
	case opInsert:
		return fmt.Sprintf("insert(%d, %d)", o.index, o.value)
	case opErase:
		return fmt.Sprintf("erase(%d)", o.index)
	case opPopBack:
		return "pop_back()"
	case opShrink:
		return "shrink_to_fit()"
	case opClear:
		return "clear()"
	case opIterate:
		return "iterate()"
	default:
		return "move()"
	}
}
