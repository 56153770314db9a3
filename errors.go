package seq

import "errors"

var (
	ErrOutOfRange       = errors.New("index out of range")
	ErrEmpty            = errors.New("container is empty")
	ErrInvalidCursor    = errors.New("cursor invalidated")
	ErrCapacityOverflow = errors.New("capacity overflow")
)

// Embedded in containers that own their storage. go vet's copylocks
// check reports any copy of a value holding one.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
