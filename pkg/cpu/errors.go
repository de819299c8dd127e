package cpu

import (
	"errors"
	"fmt"
)

// ErrNoMemory is returned by Step when no Memory has been attached via
// AttachMemory.
var ErrNoMemory = errors.New("cpu: no memory attached")

// DecodeError wraps a decode failure encountered while fetching the
// instruction at the current PC.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: decode at PC: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
