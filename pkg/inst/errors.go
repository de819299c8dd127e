package inst

import "errors"

// ErrInvalidOpcode is returned when the first byte of a decode window is
// not a recognized 6800 opcode.
var ErrInvalidOpcode = errors.New("inst: invalid opcode")

// ErrTruncated is returned when the decode window is shorter than the
// instruction's declared length, including the empty-window case.
var ErrTruncated = errors.New("inst: truncated instruction")
