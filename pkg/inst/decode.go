package inst

import "fmt"

// Decode reads the instruction starting at window[0] and returns its
// full description. window must contain at least one byte; it may
// extend beyond the instruction's end (callers typically pass a fixed
// lookahead slice from memory starting at PC). Decode never inspects
// bytes past the instruction's declared length.
//
// Decode returns ErrInvalidOpcode if window[0] does not name a known
// 6800 opcode, and ErrTruncated if window is shorter than the opcode's
// declared length (including the window-is-empty case).
func Decode(window []byte) (Instruction, error) {
	if len(window) == 0 {
		return Instruction{}, ErrTruncated
	}
	info := Catalog[window[0]]
	if info.Op == opCodeInvalid {
		return Instruction{}, fmt.Errorf("%w: 0x%02X", ErrInvalidOpcode, window[0])
	}
	if len(window) < int(info.Length) {
		return Instruction{}, fmt.Errorf("%w: opcode 0x%02X needs %d bytes, got %d", ErrTruncated, window[0], info.Length, len(window))
	}

	in := Instruction{Op: info.Op, Mode: info.Mode, Length: info.Length, Cycles: info.Cycles}
	in.Operands = operandsFor(info.Shape, window)
	return in, nil
}

func operandsFor(shape operandShape, window []byte) []Operand {
	switch shape {
	case shapeNone:
		return nil
	case shapeAccA:
		return []Operand{accA()}
	case shapeAccB:
		return []Operand{accB()}
	case shapeAccAB:
		return []Operand{accA(), accB()}
	case shapeAccBA:
		return []Operand{accB(), accA()}
	case shapeCCRFromA:
		return []Operand{ccr(), accA()}
	case shapeAFromCCR:
		return []Operand{accA(), ccr()}
	case shapeIndex:
		return []Operand{idxX()}
	case shapeCCR:
		return []Operand{ccr()}
	case shapeAccAImm8:
		return []Operand{accA(), imm8(window[1])}
	case shapeAccAImm16:
		return []Operand{accA(), imm16(be16(window[1], window[2]))}
	case shapeAccBImm8:
		return []Operand{accB(), imm8(window[1])}
	case shapeAccBImm16:
		return []Operand{accB(), imm16(be16(window[1], window[2]))}
	case shapeIndexImm8:
		return []Operand{idxX(), imm8(window[1])}
	case shapeIndexImm16:
		return []Operand{idxX(), imm16(be16(window[1], window[2]))}
	case shapeImm8:
		return []Operand{imm8(window[1])}
	case shapeImm16:
		return []Operand{imm16(be16(window[1], window[2]))}
	default:
		return nil
	}
}

func be16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
