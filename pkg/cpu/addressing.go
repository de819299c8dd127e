package cpu

import (
	"github.com/oisee/m6800/pkg/inst"
	"github.com/oisee/m6800/pkg/memory"
)

// access is the resolved result of an addressing mode: an optional
// memory address (for modes that reference memory) and an optional
// value already fetched. hasAddress/hasValue distinguish "zero" from
// "absent" since 0 is a legal address and a legal value.
type access struct {
	address    uint16
	hasAddress bool
	value      uint8
	hasValue   bool
}

// resolve computes an access for the addressing mode described by in,
// reading through mem where the mode requires a memory fetch. pc is
// the PC of the instruction itself (before any advance), needed by
// Relative mode's target arithmetic. s supplies the live X register
// for Indexed mode and the live accumulators for Accumulator mode.
func resolve(s *State, in inst.Instruction, mem memory.Memory, pc uint16) access {
	switch in.Mode {
	case inst.Immediate:
		return access{value: immediateOperand(in), hasValue: true}
	case inst.Direct:
		addr := uint16(immediateOperand(in))
		return access{address: addr, hasAddress: true, value: mem.Read(addr, 1)[0], hasValue: true}
	case inst.Extended:
		addr := immediateOperand16(in)
		return access{address: addr, hasAddress: true, value: mem.Read(addr, 1)[0], hasValue: true}
	case inst.Indexed:
		addr := s.X + uint16(immediateOperand(in))
		return access{address: addr, hasAddress: true, value: mem.Read(addr, 1)[0], hasValue: true}
	case inst.Relative:
		offset := int8(immediateOperand(in))
		target := uint16(int32(pc) + 2 + int32(offset))
		return access{address: target, hasAddress: true}
	case inst.Accumulator:
		return access{value: readAccumulator(s, in), hasValue: true}
	default: // Inherent
		return access{}
	}
}

// immediateOperand returns the last Immediate8 operand in the
// instruction's operand sequence: the raw displacement/value byte.
func immediateOperand(in inst.Instruction) uint8 {
	for i := len(in.Operands) - 1; i >= 0; i-- {
		if in.Operands[i].Kind == inst.OperandImmediate8 {
			return in.Operands[i].Imm8
		}
	}
	return 0
}

// immediateOperand16 returns the Immediate16 operand: the full address
// for Extended mode, or the 16-bit immediate for LDS/LDX/CPX/immediate.
func immediateOperand16(in inst.Instruction) uint16 {
	for _, op := range in.Operands {
		if op.Kind == inst.OperandImmediate16 {
			return op.Imm16
		}
	}
	return 0
}

// readAccumulator and writeAccumulator are the single place operand
// identity is translated to a register read/write, so per-opcode
// handlers never branch on which accumulator an instruction names.
func readAccumulator(s *State, in inst.Instruction) uint8 {
	if len(in.Operands) > 0 && in.Operands[0].Kind == inst.OperandAccumulatorB {
		return s.B
	}
	return s.A
}

func writeAccumulator(s *State, in inst.Instruction, v uint8) {
	if len(in.Operands) > 0 && in.Operands[0].Kind == inst.OperandAccumulatorB {
		s.B = v
		return
	}
	s.A = v
}
