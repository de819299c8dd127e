package inst

import "fmt"

// OperandKind identifies the shape of a single element of an
// Instruction's Operands sequence.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandAccumulatorA
	OperandAccumulatorB
	OperandIndexRegister
	OperandConditionCodes
	OperandImmediate8
	OperandImmediate16
)

// Operand is one element of an Instruction's operand sequence: either a
// named register (the target/source the opcode implies) or a raw
// immediate/displacement byte pair taken verbatim from the instruction
// stream.
type Operand struct {
	Kind  OperandKind
	Imm8  uint8
	Imm16 uint16
}

func accA() Operand          { return Operand{Kind: OperandAccumulatorA} }
func accB() Operand          { return Operand{Kind: OperandAccumulatorB} }
func idxX() Operand          { return Operand{Kind: OperandIndexRegister} }
func ccr() Operand           { return Operand{Kind: OperandConditionCodes} }
func imm8(v uint8) Operand   { return Operand{Kind: OperandImmediate8, Imm8: v} }
func imm16(v uint16) Operand { return Operand{Kind: OperandImmediate16, Imm16: v} }

func (o Operand) String() string {
	switch o.Kind {
	case OperandAccumulatorA:
		return "A"
	case OperandAccumulatorB:
		return "B"
	case OperandIndexRegister:
		return "X"
	case OperandConditionCodes:
		return "CCR"
	case OperandImmediate8:
		return fmt.Sprintf("#$%02X", o.Imm8)
	case OperandImmediate16:
		return fmt.Sprintf("$%04X", o.Imm16)
	default:
		return "-"
	}
}

// Instruction is the decoded description of one instruction: identity,
// addressing mode, size, declared cycle count, and its raw operand
// bytes. It is a pure value produced by Decode and consumed by a single
// Executor.Step call; it carries no memory or register state of its own.
type Instruction struct {
	Op       OpCode
	Mode     AddressingMode
	Length   uint8
	Cycles   uint8
	Operands []Operand
}

func (in Instruction) String() string {
	s := in.Op.String()
	for _, o := range in.Operands {
		s += " " + o.String()
	}
	return s
}
