package inst

// operandShape names the fixed operand pattern a catalog entry expands
// to in Decode. It exists so the grouped literal tables below can stay
// opcode-family-shaped while the actual Operand slice construction
// lives in one place in decode.go.
type operandShape uint8

const (
	shapeNone operandShape = iota
	shapeAccA
	shapeAccB
	shapeAccAB // target A, source B: ABA (A += B)
	shapeAccBA // target B, source A: TAB (B = A)
	shapeCCRFromA
	shapeAFromCCR
	shapeIndex
	shapeCCR
	shapeAccAImm8
	shapeAccAImm16
	shapeAccBImm8
	shapeAccBImm16
	shapeIndexImm8
	shapeIndexImm16
	shapeImm8
	shapeImm16
)

// Info is the static, fully-resolved metadata for one opcode byte: the
// mnemonic it names, the addressing mode it uses, its total encoded
// length in bytes, its informational cycle count, and the operand
// shape Decode expands it to.
type Info struct {
	Op     OpCode
	Mode   AddressingMode
	Length uint8
	Cycles uint8
	Shape  operandShape
}

// Catalog is indexed by the raw opcode byte. A zero-value Info (Op ==
// opCodeInvalid) marks an unassigned byte; Decode reports
// ErrInvalidOpcode for those.
var Catalog [256]Info

func assign(opcode uint8, op OpCode, mode AddressingMode, length, cycles uint8, shape operandShape) {
	Catalog[opcode] = Info{Op: op, Mode: mode, Length: length, Cycles: cycles, Shape: shape}
}

func init() {
	// Inherent, no operand bytes, no register named in the operand list.
	inherentNone := []struct {
		opcode uint8
		op     OpCode
		cycles uint8
	}{
		{0x01, NOP, 2},
		{0x39, RTS, 5},
	}
	for _, e := range inherentNone {
		assign(e.opcode, e.op, Inherent, 1, e.cycles, shapeNone)
	}

	// Inherent, register-to-register / register-to-CCR transfers.
	inherentTransfer := []struct {
		opcode uint8
		op     OpCode
		shape  operandShape
	}{
		{0x06, TAP, shapeCCRFromA},
		{0x07, TPA, shapeAFromCCR},
		{0x10, SBA, shapeAccAB},
		{0x16, TAB, shapeAccBA},
		{0x17, TBA, shapeAccAB},
		{0x19, DAA, shapeAccA},
		{0x1B, ABA, shapeAccAB},
	}
	for _, e := range inherentTransfer {
		assign(e.opcode, e.op, Inherent, 1, 2, e.shape)
	}

	// Inherent, index/stack register plumbing.
	inherentIndex := []struct {
		opcode uint8
		op     OpCode
	}{
		{0x08, INX},
		{0x09, DEX},
		{0x30, TSX},
		{0x35, TXS},
	}
	for _, e := range inherentIndex {
		assign(e.opcode, e.op, Inherent, 1, 4, shapeIndex)
	}

	// Inherent, flag-register-only ops. Carried as a uniform
	// shapeCCR so each of these flag ops names CCR in its operand
	// list, even though the bit it sets is implied by Op.
	inherentFlags := []struct {
		opcode uint8
		op     OpCode
	}{
		{0x0A, CLV}, {0x0B, SEV}, {0x0C, CLC}, {0x0D, SEC}, {0x0E, CLI}, {0x0F, SEI},
	}
	for _, e := range inherentFlags {
		assign(e.opcode, e.op, Inherent, 1, 2, shapeCCR)
	}

	// Stack push/pull, inherent addressing, one accumulator apiece.
	assign(0x32, PUL, Inherent, 1, 4, shapeAccA)
	assign(0x33, PUL, Inherent, 1, 4, shapeAccB)
	assign(0x36, PSH, Inherent, 1, 4, shapeAccA)
	assign(0x37, PSH, Inherent, 1, 4, shapeAccB)

	// Accumulator-mode read-modify-write: operates on A or B directly,
	// no memory reference. Same mnemonic set and byte offsets repeat
	// for the indexed/extended memory form below.
	rmwOps := []OpCode{NEG, COM, LSR, ROR, ASR, ASL, ROL, DEC, INC, TST, CLR}
	rmwOffsets := []uint8{0x00, 0x03, 0x04, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0C, 0x0D, 0x0F}
	for i, op := range rmwOps {
		assign(0x40+rmwOffsets[i], op, Accumulator, 1, 2, shapeAccA)
		assign(0x50+rmwOffsets[i], op, Accumulator, 1, 2, shapeAccB)
	}

	// Memory read-modify-write, indexed and extended: same mnemonics
	// as above acting through an address, plus JMP (control flow, no
	// read-modify-write, but same addressing-byte layout).
	memOps := []OpCode{NEG, COM, LSR, ROR, ASR, ASL, ROL, DEC, INC, TST, JMP, CLR}
	memOffsets := []uint8{0x00, 0x03, 0x04, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0C, 0x0D, 0x0E, 0x0F}
	memIndexedCycles := []uint8{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 4, 7}
	memExtendedCycles := []uint8{6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 3, 6}
	for i, op := range memOps {
		assign(0x60+memOffsets[i], op, Indexed, 2, memIndexedCycles[i], shapeImm8)
		assign(0x70+memOffsets[i], op, Extended, 3, memExtendedCycles[i], shapeImm16)
	}

	// Relative branches, all two bytes, all 4 cycles.
	branches := []struct {
		opcode uint8
		op     OpCode
	}{
		{0x20, BRA}, {0x22, BHI}, {0x23, BLS}, {0x24, BCC}, {0x25, BCS},
		{0x26, BNE}, {0x27, BEQ}, {0x28, BVC}, {0x29, BVS}, {0x2A, BPL},
		{0x2B, BMI}, {0x2C, BGE}, {0x2D, BLT}, {0x2E, BGT}, {0x2F, BLE},
	}
	for _, e := range branches {
		assign(e.opcode, e.op, Relative, 2, 4, shapeImm8)
	}

	// Accumulator-A arithmetic/logical family: immediate, direct,
	// indexed, extended.
	accAFamily := []struct {
		op                                         OpCode
		immOpcode, dirOpcode, idxOpcode, extOpcode uint8
	}{
		{SUB, 0x80, 0x90, 0xA0, 0xB0},
		{CMP, 0x81, 0x91, 0xA1, 0xB1},
		{SBC, 0x82, 0x92, 0xA2, 0xB2},
		{AND, 0x84, 0x94, 0xA4, 0xB4},
		{BIT, 0x85, 0x95, 0xA5, 0xB5},
		{LDA, 0x86, 0x96, 0xA6, 0xB6},
		{EOR, 0x88, 0x98, 0xA8, 0xB8},
		{ADC, 0x89, 0x99, 0xA9, 0xB9},
		{ORA, 0x8A, 0x9A, 0xAA, 0xBA},
		{ADD, 0x8B, 0x9B, 0xAB, 0xBB},
	}
	for _, e := range accAFamily {
		assign(e.immOpcode, e.op, Immediate, 2, 2, shapeAccAImm8)
		assign(e.dirOpcode, e.op, Direct, 2, 3, shapeAccAImm8)
		assign(e.idxOpcode, e.op, Indexed, 2, 5, shapeAccAImm8)
		assign(e.extOpcode, e.op, Extended, 3, 4, shapeAccAImm16)
	}
	// STA has no immediate encoding; there is nothing to store an
	// immediate into.
	assign(0x97, STA, Direct, 2, 4, shapeAccAImm8)
	assign(0xA7, STA, Indexed, 2, 6, shapeAccAImm8)
	assign(0xB7, STA, Extended, 3, 5, shapeAccAImm16)

	// Accumulator-B mirror of the family above.
	accBFamily := []struct {
		op                                         OpCode
		immOpcode, dirOpcode, idxOpcode, extOpcode uint8
	}{
		{SUB, 0xC0, 0xD0, 0xE0, 0xF0},
		{CMP, 0xC1, 0xD1, 0xE1, 0xF1},
		{SBC, 0xC2, 0xD2, 0xE2, 0xF2},
		{AND, 0xC4, 0xD4, 0xE4, 0xF4},
		{BIT, 0xC5, 0xD5, 0xE5, 0xF5},
		{LDA, 0xC6, 0xD6, 0xE6, 0xF6},
		{EOR, 0xC8, 0xD8, 0xE8, 0xF8},
		{ADC, 0xC9, 0xD9, 0xE9, 0xF9},
		{ORA, 0xCA, 0xDA, 0xEA, 0xFA},
		{ADD, 0xCB, 0xDB, 0xEB, 0xFB},
	}
	for _, e := range accBFamily {
		assign(e.immOpcode, e.op, Immediate, 2, 2, shapeAccBImm8)
		assign(e.dirOpcode, e.op, Direct, 2, 3, shapeAccBImm8)
		assign(e.idxOpcode, e.op, Indexed, 2, 5, shapeAccBImm8)
		assign(e.extOpcode, e.op, Extended, 3, 4, shapeAccBImm16)
	}
	assign(0xD7, STA, Direct, 2, 4, shapeAccBImm8)
	assign(0xE7, STA, Indexed, 2, 6, shapeAccBImm8)
	assign(0xF7, STA, Extended, 3, 5, shapeAccBImm16)

	// 16-bit index/stack-pointer family: CPX, LDS/STS, LDX/STX, and
	// the control-flow BSR/JSR pair that share the accumulator-A page.
	// Cycle counts follow the same IMM/DIR/IND/EXT deltas as the 8-bit
	// load family above (DIR=IMM+1, IND=IMM+3, EXT=IMM+2); STS/STX cost
	// one cycle more than LDS/LDX in every shared mode.
	assign(0x8C, CPX, Immediate, 3, 3, shapeIndexImm16)
	assign(0x9C, CPX, Direct, 2, 4, shapeIndexImm8)
	assign(0xAC, CPX, Indexed, 2, 6, shapeIndexImm8)
	assign(0xBC, CPX, Extended, 3, 5, shapeIndexImm16)

	assign(0x8D, BSR, Relative, 2, 8, shapeImm8)
	assign(0xAD, JSR, Indexed, 2, 8, shapeImm8)
	assign(0xBD, JSR, Extended, 3, 9, shapeImm16)

	assign(0x8E, LDS, Immediate, 3, 3, shapeIndexImm16)
	assign(0x9E, LDS, Direct, 2, 4, shapeIndexImm8)
	assign(0xAE, LDS, Indexed, 2, 6, shapeIndexImm8)
	assign(0xBE, LDS, Extended, 3, 5, shapeIndexImm16)

	assign(0x9F, STS, Direct, 2, 5, shapeIndexImm8)
	assign(0xAF, STS, Indexed, 2, 7, shapeIndexImm8)
	assign(0xBF, STS, Extended, 3, 6, shapeIndexImm16)

	assign(0xCE, LDX, Immediate, 3, 3, shapeIndexImm16)
	assign(0xDE, LDX, Direct, 2, 4, shapeIndexImm8)
	assign(0xEE, LDX, Indexed, 2, 6, shapeIndexImm8)
	assign(0xFE, LDX, Extended, 3, 5, shapeIndexImm16)

	assign(0xDF, STX, Direct, 2, 5, shapeIndexImm8)
	assign(0xEF, STX, Indexed, 2, 7, shapeIndexImm8)
	assign(0xFF, STX, Extended, 3, 6, shapeIndexImm16)
}
