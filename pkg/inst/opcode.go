// Package inst decodes raw Motorola 6800 machine code into a structured
// instruction description. It has no knowledge of registers or memory
// contents; Decode is a pure function of a short byte window.
package inst

// OpCode identifies a 6800 mnemonic, independent of which accumulator or
// addressing mode a particular encoding of it uses. The 6800 encodes the
// target accumulator (A or B) as a different opcode byte for the same
// mnemonic (e.g. SUBA and SUBB); the decoded Instruction carries that
// distinction in its Operands, not in OpCode, so handlers in pkg/cpu
// dispatch once per mnemonic rather than once per accumulator.
type OpCode uint8

const (
	opCodeInvalid OpCode = iota

	// Arithmetic
	ADD
	ADC
	ABA
	SUB
	SBC
	SBA
	NEG
	INC
	DEC
	INX
	DEX
	CLR
	CMP
	CPX
	DAA

	// Logical
	AND
	ORA
	EOR
	COM
	BIT
	TST

	// Shift/rotate
	ASL
	ASR
	LSR
	ROL
	ROR

	// Data movement
	LDA
	STA
	LDS
	STS
	LDX
	STX
	TAB
	TBA
	TAP
	TPA
	TSX
	TXS
	PSH
	PUL

	// Control flow
	JMP
	JSR
	BSR
	RTS
	BRA
	BCC
	BCS
	BEQ
	BNE
	BMI
	BPL
	BVS
	BVC
	BGE
	BGT
	BHI
	BLE
	BLS
	BLT

	// Flag ops
	CLC
	SEC
	CLI
	SEI
	CLV
	SEV

	// Misc
	NOP

	opCodeCount
)

var mnemonics = [opCodeCount]string{
	opCodeInvalid: "???",
	ADD: "ADD", ADC: "ADC", ABA: "ABA", SUB: "SUB", SBC: "SBC", SBA: "SBA",
	NEG: "NEG", INC: "INC", DEC: "DEC", INX: "INX", DEX: "DEX", CLR: "CLR",
	CMP: "CMP", CPX: "CPX", DAA: "DAA",
	AND: "AND", ORA: "ORA", EOR: "EOR", COM: "COM", BIT: "BIT", TST: "TST",
	ASL: "ASL", ASR: "ASR", LSR: "LSR", ROL: "ROL", ROR: "ROR",
	LDA: "LDA", STA: "STA", LDS: "LDS", STS: "STS", LDX: "LDX", STX: "STX",
	TAB: "TAB", TBA: "TBA", TAP: "TAP", TPA: "TPA", TSX: "TSX", TXS: "TXS",
	PSH: "PSH", PUL: "PUL",
	JMP: "JMP", JSR: "JSR", BSR: "BSR", RTS: "RTS", BRA: "BRA",
	BCC: "BCC", BCS: "BCS", BEQ: "BEQ", BNE: "BNE", BMI: "BMI", BPL: "BPL",
	BVS: "BVS", BVC: "BVC", BGE: "BGE", BGT: "BGT", BHI: "BHI", BLE: "BLE",
	BLS: "BLS", BLT: "BLT",
	CLC: "CLC", SEC: "SEC", CLI: "CLI", SEI: "SEI", CLV: "CLV", SEV: "SEV",
	NOP: "NOP",
}

// String returns the bare mnemonic, e.g. "SUB". It does not indicate which
// accumulator or addressing mode a particular Instruction used; combine
// with Instruction.String for that.
func (op OpCode) String() string {
	if int(op) >= len(mnemonics) || mnemonics[op] == "" {
		return "???"
	}
	return mnemonics[op]
}

// AddressingMode is one of the seven 6800 addressing modes.
type AddressingMode uint8

const (
	Inherent AddressingMode = iota
	Accumulator
	Immediate
	Direct
	Extended
	Indexed
	Relative
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Extended:
		return "Extended"
	case Indexed:
		return "Indexed"
	case Relative:
		return "Relative"
	default:
		return "Unknown"
	}
}
