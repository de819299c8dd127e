// Package cpu holds the processor state and the single Step dispatch
// that performs one 6800 instruction against an attached Memory.
package cpu

import (
	"github.com/oisee/m6800/pkg/inst"
	"github.com/oisee/m6800/pkg/memory"
)

// Executor holds register state and a reference to Memory. It steps
// one instruction at a time: fetch, decode, dispatch to a handler
// keyed by opcode, advance state.
type Executor struct {
	regs State
	mem  memory.Memory
}

// New returns an Executor with all registers zeroed and no memory
// attached.
func New() *Executor {
	return &Executor{}
}

// AttachMemory binds the Memory the Executor borrows for each Step.
func (e *Executor) AttachMemory(mem memory.Memory) {
	e.mem = mem
}

// SetPC sets the program counter directly, e.g. to load an entry point.
func (e *Executor) SetPC(pc uint16) {
	e.regs.PC = pc
}

// State returns a copy of the current register file.
func (e *Executor) State() State {
	return e.regs
}

// Step decodes and executes one instruction at the current PC. On
// success it returns the decoded instruction and advances PC (or, for
// control-flow instructions, leaves PC wherever the instruction set
// it). On error, register and memory state are left unchanged.
func (e *Executor) Step() (inst.Instruction, error) {
	if e.mem == nil {
		return inst.Instruction{}, ErrNoMemory
	}
	window := e.mem.Read(e.regs.PC, 3)
	in, err := inst.Decode(window)
	if err != nil {
		return inst.Instruction{}, &DecodeError{Err: err}
	}

	pcAtFetch := e.regs.PC
	controlFlow := e.execute(in, pcAtFetch)
	if !controlFlow {
		e.regs.PC = pcAtFetch + uint16(in.Length)
	}
	return in, nil
}

// execute performs in's operation, mutating registers and memory. It
// reports whether the instruction manages PC itself (branches, jumps,
// calls, returns), in which case Step must not apply the default
// PC-advance rule.
func (e *Executor) execute(in inst.Instruction, pc uint16) (controlFlow bool) {
	acc := resolve(&e.regs, in, e.mem, pc)

	switch in.Op {
	// --- Arithmetic, accumulator-targeted ---
	case inst.ADD:
		a := readAccumulator(&e.regs, in)
		writeAccumulator(&e.regs, in, execAddOp(&e.regs, a, acc.value, false))
	case inst.ADC:
		a := readAccumulator(&e.regs, in)
		writeAccumulator(&e.regs, in, execAddOp(&e.regs, a, acc.value, e.regs.getFlag(FlagC)))
	case inst.ABA:
		e.regs.A = execAddOp(&e.regs, e.regs.A, e.regs.B, false)
	case inst.SUB:
		a := readAccumulator(&e.regs, in)
		writeAccumulator(&e.regs, in, execSubOp(&e.regs, a, acc.value, false))
	case inst.SBC:
		a := readAccumulator(&e.regs, in)
		writeAccumulator(&e.regs, in, execSubOp(&e.regs, a, acc.value, e.regs.getFlag(FlagC)))
	case inst.SBA:
		e.regs.A = execSubOp(&e.regs, e.regs.A, e.regs.B, false)
	case inst.CMP:
		a := readAccumulator(&e.regs, in)
		execSubOp(&e.regs, a, acc.value, false)
	case inst.DAA:
		e.regs.A = execDaa(&e.regs, e.regs.A)

	// --- Logical, accumulator-targeted ---
	case inst.AND:
		a := readAccumulator(&e.regs, in)
		r := a & acc.value
		writeAccumulator(&e.regs, in, r)
		applyLogical8(&e.regs, r)
	case inst.ORA:
		a := readAccumulator(&e.regs, in)
		r := a | acc.value
		writeAccumulator(&e.regs, in, r)
		applyLogical8(&e.regs, r)
	case inst.EOR:
		a := readAccumulator(&e.regs, in)
		r := a ^ acc.value
		writeAccumulator(&e.regs, in, r)
		applyLogical8(&e.regs, r)
	case inst.BIT:
		a := readAccumulator(&e.regs, in)
		applyLogical8(&e.regs, a&acc.value)
	case inst.LDA:
		writeAccumulator(&e.regs, in, acc.value)
		applyLogical8(&e.regs, acc.value)
	case inst.STA:
		a := readAccumulator(&e.regs, in)
		e.mem.Write(acc.address, []byte{a})
		applyLogical8(&e.regs, a)

	// --- Read-modify-write: accumulator or memory target ---
	case inst.NEG:
		e.rmw8(in, acc, func(v uint8) uint8 {
			r := uint8(0 - uint16(v))
			applyNeg8(&e.regs, r)
			return r
		})
	case inst.COM:
		e.rmw8(in, acc, func(v uint8) uint8 {
			r := ^v
			applyCom8(&e.regs, r)
			return r
		})
	case inst.INC:
		e.rmw8(in, acc, func(v uint8) uint8 {
			r := v + 1
			applyInc8(&e.regs, r)
			return r
		})
	case inst.DEC:
		e.rmw8(in, acc, func(v uint8) uint8 {
			r := v - 1
			applyDec8(&e.regs, r)
			return r
		})
	case inst.CLR:
		e.rmw8(in, acc, func(uint8) uint8 {
			applyTest8(&e.regs, 0)
			return 0
		})
	case inst.TST:
		applyTest8(&e.regs, acc.value)
	case inst.ASL:
		e.rmw8(in, acc, func(v uint8) uint8 { return execAsl8(&e.regs, v) })
	case inst.ASR:
		e.rmw8(in, acc, func(v uint8) uint8 { return execAsr8(&e.regs, v) })
	case inst.LSR:
		e.rmw8(in, acc, func(v uint8) uint8 { return execLsr8(&e.regs, v) })
	case inst.ROL:
		e.rmw8(in, acc, func(v uint8) uint8 { return execRol8(&e.regs, v) })
	case inst.ROR:
		e.rmw8(in, acc, func(v uint8) uint8 { return execRor8(&e.regs, v) })

	// --- 16-bit index/stack family ---
	case inst.CPX:
		operand := e.operand16(in, acc)
		r := e.regs.X - operand
		applyCpx16(&e.regs, e.regs.X, operand, r)
	case inst.LDX:
		e.regs.X = e.operand16(in, acc)
		applyLoad16(&e.regs, e.regs.X)
	case inst.STX:
		e.mem.Write(acc.address, []byte{uint8(e.regs.X >> 8), uint8(e.regs.X)})
		applyLoad16(&e.regs, e.regs.X)
	case inst.LDS:
		e.regs.SP = e.operand16(in, acc)
		applyLoad16(&e.regs, e.regs.SP)
	case inst.STS:
		e.mem.Write(acc.address, []byte{uint8(e.regs.SP >> 8), uint8(e.regs.SP)})
		applyLoad16(&e.regs, e.regs.SP)
	case inst.INX:
		e.regs.X++
		e.regs.setFlag(FlagZ, e.regs.X == 0)
	case inst.DEX:
		e.regs.X--
		e.regs.setFlag(FlagZ, e.regs.X == 0)

	// --- Data movement / transfer ---
	case inst.TAB:
		e.regs.B = e.regs.A
		applyLogical8(&e.regs, e.regs.B)
	case inst.TBA:
		e.regs.A = e.regs.B
		applyLogical8(&e.regs, e.regs.A)
	case inst.TAP:
		e.regs.CCR = e.regs.A
	case inst.TPA:
		e.regs.A = e.regs.TPA()
	case inst.TSX:
		e.regs.X = e.regs.SP + 1
	case inst.TXS:
		e.regs.SP = e.regs.X - 1
	case inst.PSH:
		e.push8(readAccumulator(&e.regs, in))
	case inst.PUL:
		writeAccumulator(&e.regs, in, e.pull8())

	// --- Control flow ---
	case inst.JMP:
		e.regs.PC = acc.address
		controlFlow = true
	case inst.JSR:
		e.call(acc.address, pc, in.Length)
		controlFlow = true
	case inst.BSR:
		e.call(acc.address, pc, in.Length)
		controlFlow = true
	case inst.RTS:
		e.regs.PC = e.popAddress()
		controlFlow = true
	case inst.BRA, inst.BCC, inst.BCS, inst.BEQ, inst.BNE, inst.BMI, inst.BPL,
		inst.BVS, inst.BVC, inst.BGE, inst.BGT, inst.BHI, inst.BLE, inst.BLS, inst.BLT:
		if branchTaken(in.Op, &e.regs) {
			e.regs.PC = acc.address
		} else {
			e.regs.PC = pc + uint16(in.Length)
		}
		controlFlow = true

	// --- Flag ops ---
	case inst.CLC:
		e.regs.setFlag(FlagC, false)
	case inst.SEC:
		e.regs.setFlag(FlagC, true)
	case inst.CLI:
		e.regs.setFlag(FlagI, false)
	case inst.SEI:
		e.regs.setFlag(FlagI, true)
	case inst.CLV:
		e.regs.setFlag(FlagV, false)
	case inst.SEV:
		e.regs.setFlag(FlagV, true)

	case inst.NOP:
		// do nothing

	default:
		panic("cpu: unhandled opcode in execute")
	}
	return controlFlow
}

// rmw8 applies fn to the accumulator or memory byte the instruction
// targets and writes the result back to the same place, so every
// read-modify-write opcode shares one site for the target dispatch
// between Accumulator mode and the memory-referencing modes.
func (e *Executor) rmw8(in inst.Instruction, acc access, fn func(uint8) uint8) {
	if in.Mode == inst.Accumulator {
		writeAccumulator(&e.regs, in, fn(acc.value))
		return
	}
	e.mem.Write(acc.address, []byte{fn(acc.value)})
}

// operand16 returns the 16-bit value CPX/LDX/LDS compare or load
// against. For Immediate mode the value is the literal embedded in the
// instruction stream. For Extended/Direct/Indexed, resolve has already
// computed the effective address in acc; the 16-bit operand itself
// still has to be fetched from the two bytes stored there, since those
// modes name where the value lives, not the value.
func (e *Executor) operand16(in inst.Instruction, acc access) uint16 {
	if in.Mode == inst.Immediate {
		return immediateOperand16(in)
	}
	b := e.mem.Read(acc.address, 2)
	return uint16(b[0])<<8 | uint16(b[1])
}

func (e *Executor) push8(v uint8) {
	e.mem.Write(e.regs.SP, []byte{v})
	e.regs.SP--
}

func (e *Executor) pull8() uint8 {
	e.regs.SP++
	return e.mem.Read(e.regs.SP, 1)[0]
}

func (e *Executor) popAddress() uint16 {
	hi := e.pull8()
	lo := e.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// call implements the shared JSR/BSR discipline: advance past the
// call instruction, push the return address low byte then high byte,
// then set PC to target.
func (e *Executor) call(target, pc uint16, length uint8) {
	ret := pc + uint16(length)
	e.push8(uint8(ret))
	e.push8(uint8(ret >> 8))
	e.regs.PC = target
}

func branchTaken(op inst.OpCode, s *State) bool {
	c, z, n, v := s.getFlag(FlagC), s.getFlag(FlagZ), s.getFlag(FlagN), s.getFlag(FlagV)
	switch op {
	case inst.BRA:
		return true
	case inst.BCC:
		return !c
	case inst.BCS:
		return c
	case inst.BEQ:
		return z
	case inst.BNE:
		return !z
	case inst.BMI:
		return n
	case inst.BPL:
		return !n
	case inst.BVS:
		return v
	case inst.BVC:
		return !v
	case inst.BHI:
		return !(c || z)
	case inst.BLS:
		return c || z
	case inst.BGE:
		return !(n != v)
	case inst.BLT:
		return n != v
	case inst.BGT:
		return !z && !(n != v)
	case inst.BLE:
		return z || (n != v)
	default:
		return false
	}
}

// --- ALU helpers, one per op class. ---

func execAddOp(s *State, a, b uint8, carryIn bool) uint8 {
	c := uint16(0)
	if carryIn {
		c = 1
	}
	r := uint8(uint16(a) + uint16(b) + c)
	applyAdd8(s, a, b, r)
	return r
}

func execSubOp(s *State, a, b uint8, carryIn bool) uint8 {
	c := uint16(0)
	if carryIn {
		c = 1
	}
	r := uint8(uint16(a) - uint16(b) - c)
	applySub8(s, a, b, r)
	return r
}

func execAsl8(s *State, a uint8) uint8 {
	r := a << 1
	applyShift8(s, r, msb8(a))
	return r
}

func execAsr8(s *State, a uint8) uint8 {
	r := (a & 0x80) | (a >> 1)
	applyShift8(s, r, bit0(a))
	return r
}

func execLsr8(s *State, a uint8) uint8 {
	r := a >> 1
	applyShift8(s, r, bit0(a))
	return r
}

func execRol8(s *State, a uint8) uint8 {
	var carryIn uint8
	if s.getFlag(FlagC) {
		carryIn = 1
	}
	r := (a << 1) | carryIn
	applyShift8(s, r, msb8(a))
	return r
}

func execRor8(s *State, a uint8) uint8 {
	var carryIn uint8
	if s.getFlag(FlagC) {
		carryIn = 0x80
	}
	r := (a >> 1) | carryIn
	applyShift8(s, r, bit0(a))
	return r
}

// execDaa implements the decimal-adjust-accumulator algorithm: correct
// each nibble of A after a BCD addition, consulting H and C from the
// preceding ADD/ADC and the value of A itself to decide the per-nibble
// correction. DAA is only defined after addition, so there is no
// subtraction-side correction to consider.
func execDaa(s *State, a uint8) uint8 {
	lowCorrection := s.getFlag(FlagH) || (a&0x0F) > 9
	highCorrection := s.getFlag(FlagC) || (a>>4) > 9 || ((a>>4) == 9 && (a&0x0F) > 9)

	var correction uint8
	if lowCorrection {
		correction |= 0x06
	}
	if highCorrection {
		correction |= 0x60
		s.setFlag(FlagC, true)
	}
	r := a + correction
	setNZ8(s, r)
	return r
}
