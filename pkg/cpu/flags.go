package cpu

// CCR bit positions: bits 0-5 are architectural; bits 6-7 are
// don't-cares during execution and read as 1 only through TPA.
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagV uint8 = 1 << 1 // Overflow
	FlagZ uint8 = 1 << 2 // Zero
	FlagN uint8 = 1 << 3 // Negative (sign)
	FlagI uint8 = 1 << 4 // Interrupt mask
	FlagH uint8 = 1 << 5 // Half-carry
)

func (s *State) setFlag(mask uint8, v bool) {
	if v {
		s.CCR |= mask
	} else {
		s.CCR &^= mask
	}
}

func (s *State) getFlag(mask uint8) bool {
	return s.CCR&mask != 0
}

// TPA projects CCR with bits 6-7 forced to 1, the value the TPA
// instruction exposes to software; bits 6-7 are otherwise don't-cares.
func (s *State) TPA() uint8 {
	return s.CCR | 0xC0
}

func setNZ8(s *State, r uint8) {
	s.setFlag(FlagN, msb8(r))
	s.setFlag(FlagZ, r == 0)
}

func setNZ16(s *State, r uint16) {
	s.setFlag(FlagN, msb16(r))
	s.setFlag(FlagZ, r == 0)
}

// applyAdd8 computes N, Z, V, C, H for ADD/ADC/ABA given the operands
// and result of an 8-bit addition (a + b, wrapped mod 256 into r).
func applyAdd8(s *State, a, b, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, (msb8(a) && msb8(b) && !msb8(r)) || (!msb8(a) && !msb8(b) && msb8(r)))
	s.setFlag(FlagC, (msb8(a) && msb8(b)) || (msb8(b) && !msb8(r)) || (!msb8(r) && msb8(a)))
	s.setFlag(FlagH, (bit3(a) && bit3(b)) || (bit3(b) && !bit3(r)) || (!bit3(r) && bit3(a)))
}

// applySub8 computes N, Z, V, C for SUB/SBC/SBA/CMP given the operands
// and result of an 8-bit subtraction (a - b, wrapped mod 256 into r).
// H is unaffected by subtraction.
func applySub8(s *State, a, b, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, (msb8(a) && !msb8(b) && !msb8(r)) || (!msb8(a) && msb8(b) && msb8(r)))
	s.setFlag(FlagC, (!msb8(a) && msb8(b)) || (msb8(b) && msb8(r)) || (msb8(r) && !msb8(a)))
}

// applyLogical8 computes N, Z for AND/ORA/EOR/BIT/LDA; V is always
// cleared and C is unaffected.
func applyLogical8(s *State, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, false)
}

// applyTest8 is applyLogical8 plus an explicit C clear, for TST and CLR.
func applyTest8(s *State, r uint8) {
	applyLogical8(s, r)
	s.setFlag(FlagC, false)
}

// applyShift8 computes N, Z, V, C for ASL/ASR/LSR/ROL/ROR given the
// post-shift result and the bit shifted out. LSR's "N always 0" is
// automatic: a right-logical-shift result never has bit 7 set.
func applyShift8(s *State, r uint8, carryOut bool) {
	setNZ8(s, r)
	s.setFlag(FlagC, carryOut)
	s.setFlag(FlagV, s.getFlag(FlagN) != carryOut)
}

// applyNeg8 computes N, Z, V, C for NEG.
func applyNeg8(s *State, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, r == 0x80)
	s.setFlag(FlagC, r != 0)
}

// applyCom8 computes N, Z, V, C for COM; C is unconditionally set.
func applyCom8(s *State, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, false)
	s.setFlag(FlagC, true)
}

// applyInc8 computes N, Z, V for INC; C is unaffected.
func applyInc8(s *State, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, r == 0x80)
}

// applyDec8 computes N, Z, V for DEC; C is unaffected.
func applyDec8(s *State, r uint8) {
	setNZ8(s, r)
	s.setFlag(FlagV, r == 0x7F)
}

// applyCpx16 computes N, Z, V for CPX from the 16-bit operands and
// result of X - operand; C is unaffected, matching the real 6800 (CPX
// never touches carry).
func applyCpx16(s *State, a, b, r uint16) {
	setNZ16(s, r)
	aMsb, bMsb, rMsb := msb16(a), msb16(b), msb16(r)
	s.setFlag(FlagV, (aMsb && !bMsb && !rMsb) || (!aMsb && bMsb && rMsb))
}

// applyLoad16 computes N, Z for LDS/LDX; V is always cleared, C
// unaffected.
func applyLoad16(s *State, r uint16) {
	setNZ16(s, r)
	s.setFlag(FlagV, false)
}
