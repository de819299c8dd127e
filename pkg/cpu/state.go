package cpu

// State holds the 6800's architectural register file: two 8-bit
// accumulators, the 16-bit index register, program counter and stack
// pointer, and the condition-code register. It is created zeroed and
// is mutated only by an Executor.
type State struct {
	A, B uint8
	X    uint16
	PC   uint16
	SP   uint16
	CCR  uint8
}

// Equal returns true if two states are identical.
func (s State) Equal(o State) bool {
	return s == o
}

func msb8(v uint8) bool  { return v&0x80 != 0 }
func bit3(v uint8) bool  { return v&0x08 != 0 }
func bit0(v uint8) bool  { return v&0x01 != 0 }
func msb16(v uint16) bool { return v&0x8000 != 0 }
