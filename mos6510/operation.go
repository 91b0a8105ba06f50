package mos6510

// Operation is the immutable (instruction, addressing mode, base
// cycles) triple the opcode table maps every byte 0x00-0xFF to.
// Unofficial opcodes map to {KIL, Implied, 0}.
type Operation struct {
	Instruction Instruction
	Mode        AddressingMode
	Cycles      byte
}

// OpcodeTable is keyed by opcode byte. It drives both the decoder
// (opcode -> operation) and, via LookupOpcode, the assembler
// (instruction+mode -> opcode). Grounded on the reference codebase's
// InstLookup grid (nes/cpu.go) — same opcode assignments and cycle
// counts, reference:
// http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var OpcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]Operation {
	var t [256]Operation
	// Default every entry to KIL before filling in the official opcodes;
	// unknown codes map to KIL with 0 cycles.
	for i := range t {
		t[i] = Operation{KIL, Implied, 0}
	}

	set := func(opcode byte, inst Instruction, mode AddressingMode, cycles byte) {
		t[opcode] = Operation{inst, mode, cycles}
	}

	// 0x00-0x0F
	set(0x00, BRK, Implied, 7)
	set(0x01, ORA, IndexedIndirectX, 6)
	set(0x05, ORA, ZeroPage, 3)
	set(0x06, ASL, ZeroPage, 5)
	set(0x08, PHP, Implied, 3)
	set(0x09, ORA, Immediate, 2)
	set(0x0A, ASL, Implied, 2)
	set(0x0D, ORA, Absolute, 4)
	set(0x0E, ASL, Absolute, 6)

	// 0x10-0x1F
	set(0x10, BPL, Relative, 2)
	set(0x11, ORA, IndirectIndexedY, 5)
	set(0x15, ORA, ZeroPageX, 4)
	set(0x16, ASL, ZeroPageX, 6)
	set(0x18, CLC, Implied, 2)
	set(0x19, ORA, AbsoluteY, 4)
	set(0x1D, ORA, AbsoluteX, 4)
	set(0x1E, ASL, AbsoluteX, 7)

	// 0x20-0x2F
	set(0x20, JSR, Absolute, 6)
	set(0x21, AND, IndexedIndirectX, 6)
	set(0x24, BIT, ZeroPage, 3)
	set(0x25, AND, ZeroPage, 3)
	set(0x26, ROL, ZeroPage, 5)
	set(0x28, PLP, Implied, 4)
	set(0x29, AND, Immediate, 2)
	set(0x2A, ROL, Implied, 2)
	set(0x2C, BIT, Absolute, 4)
	set(0x2D, AND, Absolute, 4)
	set(0x2E, ROL, Absolute, 6)

	// 0x30-0x3F
	set(0x30, BMI, Relative, 2)
	set(0x31, AND, IndirectIndexedY, 5)
	set(0x35, AND, ZeroPageX, 4)
	set(0x36, ROL, ZeroPageX, 6)
	set(0x38, SEC, Implied, 2)
	set(0x39, AND, AbsoluteY, 4)
	set(0x3D, AND, AbsoluteX, 4)
	set(0x3E, ROL, AbsoluteX, 7)

	// 0x40-0x4F
	set(0x40, RTI, Implied, 6)
	set(0x41, EOR, IndexedIndirectX, 6)
	set(0x45, EOR, ZeroPage, 3)
	set(0x46, LSR, ZeroPage, 5)
	set(0x48, PHA, Implied, 3)
	set(0x49, EOR, Immediate, 2)
	set(0x4A, LSR, Implied, 2)
	set(0x4C, JMP, Absolute, 3)
	set(0x4D, EOR, Absolute, 4)
	set(0x4E, LSR, Absolute, 6)

	// 0x50-0x5F
	set(0x50, BVC, Relative, 2)
	set(0x51, EOR, IndirectIndexedY, 5)
	set(0x55, EOR, ZeroPageX, 4)
	set(0x56, LSR, ZeroPageX, 6)
	set(0x58, CLI, Implied, 2)
	set(0x59, EOR, AbsoluteY, 4)
	set(0x5D, EOR, AbsoluteX, 4)
	set(0x5E, LSR, AbsoluteX, 7)

	// 0x60-0x6F
	set(0x60, RTS, Implied, 6)
	set(0x61, ADC, IndexedIndirectX, 6)
	set(0x65, ADC, ZeroPage, 3)
	set(0x66, ROR, ZeroPage, 5)
	set(0x68, PLA, Implied, 4)
	set(0x69, ADC, Immediate, 2)
	set(0x6A, ROR, Implied, 2)
	set(0x6C, JMP, Indirect, 5)
	set(0x6D, ADC, Absolute, 4)
	set(0x6E, ROR, Absolute, 6)

	// 0x70-0x7F
	set(0x70, BVS, Relative, 2)
	set(0x71, ADC, IndirectIndexedY, 5)
	set(0x75, ADC, ZeroPageX, 4)
	set(0x76, ROR, ZeroPageX, 6)
	set(0x78, SEI, Implied, 2)
	set(0x79, ADC, AbsoluteY, 4)
	set(0x7D, ADC, AbsoluteX, 4)
	set(0x7E, ROR, AbsoluteX, 7)

	// 0x80-0x8F
	set(0x81, STA, IndexedIndirectX, 6)
	set(0x84, STY, ZeroPage, 3)
	set(0x85, STA, ZeroPage, 3)
	set(0x86, STX, ZeroPage, 3)
	set(0x88, DEY, Implied, 2)
	set(0x8A, TXA, Implied, 2)
	set(0x8C, STY, Absolute, 4)
	set(0x8D, STA, Absolute, 4)
	set(0x8E, STX, Absolute, 4)

	// 0x90-0x9F
	set(0x90, BCC, Relative, 2)
	set(0x91, STA, IndirectIndexedY, 6)
	set(0x94, STY, ZeroPageX, 4)
	set(0x95, STA, ZeroPageX, 4)
	set(0x96, STX, ZeroPageY, 4)
	set(0x98, TYA, Implied, 2)
	set(0x99, STA, AbsoluteY, 5)
	set(0x9A, TXS, Implied, 2)
	set(0x9D, STA, AbsoluteX, 5)

	// 0xA0-0xAF
	set(0xA0, LDY, Immediate, 2)
	set(0xA1, LDA, IndexedIndirectX, 6)
	set(0xA2, LDX, Immediate, 2)
	set(0xA4, LDY, ZeroPage, 3)
	set(0xA5, LDA, ZeroPage, 3)
	set(0xA6, LDX, ZeroPage, 3)
	set(0xA8, TAY, Implied, 2)
	set(0xA9, LDA, Immediate, 2)
	set(0xAA, TAX, Implied, 2)
	set(0xAC, LDY, Absolute, 4)
	set(0xAD, LDA, Absolute, 4)
	set(0xAE, LDX, Absolute, 4)

	// 0xB0-0xBF
	set(0xB0, BCS, Relative, 2)
	set(0xB1, LDA, IndirectIndexedY, 5)
	set(0xB4, LDY, ZeroPageX, 4)
	set(0xB5, LDA, ZeroPageX, 4)
	set(0xB6, LDX, ZeroPageY, 4)
	set(0xB8, CLV, Implied, 2)
	set(0xB9, LDA, AbsoluteY, 4)
	set(0xBA, TSX, Implied, 2)
	set(0xBC, LDY, AbsoluteX, 4)
	set(0xBD, LDA, AbsoluteX, 4)
	set(0xBE, LDX, AbsoluteY, 4)

	// 0xC0-0xCF
	set(0xC0, CPY, Immediate, 2)
	set(0xC1, CMP, IndexedIndirectX, 6)
	set(0xC4, CPY, ZeroPage, 3)
	set(0xC5, CMP, ZeroPage, 3)
	set(0xC6, DEC, ZeroPage, 5)
	set(0xC8, INY, Implied, 2)
	set(0xC9, CMP, Immediate, 2)
	set(0xCA, DEX, Implied, 2)
	set(0xCC, CPY, Absolute, 4)
	set(0xCD, CMP, Absolute, 4)
	set(0xCE, DEC, Absolute, 6)

	// 0xD0-0xDF
	set(0xD0, BNE, Relative, 2)
	set(0xD1, CMP, IndirectIndexedY, 5)
	set(0xD5, CMP, ZeroPageX, 4)
	set(0xD6, DEC, ZeroPageX, 6)
	set(0xD8, CLD, Implied, 2)
	set(0xD9, CMP, AbsoluteY, 4)
	set(0xDD, CMP, AbsoluteX, 4)
	set(0xDE, DEC, AbsoluteX, 7)

	// 0xE0-0xEF
	set(0xE0, CPX, Immediate, 2)
	set(0xE1, SBC, IndexedIndirectX, 6)
	set(0xE4, CPX, ZeroPage, 3)
	set(0xE5, SBC, ZeroPage, 3)
	set(0xE6, INC, ZeroPage, 5)
	set(0xE8, INX, Implied, 2)
	set(0xE9, SBC, Immediate, 2)
	set(0xEA, NOP, Implied, 2)
	set(0xEC, CPX, Absolute, 4)
	set(0xED, SBC, Absolute, 4)
	set(0xEE, INC, Absolute, 6)

	// 0xF0-0xFF
	set(0xF0, BEQ, Relative, 2)
	set(0xF1, SBC, IndirectIndexedY, 5)
	set(0xF5, SBC, ZeroPageX, 4)
	set(0xF6, INC, ZeroPageX, 6)
	set(0xF8, SED, Implied, 2)
	set(0xF9, SBC, AbsoluteY, 4)
	set(0xFD, SBC, AbsoluteX, 4)
	set(0xFE, INC, AbsoluteX, 7)

	return t
}

// LookupOpcode performs the linear scan over OpcodeTable the
// assembler needs to translate (instruction, mode) back to an opcode
// byte. The table has 256 entries, so a linear scan at assembly time
// only is acceptable.
func LookupOpcode(inst Instruction, mode AddressingMode) (byte, bool) {
	for opcode, op := range OpcodeTable {
		if op.Instruction == inst && op.Mode == mode {
			return byte(opcode), true
		}
	}
	return 0, false
}
