package mos6510

import "fmt"

// Disassemble decodes the instruction at addr without mutating the
// CPU: it returns the mnemonic-and-operand text and the number of
// bytes the instruction occupies (1 to 3). Unofficial opcodes
// disassemble as "KIL". Grounded on the reference codebase's
// getDisassemblyLines/cpuDisassembler approach of building instruction
// text off the opcode table rather than executing, corrected to use
// the single AddressingMode enum (see instruction.go) instead of the
// teacher's disconnected enum/func-pointer mismatch, and on
// newhook-6502/dis/disassembler/instruction.go's per-mode operand
// formatting ($addr for absolute, $addr,X / $addr,Y for indexed, #$nn
// for immediate, ($addr) and the indirect-indexed forms).
func (m *Memory) Disassemble(addr uint16) (text string, size int) {
	opcode := m.ReadByte(addr)
	op := OpcodeTable[opcode]
	size = 1 + op.Mode.OperandSize()

	operand := ""
	switch op.Mode {
	case Implied:
		operand = ""
	case Relative:
		off := int8(m.ReadByte(addr + 1))
		target := uint16(int32(addr) + 2 + int32(off))
		operand = fmt.Sprintf("$%04X", target)
	case Immediate:
		operand = fmt.Sprintf("#$%02X", m.ReadByte(addr+1))
	case ZeroPage:
		operand = fmt.Sprintf("$%02X", m.ReadByte(addr+1))
	case ZeroPageX:
		operand = fmt.Sprintf("$%02X,X", m.ReadByte(addr+1))
	case ZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", m.ReadByte(addr+1))
	case IndexedIndirectX:
		operand = fmt.Sprintf("($%02X,X)", m.ReadByte(addr+1))
	case IndirectIndexedY:
		operand = fmt.Sprintf("($%02X),Y", m.ReadByte(addr+1))
	case Indirect:
		operand = fmt.Sprintf("($%04X)", m.ReadWord(addr+1))
	case Absolute:
		operand = fmt.Sprintf("$%04X", m.ReadWord(addr+1))
	case AbsoluteX:
		operand = fmt.Sprintf("$%04X,X", m.ReadWord(addr+1))
	case AbsoluteY:
		operand = fmt.Sprintf("$%04X,Y", m.ReadWord(addr+1))
	}

	if op.Instruction == KIL {
		return "KIL", 1
	}
	if operand == "" {
		return op.Instruction.String(), size
	}
	return op.Instruction.String() + " " + operand, size
}

// DisassembleRange walks count instructions starting at addr, for
// debug dumps.
func (m *Memory) DisassembleRange(addr uint16, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, size := m.Disassemble(addr)
		lines = append(lines, fmt.Sprintf("%04X  %s", addr, text))
		if size < 1 {
			size = 1
		}
		addr += uint16(size)
	}
	return lines
}
