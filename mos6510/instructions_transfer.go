package mos6510

// execTransfer implements the six register-to-register moves. All but
// TXS set N/Z from the destination; TXS (to the stack pointer) never
// touches flags.
func (cpu *CPU) execTransfer(inst Instruction) byte {
	switch inst {
	case TAX:
		cpu.X = cpu.A
		cpu.Flags.setNZ(cpu.X)
	case TAY:
		cpu.Y = cpu.A
		cpu.Flags.setNZ(cpu.Y)
	case TXA:
		cpu.A = cpu.X
		cpu.Flags.setNZ(cpu.A)
	case TYA:
		cpu.A = cpu.Y
		cpu.Flags.setNZ(cpu.A)
	case TSX:
		cpu.X = cpu.SP
		cpu.Flags.setNZ(cpu.X)
	case TXS:
		cpu.SP = cpu.X
	}
	return 0
}
