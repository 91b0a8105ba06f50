package mos6510

// execStack implements the four stack-only instructions. PHP pushes
// with B set: a software-pushed status byte always reads back with
// B=1. PLP restores N/V/D/I/Z/C from the popped byte and
// leaves B/bit5 unrepresented, since Flags has no B field.
func (cpu *CPU) execStack(inst Instruction) byte {
	switch inst {
	case PHA:
		cpu.push(cpu.A)
	case PHP:
		cpu.push(cpu.Flags.Pack(true))
	case PLA:
		cpu.A = cpu.pop()
		cpu.Flags.setNZ(cpu.A)
	case PLP:
		cpu.Flags.Unpack(cpu.pop())
	}
	return 0
}
