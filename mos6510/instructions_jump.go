package mos6510

// execJMP implements the unconditional jump; env.addr already holds
// the resolved target, including the Indirect mode's page-wrap bug
// applied by prepareIndirect.
func (cpu *CPU) execJMP(env *execEnv) byte {
	cpu.PC = env.addr
	return 0
}

// execJSR pushes the address of the last byte of the JSR instruction
// (PC-1, per the 6502 return-address convention RTS undoes) and jumps
// to the resolved target. prepareAbsolute has already advanced PC past
// the two operand bytes, so PC-1 here is exactly that last byte.
func (cpu *CPU) execJSR(env *execEnv) byte {
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = env.addr
	return 0
}

// execRTS pops the return address JSR pushed and resumes at the
// following byte.
func (cpu *CPU) execRTS() byte {
	cpu.PC = cpu.popWord() + 1
	return 0
}

// execBRK implements software interrupt: skip the padding byte BRK
// reserves, push the return address and status with B set, disable
// further IRQs, and vector through the same address IRQ uses.
func (cpu *CPU) execBRK() byte {
	cpu.PC++
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.Flags.Pack(true))
	cpu.I = true
	cpu.PC = cpu.readWord(irqVector)
	return 0
}

// execRTI restores status and PC from the stack, in the order
// serviceInterrupt/execBRK pushed them.
func (cpu *CPU) execRTI() byte {
	cpu.Flags.Unpack(cpu.pop())
	cpu.PC = cpu.popWord()
	return 0
}
