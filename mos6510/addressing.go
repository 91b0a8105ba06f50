package mos6510

// prepare dispatches on mode to build the execEnv the instruction
// handler will consume. Every preparer publishes a tagged destination
// instead of handing back a raw pointer, so handlers never alias
// memory across instructions.
func (cpu *CPU) prepare(mode AddressingMode) execEnv {
	switch mode {
	case Implied:
		return cpu.prepareImplied()
	case Relative:
		return cpu.prepareRelative()
	case Immediate:
		return cpu.prepareImmediate()
	case ZeroPage:
		return cpu.prepareZeroPage()
	case ZeroPageX:
		return cpu.prepareZeroPageIndexed(cpu.X)
	case ZeroPageY:
		return cpu.prepareZeroPageIndexed(cpu.Y)
	case IndexedIndirectX:
		return cpu.prepareIndexedIndirectX()
	case IndirectIndexedY:
		return cpu.prepareIndirectIndexedY()
	case Indirect:
		return cpu.prepareIndirect()
	case Absolute:
		return cpu.prepareAbsolute()
	case AbsoluteX:
		return cpu.prepareAbsoluteIndexed(cpu.X)
	case AbsoluteY:
		return cpu.prepareAbsoluteIndexed(cpu.Y)
	default:
		return execEnv{}
	}
}

func (cpu *CPU) fetchImmediateByte() byte {
	v := cpu.read(cpu.PC)
	cpu.PC++
	return v
}

func (cpu *CPU) fetchImmediateWord() uint16 {
	v := cpu.readWord(cpu.PC)
	cpu.PC += 2
	return v
}

// prepareImplied covers both truly operand-less instructions (CLC,
// NOP, ...) and the accumulator form of the shift/rotate instructions
// (ASL A, LSR A, ROL A, ROR A). Both read zero operand bytes, so one
// preparer serves both; instruction handlers that care read cpu.A
// through the destAccumulator tag.
func (cpu *CPU) prepareImplied() execEnv {
	return execEnv{dest: destAccumulator}
}

// prepareRelative fetches the signed branch displacement. It does not
// compute the target address: BEQ/BNE/... add it to PC themselves,
// since the target depends on whether the branch is taken, and the
// page-cross penalty is only charged then.
func (cpu *CPU) prepareRelative() execEnv {
	off := int8(cpu.fetchImmediateByte())
	return execEnv{dest: destNone, relOffset: off}
}

func (cpu *CPU) prepareImmediate() execEnv {
	return execEnv{dest: destNone, value: cpu.fetchImmediateByte()}
}

func (cpu *CPU) prepareZeroPage() execEnv {
	addr := uint16(cpu.fetchImmediateByte())
	return execEnv{dest: destMemory, addr: addr}
}

// prepareZeroPageIndexed implements the zero-page-family wraparound
// rule: the index is added modulo 256, never carrying into the high
// byte.
func (cpu *CPU) prepareZeroPageIndexed(index byte) execEnv {
	base := cpu.fetchImmediateByte()
	addr := uint16(base + index)
	return execEnv{dest: destMemory, addr: addr}
}

func (cpu *CPU) prepareAbsolute() execEnv {
	addr := cpu.fetchImmediateWord()
	return execEnv{dest: destMemory, addr: addr}
}

// prepareAbsoluteIndexed adds index to a 16-bit base with a full
// 16-bit carry, and flags a page-cross whenever that carry changes the
// high byte, for the CPU driver's cycle-penalty check.
func (cpu *CPU) prepareAbsoluteIndexed(index byte) execEnv {
	base := cpu.fetchImmediateWord()
	addr := base + uint16(index)
	crossed := (base & 0xFF00) != (addr & 0xFF00)
	return execEnv{dest: destMemory, addr: addr, pageCrossed: crossed}
}

// prepareIndirect implements JMP's only addressing mode, including the
// classic page-wrap bug: when the pointer's low byte is 0xFF, the high
// byte of the target is fetched from the start of the SAME page
// instead of the next one.
func (cpu *CPU) prepareIndirect() execEnv {
	ptr := cpu.fetchImmediateWord()
	lo := cpu.read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := cpu.read(hiAddr)
	addr := uint16(hi)<<8 | uint16(lo)
	return execEnv{dest: destMemory, addr: addr}
}

// prepareIndexedIndirectX resolves (zp,X): add X to the zero-page
// operand with 8-bit wraparound, then read a little-endian pointer
// from that zero-page location (itself wrapping within page zero).
func (cpu *CPU) prepareIndexedIndirectX() execEnv {
	zp := cpu.fetchImmediateByte() + cpu.X
	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp + 1))
	addr := uint16(hi)<<8 | uint16(lo)
	return execEnv{dest: destMemory, addr: addr}
}

// prepareIndirectIndexedY resolves (zp),Y: read a little-endian
// pointer from the zero-page operand (no X offset, wraps within page
// zero for the high-byte fetch), then add Y to that pointer with a
// full 16-bit carry, flagging a page-cross on carry.
func (cpu *CPU) prepareIndirectIndexedY() execEnv {
	zp := cpu.fetchImmediateByte()
	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(cpu.Y)
	crossed := (base & 0xFF00) != (addr & 0xFF00)
	return execEnv{dest: destMemory, addr: addr, pageCrossed: crossed}
}
