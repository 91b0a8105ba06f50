package mos6510

import (
	"fmt"
	"log"
)

// Vector addresses for the three interrupt entry points.
const (
	nmiVector   uint16 = 0xFFFA
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE
)

// CPU is the MOS 6510 execution engine: a register file, flags, a
// pending-interrupt/reset latch, and a Step driver. Grounded on the
// reference codebase's Cpu6502 (nes/cpu.go), with the func-pointer
// InstLookup table replaced by OpcodeTable + dispatch (see
// instruction.go / operation.go), and Status replaced by the Flags
// struct (see flags.go).
type CPU struct {
	Registers
	Flags

	mem *Memory

	// CycleCount is the total number of cycles Step has charged since
	// construction.
	CycleCount uint64

	// Opcode and LastPC record the most recently fetched instruction,
	// for disassembly/debug display.
	Opcode byte
	LastPC uint16

	pendingReset bool
	pendingNMI   bool
	pendingIRQ   bool

	// Halted is set once Step decodes an invalid/KIL opcode. The driver
	// does not auto-reset; callers must call RequestReset explicitly.
	Halted bool

	// Logger receives one line per executed instruction when non-nil.
	// Carried over from the reference codebase's own cpu.Logger
	// (nes/cpu.go NewCpu6502), which always logged to a file; here it
	// defaults to nil (silent) and callers opt in with SetLogger.
	Logger *log.Logger
}

// NewCPU constructs a CPU wired to mem, in a zeroed register/flag
// state. Callers normally follow construction with RequestReset and a
// Step to load the reset vector.
func NewCPU(mem *Memory) *CPU {
	return &CPU{mem: mem}
}

// SetLogger attaches an instruction-trace logger. Pass nil to disable
// tracing.
func (cpu *CPU) SetLogger(logger *log.Logger) {
	cpu.Logger = logger
}

// RequestReset latches a reset to be serviced on the next Step.
func (cpu *CPU) RequestReset() {
	cpu.pendingReset = true
}

// RequestIRQ latches a maskable interrupt, serviced on the next Step
// only if the I flag is clear.
func (cpu *CPU) RequestIRQ() {
	cpu.pendingIRQ = true
}

// RequestNMI latches a non-maskable interrupt, always serviced on the
// next Step.
func (cpu *CPU) RequestNMI() {
	cpu.pendingNMI = true
}

func (cpu *CPU) read(addr uint16) byte       { return cpu.mem.ReadByte(addr) }
func (cpu *CPU) write(addr uint16, v byte)   { cpu.mem.WriteByte(addr, v) }
func (cpu *CPU) readWord(addr uint16) uint16 { return cpu.mem.ReadWord(addr) }

func (cpu *CPU) push(v byte) {
	cpu.write(cpu.stackAddr(), v)
	cpu.SP--
}

func (cpu *CPU) pop() byte {
	cpu.SP++
	return cpu.read(cpu.stackAddr())
}

func (cpu *CPU) pushWord(v uint16) {
	cpu.push(byte(v >> 8))
	cpu.push(byte(v))
}

func (cpu *CPU) popWord() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// doReset runs the 6502 reset sequence: SP is set to 0xFD, I is set,
// and PC loads from the reset vector.
func (cpu *CPU) doReset() {
	cpu.SP = 0xFD
	cpu.I = true
	cpu.PC = cpu.readWord(resetVector)
}

// serviceInterrupt implements the shared IRQ/NMI push sequence: push
// PC, push flags with B=0 and bit 5 set, set I, load PC from vector.
func (cpu *CPU) serviceInterrupt(vector uint16) {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.Flags.Pack(false))
	cpu.I = true
	cpu.PC = cpu.readWord(vector)
}

// Step executes one instruction, or services a pending reset/IRQ/NMI,
// and returns the number of cycles consumed. A return of 0 means Step
// decoded an invalid opcode and halted; the caller must RequestReset
// before calling Step again. trap, if non-nil, is polled once per call: when
// *trap is true, Step returns 0 cycles without touching the CPU. This
// gives a caller running Step in a loop a cheap point to cancel from
// another goroutine.
func (cpu *CPU) Step(trap *bool) int {
	if trap != nil && *trap {
		return 0
	}
	if cpu.pendingReset {
		cpu.pendingReset = false
		cpu.Halted = false
		cpu.doReset()
		cpu.CycleCount += 7
		return 7
	}
	if cpu.Halted {
		return 0
	}
	if cpu.pendingNMI {
		cpu.pendingNMI = false
		cpu.serviceInterrupt(nmiVector)
		cpu.CycleCount += 7
		return 7
	}
	if cpu.pendingIRQ {
		cpu.pendingIRQ = false
		if !cpu.I {
			cpu.serviceInterrupt(irqVector)
			cpu.CycleCount += 7
			return 7
		}
	}

	cpu.LastPC = cpu.PC
	cpu.Opcode = cpu.read(cpu.PC)
	cpu.PC++

	op := OpcodeTable[cpu.Opcode]
	if op.Cycles == 0 {
		cpu.Halted = true
		return 0
	}

	env := cpu.prepare(op.Mode)
	extra := cpu.execute(op.Instruction, &env)

	cycles := int(op.Cycles) + int(extra)
	if env.pageCrossed && pageCrossPenalizes(op.Instruction, op.Mode) {
		cycles++
	}

	if cpu.Logger != nil {
		cpu.Logger.Print(cpu.traceLine(op))
	}

	cpu.CycleCount += uint64(cycles)
	return cycles
}

// pageCrossPenalizes reports whether a page-crossing effective address
// adds a cycle for this (instruction, mode) pair: only indexed reads
// (AbsoluteX/AbsoluteY/IndirectIndexedY), never stores or RMW
// instructions.
func pageCrossPenalizes(inst Instruction, mode AddressingMode) bool {
	switch mode {
	case AbsoluteX, AbsoluteY, IndirectIndexedY:
		switch inst {
		case STA, STX, STY, ASL, LSR, ROL, ROR, INC, DEC:
			return false
		default:
			return true
		}
	default:
		return false
	}
}

func (cpu *CPU) traceLine(op Operation) string {
	return fmt.Sprintf("%04X  %02X  %s %s  A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		cpu.LastPC, cpu.Opcode, op.Instruction, op.Mode,
		cpu.A, cpu.X, cpu.Y, cpu.Flags.Pack(false), cpu.SP, cpu.CycleCount)
}
