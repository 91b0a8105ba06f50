package mos6510

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCPU(program ...byte) (*CPU, *Memory) {
	mem := NewMemory()
	mem.WriteWord(resetVector, 0x8000)
	mem.LoadAt(0x8000, program)
	cpu := NewCPU(mem)
	cpu.RequestReset()
	cpu.Step(nil)
	return cpu, mem
}

func TestResetVector(t *testing.T) {
	cpu, _ := newTestCPU(0xEA)
	assert.Equal(t, uint16(0x8000), cpu.PC)
	assert.Equal(t, byte(0xFD), cpu.SP)
	assert.True(t, cpu.I)
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x00)
	cycles := cpu.Step(nil)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, byte(0x00), cpu.A)
	assert.True(t, cpu.Z)
	assert.False(t, cpu.N)
}

func TestLDAImmediateNegative(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x80)
	cpu.Step(nil)
	assert.True(t, cpu.N)
	assert.False(t, cpu.Z)
}

func TestADCCarryAndOverflow(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x7F, 0x69, 0x01)
	cpu.Step(nil) // LDA #$7F
	cpu.Step(nil) // ADC #$01
	assert.Equal(t, byte(0x80), cpu.A)
	assert.True(t, cpu.V, "signed overflow crossing 0x7F->0x80 must set V")
	assert.True(t, cpu.N)
	assert.False(t, cpu.C)
}

func TestSBCBorrow(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x00, 0x38, 0xE9, 0x01)
	cpu.Step(nil) // LDA #$00
	cpu.Step(nil) // SEC
	cpu.Step(nil) // SBC #$01
	assert.Equal(t, byte(0xFF), cpu.A)
	assert.False(t, cpu.C, "borrow clears carry")
}

func TestBranchNotTaken(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x01, 0xF0, 0x10)
	cpu.Step(nil) // LDA #$01, Z clear
	pcBefore := cpu.PC
	cycles := cpu.Step(nil) // BEQ, not taken
	assert.Equal(t, 2, cycles)
	assert.Equal(t, pcBefore+2, cpu.PC)
}

func TestBranchTakenSamePage(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x00, 0xF0, 0x02, 0xEA, 0xEA)
	cpu.Step(nil) // LDA #$00, Z set
	cycles := cpu.Step(nil)
	assert.Equal(t, 3, cycles)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	// JSR $8005; BRK; BRK; RTS
	cpu, _ := newTestCPU(0x20, 0x05, 0x80, 0x00, 0x00, 0x60)
	cpu.Step(nil) // JSR
	require.Equal(t, uint16(0x8005), cpu.PC)
	cpu.Step(nil) // RTS
	assert.Equal(t, uint16(0x8003), cpu.PC)
}

func TestStackPushPop(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68)
	cpu.Step(nil) // LDA #$42
	cpu.Step(nil) // PHA
	assert.Equal(t, byte(0xFC), cpu.SP)
	cpu.Step(nil) // LDA #$00
	cpu.Step(nil) // PLA
	assert.Equal(t, byte(0x42), cpu.A)
	assert.Equal(t, byte(0xFD), cpu.SP)
}

func TestIndexedAbsolutePageCross(t *testing.T) {
	cpu, mem := newTestCPU(0xA2, 0xFF, 0xBD, 0x01, 0x80)
	mem.WriteByte(0x8100, 0x99)
	cpu.Step(nil) // LDX #$FF
	cycles := cpu.Step(nil)
	assert.Equal(t, 5, cycles, "crossing from $8001+$FF into $8100 costs an extra cycle")
	assert.Equal(t, byte(0x99), cpu.A)
}

func TestKILHalts(t *testing.T) {
	cpu, _ := newTestCPU(0x02)
	cycles := cpu.Step(nil)
	assert.Equal(t, 0, cycles)
	assert.True(t, cpu.Halted)
	assert.Equal(t, 0, cpu.Step(nil), "Step is a no-op once halted")
}

func TestTrapCancelsStep(t *testing.T) {
	cpu, _ := newTestCPU(0xA9, 0x01)
	trap := true
	cycles := cpu.Step(&trap)
	assert.Equal(t, 0, cycles)
	assert.Equal(t, byte(0x00), cpu.A, "trapped step must not touch CPU state")
}

func TestIRQServicedOnlyWhenUnmasked(t *testing.T) {
	cpu, mem := newTestCPU(0x58, 0xEA) // CLI; NOP
	mem.WriteWord(irqVector, 0x9000)
	cpu.Step(nil) // CLI
	cpu.RequestIRQ()
	cycles := cpu.Step(nil)
	assert.Equal(t, 7, cycles)
	assert.Equal(t, uint16(0x9000), cpu.PC)
}
