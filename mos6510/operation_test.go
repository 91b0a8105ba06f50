package mos6510

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTableValidEntryCount(t *testing.T) {
	valid := 0
	for _, op := range OpcodeTable {
		if op.Cycles != 0 {
			valid++
		}
	}
	assert.Equal(t, 151, valid)
}

func TestLookupOpcodeRoundTrip(t *testing.T) {
	for opcode, op := range OpcodeTable {
		if op.Cycles == 0 {
			continue
		}
		got, ok := LookupOpcode(op.Instruction, op.Mode)
		assert.True(t, ok, "opcode %#02x", opcode)
		assert.Equal(t, byte(opcode), got, "opcode %#02x (%s %s)", opcode, op.Instruction, op.Mode)
	}
}

func TestLookupOpcodeUnknownCombination(t *testing.T) {
	_, ok := LookupOpcode(LDA, Relative)
	assert.False(t, ok)
}

func TestOperandSizeByMode(t *testing.T) {
	assert.Equal(t, 0, Implied.OperandSize())
	assert.Equal(t, 1, Immediate.OperandSize())
	assert.Equal(t, 1, ZeroPageX.OperandSize())
	assert.Equal(t, 2, Absolute.OperandSize())
	assert.Equal(t, 2, AbsoluteY.OperandSize())
}
