package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkowalski/mos6510/mos6510"
)

func TestAssembleZeroPageAutoSelection(t *testing.T) {
	a := NewAssembler(nil)
	obj, err := a.Assemble(".ORG $0600\nLDA $7A\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA5, 0x7A}, obj.Bytes, "A5 is LDA zero-page")
}

func TestAssembleExplicitWideHexStaysAbsolute(t *testing.T) {
	a := NewAssembler(nil)
	obj, err := a.Assemble(".ORG $0600\nLDA $00FF\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAD, 0xFF, 0x00}, obj.Bytes, "AD is LDA absolute")
}

func TestAssembleForwardReference(t *testing.T) {
	src := ".ORG $0600\n" +
		"   LDA data\n" +
		"   BRK\n" +
		"data: .BYTE $42\n"

	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0600), obj.Origin)
	assert.Len(t, obj.Bytes, 5)
	assert.Equal(t, []byte{0xAD, 0x04, 0x06, 0x00, 0x42}, obj.Bytes)
}

func TestAssembleImmediateAndImplied(t *testing.T) {
	src := ".ORG $0600\nLDA #$01\nCLC\nADC #$01\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x01, 0x18, 0x69, 0x01}, obj.Bytes)
}

func TestAssembleIndexedForms(t *testing.T) {
	// LDA has no zero-page,Y form, so the second line must fall back
	// to AbsoluteY even though $20 fits a byte.
	src := ".ORG $0600\nLDA $0200,X\nLDA $20,Y\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBD, 0x00, 0x02, 0xB9, 0x20, 0x00}, obj.Bytes)
}

func TestAssembleZeroPageIndexedXSelected(t *testing.T) {
	src := ".ORG $0600\nLDA $20,X\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xB5, 0x20}, obj.Bytes, "B5 is LDA zero-page,X")
}

func TestAssembleIndirectForms(t *testing.T) {
	src := ".ORG $0600\nJMP ($0210)\nLDA ($20,X)\nLDA ($20),Y\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, byte(0x6C), obj.Bytes[0])
	assert.Equal(t, byte(0xA1), obj.Bytes[3])
	assert.Equal(t, byte(0xB1), obj.Bytes[5])
}

func TestAssembleBranchOffset(t *testing.T) {
	// BEQ to an address 2 bytes after the branch's own operand.
	src := ".ORG $0600\nBEQ $0604\nNOP\nNOP\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, byte(0xF0), obj.Bytes[0])
	assert.Equal(t, byte(0x02), obj.Bytes[1])
}

func TestAssembleBranchOutOfRangeErrors(t *testing.T) {
	src := ".ORG $0600\nBEQ $0700\n"
	a := NewAssembler(nil)
	_, err := a.Assemble(src)
	assert.Error(t, err)
}

func TestAssembleUndefinedSymbolInPass2Errors(t *testing.T) {
	a := NewAssembler(nil)
	_, err := a.Assemble(".ORG $0600\nLDA missing\n")
	assert.Error(t, err)
}

func TestAssembleOrgPadsWithZeros(t *testing.T) {
	src := ".ORG $0600\nNOP\n.ORG $0604\nNOP\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEA, 0x00, 0x00, 0x00, 0xEA}, obj.Bytes)
}

func TestAssemblePredefinedSymbol(t *testing.T) {
	a := NewAssembler(map[string]int32{"SCREEN": 0x0400})
	obj, err := a.Assemble(".ORG $0600\nLDA SCREEN\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAD, 0x00, 0x04}, obj.Bytes)
}

func TestAssembleWordDirective(t *testing.T) {
	a := NewAssembler(nil)
	obj, err := a.Assemble(".ORG $0600\n.WORD $1234\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x34, 0x12}, obj.Bytes)
}

func TestAssembleCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "; a comment\n.ORG $0600\n\nNOP ; trailing comment\n"
	a := NewAssembler(nil)
	obj, err := a.Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEA}, obj.Bytes)
}

func TestAssembleCaseInsensitiveMnemonics(t *testing.T) {
	a := NewAssembler(nil)
	obj, err := a.Assemble(".org $0600\nlda #$01\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x01}, obj.Bytes)
}

// TestAssembleDisassembleRoundTrip checks that assembling a line,
// disassembling the resulting bytes, and re-assembling that
// disassembly text reproduces the exact same bytes.
func TestAssembleDisassembleRoundTrip(t *testing.T) {
	lines := []string{
		"LDA #$01",
		"LDA $7A",
		"LDA $0200,X",
		"STA ($20),Y",
		"JMP ($0210)",
		"BEQ $0604",
	}

	for _, line := range lines {
		a := NewAssembler(nil)
		obj, err := a.Assemble(".ORG $0600\n" + line + "\n")
		require.NoError(t, err, line)

		mem := mos6510.NewMemory()
		mem.LoadAt(obj.Origin, obj.Bytes)
		text, size := mem.Disassemble(obj.Origin)
		assert.Equal(t, len(obj.Bytes), size, "disassembled size for %q", line)

		b := NewAssembler(nil)
		again, err := b.Assemble(".ORG $0600\n" + text + "\n")
		require.NoError(t, err, text)
		assert.Equal(t, obj.Bytes, again.Bytes, "round trip for %q -> %q", line, text)
	}
}
