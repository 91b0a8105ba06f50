package asm

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dkowalski/mos6510/mos6510"
)

var branchMnemonics = map[string]bool{
	"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
	"BMI": true, "BPL": true, "BVC": true, "BVS": true,
}

// Assembler runs a two-pass translation. Pass 1 (generate=false) sizes
// each line and records labels; pass 2 (generate=true) re-walks the
// same lines, sharing the same rules and handlers, and emits bytes.
type Assembler struct {
	symtab   *symbolTable
	generate bool
	loc      int32
	obj      *ObjectCode
}

// NewAssembler constructs an Assembler with an optional set of symbols
// pre-defined before the source is scanned.
func NewAssembler(predefined map[string]int32) *Assembler {
	return &Assembler{symtab: newSymbolTable(predefined)}
}

// Assemble runs both passes over source and returns the resulting
// object code, or the first error either pass encounters.
func (a *Assembler) Assemble(source string) (*ObjectCode, error) {
	lines := strings.Split(source, "\n")

	a.generate = false
	a.loc = 0
	a.obj = &ObjectCode{}
	a.symtab.setPass(1)
	if err := a.runPass(lines); err != nil {
		return nil, err
	}

	a.generate = true
	a.loc = int32(a.obj.Origin)
	result := &ObjectCode{}
	a.obj = result
	a.symtab.setPass(2)
	if err := a.runPass(lines); err != nil {
		return nil, err
	}

	return result, nil
}

func (a *Assembler) runPass(lines []string) error {
	for _, raw := range lines {
		stmt := stripComment(raw)
		label, stmt := splitLabel(stmt)

		handler, groups, err := classify(label, stmt)
		if err != nil {
			return err
		}

		if label != "" {
			if err := a.symtab.define(label, a.loc); err != nil {
				return err
			}
		}

		if err := handler(a, label, groups); err != nil {
			return err
		}
	}
	return nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// splitLabel recognizes an optional "label:" prefix and returns the
// label (empty if absent) and the remaining statement, trimmed.
func splitLabel(stmt string) (label, rest string) {
	if i := strings.IndexByte(stmt, ':'); i >= 0 {
		candidate := strings.TrimSpace(stmt[:i])
		if reSymbol.MatchString(candidate) {
			return candidate, strings.TrimSpace(stmt[i+1:])
		}
	}
	return "", stmt
}

func (a *Assembler) emit(b ...byte) {
	a.obj.append(b...)
	a.loc += int32(len(b))
}

// assembleInstruction handles the addressing modes with exactly one
// opcode each (Implied, Immediate, Indirect, IndexedIndirectX,
// IndirectIndexedY): no auto-selection is possible, so a missing
// opcode is simply a NoOpCode error.
func (a *Assembler) assembleInstruction(mnemonic string, mode mos6510.AddressingMode, exprText *string) error {
	inst, ok := mos6510.InstructionByMnemonic(mnemonic)
	if !ok {
		return errors.WithStack(NewInvalidMnemonic(mnemonic))
	}
	opcode, ok := mos6510.LookupOpcode(inst, mode)
	if !ok {
		if mode == mos6510.Implied {
			return errors.WithStack(NewMissingOperand(mnemonic))
		}
		return errors.WithStack(NewNoOpCode(mnemonic, mode.String()))
	}

	size := 1 + mode.OperandSize()
	if !a.generate {
		a.loc += int32(size)
		return nil
	}

	bytes := []byte{opcode}
	if exprText != nil {
		expr, err := parseExpression(*exprText)
		if err != nil {
			return err
		}
		v, resolved := expr.resolve(a.symtab)
		if !resolved {
			return errors.WithStack(NewUndefinedSymbol(exprSymbolOr(expr, *exprText)))
		}
		switch mode.OperandSize() {
		case 1:
			bytes = append(bytes, byte(v))
		case 2:
			bytes = append(bytes, byte(v), byte(v>>8))
		}
	}
	a.emit(bytes...)
	return nil
}

// assembleIndexedOrBranch handles the three forms that need a
// decision at assembly time: a bare "mnemonic expr" (branch relative,
// or absolute/zero-page auto-selection) and the X/Y-indexed absolute
// forms (which also have a zero-page alias to prefer when it fits).
func (a *Assembler) assembleIndexedOrBranch(mnemonic string, wantMode mos6510.AddressingMode, exprText string) error {
	inst, ok := mos6510.InstructionByMnemonic(mnemonic)
	if !ok {
		return errors.WithStack(NewInvalidMnemonic(mnemonic))
	}

	if branchMnemonics[mnemonic] {
		return a.assembleBranch(inst, mnemonic, exprText)
	}

	expr, err := parseExpression(exprText)
	if err != nil {
		return err
	}
	v, resolved := expr.resolve(a.symtab)

	mode := wantMode
	if zp, hasZP := zeroPageAlias[wantMode]; hasZP {
		if resolved && expr.fitsByte(v) {
			if _, ok := mos6510.LookupOpcode(inst, zp); ok {
				mode = zp
			}
		}
		// Unresolved in pass 1: assume the absolute variant for sizing,
		// which mode already is.
	}

	opcode, ok := mos6510.LookupOpcode(inst, mode)
	if !ok {
		return errors.WithStack(NewNoOpCode(mnemonic, mode.String()))
	}

	size := 1 + mode.OperandSize()
	if !a.generate {
		a.loc += int32(size)
		return nil
	}

	if !resolved {
		return errors.WithStack(NewUndefinedSymbol(exprSymbolOr(expr, exprText)))
	}

	bytes := []byte{opcode}
	switch mode.OperandSize() {
	case 1:
		bytes = append(bytes, byte(v))
	case 2:
		bytes = append(bytes, byte(v), byte(v>>8))
	}
	a.emit(bytes...)
	return nil
}

// assembleBranch encodes a branch's target as target -
// (PC_of_instruction + 2), which must fit a signed 8-bit field.
func (a *Assembler) assembleBranch(inst mos6510.Instruction, mnemonic, exprText string) error {
	opcode, ok := mos6510.LookupOpcode(inst, mos6510.Relative)
	if !ok {
		return errors.WithStack(NewNoOpCode(mnemonic, mos6510.Relative.String()))
	}

	instrAddr := a.loc
	if !a.generate {
		a.loc += 2
		return nil
	}

	expr, err := parseExpression(exprText)
	if err != nil {
		return err
	}
	target, resolved := expr.resolve(a.symtab)
	if !resolved {
		return errors.WithStack(NewUndefinedSymbol(exprSymbolOr(expr, exprText)))
	}

	offset := target - (instrAddr + 2)
	if offset < -128 || offset > 127 {
		return errors.WithStack(NewAddrOutOfRange(offset, 127))
	}
	a.emit(opcode, byte(int8(offset)))
	return nil
}
