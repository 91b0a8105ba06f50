package asm

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/dkowalski/mos6510/mos6510"
)

// lineHandler runs against one parsed statement (label already
// stripped) during both passes; a.generate selects whether it sizes
// (pass 1) or emits (pass 2).
type lineHandler func(a *Assembler, label string, groups []string) error

type lineRule struct {
	re      *regexp.Regexp
	handler lineHandler
}

// expr tokens never contain whitespace, commas, or parens; those
// characters are what the surrounding rule patterns use to tell the
// addressing forms apart.
const exprToken = `[^\s,()]+`

// rules is tried top to bottom; the first match wins. Order matters:
// the origin directives must precede the generic statement forms, the
// parenthesized (indirect) forms must precede plain absolute/zero-page
// (whose expr token excludes parens, so this is actually structural,
// not just ordering — but implied MUST still precede any operand form
// since "mnemonic" alone is a prefix of "mnemonic operand").
var rules = []lineRule{
	{regexp.MustCompile(`^$`), handleEmpty},
	{regexp.MustCompile(`(?i)^\.ORG\s+(` + exprToken + `)$`), handleOrigin},
	{regexp.MustCompile(`^\*\s*=\s*(` + exprToken + `)$`), handleOrigin},
	{regexp.MustCompile(`(?i)^(?:\.BYTE|DCB)\s+(.+)$`), handleByte},
	{regexp.MustCompile(`(?i)^\.WORD\s+(.+)$`), handleWord},
	{regexp.MustCompile(`^([A-Za-z]{3})$`), handleImplied},
	{regexp.MustCompile(`^([A-Za-z]{3})\s+#(` + exprToken + `)$`), handleImmediate},
	{regexp.MustCompile(`(?i)^([A-Za-z]{3})\s+\((` + exprToken + `)\),\s*Y$`), handleIndirectIndexedY},
	{regexp.MustCompile(`(?i)^([A-Za-z]{3})\s+\((` + exprToken + `)\s*,\s*X\)$`), handleIndexedIndirectX},
	{regexp.MustCompile(`^([A-Za-z]{3})\s+\((` + exprToken + `)\)$`), handleIndirect},
	{regexp.MustCompile(`(?i)^([A-Za-z]{3})\s+(` + exprToken + `)\s*,\s*X$`), handleIndexedX},
	{regexp.MustCompile(`(?i)^([A-Za-z]{3})\s+(` + exprToken + `)\s*,\s*Y$`), handleIndexedY},
	{regexp.MustCompile(`^([A-Za-z]{3})\s+(` + exprToken + `)$`), handleAbsoluteOrZeroPage},
}

// zeroPageAlias mirrors mos6510's unexported absolute->zero-page
// family mapping, duplicated here since the auto-selection below needs
// it and the CPU package's version is not exported.
var zeroPageAlias = map[mos6510.AddressingMode]mos6510.AddressingMode{
	mos6510.Absolute:  mos6510.ZeroPage,
	mos6510.AbsoluteX: mos6510.ZeroPageX,
	mos6510.AbsoluteY: mos6510.ZeroPageY,
}

// classify matches a statement (comment and label already stripped by
// the caller) against rules in order, and returns the matching rule's
// handler plus its capture groups. stmt == "" is the empty-line case.
func classify(label, stmt string) (lineHandler, []string, error) {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(stmt); m != nil {
			return r.handler, m[1:], nil
		}
	}
	return nil, nil, errors.WithStack(NewSyntaxError(stmt))
}

func handleEmpty(a *Assembler, label string, groups []string) error {
	return nil
}

func handleOrigin(a *Assembler, label string, groups []string) error {
	expr, err := parseExpression(groups[0])
	if err != nil {
		return err
	}
	v, resolved := expr.resolve(a.symtab)
	if !resolved {
		// An origin must be known to size anything that follows, so a
		// forward reference here is undefined in both passes.
		return errors.WithStack(NewUndefinedSymbol(expr.symbol))
	}
	addr := uint16(v)
	a.obj.setOrigin(addr)
	if a.generate {
		if err := a.obj.padTo(addr); err != nil {
			return err
		}
	}
	a.loc = int32(addr)
	return nil
}

func handleByte(a *Assembler, label string, groups []string) error {
	items := splitOperandList(groups[0])
	for _, item := range items {
		expr, err := parseExpression(item)
		if err != nil {
			return err
		}
		v, resolved := expr.resolve(a.symtab)
		if !a.generate {
			a.loc++
			continue
		}
		if !resolved {
			return errors.WithStack(NewUndefinedSymbol(exprSymbolOr(expr, item)))
		}
		a.emit(byte(v))
	}
	return nil
}

func handleWord(a *Assembler, label string, groups []string) error {
	items := splitOperandList(groups[0])
	for _, item := range items {
		expr, err := parseExpression(item)
		if err != nil {
			return err
		}
		v, resolved := expr.resolve(a.symtab)
		if !a.generate {
			a.loc += 2
			continue
		}
		if !resolved {
			return errors.WithStack(NewUndefinedSymbol(exprSymbolOr(expr, item)))
		}
		a.emit(byte(v), byte(v>>8))
	}
	return nil
}

func handleImplied(a *Assembler, label string, groups []string) error {
	return a.assembleInstruction(strings.ToUpper(groups[0]), mos6510.Implied, nil)
}

func handleImmediate(a *Assembler, label string, groups []string) error {
	return a.assembleInstruction(strings.ToUpper(groups[0]), mos6510.Immediate, &groups[1])
}

func handleIndirectIndexedY(a *Assembler, label string, groups []string) error {
	return a.assembleInstruction(strings.ToUpper(groups[0]), mos6510.IndirectIndexedY, &groups[1])
}

func handleIndexedIndirectX(a *Assembler, label string, groups []string) error {
	return a.assembleInstruction(strings.ToUpper(groups[0]), mos6510.IndexedIndirectX, &groups[1])
}

func handleIndirect(a *Assembler, label string, groups []string) error {
	return a.assembleInstruction(strings.ToUpper(groups[0]), mos6510.Indirect, &groups[1])
}

func handleIndexedX(a *Assembler, label string, groups []string) error {
	return a.assembleIndexedOrBranch(strings.ToUpper(groups[0]), mos6510.AbsoluteX, groups[1])
}

func handleIndexedY(a *Assembler, label string, groups []string) error {
	return a.assembleIndexedOrBranch(strings.ToUpper(groups[0]), mos6510.AbsoluteY, groups[1])
}

func handleAbsoluteOrZeroPage(a *Assembler, label string, groups []string) error {
	return a.assembleIndexedOrBranch(strings.ToUpper(groups[0]), mos6510.Absolute, groups[1])
}

func splitOperandList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func exprSymbolOr(e *expression, fallback string) string {
	if e.symbol != "" {
		return e.symbol
	}
	return fallback
}
