package asm

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var (
	reHex     = regexp.MustCompile(`^\$([0-9A-Fa-f]{1,4})$`)
	reBinary  = regexp.MustCompile(`^%([01]{1,16})$`)
	reDecimal = regexp.MustCompile(`^[+-]?[0-9]{1,5}$`)
	reSymbol  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// expression is a parsed operand expression: an optional lo/hi-byte
// modifier applied to one of a hex/binary/decimal literal or a symbol
// reference.
type expression struct {
	modifier byte // 0, '<', or '>'
	literal  bool
	value    int32  // meaningful when literal
	symbol   string // meaningful when !literal

	// explicitWide records that a hex or binary literal was written
	// with more digits/bits than a byte needs ($00FF, %0000000011111111):
	// the programmer's digit count is a deliberate width signal, so
	// auto-selection must honor it even when the numeric value would
	// otherwise fit a zero-page operand (`LDA $00FF` assembles absolute
	// despite 0x00FF == 0xFF).
	explicitWide bool
}

// parseExpression splits off the leading modifier and classifies the
// remainder as one of the four expression forms: hex, binary, decimal,
// or symbol.
func parseExpression(text string) (*expression, error) {
	expr := &expression{}
	if len(text) > 0 && (text[0] == '<' || text[0] == '>') {
		expr.modifier = text[0]
		text = text[1:]
	}
	if text == "" {
		return nil, errors.WithStack(NewSyntaxError("empty expression"))
	}

	switch {
	case reHex.MatchString(text):
		m := reHex.FindStringSubmatch(text)
		v, err := strconv.ParseInt(m[1], 16, 64)
		if err != nil {
			return nil, errors.WithStack(NewParseIntError(text))
		}
		expr.literal = true
		expr.value = int32(v)
		expr.explicitWide = len(m[1]) > 2
	case reBinary.MatchString(text):
		m := reBinary.FindStringSubmatch(text)
		v, err := strconv.ParseInt(m[1], 2, 64)
		if err != nil {
			return nil, errors.WithStack(NewParseIntError(text))
		}
		expr.literal = true
		expr.value = int32(v)
		expr.explicitWide = len(m[1]) > 8
	case reDecimal.MatchString(text):
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.WithStack(NewParseIntError(text))
		}
		expr.literal = true
		expr.value = int32(v)
	case reSymbol.MatchString(text):
		expr.symbol = text
	default:
		return nil, errors.WithStack(NewParseIntError(text))
	}

	return expr, nil
}

// resolve looks the expression up against the symbol table (symbols
// only; literals resolve unconditionally) and applies the lo/hi
// modifier. resolved is false only for an undefined symbol, which
// pass 1 tolerates and pass 2 treats as fatal.
func (e *expression) resolve(symtab *symbolTable) (value int32, resolved bool) {
	var raw int32
	if e.literal {
		raw = e.value
		resolved = true
	} else {
		raw, resolved = symtab.lookup(e.symbol)
	}
	if !resolved {
		return 0, false
	}
	return applyModifier(e.modifier, raw), true
}

func applyModifier(modifier byte, value int32) int32 {
	switch modifier {
	case '<':
		return value & 0xFF
	case '>':
		return (value >> 8) & 0xFF
	default:
		return value
	}
}

// fitsByte reports whether an already-resolved value should be
// assembled with a zero-page (one byte) operand rather than an
// absolute (two byte) one. A lo/hi modifier always forces a single
// byte. A literal written with an explicitly wide digit/bit count
// (e.g. $00FF) is never narrowed, regardless of its numeric value;
// otherwise the numeric range 0..255 decides.
func (e *expression) fitsByte(value int32) bool {
	if e.modifier != 0 {
		return true
	}
	if e.explicitWide {
		return false
	}
	return value >= 0 && value <= 0xFF
}
