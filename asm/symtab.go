package asm

import "github.com/pkg/errors"

// symbolTable maps a case-sensitive identifier to a signed 32-bit
// value: label addresses and caller-supplied pre-defined constants
// share the same namespace.
type symbolTable struct {
	values      map[string]int32
	definedPass map[string]int // which pass last called define(name, ...)
	pass        int            // current pass number, set by setPass
}

func newSymbolTable(predefined map[string]int32) *symbolTable {
	t := &symbolTable{
		values:      make(map[string]int32, len(predefined)),
		definedPass: make(map[string]int),
	}
	for k, v := range predefined {
		t.values[k] = v
	}
	return t
}

// setPass records which pass is currently running, so define can tell
// a same-pass duplicate label apart from the pass-2 re-walk seeing a
// label pass 1 already recorded.
func (t *symbolTable) setPass(pass int) {
	t.pass = pass
}

func (t *symbolTable) lookup(name string) (int32, bool) {
	v, ok := t.values[name]
	return v, ok
}

// define records name=value. A symbol may not be redefined within the
// same pass, even with an identical value. Across passes, the pass-2
// re-walk is expected to define every label again with the value pass
// 1 already recorded; a value mismatch there means pass 1 and pass 2
// disagreed about line sizing, a bug rather than legitimate input.
func (t *symbolTable) define(name string, value int32) error {
	existing, ok := t.values[name]
	if !ok {
		t.values[name] = value
		t.definedPass[name] = t.pass
		return nil
	}
	if definedPass, seen := t.definedPass[name]; seen && definedPass == t.pass {
		return errors.WithStack(NewGeneralError(
			"symbol " + name + " redefined within the same pass"))
	}
	if existing != value {
		return errors.WithStack(NewGeneralError(
			"symbol " + name + " redefined with a different value"))
	}
	t.definedPass[name] = t.pass
	return nil
}
