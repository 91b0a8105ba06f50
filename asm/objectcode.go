package asm

import "github.com/pkg/errors"

// ObjectCode is the assembler's output: an origin address and the
// bytes assembled starting there. Empty (HasOrigin false) before the
// first .ORG/*= directive is seen.
type ObjectCode struct {
	Origin    uint16
	HasOrigin bool
	Bytes     []byte
}

// setOrigin records the object code's origin the first time it is
// set; later .ORG/*= directives move the location counter but do not
// change Origin.
func (o *ObjectCode) setOrigin(addr uint16) {
	if !o.HasOrigin {
		o.Origin = addr
		o.HasOrigin = true
	}
}

// currentAddr returns the address the next appended byte will occupy.
func (o *ObjectCode) currentAddr() uint16 {
	return o.Origin + uint16(len(o.Bytes))
}

// append writes b at the current location counter.
func (o *ObjectCode) append(b ...byte) {
	o.Bytes = append(o.Bytes, b...)
}

// padTo advances the location counter to addr, writing zero bytes for
// the gap. addr must not be behind the current location counter; a
// backward move is an AddrOutOfRange error.
func (o *ObjectCode) padTo(addr uint16) error {
	cur := o.currentAddr()
	if addr < cur {
		return errors.WithStack(NewAddrOutOfRange(int32(addr), int32(cur)))
	}
	for o.currentAddr() < addr {
		o.Bytes = append(o.Bytes, 0)
	}
	return nil
}
