package mos6510

// Memory is a flat 64 KiB byte-addressable address space. Reads and
// writes never fail; every address is reduced modulo 2^16 before
// indexing, so arithmetic on addresses wraps naturally. Grounded on
// the reference codebase's Bus (nes/bus.go), stripped of PPU/cartridge
// mirroring and given plain byte/word RAM accessors.
type Memory struct {
	ram [65536]byte
}

// NewMemory returns a zeroed 64 KiB address space.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadByte returns the byte at addr.
func (m *Memory) ReadByte(addr uint16) byte {
	return m.ram[addr]
}

// WriteByte stores data at addr.
func (m *Memory) WriteByte(addr uint16, data byte) {
	m.ram[addr] = data
}

// ReadWord returns the little-endian word at addr, wrapping to addr+1
// mod 65536 for the high byte.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.ram[addr]
	hi := m.ram[addr+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores a little-endian word at addr, with the same
// wrap-around as ReadWord.
func (m *Memory) WriteWord(addr uint16, data uint16) {
	m.ram[addr] = byte(data)
	m.ram[addr+1] = byte(data >> 8)
}

// LoadAt bulk-writes data starting at base. Unlike ReadByte/WriteByte,
// this does NOT wrap: it truncates at the end of the address space
// rather than continuing from 0x0000.
func (m *Memory) LoadAt(base uint16, data []byte) {
	n := len(data)
	if int(base)+n > len(m.ram) {
		n = len(m.ram) - int(base)
	}
	copy(m.ram[base:int(base)+n], data[:n])
}

// View returns a slice alias (not a copy) of length bytes starting at
// start, for read-only inspection such as a debug dump.
// Callers must not retain it across a write to the aliased range.
func (m *Memory) View(start, length int) []byte {
	end := start + length
	if end > len(m.ram) {
		end = len(m.ram)
	}
	return m.ram[start:end]
}

// Len reports the fixed capacity of the address space, always 65536.
func (m *Memory) Len() int {
	return len(m.ram)
}
