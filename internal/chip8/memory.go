package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: built-in font sprites (16 glyphs, 5 bytes each)
//	0x0A0-0x1FF: unused interpreter area
//	0x200-0xFFF: program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address that programs are loaded to and start executing at.
	ProgramStart = 0x200

	// MaxROMSize is the largest program that fits into memory.
	MaxROMSize = MemorySize - ProgramStart

	// FontBase is the address of the first font glyph.
	FontBase = 0x050

	// FontGlyphSize is the number of bytes of a single font glyph.
	FontGlyphSize = 5
)

// font contains the hexadecimal digit sprites 0-F, each 4 pixels wide and 5 rows tall.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4KB address space of the machine.
type Memory [MemorySize]byte

// reset clears the memory and writes the font table.
func (m *Memory) reset() {
	*m = Memory{}
	copy(m[FontBase:], font[:])
}

// load copies a program to ProgramStart.
func (m *Memory) load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	copy(m[ProgramStart:], rom)
	return nil
}

// checkRange returns an error if any address of [address, address+length) is
// outside of the memory.
func (m *Memory) checkRange(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return fmt.Errorf("%w: $%04X+%d", ErrMemoryOutOfBounds, address, length)
	}
	return nil
}

// ReadWord returns the big-endian 16-bit word at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if err := m.checkRange(address, 2); err != nil {
		return 0, err
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}
