package chip8

// Instruction contains the fixed-width fields of a raw 16-bit instruction word.
type Instruction struct {
	Opcode uint16 // raw instruction word
	Op     uint8  // bits 12-15
	X      uint8  // bits 8-11
	Y      uint8  // bits 4-7
	N      uint8  // bits 0-3
	NN     uint8  // bits 0-7
	NNN    uint16 // bits 0-11
}

// Decode splits an instruction word into its fields. Every word decodes,
// whether it maps to a known instruction is decided at dispatch.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		Op:     uint8(opcode >> 12),
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}
}
