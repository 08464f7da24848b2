package mnemonic

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   *chip8.Instruction
	}{
		{"cls", 0x00E0, chip8.ClsInst},
		{"ret", 0x00EE, chip8.RetInst},
		{"jp", 0x1234, chip8.JpInst},
		{"call", 0x2345, chip8.CallInst},
		{"ld byte", 0x6A12, chip8.LdInst},
		{"add byte", 0x7A12, chip8.AddInst},
		{"drw", 0xD125, chip8.DrwInst},
		{"skp", 0xE19E, chip8.SkpInst},
		{"sknp", 0xE1A1, chip8.SknpInst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, ok := Lookup(tt.opcode)
			assert.True(t, ok)
			assert.Equal(t, tt.want, ins)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   string
	}{
		{"cls", 0x00E0, chip8.ClsInst.Name},
		{"jump", 0x1234, chip8.JpInst.Name + " $234"},
		{"jump offset", 0xB234, chip8.JpInst.Name + " V0, $234"},
		{"call", 0x2ABC, chip8.CallInst.Name + " $ABC"},
		{"skip equal byte", 0x3A12, chip8.SeInst.Name + " VA, $12"},
		{"skip not equal register", 0x9AB0, chip8.SneInst.Name + " VA, VB"},
		{"load byte", 0x6A12, chip8.LdInst.Name + " VA, $12"},
		{"load index", 0xA2F0, chip8.LdInst.Name + " I, $2F0"},
		{"load delay", 0xF307, chip8.LdInst.Name + " V3, DT"},
		{"store registers", 0xF355, chip8.LdInst.Name + " [I], V3"},
		{"add register", 0x8124, chip8.AddInst.Name + " V1, V2"},
		{"xor", 0x8123, chip8.XorInst.Name + " V1, V2"},
		{"shift", 0x810E, chip8.ShlInst.Name + " V1"},
		{"random", 0xC40F, chip8.RndInst.Name + " V4, $0F"},
		{"draw", 0xD125, chip8.DrwInst.Name + " V1, V2, $5"},
		{"skip key", 0xE59E, chip8.SkpInst.Name + " V5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.opcode))
		})
	}
}

func TestFormatUnknown(t *testing.T) {
	assert.Equal(t, ".word $F1FF", Format(0xF1FF))
}
