// Package mnemonic formats CHIP-8 instruction words as assembly text.
// It is used for instruction traces and state inspection output.
package mnemonic

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the instruction descriptor for an instruction word by
// matching it against the opcode masks of its high nibble group.
func Lookup(opcode uint16) (*chip8.Instruction, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction, op.Instruction != nil
		}
	}
	return nil, false
}

// Format returns the assembly representation of an instruction word.
// Words that do not encode a known instruction are output as data.
func Format(opcode uint16) string {
	ins, ok := Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParams(ins, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

func formatParams(ins *chip8.Instruction, opcode uint16) string {
	switch ins {
	case chip8.ClsInst, chip8.RetInst:
		return ""
	case chip8.JpInst:
		return formatJump(opcode)
	case chip8.CallInst:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeInst, chip8.SneInst:
		return formatCompare(opcode)
	case chip8.LdInst:
		return formatLoad(opcode)
	case chip8.AddInst:
		return formatAdd(opcode)
	case chip8.OrInst, chip8.AndInst, chip8.XorInst, chip8.SubInst, chip8.SubnInst:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.ShrInst, chip8.ShlInst, chip8.SkpInst, chip8.SknpInst:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8.RndInst:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8.DrwInst:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	}
	return ""
}

func formatJump(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return fmt.Sprintf("$%03X", opcode&0x0FFF)
}

// formatCompare handles 3xnn/4xnn with a byte operand and 5xy0/9xy0 with a register.
func formatCompare(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	default:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
}

func formatLoad(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	}

	switch opcode & 0x00FF {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

func formatAdd(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	default:
		return fmt.Sprintf("I, V%X", x)
	}
}

func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
