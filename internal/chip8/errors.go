package chip8

import (
	"errors"
	"fmt"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Fault conditions reported by the virtual machine. The execution faults are
// the CPU errors of retrogolib so that callers can match either name.
var (
	ErrStackOverflow     = cpu.ErrStackOverflow
	ErrStackUnderflow    = cpu.ErrStackUnderflow
	ErrKeyOutOfRange     = cpu.ErrKeyIndexOutOfBounds
	ErrMemoryOutOfBounds = cpu.ErrMemoryOutOfBounds

	ErrROMTooLarge = errors.New("rom too large")
)

// Fault describes an error that occurred while executing a single instruction.
// It unwraps to one of the sentinel errors of this package.
type Fault struct {
	Err    error
	PC     uint16 // address of the faulting instruction
	Opcode uint16
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at $%03X (opcode %04X)", f.Err, f.PC, f.Opcode)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
