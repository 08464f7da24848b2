package chip8

import "fmt"

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// FlagRegister is the index of VF, the carry, borrow and collision flag register.
const FlagRegister = 0xF

// State is the execution state of the machine.
type State uint8

// Machine states.
const (
	Running State = iota
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Registers contains the CPU registers and the call stack.
type Registers struct {
	V     [16]uint8
	I     uint16
	PC    uint16
	SP    uint8
	Stack [StackDepth]uint16
}

// push stores a return address on the stack.
// SP counts the stored frames, the newest frame lives at Stack[SP-1].
func (r *Registers) push(address uint16) error {
	if r.SP >= StackDepth {
		return ErrStackOverflow
	}
	r.SP++
	r.Stack[r.SP-1] = address
	return nil
}

// pop returns the last pushed return address.
func (r *Registers) pop() (uint16, error) {
	if r.SP == 0 {
		return 0, ErrStackUnderflow
	}
	address := r.Stack[r.SP-1]
	r.SP--
	return address, nil
}
