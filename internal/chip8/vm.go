package chip8

import (
	"math/rand/v2"
)

// Options configures the behavior of a virtual machine.
type Options struct {
	// ShiftUsesVy makes 8xy6 and 8xyE shift Vy into Vx as the original
	// COSMAC VIP interpreter did. By default only Vx is shifted.
	ShiftUsesVy bool

	// Seed initializes the random number generator used by Cxnn.
	// A zero seed picks a random seed.
	Seed uint64

	// Random overrides the random byte source used by Cxnn.
	Random func() uint8
}

// StepResult contains the observable outputs of a single step.
type StepResult struct {
	DisplayDirty bool // the display buffer was cleared or drawn to
	ToneActive   bool // the sound timer is exactly 1
}

// Snapshot is an immutable copy of the machine state for inspection.
type Snapshot struct {
	Registers  Registers
	Delay      uint8
	Sound      uint8
	LastOpcode uint16
	State      State
	Cycles     uint64
	ToneActive bool
}

// VM is a CHIP-8 virtual machine. All machine state is owned by the instance.
type VM struct {
	options Options
	random  func() uint8

	memory  Memory
	regs    Registers
	timers  Timers
	display Display
	keys    Keys
	state   State

	rom        []byte
	lastOpcode uint16
	cycles     uint64
	dirty      bool
}

// New returns a new virtual machine in power-on state with the font loaded.
func New(options Options) *VM {
	vm := &VM{
		options: options,
		random:  options.Random,
	}
	if vm.random == nil {
		seed := options.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
		vm.random = func() uint8 {
			return uint8(rng.UintN(256))
		}
	}
	vm.Reset()
	return vm
}

// Load copies a program into memory at ProgramStart. Programs larger than
// the available program space are rejected with ErrROMTooLarge.
func (vm *VM) Load(rom []byte) error {
	if err := vm.memory.load(rom); err != nil {
		return err
	}
	vm.rom = append(vm.rom[:0], rom...)
	return nil
}

// Reset restores the power-on state. A loaded program stays in memory.
func (vm *VM) Reset() {
	vm.memory.reset()
	if len(vm.rom) > 0 {
		// the rom was size checked when it was loaded
		_ = vm.memory.load(vm.rom)
	}
	vm.regs = Registers{PC: ProgramStart}
	vm.timers = Timers{}
	vm.display.Clear()
	vm.keys = Keys{}
	vm.state = Running
	vm.lastOpcode = 0
	vm.cycles = 0
	vm.dirty = false
}

// Step executes exactly one instruction using the given input snapshot.
// A fault leaves the program counter on the faulting instruction.
func (vm *VM) Step(keys Keys) (StepResult, error) {
	vm.keys = keys
	vm.dirty = false

	pc := vm.regs.PC
	opcode, err := vm.memory.ReadWord(pc)
	if err != nil {
		return StepResult{}, &Fault{Err: err, PC: pc}
	}

	ins := Decode(opcode)
	vm.lastOpcode = opcode
	vm.regs.PC += 2

	if err := dispatch(vm, ins); err != nil {
		vm.regs.PC = pc
		return StepResult{}, &Fault{Err: err, PC: pc, Opcode: opcode}
	}
	vm.cycles++

	return StepResult{
		DisplayDirty: vm.dirty,
		ToneActive:   vm.timers.ToneActive(),
	}, nil
}

// Tick advances the delay and sound timers by one tick.
func (vm *VM) Tick() {
	vm.timers.Tick()
}

// ToneActive returns whether the tone should currently sound.
func (vm *VM) ToneActive() bool {
	return vm.timers.ToneActive()
}

// Display returns a copy of the display buffer.
func (vm *VM) Display() Frame {
	return vm.display.Snapshot()
}

// State returns the execution state of the machine.
func (vm *VM) State() State {
	return vm.state
}

// ReadMemory returns the byte at the given address, addresses wrap at 4KB.
func (vm *VM) ReadMemory(address uint16) byte {
	return vm.memory[address&MaxAddress]
}

// Snapshot returns a copy of the registers, timers and execution state.
func (vm *VM) Snapshot() Snapshot {
	return Snapshot{
		Registers:  vm.regs,
		Delay:      vm.timers.Delay,
		Sound:      vm.timers.Sound,
		LastOpcode: vm.lastOpcode,
		State:      vm.state,
		Cycles:     vm.cycles,
		ToneActive: vm.timers.ToneActive(),
	}
}
