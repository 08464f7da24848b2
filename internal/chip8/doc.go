// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted virtual machine from the 1970s with:
//   - 4KB of memory (0x000-MaxAddress), font sprites at FontBase, programs at ProgramStart
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as carry/borrow/collision flag
//   - a 16-bit index register I and a 16-bit program counter
//   - a 16-level call stack
//   - delay and sound timers decremented once per external tick
//   - a 64x32 monochrome display buffer and a 16-key input pad
//
// # Execution Model
//
// The VM is single-threaded and synchronous. Each call to Step executes exactly one
// instruction against the supplied input snapshot and returns. Nothing in the core
// blocks: the "wait for key" instruction (Fx0A) keeps the program counter on itself
// and switches the machine to the AwaitingKey state until a key is pressed.
// Timers are advanced separately by Tick, on the driver's schedule.
//
// Faults are returned from Step as *Fault values that unwrap to one of the sentinel
// errors of this package. The core never logs and never terminates the process.
//
// # Usage Example
//
//	vm := chip8.New(chip8.Options{})
//	if err := vm.Load(rom); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//	for {
//		result, err := vm.Step(keys)
//		if err != nil {
//			return err
//		}
//		vm.Tick()
//		if result.DisplayDirty {
//			render(vm.Display())
//		}
//	}
package chip8
