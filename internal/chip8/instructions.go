package chip8

// handler executes a decoded instruction. The program counter already points
// to the next instruction when a handler is called.
type handler func(vm *VM, ins Instruction) error

// opcodeHandlers is keyed by the high nibble of the instruction word.
var opcodeHandlers = [16]handler{
	0x0: execSystem,
	0x1: execJump,
	0x2: execCall,
	0x3: execSkipEqualByte,
	0x4: execSkipNotEqualByte,
	0x5: execSkipEqualRegister,
	0x6: execLoadByte,
	0x7: execAddByte,
	0x8: execArithmetic,
	0x9: execSkipNotEqualRegister,
	0xA: execLoadIndex,
	0xB: execJumpOffset,
	0xC: execRandom,
	0xD: execDraw,
	0xE: execKeySkip,
	0xF: execMisc,
}

// arithmeticHandlers is keyed by the low nibble of 8xyN instructions.
var arithmeticHandlers = [16]handler{
	0x0: execAssign,
	0x1: execOr,
	0x2: execAnd,
	0x3: execXor,
	0x4: execAdd,
	0x5: execSub,
	0x6: execShiftRight,
	0x7: execSubN,
	0xE: execShiftLeft,
}

// miscHandlers is keyed by the low byte of FxNN instructions.
var miscHandlers = map[uint8]handler{
	0x07: execLoadDelay,
	0x0A: execWaitKey,
	0x15: execSetDelay,
	0x18: execSetSound,
	0x1E: execAddIndex,
	0x29: execLoadFont,
	0x33: execStoreBCD,
	0x55: execStoreRegisters,
	0x65: execLoadRegisters,
}

// dispatch executes the instruction. Unknown instructions are ignored.
func dispatch(vm *VM, ins Instruction) error {
	return opcodeHandlers[ins.Op](vm, ins)
}

func execSystem(vm *VM, ins Instruction) error {
	switch ins.Opcode {
	case 0x00E0:
		vm.display.Clear()
		vm.dirty = true
	case 0x00EE:
		address, err := vm.regs.pop()
		if err != nil {
			return err
		}
		vm.regs.PC = address
	}
	// 0nnn machine code routines are not supported and ignored
	return nil
}

func execJump(vm *VM, ins Instruction) error {
	vm.regs.PC = ins.NNN
	return nil
}

func execCall(vm *VM, ins Instruction) error {
	if err := vm.regs.push(vm.regs.PC); err != nil {
		return err
	}
	vm.regs.PC = ins.NNN
	return nil
}

func (vm *VM) skipIf(condition bool) {
	if condition {
		vm.regs.PC += 2
	}
}

func execSkipEqualByte(vm *VM, ins Instruction) error {
	vm.skipIf(vm.regs.V[ins.X] == ins.NN)
	return nil
}

func execSkipNotEqualByte(vm *VM, ins Instruction) error {
	vm.skipIf(vm.regs.V[ins.X] != ins.NN)
	return nil
}

func execSkipEqualRegister(vm *VM, ins Instruction) error {
	if ins.N != 0 {
		return nil
	}
	vm.skipIf(vm.regs.V[ins.X] == vm.regs.V[ins.Y])
	return nil
}

func execSkipNotEqualRegister(vm *VM, ins Instruction) error {
	if ins.N != 0 {
		return nil
	}
	vm.skipIf(vm.regs.V[ins.X] != vm.regs.V[ins.Y])
	return nil
}

func execLoadByte(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] = ins.NN
	return nil
}

// execAddByte wraps around on overflow and leaves VF untouched.
func execAddByte(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] += ins.NN
	return nil
}

func execArithmetic(vm *VM, ins Instruction) error {
	h := arithmeticHandlers[ins.N]
	if h == nil {
		return nil
	}
	return h(vm, ins)
}

func execAssign(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] = vm.regs.V[ins.Y]
	return nil
}

func execOr(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] |= vm.regs.V[ins.Y]
	return nil
}

func execAnd(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] &= vm.regs.V[ins.Y]
	return nil
}

func execXor(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] ^= vm.regs.V[ins.Y]
	return nil
}

// The flag producing instructions below compute the flag from the operands,
// store the result and write VF last. With x = F the flag wins.

func execAdd(vm *VM, ins Instruction) error {
	sum := uint16(vm.regs.V[ins.X]) + uint16(vm.regs.V[ins.Y])
	vm.regs.V[ins.X] = uint8(sum)
	vm.regs.V[FlagRegister] = boolToFlag(sum > 0xFF)
	return nil
}

func execSub(vm *VM, ins Instruction) error {
	vx, vy := vm.regs.V[ins.X], vm.regs.V[ins.Y]
	vm.regs.V[ins.X] = vx - vy
	vm.regs.V[FlagRegister] = boolToFlag(vx > vy)
	return nil
}

func execSubN(vm *VM, ins Instruction) error {
	vx, vy := vm.regs.V[ins.X], vm.regs.V[ins.Y]
	vm.regs.V[ins.X] = vy - vx
	vm.regs.V[FlagRegister] = boolToFlag(vy > vx)
	return nil
}

func execShiftRight(vm *VM, ins Instruction) error {
	value := vm.shiftSource(ins)
	vm.regs.V[ins.X] = value >> 1
	vm.regs.V[FlagRegister] = value & 0x01
	return nil
}

func execShiftLeft(vm *VM, ins Instruction) error {
	value := vm.shiftSource(ins)
	vm.regs.V[ins.X] = value << 1
	vm.regs.V[FlagRegister] = value >> 7
	return nil
}

// shiftSource returns the value to shift, Vx by default or Vy when the
// shift quirk is enabled.
func (vm *VM) shiftSource(ins Instruction) uint8 {
	if vm.options.ShiftUsesVy {
		return vm.regs.V[ins.Y]
	}
	return vm.regs.V[ins.X]
}

func execLoadIndex(vm *VM, ins Instruction) error {
	vm.regs.I = ins.NNN
	return nil
}

func execJumpOffset(vm *VM, ins Instruction) error {
	vm.regs.PC = ins.NNN + uint16(vm.regs.V[0])
	return nil
}

func execRandom(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] = vm.random() & ins.NN
	return nil
}

// execDraw XORs an N byte sprite from memory at I onto the display at (Vx, Vy).
// Pixels running off an edge wrap around the whole buffer.
func execDraw(vm *VM, ins Instruction) error {
	rows := int(ins.N)
	if err := vm.memory.checkRange(vm.regs.I, rows); err != nil {
		return err
	}

	x := int(vm.regs.V[ins.X] % DisplayWidth)
	y := int(vm.regs.V[ins.Y] % DisplayHeight)
	var collision bool

	for row := range rows {
		line := vm.memory[int(vm.regs.I)+row]
		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			if vm.display.Toggle(pixelIndex(x+col, y+row)) {
				collision = true
			}
		}
	}

	vm.regs.V[FlagRegister] = boolToFlag(collision)
	vm.dirty = true
	return nil
}

func execKeySkip(vm *VM, ins Instruction) error {
	var skipWhenPressed bool
	switch ins.NN {
	case 0x9E:
		skipWhenPressed = true
	case 0xA1:
	default:
		return nil
	}

	pressed, ok := vm.keys.Pressed(vm.regs.V[ins.X])
	if !ok {
		return ErrKeyOutOfRange
	}
	vm.skipIf(pressed == skipWhenPressed)
	return nil
}

func execMisc(vm *VM, ins Instruction) error {
	h, ok := miscHandlers[ins.NN]
	if !ok {
		return nil
	}
	return h(vm, ins)
}

func execLoadDelay(vm *VM, ins Instruction) error {
	vm.regs.V[ins.X] = vm.timers.Delay
	return nil
}

// execWaitKey stores the lowest pressed key in Vx. Without a pressed key the
// program counter is moved back onto this instruction so that the next step
// evaluates it again.
func execWaitKey(vm *VM, ins Instruction) error {
	key, ok := vm.keys.First()
	if !ok {
		vm.regs.PC -= 2
		vm.state = AwaitingKey
		return nil
	}
	vm.regs.V[ins.X] = key
	vm.state = Running
	return nil
}

func execSetDelay(vm *VM, ins Instruction) error {
	vm.timers.Delay = vm.regs.V[ins.X]
	return nil
}

func execSetSound(vm *VM, ins Instruction) error {
	vm.timers.Sound = vm.regs.V[ins.X]
	return nil
}

func execAddIndex(vm *VM, ins Instruction) error {
	vm.regs.I += uint16(vm.regs.V[ins.X])
	return nil
}

func execLoadFont(vm *VM, ins Instruction) error {
	vm.regs.I = FontBase + FontGlyphSize*uint16(vm.regs.V[ins.X])
	return nil
}

func execStoreBCD(vm *VM, ins Instruction) error {
	i := vm.regs.I
	if err := vm.memory.checkRange(i, 3); err != nil {
		return err
	}
	value := vm.regs.V[ins.X]
	vm.memory[i] = value / 100
	vm.memory[i+1] = value / 10 % 10
	vm.memory[i+2] = value % 10
	return nil
}

// execStoreRegisters copies V0 to Vx inclusive to memory at I. I is not modified.
func execStoreRegisters(vm *VM, ins Instruction) error {
	count := int(ins.X) + 1
	if err := vm.memory.checkRange(vm.regs.I, count); err != nil {
		return err
	}
	copy(vm.memory[vm.regs.I:], vm.regs.V[:count])
	return nil
}

// execLoadRegisters fills V0 to Vx inclusive from memory at I. I is not modified.
func execLoadRegisters(vm *VM, ins Instruction) error {
	count := int(ins.X) + 1
	if err := vm.memory.checkRange(vm.regs.I, count); err != nil {
		return err
	}
	copy(vm.regs.V[:count], vm.memory[vm.regs.I:])
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
