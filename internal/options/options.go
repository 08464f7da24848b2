// Package options contains the program options.
package options

import "time"

// Frontend names.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

// Parameters contains file path options.
type Parameters struct {
	Input   string `flag:"i" usage:"input ROM file"`
	WavFile string `flag:"wav" usage:"record the tone output to a .wav file"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Frontend string `flag:"f" usage:"frontend: terminal, window, headless" default:"terminal"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction"`
	Mute     bool   `flag:"mute" usage:"disable audio output"`
}

// Machine contains the emulation options.
type Machine struct {
	TickRate            int    `flag:"hz" usage:"timer ticks per second" default:"60"`
	InstructionsPerTick int    `flag:"ipt" usage:"instructions executed per tick" default:"1"`
	Cycles              uint64 `flag:"cycles" usage:"stop after the given number of ticks, 0 runs until closed"`
	ShiftUsesVy         bool   `flag:"shift-vy" usage:"shift instructions read Vy instead of Vx"`
	Seed                uint64 `flag:"seed" usage:"random number generator seed, 0 picks a random seed"`
	Scale               int    `flag:"scale" usage:"window scale factor" default:"10"`

	// Unpaced runs ticks back to back instead of at TickRate.
	Unpaced bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Machine
}

// TickInterval returns the duration of a single tick.
func (m Machine) TickInterval() time.Duration {
	if m.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(m.TickRate)
}
