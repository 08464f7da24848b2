// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	opts.System = strings.ToLower(opts.System)

	switch opts.Frontend {
	case options.FrontendTerminal, options.FrontendWindow:
	case options.FrontendHeadless:
		if opts.Cycles == 0 {
			return errors.New("headless frontend requires a cycle limit, use -cycles")
		}
		opts.Unpaced = true
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join([]string{options.FrontendTerminal, options.FrontendWindow, options.FrontendHeadless}, ", "))
	}

	if opts.TickRate <= 0 {
		return fmt.Errorf("invalid tick rate %d, must be positive", opts.TickRate)
	}
	if opts.InstructionsPerTick <= 0 {
		return fmt.Errorf("invalid instructions per tick %d, must be positive", opts.InstructionsPerTick)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.WavFile, "wav", "", "name of a .wav file to record the tone output to")
	flags.StringVar(&opts.System, "s", "", "system to emulate (chip8) - if not auto-detected from file extension")
	flags.StringVar(&opts.Frontend, "f", options.FrontendTerminal, "frontend to use (terminal/window/headless)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Mute, "mute", false, "disable audio output")
	flags.IntVar(&opts.TickRate, "hz", 60, "timer ticks per second")
	flags.IntVar(&opts.InstructionsPerTick, "ipt", 1, "instructions executed per timer tick")
	flags.Uint64Var(&opts.Cycles, "cycles", 0, "stop after the given number of ticks, 0 runs until the frontend is closed")
	flags.BoolVar(&opts.ShiftUsesVy, "shift-vy", false, "shift instructions 8xy6/8xyE read Vy instead of Vx")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number generator seed, 0 picks a random seed")
	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor")
}
