// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// FrontendConstructor creates the frontend for a program run.
type FrontendConstructor func(logger *log.Logger, opts options.Program) (config.Frontend, error)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger      *log.Logger
	detector    *detector.Detector
	loader      *loader.Loader
	newFrontend FrontendConstructor
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:      logger,
		detector:    detector.New(logger),
		loader:      loader.New(),
		newFrontend: config.CreateFrontend,
	}
}

// Execute runs the complete emulation pipeline and returns the final machine state.
// The returned snapshot is also set when the machine faulted.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*chip8.Snapshot, error) {
	// Detect system architecture
	system, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting system: %w", err)
	}

	// Load program
	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, system, len(rom))
	return p.ExecuteWithROM(ctx, rom, opts)
}

// ExecuteWithROM runs the emulation pipeline with a pre-loaded program.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program) (*chip8.Snapshot, error) {
	vm := chip8.New(chip8.Options{
		ShiftUsesVy: opts.ShiftUsesVy,
		Seed:        opts.Seed,
	})
	if err := vm.Load(rom); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}

	frontend, err := p.newFrontend(p.logger, opts)
	if err != nil {
		return nil, fmt.Errorf("creating frontend: %w", err)
	}
	if err := frontend.Open(); err != nil {
		return nil, fmt.Errorf("opening frontend: %w", err)
	}
	defer p.closeResource("frontend", frontend.Close)

	run := runner.New(p.logger, vm, frontend, opts.Machine, opts.Trace)

	if beeper := p.createBeeper(opts, run); beeper != nil {
		defer p.closeResource("audio", beeper.Close)
	}

	if opts.WavFile != "" {
		recorder, err := audio.NewRecorder(opts.WavFile, opts.TickRate)
		if err != nil {
			return nil, fmt.Errorf("creating wav recorder: %w", err)
		}
		run.AddObserver(recorder)
		defer p.closeResource("wav recorder", recorder.Close)
	}

	err = run.Run(ctx)
	snapshot := run.Snapshot()
	p.logger.Debug("Emulation finished",
		log.Int("ticks", int(run.Ticks())),
		log.Int("cycles", int(snapshot.Cycles)))
	if err != nil {
		return snapshot, fmt.Errorf("running program: %w", err)
	}
	return snapshot, nil
}

// createBeeper starts the audio output. A missing audio device is not fatal,
// the program runs without sound in that case.
func (p *Pipeline) createBeeper(opts options.Program, run *runner.Runner) *audio.Beeper {
	if opts.Mute || opts.Frontend == options.FrontendHeadless {
		return nil
	}

	beeper, err := audio.NewBeeper(run.ToneActive)
	if err != nil {
		p.logger.Warn("Audio output not available", log.Err(err))
		return nil
	}
	return beeper
}

func (p *Pipeline) closeResource(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		p.logger.Error("Closing resource failed", log.String("resource", name), log.Err(err))
	}
}

// printInfo prints information about the program being executed.
func (p *Pipeline) printInfo(opts options.Program, system arch.System, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running Chip-8 program",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
	)
}

// IsFault returns whether the error was caused by the program faulting.
func IsFault(err error) bool {
	var fault *chip8.Fault
	return errors.As(err, &fault)
}
