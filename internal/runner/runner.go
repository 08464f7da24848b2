// Package runner drives a virtual machine: it paces ticks, feeds input from
// the frontend, publishes state snapshots and hands frames to the frontend.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/mnemonic"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Frontend provides input to and displays output of the virtual machine.
type Frontend interface {
	// Keys returns the current state of the 16-key pad.
	Keys() chip8.Keys
	// Render displays a frame.
	Render(frame chip8.Frame) error
	// Closed is closed when the user closed the frontend.
	Closed() <-chan struct{}
}

// Observer receives the published snapshot after every tick.
// Observers are called on the runner goroutine and must not block.
type Observer interface {
	ObserveTick(snapshot *chip8.Snapshot)
}

// Runner executes a virtual machine tick by tick.
type Runner struct {
	logger    *log.Logger
	vm        *chip8.VM
	frontend  Frontend
	opts      options.Machine
	trace     bool
	observers []Observer

	published atomic.Pointer[chip8.Snapshot]
	ticks     atomic.Uint64
}

// New returns a new runner for the virtual machine.
func New(logger *log.Logger, vm *chip8.VM, frontend Frontend, opts options.Machine, trace bool) *Runner {
	r := &Runner{
		logger:   logger,
		vm:       vm,
		frontend: frontend,
		opts:     opts,
		trace:    trace,
	}
	r.publish()
	return r
}

// AddObserver registers an observer for published snapshots.
func (r *Runner) AddObserver(observer Observer) {
	r.observers = append(r.observers, observer)
}

// Snapshot returns the last published snapshot. It is safe to call from any goroutine.
func (r *Runner) Snapshot() *chip8.Snapshot {
	return r.published.Load()
}

// ToneActive returns whether the last published snapshot has the tone active.
// It is safe to call from any goroutine.
func (r *Runner) ToneActive() bool {
	return r.published.Load().ToneActive
}

// Ticks returns the number of completed ticks. It is safe to call from any goroutine.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Run executes ticks until the context is cancelled, the frontend is closed,
// the configured cycle limit is reached or the machine faults.
func (r *Runner) Run(ctx context.Context) error {
	var tickC <-chan time.Time
	if !r.opts.Unpaced {
		ticker := time.NewTicker(r.opts.TickInterval())
		defer ticker.Stop()
		tickC = ticker.C
	}

	// render the initial empty screen
	if err := r.frontend.Render(r.vm.Display()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}

	for r.opts.Cycles == 0 || r.ticks.Load() < r.opts.Cycles {
		if err := r.wait(ctx, tickC); err != nil {
			if errors.Is(err, errFrontendClosed) {
				r.logger.Debug("Frontend closed")
				return nil
			}
			return err
		}

		if err := r.tick(); err != nil {
			return err
		}
	}

	r.logger.Debug("Cycle limit reached", log.Int("ticks", int(r.ticks.Load())))
	return nil
}

var errFrontendClosed = errors.New("frontend closed")

func (r *Runner) wait(ctx context.Context, tickC <-chan time.Time) error {
	if tickC == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.frontend.Closed():
			return errFrontendClosed
		default:
			return nil
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.frontend.Closed():
		return errFrontendClosed
	case <-tickC:
		return nil
	}
}

// tick executes the configured number of instructions, advances the timers
// once and publishes the resulting state.
func (r *Runner) tick() error {
	keys := r.frontend.Keys()
	var dirty bool

	for range r.opts.InstructionsPerTick {
		if r.trace {
			r.traceInstruction()
		}

		result, err := r.vm.Step(keys)
		if err != nil {
			r.publish()
			return fmt.Errorf("executing instruction: %w", err)
		}
		dirty = dirty || result.DisplayDirty
	}

	r.vm.Tick()
	r.ticks.Add(1)
	snapshot := r.publish()
	for _, observer := range r.observers {
		observer.ObserveTick(snapshot)
	}

	if dirty {
		if err := r.frontend.Render(r.vm.Display()); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
	}
	return nil
}

func (r *Runner) publish() *chip8.Snapshot {
	snapshot := r.vm.Snapshot()
	r.published.Store(&snapshot)
	return &snapshot
}

func (r *Runner) traceInstruction() {
	pc := r.vm.Snapshot().Registers.PC
	opcode := uint16(r.vm.ReadMemory(pc))<<8 | uint16(r.vm.ReadMemory(pc+1))
	r.logger.Debug("Step",
		log.Hex("pc", pc),
		log.Hex("opcode", opcode),
		log.String("instruction", mnemonic.Format(opcode)))
}
