package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testOptions(t *testing.T, rom []byte) options.Program {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, rom, 0o600))

	return options.Program{
		Parameters: options.Parameters{Input: path},
		Flags:      options.Flags{Frontend: options.FrontendHeadless, Debug: true},
		Machine: options.Machine{
			TickRate:            60,
			InstructionsPerTick: 2,
			Cycles:              5,
			Unpaced:             true,
		},
	}
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := testOptions(t, []byte{0x12, 0x00}) // JP $200
	assert.NoError(t, ProcessFile(context.Background(), logger, opts))
}

func TestProcessFileFault(t *testing.T) {
	logger := log.NewTestLogger(t)

	// CALL $200 recursion overflows the stack
	opts := testOptions(t, []byte{0x22, 0x00})
	opts.Cycles = 20

	err := ProcessFile(context.Background(), logger, opts)
	assert.True(t, errors.Is(err, chip8.ErrStackOverflow))
	assert.ErrorContains(t, err, "test.ch8")
}

func TestProcessFileCancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := testOptions(t, []byte{0x12, 0x00})
	err := ProcessFile(ctx, logger, opts)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
