// Package terminal provides a frontend that renders the display with block
// characters in a terminal and reads the key pad from the keyboard.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// keyHold is how long a key counts as pressed after its last key stroke.
// Terminals do not report key releases, auto repeat keeps held keys alive.
const keyHold = 150 * time.Millisecond

const (
	escape      = 0x1B
	ctrlC       = 0x03
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Frontend is a terminal based frontend.
type Frontend struct {
	logger *log.Logger
	in     *os.File
	out    io.Writer
	now    func() time.Time

	fd       int
	oldState *term.State

	mu        sync.Mutex
	pressedAt [chip8.KeyCount]time.Time

	closed    chan struct{}
	closeOnce sync.Once
}

// New returns a new terminal frontend reading from in and writing to out.
func New(logger *log.Logger, in *os.File, out io.Writer) *Frontend {
	return &Frontend{
		logger: logger,
		in:     in,
		out:    out,
		now:    time.Now,
		closed: make(chan struct{}),
	}
}

// Open switches the terminal to raw mode and starts reading key strokes.
func (f *Frontend) Open() error {
	f.fd = int(f.in.Fd())
	if !term.IsTerminal(f.fd) {
		return errors.New("input is not a terminal, use the headless or window frontend")
	}

	width, height, err := term.GetSize(f.fd)
	if err == nil && (width < chip8.DisplayWidth || height < chip8.DisplayHeight/2+1) {
		f.logger.Warn("Terminal is smaller than the display",
			log.Int("columns", width),
			log.Int("rows", height))
	}

	oldState, err := term.MakeRaw(f.fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	f.oldState = oldState

	if _, err := io.WriteString(f.out, hideCursor+clearScreen); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	go f.readInput()
	return nil
}

// Close restores the terminal state.
func (f *Frontend) Close() error {
	f.close()
	_, _ = io.WriteString(f.out, showCursor+"\r\n")
	if f.oldState == nil {
		return nil
	}
	if err := term.Restore(f.fd, f.oldState); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	f.oldState = nil
	return nil
}

// Closed is closed when the user pressed Escape or Ctrl-C.
func (f *Frontend) Closed() <-chan struct{} {
	return f.closed
}

// Keys returns the keys that were struck within the hold window.
func (f *Frontend) Keys() chip8.Keys {
	now := f.now()
	var keys chip8.Keys

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, at := range f.pressedAt {
		keys[i] = !at.IsZero() && now.Sub(at) < keyHold
	}
	return keys
}

// Render draws the frame using half block characters, two pixel rows per line.
func (f *Frontend) Render(frame chip8.Frame) error {
	if _, err := io.WriteString(f.out, renderFrame(&frame)); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

func (f *Frontend) close() {
	f.closeOnce.Do(func() {
		close(f.closed)
	})
}

// readInput runs until stdin is closed. The blocking read can not be
// interrupted, the goroutine ends with the process.
func (f *Frontend) readInput() {
	buf := make([]byte, 32)
	for {
		n, err := f.in.Read(buf)
		if err != nil {
			f.close()
			return
		}
		// a lone escape byte is the Escape key, longer sequences are cursor keys
		if n == 1 && buf[0] == escape {
			f.close()
			return
		}
		f.handleInput(buf[:n])
	}
}

func (f *Frontend) handleInput(data []byte) {
	now := f.now()

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range data {
		if b == ctrlC {
			f.close()
			return
		}
		if key, ok := keymap.Key(rune(b)); ok {
			f.pressedAt[key] = now
		}
	}
}

func renderFrame(frame *chip8.Frame) string {
	var sb strings.Builder
	sb.Grow(chip8.DisplaySize*2 + 64)
	sb.WriteString(cursorHome)

	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top, bottom := frame.Pixel(x, y), frame.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
