// Package headless provides a frontend without input or output, used for
// automated runs with a fixed cycle limit.
package headless

import (
	"github.com/retroenv/retrochip8/internal/chip8"
)

// Frontend discards all frames and never reports pressed keys.
type Frontend struct {
	frame  chip8.Frame
	frames int
	closed chan struct{}
}

// New returns a new headless frontend.
func New() *Frontend {
	return &Frontend{
		closed: make(chan struct{}),
	}
}

// Open implements the frontend lifecycle, there is nothing to set up.
func (f *Frontend) Open() error {
	return nil
}

// Keys returns an empty key pad.
func (f *Frontend) Keys() chip8.Keys {
	return chip8.Keys{}
}

// Render stores the frame as the last rendered frame.
func (f *Frontend) Render(frame chip8.Frame) error {
	f.frame = frame
	f.frames++
	return nil
}

// Closed returns a channel that is never closed.
func (f *Frontend) Closed() <-chan struct{} {
	return f.closed
}

// LastFrame returns the last rendered frame and the number of rendered frames.
func (f *Frontend) LastFrame() (chip8.Frame, int) {
	return f.frame, f.frames
}

// Close implements io.Closer.
func (f *Frontend) Close() error {
	return nil
}
