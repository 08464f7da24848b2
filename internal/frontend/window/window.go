// Package window provides a frontend that renders the display in a desktop
// window and reads the key pad from the keyboard.
package window

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const closeTimeout = time.Second

// keyLayout is keymap.Layout expressed as ebiten keys.
var keyLayout = [chip8.KeyCount]ebiten.Key{
	ebiten.KeyX, ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.Key4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// Pixel colors in RGBA.
var (
	colorOn  = [4]byte{0xE0, 0xF0, 0xE0, 0xFF}
	colorOff = [4]byte{0x10, 0x18, 0x10, 0xFF}
)

// Frontend is an ebiten window frontend. Update and Draw run on the ebiten
// goroutine, all shared state is guarded by mu.
type Frontend struct {
	logger *log.Logger
	scale  int

	mu      sync.Mutex
	frame   chip8.Frame
	pressed chip8.Keys
	pixels  []byte

	stop   atomic.Bool
	closed chan struct{}
}

// New returns a new window frontend with the given pixel scale.
func New(logger *log.Logger, scale int) *Frontend {
	return &Frontend{
		logger: logger,
		scale:  scale,
		pixels: make([]byte, chip8.DisplaySize*4),
		closed: make(chan struct{}),
	}
}

// Open opens the window and starts the ebiten game loop.
func (f *Frontend) Open() error {
	ebiten.SetWindowSize(chip8.DisplayWidth*f.scale, chip8.DisplayHeight*f.scale)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	go func() {
		defer close(f.closed)
		if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
			f.logger.Error("Window closed with error", log.Err(err))
		}
	}()
	return nil
}

// Close stops the game loop and waits for the window to close.
func (f *Frontend) Close() error {
	f.stop.Store(true)
	select {
	case <-f.closed:
	case <-time.After(closeTimeout):
		return errors.New("timeout waiting for window to close")
	}
	return nil
}

// Closed is closed when the window was closed.
func (f *Frontend) Closed() <-chan struct{} {
	return f.closed
}

// Keys returns the key pad state read during the last window update.
func (f *Frontend) Keys() chip8.Keys {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pressed
}

// Render stores the frame for the next window redraw.
func (f *Frontend) Render(frame chip8.Frame) error {
	f.mu.Lock()
	f.frame = frame
	f.mu.Unlock()
	return nil
}

// Update implements ebiten.Game.
func (f *Frontend) Update() error {
	if f.stop.Load() {
		return ebiten.Termination
	}

	var keys chip8.Keys
	for i, key := range keyLayout {
		keys[i] = ebiten.IsKeyPressed(key)
	}

	f.mu.Lock()
	f.pressed = keys
	f.mu.Unlock()
	return nil
}

// Draw implements ebiten.Game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.mu.Lock()
	fillPixels(f.pixels, &f.frame)
	f.mu.Unlock()
	screen.WritePixels(f.pixels)
}

// Layout implements ebiten.Game, the screen has the display resolution and
// is scaled to the window size by ebiten.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}

func fillPixels(pixels []byte, frame *chip8.Frame) {
	for i, set := range frame {
		color := colorOff
		if set {
			color = colorOn
		}
		copy(pixels[i*4:], color[:])
	}
}
