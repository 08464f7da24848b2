package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayToggle(t *testing.T) {
	var d Display

	assert.False(t, d.Toggle(10))
	assert.True(t, d.Toggle(10))
	assert.False(t, d.Toggle(10))

	// wraps around the whole buffer
	assert.True(t, d.Toggle(10+DisplaySize))
	assert.False(t, d.Toggle(-1))
	frame := d.Snapshot()
	assert.True(t, frame[DisplaySize-1])

	d.Clear()
	frame = d.Snapshot()
	assert.Equal(t, Frame{}, frame)
}

func TestFramePixel(t *testing.T) {
	var d Display
	d.Toggle(pixelIndex(3, 2))
	frame := d.Snapshot()

	assert.True(t, frame.Pixel(3, 2))
	assert.False(t, frame.Pixel(2, 3))
	assert.True(t, frame.Pixel(3+DisplayWidth, 2+DisplayHeight))
	assert.True(t, frame.Pixel(3-DisplayWidth, 2-DisplayHeight))
	assert.False(t, frame.Pixel(3+DisplayWidth, 3+DisplayHeight))
}

func TestFramePixelWrapsPerAxis(t *testing.T) {
	var d Display
	// drawing at (67, 2) continues on the next row at (3, 3)
	d.Toggle(pixelIndex(DisplayWidth+3, 2))
	frame := d.Snapshot()

	assert.True(t, frame.Pixel(3, 3))
	assert.True(t, frame.Pixel(3+DisplayWidth, 3))
	assert.False(t, frame.Pixel(3, 2))
	assert.False(t, frame.Pixel(3+DisplayWidth, 2))
}

func TestPixelIndexWrap(t *testing.T) {
	assert.Equal(t, 0, pixelIndex(0, 0))
	assert.Equal(t, 65, pixelIndex(1, 1))
	// a sprite leaving the right edge continues on the next row
	assert.Equal(t, DisplayWidth, pixelIndex(DisplayWidth, 0))
	// leaving the bottom right corner continues at the top left
	assert.Equal(t, 0, pixelIndex(DisplayWidth, DisplayHeight-1))
}
