package window

import (
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestKeyLayoutMatchesKeymap(t *testing.T) {
	for i, key := range keyLayout {
		name := strings.ToLower(key.String())
		assert.True(t, strings.HasSuffix(name, string(keymap.Layout[i])))
	}
}

func TestFillPixels(t *testing.T) {
	var frame chip8.Frame
	frame[1] = true
	pixels := make([]byte, chip8.DisplaySize*4)

	fillPixels(pixels, &frame)
	assert.Equal(t, colorOff[:], pixels[0:4])
	assert.Equal(t, colorOn[:], pixels[4:8])
	assert.Equal(t, colorOff[:], pixels[len(pixels)-4:])
}

func TestRenderAndKeys(t *testing.T) {
	f := New(log.NewTestLogger(t), 2)

	var frame chip8.Frame
	frame[10] = true
	assert.NoError(t, f.Render(frame))
	assert.Equal(t, frame, f.frame)
	assert.Equal(t, chip8.Keys{}, f.Keys())

	w, h := f.Layout(640, 320)
	assert.Equal(t, chip8.DisplayWidth, w)
	assert.Equal(t, chip8.DisplayHeight, h)
}
