package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRenderFrame(t *testing.T) {
	var frame chip8.Frame
	// first cell top half, second cell bottom half, third cell both halves
	frame[0] = true
	frame[chip8.DisplayWidth+1] = true
	frame[2] = true
	frame[chip8.DisplayWidth+2] = true

	out := renderFrame(&frame)
	assert.True(t, strings.HasPrefix(out, cursorHome))

	lines := strings.Split(strings.TrimPrefix(out, cursorHome), "\r\n")
	assert.Len(t, lines, chip8.DisplayHeight/2+1)

	first := []rune(lines[0])
	assert.Len(t, first, chip8.DisplayWidth)
	assert.Equal(t, '▀', first[0])
	assert.Equal(t, '▄', first[1])
	assert.Equal(t, '█', first[2])
	assert.Equal(t, ' ', first[3])
}

func TestKeysHold(t *testing.T) {
	now := time.Unix(1000, 0)
	f := New(log.NewTestLogger(t), nil, &bytes.Buffer{})
	f.now = func() time.Time { return now }

	f.handleInput([]byte("wV?"))
	keys := f.Keys()
	assert.True(t, keys[0x5])
	assert.True(t, keys[0xF])
	assert.False(t, keys[0x0])

	now = now.Add(keyHold - time.Millisecond)
	assert.True(t, f.Keys()[0x5])

	now = now.Add(time.Millisecond)
	assert.False(t, f.Keys()[0x5])
}

func TestCtrlCCloses(t *testing.T) {
	f := New(log.NewTestLogger(t), nil, &bytes.Buffer{})
	f.handleInput([]byte{ctrlC})

	select {
	case <-f.Closed():
	default:
		t.Fatal("frontend not closed")
	}
	// closing twice must not panic
	f.close()
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	f := New(log.NewTestLogger(t), nil, &out)

	assert.NoError(t, f.Render(chip8.Frame{}))
	assert.True(t, strings.HasPrefix(out.String(), cursorHome))
}
