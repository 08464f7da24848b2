package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersTick(t *testing.T) {
	timers := Timers{Delay: 5, Sound: 2}

	for range 5 {
		timers.Tick()
	}
	assert.Equal(t, uint8(0), timers.Delay)
	assert.Equal(t, uint8(0), timers.Sound)

	timers.Tick()
	assert.Equal(t, uint8(0), timers.Delay)
	assert.Equal(t, uint8(0), timers.Sound)
}

func TestTimersToneActive(t *testing.T) {
	tests := []struct {
		sound  uint8
		active bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{255, false},
	}

	for _, tt := range tests {
		timers := Timers{Sound: tt.sound}
		assert.Equal(t, tt.active, timers.ToneActive())
	}
}
