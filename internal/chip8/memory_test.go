package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryLoad(t *testing.T) {
	var m Memory
	m.reset()

	assert.NoError(t, m.load([]byte{0x12, 0x34}))
	assert.Equal(t, byte(0x12), m[ProgramStart])
	assert.Equal(t, byte(0x34), m[ProgramStart+1])
	assert.Equal(t, byte(0xF0), m[FontBase])
	assert.Equal(t, byte(0x80), m[FontBase+16*FontGlyphSize-1])

	assert.NoError(t, m.load(make([]byte, MaxROMSize)))

	err := m.load(make([]byte, MaxROMSize+1))
	assert.True(t, errors.Is(err, ErrROMTooLarge))
}

func TestMemoryReadWord(t *testing.T) {
	var m Memory
	m[0x300] = 0xAB
	m[0x301] = 0xCD

	word, err := m.ReadWord(0x300)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), word)

	_, err = m.ReadWord(MaxAddress - 1)
	assert.NoError(t, err)

	_, err = m.ReadWord(MaxAddress)
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
}
