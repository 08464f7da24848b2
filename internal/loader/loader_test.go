package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load CHIP8 file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, rom)
	})

	t.Run("load largest possible file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxROMSize))

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, chip8.MaxROMSize)
	})

	t.Run("file too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxROMSize+1))

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
	})

	t.Run("empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Load(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.Error(t, err)
	})
}

func TestRead(t *testing.T) {
	rom, err := New().Read(bytes.NewReader([]byte{0x00, 0xE0}))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0}, rom)
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
