// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrEmptyROM is returned for ROM files without any content.
var ErrEmptyROM = errors.New("rom file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw program bytes of a CHIP-8 ROM file. ROM files have no
// header, the content is loaded verbatim into program memory.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads the raw program bytes from a reader.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// read one byte more than fits to detect oversized files without
	// reading all of a large file
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > chip8.MaxROMSize:
		return nil, fmt.Errorf("%w: more than %d bytes", chip8.ErrROMTooLarge, chip8.MaxROMSize)
	}
	return data, nil
}
