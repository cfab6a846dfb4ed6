// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw ROM file. CHIP-8 ROMs have no header, the file content is
// the program that gets copied to the program start address.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a raw ROM from a reader and rejects ROMs that do not fit
// into the program space.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// one byte more than allowed detects oversized ROMs without reading all of them
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: ROM exceeds %d bytes", chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	return data, nil
}
