// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

var (
	errEmptyROM    = errors.New("ROM file is empty")
	errROMTooLarge = errors.New("ROM file too large")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw CHIP-8 program image from the given file.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than fits to detect oversized files
	data, err := io.ReadAll(io.LimitReader(file, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	switch {
	case len(data) == 0:
		return nil, errEmptyROM
	case len(data) > chip8.MaxProgramSize:
		return nil, fmt.Errorf("%w: maximum size is %d bytes", errROMTooLarge, chip8.MaxProgramSize)
	}
	return data, nil
}

// LoadMachine reads the ROM file and loads it into the machine.
// It returns the program image.
func (l *Loader) LoadMachine(m *chip8.Machine, path string) ([]byte, error) {
	data, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.LoadProgram(data); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return data, nil
}
