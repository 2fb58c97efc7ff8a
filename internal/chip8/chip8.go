package chip8

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// addressMask limits addresses to the 12 bit address space.
	addressMask = MaxAddress

	// FontStart is the memory address where the font glyphs are stored.
	FontStart = 0x050

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	// Programs are stored starting at offset 0x0 in ROM files.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// flagRegister is the index of VF.
	flagRegister = 0xF
)

var errProgramTooLarge = errors.New("program too large")

// Machine contains the complete state of a CHIP-8 interpreter.
// It is owned by the caller and borrowed by the Engine for the duration
// of a single cycle.
type Machine struct {
	Memory [MemorySize]byte
	V      [RegisterCount]uint8
	I      uint16
	PC     uint16

	DelayTimer uint8
	SoundTimer uint8

	stack []uint16
}

// NewMachine returns a machine with the program counter at ProgramStart
// and the default font loaded.
func NewMachine() *Machine {
	m := &Machine{
		PC:    ProgramStart,
		stack: make([]uint16, 0, StackDepth),
	}
	m.LoadFont(DefaultFont[:])
	return m
}

// LoadFont copies the font glyphs into memory at FontStart.
func (m *Machine) LoadFont(font []byte) {
	copy(m.Memory[FontStart:ProgramStart], font)
}

// LoadProgram copies a program image into memory at ProgramStart.
func (m *Machine) LoadProgram(data []byte) error {
	if len(data) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d bytes", errProgramTooLarge, len(data), MaxProgramSize)
	}
	copy(m.Memory[ProgramStart:], data)
	return nil
}

// UpdateTimers decrements the delay and sound timers by one.
// Timers stop at 0.
func (m *Machine) UpdateTimers() {
	if m.DelayTimer > 0 {
		m.DelayTimer--
	}
	if m.SoundTimer > 0 {
		m.SoundTimer--
	}
}

// Stack returns a copy of the return addresses on the call stack,
// the most recent call last.
func (m *Machine) Stack() []uint16 {
	stack := make([]uint16, len(m.stack))
	copy(stack, m.stack)
	return stack
}

// read returns the byte at the given address, wrapped to the address space.
func (m *Machine) read(address uint16) byte {
	return m.Memory[address&addressMask]
}

// write sets the byte at the given address, wrapped to the address space.
func (m *Machine) write(address uint16, value byte) {
	m.Memory[address&addressMask] = value
}

func (m *Machine) push(address uint16) error {
	if len(m.stack) >= StackDepth {
		return ErrStackOverflow
	}
	m.stack = append(m.stack, address)
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if len(m.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	address := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return address, nil
}

func (m *Machine) setFlag(value uint8) {
	m.V[flagRegister] = value
}
