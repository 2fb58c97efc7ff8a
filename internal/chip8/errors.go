package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode is returned for an undefined instruction.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrStackUnderflow is returned for a return without a matching call.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrStackOverflow is returned when a call exceeds StackDepth.
	ErrStackOverflow = errors.New("stack overflow")
)

// ExecError describes a failed cycle.
type ExecError struct {
	Err     error  // one of the sentinel errors
	Opcode  uint16 // raw instruction word
	Address uint16 // address of the instruction
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: opcode %04X at address $%03X", e.Err, e.Opcode, e.Address)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
