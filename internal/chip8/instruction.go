package chip8

// Instruction is a decoded CHIP-8 instruction word.
//
// Layout of the 16 bit word:
//
//	TTTT XXXX YYYY NNNN
//	          NNNNNNNN  NN
//	     NNNNNNNNNNNN   NNN
type Instruction struct {
	Raw  uint16
	Type uint8 // bits 15-12, selects the opcode family
	X    uint8 // bits 11-8, register index
	Y    uint8 // bits 7-4, register index
	N    uint8 // bits 3-0
}

// Decode splits a raw instruction word into its fields.
// Every 16 bit value decodes to a well-formed instruction.
func Decode(raw uint16) Instruction {
	return Instruction{
		Raw:  raw,
		Type: uint8((raw & 0xF000) >> 12),
		X:    uint8((raw & 0x0F00) >> 8),
		Y:    uint8((raw & 0x00F0) >> 4),
		N:    uint8(raw & 0x000F),
	}
}

// NN returns the low byte of the instruction.
func (i Instruction) NN() uint8 {
	return uint8(i.Raw & 0x00FF)
}

// NNN returns the 12 bit address of the instruction.
func (i Instruction) NNN() uint16 {
	return i.Raw & 0x0FFF
}
