package chip8

import (
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// instructionSize is the size of CHIP-8 instructions in bytes.
const instructionSize = 2

// Engine executes CHIP-8 instructions on a Machine.
type Engine struct {
	rng    RandomSource
	logger *log.Logger
	trace  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandomSource sets the source used by the RND instruction.
// A nil source keeps the default.
func WithRandomSource(rng RandomSource) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithLogger sets the logger used for instruction tracing.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTrace enables logging of every executed instruction at debug level.
// It has no effect without a logger.
func WithTrace(enabled bool) Option {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// New returns a new engine. Without options it uses a non deterministic
// random source and does not log.
func New(options ...Option) *Engine {
	e := &Engine{
		rng: systemRand{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// RunCycle fetches, decodes and executes the instruction at the program
// counter. The program counter is advanced past the instruction before it
// executes. If the instruction fails, the program counter is reset to the
// address of the failing instruction and an *ExecError is returned.
func (e *Engine) RunCycle(m *Machine, dev Devices) error {
	address := m.PC & addressMask
	raw := uint16(m.read(address))<<8 | uint16(m.read(address+1))
	ins := Decode(raw)
	m.PC = (address + instructionSize) & addressMask

	if e.trace && e.logger != nil {
		e.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", raw),
			log.String("instruction", disasm.Mnemonic(raw)))
	}

	if err := e.execute(m, dev, ins); err != nil {
		m.PC = address
		return &ExecError{
			Err:     err,
			Opcode:  raw,
			Address: address,
		}
	}
	return nil
}

// execute dispatches the instruction to the handler of its opcode family.
func (e *Engine) execute(m *Machine, dev Devices, ins Instruction) error {
	switch ins.Type {
	case 0x0:
		return execSystem(m, dev.Display, ins)
	case 0x1:
		m.PC = ins.NNN()
	case 0x2:
		if err := m.push(m.PC); err != nil {
			return err
		}
		m.PC = ins.NNN()
	case 0x3:
		if m.V[ins.X] == ins.NN() {
			m.skip()
		}
	case 0x4:
		if m.V[ins.X] != ins.NN() {
			m.skip()
		}
	case 0x5:
		if m.V[ins.X] == m.V[ins.Y] {
			m.skip()
		}
	case 0x6:
		m.V[ins.X] = ins.NN()
	case 0x7:
		m.V[ins.X] += ins.NN()
	case 0x8:
		return execArithmetic(m, ins)
	case 0x9:
		if m.V[ins.X] != m.V[ins.Y] {
			m.skip()
		}
	case 0xA:
		m.I = ins.NNN()
	case 0xB:
		m.PC = (ins.NNN() + uint16(m.V[0])) & addressMask
	case 0xC:
		m.V[ins.X] = e.rng.NextByte() & ins.NN()
	case 0xD:
		draw(m, dev.Display, ins)
	case 0xE:
		return execKey(m, dev.Keypad, ins)
	case 0xF:
		return execMisc(m, dev.Keypad, ins)
	}
	return nil
}

// skip advances the program counter past the next instruction.
func (m *Machine) skip() {
	m.PC = (m.PC + instructionSize) & addressMask
}
