// Package chip8 implements the CHIP-8 interpreter core.
//
// # Machine Model
//
// A Machine holds the complete interpreter state:
//   - 4KB of memory (0x000-MaxAddress)
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag output
//   - the 12-bit index register I and the program counter
//   - a bounded call stack of return addresses (StackDepth entries)
//   - the delay and sound timers
//
// # Memory Layout
//
//   - 0x000-0x04F: Reserved
//   - FontStart-0x09F: 16 glyphs of 5 bytes each
//   - ProgramStart-MaxAddress: Program image
//
// # Execution
//
// Engine.RunCycle performs one fetch-decode-execute step. The display and
// keypad are passed in for the duration of a single cycle only:
//
//	machine := chip8.NewMachine()
//	if err := machine.LoadProgram(rom); err != nil {
//		return err
//	}
//	engine := chip8.New()
//	devices := chip8.Devices{Display: framebuffer, Keypad: keys}
//	for {
//		machine.UpdateTimers()
//		for range cyclesPerFrame {
//			if err := engine.RunCycle(machine, devices); err != nil {
//				return err
//			}
//		}
//	}
//
// # Errors
//
// A failing cycle returns an *ExecError that wraps one of ErrInvalidOpcode,
// ErrStackUnderflow or ErrStackOverflow. The program counter is left at the
// address of the failing instruction.
package chip8
