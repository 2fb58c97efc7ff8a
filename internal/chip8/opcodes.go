package chip8

// execSystem handles the 0x0 family: CLS and RET.
func execSystem(m *Machine, display Display, ins Instruction) error {
	switch ins.NN() {
	case 0xE0:
		display.Clear()
		return nil

	case 0xEE:
		address, err := m.pop()
		if err != nil {
			return err
		}
		m.PC = address
		return nil

	default:
		return ErrInvalidOpcode
	}
}

// execArithmetic handles the 0x8 family of register to register operations.
// Flags are computed from the operands before Vx is written and VF is
// written last.
func execArithmetic(m *Machine, ins Instruction) error {
	vx, vy := m.V[ins.X], m.V[ins.Y]

	switch ins.N {
	case 0x0:
		m.V[ins.X] = vy
	case 0x1:
		m.V[ins.X] = vx | vy
	case 0x2:
		m.V[ins.X] = vx & vy
	case 0x3:
		m.V[ins.X] = vx ^ vy

	case 0x4:
		sum := uint16(vx) + uint16(vy)
		m.V[ins.X] = uint8(sum)
		m.setFlag(boolToFlag(sum > 0xFF))

	case 0x5:
		m.V[ins.X] = vx - vy
		m.setFlag(boolToFlag(vx >= vy))

	case 0x6:
		m.V[ins.X] = vx >> 1
		m.setFlag(vx & 0x01)

	case 0x7:
		m.V[ins.X] = vy - vx
		m.setFlag(boolToFlag(vy >= vx))

	case 0xE:
		m.V[ins.X] = vx << 1
		m.setFlag((vx & 0x80) >> 7)

	default:
		return ErrInvalidOpcode
	}
	return nil
}

// execKey handles the 0xE family: SKP and SKNP.
func execKey(m *Machine, keypad Keypad, ins Instruction) error {
	switch ins.N {
	case 0x1:
		if !keypad.IsKeyDown(m.V[ins.X]) {
			m.skip()
		}
	case 0xE:
		if keypad.IsKeyDown(m.V[ins.X]) {
			m.skip()
		}
	default:
		return ErrInvalidOpcode
	}
	return nil
}

// execMisc handles the 0xF family: timers, key wait, index register and
// register dump and load operations.
func execMisc(m *Machine, keypad Keypad, ins Instruction) error {
	switch ins.NN() {
	case 0x07:
		m.V[ins.X] = m.DelayTimer
	case 0x15:
		m.DelayTimer = m.V[ins.X]
	case 0x18:
		m.SoundTimer = m.V[ins.X]

	case 0x1E:
		sum := m.I + uint16(m.V[ins.X])
		if sum >= MemorySize {
			m.setFlag(1)
		}
		m.I = sum & addressMask

	case 0x0A:
		waitForKey(m, keypad, ins)

	case 0x29:
		m.I = (FontStart + uint16(m.V[ins.X])*glyphSize) & addressMask

	case 0x33:
		value := m.V[ins.X]
		m.write(m.I, value/100)
		m.write(m.I+1, value/10%10)
		m.write(m.I+2, value%10)

	case 0x55:
		for r := uint16(0); r <= uint16(ins.X); r++ {
			m.write(m.I+r, m.V[r])
		}

	case 0x65:
		for r := uint16(0); r <= uint16(ins.X); r++ {
			m.V[r] = m.read(m.I + r)
		}

	default:
		return ErrInvalidOpcode
	}
	return nil
}

// waitForKey stores the lowest held key in Vx. If no key is held the
// program counter is moved back so that the instruction executes again
// in the next cycle.
func waitForKey(m *Machine, keypad Keypad, ins Instruction) {
	for key := uint8(0); key < KeyCount; key++ {
		if keypad.IsKeyDown(key) {
			m.V[ins.X] = key
			return
		}
	}
	m.PC = (m.PC - instructionSize) & addressMask
}

// draw XORs an 8 pixel wide sprite of N rows read from memory at I onto
// the display. The anchor wraps around the display edges, the sprite
// itself is clipped. VF is set if any lit pixel was turned off.
func draw(m *Machine, display Display, ins Instruction) {
	xCoord := int(m.V[ins.X]) % DisplayWidth
	yCoord := int(m.V[ins.Y]) % DisplayHeight
	m.setFlag(0)

	for i := range int(ins.N) {
		row := yCoord + i
		if row >= DisplayHeight {
			break
		}
		sprite := m.read(m.I + uint16(i))

		for j := range 8 {
			col := xCoord + j
			if col >= DisplayWidth {
				break
			}
			if (sprite>>(7-j))&1 == 0 {
				continue
			}

			if display.PixelIsPrimary(row, col) {
				m.setFlag(1)
				display.WritePixel(row, col, false)
			} else {
				display.WritePixel(row, col, true)
			}
		}
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
