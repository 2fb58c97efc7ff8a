package chip8

// mockDisplay is a minimal in memory display for testing.
type mockDisplay struct {
	pixels  [DisplayHeight][DisplayWidth]bool
	writes  int
	cleared int
}

func (d *mockDisplay) WritePixel(row, col int, primary bool) {
	d.pixels[row][col] = primary
	d.writes++
}

func (d *mockDisplay) PixelIsPrimary(row, col int) bool {
	return d.pixels[row][col]
}

func (d *mockDisplay) Clear() {
	d.pixels = [DisplayHeight][DisplayWidth]bool{}
	d.cleared++
}

func (d *mockDisplay) litPixels() int {
	count := 0
	for row := range d.pixels {
		for col := range d.pixels[row] {
			if d.pixels[row][col] {
				count++
			}
		}
	}
	return count
}

// mockKeypad reports the keys in held as pressed.
type mockKeypad struct {
	held map[uint8]bool
}

func newMockKeypad(keys ...uint8) *mockKeypad {
	k := &mockKeypad{held: make(map[uint8]bool)}
	for _, key := range keys {
		k.held[key] = true
	}
	return k
}

func (k *mockKeypad) IsKeyDown(key uint8) bool {
	return k.held[key]
}

// fixedRand always returns the same byte.
type fixedRand struct {
	value byte
}

func (r fixedRand) NextByte() byte {
	return r.value
}

// testSetup returns a machine, engine and devices for running
// the given program.
func testSetup(program ...uint16) (*Machine, *Engine, Devices, *mockDisplay, *mockKeypad) {
	m := NewMachine()
	data := make([]byte, 0, len(program)*2)
	for _, word := range program {
		data = append(data, byte(word>>8), byte(word))
	}
	if err := m.LoadProgram(data); err != nil {
		panic(err)
	}

	display := &mockDisplay{}
	keypad := newMockKeypad()
	devices := Devices{Display: display, Keypad: keypad}
	return m, New(WithRandomSource(fixedRand{value: 0xFF})), devices, display, keypad
}
