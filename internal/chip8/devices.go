package chip8

import (
	"math/rand/v2"
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// Display is a monochrome 64x32 pixel sink addressed by (row, col).
// A pixel is either in the primary (set) or secondary (cleared) colour.
type Display interface {
	WritePixel(row, col int, primary bool)
	PixelIsPrimary(row, col int) bool
	Clear()
}

// Keypad reports the state of the 16 key hexadecimal keypad.
type Keypad interface {
	IsKeyDown(key uint8) bool
}

// Audio turns the buzzer tone on and off. Both calls are idempotent.
type Audio interface {
	ToneOn()
	ToneOff()
}

// RandomSource returns uniformly distributed bytes.
type RandomSource interface {
	NextByte() byte
}

// Devices groups the collaborators that an engine cycle accesses.
// They are only used for the duration of a single RunCycle call.
type Devices struct {
	Display Display
	Keypad  Keypad
}

// Rand is a RandomSource backed by a PCG generator.
type Rand struct {
	rng *rand.Rand
}

// NewRand returns a RandomSource seeded with the given seed.
func NewRand(seed uint64) *Rand {
	return &Rand{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// NextByte returns a random byte.
func (r *Rand) NextByte() byte {
	return byte(r.rng.UintN(256))
}

// systemRand is the non deterministic default RandomSource.
type systemRand struct{}

func (systemRand) NextByte() byte {
	return byte(rand.UintN(256))
}
