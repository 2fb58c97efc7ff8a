//go:build !headless

package host

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap maps the hexadecimal keypad to the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keyMap = [16]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.Key1,
	0x2: ebiten.Key2,
	0x3: ebiten.Key3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

// pressedKeys appends the keypad values of all pressed keys to dst.
func pressedKeys(dst []uint8, isPressed func(ebiten.Key) bool) []uint8 {
	for value, key := range keyMap {
		if isPressed(key) {
			dst = append(dst, uint8(value))
		}
	}
	return dst
}
