// Package keypad tracks the pressed keys of the 16 key hexadecimal keypad.
package keypad

import (
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

// Compile-time check to ensure State implements chip8.Keypad.
var _ chip8.Keypad = (*State)(nil)

// State holds the set of currently held keys. The host replaces the set
// once per frame after polling its input devices.
type State struct {
	mu   sync.RWMutex
	held set.Set[uint8]
}

// New returns a keypad state with no keys held.
func New() *State {
	return &State{
		held: set.New[uint8](),
	}
}

// Update replaces the held keys with the given keys.
// Keys outside of 0x0-0xF are ignored.
func (s *State) Update(keys ...uint8) {
	held := set.New[uint8]()
	for _, key := range keys {
		if key < chip8.KeyCount {
			held.Add(key)
		}
	}

	s.mu.Lock()
	s.held = held
	s.mu.Unlock()
}

// IsKeyDown returns whether the key is currently held.
func (s *State) IsKeyDown(key uint8) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.held.Contains(key)
}
