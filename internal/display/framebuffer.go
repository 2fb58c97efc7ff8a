// Package display provides the monochrome framebuffer that CHIP-8 programs
// draw into and helpers to present it.
package display

import (
	"image/color"
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Compile-time check to ensure Framebuffer implements chip8.Display.
var _ chip8.Display = (*Framebuffer)(nil)

// Framebuffer is a 64x32 pixel monochrome display. It is safe for use by
// the interpreter and a renderer from different goroutines.
type Framebuffer struct {
	mu     sync.RWMutex
	pixels [chip8.DisplayHeight][chip8.DisplayWidth]bool
}

// NewFramebuffer returns a cleared framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// WritePixel sets the pixel at (row, col) to the primary or secondary colour.
// Coordinates outside of the display are ignored.
func (f *Framebuffer) WritePixel(row, col int, primary bool) {
	if !inBounds(row, col) {
		return
	}
	f.mu.Lock()
	f.pixels[row][col] = primary
	f.mu.Unlock()
}

// PixelIsPrimary returns whether the pixel at (row, col) is set.
func (f *Framebuffer) PixelIsPrimary(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pixels[row][col]
}

// Clear sets all pixels to the secondary colour.
func (f *Framebuffer) Clear() {
	f.mu.Lock()
	f.pixels = [chip8.DisplayHeight][chip8.DisplayWidth]bool{}
	f.mu.Unlock()
}

// Snapshot returns a copy of the current pixel state.
func (f *Framebuffer) Snapshot() [chip8.DisplayHeight][chip8.DisplayWidth]bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pixels
}

// RGBA writes the framebuffer as RGBA pixel data into dst, which must hold
// at least DisplayWidth*DisplayHeight*4 bytes. It returns the used part of dst.
func (f *Framebuffer) RGBA(dst []byte, primary, secondary color.RGBA) []byte {
	pixels := f.Snapshot()
	dst = dst[:chip8.DisplayWidth*chip8.DisplayHeight*4]

	i := 0
	for row := range pixels {
		for col := range pixels[row] {
			c := secondary
			if pixels[row][col] {
				c = primary
			}
			dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return dst
}

func inBounds(row, col int) bool {
	return row >= 0 && row < chip8.DisplayHeight && col >= 0 && col < chip8.DisplayWidth
}
