package display

import (
	"bufio"
	"fmt"
	"io"
)

// Glyphs used by Render.
const (
	blockPixel = "█"
	asciiPixel = "#"
	emptyPixel = " "
)

// Render writes the framebuffer as text, one line per pixel row.
// Set pixels are drawn as block characters if unicode is enabled,
// otherwise as '#'.
func Render(w io.Writer, f *Framebuffer, unicode bool) error {
	lit := asciiPixel
	if unicode {
		lit = blockPixel
	}

	buf := bufio.NewWriter(w)
	pixels := f.Snapshot()
	for row := range pixels {
		for col := range pixels[row] {
			if pixels[row][col] {
				_, _ = buf.WriteString(lit)
			} else {
				_, _ = buf.WriteString(emptyPixel)
			}
		}
		_ = buf.WriteByte('\n')
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing framebuffer: %w", err)
	}
	return nil
}
