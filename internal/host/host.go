//go:build !headless

// Package host runs the interpreter in a window with keyboard input.
package host

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Compile-time check to ensure Game implements ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// Game connects a runner to an ebiten window. Every ebiten tick polls the
// keyboard and executes one frame.
type Game struct {
	runner      *runner.Runner
	framebuffer *display.Framebuffer
	keypad      *keypad.State

	primary   color.RGBA
	secondary color.RGBA

	screen *ebiten.Image
	pixels []byte
	keys   []uint8
	paused bool
}

// New returns a new game for the runner.
func New(r *runner.Runner, framebuffer *display.Framebuffer, keys *keypad.State, primary, secondary color.RGBA) *Game {
	return &Game{
		runner:      r,
		framebuffer: framebuffer,
		keypad:      keys,
		primary:     primary,
		secondary:   secondary,
		pixels:      make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
		keys:        make([]uint8, 0, chip8.KeyCount),
	}
}

// Run opens the window and blocks until it is closed, escape is pressed
// or the program fails.
func (g *Game) Run(title string, scale int) error {
	ebiten.SetWindowSize(chip8.DisplayWidth*scale, chip8.DisplayHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(runner.FrameRate)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update polls the keyboard and executes one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.keys = pressedKeys(g.keys[:0], ebiten.IsKeyPressed)
	g.keypad.Update(g.keys...)

	return g.runner.Frame()
}

// Draw renders the framebuffer.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}
	g.pixels = g.framebuffer.RGBA(g.pixels, g.primary, g.secondary)
	g.screen.WritePixels(g.pixels)
	screen.DrawImage(g.screen, nil)
}

// Layout returns the native display resolution, ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}
