//go:build headless

// Package host runs the interpreter in a window with keyboard input.
package host

import (
	"errors"
	"image/color"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/runner"
)

var errNoWindowSupport = errors.New("built without window support, use -headless")

// Game is unavailable in headless builds.
type Game struct{}

// New returns a game that can not be run.
func New(_ *runner.Runner, _ *display.Framebuffer, _ *keypad.State, _, _ color.RGBA) *Game {
	return &Game{}
}

// Run returns an error as windows are not supported.
func (g *Game) Run(_ string, _ int) error {
	return errNoWindowSupport
}
