// Package emulator wires the interpreter components together and runs a ROM.
package emulator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const windowTitle = "retrochip8"

// Run loads the ROM given in the options and executes it, either in a
// window or headless. Listings and the final headless display are
// written to stdout.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, stdout io.Writer) error {
	machine := chip8.NewMachine()
	program, err := loader.New().LoadMachine(machine, opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if !opts.Quiet {
		logger.Info("Processing Chip-8 ROM",
			log.String("file", opts.Input),
			log.Stringer("system", arch.CHIP8System),
			log.Int("size", len(program)),
		)
	}

	if opts.List {
		if err := writeListing(opts, program, stdout); err != nil {
			return err
		}
	}

	framebuffer := display.NewFramebuffer()
	keys := keypad.New()
	devices := chip8.Devices{
		Display: framebuffer,
		Keypad:  keys,
	}
	engine := chip8.New(
		chip8.WithRandomSource(randomSource(opts.Seed)),
		chip8.WithLogger(logger),
		chip8.WithTrace(opts.Trace),
	)

	if opts.Headless {
		return runHeadless(ctx, logger, opts, machine, engine, devices, framebuffer, stdout)
	}
	return runWindow(logger, opts, machine, engine, devices, framebuffer, keys)
}

func runHeadless(ctx context.Context, logger *log.Logger, opts options.Program, machine *chip8.Machine,
	engine *chip8.Engine, devices chip8.Devices, framebuffer *display.Framebuffer, stdout io.Writer) error {

	tone := audio.NewTone(audio.DefaultSampleRate, opts.ToneFrequency)
	r := runner.New(logger, machine, engine, devices, tone, opts.CyclesPerFrame)

	runErr := r.Run(ctx, opts.Frames)
	logger.Debug("Headless run finished", log.Int("frames", int(r.Frames())))

	if err := display.Render(stdout, framebuffer, isTerminal(stdout)); err != nil {
		return err
	}
	return runErr
}

func runWindow(logger *log.Logger, opts options.Program, machine *chip8.Machine,
	engine *chip8.Engine, devices chip8.Devices, framebuffer *display.Framebuffer, keys *keypad.State) error {

	var sink chip8.Audio
	player, err := audio.NewPlayer(audio.DefaultSampleRate, opts.ToneFrequency)
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
		sink = audio.NewTone(audio.DefaultSampleRate, opts.ToneFrequency)
	} else {
		defer func() {
			if err := player.Close(); err != nil {
				logger.Error("Closing audio failed", log.Err(err))
			}
		}()
		sink = player
	}

	r := runner.New(logger, machine, engine, devices, sink, opts.CyclesPerFrame)
	game := host.New(r, framebuffer, keys, opts.Primary, opts.Secondary)
	if err := game.Run(windowTitle, opts.Scale); err != nil {
		return err
	}
	logger.Debug("Window closed", log.Int("frames", int(r.Frames())))
	return nil
}

func writeListing(opts options.Program, program []byte, stdout io.Writer) error {
	w := stdout
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating output file %s: %w", opts.Output, err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}

	if err := disasm.Listing(w, program, chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

func randomSource(seed uint64) chip8.RandomSource {
	if seed == 0 {
		return nil
	}
	return chip8.NewRand(seed)
}

// isTerminal returns whether the writer is a terminal that can display
// block characters.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(file.Fd())) {
		return false
	}
	return !strings.EqualFold(os.Getenv("TERM"), "dumb")
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", version))
}
