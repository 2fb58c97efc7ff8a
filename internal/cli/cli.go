// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions validates option values and parses the colours
func normalizeOptions(opts *options.Program) error {
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale factor %d: must be positive", opts.Scale)
	}
	if opts.CyclesPerFrame <= 0 {
		return fmt.Errorf("invalid cycles per frame %d: must be positive", opts.CyclesPerFrame)
	}
	if opts.ToneFrequency <= 0 {
		return fmt.Errorf("invalid tone frequency %d: must be positive", opts.ToneFrequency)
	}

	var err error
	opts.Primary, err = config.ParseColor(opts.PrimaryColor)
	if err != nil {
		return fmt.Errorf("parsing primary color: %w", err)
	}
	opts.Secondary, err = config.ParseColor(opts.SecondaryColor)
	if err != nil {
		return fmt.Errorf("parsing secondary color: %w", err)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file for the program listing, printed on console if no name given")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", options.DefaultCyclesPerFrame, "number of instructions executed per frame")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 uses a random seed")
	flags.BoolVar(&opts.Headless, "headless", false, "run without window and audio and print the display on exit")
	flags.Uint64Var(&opts.Frames, "frames", 0, "number of frames to run in headless mode, 0 runs until interrupted")
	flags.BoolVar(&opts.List, "list", false, "output a disassembly listing of the ROM before running")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "scale factor for the 64x32 display")
	flags.StringVar(&opts.PrimaryColor, "primary", options.DefaultPrimaryColor, "color of set pixels in RGBA hex format")
	flags.StringVar(&opts.SecondaryColor, "secondary", options.DefaultSecondaryColor, "color of cleared pixels in RGBA hex format")
	flags.IntVar(&opts.ToneFrequency, "tone", options.DefaultToneFrequency, "frequency of the buzzer tone in Hz")
}
