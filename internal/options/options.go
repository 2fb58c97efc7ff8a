// Package options contains the program options.
package options

import (
	"image/color"
)

// Defaults of the program options.
const (
	DefaultScale          = 24
	DefaultCyclesPerFrame = 11
	DefaultPrimaryColor   = "0xFFFFFFFF"
	DefaultSecondaryColor = "0x000000FF"
	DefaultToneFrequency  = 440
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // ROM file to run
	Output string // file to write the program listing to, stdout if empty
}

// Flags contains behavior options.
type Flags struct {
	CyclesPerFrame int    // instructions executed per 60 Hz frame
	Seed           uint64 // seed of the random number generator, 0 for a random seed
	Headless       bool   // run without window and audio
	Frames         uint64 // number of frames to run in headless mode, 0 runs until interrupted
	List           bool   // write a program listing before running
	Trace          bool   // log every executed instruction
	Debug          bool
	Quiet          bool
}

// DisplayFlags contains window and audio options.
type DisplayFlags struct {
	Scale          int    // window scale factor of the 64x32 display
	PrimaryColor   string // colour of set pixels as 0xRRGGBBAA
	SecondaryColor string // colour of cleared pixels as 0xRRGGBBAA
	ToneFrequency  int    // buzzer frequency in Hz
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	DisplayFlags

	// parsed colours, set by the command line parser
	Primary   color.RGBA
	Secondary color.RGBA
}
