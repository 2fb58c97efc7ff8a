// Package runner drives the CHIP-8 engine frame by frame.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Frame timing constants.
const (
	// FrameRate is the number of frames per second, which is also the
	// rate at which the timers decrement.
	FrameRate = 60

	// FrameDuration is the duration of a single frame.
	FrameDuration = time.Second / FrameRate

	// DefaultCyclesPerFrame is the number of instructions executed per frame.
	DefaultCyclesPerFrame = 11
)

// Runner owns a machine and executes it against its devices.
type Runner struct {
	logger  *log.Logger
	machine *chip8.Machine
	engine  *chip8.Engine
	devices chip8.Devices
	audio   chip8.Audio

	cyclesPerFrame int
	frames         uint64
	toneOn         bool
}

// New returns a runner for the machine. A non positive cyclesPerFrame
// selects DefaultCyclesPerFrame.
func New(logger *log.Logger, machine *chip8.Machine, engine *chip8.Engine,
	devices chip8.Devices, audio chip8.Audio, cyclesPerFrame int) *Runner {

	if cyclesPerFrame <= 0 {
		cyclesPerFrame = DefaultCyclesPerFrame
	}
	return &Runner{
		logger:         logger,
		machine:        machine,
		engine:         engine,
		devices:        devices,
		audio:          audio,
		cyclesPerFrame: cyclesPerFrame,
	}
}

// Machine returns the machine that the runner executes.
func (r *Runner) Machine() *chip8.Machine {
	return r.machine
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Frame updates the timers once, executes the configured number of cycles
// and switches the tone according to the sound timer.
func (r *Runner) Frame() error {
	r.machine.UpdateTimers()

	for range r.cyclesPerFrame {
		if err := r.engine.RunCycle(r.machine, r.devices); err != nil {
			r.silence()
			return fmt.Errorf("executing frame %d: %w", r.frames, err)
		}
	}

	r.updateTone()
	r.frames++
	return nil
}

// Run executes frames paced at FrameRate until the frame limit is reached,
// the context is cancelled or a cycle fails. A limit of 0 runs until the
// context is cancelled.
func (r *Runner) Run(ctx context.Context, limit uint64) error {
	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()
	defer r.silence()

	for limit == 0 || r.frames < limit {
		if err := r.Frame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("running: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	r.logger.Debug("Frame limit reached", log.Int("frames", int(r.frames)))
	return nil
}

func (r *Runner) updateTone() {
	if r.audio == nil {
		return
	}

	switch {
	case r.machine.SoundTimer > 0 && !r.toneOn:
		r.audio.ToneOn()
		r.toneOn = true
	case r.machine.SoundTimer == 0 && r.toneOn:
		r.audio.ToneOff()
		r.toneOn = false
	}
}

func (r *Runner) silence() {
	if r.audio != nil && r.toneOn {
		r.audio.ToneOff()
		r.toneOn = false
	}
}
