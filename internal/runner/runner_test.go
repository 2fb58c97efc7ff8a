package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestRunner(t *testing.T, program []byte, cycles int) (*Runner, *mockAudio) {
	t.Helper()

	m := chip8.NewMachine()
	assert.NoError(t, m.LoadProgram(program))
	audio := &mockAudio{}
	devices := chip8.Devices{Display: mockDisplay{}, Keypad: mockKeypad{}}
	return New(log.NewTestLogger(t), m, chip8.New(), devices, audio, cycles), audio
}

func TestNew_DefaultCycles(t *testing.T) {
	r, _ := newTestRunner(t, nil, 0)
	assert.Equal(t, DefaultCyclesPerFrame, r.cyclesPerFrame)
}

func TestRunner_Frame(t *testing.T) {
	// ADD V0, 1; JP $200
	r, _ := newTestRunner(t, []byte{0x70, 0x01, 0x12, 0x00}, 4)

	assert.NoError(t, r.Frame())
	assert.Equal(t, uint8(2), r.Machine().V[0])
	assert.Equal(t, uint64(1), r.Frames())

	assert.NoError(t, r.Frame())
	assert.Equal(t, uint8(4), r.Machine().V[0])
	assert.Equal(t, uint64(2), r.Frames())
}

func TestRunner_FrameUpdatesTimersBeforeCycles(t *testing.T) {
	// LD V1, DT; JP $202
	r, _ := newTestRunner(t, []byte{0xF1, 0x07, 0x12, 0x02}, 1)
	r.Machine().DelayTimer = 5

	assert.NoError(t, r.Frame())
	assert.Equal(t, uint8(4), r.Machine().V[1])
}

func TestRunner_Tone(t *testing.T) {
	// LD V0, 2; LD ST, V0; JP $204
	r, audio := newTestRunner(t, []byte{0x60, 0x02, 0xF0, 0x18, 0x12, 0x04}, 3)

	assert.NoError(t, r.Frame())
	assert.True(t, audio.on)
	assert.Equal(t, 1, audio.onCalls)

	// timer 2 -> 1, tone stays on without another call
	assert.NoError(t, r.Frame())
	assert.True(t, audio.on)
	assert.Equal(t, 1, audio.onCalls)

	// timer 1 -> 0
	assert.NoError(t, r.Frame())
	assert.False(t, audio.on)
	assert.Equal(t, 1, audio.offCalls)

	assert.NoError(t, r.Frame())
	assert.Equal(t, 1, audio.offCalls)
}

func TestRunner_FrameError(t *testing.T) {
	// LD V0, 9; LD ST, V0; RET with empty stack
	r, audio := newTestRunner(t, []byte{0x60, 0x09, 0xF0, 0x18, 0x00, 0xEE}, 3)
	r.toneOn = true

	err := r.Frame()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.ErrorContains(t, err, "executing frame 0")
	assert.Equal(t, uint64(0), r.Frames())
	assert.False(t, audio.on)
}

func TestRunner_RunFrameLimit(t *testing.T) {
	r, _ := newTestRunner(t, []byte{0x12, 0x00}, 1)

	assert.NoError(t, r.Run(context.Background(), 3))
	assert.Equal(t, uint64(3), r.Frames())
}

func TestRunner_RunCancelled(t *testing.T) {
	r, _ := newTestRunner(t, []byte{0x12, 0x00}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, 0)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(1), r.Frames())
}

func TestRunner_RunError(t *testing.T) {
	r, _ := newTestRunner(t, []byte{0xFF, 0xFF}, 1)

	err := r.Run(context.Background(), 10)
	assert.True(t, errors.Is(err, chip8.ErrInvalidOpcode))
}
