// Package audio generates the CHIP-8 buzzer tone.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Default tone settings.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440
	amplitude         = 0.25
	bytesPerSample    = 4 // mono float32
)

// Compile-time check to ensure Tone implements chip8.Audio.
var _ chip8.Audio = (*Tone)(nil)

// Tone is a square wave generator that produces mono float32 little endian
// samples. It is silent while the tone is off.
type Tone struct {
	enabled    atomic.Bool
	sampleRate int
	frequency  int
	position   int // sample position within one wave period
}

// NewTone returns a tone generator. Non positive values select the defaults.
func NewTone(sampleRate, frequency int) *Tone {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	return &Tone{
		sampleRate: sampleRate,
		frequency:  frequency,
	}
}

// ToneOn starts the tone.
func (t *Tone) ToneOn() {
	t.enabled.Store(true)
}

// ToneOff stops the tone.
func (t *Tone) ToneOff() {
	t.enabled.Store(false)
}

// Playing returns whether the tone is on.
func (t *Tone) Playing() bool {
	return t.enabled.Load()
}

// Read fills p with samples. It never fails and always fills complete
// samples, a trailing partial sample is left untouched.
func (t *Tone) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	if !t.enabled.Load() {
		clear(p[:samples*bytesPerSample])
		t.position = 0
		return samples * bytesPerSample, nil
	}

	period := t.sampleRate / t.frequency
	if period < 2 {
		period = 2
	}

	for i := range samples {
		value := float32(amplitude)
		if t.position >= period/2 {
			value = -amplitude
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(value))

		t.position++
		if t.position >= period {
			t.position = 0
		}
	}
	return samples * bytesPerSample, nil
}
