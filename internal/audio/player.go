//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player plays the buzzer tone on the default audio device.
type Player struct {
	tone   *Tone
	ctx    *oto.Context
	player *oto.Player
	mutex  sync.Mutex
}

// NewPlayer opens the audio device and starts streaming the tone, which
// is silent until ToneOn is called.
func NewPlayer(sampleRate, frequency int) (*Player, error) {
	tone := NewTone(sampleRate, frequency)

	op := &oto.NewContextOptions{
		SampleRate:   tone.sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	p := &Player{
		tone:   tone,
		ctx:    ctx,
		player: ctx.NewPlayer(tone),
	}
	p.player.Play()
	return p, nil
}

// ToneOn starts the tone.
func (p *Player) ToneOn() {
	p.tone.ToneOn()
}

// ToneOff stops the tone.
func (p *Player) ToneOff() {
	p.tone.ToneOff()
}

// Close stops playback.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
