//go:build headless

package audio

// Player is a silent tone sink for builds without audio support.
type Player struct {
	tone *Tone
}

// NewPlayer returns a player that does not output any audio.
func NewPlayer(sampleRate, frequency int) (*Player, error) {
	return &Player{tone: NewTone(sampleRate, frequency)}, nil
}

// ToneOn starts the tone.
func (p *Player) ToneOn() {
	p.tone.ToneOn()
}

// ToneOff stops the tone.
func (p *Player) ToneOff() {
	p.tone.ToneOff()
}

// Close does nothing.
func (p *Player) Close() error {
	return nil
}
