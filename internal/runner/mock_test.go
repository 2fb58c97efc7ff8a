package runner

// mockAudio counts tone switches.
type mockAudio struct {
	on       bool
	onCalls  int
	offCalls int
}

func (a *mockAudio) ToneOn() {
	a.on = true
	a.onCalls++
}

func (a *mockAudio) ToneOff() {
	a.on = false
	a.offCalls++
}

// mockDisplay ignores all drawing.
type mockDisplay struct{}

func (mockDisplay) WritePixel(int, int, bool)    {}
func (mockDisplay) PixelIsPrimary(int, int) bool { return false }
func (mockDisplay) Clear()                       {}

// mockKeypad has no keys held.
type mockKeypad struct{}

func (mockKeypad) IsKeyDown(uint8) bool { return false }
