package timeline

import "sync"

// Playhead is the server-side view of the playback surface: it records the
// last commanded position so the presentation layer can reflect it. The
// actual seek happens in the player; out-of-range positions are its
// problem.
type Playhead struct {
	mu       sync.Mutex
	position float64
	playing  bool
}

// NewPlayhead creates a paused playhead at zero.
func NewPlayhead() *Playhead {
	return &Playhead{}
}

// Seek moves the playhead to seconds.
func (p *Playhead) Seek(seconds float64) {
	p.mu.Lock()
	p.position = seconds
	p.mu.Unlock()
}

// Play marks the playhead as playing.
func (p *Playhead) Play() {
	p.mu.Lock()
	p.playing = true
	p.mu.Unlock()
}

// State returns the current position and playing flag.
func (p *Playhead) State() (position float64, playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position, p.playing
}

// Reset returns the playhead to a paused zero position, for a new
// selection.
func (p *Playhead) Reset() {
	p.mu.Lock()
	p.position = 0
	p.playing = false
	p.mu.Unlock()
}
