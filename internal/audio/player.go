// Package audio plays synthesized sound effects.
package audio

import (
	"sync"

	"github.com/vovakirdan/matrix-snake/internal/tone"
)

// Player plays complete WAV buffers.
type Player interface {
	Play(buf tone.Buffer) error
	Close() error
}

// Discard is a Player that plays nothing. It keeps count of the buffers
// it was handed. Used for SSH sessions, muted runs and tests.
type Discard struct {
	mu    sync.Mutex
	plays int
	last  tone.Buffer
}

// Play records buf.
func (d *Discard) Play(buf tone.Buffer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.plays++
	d.last = buf
	return nil
}

// Close does nothing.
func (d *Discard) Close() error { return nil }

// Plays returns how many buffers were played.
func (d *Discard) Plays() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.plays
}

// Last returns the most recent buffer, or nil.
func (d *Discard) Last() tone.Buffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}
