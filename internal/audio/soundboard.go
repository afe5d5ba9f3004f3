package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/tone"
)

// ErrUnknownSound is returned by SoundBoard.Play for unregistered sounds.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Sound identifies a sound effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundDie
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundDie:
		return "die"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// Effect describes one synthesized tone.
type Effect struct {
	FrequencyHz float64
	Duration    time.Duration
	Volume      float64 // synthesis volume
	Gain        float64 // playback gain
}

// SoundBoard synthesizes one tone per sound event and hands it to a
// Player. The final amplitude is Volume * Gain * headroom * master.
type SoundBoard struct {
	player     Player
	effects    map[Sound]Effect
	headroom   float64
	master     float64
	sampleRate int
}

// NewSoundBoard builds a sound board from the audio configuration.
func NewSoundBoard(p Player, cfg config.AudioConfig) *SoundBoard {
	effect := func(e config.EffectConfig) Effect {
		return Effect{FrequencyHz: e.FrequencyHz, Duration: e.Duration(), Volume: e.Volume, Gain: e.Gain}
	}
	return &SoundBoard{
		player: p,
		effects: map[Sound]Effect{
			SoundEat: effect(cfg.Eat),
			SoundDie: effect(cfg.Die),
		},
		headroom:   cfg.Headroom,
		master:     core.ClampF(cfg.DefaultVolume, 0, 1),
		sampleRate: cfg.SampleRate,
	}
}

// SetMaster sets the master volume, clamped to [0, 1].
func (b *SoundBoard) SetMaster(v float64) {
	b.master = core.ClampF(v, 0, 1)
}

// Master returns the master volume.
func (b *SoundBoard) Master() float64 {
	return b.master
}

// Synthesize renders the tone for s at the current master volume.
func (b *SoundBoard) Synthesize(s Sound) (tone.Buffer, error) {
	e, ok := b.effects[s]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSound, s)
	}
	vol := core.ClampF(e.Volume*e.Gain*b.headroom*b.master, 0, 1)
	buf, err := tone.Generate(e.FrequencyHz, e.Duration.Seconds(), vol, b.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("audio: %v: %w", s, err)
	}
	return buf, nil
}

// Play synthesizes and plays s. A silent master volume skips playback.
func (b *SoundBoard) Play(s Sound) error {
	buf, err := b.Synthesize(s)
	if err != nil {
		return err
	}
	if b.master == 0 {
		return nil
	}
	return b.player.Play(buf)
}

// Close closes the underlying player.
func (b *SoundBoard) Close() error {
	return b.player.Close()
}
