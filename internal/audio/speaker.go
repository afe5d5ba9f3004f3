package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/matrix-snake/internal/tone"
)

// Speaker plays buffers on the default audio device. The device is
// opened on the first Play.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker running at sampleRate.
func NewSpeaker(sampleRate int) *Speaker {
	return &Speaker{
		rate:  beep.SampleRate(sampleRate),
		mixer: &beep.Mixer{},
	}
}

func (s *Speaker) init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Open opens the audio device now instead of on the first Play, so
// callers can fall back to Discard when no device is available.
func (s *Speaker) Open() error {
	return s.init()
}

// Play decodes buf and mixes it into the output. It returns once the
// sound is queued.
func (s *Speaker) Play(buf tone.Buffer) error {
	if err := s.init(); err != nil {
		return err
	}

	streamer, closer, err := decode(buf, s.rate)
	if err != nil {
		return err
	}

	speaker.Lock()
	s.mixer.Add(beep.Seq(streamer, beep.Callback(func() { closer.Close() })))
	speaker.Unlock()
	return nil
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
	return nil
}

type streamCloser interface {
	Close() error
}

// decode turns buf into a streamer at rate, resampling when the buffer
// was synthesized at a different rate.
func decode(buf tone.Buffer, rate beep.SampleRate) (beep.Streamer, streamCloser, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, nil, fmt.Errorf("audio: cannot decode buffer: %w", err)
	}
	if format.SampleRate == rate {
		return streamer, streamer, nil
	}
	return beep.Resample(4, format.SampleRate, rate, streamer), streamer, nil
}
