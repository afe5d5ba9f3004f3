package snake

import (
	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Settings is the sound settings screen.
type Settings struct {
	volume float64
	step   float64
}

// NewSettings opens the settings screen at the given volume.
func NewSettings(volume, step float64) *Settings {
	return &Settings{volume: core.ClampF(volume, 0, 1), step: step}
}

// Volume returns the selected master volume.
func (s *Settings) Volume() float64 { return s.volume }

// Percent returns the volume as a rounded percentage.
func (s *Settings) Percent() int { return int(roundStep(s.volume)*100 + 0.5) }

// Step handles one frame of input. It reports true when the screen
// should close.
func (s *Settings) Step(input core.InputFrame) (done bool) {
	switch {
	case input.Has(core.ActionLeft), input.Has(core.ActionDensityDown):
		s.volume = roundStep(core.ClampF(s.volume-s.step, 0, 1))
	case input.Has(core.ActionRight), input.Has(core.ActionDensityUp):
		s.volume = roundStep(core.ClampF(s.volume+s.step, 0, 1))
	case input.Has(core.ActionMute):
		if s.volume > 0 {
			s.volume = 0
		} else {
			s.volume = 1
		}
	case input.Has(core.ActionConfirm), input.Has(core.ActionBack):
		return true
	}
	return false
}
