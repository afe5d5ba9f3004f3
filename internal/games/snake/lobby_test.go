package snake

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

func newTestLobby(t *testing.T) *Lobby {
	t.Helper()
	l, err := NewLobby(config.DefaultSnakeConfig(), 42, 0.1, 120*time.Millisecond)
	if err != nil {
		t.Fatalf("NewLobby failed: %v", err)
	}
	return l
}

func press(t *testing.T, l *Lobby, actions ...core.Action) lobbyOutcome {
	t.Helper()
	out, err := l.Step(time.Second/60, core.InputOf(actions...))
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	return out
}

func TestReseedFormula(t *testing.T) {
	tests := []struct {
		seed, want uint64
	}{
		{0, 1},
		{1, 6364136223846793006},
		{12345, 578673459679314182},
		{math.MaxUint64, 12082607849862758612},
	}
	for _, tc := range tests {
		if got := Reseed(tc.seed); got != tc.want {
			t.Errorf("Reseed(%d) = %d, expected %d", tc.seed, got, tc.want)
		}
	}
}

func TestLobbyReseedRegeneratesPreview(t *testing.T) {
	l := newTestLobby(t)
	press(t, l, core.ActionRestart)

	if l.Seed() != Reseed(42) {
		t.Fatalf("seed = %d, expected %d", l.Seed(), Reseed(42))
	}
	want, err := mapgen.Generate(Reseed(42), 0.1, 32, 24)
	if err != nil {
		t.Fatal(err)
	}
	if !l.Preview().Equal(want) {
		t.Error("preview not regenerated for the new seed")
	}
}

func TestLobbyDensityClamps(t *testing.T) {
	l := newTestLobby(t)

	for range 20 {
		press(t, l, core.ActionDensityUp)
	}
	if l.Density() != 0.35 {
		t.Errorf("density = %v, expected 0.35", l.Density())
	}

	for range 30 {
		press(t, l, core.ActionDensityDown)
	}
	if l.Density() != 0 {
		t.Errorf("density = %v, expected exactly 0", l.Density())
	}

	press(t, l, core.ActionDensityUp)
	if l.Density() != 0.02 {
		t.Errorf("density = %v, expected 0.02", l.Density())
	}
	want, err := mapgen.Generate(42, 0.02, 32, 24)
	if err != nil {
		t.Fatal(err)
	}
	if !l.Preview().Equal(want) {
		t.Error("preview not regenerated for the new density")
	}
}

func TestLobbySpeedClamps(t *testing.T) {
	l := newTestLobby(t)

	press(t, l, core.ActionFaster)
	if l.Interval() != 100*time.Millisecond {
		t.Errorf("interval = %v, expected 100ms", l.Interval())
	}
	for range 10 {
		press(t, l, core.ActionFaster)
	}
	if l.Interval() != 50*time.Millisecond {
		t.Errorf("interval = %v, expected 50ms", l.Interval())
	}
	for range 30 {
		press(t, l, core.ActionSlower)
	}
	if l.Interval() != 350*time.Millisecond {
		t.Errorf("interval = %v, expected 350ms", l.Interval())
	}
}

func TestLobbyLeftRightAdjustSelectedItem(t *testing.T) {
	l := newTestLobby(t)

	// Left/Right on Start does nothing.
	press(t, l, core.ActionRight)
	if l.Density() != 0.1 || l.Interval() != 120*time.Millisecond {
		t.Error("Right on Start changed a setting")
	}

	press(t, l, core.ActionDown)
	press(t, l, core.ActionDown)
	if l.Selected() != ItemDensity {
		t.Fatalf("selected %v, expected density", l.Selected())
	}
	press(t, l, core.ActionRight)
	if l.Density() != 0.12 {
		t.Errorf("density = %v, expected 0.12", l.Density())
	}

	press(t, l, core.ActionDown)
	press(t, l, core.ActionRight)
	if l.Interval() != 100*time.Millisecond {
		t.Errorf("Right on speed: interval = %v, expected 100ms", l.Interval())
	}
	press(t, l, core.ActionLeft)
	press(t, l, core.ActionLeft)
	if l.Interval() != 140*time.Millisecond {
		t.Errorf("Left on speed: interval = %v, expected 140ms", l.Interval())
	}
}

func TestLobbyCursorWraps(t *testing.T) {
	l := newTestLobby(t)
	press(t, l, core.ActionUp)
	if l.Selected() != ItemQuit {
		t.Errorf("Up from Start selected %v, expected Quit", l.Selected())
	}
	press(t, l, core.ActionDown)
	if l.Selected() != ItemStart {
		t.Errorf("Down from Quit selected %v, expected Start", l.Selected())
	}
}

func TestLobbyConfirmOutcomes(t *testing.T) {
	l := newTestLobby(t)
	if out := press(t, l, core.ActionConfirm); out != lobbyStart {
		t.Errorf("Confirm on Start = %v, expected start", out)
	}

	press(t, l, core.ActionDown)
	if out := press(t, l, core.ActionConfirm); out != lobbyStay || l.Seed() != Reseed(42) {
		t.Errorf("Confirm on Reseed: outcome %v, seed %d", out, l.Seed())
	}

	press(t, l, core.ActionUp)
	press(t, l, core.ActionUp)
	if out := press(t, l, core.ActionConfirm); out != lobbyQuit {
		t.Errorf("Confirm on Quit = %v, expected quit", out)
	}

	if out := press(t, l, core.ActionSettings); out != lobbySettings {
		t.Errorf("Settings = %v, expected settings", out)
	}
}

func TestNewLobbyClampsInputs(t *testing.T) {
	l, err := NewLobby(config.DefaultSnakeConfig(), 1, 0.9, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if l.Density() != 0.35 || l.Interval() != 50*time.Millisecond {
		t.Errorf("inputs not clamped: density %v interval %v", l.Density(), l.Interval())
	}
}

func TestPreviewHeadWandersOpenCells(t *testing.T) {
	l, err := NewLobby(config.DefaultSnakeConfig(), 7, 0.35, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	start, _ := l.PreviewHead()
	moved := false
	for range 2000 {
		press(t, l)
		pos, _ := l.PreviewHead()
		if pos != start {
			moved = true
		}
		if !l.previewOpen(pos) {
			t.Fatalf("preview head on blocked cell %v", pos)
		}
	}
	if !moved {
		t.Error("preview head never moved")
	}
}

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     float64
	}{
		{120 * time.Millisecond, 1},
		{60 * time.Millisecond, 2},
		{50 * time.Millisecond, 2.4},
		{350 * time.Millisecond, 0.5},
	}
	for _, tc := range tests {
		l, err := NewLobby(config.DefaultSnakeConfig(), 1, 0.1, tc.interval)
		if err != nil {
			t.Fatal(err)
		}
		if got := l.SpeedFactor(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("SpeedFactor(%v) = %v, expected %v", tc.interval, got, tc.want)
		}
	}
}

func TestSettingsVolume(t *testing.T) {
	s := NewSettings(1, 0.05)

	s.Step(core.InputOf(core.ActionLeft))
	s.Step(core.InputOf(core.ActionDensityDown))
	if s.Volume() != 0.9 || s.Percent() != 90 {
		t.Errorf("volume = %v (%d%%), expected 0.9", s.Volume(), s.Percent())
	}

	for range 5 {
		s.Step(core.InputOf(core.ActionRight))
	}
	if s.Volume() != 1 {
		t.Errorf("volume = %v, expected clamp at 1", s.Volume())
	}

	s.Step(core.InputOf(core.ActionMute))
	if s.Volume() != 0 {
		t.Errorf("mute: volume = %v, expected 0", s.Volume())
	}
	s.Step(core.InputOf(core.ActionLeft))
	if s.Volume() != 0 {
		t.Errorf("volume = %v, expected clamp at 0", s.Volume())
	}
	s.Step(core.InputOf(core.ActionMute))
	if s.Volume() != 1 {
		t.Errorf("unmute: volume = %v, expected 1", s.Volume())
	}

	if s.Step(core.NewInputFrame()) {
		t.Error("empty input closed settings")
	}
	if !s.Step(core.InputOf(core.ActionBack)) || !s.Step(core.InputOf(core.ActionConfirm)) {
		t.Error("Back and Confirm should close settings")
	}
}
