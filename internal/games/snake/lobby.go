package snake

import (
	"math"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

// ReseedMultiplier is the LCG multiplier used by Reseed.
const ReseedMultiplier = 6364136223846793005

// LobbyItem is an entry of the lobby menu.
type LobbyItem int

const (
	ItemStart LobbyItem = iota
	ItemReseed
	ItemDensity
	ItemSpeed
	ItemQuit

	lobbyItemCount
)

func (i LobbyItem) String() string {
	switch i {
	case ItemStart:
		return "Start"
	case ItemReseed:
		return "Reseed"
	case ItemDensity:
		return "Wall density"
	case ItemSpeed:
		return "Speed"
	case ItemQuit:
		return "Quit"
	default:
		return "?"
	}
}

// lobbyOutcome is what a lobby step asks the App to do.
type lobbyOutcome int

const (
	lobbyStay lobbyOutcome = iota
	lobbyStart
	lobbySettings
	lobbyQuit
)

// Reseed returns the seed that follows seed in the lobby's sequence.
func Reseed(seed uint64) uint64 {
	return seed*ReseedMultiplier + 1
}

// Lobby holds the run parameters chosen before a run and the animated
// map preview.
type Lobby struct {
	cfg config.SnakeConfig

	seed     uint64
	density  float64
	interval time.Duration
	selected LobbyItem

	preview    *mapgen.WallSet
	previewPos mapgen.Cell
	previewDir Direction
	previewAcc time.Duration
}

// NewLobby creates a lobby with the given starting parameters, clamped
// to the configured ranges.
func NewLobby(cfg config.SnakeConfig, seed uint64, density float64, interval time.Duration) (*Lobby, error) {
	l := &Lobby{
		cfg:      cfg,
		seed:     seed,
		density:  core.ClampF(density, 0, cfg.Map.MaxDensity),
		interval: clampDuration(interval, cfg.Speed.Min(), cfg.Speed.Max()),
	}
	if err := l.regenerate(); err != nil {
		return nil, err
	}
	return l, nil
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	return min(max(d, lo), hi)
}

// roundStep removes the float drift that repeated 0.02 steps accumulate.
func roundStep(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Seed returns the selected map seed.
func (l *Lobby) Seed() uint64 { return l.seed }

// Density returns the selected wall density.
func (l *Lobby) Density() float64 { return l.density }

// Interval returns the selected move interval.
func (l *Lobby) Interval() time.Duration { return l.interval }

// Selected returns the highlighted menu item.
func (l *Lobby) Selected() LobbyItem { return l.selected }

// Preview returns the map for the current seed and density.
func (l *Lobby) Preview() *mapgen.WallSet { return l.preview }

// PreviewHead returns the position and heading of the wandering preview
// head.
func (l *Lobby) PreviewHead() (mapgen.Cell, Direction) { return l.previewPos, l.previewDir }

// Run returns the parameters a run started now would use.
func (l *Lobby) Run() RunSettings {
	return RunSettings{Seed: l.seed, Density: l.density, MoveInterval: l.interval}
}

// SpeedFactor is the default interval over the selected one, clamped to
// [0.5, 4].
func (l *Lobby) SpeedFactor() float64 {
	return core.ClampF(float64(l.cfg.Speed.Default())/float64(l.interval), 0.5, 4)
}

func (l *Lobby) regenerate() error {
	walls, err := mapgen.GenerateParams(mapgen.Params{
		Seed:       l.seed,
		Density:    l.density,
		Width:      l.cfg.Grid.Width,
		Height:     l.cfg.Grid.Height,
		SafeRadius: l.cfg.Map.SafeRadius,
	})
	if err != nil {
		return err
	}
	l.preview = walls
	if !l.previewOpen(l.previewPos) {
		l.previewPos = walls.Spawn()
		l.previewDir = DirRight
	}
	return nil
}

// Reseed advances the seed and regenerates the preview.
func (l *Lobby) Reseed() error {
	l.seed = Reseed(l.seed)
	return l.regenerate()
}

// AdjustDensity moves the density by steps times the configured step.
func (l *Lobby) AdjustDensity(steps int) error {
	next := roundStep(core.ClampF(l.density+float64(steps)*l.cfg.Map.DensityStep, 0, l.cfg.Map.MaxDensity))
	if next == l.density {
		return nil
	}
	l.density = next
	return l.regenerate()
}

// AdjustSpeed moves the interval by steps times the configured step.
// Positive steps make the snake faster.
func (l *Lobby) AdjustSpeed(steps int) {
	l.interval = clampDuration(l.interval-time.Duration(steps)*l.cfg.Speed.Step(), l.cfg.Speed.Min(), l.cfg.Speed.Max())
}

// Step handles one frame of lobby input and animates the preview.
func (l *Lobby) Step(dt time.Duration, input core.InputFrame) (lobbyOutcome, error) {
	var err error
	switch {
	case input.Has(core.ActionUp):
		l.selected = (l.selected + lobbyItemCount - 1) % lobbyItemCount
	case input.Has(core.ActionDown):
		l.selected = (l.selected + 1) % lobbyItemCount
	case input.Has(core.ActionLeft):
		err = l.adjustSelected(-1)
	case input.Has(core.ActionRight):
		err = l.adjustSelected(1)
	case input.Has(core.ActionDensityDown):
		err = l.AdjustDensity(-1)
	case input.Has(core.ActionDensityUp):
		err = l.AdjustDensity(1)
	case input.Has(core.ActionSlower):
		l.AdjustSpeed(-1)
	case input.Has(core.ActionFaster):
		l.AdjustSpeed(1)
	case input.Has(core.ActionRestart):
		err = l.Reseed()
	case input.Has(core.ActionSettings):
		return lobbySettings, nil
	case input.Has(core.ActionConfirm):
		switch l.selected {
		case ItemStart:
			return lobbyStart, nil
		case ItemReseed:
			err = l.Reseed()
		case ItemQuit:
			return lobbyQuit, nil
		}
	}
	if err != nil {
		return lobbyStay, err
	}

	l.animate(dt)
	return lobbyStay, nil
}

func (l *Lobby) adjustSelected(dir int) error {
	switch l.selected {
	case ItemDensity:
		return l.AdjustDensity(dir)
	case ItemSpeed:
		l.AdjustSpeed(dir)
	}
	return nil
}

// animate moves the preview head forward once per move interval, turning
// clockwise when blocked.
func (l *Lobby) animate(dt time.Duration) {
	period := max(l.interval, 50*time.Millisecond)
	l.previewAcc += dt
	if l.previewAcc < period {
		return
	}
	l.previewAcc -= period

	dir := l.previewDir
	for range 4 {
		next := dir.Step(l.previewPos)
		if l.previewOpen(next) {
			l.previewPos = next
			l.previewDir = dir
			return
		}
		dir = dir.Clockwise()
	}
	// Boxed in
	l.previewPos = l.preview.Spawn()
	l.previewDir = DirRight
}

func (l *Lobby) previewOpen(c mapgen.Cell) bool {
	return c.X > 0 && c.Y > 0 && c.X < l.preview.Width()-1 && c.Y < l.preview.Height()-1 && !l.preview.Contains(c)
}
