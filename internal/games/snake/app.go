// Package snake implements the Matrix Snake game: the playing field, the
// lobby and settings screens, the background rain, and the screen state
// machine that ties them together. It has no terminal dependencies; the
// platform feeds it input frames and draws the screen it renders.
package snake

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

// ErrTransition is returned for a trigger the current screen does not
// accept.
var ErrTransition = errors.New("snake: invalid screen transition")

// ScreenKind identifies the active screen.
type ScreenKind int

const (
	ScreenLobby ScreenKind = iota
	ScreenSettings
	ScreenPlaying
	ScreenGameOver
)

func (s ScreenKind) String() string {
	switch s {
	case ScreenLobby:
		return "lobby"
	case ScreenSettings:
		return "settings"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger is a cause of a screen change.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerOpenSettings
	TriggerBack
	TriggerDied
	TriggerRestart
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerOpenSettings:
		return "open_settings"
	case TriggerBack:
		return "back"
	case TriggerDied:
		return "died"
	case TriggerRestart:
		return "restart"
	default:
		return "unknown"
	}
}

type transition struct {
	from    ScreenKind
	trigger Trigger
}

var transitions = map[transition]ScreenKind{
	{ScreenLobby, TriggerStart}:        ScreenPlaying,
	{ScreenLobby, TriggerOpenSettings}: ScreenSettings,
	{ScreenSettings, TriggerBack}:      ScreenLobby,
	{ScreenPlaying, TriggerDied}:       ScreenGameOver,
	{ScreenGameOver, TriggerRestart}:   ScreenPlaying,
	{ScreenGameOver, TriggerBack}:      ScreenLobby,
}

// Next returns the screen reached from `from` on trigger t. ok is false
// when the pair is not an allowed transition.
func Next(from ScreenKind, t Trigger) (to ScreenKind, ok bool) {
	to, ok = transitions[transition{from, t}]
	return to, ok
}

// EventKind identifies something the platform may want to react to.
type EventKind int

const (
	EventAte           EventKind = iota // play the eat sound
	EventDied                           // play the die sound
	EventRunStarted                     // persist the run settings
	EventVolumeChanged                  // persist and apply the volume
	EventBestScore                      // persist the best score
	EventGameOver                       // record the finished run
)

func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventRunStarted:
		return "run_started"
	case EventVolumeChanged:
		return "volume_changed"
	case EventBestScore:
		return "best_score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RunSettings are the parameters of one run.
type RunSettings struct {
	Seed         uint64
	Density      float64
	MoveInterval time.Duration
}

// Event is emitted by App.Step.
type Event struct {
	Kind   EventKind
	Score  int
	Run    RunSettings // EventRunStarted, EventGameOver
	Volume float64     // EventVolumeChanged
}

// StepResult is returned by App.Step after each simulation tick.
type StepResult struct {
	State  core.GameState
	Screen ScreenKind
	Events []Event
	Quit   bool
}

// Prefs are the persisted values the App starts from.
type Prefs struct {
	BestScore    int
	Seed         uint64 // 0 picks the runtime seed
	Density      float64
	MoveInterval time.Duration
	Volume       float64
}

// App is the whole game: the active screen and the state every screen
// shares.
type App struct {
	cfg    config.SnakeConfig
	dt     time.Duration
	rng    *rand.Rand
	screen ScreenKind

	lobby    *Lobby
	settings *Settings
	game     *Game
	run      RunSettings
	rain     *Rain

	best   int
	volume float64

	screenW, screenH int
	tooSmall         bool
}

// NewApp creates the game in the lobby.
func NewApp(cfg config.SnakeConfig, prefs Prefs, rt core.RuntimeConfig) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	runtimeSeed := uint64(rt.Seed)

	seed := prefs.Seed
	if seed == 0 {
		seed = runtimeSeed
	}
	interval := prefs.MoveInterval
	if interval <= 0 {
		interval = cfg.Speed.Default()
	}
	lobby, err := NewLobby(cfg, seed, prefs.Density, interval)
	if err != nil {
		return nil, fmt.Errorf("snake: lobby: %w", err)
	}

	a := &App{
		cfg:    cfg,
		dt:     time.Second / time.Duration(tickRate),
		rng:    rand.New(rand.NewPCG(runtimeSeed, runtimeSeed^0xA0761D6478BD642F)),
		screen: ScreenLobby,
		lobby:  lobby,
		best:   max(prefs.BestScore, 0),
		volume: core.ClampF(prefs.Volume, 0, 1),
	}
	w, h := rt.ScreenW, rt.ScreenH
	if w <= 0 || h <= 0 {
		w, h = a.MinSize()
	}
	a.Resize(w, h)
	return a, nil
}

// Screen returns the active screen.
func (a *App) Screen() ScreenKind { return a.screen }

// Lobby returns the lobby state.
func (a *App) Lobby() *Lobby { return a.lobby }

// Game returns the current run, or nil before the first run.
func (a *App) Game() *Game { return a.game }

// Settings returns the settings screen while it is open.
func (a *App) Settings() *Settings { return a.settings }

// BestScore returns the best score seen so far.
func (a *App) BestScore() int { return a.best }

// Volume returns the master volume.
func (a *App) Volume() float64 { return a.volume }

// TooSmall reports whether the last Resize was below MinSize.
func (a *App) TooSmall() bool { return a.tooSmall }

// Resize adapts the layout and the rain to a new screen size.
func (a *App) Resize(w, h int) {
	a.screenW, a.screenH = w, h
	minW, minH := a.MinSize()
	a.tooSmall = w < minW || h < minH
	a.rain = NewRain(w, h, a.cfg.Rain.MinSpeed, a.cfg.Rain.MaxSpeed, a.rng)
}

// State returns the current game state.
func (a *App) State() core.GameState {
	state := core.GameState{Paused: a.tooSmall}
	if a.game != nil && (a.screen == ScreenPlaying || a.screen == ScreenGameOver) {
		state = a.game.State()
		state.Paused = state.Paused || a.tooSmall
	}
	return state
}

func (a *App) fire(t Trigger) error {
	to, ok := Next(a.screen, t)
	if !ok {
		return fmt.Errorf("%w: %v on %v", ErrTransition, t, a.screen)
	}
	a.screen = to
	return nil
}

// Step advances the game by one tick.
func (a *App) Step(input core.InputFrame) (StepResult, error) {
	if input.Has(core.ActionQuit) {
		return a.result(nil, true), nil
	}

	a.rain.Step(a.dt)

	var (
		events []Event
		quit   bool
		err    error
	)
	switch a.screen {
	case ScreenLobby:
		events, quit, err = a.stepLobby(input)
	case ScreenSettings:
		events, err = a.stepSettings(input)
	case ScreenPlaying:
		events, err = a.stepPlaying(input)
	case ScreenGameOver:
		events, err = a.stepGameOver(input)
	}
	return a.result(events, quit), err
}

func (a *App) result(events []Event, quit bool) StepResult {
	return StepResult{State: a.State(), Screen: a.screen, Events: events, Quit: quit}
}

func (a *App) stepLobby(input core.InputFrame) ([]Event, bool, error) {
	outcome, err := a.lobby.Step(a.dt, input)
	if err != nil {
		return nil, false, err
	}
	switch outcome {
	case lobbyQuit:
		return nil, true, nil
	case lobbySettings:
		if err := a.fire(TriggerOpenSettings); err != nil {
			return nil, false, err
		}
		a.settings = NewSettings(a.volume, a.cfg.Audio.VolumeStep)
	case lobbyStart:
		run := a.lobby.Run()
		walls, err := mapgen.GenerateParams(mapgen.Params{
			Seed:       run.Seed,
			Density:    run.Density,
			Width:      a.cfg.Grid.Width,
			Height:     a.cfg.Grid.Height,
			SafeRadius: a.cfg.Map.SafeRadius,
		})
		if err != nil {
			return nil, false, fmt.Errorf("snake: generate map: %w", err)
		}
		if err := a.fire(TriggerStart); err != nil {
			return nil, false, err
		}
		a.run = run
		a.game = NewGame(walls, run.MoveInterval, a.rng.Uint64())
		return []Event{{Kind: EventRunStarted, Run: run}}, false, nil
	}
	return nil, false, nil
}

func (a *App) stepSettings(input core.InputFrame) ([]Event, error) {
	if !a.settings.Step(input) {
		return nil, nil
	}
	if err := a.fire(TriggerBack); err != nil {
		return nil, err
	}
	a.volume = a.settings.Volume()
	a.settings = nil
	return []Event{{Kind: EventVolumeChanged, Volume: a.volume}}, nil
}

func (a *App) stepPlaying(input core.InputFrame) ([]Event, error) {
	if a.tooSmall {
		return nil, nil
	}
	events := a.game.Step(a.dt, input)
	if !a.game.Dead() {
		return events, nil
	}

	if err := a.fire(TriggerDied); err != nil {
		return events, err
	}
	score := a.game.Score()
	if score > a.best {
		a.best = score
		events = append(events, Event{Kind: EventBestScore, Score: score})
	}
	return append(events, Event{Kind: EventGameOver, Score: score, Run: a.run}), nil
}

func (a *App) stepGameOver(input core.InputFrame) ([]Event, error) {
	switch {
	case input.Has(core.ActionRestart):
		if err := a.fire(TriggerRestart); err != nil {
			return nil, err
		}
		a.game = NewGame(a.game.Walls(), a.game.Interval(), a.rng.Uint64())
		return []Event{{Kind: EventRunStarted, Run: a.run}}, nil
	case input.Has(core.ActionConfirm), input.Has(core.ActionBack):
		return nil, a.fire(TriggerBack)
	}
	return nil, nil
}
