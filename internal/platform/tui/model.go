package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-snake/internal/audio"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/games/snake"
	"github.com/vovakirdan/matrix-snake/internal/save"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

// Session holds what a Model reports game events to. Scores may be nil.
type Session struct {
	Sounds        *audio.SoundBoard
	Prefs         PrefsStore
	Scores        ScoreRecorder
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.matrixsnake/screenshots
}

// Model is the Bubble Tea model running one Matrix Snake App.
type Model struct {
	app        *snake.App
	screen     *core.Screen
	session    Session
	keys       KeyMap
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a Bubble Tea model for app.
func NewModel(app *snake.App, session Session, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if session.Logger == nil {
		session.Logger = log.New(io.Discard)
	}

	w, h := cfg.ScreenW, cfg.ScreenH
	if w <= 0 || h <= 0 {
		w, h = app.MinSize()
	}
	return Model{
		app:        app,
		screen:     core.NewScreen(w, h),
		session:    session,
		keys:       DefaultKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.session.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.session.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.keys.MapKeyToFrame(m.app.Screen(), msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The run keeps going; the
// App pauses it while the window is below its minimum size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.app.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result, err := m.app.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.session.Logger.Error("step failed", "screen", m.app.Screen(), "error", err)
	}
	m.handleEvents(result.Events)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// handleEvents plays sounds and persists state. Failures are logged and
// never stop the game.
func (m Model) handleEvents(events []snake.Event) {
	logger := m.session.Logger
	for _, e := range events {
		switch e.Kind {
		case snake.EventAte:
			m.play(audio.SoundEat)

		case snake.EventDied:
			m.play(audio.SoundDie)

		case snake.EventRunStarted:
			logger.Info("run started", "seed", e.Run.Seed, "density", e.Run.Density, "interval", e.Run.MoveInterval)
			m.updatePrefs(func(d *save.Data) {
				d.LastSeed = e.Run.Seed
				d.LastWallDensity = e.Run.Density
				d.MoveIntervalMs = int(e.Run.MoveInterval / time.Millisecond)
			})

		case snake.EventVolumeChanged:
			if m.session.Sounds != nil {
				m.session.Sounds.SetMaster(e.Volume)
			}
			m.updatePrefs(func(d *save.Data) { d.SoundVolume = e.Volume })

		case snake.EventBestScore:
			logger.Info("new best score", "score", e.Score)
			m.updatePrefs(func(d *save.Data) { d.BestScore = max(d.BestScore, e.Score) })

		case snake.EventGameOver:
			logger.Info("run ended", "score", e.Score, "seed", e.Run.Seed)
			m.recordScore(e)
		}
	}
}

func (m Model) play(s audio.Sound) {
	if m.session.Sounds == nil {
		return
	}
	if err := m.session.Sounds.Play(s); err != nil {
		m.session.Logger.Warn("sound failed", "sound", s, "error", err)
	}
}

func (m Model) updatePrefs(fn func(*save.Data)) {
	if m.session.Prefs == nil {
		return
	}
	if _, err := m.session.Prefs.Update(fn); err != nil {
		m.session.Logger.Warn("could not save settings", "error", err)
	}
}

func (m Model) recordScore(e snake.Event) {
	if m.session.Scores == nil {
		return
	}
	entry, err := m.session.Scores.SaveScore(storage.ScoreEntry{
		Score:        e.Score,
		Seed:         e.Run.Seed,
		WallDensity:  e.Run.Density,
		MoveInterval: e.Run.MoveInterval,
	})
	if err != nil {
		m.session.Logger.Warn("could not record score", "error", err)
		return
	}
	m.session.Logger.Debug("score recorded", "run_id", entry.RunID)
}

// saveScreenshot saves the current screen as plain text and returns the
// file path.
func (m *Model) saveScreenshot() (string, error) {
	m.app.Render(m.screen)

	dir := m.session.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".matrixsnake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("matrixsnake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.app.Render(m.screen)
	return RenderScreen(m.screen)
}

// App returns the game the model runs.
func (m Model) App() *snake.App {
	return m.app
}

// Run starts the Bubble Tea program for app and blocks until the player
// quits.
func Run(app *snake.App, session Session, cfg core.RuntimeConfig) error {
	model := NewModel(app, session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
