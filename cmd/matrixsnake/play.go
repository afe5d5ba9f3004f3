package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-snake/internal/audio"
	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/games/snake"
	"github.com/vovakirdan/matrix-snake/internal/platform/tui"
	"github.com/vovakirdan/matrix-snake/internal/save"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

var (
	flagFPS      int
	flagSeed     uint64
	flagSavePath string
	flagMute     bool
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Matrix Snake",
	Long: `Start the game in the lobby.

Lobby:
  Up/Down    - Select item
  Left/Right - Adjust wall density or speed
  -/+        - Wall density
  [/]        - Speed
  R          - Reseed the map
  S          - Sound settings
  Enter      - Start / select

Playing:
  Arrows/WASD - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Examples:
  matrixsnake play
  matrixsnake play --seed 42
  matrixsnake play --mute --fps 30
  matrixsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command gets
// them too so that a bare `matrixsnake` plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Map seed (0 = last saved seed)")
	cmd.Flags().StringVar(&flagSavePath, "save", save.DefaultPath, "Path to the save file")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to the log file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "matrixsnake")
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("using default config", "error", err)
	}

	saveFile, err := save.NewFile(flagSavePath)
	if err != nil {
		return err
	}
	saveFile.Defaults = save.DefaultsFrom(cfg)
	data, err := saveFile.Load()
	if err != nil {
		logger.Warn("could not read save file, starting fresh", "path", saveFile.Path, "error", err)
	}
	if flagSeed != 0 {
		data.LastSeed = flagSeed
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     time.Now().UnixNano(),
	}

	app, err := snake.NewApp(cfg, tui.PrefsFrom(data), rt)
	if err != nil {
		return err
	}

	sounds := audio.NewSoundBoard(openPlayer(cfg.Audio, logger), cfg.Audio)
	sounds.SetMaster(app.Volume())
	defer func() {
		if err := sounds.Close(); err != nil {
			logger.Warn("could not close audio", "error", err)
		}
	}()

	session := tui.Session{
		Sounds: sounds,
		Prefs:  saveFile,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		session.Scores = store
		defer store.Close()
	}

	logger.Info("starting", "seed", app.Lobby().Seed(), "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(app, session, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openPlayer returns the speaker, or a silent player when sound is off
// or no device can be opened.
func openPlayer(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if flagMute {
		return &audio.Discard{}
	}
	sp := audio.NewSpeaker(cfg.SampleRate)
	if err := sp.Open(); err != nil {
		logger.Warn("no audio device, playing silently", "error", err)
		return &audio.Discard{}
	}
	return sp
}
