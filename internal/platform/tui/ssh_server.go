package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/matrix-snake/internal/audio"
	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/games/snake"
	"github.com/vovakirdan/matrix-snake/internal/save"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.matrixsnake/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database. Empty disables score
	// recording.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Game is the game configuration shared by all sessions.
	Game config.SnakeConfig

	// Logger receives server and session logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.matrixsnake/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultSnakeConfig(),
	}
}

// SSHServer wraps a Wish SSH server that gives every session its own
// game. Sessions are silent and share the score database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "matrixsnake-ssh",
		})
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			store = nil
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".matrixsnake", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}

// NewSessionModel builds the game model for one remote player.
func (s *SSHServer) NewSessionModel(user string, width, height int) (Model, error) {
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	prefs := save.DefaultsFrom(s.config.Game)
	app, err := snake.NewApp(s.config.Game, PrefsFrom(prefs), rt)
	if err != nil {
		return Model{}, fmt.Errorf("new game for %s: %w", user, err)
	}

	session := Session{
		Sounds: audio.NewSoundBoard(&audio.Discard{}, s.config.Game.Audio),
		Prefs:  NewMemoryPrefs(prefs),
		Logger: s.logger.With("user", user),
	}
	if s.store != nil {
		session.Scores = s.store
	}
	return NewModel(app, session, rt), nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model, err := s.NewSessionModel(sshSession.User(), pty.Window.Width, pty.Window.Height)
	if err != nil {
		s.logger.Error("could not start session", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("ssh server: %w", err)
	case <-done:
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
