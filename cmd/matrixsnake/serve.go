package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeFPS    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Matrix Snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game starting in the lobby. Sessions
are silent and keep their settings in memory; finished runs go to the
shared scores database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.matrixsnake/host_key

Examples:
  matrixsnake serve                           # Listen on :23234
  matrixsnake serve --ssh :2222               # Listen on port 2222
  matrixsnake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeFPS, "fps", 30, "Tick rate of every session")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "matrixsnake-ssh")
	if err != nil {
		return err
	}

	game, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("using default config", "error", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagServeFPS,
		Game:        game,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Matrix Snake SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
