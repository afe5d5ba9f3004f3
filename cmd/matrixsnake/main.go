// matrixsnake is a Matrix-themed Snake game for the terminal.
//
// Usage:
//
//	matrixsnake [play]        - Play the game (default)
//	matrixsnake map           - Print a generated map
//	matrixsnake tone          - Write a sine tone WAV file
//	matrixsnake scores        - Show the score history
//	matrixsnake serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Game config YAML
//	--db <path>        - Scores database (default: ~/.matrixsnake/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matrixsnake",
	Short: "Matrix Snake - Snake in falling green code",
	Long: `Matrix Snake is a terminal Snake game on seeded, reproducible maps
with Matrix-style rain and synthesized sound effects.

Available commands:
  play     - Play the game (default when no command is given)
  map      - Print the map generated for a seed and density
  tone     - Write a sine tone WAV file
  scores   - View the score history
  serve    - Start SSH server for remote play

Examples:
  matrixsnake
  matrixsnake play --seed 42
  matrixsnake map --seed 42 --density 0.2
  matrixsnake tone --freq 880 --duration 0.1 -o beep.wav
  matrixsnake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.matrixsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(toneCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
