// Package tui runs Matrix Snake in a terminal with Bubble Tea. It maps
// keys to game actions, drives the simulation tick, turns game events into
// sounds and saved state, and serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the game by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. The App steps by a fixed dt, so
// late ticks slow the game down instead of making it skip.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
