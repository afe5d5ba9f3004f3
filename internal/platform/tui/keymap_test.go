package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/games/snake"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name   string
		screen snake.ScreenKind
		msg    tea.KeyMsg
		want   core.Action
	}{
		{"s opens settings in lobby", snake.ScreenLobby, runes("s"), core.ActionSettings},
		{"s steers down while playing", snake.ScreenPlaying, runes("s"), core.ActionDown},
		{"w moves up", snake.ScreenLobby, runes("w"), core.ActionUp},
		{"arrow up", snake.ScreenPlaying, tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow left", snake.ScreenSettings, tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d moves right", snake.ScreenPlaying, runes("d"), core.ActionRight},
		{"esc pauses a run", snake.ScreenPlaying, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"esc leaves settings", snake.ScreenSettings, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"esc leaves game over", snake.ScreenGameOver, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"m mutes in settings", snake.ScreenSettings, runes("m"), core.ActionMute},
		{"m is unbound in lobby", snake.ScreenLobby, runes("m"), core.ActionNone},
		{"q quits", snake.ScreenGameOver, runes("q"), core.ActionQuit},
		{"ctrl+c quits", snake.ScreenPlaying, tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"plus adds walls", snake.ScreenLobby, runes("+"), core.ActionDensityUp},
		{"equals adds walls", snake.ScreenLobby, runes("="), core.ActionDensityUp},
		{"minus removes walls", snake.ScreenLobby, runes("-"), core.ActionDensityDown},
		{"bracket slows down", snake.ScreenLobby, runes("["), core.ActionSlower},
		{"bracket speeds up", snake.ScreenLobby, runes("]"), core.ActionFaster},
		{"enter confirms", snake.ScreenLobby, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space confirms", snake.ScreenLobby, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"r restarts", snake.ScreenGameOver, runes("r"), core.ActionRestart},
		{"p pauses", snake.ScreenPlaying, runes("p"), core.ActionPause},
		{"unbound key", snake.ScreenPlaying, runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.screen, tc.msg); got != tc.want {
				t.Errorf("Action(%v, %q) = %v, expected %v", tc.screen, tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(snake.ScreenPlaying, runes("a"), &frame) {
		t.Error("a should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("expected ActionLeft in frame")
	}

	frame.Clear()
	if keys.MapKeyToFrame(snake.ScreenPlaying, runes("x"), &frame) || !frame.Empty() {
		t.Error("unbound key should leave the frame empty")
	}

	if !keys.MapKeyToFrame(snake.ScreenLobby, runes("q"), &frame) {
		t.Error("q should report quit")
	}
}
