package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/games/snake"
)

// KeyMap defines the game key bindings. Some keys mean different things
// per screen: S opens settings in the lobby and steers down while
// playing, Esc pauses a run and leaves every other screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Confirm     key.Binding
	Back        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Quit        key.Binding
	DensityDown key.Binding
	DensityUp   key.Binding
	Slower      key.Binding
	Faster      key.Binding
	Settings    key.Binding
	Mute        key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart/reseed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		DensityDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer walls"),
		),
		DensityUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more walls"),
		),
		Slower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "faster"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action for the given screen.
// It returns core.ActionNone for unbound keys.
func (k KeyMap) Action(screen snake.ScreenKind, msg tea.KeyMsg) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	// Screen-specific meanings first
	switch screen {
	case snake.ScreenLobby:
		if key.Matches(msg, k.Settings) {
			return core.ActionSettings
		}
	case snake.ScreenSettings:
		if key.Matches(msg, k.Mute) {
			return core.ActionMute
		}
	case snake.ScreenPlaying:
		if key.Matches(msg, k.Back) {
			return core.ActionPause
		}
	}

	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.DensityDown, core.ActionDensityDown},
		{k.DensityUp, core.ActionDensityUp},
		{k.Slower, core.ActionSlower},
		{k.Faster, core.ActionFaster},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(screen snake.ScreenKind, msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.Action(screen, msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}
