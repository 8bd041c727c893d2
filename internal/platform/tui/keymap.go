package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Bindings that do not apply to the current phase are disabled, which hides
// them from the help bar and stops them from matching.
type KeyMap struct {
	Primary    key.Binding
	Start      key.Binding
	Retry      key.Binding
	Pause      key.Binding
	Back       key.Binding
	Help       key.Binding
	Share      key.Binding
	Sound      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "swim"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "how to play"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Start, k.Retry, k.Share, k.Pause, k.Help, k.Sound, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Start, k.Retry, k.Pause},
		{k.Back, k.Help, k.Share, k.Sound},
		{k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone when no enabled binding matches.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Primary):
		return core.ActionPrimary
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Share):
		return core.ActionShare
	case key.Matches(msg, k.Sound):
		return core.ActionToggleSound
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to a game action.
// A left click anywhere acts as the primary input.
func (k KeyMap) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionPrimary
	}
	return core.ActionNone
}

// forPhase enables the bindings that apply to the given screen state.
func (k KeyMap) forPhase(st core.GameState, overlay Overlay) KeyMap {
	over := st.GameOver && overlay == OverlayNone
	k.Retry.SetEnabled(over)
	k.Share.SetEnabled(over)
	k.Pause.SetEnabled((st.Running || st.Paused) && overlay == OverlayNone)
	k.Start.SetEnabled(!st.Running && !st.Paused || overlay == OverlayInterstitial)
	k.Back.SetEnabled(overlay != OverlayNone || st.Running)
	return k
}
