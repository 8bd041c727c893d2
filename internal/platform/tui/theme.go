package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// cellColors is the color pair of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// Theme maps palette indices to terminal colors and caches the resulting
// styles.
type Theme struct {
	Palette map[core.Color]lipgloss.Color

	// Help bar styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style

	styles map[cellColors]lipgloss.Style
}

// DefaultTheme returns the underwater theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Color{
			core.ColorWaterTop:   lipgloss.Color("#07324b"),
			core.ColorWaterMid:   lipgloss.Color("#062b40"),
			core.ColorWaterDeep:  lipgloss.Color("#041c2a"),
			core.ColorBubble:     lipgloss.Color("#93c5fd"), // Pale blue
			core.ColorCoral:      lipgloss.Color("#ea580c"), // Orange coral
			core.ColorCoralShade: lipgloss.Color("#9a3412"),
			core.ColorFish:       lipgloss.Color("#22d3ee"), // Cyan
			core.ColorFishTail:   lipgloss.Color("#0ea5e9"),
			core.ColorSeabed:     lipgloss.Color("#a16207"), // Sand
			core.ColorPanel:      lipgloss.Color("#0f172a"),
			core.ColorText:       lipgloss.Color("#e2e8f0"),
			core.ColorAccent:     lipgloss.Color("#fbbf24"),
			core.ColorMuted:      lipgloss.Color("#94a3b8"),
		},

		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		HelpSep:  lipgloss.NewStyle().Foreground(lipgloss.Color("#334155")),

		styles: make(map[cellColors]lipgloss.Style),
	}
}

// style returns the lipgloss style for a color pair.
// ColorDefault leaves the terminal color untouched.
func (t Theme) style(fg, bg core.Color) lipgloss.Style {
	key := cellColors{fg: fg, bg: bg}
	if s, ok := t.styles[key]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if c, ok := t.Palette[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := t.Palette[bg]; ok {
		s = s.Background(c)
	}

	if t.styles != nil {
		t.styles[key] = s
	}
	return s
}
