package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/game"
)

// Overlay is a panel that takes over input on top of the game.
type Overlay int

const (
	OverlayNone         Overlay = iota // Game screen only
	OverlayHelp                        // How to play
	OverlayInterstitial                // Break shown before some retries
)

// panelLine is one line of text inside a panel.
type panelLine struct {
	text  string
	color core.Color
}

// hudState carries what the overlays need from the model.
type hudState struct {
	state   core.GameState
	phase   game.Phase
	reason  game.PauseReason
	ended   *game.EndedEvent
	overlay Overlay
	sound   bool
	toast   string
}

// drawOverlays paints the HUD and the active panel over the game.
func drawOverlays(dst *core.Screen, h hudState) {
	drawHUD(dst, h)

	switch h.overlay {
	case OverlayHelp:
		drawPanel(dst, helpLines())
	case OverlayInterstitial:
		drawPanel(dst, interstitialLines())
	default:
		if lines := phaseLines(h); lines != nil {
			drawPanel(dst, lines)
		}
	}

	if h.toast != "" {
		dst.DrawTextCentered(dst.Bounds(), dst.Height()-2, " "+h.toast+" ", core.ColorAccent)
	}
}

// drawHUD paints the score line at the top of the screen.
func drawHUD(dst *core.Screen, h hudState) {
	if h.phase == game.PhaseIdle {
		return
	}
	dst.DrawTextCentered(dst.Bounds(), 1, strconv.Itoa(h.state.Score), core.ColorText)

	best := fmt.Sprintf("Best %d", h.state.Best)
	dst.DrawText(dst.Width()-len(best)-2, 0, best, core.ColorMuted)

	if !h.sound {
		dst.DrawText(2, 0, "muted", core.ColorMuted)
	}
}

// phaseLines returns the panel for the current run state, if any.
func phaseLines(h hudState) []panelLine {
	switch h.phase {
	case game.PhaseIdle:
		return []panelLine{
			{game.Title, core.ColorAccent},
			{"", core.ColorText},
			{fmt.Sprintf("Best: %d", h.state.Best), core.ColorText},
			{"", core.ColorText},
			{"space / enter  play", core.ColorMuted},
			{"h  how to play", core.ColorMuted},
		}
	case game.PhasePaused:
		title := "Paused"
		if h.reason == game.PauseHidden {
			title = "Paused (focus lost)"
		}
		return []panelLine{
			{title, core.ColorAccent},
			{"", core.ColorText},
			{"p  resume", core.ColorMuted},
		}
	case game.PhaseGameOver:
		lines := []panelLine{
			{"Game Over", core.ColorCoral},
			{"", core.ColorText},
			{fmt.Sprintf("Score: %d", h.state.Score), core.ColorText},
			{fmt.Sprintf("Best: %d", h.state.Best), core.ColorText},
		}
		if h.ended != nil && h.ended.NewBest {
			lines = append(lines, panelLine{"New best!", core.ColorAccent})
		}
		return append(lines,
			panelLine{"", core.ColorText},
			panelLine{"r  retry   s  share", core.ColorMuted},
		)
	default:
		return nil
	}
}

func helpLines() []panelLine {
	return []panelLine{
		{"How to play", core.ColorAccent},
		{"", core.ColorText},
		{"Tap space or click to swim up.", core.ColorText},
		{"Slip through the gaps in the coral.", core.ColorText},
		{"Each pipe you pass scores a point.", core.ColorText},
		{"Touching coral, the surface or the", core.ColorText},
		{"bottom ends the run.", core.ColorText},
		{"", core.ColorText},
		{"p pause   m sound   esc close", core.ColorMuted},
	}
}

func interstitialLines() []panelLine {
	return []panelLine{
		{"Intermission", core.ColorAccent},
		{"", core.ColorText},
		{"Catch your breath, little fish.", core.ColorText},
		{"", core.ColorText},
		{"enter / esc  continue", core.ColorMuted},
	}
}

// drawPanel paints a bordered box with centered lines in the middle of dst.
func drawPanel(dst *core.Screen, lines []panelLine) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	w += 6
	h := len(lines) + 4

	r := dst.Bounds().Centered(min(w, dst.Width()), min(h, dst.Height()))
	dst.FillRect(r, core.Cell{Rune: ' ', Fg: core.ColorText, Bg: core.ColorPanel})
	dst.DrawBox(r, core.ColorMuted)

	for i, l := range lines {
		dst.DrawTextCentered(r, r.Y+2+i, l.text, l.color)
	}
}
