package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-fish/internal/audio"
	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/game"
	"github.com/vovakirdan/flappy-fish/internal/logging"
)

const (
	helpRows      = 1 // Rows below the play field reserved for the help bar
	toastDuration = 2 * time.Second
)

// BestRecorder persists the best score.
type BestRecorder interface {
	RecordBest(gameID string, score int) (best int, improved bool, err error)
}

// SoundPlayer plays the cue of a game event.
type SoundPlayer interface {
	Play(c audio.Cue)
	Toggle() bool
	Enabled() bool
}

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.FishConfig
	Best    int          // Best score loaded from storage
	Store   BestRecorder // nil disables persistence
	Sound   SoundPlayer  // nil disables sound
	Logger  *log.Logger
}

// Side-effect results.
type (
	bestSavedMsg struct {
		best     int
		improved bool
		err      error
	}
	sharedMsg struct {
		err error
	}
	screenshotMsg struct {
		path string
		err  error
	}
)

// Replaced in tests.
var (
	writeClipboard = clipboard.WriteAll
	screenshotPath = func(name string) (string, error) {
		return xdg.DataFile(filepath.Join("flappyfish", "screenshots", name))
	}
)

// ShareText is the message copied to the clipboard by the share action.
func ShareText(score int) string {
	return fmt.Sprintf("I scored %d in %s! Can you beat me?", score, game.Title)
}

// Model is the Bubble Tea model for a Flappy Fish session.
type Model struct {
	game     *game.Game
	cfg      config.FishConfig
	tickRate int
	store    BestRecorder
	sound    SoundPlayer
	logger   *log.Logger

	clock    *core.Clock
	viewport core.Viewport
	screen   *core.Screen
	input    core.InputFrame

	keys  KeyMap
	help  help.Model
	theme Theme

	overlay    Overlay
	retries    int // Retries requested this session, drives the interstitial
	ended      *game.EndedEvent
	toast      string
	toastUntil time.Time
	now        time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for a game session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Clock.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	theme := DefaultTheme()
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.HelpSep

	m := Model{
		game:     game.New(game.ParamsFromConfig(opts.Config), rt.Seed, opts.Best),
		cfg:      opts.Config,
		tickRate: rt.TickRate,
		store:    opts.Store,
		sound:    opts.Sound,
		logger:   logger,
		clock:    core.NewClock(opts.Config.Clock.MaxStep),
		viewport: core.NewViewport(0, 0, opts.Config.Viewport.UnitsPerColumn, opts.Config.Viewport.UnitsPerRow).WithMinHeight(opts.Config.Viewport.MinFieldHeight),
		screen:   core.NewScreen(0, 0),
		input:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     h,
		theme:    theme,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	m.keys = m.keys.forPhase(m.game.State(), m.overlay)

	logger.Debug("session created", "seed", rt.Seed, "best", opts.Best, "tick_rate", rt.TickRate)
	return m
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// Overlay returns the active overlay.
func (m Model) Overlay() Overlay {
	return m.overlay
}

// Toast returns the transient status message, if any.
func (m Model) Toast() string {
	return m.toast
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		return m, tea.Batch(m.handleEvents(m.game.Hide())...)

	case tea.FocusMsg:
		// Regaining focus never resumes a run
		m.logger.Debug("focus regained", "phase", m.game.Phase())
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case bestSavedMsg:
		if msg.err != nil {
			m.logger.Error("could not save best score", "error", msg.err)
		} else {
			m.logger.Debug("best score saved", "best", msg.best, "improved", msg.improved)
		}
		return m, nil

	case sharedMsg:
		if msg.err != nil {
			m.logger.Warn("share failed", "error", msg.err)
			return m, nil
		}
		m.showToast("Copied to clipboard!")
		return m, nil

	case screenshotMsg:
		if msg.err != nil {
			m.logger.Warn("screenshot failed", "error", msg.err)
			return m, nil
		}
		m.logger.Info("screenshot saved", "path", msg.path)
		m.showToast("Saved " + filepath.Base(msg.path))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
// Quit and screenshot act at once; everything else is applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		return m, screenshotCmd(m.frameText())
	case core.ActionNone:
	default:
		m.input.Set(a)
	}
	return m, nil
}

// resize maps the terminal size onto the play field.
func (m *Model) resize(cols, rows int) {
	fieldRows := max(rows-helpRows, 0)
	m.viewport = m.viewport.Resize(cols, fieldRows)
	m.screen.Resize(cols, fieldRows)

	w, h := m.viewport.FieldSize()
	m.game.Resize(w, h)
	m.help.Width = cols
}

// handleTick applies the collected input, then advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	dt := m.clock.Tick(now)

	cmds := m.applyInput()
	cmds = append(cmds, m.handleEvents(m.game.Advance(dt))...)

	if m.toast != "" && now.After(m.toastUntil) {
		m.toast = ""
	}
	m.keys = m.keys.forPhase(m.game.State(), m.overlay)

	cmds = append(cmds, tickCmd(m.tickRate))
	return m, tea.Batch(cmds...)
}

// applyInput turns the actions of this frame into game calls.
func (m *Model) applyInput() []tea.Cmd {
	in := m.input
	defer m.input.Clear()

	if in.Empty() {
		return nil
	}

	var cmds []tea.Cmd
	switch m.overlay {
	case OverlayInterstitial:
		if in.Has(core.ActionBack) || in.Has(core.ActionStart) || in.Has(core.ActionPrimary) {
			m.overlay = OverlayNone
			cmds = append(cmds, m.handleEvents(m.game.Start())...)
		}
		return cmds
	case OverlayHelp:
		if in.Has(core.ActionBack) || in.Has(core.ActionHelp) {
			m.overlay = OverlayNone
		}
		return nil
	}

	if in.Has(core.ActionToggleSound) && m.sound != nil {
		if m.sound.Toggle() {
			m.showToast("Sound on")
		} else {
			m.showToast("Sound off")
		}
	}

	if in.Has(core.ActionHelp) {
		cmds = append(cmds, m.handleEvents(m.game.SetPaused(true))...)
		m.overlay = OverlayHelp
		return cmds
	}

	if in.Has(core.ActionBack) {
		cmds = append(cmds, m.handleEvents(m.game.SetPaused(true))...)
	}
	if in.Has(core.ActionPause) {
		cmds = append(cmds, m.handleEvents(m.game.TogglePause())...)
	}

	if m.game.Phase() == game.PhaseGameOver {
		if in.Has(core.ActionShare) {
			cmds = append(cmds, shareCmd(m.game.State().Score))
		}
		if in.Has(core.ActionRetry) {
			m.retries++
			if every := m.cfg.Shell.InterstitialEvery; every > 0 && m.retries%every == 0 {
				m.overlay = OverlayInterstitial
				return cmds
			}
			cmds = append(cmds, m.handleEvents(m.game.Start())...)
		}
	}

	if in.Has(core.ActionStart) {
		cmds = append(cmds, m.handleEvents(m.game.Start())...)
	}
	if in.Has(core.ActionPrimary) {
		cmds = append(cmds, m.handleEvents(m.game.Primary())...)
	}

	return cmds
}

// handleEvents reacts to game events with sound, logging and persistence.
func (m *Model) handleEvents(events []game.Event) []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		switch ev := ev.(type) {
		case game.StartedEvent:
			m.ended = nil
			m.logger.Debug("run started")
		case game.FlappedEvent:
			m.play(audio.CueSwim)
		case game.ScoredEvent:
			m.play(audio.CueScore)
		case game.HitEvent:
			m.play(audio.CueHit)
			m.logger.Debug("hit", "cause", ev.Cause)
		case game.EndedEvent:
			m.ended = &ev
			m.logger.Info("run ended",
				"score", ev.FinalScore,
				"best", ev.BestScore,
				"new_best", ev.NewBest,
				"ticks", m.game.Ticks(),
			)
			if ev.NewBest && m.store != nil {
				cmds = append(cmds, saveBestCmd(m.store, ev.BestScore))
			}
		case game.PausedChangedEvent:
			m.logger.Debug("pause changed", "paused", ev.Paused, "reason", ev.Reason)
		}
	}
	return cmds
}

func (m *Model) play(c audio.Cue) {
	if m.sound != nil {
		m.sound.Play(c)
	}
}

func (m *Model) showToast(text string) {
	m.toast = text
	m.toastUntil = m.now.Add(toastDuration)
}

// renderFrame draws the game and its overlays into the screen buffer.
func (m Model) renderFrame() {
	m.game.Render(m.screen, m.viewport, m.clock.Elapsed().Seconds())
	drawOverlays(m.screen, hudState{
		state:   m.game.State(),
		phase:   m.game.Phase(),
		reason:  m.game.PauseReason(),
		ended:   m.ended,
		overlay: m.overlay,
		sound:   m.sound != nil && m.sound.Enabled(),
		toast:   m.toast,
	})
}

// frameText returns the current frame as plain text.
func (m Model) frameText() string {
	m.renderFrame()
	return m.screen.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen, m.theme) + "\n" + m.help.View(m.keys)
}

// saveBestCmd writes a new best score in the background.
func saveBestCmd(store BestRecorder, score int) tea.Cmd {
	return func() tea.Msg {
		best, improved, err := store.RecordBest(game.ID, score)
		return bestSavedMsg{best: best, improved: improved, err: err}
	}
}

// shareCmd copies the share message to the clipboard.
func shareCmd(score int) tea.Cmd {
	return func() tea.Msg {
		return sharedMsg{err: writeClipboard(ShareText(score))}
	}
}

// screenshotCmd saves a text frame under the XDG data directory.
func screenshotCmd(frame string) tea.Cmd {
	return func() tea.Msg {
		name := fmt.Sprintf("%s_%s.txt", game.ID, time.Now().Format("20060102_150405"))
		path, err := screenshotPath(name)
		if err != nil {
			return screenshotMsg{err: err}
		}
		if err := os.WriteFile(path, []byte(frame), 0o600); err != nil {
			return screenshotMsg{path: path, err: err}
		}
		return screenshotMsg{path: path}
	}
}

// Run starts the Bubble Tea program for a game session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to swim
		tea.WithReportFocus(),     // Pause when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
