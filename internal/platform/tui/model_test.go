package tui

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-fish/internal/audio"
	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/game"
)

type fakeSound struct {
	played  []audio.Cue
	enabled bool
}

func (f *fakeSound) Play(c audio.Cue) { f.played = append(f.played, c) }

func (f *fakeSound) Toggle() bool {
	f.enabled = !f.enabled
	return f.enabled
}

func (f *fakeSound) Enabled() bool { return f.enabled }

type fakeStore struct {
	saved []int
	err   error
}

func (f *fakeStore) RecordBest(gameID string, score int) (int, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	f.saved = append(f.saved, score)
	return score, true, nil
}

// harness drives a model with synthetic ticks.
type harness struct {
	t     *testing.T
	m     Model
	now   time.Time
	sound *fakeSound
	store *fakeStore
}

func newHarness(t *testing.T, every int) *harness {
	t.Helper()
	cfg := config.DefaultFishConfig()
	cfg.Shell.InterstitialEvery = every

	sound := &fakeSound{enabled: true}
	store := &fakeStore{}
	m := NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7},
		Config:  cfg,
		Store:   store,
		Sound:   sound,
	})
	return &harness{t: t, m: m, now: time.Unix(1000, 0), sound: sound, store: store}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(msg tea.KeyMsg) {
	h.send(msg)
}

func (h *harness) tick() {
	h.now = h.now.Add(16 * time.Millisecond)
	h.send(TickMsg(h.now))
}

func (h *harness) press(msg tea.KeyMsg) {
	h.key(msg)
	h.tick()
}

func (h *harness) runUntilOver() {
	h.t.Helper()
	for i := 0; i < 2000; i++ {
		if h.m.Game().Phase() == game.PhaseGameOver {
			return
		}
		h.tick()
	}
	h.t.Fatal("Game never ended")
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelStartAndFlap(t *testing.T) {
	h := newHarness(t, 0)

	if h.m.Game().Phase() != game.PhaseIdle {
		t.Fatalf("Expected idle, got %v", h.m.Game().Phase())
	}

	h.press(keySpace)
	if h.m.Game().Phase() != game.PhaseRunning {
		t.Fatalf("Space should start the run, got %v", h.m.Game().Phase())
	}
	if len(h.sound.played) != 0 {
		t.Errorf("Starting should not play a cue, got %v", h.sound.played)
	}

	h.press(keySpace)
	if len(h.sound.played) != 1 || h.sound.played[0] != audio.CueSwim {
		t.Errorf("Expected swim cue, got %v", h.sound.played)
	}
	if h.m.Game().World().Fish.VY >= 0 {
		t.Error("Fish should be rising after a flap")
	}
}

func TestModelInputAppliedOnTick(t *testing.T) {
	h := newHarness(t, 0)

	h.key(keyEnter)
	if h.m.Game().Phase() != game.PhaseIdle {
		t.Fatal("Input must wait for the next tick")
	}
	h.tick()
	if h.m.Game().Phase() != game.PhaseRunning {
		t.Fatalf("Enter should start the run, got %v", h.m.Game().Phase())
	}
}

func TestModelMouseClick(t *testing.T) {
	h := newHarness(t, 0)

	h.send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.tick()
	if h.m.Game().Phase() != game.PhaseRunning {
		t.Errorf("Click should start the run, got %v", h.m.Game().Phase())
	}
}

func TestModelBlurPauses(t *testing.T) {
	h := newHarness(t, 0)
	h.press(keySpace)

	h.send(tea.BlurMsg{})
	if h.m.Game().Phase() != game.PhasePaused {
		t.Fatalf("Blur should pause, got %v", h.m.Game().Phase())
	}

	h.send(tea.FocusMsg{})
	h.tick()
	if h.m.Game().Phase() != game.PhasePaused {
		t.Fatal("Focus must not resume the run")
	}

	h.press(runeKey('p'))
	if h.m.Game().Phase() != game.PhaseRunning {
		t.Errorf("p should resume, got %v", h.m.Game().Phase())
	}
}

func TestModelEscPauses(t *testing.T) {
	h := newHarness(t, 0)
	h.press(keySpace)

	h.press(keyEsc)
	if h.m.Game().Phase() != game.PhasePaused {
		t.Fatalf("Esc should pause, got %v", h.m.Game().Phase())
	}

	// Space while paused neither flaps nor resumes
	h.press(keySpace)
	if h.m.Game().Phase() != game.PhasePaused {
		t.Errorf("Space must not resume, got %v", h.m.Game().Phase())
	}
}

func TestModelHelpOverlay(t *testing.T) {
	h := newHarness(t, 0)
	h.press(keySpace)

	h.press(runeKey('h'))
	if h.m.Overlay() != OverlayHelp {
		t.Fatalf("Expected help overlay, got %v", h.m.Overlay())
	}
	if h.m.Game().Phase() != game.PhasePaused {
		t.Errorf("Help should pause a running game, got %v", h.m.Game().Phase())
	}

	// Other keys are swallowed while the overlay is open
	h.press(runeKey('p'))
	if h.m.Game().Phase() != game.PhasePaused {
		t.Error("Overlay should block the pause key")
	}

	h.press(keyEsc)
	if h.m.Overlay() != OverlayNone {
		t.Errorf("Esc should close the overlay, got %v", h.m.Overlay())
	}
	if h.m.Game().Phase() != game.PhasePaused {
		t.Error("Closing help must not resume")
	}
}

func TestModelGameOverAndRetry(t *testing.T) {
	h := newHarness(t, 3)
	h.press(keySpace)
	h.runUntilOver()

	if got := h.sound.played[len(h.sound.played)-1]; got != audio.CueHit {
		t.Errorf("Expected hit cue last, got %v", got)
	}

	for i := 1; i <= 2; i++ {
		h.press(runeKey('r'))
		if h.m.Game().Phase() != game.PhaseRunning {
			t.Fatalf("Retry %d should start a run, got %v", i, h.m.Game().Phase())
		}
		h.runUntilOver()
	}

	// Third retry shows the interstitial and defers the run
	h.press(runeKey('r'))
	if h.m.Overlay() != OverlayInterstitial {
		t.Fatalf("Expected interstitial, got %v", h.m.Overlay())
	}
	if h.m.Game().Phase() != game.PhaseGameOver {
		t.Fatalf("Run must not start behind the interstitial, got %v", h.m.Game().Phase())
	}

	h.press(keyEnter)
	if h.m.Overlay() != OverlayNone || h.m.Game().Phase() != game.PhaseRunning {
		t.Errorf("Dismissing should start the run: overlay=%v phase=%v", h.m.Overlay(), h.m.Game().Phase())
	}
}

func TestModelSpaceRestartSkipsInterstitial(t *testing.T) {
	h := newHarness(t, 1)
	h.press(keySpace)
	h.runUntilOver()

	h.press(keySpace)
	if h.m.Overlay() != OverlayNone || h.m.Game().Phase() != game.PhaseRunning {
		t.Errorf("Space should restart directly: overlay=%v phase=%v", h.m.Overlay(), h.m.Game().Phase())
	}
}

func TestModelRetryIgnoredWhileRunning(t *testing.T) {
	h := newHarness(t, 1)
	h.press(keySpace)

	h.press(runeKey('r'))
	if h.m.Overlay() != OverlayNone {
		t.Error("Retry should only work after game over")
	}
}

func TestModelShare(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { writeClipboard = orig }()

	h := newHarness(t, 0)
	h.press(keySpace)
	h.runUntilOver()

	h.m.input.Set(core.ActionShare)
	cmds := h.m.applyInput()
	if len(cmds) != 1 {
		t.Fatalf("Expected one share command, got %d", len(cmds))
	}

	msg := cmds[0]()
	if copied != "I scored 0 in Flappy Fish! Can you beat me?" {
		t.Errorf("Unexpected share text %q", copied)
	}

	h.send(msg)
	if h.m.Toast() != "Copied to clipboard!" {
		t.Errorf("Expected toast, got %q", h.m.Toast())
	}
}

func TestModelShareFailureIsSilent(t *testing.T) {
	h := newHarness(t, 0)
	h.send(sharedMsg{err: errors.New("no clipboard")})
	if h.m.Toast() != "" {
		t.Errorf("Failed share should not show a toast, got %q", h.m.Toast())
	}
}

func TestModelToastExpires(t *testing.T) {
	h := newHarness(t, 0)
	h.tick()

	h.press(runeKey('m'))
	if h.sound.enabled {
		t.Fatal("m should toggle sound off")
	}
	if h.m.Toast() != "Sound off" {
		t.Fatalf("Expected toast, got %q", h.m.Toast())
	}

	for i := 0; i < 200; i++ {
		h.tick()
	}
	if h.m.Toast() != "" {
		t.Errorf("Toast should expire, got %q", h.m.Toast())
	}
}

func TestHandleEventsPersistsNewBest(t *testing.T) {
	h := newHarness(t, 0)

	cmds := h.m.handleEvents([]game.Event{
		game.HitEvent{Cause: game.CollisionObstacle},
		game.EndedEvent{FinalScore: 4, BestScore: 4, NewBest: true},
	})
	if len(cmds) != 1 {
		t.Fatalf("Expected one save command, got %d", len(cmds))
	}

	msg := cmds[0]()
	if len(h.store.saved) != 1 || h.store.saved[0] != 4 {
		t.Errorf("Expected best 4 to be saved, got %v", h.store.saved)
	}
	if saved, ok := msg.(bestSavedMsg); !ok || saved.best != 4 || !saved.improved {
		t.Errorf("Unexpected result message %#v", msg)
	}

	// Not a new best: nothing to save
	cmds = h.m.handleEvents([]game.Event{game.EndedEvent{FinalScore: 1, BestScore: 4}})
	if len(cmds) != 0 {
		t.Errorf("Expected no save command, got %d", len(cmds))
	}
}

func TestModelSaveErrorDoesNotStopGame(t *testing.T) {
	h := newHarness(t, 0)
	h.store.err = errors.New("disk full")

	cmd := saveBestCmd(h.store, 3)
	h.send(cmd())
	h.press(keySpace)
	if h.m.Game().Phase() != game.PhaseRunning {
		t.Error("Game should keep running after a failed save")
	}
}

func TestModelResize(t *testing.T) {
	h := newHarness(t, 0)

	h.send(tea.WindowSizeMsg{Width: 100, Height: 41})

	w := h.m.Game().World()
	if w.Field.W != 800 || w.Field.H != 640 {
		t.Errorf("Expected field 800x640, got %vx%v", w.Field.W, w.Field.H)
	}
	if h.m.screen.Width() != 100 || h.m.screen.Height() != 40 {
		t.Errorf("Expected 100x40 screen, got %dx%d", h.m.screen.Width(), h.m.screen.Height())
	}
}

func TestModelShortTerminalKeepsFieldHeight(t *testing.T) {
	h := newHarness(t, 0)

	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})

	w := h.m.Game().World()
	if math.Abs(w.Field.H-600) > 1e-9 {
		t.Errorf("Expected field height 600 on a 24-row terminal, got %v", w.Field.H)
	}
	if h.m.screen.Height() != 23 {
		t.Errorf("Expected 23 play rows, got %d", h.m.screen.Height())
	}
	lo, hi := game.GapBounds(w.Field.H, h.m.Game().Params())
	if rows := (hi - lo) / h.m.viewport.UnitsPerRow; rows < 4 {
		t.Errorf("Expected the gap range to span several rows, got %.1f", rows)
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t, 0)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if h.m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	h := newHarness(t, 0)
	h.tick()

	view := h.m.View()
	if !strings.Contains(view, game.Title) {
		t.Error("Start panel should show the title")
	}
	if !strings.Contains(view, "swim") {
		t.Error("Help bar should list the swim key")
	}
}

func TestScreenshotCmd(t *testing.T) {
	dir := t.TempDir()
	orig := screenshotPath
	screenshotPath = func(name string) (string, error) {
		return filepath.Join(dir, name), nil
	}
	defer func() { screenshotPath = orig }()

	h := newHarness(t, 0)
	h.tick()

	cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("Expected screenshot command")
	}
	msg, ok := cmd().(screenshotMsg)
	if !ok || msg.err != nil {
		t.Fatalf("Screenshot failed: %#v", msg)
	}

	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), game.Title) {
		t.Error("Screenshot should contain the current frame")
	}

	h.send(msg)
	if !strings.HasPrefix(h.m.Toast(), "Saved ") {
		t.Errorf("Expected saved toast, got %q", h.m.Toast())
	}
}
