package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-fish/internal/audio"
	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/game"
	"github.com/vovakirdan/flappy-fish/internal/platform/tui"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Fish",
	Long: `Start a game session.

Controls:
  Space/Up/W/Click - Swim (starts a run from the title or game over screen)
  Enter            - Play
  P                - Pause / resume
  Esc              - Close an overlay, otherwise pause
  H/?              - How to play
  R                - Retry (after game over)
  S                - Copy your score to the clipboard (after game over)
  M                - Sound on / off
  Ctrl+S           - Save the current frame as text
  Q/Ctrl+C         - Quit

Examples:
  flappyfish play
  flappyfish play --mute
  flappyfish play --config ./my-fish.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logCloser := openLogger()
	if code := finish(playSession(logger), logger, logCloser, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// finish logs err, closes the log and returns the process exit code.
// It runs before os.Exit, which skips deferred calls.
func finish(err error, logger *log.Logger, logCloser io.Closer, stderr io.Writer) int {
	if err != nil {
		logger.Error("game exited with error", "error", err)
	}
	logCloser.Close()

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// playSession runs one game session and releases storage and audio on return.
func playSession(logger *log.Logger) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Runtime: rt,
		Config:  cfg,
		Logger:  logger,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Store = store
		if opts.Best, err = store.BestScore(game.ID); err != nil {
			logger.Warn("could not load best score", "error", err)
		}
	}

	player := audio.NewPlayer(cfg.Shell.Sound && !flagMute, cfg.Shell.Volume, logger)
	defer player.Close()
	opts.Sound = player

	logger.Info("starting", "width", width, "height", height, "best", opts.Best)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
