// Package logging sets up the file logger. The terminal belongs to the game
// while it runs, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "flappyfish"

// ParseLevel parses a log level name (case-insensitive).
// "warning" is accepted as an alias of warn; unknown names fall back to info.
func ParseLevel(level string) log.Level {
	level = strings.TrimSpace(level)
	if strings.EqualFold(level, "warning") {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Path resolves the log file location.
// A custom path wins; ~ expands to the home directory. Otherwise the file
// lives in the XDG state directory.
func Path(customPath string) (string, error) {
	if customPath != "" {
		if strings.HasPrefix(customPath, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
			}
			customPath = filepath.Join(home, customPath[2:])
		}
		return customPath, nil
	}

	path, err := xdg.StateFile("flappyfish/flappyfish.log")
	if err != nil {
		return "", fmt.Errorf("logging: cannot resolve log path: %w", err)
	}
	return path, nil
}

// New creates a logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// Open creates a logger appending to the file at customPath, or the default
// location when it is empty. The returned closer releases the file.
func Open(customPath, level string) (*log.Logger, io.Closer, error) {
	path, err := Path(customPath)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, ParseLevel(level)), f, nil
}
