// internal/logging/logging.go

// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	mu      sync.Mutex
	logFile *os.File

	isTerminal = isatty.IsTerminal
)

// Init points the default slog logger at stderr (only when debug is set) and
// at logPath (when non-empty). With neither, log records are discarded. Debug
// also lowers the level to slog.LevelDebug.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()

	var writers []io.Writer
	if debug {
		writers = append(writers, os.Stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(newHandler(writers, level)))
	return nil
}

func newHandler(writers []io.Writer, level slog.Level) slog.Handler {
	if len(writers) == 0 {
		return discardHandler()
	}
	return tint.NewHandler(io.MultiWriter(writers...), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    logFile != nil || !isTerminal(os.Stderr.Fd()),
	})
}

func discardHandler() slog.Handler {
	return tint.NewHandler(io.Discard, &tint.Options{Level: slog.LevelError + 1, NoColor: true})
}

// Close detaches and closes the log file, if any, and silences the default
// logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	slog.SetDefault(slog.New(discardHandler()))
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// LogEvent logs a printf-style message at info level.
func LogEvent(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...))
}
