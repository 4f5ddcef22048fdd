// Package logging sets up the diagnostic log. The interactive UI owns the
// terminal, so diagnostics go to a file rather than stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/konsave-menu/internal/paths"
)

// FileName is the log file created under the log directory.
const FileName = "konsave-menu.log"

// MaxFileSize is the size past which the log is rotated to FileName+".1".
const MaxFileSize = 1 << 20

// ErrSymlink is returned when the log directory or file is a symbolic link.
var ErrSymlink = errors.New("log path is a symlink")

// Options controls Setup.
type Options struct {
	Home    string
	File    string // overrides <home>/.config/konsave-menu/logs/konsave-menu.log
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug
}

// Setup opens the log file, installs a text handler as the slog default and
// returns the logger with a close function.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	path := opts.File
	if path == "" {
		path = filepath.Join(paths.LogDir(opts.Home), FileName)
	} else {
		path = paths.Expand(opts.Home, path)
	}

	dir := filepath.Dir(path)
	if isSymlink(dir) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSymlink, dir)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	if isSymlink(path) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSymlink, path)
	}

	rotateIfNeeded(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := New(f, level)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}

// ParseLevel maps a config level name to a slog level; unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// rotateIfNeeded keeps one backup; older content is dropped.
func rotateIfNeeded(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() < MaxFileSize {
		return
	}
	os.Rename(path, path+".1")
}
