package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/konsave-menu/internal/logging"
	"github.com/ruminaider/konsave-menu/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToLogDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	home := t.TempDir()
	logger, closeFn, err := logging.Setup(logging.Options{Home: home, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("stderr from tool", "stderr", "deprecated flag")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(paths.LogDir(home), logging.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stderr from tool")
	assert.Contains(t, string(data), "deprecated flag")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetup_VerboseForcesDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	file := filepath.Join(t.TempDir(), "custom.log")
	logger, closeFn, err := logging.Setup(logging.Options{File: file, Level: "error", Verbose: true})
	require.NoError(t, err)
	logger.Debug("running", "cmd", "konsave -l")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "konsave -l")
}

func TestSetup_RefusesSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "elsewhere.log")
	require.NoError(t, os.WriteFile(target, nil, 0600))
	link := filepath.Join(dir, "link.log")
	require.NoError(t, os.Symlink(target, link))

	_, _, err := logging.Setup(logging.Options{File: link})
	assert.ErrorIs(t, err, logging.ErrSymlink)
}

func TestSetup_Rotates(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	file := filepath.Join(t.TempDir(), "big.log")
	require.NoError(t, os.WriteFile(file, bytes.Repeat([]byte("x"), logging.MaxFileSize), 0600))

	_, closeFn, err := logging.Setup(logging.Options{File: file})
	require.NoError(t, err)
	require.NoError(t, closeFn())

	assert.FileExists(t, file+".1")
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("nonsense"))
}

func TestDiscard(t *testing.T) {
	var buf bytes.Buffer
	logging.New(&buf, slog.LevelInfo).Info("kept")
	logging.Discard().Error("dropped")
	assert.True(t, strings.Contains(buf.String(), "kept"))
}
