package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/konsave-menu/internal/config"
	"github.com/ruminaider/konsave-menu/internal/paths"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	path := paths.ConfigFile(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestParse(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		cfg, err := config.Parse([]byte(`tool: /opt/bin/konsave
profiles_dir: ~/profiles
archive_ext: knsv
file_manager: dolphin
surface_stderr: true
log:
  level: DEBUG
`))
		require.NoError(t, err)
		assert.Equal(t, "/opt/bin/konsave", cfg.Tool)
		assert.Equal(t, "~/profiles", cfg.ProfilesDir)
		assert.Equal(t, ".knsv", cfg.ArchiveExt)
		assert.Equal(t, "dolphin", cfg.FileManager)
		assert.True(t, cfg.SurfaceStderr)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("empty uses defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(``))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("bad level falls back", func(t *testing.T) {
		cfg, err := config.Parse([]byte("log:\n  level: loud\n"))
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.SurfaceStderr = true

	data, err := config.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "archive_ext: .knsv")

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoad(t *testing.T) {
	t.Run("missing default file", func(t *testing.T) {
		cfg, err := config.Load(t.TempDir(), "", nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})

	t.Run("relative explicit file resolves against home", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(home, "alt.yaml"), []byte("file_manager: nautilus\n"), 0644))

		cfg, err := config.Load(home, "alt.yaml", nil)
		require.NoError(t, err)
		assert.Equal(t, "nautilus", cfg.FileManager)

		cfg, err = config.Load(home, "~/alt.yaml", nil)
		require.NoError(t, err)
		assert.Equal(t, "nautilus", cfg.FileManager)
	})

	t.Run("file values", func(t *testing.T) {
		home := t.TempDir()
		writeConfig(t, home, "file_manager: dolphin\nlog:\n  level: warn\n")

		cfg, err := config.Load(home, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "dolphin", cfg.FileManager)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "konsave", cfg.Tool)
	})

	t.Run("env overrides file", func(t *testing.T) {
		home := t.TempDir()
		writeConfig(t, home, "file_manager: dolphin\n")
		t.Setenv("KONSAVE_MENU_FILE_MANAGER", "nautilus")
		t.Setenv("KONSAVE_MENU_LOG_LEVEL", "error")

		cfg, err := config.Load(home, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "nautilus", cfg.FileManager)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("flags override env", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("KONSAVE_MENU_TOOL", "/env/konsave")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("tool", "", "")
		fs.String("profiles-dir", "", "")
		require.NoError(t, fs.Parse([]string{"--tool", "/flag/konsave", "--profiles-dir", "/data/profiles"}))

		cfg, err := config.Load(home, "", fs)
		require.NoError(t, err)
		assert.Equal(t, "/flag/konsave", cfg.Tool)
		assert.Equal(t, "/data/profiles", cfg.ProfilesDir)
	})

	t.Run("unset flags keep lower layers", func(t *testing.T) {
		home := t.TempDir()
		writeConfig(t, home, "tool: /file/konsave\n")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("tool", "", "")
		require.NoError(t, fs.Parse(nil))

		cfg, err := config.Load(home, "", fs)
		require.NoError(t, err)
		assert.Equal(t, "/file/konsave", cfg.Tool)
	})
}

func TestResolvedProfilesDir(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, paths.ProfilesDir("/home/ana"), cfg.ResolvedProfilesDir("/home/ana"))

	cfg.ProfilesDir = "~/konsave"
	assert.Equal(t, "/home/ana/konsave", cfg.ResolvedProfilesDir("/home/ana"))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, config.Write(path, config.Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
