package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Home returns the current user's home directory, or "" when it cannot be
// determined.
func Home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ToolConfigDir returns <home>/.config/konsave.
func ToolConfigDir(home string) string {
	return filepath.Join(home, ".config", "konsave")
}

// ProfilesDir returns <home>/.config/konsave/profiles.
func ProfilesDir(home string) string {
	return filepath.Join(ToolConfigDir(home), "profiles")
}

// AppDir returns <home>/.config/konsave-menu.
func AppDir(home string) string {
	return filepath.Join(home, ".config", "konsave-menu")
}

// ConfigFile returns <home>/.config/konsave-menu/config.yaml.
func ConfigFile(home string) string {
	return filepath.Join(AppDir(home), "config.yaml")
}

// LogDir returns <home>/.config/konsave-menu/logs.
func LogDir(home string) string {
	return filepath.Join(AppDir(home), "logs")
}

// ExpandTilde resolves a leading "~" or "~/" against home and leaves every
// other path untouched.
func ExpandTilde(home, p string) string {
	switch {
	case p == "~":
		return home
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(home, p[2:])
	}
	return p
}

// Expand resolves a leading "~" or "~/" against home. Relative paths are
// joined onto home, since that is where the external tool runs.
func Expand(home, p string) string {
	switch {
	case p == "~":
		return home
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(home, p[2:])
	case p == "" || filepath.IsAbs(p):
		return p
	default:
		return filepath.Join(home, p)
	}
}
