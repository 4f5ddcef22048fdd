package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/konsave-menu/internal/konsave"
	"github.com/ruminaider/konsave-menu/internal/paths"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// EnvPrefix is prepended to every environment override, e.g. KONSAVE_MENU_TOOL.
const EnvPrefix = "KONSAVE_MENU"

// Config represents ~/.config/konsave-menu/config.yaml.
type Config struct {
	Tool          string    `yaml:"tool" mapstructure:"tool"`
	ProfilesDir   string    `yaml:"profiles_dir,omitempty" mapstructure:"profiles_dir"`
	ArchiveExt    string    `yaml:"archive_ext" mapstructure:"archive_ext"`
	FileManager   string    `yaml:"file_manager" mapstructure:"file_manager"`
	SurfaceStderr bool      `yaml:"surface_stderr" mapstructure:"surface_stderr"`
	Log           LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file,omitempty" mapstructure:"file"`
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Tool:        konsave.DefaultBinary,
		ArchiveExt:  ".knsv",
		FileManager: "xdg-open",
		Log:         LogConfig{Level: "info"},
	}
}

// Parse parses config.yaml bytes into a Config.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load resolves the configuration for home. Values come from, in increasing
// precedence: defaults, the config file, KONSAVE_MENU_* environment variables,
// and any flags in fs that were set. A missing file is not an error; an
// explicit file (non-empty file argument) must exist. A relative explicit
// file is taken relative to home.
func Load(home, file string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("tool", def.Tool)
	v.SetDefault("profiles_dir", def.ProfilesDir)
	v.SetDefault("archive_ext", def.ArchiveExt)
	v.SetDefault("file_manager", def.FileManager)
	v.SetDefault("surface_stderr", def.SurfaceStderr)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		bind := map[string]string{
			"tool":         "tool",
			"profiles_dir": "profiles-dir",
		}
		for key, flag := range bind {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	explicit := file != ""
	if explicit {
		file = paths.Expand(home, file)
	} else {
		file = paths.ConfigFile(home)
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// ResolvedProfilesDir returns the profiles root, defaulting to the tool's own
// location under home.
func (c Config) ResolvedProfilesDir(home string) string {
	if c.ProfilesDir == "" {
		return paths.ProfilesDir(home)
	}
	return paths.Expand(home, c.ProfilesDir)
}

// Write saves cfg to path, creating the parent directory.
func Write(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// normalize replaces invalid values with defaults.
func (c *Config) normalize() {
	def := Default()
	if strings.TrimSpace(c.Tool) == "" {
		c.Tool = def.Tool
	}
	if c.ArchiveExt == "" {
		c.ArchiveExt = def.ArchiveExt
	} else if !strings.HasPrefix(c.ArchiveExt, ".") {
		c.ArchiveExt = "." + c.ArchiveExt
	}
	if strings.TrimSpace(c.FileManager) == "" {
		c.FileManager = def.FileManager
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	valid := false
	for _, l := range validLevels {
		if c.Log.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		c.Log.Level = def.Log.Level
	}
}
