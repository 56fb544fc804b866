package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Catalog   CatalogConfig
	Animation AnimationConfig
	Log       LogConfig
	UI        UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// CatalogConfig points at an optional content bundle imported on startup.
type CatalogConfig struct {
	File string
}

// AnimationConfig holds reveal/hide timings. Enabled=false makes every
// transition instantaneous.
type AnimationConfig struct {
	Enabled  bool
	Expand   time.Duration
	Collapse time.Duration
	Frame    time.Duration
	Stagger  time.Duration
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Level string
	Path  string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// Path returns the config file location, honouring SHOWCASE_CONFIG.
func Path() string {
	if p := os.Getenv("SHOWCASE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "showcase", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SHOWCASE_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("SHOWCASE_CONFIG"))
}

// LoadFile is Load with an explicit config file; an empty path searches the
// default config directory.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "showcase", "showcase.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("catalog.file", "")
	v.SetDefault("animation.enabled", true)
	v.SetDefault("animation.expand", "300ms")
	v.SetDefault("animation.collapse", "300ms")
	v.SetDefault("animation.frame", "16ms")
	v.SetDefault("animation.stagger", "60ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "showcase"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present; a file that exists must parse
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot run with.
func (c Config) Validate() error {
	a := c.Animation
	for name, d := range map[string]time.Duration{
		"animation.expand":   a.Expand,
		"animation.collapse": a.Collapse,
		"animation.frame":    a.Frame,
		"animation.stagger":  a.Stagger,
	} {
		if d < 0 {
			return fmt.Errorf("config: %s must not be negative, got %s", name, d)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log.level %q", c.Log.Level)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes cfg to path as TOML.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("catalog.file", cfg.Catalog.File)
	v.Set("animation.enabled", cfg.Animation.Enabled)
	v.Set("animation.expand", cfg.Animation.Expand.String())
	v.Set("animation.collapse", cfg.Animation.Collapse.String())
	v.Set("animation.frame", cfg.Animation.Frame.String())
	v.Set("animation.stagger", cfg.Animation.Stagger.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
