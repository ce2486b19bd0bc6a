package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
	// EventRetention is how many tab_events rows are kept.
	EventRetention int `mapstructure:"event_retention"`
}

// StorageConfig picks where preferences live.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	// FilePath is only used by the file backend. Empty means the user config dir.
	FilePath string `mapstructure:"file_path"`
}

type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultTab      string `mapstructure:"default_tab"`
	GridView        bool   `mapstructure:"grid_view"`
	KeybindingsPath string `mapstructure:"keybindings_path"`
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fitnesstrack")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "fitnesstrack")
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "fitnesstrack")
}

// Path is the config file location: FITNESSTRACK_CONFIG or the user config dir.
func Path() string {
	if p := os.Getenv("FITNESSTRACK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix FITNESSTRACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "fitnesstrack.db"))
	v.SetDefault("database.event_retention", 1000)
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.file_path", "")
	v.SetDefault("log.path", filepath.Join(dataDir(), "fitnesstrack.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("ui.default_tab", "overview")
	v.SetDefault("ui.grid_view", true)
	v.SetDefault("ui.keybindings_path", filepath.Join(configDir(), "keybindings.toml"))

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("FITNESSTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(Path()); statErr == nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want %s or %s)", c.Storage.Backend, BackendSQLite, BackendFile)
	}
	if c.Storage.Backend == BackendSQLite && strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path: required for the sqlite backend")
	}
	if c.Database.EventRetention < 0 {
		return fmt.Errorf("database.event_retention: must not be negative, got %d", c.Database.EventRetention)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.event_retention", cfg.Database.EventRetention)
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.file_path", cfg.Storage.FilePath)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.json", cfg.Log.JSON)
	v.Set("ui.default_tab", cfg.UI.DefaultTab)
	v.Set("ui.grid_view", cfg.UI.GridView)
	v.Set("ui.keybindings_path", cfg.UI.KeybindingsPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
