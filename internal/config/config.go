// Package config loads shade configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/shade/internal/theme"
)

// EnvPrefix prefixes environment overrides, e.g. SHADE_THEME_MODE.
const EnvPrefix = "SHADE"

// Config is the top-level configuration.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ThemeConfig selects the startup mode and an optional palette file.
type ThemeConfig struct {
	Mode        string `mapstructure:"mode"`
	PaletteFile string `mapstructure:"palette_file"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig points at the preferences database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Mode: theme.Light.String(),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Database: DatabaseConfig{
			Path: defaultDatabasePath(),
		},
	}
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "shade.db"
	}
	return filepath.Join(dir, "shade", "shade.db")
}

// Load reads configuration from path (optional) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "shade"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme.mode", cfg.Theme.Mode)
	v.SetDefault("theme.palette_file", cfg.Theme.PaletteFile)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("database.path", cfg.Database.Path)
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := theme.ParseMode(c.Theme.Mode); err != nil {
		return fmt.Errorf("theme.mode: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path is required")
	}
	return nil
}

// Mode returns the parsed startup mode.
func (c *Config) Mode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme.Mode)
	if err != nil {
		return theme.Light
	}
	return mode
}
