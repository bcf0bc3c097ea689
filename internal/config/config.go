package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Extensions contains feature toggles for optional viewer extensions.
type Extensions struct {
	PlantUML bool `toml:"plantuml"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for glance.
type Config struct {
	NoTruncate bool       `toml:"no_truncate"`
	Extensions Extensions `toml:"extensions"`
	Logging    Logging    `toml:"logging"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file at path, or the default location when
// path is empty. An absent or unreadable or unparseable file yields the
// default configuration together with a non-nil error the caller may log;
// the returned Config is always usable.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolved := path
	if resolved == "" {
		var err error
		resolved, err = DefaultConfigPath()
		if err != nil {
			return &cfg, "", fmt.Errorf("resolve config path: %w", err)
		}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.normalize()
			return &cfg, resolved, nil
		}
		cfg.normalize()
		return &cfg, resolved, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		defaults := Default()
		defaults.normalize()
		return &defaults, resolved, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, resolved, nil
}

func (c *Config) normalize() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}
