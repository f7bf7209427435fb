// Package config resolves hillcipher settings from defaults, an optional TOML
// file and HILLCIPHER_* environment variables, in that order. Command-line
// flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hillcipher/hill"
)

// EnvConfigPath names the environment variable consulted for the config file
// path when --config is not given.
const EnvConfigPath = "HILLCIPHER_CONFIG"

// ErrInvalid is returned when a resolved setting is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved settings.
//
// Env fields carry no envDefault: an unset variable leaves the value from the
// file (or Default) untouched.
type Config struct {
	LogLevel     string `toml:"log_level" env:"HILLCIPHER_LOG_LEVEL"`
	NoColor      bool   `toml:"no_color" env:"HILLCIPHER_NO_COLOR"`
	MaxKeyLength int    `toml:"max_key_length" env:"HILLCIPHER_MAX_KEY_LENGTH"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:     "info",
		MaxKeyLength: hill.DefaultMaxKeyLength,
	}
}

// Load resolves a Config. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("read config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}
	return nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.MaxKeyLength < 0 {
		return fmt.Errorf("max_key_length %d: %w", c.MaxKeyLength, ErrInvalid)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CipherOptions maps the settings onto hill options.
func (c Config) CipherOptions() []hill.Option {
	return []hill.Option{hill.WithMaxKeyLength(c.MaxKeyLength)}
}
