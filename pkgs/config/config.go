// Package config loads the TOML configuration for the advent command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aledsdavies/advent/pkgs/errors"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete configuration
type Config struct {
	InputDir    string `toml:"input_dir"`
	AnswersFile string `toml:"answers_file"`
	Color       string `toml:"color"`
	LogLevel    string `toml:"log_level"`

	// Path is where the config was loaded from, empty for defaults
	Path string `toml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = "inputs"
	}
	if c.AnswersFile == "" {
		c.AnswersFile = filepath.Join(c.InputDir, "answers.cbor")
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// applyEnv lets the environment override file settings
func (c *Config) applyEnv() {
	if dir := os.Getenv("ADVENT_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Color = ColorNever
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Load reads the config file at path
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.NewConfigError(path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.NewConfigError(path, fmt.Errorf("unknown key %q", undecoded[0].String()))
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.NewConfigError(path, err)
	}
	cfg.Path = path
	return &cfg, nil
}

// LoadDefault finds a config through ADVENT_CONFIG or the default locations,
// falling back to built-in defaults when none exists
func LoadDefault() (*Config, error) {
	if path := os.Getenv("ADVENT_CONFIG"); path != "" {
		return Load(path)
	}

	candidates := []string{"./advent.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "advent", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// InputPath returns <input_dir>/<n>.txt for a puzzle name such as "day3"
func (c *Config) InputPath(name string) string {
	day := strings.TrimPrefix(puzzle.Canonical(name), "day")
	return filepath.Join(c.InputDir, day+".txt")
}
