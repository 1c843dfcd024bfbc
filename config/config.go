// Package config loads game settings from YAML, .env and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/puzzle"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Puzzle  PuzzleConfig  `yaml:"puzzle"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig describes the host window. Width and Height are world units,
// the terminal grid is mapped onto them.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
	TickRate   int    `yaml:"tick_rate"`
	Color      string `yaml:"color"` // auto, truecolor, 256
}

// PuzzleConfig holds board geometry and target sampling.
type PuzzleConfig struct {
	Seed        int64   `yaml:"seed"` // 0 picks a time-based seed
	Sampling    string  `yaml:"sampling"`
	AnswerSlots bool    `yaml:"answer_slots"`
	TrayX       float64 `yaml:"tray_x"`
	RowHeight   float64 `yaml:"row_height"`
	TokenRadius float64 `yaml:"token_radius"`
	Radius      float64 `yaml:"region_radius"`
	Margin      float64 `yaml:"margin"`
	SlotWidth   float64 `yaml:"slot_width"`
	SlotHeight  float64 `yaml:"slot_height"`
}

// AudioConfig toggles feedback sounds.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig configures the debug log file.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      constant.WindowTitle,
			Width:      constant.WindowWidth,
			Height:     constant.WindowHeight,
			Resizable:  constant.WindowResizable,
			Fullscreen: constant.WindowFullscreen,
			TickRate:   constant.TicksPerSecond,
			Color:      "auto",
		},
		Puzzle: PuzzleConfig{
			Sampling:    puzzle.SampleUniform.String(),
			AnswerSlots: true,
			TrayX:       constant.TrayX,
			RowHeight:   constant.TrayRowHeight,
			TokenRadius: constant.TokenRadius,
			Radius:      constant.RegionRadius,
			Margin:      constant.LayoutMargin,
			SlotWidth:   constant.SlotWidth,
			SlotHeight:  constant.SlotHeight,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "logs",
		},
	}
}

// Load reads configuration from a YAML file, then applies .env and
// environment overrides. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// .env is optional; existing environment wins over it
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("VENN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: VENN_SEED: %v", ErrInvalid, err)
		}
		c.Puzzle.Seed = seed
	}
	if v := os.Getenv("VENN_SAMPLING"); v != "" {
		c.Puzzle.Sampling = strings.ToLower(v)
	}
	if v := os.Getenv("VENN_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("VENN_AUDIO"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: VENN_AUDIO: %v", ErrInvalid, err)
		}
		c.Audio.Enabled = enabled
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TickRate < 1 || c.Window.TickRate > constant.MaxTicksPerSecond {
		return fmt.Errorf("%w: tick_rate %d outside 1..%d", ErrInvalid, c.Window.TickRate, constant.MaxTicksPerSecond)
	}
	switch c.Window.Color {
	case "", "auto", "truecolor", "256":
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalid, c.Window.Color)
	}

	p := c.Puzzle
	sizes := []struct {
		name  string
		value float64
	}{
		{"row_height", p.RowHeight},
		{"token_radius", p.TokenRadius},
		{"region_radius", p.Radius},
		{"slot_width", p.SlotWidth},
		{"slot_height", p.SlotHeight},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, s.name, s.value)
		}
	}
	if p.Margin < 0 || p.TrayX < 0 {
		return fmt.Errorf("%w: margin and tray_x must not be negative", ErrInvalid)
	}
	if _, err := puzzle.ParseSampling(p.Sampling); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// PuzzleOptions converts the puzzle section into generator options.
// Call Validate first; an unknown sampling mode falls back to uniform.
func (c *Config) PuzzleOptions() puzzle.Options {
	p := c.Puzzle
	sampling, _ := puzzle.ParseSampling(p.Sampling)
	return puzzle.Options{
		Layout: puzzle.Layout{
			World:        vmath.V2(float64(c.Window.Width), float64(c.Window.Height)),
			Margin:       p.Margin,
			RegionRadius: p.Radius,
			TrayX:        p.TrayX,
			RowHeight:    p.RowHeight,
			TokenRadius:  p.TokenRadius,
			Slots:        p.AnswerSlots,
			SlotWidth:    p.SlotWidth,
			SlotHeight:   p.SlotHeight,
			SlotYOffset:  constant.SlotYOffset,
		},
		Sampling: sampling,
	}
}
