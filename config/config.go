// Package config loads game tuning from an optional TOML file
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ragdoll-volley/constant"
)

// Duration is a time.Duration written as "180ms" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration in Go syntax
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Bot tunes the computer opponent
type Bot struct {
	WanderChance float64 `toml:"wander_chance"`
}

// MaxRate bounds tick_rate and frame_rate so their periods stay well above zero
const MaxRate = 1000

// Config is the file-backed game configuration
type Config struct {
	TickRate         int               `toml:"tick_rate"`
	FrameRate        int               `toml:"frame_rate"`
	MaxStepsPerFrame int               `toml:"max_steps_per_frame"`
	BotInterval      Duration          `toml:"bot_interval"`
	HoldWindow       Duration          `toml:"hold_window"` // keep above the terminal's key repeat delay
	Seed             uint64            `toml:"seed"`
	Audio            bool              `toml:"audio"`
	Color            bool              `toml:"color"`
	Bot              Bot               `toml:"bot"`
	Keys             map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
// Seed 0 means a seed is drawn at startup
func Default() *Config {
	return &Config{
		TickRate:         constant.TickRate,
		FrameRate:        constant.FrameRate,
		MaxStepsPerFrame: constant.MaxStepsPerFrame,
		BotInterval:      Duration{constant.BotInterval},
		HoldWindow:       Duration{constant.KeyHoldWindow},
		Audio:            true,
		Color:            true,
		Bot:              Bot{WanderChance: constant.BotWanderChance},
		Keys:             map[string]string{},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 || c.TickRate > MaxRate {
		errs = append(errs, fmt.Errorf("tick_rate must be in 1..%d, got %d", MaxRate, c.TickRate))
	}
	if c.FrameRate <= 0 || c.FrameRate > MaxRate {
		errs = append(errs, fmt.Errorf("frame_rate must be in 1..%d, got %d", MaxRate, c.FrameRate))
	}
	if c.MaxStepsPerFrame <= 0 {
		errs = append(errs, fmt.Errorf("max_steps_per_frame must be positive, got %d", c.MaxStepsPerFrame))
	}
	if c.BotInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("bot_interval must be positive, got %s", c.BotInterval))
	}
	if c.HoldWindow.Duration <= 0 {
		errs = append(errs, fmt.Errorf("hold_window must be positive, got %s", c.HoldWindow))
	}
	if c.Bot.WanderChance < 0 || c.Bot.WanderChance > 1 {
		errs = append(errs, fmt.Errorf("bot.wander_chance must be in [0,1], got %g", c.Bot.WanderChance))
	}
	return errors.Join(errs...)
}

// Write encodes c as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// TickDuration is the fixed physics step
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// FrameDuration is the render interval
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
