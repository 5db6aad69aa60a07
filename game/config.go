package game

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds animation configuration
type Config struct {
	// Count is the number of hearts in the field
	Count int `yaml:"count"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// SizeMin and SizeMax bound the heart scale
	SizeMin float64 `yaml:"size_min"`
	SizeMax float64 `yaml:"size_max"`

	// SpeedMin and SpeedMax bound the per-tick rise in pixels
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`

	// AlphaMin and AlphaMax bound the heart opacity
	AlphaMin float64 `yaml:"alpha_min"`
	AlphaMax float64 `yaml:"alpha_max"`

	// SpawnDepth is how far below the viewport hearts start out
	SpawnDepth float64 `yaml:"spawn_depth"`

	// ResetThreshold is the y coordinate above which a heart wraps around
	ResetThreshold float64 `yaml:"reset_threshold"`

	// RespawnOffset is how far below the viewport a wrapped heart reappears
	RespawnOffset float64 `yaml:"respawn_offset"`

	// Color is the heart fill colour as #rrggbb or #rrggbbaa
	Color string `yaml:"color"`

	// Background is the clear colour; empty means transparent
	Background string `yaml:"background"`

	// Seed for the random source, 0 seeds from the clock
	Seed int64 `yaml:"seed"`

	// TPS is the frame rate of ticker driven front-ends
	TPS int `yaml:"tps"`

	// ProfileDir enables CPU profile capture on frame drops when set
	ProfileDir string `yaml:"profile_dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Count:          50,
		ScreenWidth:    1024,
		ScreenHeight:   768,
		SizeMin:        10,
		SizeMax:        30,
		SpeedMin:       0.5,
		SpeedMax:       1.5,
		AlphaMin:       0,
		AlphaMax:       1,
		SpawnDepth:     100,
		ResetThreshold: -50,
		RespawnOffset:  50,
		Color:          "#ff4d6d",
		TPS:            60,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Keys missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every setting that cannot drive an animation, joined into
// one error.
func (c Config) Validate() error {
	var errs []error
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", c.Count))
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.SizeMin < 0 {
		errs = append(errs, fmt.Errorf("size_min must not be negative, got %g", c.SizeMin))
	}
	if c.SizeMax < c.SizeMin {
		errs = append(errs, fmt.Errorf("size range inverted: [%g, %g)", c.SizeMin, c.SizeMax))
	}
	if c.SpeedMax < c.SpeedMin {
		errs = append(errs, fmt.Errorf("speed range inverted: [%g, %g)", c.SpeedMin, c.SpeedMax))
	}
	if c.SpeedMin <= 0 {
		errs = append(errs, fmt.Errorf("speed_min must be positive, got %g", c.SpeedMin))
	}
	if c.AlphaMin < 0 || c.AlphaMax > 1 || c.AlphaMax < c.AlphaMin {
		errs = append(errs, fmt.Errorf("alpha range must lie within [0, 1], got [%g, %g)", c.AlphaMin, c.AlphaMax))
	}
	if c.SpawnDepth < 0 {
		errs = append(errs, fmt.Errorf("spawn_depth must not be negative, got %g", c.SpawnDepth))
	}
	if respawn := float64(c.ScreenHeight) + c.RespawnOffset; c.ResetThreshold >= respawn {
		errs = append(errs, fmt.Errorf("reset_threshold %g must lie above the respawn row %g", c.ResetThreshold, respawn))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := ParseHexColor(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if c.Background != "" {
		if _, err := ParseHexColor(c.Background); err != nil {
			errs = append(errs, fmt.Errorf("background: %w", err))
		}
	}
	return errors.Join(errs...)
}

// FillColor returns the parsed heart colour, falling back to the default.
func (c Config) FillColor() color.NRGBA {
	clr, err := ParseHexColor(c.Color)
	if err != nil {
		return colorHeart
	}
	return clr
}

// BackgroundColor returns the parsed clear colour, transparent when unset.
func (c Config) BackgroundColor() color.NRGBA {
	if c.Background == "" {
		return color.NRGBA{}
	}
	clr, err := ParseHexColor(c.Background)
	if err != nil {
		return color.NRGBA{}
	}
	return clr
}

// Spawn returns the spawn rules derived from the configuration.
func (c Config) Spawn() SpawnRules {
	return SpawnRules{
		SizeMin:        c.SizeMin,
		SizeMax:        c.SizeMax,
		SpeedMin:       c.SpeedMin,
		SpeedMax:       c.SpeedMax,
		AlphaMin:       c.AlphaMin,
		AlphaMax:       c.AlphaMax,
		SpawnDepth:     c.SpawnDepth,
		ResetThreshold: c.ResetThreshold,
		RespawnOffset:  c.RespawnOffset,
		Color:          c.FillColor(),
	}
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
