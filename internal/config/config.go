// Package config holds window geometry constants and the optional YAML
// settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Control panel (right edge)
	PanelWidth   = 200
	PanelMargin  = 16
	ButtonWidth  = 168
	ButtonHeight = 32
	ButtonGap    = 8

	// Main menu buttons
	MenuButtonWidth  = 160
	MenuButtonHeight = 44

	// Slider handle
	SliderGrabHalfWidth = 20
	SliderGripRadius    = 14
	SliderLineWidth     = 3

	DefaultParticleCount = 24

	// Surface sizing
	DefaultMobileBreakpoint = 768
	DefaultMobileFill       = 0.95
	DefaultDesktopFill      = 0.9

	DefaultSplit   = 50.0
	DefaultProfile = "deuteranopia"

	// Frame statistics ring
	StatsRingSize = 120
)

// Settings is the optional YAML document that tunes the demo. Zero values are
// replaced by defaults in Load.
type Settings struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	Profile       string  `yaml:"profile"`
	Split         float64 `yaml:"split"`
	ParticleCount int     `yaml:"particle_count"`
	ShowParticles bool    `yaml:"show_particles"`

	MobileBreakpoint int     `yaml:"mobile_breakpoint"`
	MobileFill       float64 `yaml:"mobile_fill"`
	DesktopFill      float64 `yaml:"desktop_fill"`

	LogLevel string `yaml:"log_level"`
	Image    string `yaml:"image,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		WindowWidth:      WindowWidth,
		WindowHeight:     WindowHeight,
		Profile:          DefaultProfile,
		Split:            DefaultSplit,
		ParticleCount:    DefaultParticleCount,
		MobileBreakpoint: DefaultMobileBreakpoint,
		MobileFill:       DefaultMobileFill,
		DesktopFill:      DefaultDesktopFill,
		LogLevel:         "info",
	}
}

// Load reads settings from path. Fields left out of the file keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path as YAML.
func Save(path string, s Settings) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

var (
	ErrFillFraction = errors.New("fill fraction must be in (0, 1]")
	ErrSplitRange   = errors.New("split must be in [0, 100]")
)

// Validate checks ranges. Profile ids are checked by the caller against the catalog.
func (s Settings) Validate() error {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", s.WindowWidth, s.WindowHeight)
	}
	if s.ParticleCount < 0 {
		return fmt.Errorf("particle_count %d is negative", s.ParticleCount)
	}
	if s.MobileFill <= 0 || s.MobileFill > 1 {
		return fmt.Errorf("mobile_fill %v: %w", s.MobileFill, ErrFillFraction)
	}
	if s.DesktopFill <= 0 || s.DesktopFill > 1 {
		return fmt.Errorf("desktop_fill %v: %w", s.DesktopFill, ErrFillFraction)
	}
	if s.Split < 0 || s.Split > 100 {
		return fmt.Errorf("split %v: %w", s.Split, ErrSplitRange)
	}
	return nil
}
