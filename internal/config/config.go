// Package config provides YAML-based configuration loading for the
// Block Blast terminal front end.
package config

import (
	"errors"
	"fmt"
	"regexp"
)

// GameConfig contains all tunables for the terminal game.
// None of these affect scoring or placement rules.
type GameConfig struct {
	Effects EffectsConfig `yaml:"effects"`
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// EffectsConfig defines the line-clear flash.
type EffectsConfig struct {
	ClearFrames int      `yaml:"clear_frames"` // Number of flash frames
	FrameTicks  int      `yaml:"frame_ticks"`  // Simulation ticks per frame
	FlashColors []string `yaml:"flash_colors"` // Cycled once per frame
}

// DisplayConfig toggles optional overlays.
type DisplayConfig struct {
	ShowGhost bool `yaml:"show_ghost"`
	ShowHints bool `yaml:"show_hints"`
}

// ThemeConfig defines colors that are not tied to a piece.
type ThemeConfig struct {
	EmptyCell      string `yaml:"empty_cell"`
	ValidPreview   string `yaml:"valid_preview"`
	InvalidPreview string `yaml:"invalid_preview"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks value ranges and color syntax.
func (c GameConfig) Validate() error {
	if c.Effects.ClearFrames <= 0 {
		return fmt.Errorf("%w: effects.clear_frames must be positive, got %d", ErrInvalidConfig, c.Effects.ClearFrames)
	}
	if c.Effects.FrameTicks <= 0 {
		return fmt.Errorf("%w: effects.frame_ticks must be positive, got %d", ErrInvalidConfig, c.Effects.FrameTicks)
	}
	if len(c.Effects.FlashColors) == 0 {
		return fmt.Errorf("%w: effects.flash_colors is empty", ErrInvalidConfig)
	}
	for i, col := range c.Effects.FlashColors {
		if !hexColor.MatchString(col) {
			return fmt.Errorf("%w: effects.flash_colors[%d] %q is not #rrggbb", ErrInvalidConfig, i, col)
		}
	}

	theme := []struct{ key, val string }{
		{"theme.empty_cell", c.Theme.EmptyCell},
		{"theme.valid_preview", c.Theme.ValidPreview},
		{"theme.invalid_preview", c.Theme.InvalidPreview},
	}
	for _, t := range theme {
		if !hexColor.MatchString(t.val) {
			return fmt.Errorf("%w: %s %q is not #rrggbb", ErrInvalidConfig, t.key, t.val)
		}
	}
	return nil
}

// FlashColor returns the flash color for the given frame, cycling the palette.
func (c EffectsConfig) FlashColor(frame int) string {
	if len(c.FlashColors) == 0 {
		return ""
	}
	if frame < 0 {
		frame = -frame
	}
	return c.FlashColors[frame%len(c.FlashColors)]
}

// TotalTicks returns how long the flash lasts in simulation ticks.
func (c EffectsConfig) TotalTicks() int {
	return c.ClearFrames * c.FrameTicks
}
