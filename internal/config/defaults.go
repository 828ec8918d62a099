package config

import (
	_ "embed"
)

//go:embed defaults/blockblast.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Effects: EffectsConfig{
			ClearFrames: 6,
			FrameTicks:  4,
			FlashColors: []string{"#fff08a", "#ffd32a", "#7bed9f"},
		},
		Display: DisplayConfig{
			ShowGhost: true,
			ShowHints: false,
		},
		Theme: ThemeConfig{
			EmptyCell:      "#3a3f4b",
			ValidPreview:   "#7bed9f",
			InvalidPreview: "#ff6b6b",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
