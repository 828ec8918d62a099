package blockblast

import (
	"slices"

	"github.com/vovakirdan/block-blast/internal/config"
)

// flash is the line-clear effect: cleared rows and columns blink through
// the configured palette for ClearFrames frames of FrameTicks ticks each.
type flash struct {
	rows  []int
	cols  []int
	ticks int // Ticks elapsed since start
	cfg   config.EffectsConfig
}

// start begins a new flash, replacing any running one.
func (f *flash) start(rows, cols []int, cfg config.EffectsConfig) {
	*f = flash{rows: rows, cols: cols, cfg: cfg}
}

// step advances the effect by one tick.
func (f *flash) step() {
	if !f.active() {
		return
	}
	f.ticks++
	if f.ticks >= f.cfg.TotalTicks() {
		*f = flash{}
	}
}

func (f *flash) active() bool {
	return f.ticks < f.cfg.TotalTicks()
}

// frame returns the zero-based frame index of the running effect.
func (f *flash) frame() int {
	return f.ticks / max(f.cfg.FrameTicks, 1)
}

// color returns the current flash color, or "" when inactive.
func (f *flash) color() string {
	if !f.active() {
		return ""
	}
	return f.cfg.FlashColor(f.frame())
}

// covers reports whether the cell lies on a flashing line.
func (f *flash) covers(row, col int) bool {
	return f.active() && (slices.Contains(f.rows, row) || slices.Contains(f.cols, col))
}
