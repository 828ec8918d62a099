package blockblast

import (
	"github.com/vovakirdan/block-blast/internal/blast"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the adapter state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Score     int
	HighScore int
	Board     blast.Board
	Offered   [blast.SlotCount]string // Piece names, "" for used slots
	Selected  int
	CursorRow int
	CursorCol int
	Moves     int
	Lines     int
	Message   string
	Flashing  bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case snap.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var offered [blast.SlotCount]string
	for i, p := range snap.Offered {
		if p != nil {
			offered[i] = p.Name
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Score:     snap.Score,
		HighScore: snap.HighScore,
		Board:     snap.Board,
		Offered:   offered,
		Selected:  g.selected,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Moves:     snap.Moves,
		Lines:     snap.Lines,
		Message:   g.message,
		Flashing:  g.flash.active(),
		State:     state,
	}
}
