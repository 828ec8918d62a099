// Package blockblast adapts the blast engine to the platform's Game
// contract: a keyboard cursor over the board, a selected offered piece,
// placement preview, and the line-clear flash.
package blockblast

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/block-blast/internal/blast"
	"github.com/vovakirdan/block-blast/internal/config"
	"github.com/vovakirdan/block-blast/internal/core"
	"github.com/vovakirdan/block-blast/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "blockblast"

// Minimum terminal size for the board, the piece panel and the HUD.
const (
	minScreenW = 40
	minScreenH = 22
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements Block Blast on top of a blast.Session.
// The session lives as long as the Game, so the best score survives restarts.
type Game struct {
	session *blast.Session
	cfg     *config.GameConfig
	seed    int64
	tick    uint64

	// Cursor is the anchor cell for the selected piece.
	cursorRow int
	cursorCol int
	selected  int // Slot index, -1 when nothing is selected

	moves   []core.MoveRecord
	message string
	flash   flash

	showHints bool
	paused    bool
	tooSmall  bool
	screenW   int
	screenH   int
}

// New creates a Block Blast game that loads its config on first Reset.
func New() *Game {
	return &Game{selected: -1}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{cfg: &cfg, selected: -1}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Blast"
}

// Reset starts a new game with the seed from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	var configMsg string
	if g.cfg == nil {
		loaded, _, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultGameConfig()
			configMsg = fmt.Sprintf("Config error, using defaults: %v", err)
		}
		g.cfg = &loaded
	}

	g.seed = cfg.Seed
	rng := blast.NewRand(cfg.Seed)
	if g.session == nil {
		g.session = blast.NewSession(rng)
	} else {
		g.session.NewGame(rng)
	}

	g.tick = 0
	g.cursorRow = blast.Size / 2
	g.cursorCol = blast.Size / 2
	g.selected = -1
	g.selectNext(-1)
	g.moves = nil
	g.message = configMsg
	g.flash = flash{}
	g.showHints = g.cfg.Display.ShowHints
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the layout for a new terminal size.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.flash.step()

	// Restart is handled by the platform calling Reset.
	if g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHint) {
		g.showHints = !g.showHints
	}

	for slot := range blast.SlotCount {
		if in.Has(core.SlotAction(slot)) {
			g.selectSlot(slot)
		}
	}
	if in.Has(core.ActionNext) {
		g.selectNext(g.selected)
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursorRow--
	case in.Has(core.ActionDown):
		g.cursorRow++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursorCol--
	case in.Has(core.ActionRight):
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, blast.Size-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, blast.Size-1)

	if in.Has(core.ActionConfirm) {
		g.place()
	}

	return core.StepResult{State: g.State()}
}

// selectSlot selects an offered piece if the slot still holds one.
func (g *Game) selectSlot(slot int) {
	if g.session.Piece(slot) == nil {
		g.message = fmt.Sprintf("Piece %d is already used.", slot+1)
		return
	}
	g.selected = slot
}

// selectNext selects the first non-empty slot after from, wrapping around.
func (g *Game) selectNext(from int) {
	for i := 1; i <= blast.SlotCount; i++ {
		slot := (from + i + blast.SlotCount) % blast.SlotCount
		if g.session.Piece(slot) != nil {
			g.selected = slot
			return
		}
	}
	g.selected = -1
}

// place tries to put the selected piece at the cursor.
func (g *Game) place() {
	res, err := g.session.AttemptPlacement(g.selected, g.cursorRow, g.cursorCol)
	switch {
	case errors.Is(err, blast.ErrInvalidSlot):
		g.message = "Select a piece first."
		return
	case errors.Is(err, blast.ErrIllegalPlacement):
		g.message = "Cannot place piece there."
		return
	case err != nil:
		g.message = err.Error()
		return
	}

	g.moves = append(g.moves, core.MoveRecord{Slot: res.Move.Slot, Row: res.Move.Row, Col: res.Move.Col})

	if lines := res.LinesCleared(); lines > 0 {
		g.message = fmt.Sprintf("Cleared %d line(s)! +%d", lines, blast.LineBonus*lines)
		g.flash.start(res.ClearedRows, res.ClearedCols, g.cfg.Effects)
	}

	if res.Refilled {
		g.selectNext(-1)
	} else {
		g.selectNext(g.selected)
	}

	if res.GameOver {
		g.message = "Game over! Press R to restart."
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// HighScore returns the best score since the game was created.
func (g *Game) HighScore() int {
	if g.session == nil {
		return 0
	}
	return g.session.HighScore()
}

// Record returns the seed and accepted moves of the current game.
func (g *Game) Record() core.GameRecord {
	snap := g.session.Snapshot()
	moves := make([]core.MoveRecord, len(g.moves))
	copy(moves, g.moves)
	return core.GameRecord{
		Seed:  g.seed,
		Score: snap.Score,
		Lines: snap.Lines,
		Moves: moves,
	}
}
