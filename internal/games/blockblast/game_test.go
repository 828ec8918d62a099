package blockblast

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/block-blast/internal/blast"
	"github.com/vovakirdan/block-blast/internal/config"
	"github.com/vovakirdan/block-blast/internal/core"
	"github.com/vovakirdan/block-blast/internal/platform/tui"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// placeBest moves the cursor to the autoplayer's choice and confirms it.
func placeBest(t *testing.T, g *Game) bool {
	t.Helper()
	m, ok := blast.BestMove(g.session.Board(), g.session.Offered())
	if !ok {
		return false
	}
	g.selected = m.Slot
	g.cursorRow, g.cursorCol = m.Row, m.Col
	press(g, core.ActionConfirm)
	return true
}

func TestResetState(t *testing.T) {
	g := newTestGame(42)
	snap := g.Snapshot()

	for i, name := range snap.Offered {
		if name == "" {
			t.Errorf("slot %d should be offered after reset", i)
		}
	}
	if snap.Selected != 0 {
		t.Errorf("Selected = %d, want 0", snap.Selected)
	}
	if snap.CursorRow != blast.Size/2 || snap.CursorCol != blast.Size/2 {
		t.Errorf("cursor = (%d,%d), want board center", snap.CursorRow, snap.CursorCol)
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("score/moves = %d/%d, want 0/0", snap.Score, snap.Moves)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, want %q", snap.State, StatePlaying)
	}
	if !snap.Board.IsEmpty() {
		t.Error("board should be empty after reset")
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	g := newTestGame(1)

	for range 20 {
		press(g, core.ActionUp, core.ActionLeft)
	}
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", g.cursorRow, g.cursorCol)
	}

	for range 20 {
		press(g, core.ActionDown, core.ActionRight)
	}
	if g.cursorRow != blast.Size-1 || g.cursorCol != blast.Size-1 {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", g.cursorRow, g.cursorCol, blast.Size-1, blast.Size-1)
	}
}

func TestPlaceAtCursor(t *testing.T) {
	g := newTestGame(7)
	piece := g.session.Piece(0)

	g.cursorRow, g.cursorCol = 0, 0
	res := press(g, core.ActionConfirm)

	if res.State.Score != piece.CellCount() {
		t.Errorf("Score = %d, want %d", res.State.Score, piece.CellCount())
	}
	snap := g.Snapshot()
	if snap.Offered[0] != "" {
		t.Error("slot 0 should be used")
	}
	if snap.Selected != 1 {
		t.Errorf("Selected = %d, want next slot 1", snap.Selected)
	}
	for _, c := range piece.Cells {
		if !snap.Board.IsOccupied(c.DY, c.DX) {
			t.Errorf("cell (%d,%d) should be filled", c.DY, c.DX)
		}
	}

	rec := g.Record()
	if len(rec.Moves) != 1 || rec.Moves[0] != (core.MoveRecord{Slot: 0, Row: 0, Col: 0}) {
		t.Errorf("Record moves = %+v", rec.Moves)
	}
	if rec.Seed != 7 {
		t.Errorf("Record seed = %d, want 7", rec.Seed)
	}
}

func TestIllegalPlacementLeavesState(t *testing.T) {
	g := newTestGame(3)
	g.cursorRow, g.cursorCol = 2, 2
	press(g, core.ActionConfirm)
	before := g.session.Snapshot()

	// Every catalog piece covers its anchor, so the same anchor overlaps.
	press(g, core.ActionConfirm)

	if g.message != "Cannot place piece there." {
		t.Errorf("message = %q", g.message)
	}
	after := g.session.Snapshot()
	if after.Board != before.Board || after.Score != before.Score || after.Offered != before.Offered {
		t.Error("rejected placement must not change the session")
	}
	if len(g.Record().Moves) != 1 {
		t.Errorf("rejected placement must not be recorded")
	}
}

func TestSelectSlots(t *testing.T) {
	g := newTestGame(5)

	press(g, core.ActionSlot3)
	if g.selected != 2 {
		t.Errorf("selected = %d, want 2", g.selected)
	}
	press(g, core.ActionNext)
	if g.selected != 0 {
		t.Errorf("Next should wrap to 0, got %d", g.selected)
	}

	g.cursorRow, g.cursorCol = 0, 0
	press(g, core.ActionConfirm)
	press(g, core.ActionSlot1)
	if g.selected == 0 {
		t.Error("used slot must not be selectable")
	}
	if !strings.Contains(g.message, "already used") {
		t.Errorf("message = %q", g.message)
	}

	press(g, core.ActionSlot2)
	press(g, core.ActionNext)
	if g.selected != 2 {
		t.Errorf("Next from 1 should select 2, got %d", g.selected)
	}
	press(g, core.ActionNext)
	if g.selected != 1 {
		t.Errorf("Next should skip used slot 0, got %d", g.selected)
	}
}

func TestConfirmWithoutSelection(t *testing.T) {
	g := newTestGame(5)
	g.selected = -1
	press(g, core.ActionConfirm)
	if g.message != "Select a piece first." {
		t.Errorf("message = %q", g.message)
	}
	if g.session.Snapshot().Moves != 0 {
		t.Error("no move should be made")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(9)

	res := press(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	row := g.cursorRow
	press(g, core.ActionUp, core.ActionConfirm)
	if g.cursorRow != row || g.session.Snapshot().Moves != 0 {
		t.Error("input should be ignored while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %q, want %q", g.Snapshot().State, StatePaused)
	}

	res = press(g, core.ActionPause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	if !g.State().Paused {
		t.Error("too small window should pause")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q", g.Snapshot().State)
	}

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("should render too-small message")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize to a large window should unpause")
	}
}

func TestDeterministic(t *testing.T) {
	inputs := [][]core.Action{
		{core.ActionLeft}, {core.ActionUp}, {core.ActionConfirm},
		{core.ActionNext}, {core.ActionDown}, {core.ActionDown}, {core.ActionConfirm},
		{core.ActionSlot3}, {core.ActionRight}, {core.ActionConfirm},
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			press(g, in...)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed and input should give same snapshot:\n%+v\n%+v", a, b)
	}
}

func TestRecordReplays(t *testing.T) {
	g := newTestGame(77)
	for i := 0; i < 80 && !g.State().GameOver; i++ {
		if !placeBest(t, g) {
			break
		}
	}

	rec := g.Record()
	if len(rec.Moves) == 0 {
		t.Fatal("expected some moves")
	}
	moves := make([]blast.Move, len(rec.Moves))
	for i, m := range rec.Moves {
		moves[i] = blast.Move{Slot: m.Slot, Row: m.Row, Col: m.Col}
	}

	res, err := blast.Replay(rec.Seed, moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Final.Score != rec.Score {
		t.Errorf("replayed score = %d, want %d", res.Final.Score, rec.Score)
	}
	if res.Final.Lines != rec.Lines {
		t.Errorf("replayed lines = %d, want %d", res.Final.Lines, rec.Lines)
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := newTestGame(21)
	placeBest(t, g)
	placeBest(t, g)
	best := g.HighScore()
	if best == 0 {
		t.Fatal("expected a positive score")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 22})
	if g.State().Score != 0 {
		t.Errorf("Score after reset = %d, want 0", g.State().Score)
	}
	if g.HighScore() != best {
		t.Errorf("HighScore = %d, want %d", g.HighScore(), best)
	}
	if len(g.Record().Moves) != 0 {
		t.Error("move log should reset")
	}
}

// Each game picked from the start menu runs a new platform model over the
// same Game, so the best score must outlive the model.
func TestBestScoreCarriesAcrossModels(t *testing.T) {
	g := NewWithConfig(config.DefaultGameConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 31}

	tui.NewModel(g, nil, nil, cfg)
	blast.Autoplay(g.session, 5000)
	if !g.State().GameOver {
		t.Fatal("first game should reach game over")
	}
	first := g.HighScore()
	if first == 0 {
		t.Fatal("first game should score")
	}

	cfg.Seed = 32
	m := tui.NewModel(g, nil, nil, cfg)
	if m.GameState().Score != 0 || m.GameState().GameOver {
		t.Fatalf("second game state = %+v, want a fresh game", m.GameState())
	}
	if g.HighScore() != first {
		t.Errorf("HighScore after new model = %d, want %d", g.HighScore(), first)
	}

	placeBest(t, g)
	if g.HighScore() != max(first, g.State().Score) {
		t.Errorf("HighScore = %d, want %d", g.HighScore(), first)
	}
}

func TestBrokenConfigFallsBackVisibly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockblast.yaml")
	if err := os.WriteFile(path, []byte("effects:\n  clear_frames: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.cfg.Effects.ClearFrames != config.DefaultGameConfig().Effects.ClearFrames {
		t.Error("broken config should fall back to defaults")
	}
	if !strings.Contains(g.message, "using defaults") {
		t.Errorf("message = %q, want the config fallback reported", g.message)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2})
	if g.message != "" {
		t.Errorf("message after restart = %q, want it cleared", g.message)
	}
}

func TestFlashTiming(t *testing.T) {
	cfg := config.DefaultGameConfig().Effects
	var f flash
	if f.active() || f.color() != "" {
		t.Fatal("zero flash should be inactive")
	}

	f.start([]int{3}, []int{5}, cfg)
	if !f.covers(3, 0) || !f.covers(0, 5) || f.covers(0, 0) {
		t.Error("flash should cover cleared row and column only")
	}

	for frame := range cfg.ClearFrames {
		want := cfg.FlashColors[frame%len(cfg.FlashColors)]
		for range cfg.FrameTicks {
			if got := f.color(); got != want {
				t.Fatalf("frame %d color = %q, want %q", frame, got, want)
			}
			f.step()
		}
	}
	if f.active() {
		t.Error("flash should end after clear_frames * frame_ticks ticks")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(4)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"BLOCK BLAST", "Score: 0", "Best: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	for slot := range blast.SlotCount {
		if name := g.session.Piece(slot).Name; !strings.Contains(out, name) {
			t.Errorf("render missing offered piece %q", name)
		}
	}
	if !strings.ContainsRune(out, ghostRune) {
		t.Error("ghost preview should be drawn for the selected piece")
	}

	press(g, core.ActionPause)
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestGameOverOverlay(t *testing.T) {
	g := newTestGame(31)
	for i := 0; !g.State().GameOver; i++ {
		if i > 5000 || !placeBest(t, g) {
			t.Fatal("greedy play should reach game over")
		}
	}
	if g.message != "Game over! Press R to restart." {
		t.Errorf("message = %q", g.message)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	score := g.State().Score
	press(g, core.ActionConfirm)
	if g.State().Score != score {
		t.Error("input after game over should be ignored")
	}
}
