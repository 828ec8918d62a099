package blast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Catalog indices used with scriptedRand.
const (
	idxDot     = 0
	idxLine2   = 1
	idxLine4   = 3
	idxSquare2 = 6
)

func offeredNames(offered [SlotCount]*Piece) []string {
	names := make([]string, len(offered))
	for i, p := range offered {
		if p != nil {
			names[i] = p.Name
		}
	}
	return names
}

func TestNewSessionOffersThreePieces(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxLine4, idxDot, idxSquare2}})

	snap := s.Snapshot()
	assert.Equal(t, []string{"Line4", "Dot", "Square2"}, offeredNames(snap.Offered))
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.HighScore)
	assert.False(t, snap.GameOver)
	assert.True(t, snap.Board.IsEmpty())
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestAttemptPlacementLine4(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxLine4, idxDot, idxSquare2}})

	res, err := s.AttemptPlacement(0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "Line4", res.Piece.Name)
	assert.Equal(t, 4, res.ScoreDelta)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 4, res.HighScore)
	assert.Zero(t, res.LinesCleared())
	assert.False(t, res.Refilled)
	assert.False(t, res.GameOver)

	snap := s.Snapshot()
	for col := range 4 {
		assert.True(t, snap.Board.IsOccupied(0, col))
	}
	assert.False(t, snap.Board.IsOccupied(0, 4))
	assert.Nil(t, snap.Offered[0])
	assert.Equal(t, 1, snap.Moves)
}

func TestAttemptPlacementInvalidSlot(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot, idxDot, idxDot}})
	_, err := s.AttemptPlacement(0, 4, 4)
	require.NoError(t, err)
	before := s.Snapshot()

	for _, slot := range []int{-1, SlotCount, 0} {
		_, err := s.AttemptPlacement(slot, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidSlot, "slot %d", slot)
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestAttemptPlacementIllegal(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxLine4, idxSquare2, idxDot}})
	before := s.Snapshot()

	_, err := s.AttemptPlacement(0, 0, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, err, ErrIllegalPlacement)
	assert.Equal(t, before, s.Snapshot())

	_, err = s.AttemptPlacement(2, 3, 3)
	require.NoError(t, err)
	afterDot := s.Snapshot()

	_, err = s.AttemptPlacement(1, 2, 2)
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, afterDot, s.Snapshot())
}

func TestAttemptPlacementClearsRow(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot, idxLine2, idxLine2}})
	fillRow(&s.board, 3, 0, 1, 2, 3, 4, 5, 6)

	res, err := s.AttemptPlacement(0, 3, 7)
	require.NoError(t, err)

	assert.Equal(t, 9, res.ScoreDelta)
	assert.Equal(t, []int{3}, res.ClearedRows)
	assert.Empty(t, res.ClearedCols)
	assert.Equal(t, 1, res.ClearedRowCount())
	assert.Zero(t, res.ClearedColCount())

	board := s.Board()
	for col := range Size {
		assert.False(t, board.IsOccupied(3, col))
	}
}

func TestAttemptPlacementRowAndColumn(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot, idxLine2, idxLine2}})
	for i := range Size {
		if i != 6 {
			s.board.Occupy(1, i, "r")
		}
		if i != 1 {
			s.board.Occupy(i, 6, "c")
		}
	}

	res, err := s.AttemptPlacement(0, 1, 6)
	require.NoError(t, err)

	assert.Equal(t, 1+16, res.ScoreDelta)
	assert.Equal(t, 2, res.LinesCleared())
	snap := s.Snapshot()
	assert.True(t, snap.Board.IsEmpty())
}

func TestRefillAfterLastSlot(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot, idxDot, idxDot, idxLine4, idxLine2, idxSquare2}})

	for slot := range 2 {
		res, err := s.AttemptPlacement(slot, 0, slot)
		require.NoError(t, err)
		assert.False(t, res.Refilled)
	}

	res, err := s.AttemptPlacement(2, 0, 2)
	require.NoError(t, err)
	assert.True(t, res.Refilled)

	snap := s.Snapshot()
	assert.Equal(t, []string{"Line4", "Line2", "Square2"}, offeredNames(snap.Offered))
	for _, p := range snap.Offered {
		assert.NotNil(t, p)
	}
}

func TestGameOverWhenNothingFits(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot, idxSquare2, idxSquare2}})
	s.board = checkerboard()

	res, err := s.AttemptPlacement(0, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.GameOver)
	assert.False(t, res.Refilled)
	assert.Equal(t, 1, res.ScoreDelta)
	assert.True(t, s.GameOver())
	assert.Equal(t, PhaseGameOver, s.Phase())

	board := s.Board()
	assert.False(t, HasAnyValidMove(&board, s.offered[:]))

	_, err = s.AttemptPlacement(1, 7, 0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestGameOverEvaluatedAfterRefill(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot}})
	s.board = checkerboard()
	s.offered = [SlotCount]*Piece{&catalog[idxDot], nil, nil}
	s.rng = &scriptedRand{seq: []int{idxSquare2}}

	res, err := s.AttemptPlacement(0, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Refilled)
	assert.True(t, res.GameOver)
	assert.Equal(t, []string{"Square2", "Square2", "Square2"}, offeredNames(s.Offered()))
}

func TestRefillRescuesFromLoss(t *testing.T) {
	// The last offered piece fits; refilled dots fit too, so play goes on.
	s := NewSession(&scriptedRand{seq: []int{idxDot}})
	s.board = checkerboard()
	s.offered = [SlotCount]*Piece{nil, nil, &catalog[idxDot]}

	res, err := s.AttemptPlacement(2, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Refilled)
	assert.False(t, res.GameOver)
}

func TestNewGameKeepsHighScore(t *testing.T) {
	rng := &scriptedRand{seq: []int{idxLine4, idxSquare2, idxDot}}
	s := NewSession(rng)

	_, err := s.AttemptPlacement(0, 0, 0)
	require.NoError(t, err)
	_, err = s.AttemptPlacement(1, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 8, s.Score())

	snap := s.NewGame(rng)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 8, snap.HighScore)
	assert.True(t, snap.Board.IsEmpty())
	assert.False(t, snap.GameOver)
	assert.Zero(t, snap.Moves)

	_, err = s.AttemptPlacement(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, s.HighScore(), "lower score must not replace the best")
}

func TestNewGameLeavesGameOver(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxDot, idxSquare2, idxSquare2}})
	s.board = checkerboard()
	_, err := s.AttemptPlacement(0, 0, 1)
	require.NoError(t, err)
	require.True(t, s.GameOver())

	s.NewGame(NewRand(5))
	assert.False(t, s.GameOver())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.HighScore())
}

func TestSessionLaws(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := NewSession(NewRand(seed))
		prevScore := 0

		for turn := 0; !s.GameOver() && turn < 300; turn++ {
			m, ok := BestMove(s.Board(), s.Offered())
			require.True(t, ok, "seed %d: live game must have a move", seed)

			res, err := s.AttemptPlacement(m.Slot, m.Row, m.Col)
			require.NoError(t, err)

			assert.Equal(t, res.Piece.CellCount()+LineBonus*res.LinesCleared(), res.ScoreDelta)
			assert.Equal(t, prevScore+res.ScoreDelta, res.Score)
			assert.GreaterOrEqual(t, res.HighScore, res.Score)
			prevScore = res.Score

			snap := s.Snapshot()
			assert.Equal(t, SlotCount, countActive(snap.Offered)+countNil(snap.Offered))
			assert.NotZero(t, countActive(snap.Offered), "offer must never be fully empty between turns")

			rows, cols := ClearFullLines(&snap.Board)
			assert.Empty(t, rows, "no full row may survive a turn")
			assert.Empty(t, cols, "no full column may survive a turn")

			assert.Equal(t, !HasAnyValidMove(&snap.Board, snap.Offered[:]), res.GameOver)
		}
	}
}

func countActive(offered [SlotCount]*Piece) int {
	n := 0
	for _, p := range offered {
		if p != nil {
			n++
		}
	}
	return n
}

func countNil(offered [SlotCount]*Piece) int {
	return SlotCount - countActive(offered)
}

func TestSessionCanPlace(t *testing.T) {
	s := NewSession(&scriptedRand{seq: []int{idxLine4, idxDot, idxDot}})
	assert.True(t, s.CanPlace(0, 0, 4))
	assert.False(t, s.CanPlace(0, 0, 5))
	assert.False(t, s.CanPlace(5, 0, 0))
	assert.Nil(t, s.Piece(-1))
}
