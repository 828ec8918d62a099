package blast

// SlotCount is the number of pieces offered at a time.
const SlotCount = 3

// Phase is the session's position in the turn state machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Move is one placement request: which offered slot goes where.
type Move struct {
	Slot int
	Row  int
	Col  int
}

// PlacementResult describes an accepted placement.
type PlacementResult struct {
	Move        Move
	Piece       *Piece
	ScoreDelta  int
	Score       int // Total after this placement
	HighScore   int
	ClearedRows []int
	ClearedCols []int
	Refilled    bool // All slots were used and a fresh offer was drawn
	GameOver    bool
}

// ClearedRowCount returns the number of rows cleared by the placement.
func (r PlacementResult) ClearedRowCount() int {
	return len(r.ClearedRows)
}

// ClearedColCount returns the number of columns cleared by the placement.
func (r PlacementResult) ClearedColCount() int {
	return len(r.ClearedCols)
}

// LinesCleared returns rows plus columns cleared; a cell at an intersection
// still counts toward both lines.
func (r PlacementResult) LinesCleared() int {
	return len(r.ClearedRows) + len(r.ClearedCols)
}

// Snapshot is a copy of the session state for rendering and tests.
type Snapshot struct {
	Board     Board
	Offered   [SlotCount]*Piece // nil marks a used slot
	Score     int
	HighScore int
	GameOver  bool
	Moves     int
	Lines     int
}

// Session holds one player's game: the board, the offered pieces, and the
// running and best scores. The best score survives NewGame and lives as long
// as the Session value. A Session is not safe for concurrent use.
type Session struct {
	rng       Rand
	board     Board
	offered   [SlotCount]*Piece
	score     int
	highScore int
	phase     Phase
	moves     int
	lines     int
}

// NewSession creates a session and starts its first game.
func NewSession(rng Rand) *Session {
	s := &Session{}
	s.NewGame(rng)
	return s
}

// NewGame clears the board and score, then offers fresh pieces drawn from rng.
// The high score is kept.
func (s *Session) NewGame(rng Rand) Snapshot {
	s.rng = rng
	s.board.Reset()
	s.score = 0
	s.moves = 0
	s.lines = 0
	s.phase = PhasePlaying
	s.refill()
	return s.Snapshot()
}

// refill replaces every slot with an independent random catalog pick.
func (s *Session) refill() {
	for i := range s.offered {
		s.offered[i] = RandomPiece(s.rng)
	}
}

// AttemptPlacement places the piece in the given slot with its anchor at
// (row, col). Rejections return ErrGameOver, ErrInvalidSlot, ErrOutOfBounds,
// or ErrCellOccupied and change nothing.
//
// An accepted placement fills the cells, uses up the slot, clears full lines,
// scores cells + LineBonus per line, refills the offer once every slot is used,
// and ends the game when no offered piece fits anywhere.
func (s *Session) AttemptPlacement(slot, row, col int) (PlacementResult, error) {
	if s.phase == PhaseGameOver {
		return PlacementResult{}, ErrGameOver
	}
	if slot < 0 || slot >= SlotCount || s.offered[slot] == nil {
		return PlacementResult{}, ErrInvalidSlot
	}

	piece := s.offered[slot]
	if err := CheckPlacement(&s.board, piece, row, col); err != nil {
		return PlacementResult{}, err
	}

	Place(&s.board, piece, row, col)
	s.offered[slot] = nil

	rows, cols := ClearFullLines(&s.board)
	lines := len(rows) + len(cols)
	gained := PlacementScore(piece, lines)

	s.score += gained
	s.highScore = max(s.highScore, s.score)
	s.moves++
	s.lines += lines

	refilled := false
	if s.offerExhausted() {
		s.refill()
		refilled = true
	}

	if !HasAnyValidMove(&s.board, s.offered[:]) {
		s.phase = PhaseGameOver
	}

	return PlacementResult{
		Move:        Move{Slot: slot, Row: row, Col: col},
		Piece:       piece,
		ScoreDelta:  gained,
		Score:       s.score,
		HighScore:   s.highScore,
		ClearedRows: rows,
		ClearedCols: cols,
		Refilled:    refilled,
		GameOver:    s.phase == PhaseGameOver,
	}, nil
}

func (s *Session) offerExhausted() bool {
	for _, p := range s.offered {
		if p != nil {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:     s.board,
		Offered:   s.offered,
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  s.phase == PhaseGameOver,
		Moves:     s.moves,
		Lines:     s.lines,
	}
}

// Board returns a copy of the board.
func (s *Session) Board() Board {
	return s.board
}

// Offered returns the current offer; nil entries are used slots.
func (s *Session) Offered() [SlotCount]*Piece {
	return s.offered
}

// Piece returns the piece in the slot, or nil if the slot is out of range or used.
func (s *Session) Piece(slot int) *Piece {
	if slot < 0 || slot >= SlotCount {
		return nil
	}
	return s.offered[slot]
}

// Score returns the current game's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.highScore }

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase { return s.phase }

// GameOver reports whether no offered piece fits on the board.
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

// CanPlace reports whether the slot's piece fits at (row, col) right now.
func (s *Session) CanPlace(slot, row, col int) bool {
	p := s.Piece(slot)
	return p != nil && CanPlace(&s.board, p, row, col)
}
