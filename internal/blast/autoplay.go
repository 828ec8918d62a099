package blast

// BestMove picks the legal move with the largest immediate gain, evaluated
// on a copy of the board. Ties go to the lowest slot, then row, then column.
// It returns false when nothing fits.
func BestMove(board Board, offered [SlotCount]*Piece) (Move, bool) {
	best := Move{}
	bestGain := -1

	for slot, p := range offered {
		if p == nil {
			continue
		}
		for _, pos := range ValidPositions(&board, p) {
			trial := board
			Place(&trial, p, pos.Row, pos.Col)
			rows, cols := ClearFullLines(&trial)
			gain := PlacementScore(p, len(rows)+len(cols))
			if gain > bestGain {
				bestGain = gain
				best = Move{Slot: slot, Row: pos.Row, Col: pos.Col}
			}
		}
	}

	return best, bestGain >= 0
}

// Autoplay drives the session with BestMove until the game ends or maxMoves
// placements have been made (maxMoves <= 0 means no limit).
// It returns the accepted moves in order.
func Autoplay(s *Session, maxMoves int) []Move {
	var played []Move
	for !s.GameOver() {
		if maxMoves > 0 && len(played) >= maxMoves {
			break
		}
		m, ok := BestMove(s.board, s.offered)
		if !ok {
			break
		}
		if _, err := s.AttemptPlacement(m.Slot, m.Row, m.Col); err != nil {
			break
		}
		played = append(played, m)
	}
	return played
}

// SimulationStats summarizes a batch of autoplayed games.
type SimulationStats struct {
	Games      int
	BestScore  int
	BestSeed   int64
	TotalScore int
	TotalMoves int
	TotalLines int
}

// MeanScore returns the average final score.
func (st SimulationStats) MeanScore() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.TotalScore) / float64(st.Games)
}

// MeanMoves returns the average number of placements per game.
func (st SimulationStats) MeanMoves() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.TotalMoves) / float64(st.Games)
}

// Simulate autoplays games seeded seed, seed+1, ... and aggregates results.
// maxMoves caps each game; <= 0 plays to game over.
func Simulate(seed int64, games, maxMoves int) SimulationStats {
	stats := SimulationStats{BestScore: -1}
	for i := range games {
		gameSeed := seed + int64(i)
		s := NewSession(NewRand(gameSeed))
		Autoplay(s, maxMoves)

		snap := s.Snapshot()
		stats.Games++
		stats.TotalScore += snap.Score
		stats.TotalMoves += snap.Moves
		stats.TotalLines += snap.Lines
		if snap.Score > stats.BestScore {
			stats.BestScore = snap.Score
			stats.BestSeed = gameSeed
		}
	}
	if stats.Games == 0 {
		stats.BestScore = 0
	}
	return stats
}
