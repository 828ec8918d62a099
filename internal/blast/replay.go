package blast

import "fmt"

// ReplayResult is the outcome of re-playing a recorded game.
type ReplayResult struct {
	Final   Snapshot
	Results []PlacementResult
}

// Replay starts a game from seed and applies the moves in order.
// Because offers are drawn only from the seeded source, the same seed and
// moves always reproduce the same game. A rejected move aborts the replay.
func Replay(seed int64, moves []Move) (ReplayResult, error) {
	s := NewSession(NewRand(seed))
	results := make([]PlacementResult, 0, len(moves))

	for i, m := range moves {
		res, err := s.AttemptPlacement(m.Slot, m.Row, m.Col)
		if err != nil {
			return ReplayResult{Final: s.Snapshot(), Results: results},
				fmt.Errorf("blast: replay move %d (slot %d at %d,%d): %w", i+1, m.Slot, m.Row, m.Col, err)
		}
		results = append(results, res)
	}

	return ReplayResult{Final: s.Snapshot(), Results: results}, nil
}
