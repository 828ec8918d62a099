package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-blast/internal/blast"
	"github.com/vovakirdan/block-blast/internal/storage"
)

// errReplayMismatch is returned when a replay does not reproduce the stored score.
var errReplayMismatch = errors.New("replay does not match recorded game")

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded game",
	Long: `Re-plays a recorded game from its seed and moves, prints the final
board, and checks the result against the stored score.

Examples:
  blockblast history --plain
  blockblast replay 3f1c9a2e-5b7d-4c1e-9f0a-2d6b8e4c7a10`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	return replayGame(store, args[0])
}

// replayGame loads a record, re-plays it and prints the outcome.
func replayGame(store *storage.Store, id string) error {
	entry, err := store.GameByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no recorded game with id %q", id)
	}

	recorded, err := store.Moves(id)
	if err != nil {
		return err
	}
	moves := make([]blast.Move, len(recorded))
	for i, m := range recorded {
		moves[i] = blast.Move{Slot: m.Slot, Row: m.Row, Col: m.Col}
	}

	res, err := blast.Replay(entry.Seed, moves)
	if err != nil {
		logger.Error("replay failed", "id", id, "error", err)
		return err
	}

	final := res.Final
	fmt.Printf("Game %s (seed %d, %s)\n\n", entry.ID, entry.Seed, entry.CreatedAt.Format("Jan 02 15:04"))
	fmt.Println(boardArt(final.Board))
	fmt.Println()
	fmt.Printf("Moves: %d  Lines: %d  Score: %d  Game over: %t\n", final.Moves, final.Lines, final.Score, final.GameOver)

	if final.Score != entry.Score || final.Lines != entry.Lines {
		logger.Warn("replay mismatch", "id", id, "recorded", entry.Score, "replayed", final.Score)
		return fmt.Errorf("%w: recorded score %d, replayed %d", errReplayMismatch, entry.Score, final.Score)
	}
	fmt.Println("Replay verified.")
	return nil
}
