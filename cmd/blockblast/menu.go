package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-blast/internal/games/blockblast"
	"github.com/vovakirdan/block-blast/internal/platform/tui"
	"github.com/vovakirdan/block-blast/internal/storage"
)

// runMenu shows the start menu and loops back to it after each game.
// Every game from the menu is played on the same instance.
func runMenu(cmd *cobra.Command, args []string) error {
	var saver tui.GameSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	game, err := newGame()
	if err != nil {
		return err
	}

	for {
		var stats *storage.GameStats
		if store != nil {
			if stats, err = store.Stats(blockblast.GameID); err != nil {
				logger.Warn("could not load stats", "error", err)
			}
		}

		width, height := terminalSize()
		choice, err := tui.RunMenu(game.Title(), stats, width, height)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		logger.Debug("menu choice", "choice", choice)

		switch choice {
		case tui.MenuPlay:
			if err := playGame(game, saver); err != nil {
				return err
			}

		case tui.MenuHistory:
			if store == nil {
				continue
			}
			id, err := tui.RunHistory(store, blockblast.GameID, width, height)
			if err != nil {
				return fmt.Errorf("running history browser: %w", err)
			}
			if id != "" {
				// Replay output stays on screen after the menu exits.
				return replayGame(store, id)
			}

		default:
			return nil
		}
	}
}
