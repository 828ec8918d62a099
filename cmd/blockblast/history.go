package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-blast/internal/games/blockblast"
	"github.com/vovakirdan/block-blast/internal/platform/tui"
	"github.com/vovakirdan/block-blast/internal/storage"
)

var (
	flagPlain bool
	flagTop   bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded games",
	Long: `Shows finished games from the history database.

The interactive browser lists recent games (Tab switches to best scores).
Press Enter on a game to replay it and verify its score.

Examples:
  blockblast history
  blockblast history --plain --top --limit 5
  blockblast history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the interactive browser")
	historyCmd.Flags().BoolVar(&flagTop, "top", false, "Order by score instead of date (with --plain)")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to print (with --plain)")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(blockblast.GameID); err != nil {
			return err
		}
		logger.Info("history cleared")
		fmt.Println("History cleared.")
		return nil
	}

	if flagPlain {
		return printHistory(store)
	}

	width, height := terminalSize()
	id, err := tui.RunHistory(store, blockblast.GameID, width, height)
	if err != nil {
		return fmt.Errorf("running history browser: %w", err)
	}
	if id == "" {
		return nil
	}
	return replayGame(store, id)
}

// printHistory writes the history table and stats to stdout.
func printHistory(store *storage.Store) error {
	var (
		entries []storage.GameEntry
		err     error
		title   = "Recent games"
	)
	if flagTop {
		title = "Top games"
		entries, err = store.TopGames(blockblast.GameID, flagLimit)
	} else {
		entries, err = store.RecentGames(blockblast.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving games: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %6s  %5s  %5s  %-20s  %-12s  %s\n", "#", "Score", "Moves", "Lines", "Seed", "Date", "ID")
	fmt.Printf("  %-4s  %6s  %5s  %5s  %-20s  %-12s  %s\n", "--", "-----", "-----", "-----", "----", "----", "--")
	for i, e := range entries {
		fmt.Printf("  %-4d  %6d  %5d  %5d  %-20d  %-12s  %s\n",
			i+1, e.Score, e.Moves, e.Lines, e.Seed, e.CreatedAt.Format("Jan 02 15:04"), e.ID)
	}

	stats, err := store.Stats(blockblast.GameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Println("  " + tui.FormatStats(stats))
	return nil
}
