package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-blast/internal/config"
	"github.com/vovakirdan/block-blast/internal/core"
	"github.com/vovakirdan/block-blast/internal/games/blockblast"
	"github.com/vovakirdan/block-blast/internal/platform/tui"
	"github.com/vovakirdan/block-blast/internal/registry"
	"github.com/vovakirdan/block-blast/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Block Blast.

Controls:
  Arrows/WASD  - Move the cursor
  1/2/3, Tab   - Select an offered piece
  Enter/Space  - Place the selected piece at the cursor
  ?            - Toggle fit hints
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Finished games are recorded in the history database and can be replayed.

Examples:
  blockblast play
  blockblast play --seed 42
  blockblast play --config ./my-blockblast.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
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
	return playGame(game, saver)
}

// newGame loads the game config and creates the game.
// Callers create one game per process and reuse it, so the best score
// carries over from one game to the next.
func newGame() (registry.Game, error) {
	// Surface config problems before taking over the terminal.
	_, src, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("config rejected", "path", flagConfig, "error", err)
		return nil, err
	}
	if src == config.SourceBuiltin {
		logger.Warn("config fallback", "source", src)
	} else {
		logger.Info("config loaded", "source", src)
	}
	blockblast.SetConfigPath(flagConfig)

	game, err := registry.Create(blockblast.GameID)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	return game, nil
}

// playGame runs the game until the player quits.
// saver may be nil, in which case games are not recorded.
func playGame(game registry.Game, saver tui.GameSaver) error {
	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, saver, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
