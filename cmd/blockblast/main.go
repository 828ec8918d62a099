// blockblast is the Block Blast puzzle game for the terminal.
//
// Usage:
//
//	blockblast               - Start menu
//	blockblast play          - Play a game
//	blockblast pieces        - List the piece catalog
//	blockblast history       - Browse recorded games
//	blockblast replay <id>   - Replay a recorded game and verify its score
//	blockblast simulate      - Run autoplayer games and print statistics
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.blockblast/history.db)
//	--log <path>         - Set log file ("" disables logging)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/block-blast/internal/games/blockblast"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockblast",
	Short: "Block Blast - place pieces, clear lines",
	Long: `Block Blast is an 8x8 block puzzle for the terminal.

Place the three offered pieces anywhere they fit. Filling a whole row or
column clears it. Each placed cell scores 1 point and each cleared line
8 more. The game ends when none of the offered pieces fit.

Run without a command to open the start menu.

Available commands:
  play      - Play a game
  pieces    - Show the piece catalog
  history   - Browse recorded games
  replay    - Replay a recorded game
  simulate  - Run autoplayer games

Examples:
  blockblast
  blockblast play
  blockblast play --seed 42
  blockblast history --plain
  blockblast simulate --games 200 --seed 1`,
	Args:          cobra.NoArgs,
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockblast/history.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.blockblast/blockblast.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simulateCmd)
}
