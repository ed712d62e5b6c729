package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stack/internal/games/stack"
	"github.com/vovakirdan/tui-stack/internal/platform/tui"
	"github.com/vovakirdan/tui-stack/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: stack).

Controls:
  Space/Enter/Up  - Drop the block
  P/Esc           - Pause
  R               - Restart
  B               - Back (when paused or after game over)
  Ctrl+S          - Save a screenshot to ~/.stacker/screenshots
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Wide blocks, base speed
  normal - Blocks start 30% faster
  hard   - Narrow blocks, start 70% faster

Examples:
  stacker play
  stacker play stack --difficulty hard
  stacker play --config ./my-stack.yaml
  stacker play --seed 42 --log-file stacker.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		cmd.Flags().StringVar(&flagPlayer, "player", "", "Name saved with your scores (default: $USER)")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := stack.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if _, err := registry.Lookup(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'stacker list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("stacker", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	env := tui.Env{Store: store, Logger: logger, Player: localPlayer()}

	_, runErr := tui.Run(game, env, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
